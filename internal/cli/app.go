package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"snackdash/internal/accounts"
	"snackdash/internal/cart"
	"snackdash/internal/config"
	"snackdash/internal/logging"
	"snackdash/internal/menu"
	"snackdash/internal/money"
	"snackdash/internal/store"
	"snackdash/internal/storefront"
)

// App holds the wired storefront: both engines, the menu catalog, and the
// session cached for the prompt. All engines share one record store backed by
// the same SQLite database.
type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	catalog  *menu.Catalog
	cart     *cart.Engine
	accounts accounts.Service
	session  *accounts.Session
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	db, err := storefront.InitDatabase(ctx, c.DataFile, log)
	if err != nil {
		return nil, err
	}

	rs := store.NewSQLiteStore(db)

	var verifier accounts.CredentialVerifier = accounts.PlaintextVerifier{}
	if c.PasswordHashing {
		verifier = accounts.BcryptVerifier{}
	}

	app := &App{
		config:   c,
		log:      log,
		db:       db,
		catalog:  menu.NewCatalog(rs, log),
		cart:     cart.NewEngine(rs, log, money.Cents(c.DeliveryFeeCents)),
		accounts: accounts.NewService(rs, verifier, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}

	// Restore a session persisted by a previous run so the prompt starts
	// with the right identity.
	sess, err := app.accounts.Current(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	app.session = sess

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) isAdmin() bool {
	return a.session != nil && a.session.IsAdmin
}
