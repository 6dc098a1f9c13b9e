package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"snackdash/internal/accounts"
)

func (a *App) getStatus() string {
	if a.session == nil {
		return "(guest)"
	}
	if a.session.IsAdmin {
		return fmt.Sprintf("(%s admin)", a.session.Email)
	}
	return fmt.Sprintf("(%s)", a.session.Email)
}

func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to snackdash (type 'help' for commands)")
	printlnFn(fmt.Sprintf("Admin credentials: %s / %s", accounts.AdminEmail, accounts.AdminPassword))

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
