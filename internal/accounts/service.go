// Package accounts implements the session/account engine of the storefront:
// a persisted list of account records plus a single current-session record,
// both kept in the Local Record Store.
//
// Register and Login are pure validation over the current record snapshot —
// every check happens before any write, so a failed call leaves both the
// account list and the session key untouched.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"snackdash/internal/common"
	"snackdash/internal/logging"
	"snackdash/internal/store"
)

// Reserved admin bootstrap credentials, fixed and shown to the end user on
// the auth screen.
const (
	AdminEmail       = "admin@example.com"
	AdminPassword    = "admin123"
	adminDisplayName = "Admin User"
)

// Service defines the account engine operations used by the CLI.
type Service interface {
	// Register creates a new account and signs it in. Fails with
	// common.ErrMissingField on empty input and common.ErrDuplicateEmail
	// when the email (case-sensitive, exact) is already registered.
	Register(ctx context.Context, displayName, email, password string) (*Session, error)

	// Login authenticates an existing account. Fails with
	// common.ErrInvalidCredentials unless exactly one account matches the
	// email and the verifier accepts the password.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Logout deletes the current session. No-op when nobody is signed in.
	Logout(ctx context.Context) error

	// QuickAdminLogin bootstraps the reserved admin account if needed and
	// signs it in. It has no validation failure mode.
	QuickAdminLogin(ctx context.Context) (*Session, error)

	// Current returns the active session, or nil when logged out.
	Current(ctx context.Context) (*Session, error)

	// Accounts lists all registered accounts as redacted projections.
	// Gating this behind the admin flag is the caller's concern.
	Accounts(ctx context.Context) ([]Session, error)
}

type service struct {
	store    store.RecordStore
	verifier CredentialVerifier
	log      logging.Logger
}

// NewService constructs an account engine over the given record store and
// credential verifier.
func NewService(rs store.RecordStore, v CredentialVerifier, log logging.Logger) Service {
	return &service{store: rs, verifier: v, log: log.With("engine", "accounts")}
}

// loadAccounts reads the persisted account list. An absent or corrupt
// "users" record yields an empty list; only store access failures propagate.
func (s *service) loadAccounts(ctx context.Context) ([]Account, error) {
	data, err := s.store.Get(ctx, store.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var accs []Account
	if err := json.Unmarshal(data, &accs); err != nil {
		s.log.Warn(ctx, "corrupt users record, starting empty", "error", err)
		return nil, nil
	}
	return accs, nil
}

func (s *service) saveAccounts(ctx context.Context, accs []Account) error {
	data, err := json.Marshal(accs)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	return s.store.Set(ctx, store.KeyUsers, data)
}

func (s *service) saveSession(ctx context.Context, sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.store.Set(ctx, store.KeyCurrentUser, data)
}

func (s *service) Register(ctx context.Context, displayName, email, password string) (*Session, error) {
	if strings.TrimSpace(displayName) == "" || strings.TrimSpace(email) == "" || password == "" {
		return nil, common.ErrMissingField
	}

	accs, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accs {
		if a.Email == email {
			return nil, common.ErrDuplicateEmail
		}
	}

	stored, err := s.verifier.Hash(password)
	if err != nil {
		return nil, err
	}

	acc := Account{
		ID:          uuid.NewString(),
		DisplayName: displayName,
		Email:       email,
		Password:    stored,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.saveAccounts(ctx, append(accs, acc)); err != nil {
		return nil, err
	}

	sess := newSession(&acc)
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "account registered", "email", email)
	return sess, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, common.ErrMissingField
	}

	accs, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range accs {
		if accs[i].Email != email {
			continue
		}
		if !s.verifier.Verify(accs[i].Password, password) {
			return nil, common.ErrInvalidCredentials
		}

		sess := newSession(&accs[i])
		if err := s.saveSession(ctx, sess); err != nil {
			return nil, err
		}
		s.log.Info(ctx, "login", "email", email)
		return sess, nil
	}

	return nil, common.ErrInvalidCredentials
}

func (s *service) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, store.KeyCurrentUser)
}

func (s *service) QuickAdminLogin(ctx context.Context) (*Session, error) {
	accs, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	var admin *Account
	for i := range accs {
		if accs[i].Email == AdminEmail {
			admin = &accs[i]
			break
		}
	}

	if admin == nil {
		stored, err := s.verifier.Hash(AdminPassword)
		if err != nil {
			return nil, err
		}
		acc := Account{
			ID:          uuid.NewString(),
			DisplayName: adminDisplayName,
			Email:       AdminEmail,
			Password:    stored,
			IsAdmin:     true,
			CreatedAt:   time.Now().UTC(),
		}
		if err := s.saveAccounts(ctx, append(accs, acc)); err != nil {
			return nil, err
		}
		admin = &acc
		s.log.Info(ctx, "admin account bootstrapped")
	}

	sess := newSession(admin)
	// Always an admin session, even if the stored record was tampered with.
	sess.IsAdmin = true
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *service) Current(ctx context.Context) (*Session, error) {
	data, err := s.store.Get(ctx, store.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn(ctx, "corrupt session record, treating as logged out", "error", err)
		return nil, nil
	}
	return &sess, nil
}

func (s *service) Accounts(ctx context.Context) ([]Session, error) {
	accs, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Session, 0, len(accs))
	for i := range accs {
		result = append(result, *newSession(&accs[i]))
	}
	return result, nil
}
