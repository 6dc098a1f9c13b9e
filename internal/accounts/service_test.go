package accounts

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"snackdash/internal/common"
	"snackdash/internal/logging"
	"snackdash/internal/store"
)

func newService(t *testing.T) (Service, *store.MemoryStore) {
	t.Helper()
	rs := store.NewMemoryStore()
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	return NewService(rs, PlaintextVerifier{}, log), rs
}

func storedAccounts(t *testing.T, rs *store.MemoryStore) []Account {
	t.Helper()
	data, err := rs.Get(context.Background(), store.KeyUsers)
	require.NoError(t, err)
	if data == nil {
		return nil
	}
	var accs []Account
	require.NoError(t, json.Unmarshal(data, &accs))
	return accs
}

func TestRegister(t *testing.T) {
	svc, rs := newService(t)
	ctx := context.Background()

	sess, err := svc.Register(ctx, "Ann", "a@x.com", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	require.Equal(t, "a@x.com", sess.Email)
	require.False(t, sess.IsAdmin)
	require.False(t, sess.CreatedAt.IsZero())

	accs := storedAccounts(t, rs)
	require.Len(t, accs, 1)
	require.Equal(t, "pw1", accs[0].Password)

	// Registration also signs the account in.
	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, sess.ID, current.ID)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, rs := newService(t)
	ctx := context.Background()

	for _, in := range []struct{ name, email, pw string }{
		{"", "a@x.com", "pw"},
		{"Ann", "", "pw"},
		{"Ann", "a@x.com", ""},
		{"  ", "a@x.com", "pw"},
	} {
		_, err := svc.Register(ctx, in.name, in.email, in.pw)
		require.ErrorIs(t, err, common.ErrMissingField)
	}
	require.Empty(t, storedAccounts(t, rs))
}

func TestRegister_DuplicateEmailLeavesFirstAccountIntact(t *testing.T) {
	svc, rs := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Impostor", "a@x.com", "pw2")
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	accs := storedAccounts(t, rs)
	require.Len(t, accs, 1)
	require.Equal(t, "pw1", accs[0].Password)
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	reg, err := svc.Register(ctx, "Ann", "a@x.com", "pw1")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	sess, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, reg.ID, sess.ID)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
}

func TestLogin_WrongPasswordDoesNotTouchSession(t *testing.T) {
	svc, rs := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "a@x.com", "pw1")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx))

	_, err = svc.Login(ctx, "a@x.com", "nope")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)

	data, err := rs.Get(ctx, store.KeyCurrentUser)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Login(context.Background(), "ghost@x.com", "pw")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogin_EmailIsCaseSensitive(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "A@X.COM", "pw1")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogout_NoSessionIsNoop(t *testing.T) {
	svc, _ := newService(t)
	require.NoError(t, svc.Logout(context.Background()))
}

func TestQuickAdminLogin_Idempotent(t *testing.T) {
	svc, rs := newService(t)
	ctx := context.Background()

	for range 2 {
		sess, err := svc.QuickAdminLogin(ctx)
		require.NoError(t, err)
		require.True(t, sess.IsAdmin)
		require.Equal(t, AdminEmail, sess.Email)

		current, err := svc.Current(ctx)
		require.NoError(t, err)
		require.NotNil(t, current)
		require.True(t, current.IsAdmin)
	}

	admins := 0
	for _, a := range storedAccounts(t, rs) {
		if a.Email == AdminEmail {
			admins++
		}
	}
	require.Equal(t, 1, admins)
}

func TestQuickAdminLogin_KeepsExistingAccounts(t *testing.T) {
	svc, rs := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.QuickAdminLogin(ctx)
	require.NoError(t, err)

	require.Len(t, storedAccounts(t, rs), 2)
}

func TestCurrent_NoSession(t *testing.T) {
	svc, _ := newService(t)
	sess, err := svc.Current(context.Background())
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestCurrent_SurvivesAccountRemoval(t *testing.T) {
	// Sessions are decoupled from account records: wiping the users list
	// does not invalidate the signed-in identity.
	svc, rs := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "a@x.com", "pw1")
	require.NoError(t, err)
	require.NoError(t, rs.Delete(ctx, store.KeyUsers))

	sess, err := svc.Current(ctx)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Equal(t, "a@x.com", sess.Email)
}

func TestCorruptUsersRecordYieldsEmptyList(t *testing.T) {
	svc, rs := newService(t)
	ctx := context.Background()

	require.NoError(t, rs.Set(ctx, store.KeyUsers, []byte(`corrupt`)))

	accs, err := svc.Accounts(ctx)
	require.NoError(t, err)
	require.Empty(t, accs)

	// The engine stays usable: a fresh register works over the empty default.
	_, err = svc.Register(ctx, "Ann", "a@x.com", "pw1")
	require.NoError(t, err)
}

func TestAccounts_Redacted(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ann", "a@x.com", "pw1")
	require.NoError(t, err)
	_, err = svc.QuickAdminLogin(ctx)
	require.NoError(t, err)

	list, err := svc.Accounts(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Session is a projection without the password; make sure nothing leaks
	// through serialization either.
	data, err := json.Marshal(list)
	require.NoError(t, err)
	require.NotContains(t, string(data), "pw1")
	require.NotContains(t, string(data), AdminPassword)
}
