package accounts

import "time"

// Account is the full persisted account record. The whole ordered list lives
// under the "users" record key. Password holds whatever the active
// CredentialVerifier produced at registration time.
type Account struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	IsAdmin     bool      `json:"isAdmin,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Session is the redacted projection of an Account representing the
// currently authenticated identity. At most one session exists at a time,
// stored under the "currentUser" record key; it is replaced wholesale on
// login or registration and deleted on logout. Its lifecycle is independent
// of the underlying account record: altering or removing the account does
// not invalidate an existing session.
type Session struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	IsAdmin     bool      `json:"isAdmin,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func newSession(a *Account) *Session {
	return &Session{
		ID:          a.ID,
		DisplayName: a.DisplayName,
		Email:       a.Email,
		IsAdmin:     a.IsAdmin,
		CreatedAt:   a.CreatedAt,
	}
}
