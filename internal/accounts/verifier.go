package accounts

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier is the seam between the account engine and credential
// storage. Hash prepares a password for persistence and Verify checks a
// login attempt against the stored form. The engine never compares
// passwords itself, so swapping strategies does not touch engine logic.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(stored, candidate string) bool
}

// PlaintextVerifier stores passwords as-is and compares them in constant
// time. This mirrors the simulated-auth behavior of the storefront: local,
// single-user, explicitly not hardened.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (PlaintextVerifier) Verify(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// BcryptVerifier stores bcrypt hashes instead of plaintext. Cost zero means
// bcrypt.DefaultCost.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Hash(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

func (v BcryptVerifier) Verify(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
