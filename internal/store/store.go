// Package store implements the Local Record Store: a durable, string-keyed
// key-value table holding the storefront's persisted state. Values are opaque
// byte slices; callers serialize and deserialize (JSON throughout this
// project). There is no expiry, no size limit, and no isolation between
// readers and writers — the store is assumed to be exclusively owned by a
// single storefront process.
//
// Well-known keys:
//
//	users       — ordered list of account records
//	currentUser — the active session record, absent when logged out
//	cart        — cart line items in insertion order
//	menu        — the dish catalog
package store

import "context"

// RecordStore is the persistence contract shared by the cart, menu, and
// account engines. Get returns (nil, nil) for an absent key so callers can
// substitute their empty default.
type RecordStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Names of the persisted record keys.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "currentUser"
	KeyCart        = "cart"
	KeyMenu        = "menu"
)
