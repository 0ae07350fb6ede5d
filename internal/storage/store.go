// Package storage is the client's persistent key-value store, the local
// equivalent of browser storage. It holds the session token and best-effort
// cached profile fields; none of it is a source of truth.
package storage

import "context"

// Well-known keys.
const (
	KeyToken        = "token"
	KeyUserName     = "userName"
	KeyUserEmail    = "userEmail"
	KeyUserJoinDate = "userJoindate"
)

// Store is the persistence collaborator consumed by the flows.
// Get returns an empty string for absent keys; absence is not an error.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
