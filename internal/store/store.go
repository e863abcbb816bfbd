// Package store implements the key-value medium that backs every persisted
// record. Values are whole JSON documents; Get and Put are atomic per key and
// there are no partial updates. Callers that need read-modify-write (the
// account directory) load the whole value, change it, and write it back.
package store

import (
	"context"
	"encoding/json"
	"strconv"
)

// Persisted keys. Every value is a JSON-encoded whole document.
const (
	// KeyAccounts holds the ordered array of all registered accounts.
	KeyAccounts = "users"
	// KeySession holds the single current-session snapshot, when present.
	KeySession = "currentUser"
	// KeyAddress holds the single global address record, when present.
	KeyAddress = "address"

	profileImagePrefix = "profileImage_"
)

// ProfileImageKey returns the key for an account's profile image payload.
func ProfileImageKey(accountID int) string {
	return profileImagePrefix + strconv.Itoa(accountID)
}

// Store is the atomic whole-value key-value medium behind all persistence.
// Implementations must treat each Put as a complete replacement of the value
// and each Get as a consistent read of the last committed value.
type Store interface {
	// Get returns the value for key. The second return is false when the key
	// is absent; absence is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put replaces the whole value for key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// GetJSON reads key and unmarshals the value into dest.
// Returns (false, nil) when the key is absent.
func GetJSON(ctx context.Context, s Store, key string, dest any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// PutJSON marshals v and writes it as the whole value for key.
func PutJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Put(ctx, key, raw)
}
