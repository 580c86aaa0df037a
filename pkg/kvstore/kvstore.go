// Package kvstore provides the session-local key-value persistence used by the
// cart and order subsystems. Values are opaque JSON blobs; every Set replaces
// the stored value wholesale, there are no partial writes.
package kvstore

import "errors"

var ErrBadKey = errors.New("kvstore: invalid key")

type Store interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) ([]byte, bool, error)
	// Set replaces the value under key.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}

func validKey(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.':
		default:
			return false
		}
	}
	return true
}
