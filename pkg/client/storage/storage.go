// Package storage persists client-side state between runs. Values are
// JSON blobs addressed by key, mirroring how a browser keeps session
// state in local storage.
package storage

import "encoding/json"

// Well-known keys used by the stores.
const (
	KeyToken     = "token"
	KeyUserStore = "user-store"
	KeyBookStore = "book-store"
	KeyTagStore  = "tag-store"
)

// Store is a small JSON key-value store.
type Store interface {
	// Get unmarshals the value at key into dest. The bool reports
	// whether the key was present.
	Get(key string, dest interface{}) (bool, error)

	// Set marshals value and stores it at key.
	Set(key string, value interface{}) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}

// TokenKeeper adapts a Store to the client's token source interface and
// owns the persisted bearer token.
type TokenKeeper struct {
	store Store
}

func NewTokenKeeper(store Store) *TokenKeeper {
	return &TokenKeeper{store: store}
}

// Token returns the stored bearer token, or "" when none is saved.
func (k *TokenKeeper) Token() string {
	var token string
	ok, err := k.store.Get(KeyToken, &token)
	if err != nil || !ok {
		return ""
	}
	return token
}

func (k *TokenKeeper) SetToken(token string) error {
	return k.store.Set(KeyToken, token)
}

func (k *TokenKeeper) ClearToken() error {
	return k.store.Delete(KeyToken)
}

func marshalValue(value interface{}) (json.RawMessage, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}
