//go:generate go run go.uber.org/mock/mockgen -source=credentials.go -destination=../mocks/mock_credential_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"

	"skillspot/domain"

	"github.com/dgraph-io/badger/v4"
)

// credentialKey is the single key under which the token pair is stored. The
// pair is one value so both fields are written and deleted atomically; no
// caller can ever observe an access token without its refresh token.
const credentialKey = "session:credentials"

type ICredentialRepository interface {
	Set(pair domain.CredentialPair) error
	Get() (domain.CredentialPair, bool, error)
	Clear() error
	AccessToken() (string, bool)
}

type CredentialRepository struct {
	db *badger.DB
}

func NewCredentialRepository(db *badger.DB) ICredentialRepository {
	return &CredentialRepository{db: db}
}

// Set persists the pair, replacing any previous one.
func (r *CredentialRepository) Set(pair domain.CredentialPair) error {
	if pair.Access == "" || pair.Refresh == "" {
		return fmt.Errorf("refusing to store a partial credential pair")
	}
	data, err := json.Marshal(pair)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(credentialKey), data)
	})
}

// Get returns the stored pair, or ok=false when no session is persisted.
func (r *CredentialRepository) Get() (domain.CredentialPair, bool, error) {
	var pair domain.CredentialPair
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(credentialKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &pair)
		})
	})
	if err == badger.ErrKeyNotFound {
		return domain.CredentialPair{}, false, nil
	}
	if err != nil {
		return domain.CredentialPair{}, false, err
	}
	return pair, true, nil
}

// Clear removes the pair. Clearing an empty store is not an error.
func (r *CredentialRepository) Clear() error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(credentialKey))
	})
}

// AccessToken implements the read-only token view shared with the REST and
// channel collaborators. The session controller remains the single writer.
func (r *CredentialRepository) AccessToken() (string, bool) {
	pair, ok, err := r.Get()
	if err != nil || !ok {
		return "", false
	}
	return pair.Access, true
}
