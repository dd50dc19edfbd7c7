package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"rsakit/internal/domain"
)

const keyringFile = "keyring.json"

var (
	// ErrNotFound is returned when no key is stored under the requested name.
	ErrNotFound = domain.ErrKeyNotFound

	// ErrExists is returned by SaveKey when the name is already taken.
	ErrExists = domain.ErrKeyExists
)

// keyRecord is one keyring entry: public metadata in clear, private half sealed.
type keyRecord struct {
	Entry   domain.KeyEntry `json:"entry"`
	Private sealedBlob      `json:"private"`
}

// KeyringFileStore persists named key pairs in a single JSON file.
type KeyringFileStore struct {
	dir string
	kdf scryptParams
	mu  sync.Mutex
}

// NewKeyringFileStore returns a KeyringFileStore rooted at dir.
func NewKeyringFileStore(dir string) *KeyringFileStore {
	return &KeyringFileStore{dir: dir, kdf: defaultScrypt()}
}

func (s *KeyringFileStore) path() string { return filepath.Join(s.dir, keyringFile) }

func (s *KeyringFileStore) records() (map[domain.KeyName]keyRecord, error) {
	m := map[domain.KeyName]keyRecord{}
	if err := loadJSON(s.path(), &m); err != nil {
		return nil, fmt.Errorf("read keyring: %w", err)
	}
	return m, nil
}

func keyAD(name domain.KeyName) []byte { return []byte("rsakit-key:" + name.String()) }

// SaveKey stores entry and seals priv with passphrase. It fails with
// ErrExists if the name is taken.
func (s *KeyringFileStore) SaveKey(passphrase string, entry domain.KeyEntry, priv domain.EncodedPrivateKey) error {
	raw, err := json.Marshal(priv)
	if err != nil {
		return err
	}
	defer clear(raw)

	blob, err := seal(passphrase, raw, keyAD(entry.Name), s.kdf)
	if err != nil {
		return fmt.Errorf("seal private key: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.records()
	if err != nil {
		return err
	}
	if _, ok := m[entry.Name]; ok {
		return fmt.Errorf("%w: %q", ErrExists, entry.Name)
	}
	m[entry.Name] = keyRecord{Entry: entry, Private: blob}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return saveJSON(s.path(), m, 0o600)
}

// LoadKey returns the public entry for name and whether it exists.
func (s *KeyringFileStore) LoadKey(name domain.KeyName) (domain.KeyEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.records()
	if err != nil {
		return domain.KeyEntry{}, false, err
	}
	rec, ok := m[name]
	return rec.Entry, ok, nil
}

// LoadPrivateKey unseals the private half of name.
func (s *KeyringFileStore) LoadPrivateKey(passphrase string, name domain.KeyName) (domain.EncodedPrivateKey, error) {
	s.mu.Lock()
	m, err := s.records()
	s.mu.Unlock()
	if err != nil {
		return domain.EncodedPrivateKey{}, err
	}
	rec, ok := m[name]
	if !ok {
		return domain.EncodedPrivateKey{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	raw, err := unseal(passphrase, rec.Private, keyAD(name))
	if err != nil {
		return domain.EncodedPrivateKey{}, err
	}
	defer clear(raw)

	var priv domain.EncodedPrivateKey
	if err := json.Unmarshal(raw, &priv); err != nil {
		return domain.EncodedPrivateKey{}, fmt.Errorf("decode private key %q: %w", name, err)
	}
	return priv, nil
}

// ListKeys returns all entries ordered by name.
func (s *KeyringFileStore) ListKeys() ([]domain.KeyEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.records()
	if err != nil {
		return nil, err
	}
	out := make([]domain.KeyEntry, 0, len(m))
	for _, rec := range m {
		out = append(out, rec.Entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteKey removes name and reports whether it was present.
func (s *KeyringFileStore) DeleteKey(name domain.KeyName) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.records()
	if err != nil {
		return false, err
	}
	if _, ok := m[name]; !ok {
		return false, nil
	}
	delete(m, name)
	return true, saveJSON(s.path(), m, 0o600)
}

// Compile-time assertion that KeyringFileStore implements domain.KeyringStore.
var _ domain.KeyringStore = (*KeyringFileStore)(nil)
