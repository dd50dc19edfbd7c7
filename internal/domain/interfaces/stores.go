package interfaces

import "rsakit/internal/domain/types"

// KeyringStore persists named key pairs. Public halves are readable without a
// passphrase; private halves are sealed with one.
//
// SaveKey never replaces an existing name; LoadPrivateKey reports a missing
// name with domain.ErrKeyNotFound.
type KeyringStore interface {
	SaveKey(passphrase string, entry types.KeyEntry, priv types.EncodedPrivateKey) error
	LoadKey(name types.KeyName) (types.KeyEntry, bool, error)
	LoadPrivateKey(passphrase string, name types.KeyName) (types.EncodedPrivateKey, error)
	ListKeys() ([]types.KeyEntry, error)
	DeleteKey(name types.KeyName) (bool, error)
}
