package interfaces

import (
	"context"

	"rsakit/internal/domain/types"
)

// KeyService generates key pairs and encrypts or decrypts with stored keys.
type KeyService interface {
	Generate(ctx context.Context, passphrase string, name types.KeyName, bits int) (types.KeyEntry, error)
	Entry(name types.KeyName) (types.KeyEntry, error)
	PublicKey(name types.KeyName) (types.EncodedPublicKey, error)
	Fingerprint(name types.KeyName) (types.Fingerprint, error)
	List() ([]types.KeyEntry, error)
	Delete(name types.KeyName) error

	Encrypt(name types.KeyName, message string, enc types.Encoding) (string, error)
	Decrypt(passphrase string, name types.KeyName, ciphertext string, enc types.Encoding) (string, error)
}
