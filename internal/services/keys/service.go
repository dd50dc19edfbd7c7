package keys

import (
	"context"
	"fmt"
	"time"
	"unicode"

	"rsakit/internal/crypto"
	"rsakit/internal/domain"
	"rsakit/internal/logging"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12

	maxNameLength = 64
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)

	// ErrKeyNotFound is returned when no key is stored under the name.
	ErrKeyNotFound = domain.ErrKeyNotFound

	// ErrKeyExists is returned when generating over an existing name.
	ErrKeyExists = domain.ErrKeyExists

	// ErrInvalidName is returned for empty, overlong or non-portable names.
	ErrInvalidName = fmt.Errorf("invalid key name (1-%d of letters, digits, '.', '_', '-')", maxNameLength)
)

// Service generates and uses key pairs backed by a keyring store.
type Service struct {
	store domain.KeyringStore
	gen   *crypto.KeyGenerator
	now   func() time.Time
}

// New returns a key service backed by the given store and generator.
func New(s domain.KeyringStore, gen *crypto.KeyGenerator) *Service {
	return &Service{store: s, gen: gen, now: time.Now}
}

// Generate creates a bits-sized key pair, seals its private half with the
// passphrase and stores it under name.
func (s *Service) Generate(
	ctx context.Context,
	passphrase string,
	name domain.KeyName,
	bits int,
) (domain.KeyEntry, error) {
	if err := validateName(name); err != nil {
		return domain.KeyEntry{}, err
	}
	if !isSecurePassphrase(passphrase) {
		return domain.KeyEntry{}, ErrWeakPassphrase
	}
	// Early check to skip generation; SaveKey re-checks under the store lock.
	if _, ok, err := s.store.LoadKey(name); err != nil {
		return domain.KeyEntry{}, err
	} else if ok {
		return domain.KeyEntry{}, fmt.Errorf("%w: %q", ErrKeyExists, name)
	}

	started := s.now()
	kp, err := s.gen.GenerateKeyPair(ctx, bits)
	if err != nil {
		return domain.KeyEntry{}, fmt.Errorf("generate %d-bit key %q: %w", bits, name, err)
	}
	enc := kp.Encode()

	entry := domain.KeyEntry{
		Name:        name,
		Fingerprint: domain.Fingerprint(crypto.Fingerprint(kp.Public)),
		Bits:        kp.Public.N.BitLen(),
		PublicKey:   enc.PublicKey,
		CreatedUTC:  s.now().UTC().Unix(),
	}
	if err := s.store.SaveKey(passphrase, entry, enc.PrivateKey); err != nil {
		return domain.KeyEntry{}, err
	}
	logging.Infof("generated %d-bit key %q (%s) in %s", entry.Bits, name, entry.Fingerprint, s.now().Sub(started).Round(time.Millisecond))
	return entry, nil
}

// Entry returns the stored public entry for name.
func (s *Service) Entry(name domain.KeyName) (domain.KeyEntry, error) {
	e, ok, err := s.store.LoadKey(name)
	if err != nil {
		return domain.KeyEntry{}, err
	}
	if !ok {
		return domain.KeyEntry{}, fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	return e, nil
}

// PublicKey returns the public key stored under name.
func (s *Service) PublicKey(name domain.KeyName) (domain.EncodedPublicKey, error) {
	e, err := s.Entry(name)
	if err != nil {
		return domain.EncodedPublicKey{}, err
	}
	return e.PublicKey, nil
}

// Fingerprint recomputes the fingerprint of the public key stored under name.
func (s *Service) Fingerprint(name domain.KeyName) (domain.Fingerprint, error) {
	pub, err := s.publicKey(name)
	if err != nil {
		return "", err
	}
	return domain.Fingerprint(crypto.Fingerprint(pub)), nil
}

func (s *Service) publicKey(name domain.KeyName) (crypto.PublicKey, error) {
	enc, err := s.PublicKey(name)
	if err != nil {
		return crypto.PublicKey{}, err
	}
	pub, err := crypto.DecodePublicKey(enc)
	if err != nil {
		return crypto.PublicKey{}, fmt.Errorf("public key %q: %w", name, err)
	}
	return pub, nil
}

// List returns all stored entries ordered by name.
func (s *Service) List() ([]domain.KeyEntry, error) { return s.store.ListKeys() }

// Delete removes name from the keyring.
func (s *Service) Delete(name domain.KeyName) error {
	removed, err := s.store.DeleteKey(name)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, name)
	}
	logging.Infof("deleted key %q", name)
	return nil
}

// Encrypt encrypts message with the public key stored under name and renders
// the ciphertext with enc.
func (s *Service) Encrypt(name domain.KeyName, message string, enc domain.Encoding) (string, error) {
	pub, err := s.publicKey(name)
	if err != nil {
		return "", err
	}
	ct, err := crypto.Encrypt(message, pub)
	if err != nil {
		return "", err
	}
	return crypto.EncodeCiphertext(ct, enc, pub.N)
}

// Decrypt unseals the private key stored under name and decrypts ciphertext
// rendered with enc.
func (s *Service) Decrypt(
	passphrase string,
	name domain.KeyName,
	ciphertext string,
	enc domain.Encoding,
) (string, error) {
	encoded, err := s.store.LoadPrivateKey(passphrase, name)
	if err != nil {
		return "", err
	}
	priv, err := crypto.DecodePrivateKey(encoded)
	if err != nil {
		return "", fmt.Errorf("private key %q: %w", name, err)
	}
	ct, err := crypto.DecodeCiphertext(ciphertext, enc, priv.N)
	if err != nil {
		return "", err
	}
	return crypto.Decrypt(ct, priv)
}

func validateName(name domain.KeyName) error {
	if len(name) == 0 || len(name) > maxNameLength {
		return ErrInvalidName
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			return ErrInvalidName
		}
	}
	return nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.KeyService.
var _ domain.KeyService = (*Service)(nil)
