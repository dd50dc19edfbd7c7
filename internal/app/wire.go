package app

import (
	"crypto/rand"
	"fmt"
	"os"

	"rsakit/internal/crypto"
	"rsakit/internal/domain"
	keysvc "rsakit/internal/services/keys"
	"rsakit/internal/store"
)

// Wire bundles the stores and services used by the CLI.
type Wire struct {
	Keyring   domain.KeyringStore
	Generator *crypto.KeyGenerator
	Keys      domain.KeyService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if cfg.Home == "" {
		return nil, fmt.Errorf("app: home directory is not set")
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home %s: %w", cfg.Home, err)
	}

	r := cfg.Rand
	if r == nil {
		r = rand.Reader
	}

	keyring := store.NewKeyringFileStore(cfg.Home)
	gen := crypto.NewKeyGenerator(r, cfg.MaxKeyAttempts, cfg.MaxPrimeAttempts)

	return &Wire{
		Keyring:   keyring,
		Generator: gen,
		Keys:      keysvc.New(keyring, gen),
	}, nil
}
