package domain

import "errors"

var (
	// ErrKeyNotFound is returned when no key is stored under a name.
	ErrKeyNotFound = errors.New("key not found")

	// ErrKeyExists is returned when a name is already taken in the keyring.
	ErrKeyExists = errors.New("key already exists")
)
