// Package keys manages named RSA key pairs in the local keyring.
//
// It enforces the passphrase policy and key naming rules, generates key pairs
// through crypto.KeyGenerator, persists them via domain.KeyringStore and
// performs encryption and decryption with stored keys.
package keys
