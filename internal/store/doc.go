// Package store provides file-based persistence for rsakit's keyring.
//
// KeyringFileStore keeps every named key pair in keyring.json under the
// configured home directory. Public halves are stored in clear as decimal
// strings; private halves are sealed with a passphrase (scrypt key derivation,
// XChaCha20-Poly1305, key name bound as associated data). Writes go through a
// temp file and rename, and all methods are safe for concurrent use.
package store
