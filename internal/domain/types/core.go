package types

// KeyName identifies a key pair in the local keyring.
type KeyName string

// String returns the string form of the key name.
func (n KeyName) String() string { return string(n) }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Encoding names a ciphertext transport form.
type Encoding string

// String returns the string form of the encoding.
func (e Encoding) String() string { return string(e) }

const (
	EncodingDecimal Encoding = "decimal"
	EncodingBase64  Encoding = "base64"
	EncodingRunes   Encoding = "runes"
)
