package types

// EncodedPublicKey is a public key with both numbers as decimal strings.
type EncodedPublicKey struct {
	E string `json:"e"`
	N string `json:"n"`
}

// EncodedPrivateKey is a private key with both numbers as decimal strings.
type EncodedPrivateKey struct {
	D string `json:"d"`
	N string `json:"n"`
}

// EncodedKeyPair is the interchange form returned by key generation.
type EncodedKeyPair struct {
	PublicKey  EncodedPublicKey  `json:"publicKey"`
	PrivateKey EncodedPrivateKey `json:"privateKey"`
}

// KeyEntry describes a stored key pair. It carries only public material.
type KeyEntry struct {
	Name        KeyName          `json:"name"`
	Fingerprint Fingerprint      `json:"fingerprint"`
	Bits        int              `json:"bits"`
	PublicKey   EncodedPublicKey `json:"public_key"`
	CreatedUTC  int64            `json:"created_utc"`
}
