package crypto

import "errors"

var (
	// ErrInvalidParameter is returned for malformed inputs: bit lengths that are
	// too small, moduli <= 1, keys with missing parts or unparsable ciphertext.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidKeyMaterial is returned when no modular inverse exists, e.g.
	// gcd(e, φ(n)) != 1 for a sampled prime pair.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrNonTerminatingGeneration is returned when prime or key generation
	// exhausts its attempt budget.
	ErrNonTerminatingGeneration = errors.New("generation did not terminate within attempt budget")

	// ErrEncodingOverflow is returned when a unit value cannot be represented
	// in the chosen unit or transport form without loss.
	ErrEncodingOverflow = errors.New("encoding overflow")
)
