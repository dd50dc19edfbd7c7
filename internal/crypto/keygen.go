package crypto

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"

	"rsakit/internal/domain"
	"rsakit/internal/logging"
)

const (
	// PublicExponent is the fixed public exponent e.
	PublicExponent = 65537

	// MinKeyBits is the smallest modulus size accepted by GenerateKeyPair.
	MinKeyBits = 4

	defaultKeyAttempts = 16
)

// PublicKey is the encryption half of a key pair.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey is the decryption half of a key pair.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// KeyPair holds both halves over the same modulus. The generating primes are
// kept in memory only.
type KeyPair struct {
	Public  PublicKey
	Private PrivateKey

	p, q *big.Int
}

// Primes returns the primes p and q the modulus was built from. They are nil
// for key pairs not produced by GenerateKeyPair.
func (kp *KeyPair) Primes() (p, q *big.Int) { return kp.p, kp.q }

// Encode returns the decimal-string form of both keys.
func (kp *KeyPair) Encode() domain.EncodedKeyPair {
	return domain.EncodedKeyPair{
		PublicKey:  kp.Public.Encode(),
		PrivateKey: kp.Private.Encode(),
	}
}

// Encode returns the decimal-string form of the key.
func (k PublicKey) Encode() domain.EncodedPublicKey {
	return domain.EncodedPublicKey{E: k.E.String(), N: k.N.String()}
}

// Encode returns the decimal-string form of the key.
func (k PrivateKey) Encode() domain.EncodedPrivateKey {
	return domain.EncodedPrivateKey{D: k.D.String(), N: k.N.String()}
}

// Validate checks that the key has a modulus > 1 and a positive exponent.
func (k PublicKey) Validate() error { return validateKey("public", k.E, k.N) }

// Validate checks that the key has a modulus > 1 and a positive exponent.
func (k PrivateKey) Validate() error { return validateKey("private", k.D, k.N) }

func validateKey(kind string, exp, n *big.Int) error {
	if exp == nil || n == nil {
		return fmt.Errorf("%w: %s key is incomplete", ErrInvalidParameter, kind)
	}
	if n.Cmp(one) <= 0 {
		return fmt.Errorf("%w: %s key modulus %s, need > 1", ErrInvalidParameter, kind, n)
	}
	if exp.Sign() <= 0 {
		return fmt.Errorf("%w: %s key exponent must be positive", ErrInvalidParameter, kind)
	}
	return nil
}

// DecodePublicKey parses the decimal-string form of a public key.
func DecodePublicKey(k domain.EncodedPublicKey) (PublicKey, error) {
	e, err := parseDecimal("e", k.E)
	if err != nil {
		return PublicKey{}, err
	}
	n, err := parseDecimal("n", k.N)
	if err != nil {
		return PublicKey{}, err
	}
	pub := PublicKey{E: e, N: n}
	return pub, pub.Validate()
}

// DecodePrivateKey parses the decimal-string form of a private key.
func DecodePrivateKey(k domain.EncodedPrivateKey) (PrivateKey, error) {
	d, err := parseDecimal("d", k.D)
	if err != nil {
		return PrivateKey{}, err
	}
	n, err := parseDecimal("n", k.N)
	if err != nil {
		return PrivateKey{}, err
	}
	priv := PrivateKey{D: d, N: n}
	return priv, priv.Validate()
}

func parseDecimal(field, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a decimal integer", ErrInvalidParameter, field)
	}
	return v, nil
}

// KeyGenerator builds key pairs from two primes drawn by Primes.
//
// MaxAttempts bounds how often a (p, q) pair is resampled because p == q or
// gcd(e, φ(n)) != 1; zero or negative selects a default of 16.
type KeyGenerator struct {
	Primes      *PrimeGenerator
	MaxAttempts int
}

// NewKeyGenerator returns a KeyGenerator drawing randomness from r.
func NewKeyGenerator(r io.Reader, maxKeyAttempts, maxPrimeAttempts int) *KeyGenerator {
	return &KeyGenerator{
		Primes:      NewPrimeGenerator(r, maxPrimeAttempts),
		MaxAttempts: maxKeyAttempts,
	}
}

// GenerateKeyPair returns a key pair whose modulus has about bitLength bits.
//
// Both primes have exactly bitLength/2 bits, so the modulus has bitLength or
// bitLength-1 bits for even bitLength.
func (kg *KeyGenerator) GenerateKeyPair(ctx context.Context, bitLength int) (*KeyPair, error) {
	if bitLength < MinKeyBits {
		return nil, fmt.Errorf("%w: key bit length %d, need at least %d", ErrInvalidParameter, bitLength, MinKeyBits)
	}
	primes := kg.Primes
	if primes == nil {
		primes = &PrimeGenerator{}
	}
	attempts := kg.MaxAttempts
	if attempts <= 0 {
		attempts = defaultKeyAttempts
	}

	e := big.NewInt(PublicExponent)
	half := bitLength / 2
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		p, err := primes.Generate(ctx, half)
		if err != nil {
			return nil, fmt.Errorf("generate p: %w", err)
		}
		q, err := primes.Generate(ctx, half)
		if err != nil {
			return nil, fmt.Errorf("generate q: %w", err)
		}
		if p.Cmp(q) == 0 {
			logging.Debugf("keygen attempt %d/%d: p == q, resampling", attempt, attempts)
			lastErr = fmt.Errorf("%w: p == q", ErrNonTerminatingGeneration)
			continue
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
		d, err := ModInverse(e, phi)
		if errors.Is(err, ErrInvalidKeyMaterial) {
			logging.Debugf("keygen attempt %d/%d: e not invertible mod φ(n), resampling", attempt, attempts)
			lastErr = err
			continue
		}
		if err != nil {
			return nil, err
		}

		return &KeyPair{
			Public:  PublicKey{E: e, N: n},
			Private: PrivateKey{D: d, N: new(big.Int).Set(n)},
			p:       p,
			q:       q,
		}, nil
	}
	return nil, fmt.Errorf("no key pair after %d attempts: %w", attempts, lastErr)
}
