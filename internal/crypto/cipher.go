package crypto

import (
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"
)

// Ciphertext holds one value per message unit.
type Ciphertext []*big.Int

// Encrypt computes c = m^e mod n for each code point m of message.
//
// A code point that is not below n fails with ErrEncodingOverflow: the
// message is too wide for this key.
func Encrypt(message string, pub PublicKey) (Ciphertext, error) {
	if err := pub.Validate(); err != nil {
		return nil, err
	}
	if !utf8.ValidString(message) {
		return nil, fmt.Errorf("%w: message is not valid UTF-8", ErrInvalidParameter)
	}

	out := make(Ciphertext, 0, utf8.RuneCountInString(message))
	m := new(big.Int)
	for i, r := range message {
		m.SetInt64(int64(r))
		if m.Cmp(pub.N) >= 0 {
			return nil, fmt.Errorf("%w: code point %U at byte %d is not below modulus %s", ErrEncodingOverflow, r, i, pub.N)
		}
		out = append(out, new(big.Int).Exp(m, pub.E, pub.N))
	}
	return out, nil
}

// Decrypt computes m = c^d mod n for each unit and reassembles the message.
//
// Units outside [0, n) fail with ErrInvalidParameter; a recovered value that is
// not a Unicode scalar value fails with ErrEncodingOverflow, which usually
// means the wrong key was used.
func Decrypt(ct Ciphertext, priv PrivateKey) (string, error) {
	if err := priv.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(ct))
	m := new(big.Int)
	for i, c := range ct {
		if c == nil || c.Sign() < 0 || c.Cmp(priv.N) >= 0 {
			return "", fmt.Errorf("%w: ciphertext unit %d is outside [0, n)", ErrInvalidParameter, i)
		}
		m.Exp(c, priv.D, priv.N)
		if !m.IsInt64() || m.Int64() > utf8.MaxRune || !utf8.ValidRune(rune(m.Int64())) {
			return "", fmt.Errorf("%w: unit %d decrypts to %s, not a code point", ErrEncodingOverflow, i, m)
		}
		sb.WriteRune(rune(m.Int64()))
	}
	return sb.String(), nil
}
