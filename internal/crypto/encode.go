package crypto

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"rsakit/internal/domain"
)

// Encoding selects how a Ciphertext travels as text.
type Encoding = domain.Encoding

const (
	EncodingDecimal = domain.EncodingDecimal
	EncodingBase64  = domain.EncodingBase64
	EncodingRunes   = domain.EncodingRunes
)

// Encodings lists the supported transport encodings.
var Encodings = []Encoding{EncodingDecimal, EncodingBase64, EncodingRunes}

// ParseEncoding maps a name to an Encoding.
func ParseEncoding(s string) (Encoding, error) {
	for _, e := range Encodings {
		if strings.EqualFold(s, string(e)) {
			return e, nil
		}
	}
	return "", fmt.Errorf("%w: unknown encoding %q", ErrInvalidParameter, s)
}

// EncodeCiphertext renders ct as text. n is the key modulus and is only
// consulted by EncodingBase64.
func EncodeCiphertext(ct Ciphertext, enc Encoding, n *big.Int) (string, error) {
	switch enc {
	case EncodingDecimal:
		parts := make([]string, len(ct))
		for i, c := range ct {
			if c == nil || c.Sign() < 0 {
				return "", fmt.Errorf("%w: unit %d is not a non-negative integer", ErrInvalidParameter, i)
			}
			parts[i] = c.String()
		}
		return strings.Join(parts, " "), nil

	case EncodingBase64:
		w, err := blockWidth(n)
		if err != nil {
			return "", err
		}
		buf := make([]byte, w*len(ct))
		for i, c := range ct {
			if c == nil || c.Sign() < 0 {
				return "", fmt.Errorf("%w: unit %d is not a non-negative integer", ErrInvalidParameter, i)
			}
			if c.BitLen() > 8*w {
				return "", fmt.Errorf("%w: unit %d needs %d bits, block holds %d", ErrEncodingOverflow, i, c.BitLen(), 8*w)
			}
			c.FillBytes(buf[i*w : (i+1)*w])
		}
		return B64(buf), nil

	case EncodingRunes:
		var sb strings.Builder
		for i, c := range ct {
			if c == nil || !c.IsInt64() || c.Int64() < 0 || c.Int64() > utf8.MaxRune || !utf8.ValidRune(rune(c.Int64())) {
				return "", fmt.Errorf("%w: unit %d (%s) does not fit in one character", ErrEncodingOverflow, i, c)
			}
			sb.WriteRune(rune(c.Int64()))
		}
		return sb.String(), nil
	}
	return "", fmt.Errorf("%w: unknown encoding %q", ErrInvalidParameter, enc)
}

// DecodeCiphertext parses text produced by EncodeCiphertext.
func DecodeCiphertext(s string, enc Encoding, n *big.Int) (Ciphertext, error) {
	switch enc {
	case EncodingDecimal:
		fields := strings.Fields(s)
		ct := make(Ciphertext, len(fields))
		for i, f := range fields {
			v, ok := new(big.Int).SetString(f, 10)
			if !ok || v.Sign() < 0 {
				return nil, fmt.Errorf("%w: unit %d %q is not a non-negative decimal", ErrInvalidParameter, i, f)
			}
			ct[i] = v
		}
		return ct, nil

	case EncodingBase64:
		w, err := blockWidth(n)
		if err != nil {
			return nil, err
		}
		raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
		}
		if len(raw)%w != 0 {
			return nil, fmt.Errorf("%w: %d bytes is not a multiple of block width %d", ErrInvalidParameter, len(raw), w)
		}
		ct := make(Ciphertext, len(raw)/w)
		for i := range ct {
			ct[i] = new(big.Int).SetBytes(raw[i*w : (i+1)*w])
		}
		return ct, nil

	case EncodingRunes:
		if !utf8.ValidString(s) {
			return nil, fmt.Errorf("%w: ciphertext is not valid UTF-8", ErrInvalidParameter)
		}
		ct := make(Ciphertext, 0, utf8.RuneCountInString(s))
		for _, r := range s {
			ct = append(ct, big.NewInt(int64(r)))
		}
		return ct, nil
	}
	return nil, fmt.Errorf("%w: unknown encoding %q", ErrInvalidParameter, enc)
}

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

func blockWidth(n *big.Int) (int, error) {
	if n == nil || n.Cmp(one) <= 0 {
		return 0, fmt.Errorf("%w: base64 encoding needs the key modulus", ErrInvalidParameter)
	}
	return (n.BitLen() + 7) / 8, nil
}
