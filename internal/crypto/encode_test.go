package crypto_test

import (
	"encoding/base64"
	"errors"
	"math/big"
	"testing"

	"rsakit/internal/crypto"
)

func TestParseEncoding(t *testing.T) {
	cases := map[string]crypto.Encoding{
		"decimal": crypto.EncodingDecimal,
		"BASE64":  crypto.EncodingBase64,
		"Runes":   crypto.EncodingRunes,
	}
	for in, want := range cases {
		got, err := crypto.ParseEncoding(in)
		if err != nil || got != want {
			t.Fatalf("ParseEncoding(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := crypto.ParseEncoding("hex"); !errors.Is(err, crypto.ErrInvalidParameter) {
		t.Fatalf("unknown encoding: got %v", err)
	}
}

func TestCiphertextRoundTrip(t *testing.T) {
	kp := generate(t, 128)
	ct, err := crypto.Encrypt("transport ✓", kp.Public)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	for _, enc := range []crypto.Encoding{crypto.EncodingDecimal, crypto.EncodingBase64} {
		text, err := crypto.EncodeCiphertext(ct, enc, kp.Public.N)
		if err != nil {
			t.Fatalf("EncodeCiphertext(%s): %v", enc, err)
		}
		back, err := crypto.DecodeCiphertext(text, enc, kp.Private.N)
		if err != nil {
			t.Fatalf("DecodeCiphertext(%s): %v", enc, err)
		}
		if len(back) != len(ct) {
			t.Fatalf("%s: got %d units, want %d", enc, len(back), len(ct))
		}
		for i := range ct {
			if back[i].Cmp(ct[i]) != 0 {
				t.Fatalf("%s: unit %d = %s, want %s", enc, i, back[i], ct[i])
			}
		}
	}
}

func TestBase64BlocksAreFixedWidth(t *testing.T) {
	n := big.NewInt(3233) // 12 bits, 2-byte blocks
	ct := crypto.Ciphertext{big.NewInt(1), big.NewInt(3232), big.NewInt(0)}
	text, err := crypto.EncodeCiphertext(ct, crypto.EncodingBase64, n)
	if err != nil {
		t.Fatalf("EncodeCiphertext: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(raw) != 6 {
		t.Fatalf("got %d bytes, want 6", len(raw))
	}

	if _, err := crypto.DecodeCiphertext(crypto.B64(raw[:5]), crypto.EncodingBase64, n); !errors.Is(err, crypto.ErrInvalidParameter) {
		t.Fatalf("truncated blocks: got %v", err)
	}
	if _, err := crypto.EncodeCiphertext(crypto.Ciphertext{big.NewInt(1 << 20)}, crypto.EncodingBase64, n); !errors.Is(err, crypto.ErrEncodingOverflow) {
		t.Fatalf("oversized unit: got %v", err)
	}
	if _, err := crypto.EncodeCiphertext(ct, crypto.EncodingBase64, nil); !errors.Is(err, crypto.ErrInvalidParameter) {
		t.Fatalf("missing modulus: got %v", err)
	}
}

func TestRunesEncoding(t *testing.T) {
	pub, priv := textbookKey(t)
	// Units below 3233 never reach the surrogate range.
	ct, err := crypto.Encrypt("legacy", pub)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	text, err := crypto.EncodeCiphertext(ct, crypto.EncodingRunes, pub.N)
	if err != nil {
		t.Fatalf("EncodeCiphertext: %v", err)
	}
	back, err := crypto.DecodeCiphertext(text, crypto.EncodingRunes, priv.N)
	if err != nil {
		t.Fatalf("DecodeCiphertext: %v", err)
	}
	got, err := crypto.Decrypt(back, priv)
	if err != nil || got != "legacy" {
		t.Fatalf("Decrypt = %q, %v", got, err)
	}

	for _, c := range []*big.Int{big.NewInt(0xD800), big.NewInt(0x110000), new(big.Int).Lsh(big.NewInt(1), 80)} {
		if _, err := crypto.EncodeCiphertext(crypto.Ciphertext{c}, crypto.EncodingRunes, nil); !errors.Is(err, crypto.ErrEncodingOverflow) {
			t.Fatalf("unit %s: got %v", c, err)
		}
	}
	if _, err := crypto.DecodeCiphertext("\xff", crypto.EncodingRunes, nil); !errors.Is(err, crypto.ErrInvalidParameter) {
		t.Fatalf("invalid UTF-8: got %v", err)
	}
}

func TestDecodeDecimalRejectsGarbage(t *testing.T) {
	for _, s := range []string{"12 x 4", "-5", "1.5"} {
		if _, err := crypto.DecodeCiphertext(s, crypto.EncodingDecimal, nil); !errors.Is(err, crypto.ErrInvalidParameter) {
			t.Fatalf("%q: got %v", s, err)
		}
	}
	ct, err := crypto.DecodeCiphertext("  7\n 11  ", crypto.EncodingDecimal, nil)
	if err != nil || len(ct) != 2 || ct[1].Int64() != 11 {
		t.Fatalf("whitespace tolerant decode = %v, %v", ct, err)
	}
}
