package crypto_test

import (
	"errors"
	"math/big"
	"testing"

	"rsakit/internal/crypto"
)

func TestModInverseKnown(t *testing.T) {
	cases := []struct{ a, m, want int64 }{
		{3, 11, 4},
		{65537, 3120, 2753},
		{10, 17, 12},
		{1, 2, 1},
		{-3, 11, 7},
		{14, 11, 4},
	}
	for _, tc := range cases {
		got, err := crypto.ModInverse(big.NewInt(tc.a), big.NewInt(tc.m))
		if err != nil {
			t.Fatalf("ModInverse(%d, %d): %v", tc.a, tc.m, err)
		}
		if got.Int64() != tc.want {
			t.Fatalf("ModInverse(%d, %d) = %s, want %d", tc.a, tc.m, got, tc.want)
		}
	}
}

func TestModInverseMatchesMathBig(t *testing.T) {
	for m := int64(2); m < 200; m++ {
		for a := int64(0); a < m; a++ {
			bm := big.NewInt(m)
			want := new(big.Int).ModInverse(big.NewInt(a), bm)
			got, err := crypto.ModInverse(big.NewInt(a), bm)

			if want == nil {
				if !errors.Is(err, crypto.ErrInvalidKeyMaterial) {
					t.Fatalf("ModInverse(%d, %d): expected ErrInvalidKeyMaterial, got %v, %v", a, m, got, err)
				}
				continue
			}
			if err != nil {
				t.Fatalf("ModInverse(%d, %d): %v", a, m, err)
			}
			if got.Cmp(want) != 0 {
				t.Fatalf("ModInverse(%d, %d) = %s, want %s", a, m, got, want)
			}
		}
	}
}

func TestModInverseProperty(t *testing.T) {
	m := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	a, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	x, err := crypto.ModInverse(a, m)
	if err != nil {
		t.Fatalf("ModInverse: %v", err)
	}
	if x.Sign() < 0 || x.Cmp(m) >= 0 {
		t.Fatalf("result %s outside [0, m)", x)
	}
	prod := new(big.Int).Mul(a, x)
	if prod.Mod(prod, m).Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("a*x mod m = %s, want 1", prod)
	}
}

func TestModInverseErrors(t *testing.T) {
	if _, err := crypto.ModInverse(big.NewInt(6), big.NewInt(9)); !errors.Is(err, crypto.ErrInvalidKeyMaterial) {
		t.Fatalf("non-coprime: got %v", err)
	}
	if _, err := crypto.ModInverse(big.NewInt(9), big.NewInt(9)); !errors.Is(err, crypto.ErrInvalidKeyMaterial) {
		t.Fatalf("a ≡ 0: got %v", err)
	}
	for _, m := range []int64{1, 0, -5} {
		if _, err := crypto.ModInverse(big.NewInt(3), big.NewInt(m)); !errors.Is(err, crypto.ErrInvalidParameter) {
			t.Fatalf("m = %d: got %v", m, err)
		}
	}
}
