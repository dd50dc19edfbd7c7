package crypto

import (
	"fmt"
	"math/big"
)

// ModInverse returns r in [0, m) with (a·r) mod m == 1.
//
// It fails with ErrInvalidParameter when m <= 1 and with ErrInvalidKeyMaterial
// when gcd(a, m) != 1. The reduction is the iterative extended Euclidean
// algorithm tracking only the coefficient of a.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Cmp(one) <= 0 {
		return nil, fmt.Errorf("%w: modulus %s, need > 1", ErrInvalidParameter, m)
	}

	b := new(big.Int).Mod(a, m)
	if b.Sign() == 0 {
		return nil, fmt.Errorf("%w: %s has no inverse mod %s", ErrInvalidKeyMaterial, a, m)
	}
	m0 := new(big.Int).Set(m)
	x, y := big.NewInt(1), big.NewInt(0)

	q, r, t := new(big.Int), new(big.Int), new(big.Int)
	for b.Cmp(one) > 0 {
		if m0.Sign() == 0 {
			// b holds gcd(a, m) > 1.
			return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrInvalidKeyMaterial, a, m, b)
		}
		q.QuoRem(b, m0, r)
		b, m0, r = m0, r, b

		// x, y = y, x - q*y
		t.Mul(q, y)
		t.Sub(x, t)
		x, y, t = y, t, x
	}

	if x.Sign() < 0 {
		x.Add(x, m)
	}
	return x, nil
}
