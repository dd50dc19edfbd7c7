package crypto

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	chunkBits  = 16
	chunkBytes = chunkBits / 8

	minCandidateAttempts    = 1024
	candidateAttemptsPerBit = 64
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// smallPrimes screens candidates before the Miller-Rabin rounds.
var smallPrimes = []uint64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

// PrimeGenerator produces probable primes of an exact bit length.
//
// Rand feeds both candidate generation and the Miller-Rabin witnesses; nil
// means crypto/rand.Reader. MaxAttempts caps the number of candidates drawn by
// Generate; zero or negative selects a budget that scales with the bit length.
type PrimeGenerator struct {
	Rand        io.Reader
	MaxAttempts int
}

// NewPrimeGenerator returns a PrimeGenerator reading from r.
func NewPrimeGenerator(r io.Reader, maxAttempts int) *PrimeGenerator {
	return &PrimeGenerator{Rand: r, MaxAttempts: maxAttempts}
}

func (g *PrimeGenerator) reader() io.Reader {
	if g.Rand == nil {
		return rand.Reader
	}
	return g.Rand
}

func (g *PrimeGenerator) budget(bits int) int {
	if g.MaxAttempts > 0 {
		return g.MaxAttempts
	}
	return max(minCandidateAttempts, candidateAttemptsPerBit*bits)
}

// GenerateCandidate returns a random odd integer of exactly bits bits.
//
// The value is assembled from ⌈bits/16⌉ random 16-bit chunks, truncated to
// bits, and has its top and low bits set.
func (g *PrimeGenerator) GenerateCandidate(bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: prime bit length %d, need at least 2", ErrInvalidParameter, bits)
	}
	chunks := (bits + chunkBits - 1) / chunkBits
	buf := make([]byte, chunks*chunkBytes)
	if _, err := io.ReadFull(g.reader(), buf); err != nil {
		return nil, fmt.Errorf("read random chunks: %w", err)
	}

	c := new(big.Int).SetBytes(buf)
	c.Rsh(c, uint(chunks*chunkBits-bits))
	c.SetBit(c, bits-1, 1)
	c.SetBit(c, 0, 1)
	return c, nil
}

// Generate draws candidates until one passes IsProbablyPrime.
//
// It fails with ErrNonTerminatingGeneration once the attempt budget is spent
// and returns ctx.Err() if ctx is done between candidates.
func (g *PrimeGenerator) Generate(ctx context.Context, bits int) (*big.Int, error) {
	budget := g.budget(bits)
	for i := 0; i < budget; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c, err := g.GenerateCandidate(bits)
		if err != nil {
			return nil, err
		}
		if hasSmallFactor(c) {
			continue
		}
		ok, err := g.millerRabin(c)
		if err != nil {
			return nil, err
		}
		if ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: no %d-bit prime in %d candidates", ErrNonTerminatingGeneration, bits, budget)
}

// IsProbablyPrime runs ⌈log2 n⌉ Miller-Rabin rounds with random bases.
// A failure to draw a witness is reported as false.
func (g *PrimeGenerator) IsProbablyPrime(n *big.Int) bool {
	ok, err := g.millerRabin(n)
	return err == nil && ok
}

// IsProbablyPrime reports whether n is probably prime, drawing witnesses from
// crypto/rand.
func IsProbablyPrime(n *big.Int) bool {
	return (&PrimeGenerator{}).IsProbablyPrime(n)
}

func (g *PrimeGenerator) millerRabin(n *big.Int) (bool, error) {
	switch {
	case n.Cmp(two) < 0:
		return false, nil
	case n.Cmp(two) == 0, n.Cmp(three) == 0:
		return true, nil
	case n.Bit(0) == 0:
		return false, nil
	}

	// n-1 = 2^s * d with d odd.
	nm1 := new(big.Int).Sub(n, one)
	s := nm1.TrailingZeroBits()
	d := new(big.Int).Rsh(nm1, s)

	// rand.Int draws from [0, n-3); shifting by 2 gives [2, n-2].
	span := new(big.Int).Sub(n, three)
	a := new(big.Int)
	for i := 0; i < millerRabinRounds(n); i++ {
		r, err := rand.Int(g.reader(), span)
		if err != nil {
			return false, fmt.Errorf("draw witness: %w", err)
		}
		a.Add(r, two)
		if !strongProbablePrime(a, d, nm1, n, s) {
			return false, nil
		}
	}
	return true, nil
}

// strongProbablePrime reports whether n passes one Miller-Rabin round for base a.
func strongProbablePrime(a, d, nm1, n *big.Int, s uint) bool {
	x := new(big.Int).Exp(a, d, n)
	if x.Cmp(one) == 0 || x.Cmp(nm1) == 0 {
		return true
	}
	for r := uint(1); r < s; r++ {
		x.Mul(x, x).Mod(x, n)
		if x.Cmp(nm1) == 0 {
			return true
		}
		if x.Cmp(one) == 0 {
			return false
		}
	}
	return false
}

// millerRabinRounds returns ⌈log2 n⌉ for n > 1.
func millerRabinRounds(n *big.Int) int {
	b := n.BitLen()
	if n.TrailingZeroBits() == uint(b-1) {
		return b - 1
	}
	return b
}

func hasSmallFactor(n *big.Int) bool {
	var p, r big.Int
	for _, sp := range smallPrimes {
		p.SetUint64(sp)
		if n.Cmp(&p) == 0 {
			return false
		}
		if r.Mod(n, &p).Sign() == 0 {
			return true
		}
	}
	return false
}
