package dice

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand/v2"
)

// SourceFunc adapts a plain function to Source.
type SourceFunc func(n int) int

// Intn calls f(n).
func (f SourceFunc) Intn(n int) int { return f(n) }

// NewCryptoSource returns a Source backed by crypto/rand, used for live play.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return SourceFunc(cryptoIntn)
}

// NewSeededSource returns a deterministic Source: two sources built from the
// same seed produce the same sequence. Used for reproducible sessions.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewSeededSource(seed uint64) Source {
	r := mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return SourceFunc(func(n int) int {
		mustPositive(n)
		return r.IntN(n)
	})
}

func cryptoIntn(n int) int {
	mustPositive(n)
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

func mustPositive(n int) {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
}
