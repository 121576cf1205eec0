// internal/code/code.go
//
// Secret code generation for the game engine.
//
// Responsibilities:
//   - Produce secret codes of game.CodeLength independent, uniformly random
//     digits in [game.MinDigit, game.MaxDigit].
//   - Keep the random source injectable so tests and replays can pin it.
//
// Sources:
//   - CryptoSource: crypto/rand backed, used for real games.
//   - NewSeededSource: math/rand backed and deterministic for a given seed.

package code

import (
	"crypto/rand"
	"math/big"
	mrand "math/rand"

	"github.com/robalobadob/mastermind/internal/game"
)

// Source yields uniformly distributed integers in [0, n).
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

// Intn returns a cryptographically random integer in [0, n).
// It panics if n <= 0 or if the system entropy source fails.
func (CryptoSource) Intn(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("code: read random: " + err.Error())
	}
	return int(nBig.Int64())
}

// NewSeededSource returns a deterministic source: the same seed always yields
// the same sequence of codes.
func NewSeededSource(seed int64) Source {
	return mrand.New(mrand.NewSource(seed))
}

// Generate draws a fresh secret code from src.
func Generate(src Source) game.Code {
	var c game.Code
	span := game.MaxDigit - game.MinDigit + 1
	for i := range c {
		c[i] = src.Intn(span) + game.MinDigit
	}
	return c
}
