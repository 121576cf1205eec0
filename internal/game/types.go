// internal/game/types.go
//
// Core type definitions for the Mastermind game engine.
// Defines:
//   - Code: a secret code or a guess (four digits, each 1–6).
//   - Feedback: exact and partial match counts for one graded guess.
//   - State: coarse game state (playing/won/lost).
//   - Game: state for a single in-progress or finished game.

package game

import (
	"errors"
	"strings"
)

const (
	CodeLength  = 4  // digits per code
	MinDigit    = 1  // smallest digit value
	MaxDigit    = 6  // largest digit value
	MaxAttempts = 10 // valid guesses allowed per game
)

var (
	// ErrMalformedGuess is returned for guess text that is not four digits 1–6.
	ErrMalformedGuess = errors.New("malformed guess")

	// ErrInputExhausted signals that the input ended while a guess was expected.
	ErrInputExhausted = errors.New("input exhausted")

	// ErrGameFinished is returned when a guess is applied to a finished game.
	ErrGameFinished = errors.New("game finished")
)

// Code is an ordered sequence of four digits in [MinDigit, MaxDigit].
// It is used both for the secret and for a player's guess.
type Code [CodeLength]int

// Valid reports whether every digit lies in [MinDigit, MaxDigit].
func (c Code) Valid() bool {
	for _, d := range c {
		if d < MinDigit || d > MaxDigit {
			return false
		}
	}
	return true
}

// String renders the code as its digits, e.g. "1234".
func (c Code) String() string {
	var b strings.Builder
	b.Grow(CodeLength)
	for _, d := range c {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// Feedback is the result of grading one guess.
//   - Exact:   digit correct and in the correct position.
//   - Partial: digit present in the secret but in a different position.
type Feedback struct {
	Exact   int
	Partial int
}

// Symbols used when rendering feedback.
const (
	HitSymbol  = "+"
	NearSymbol = "-"
)

// Solved reports whether every position matched exactly.
func (f Feedback) Solved() bool { return f.Exact == CodeLength }

// String renders all hit symbols followed by all near symbols, e.g. "++-".
// Non-matching positions produce nothing.
func (f Feedback) String() string {
	return strings.Repeat(HitSymbol, f.Exact) + strings.Repeat(NearSymbol, f.Partial)
}

// State is a coarse representation of where a game is.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }

// Game holds the state of a single Mastermind game.
type Game struct {
	ID       string // Unique game identifier (random hex string), used in logs.
	Attempts int    // Valid guesses graded so far (0..MaxAttempts).
	Finished bool   // True once the game is over (won or lost).
	Won      bool   // True if the game was finished with a win.

	secret Code
}
