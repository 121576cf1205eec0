// internal/game/engine.go
//
// Core game engine for a single Mastermind session.
// Responsibilities:
//   - Create new games around a secret code.
//   - Parse and validate guess text (four digits, each 1–6).
//   - Grade guesses with the two-pass consume-on-match algorithm.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Secret generation lives in the code package; New takes the secret as input
//     so tests can pin it.
//   - randomID() is a compact hex identifier for correlating log lines.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// New constructs a new game around secret.
func New(secret Code) *Game {
	return &Game{
		ID:     randomID(),
		secret: secret,
	}
}

// ParseGuess converts guess text into a Code.
// The text must be exactly CodeLength ASCII digits, each between '1' and '6';
// no whitespace or separators are tolerated. Failures wrap ErrMalformedGuess.
func ParseGuess(s string) (Code, error) {
	var c Code
	if len(s) != CodeLength {
		return c, fmt.Errorf("%w: want %d digits, got %d characters", ErrMalformedGuess, CodeLength, len(s))
	}
	for i := 0; i < CodeLength; i++ {
		ch := s[i]
		if ch < '0'+MinDigit || ch > '0'+MaxDigit {
			return Code{}, fmt.Errorf("%w: invalid digit %q at position %d", ErrMalformedGuess, ch, i+1)
		}
		c[i] = int(ch - '0')
	}
	return c, nil
}

// ApplyGuess grades a guess and advances the game.
// Returns: the feedback, the new state, or an error.
//
// State transitions:
//   - If every position is an exact match → Finished = true, Won = true.
//   - Else if the number of attempts reaches MaxAttempts → Finished = true (loss).
func (g *Game) ApplyGuess(guess Code) (Feedback, State, error) {
	if g.Finished {
		return Feedback{}, g.State(), ErrGameFinished
	}
	if !guess.Valid() {
		return Feedback{}, g.State(), fmt.Errorf("%w: %v", ErrMalformedGuess, [CodeLength]int(guess))
	}

	fb := Grade(g.secret, guess)
	g.Attempts++

	if fb.Solved() {
		g.Finished, g.Won = true, true
	} else if g.Attempts >= MaxAttempts {
		g.Finished = true
	}
	return fb, g.State(), nil
}

// State reports the current game state.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Remaining reports how many valid guesses are still allowed.
func (g *Game) Remaining() int {
	if g.Finished {
		return 0
	}
	return MaxAttempts - g.Attempts
}

// Secret returns the secret code.
func (g *Game) Secret() Code { return g.secret }

// Grade compares guess against secret.
//
// Pass 1:
//   - Every position where the digits agree is an exact match; that secret
//     slot is consumed.
//
// Pass 2:
//   - For each guess position that was not an exact match, consume the first
//     unconsumed secret slot holding the same digit and count a partial match.
//
// A digit is therefore never credited more often than it occurs in the secret.
// Neither argument is modified.
func Grade(secret, guess Code) Feedback {
	var fb Feedback
	var exact, consumed [CodeLength]bool

	for i := 0; i < CodeLength; i++ {
		if guess[i] == secret[i] {
			fb.Exact++
			exact[i] = true
			consumed[i] = true
		}
	}

	for i := 0; i < CodeLength; i++ {
		if exact[i] {
			continue
		}
		for j := 0; j < CodeLength; j++ {
			if !consumed[j] && secret[j] == guess[i] {
				consumed[j] = true
				fb.Partial++
				break
			}
		}
	}
	return fb
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
