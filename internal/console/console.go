// internal/console/console.go
//
// Interactive console front end for the game engine.
// Responsibilities:
//   - Read one line of guess text per request from any io.Reader.
//   - Write prompts, feedback lines and the final win/lose line to any io.Writer.
//   - Drive one game from its first attempt to a terminal state.
//
// Notes:
//   - Malformed guesses are answered with the invalid message and re-prompted;
//     they never consume an attempt.
//   - End of input surfaces as game.ErrInputExhausted so callers can tell it
//     apart from a lost game.
//   - Diagnostics go to the global zerolog logger, never to Out.

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/game"
)

// LineReader supplies one line of text per call.
// Implementations return game.ErrInputExhausted when no more lines exist.
type LineReader interface {
	ReadLine() (string, error)
}

// bufReader adapts a bufio.Reader to LineReader.
type bufReader struct {
	r *bufio.Reader
}

// NewLineReader reads lines from r. Line terminators ("\n" or "\r\n") are
// stripped; a final line without a terminator is still returned. Lines longer
// than the read buffer are truncated to its size and the rest is discarded,
// so they still come back as a (malformed) guess.
func NewLineReader(r io.Reader) LineReader {
	return &bufReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line, game.ErrInputExhausted at end of stream,
// or the wrapped read error.
func (b *bufReader) ReadLine() (string, error) {
	chunk, isPrefix, err := b.r.ReadLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", game.ErrInputExhausted
		}
		return "", fmt.Errorf("read guess: %w", err)
	}
	line := string(chunk)
	for isPrefix {
		if _, isPrefix, err = b.r.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", fmt.Errorf("read guess: %w", err)
		}
	}
	return line, nil
}

// Messages holds the fixed texts written to the player.
type Messages struct {
	Prompt  string // written before every read, without a trailing newline
	Invalid string // written after a malformed guess
	Win     string // final line for a won game
	Lose    string // final line for a lost game
}

// DefaultMessages returns the stock English texts.
func DefaultMessages() Messages {
	return Messages{
		Prompt:  "Enter a guess. Your guess must be four numbers between 1 and 6. ",
		Invalid: "Invalid guess. Try again.\n",
		Win:     "You win.",
		Lose:    "You lose.",
	}
}

// Session bundles the input and output collaborators for one game.
type Session struct {
	In       LineReader
	Out      io.Writer
	Messages Messages
}

// NewSession constructs a Session over r and w with the default messages.
func NewSession(r io.Reader, w io.Writer) *Session {
	return &Session{In: NewLineReader(r), Out: w, Messages: DefaultMessages()}
}

// Play runs g until it is won or lost and writes the outcome line.
// Returns: the terminal state, or StatePlaying and an error if the input ends
// (wrapping game.ErrInputExhausted) or reading/writing fails.
func (s *Session) Play(g *game.Game) (game.State, error) {
	log.Debug().Str("gameId", g.ID).Msg("game started")

	for !g.State().Terminal() {
		guess, err := s.readGuess(g)
		if err != nil {
			log.Debug().Err(err).Str("gameId", g.ID).Int("attempts", g.Attempts).Msg("game aborted")
			return g.State(), err
		}

		fb, state, err := g.ApplyGuess(guess)
		if err != nil {
			return state, fmt.Errorf("apply guess: %w", err)
		}
		log.Debug().
			Str("gameId", g.ID).
			Int("attempt", g.Attempts).
			Int("exact", fb.Exact).
			Int("partial", fb.Partial).
			Msg("guess graded")

		if _, err := fmt.Fprintln(s.Out, fb.String()); err != nil {
			return state, fmt.Errorf("write feedback: %w", err)
		}
	}

	state := g.State()
	log.Info().
		Str("gameId", g.ID).
		Str("state", string(state)).
		Int("attempts", g.Attempts).
		Msg("game finished")
	log.Debug().Str("gameId", g.ID).Stringer("secret", g.Secret()).Msg("secret revealed")

	final := s.Messages.Lose
	if state == game.StateWon {
		final = s.Messages.Win
	}
	if _, err := fmt.Fprintln(s.Out, final); err != nil {
		return state, fmt.Errorf("write result: %w", err)
	}
	return state, nil
}

// readGuess prompts until a structurally valid guess is read.
func (s *Session) readGuess(g *game.Game) (game.Code, error) {
	for {
		if _, err := io.WriteString(s.Out, s.Messages.Prompt); err != nil {
			return game.Code{}, fmt.Errorf("write prompt: %w", err)
		}
		line, err := s.In.ReadLine()
		if err != nil {
			return game.Code{}, err
		}
		guess, err := game.ParseGuess(line)
		if err == nil {
			return guess, nil
		}
		if !errors.Is(err, game.ErrMalformedGuess) {
			return game.Code{}, err
		}
		log.Debug().Err(err).Str("gameId", g.ID).Int("attempt", g.Attempts+1).Msg("malformed guess")
		if _, err := io.WriteString(s.Out, s.Messages.Invalid); err != nil {
			return game.Code{}, fmt.Errorf("write invalid: %w", err)
		}
	}
}
