// main.go
//
// Entry point for the Mastermind console game.
// Loads .env and the environment config, sets up logging on stderr, then plays
// one game on stdin/stdout.
//
// Exit codes:
//   0  the game ended (won or lost)
//   1  input ended before the game did, or the console failed
//   2  configuration error
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/code"
	"github.com/robalobadob/mastermind/internal/config"
	"github.com/robalobadob/mastermind/internal/console"
	"github.com/robalobadob/mastermind/internal/game"
	"github.com/robalobadob/mastermind/internal/logging"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitConfigError = 2
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(code.CryptoSource{}, os.Stdin, os.Stdout, os.Stderr))
}

// run plays one game with a secret drawn from src and returns the exit code.
func run(src code.Source, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return exitConfigError
	}
	logging.Setup(cfg, stderr)

	g := game.New(code.Generate(src))
	state, err := console.NewSession(stdin, stdout).Play(g)
	switch {
	case errors.Is(err, game.ErrInputExhausted):
		log.Error().Str("gameId", g.ID).Int("attempts", g.Attempts).Msg("input ended before the game finished")
		return exitFailure
	case err != nil:
		log.Error().Err(err).Str("gameId", g.ID).Msg("console failed")
		return exitFailure
	}
	log.Debug().Str("state", string(state)).Msg("exiting")
	return exitOK
}
