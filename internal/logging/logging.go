// internal/logging/logging.go
//
// Construction of the zerolog logger used for diagnostics.
// Responsibilities:
//   - Resolve the level, falling back to DefaultLevel.
//   - Pick JSON or console output; "auto" uses the console writer on terminals.
//   - Install the result as the global zerolog logger.
//
// Game dialogue is written to stdout by the console package; everything here
// targets a separate stream (stderr in production).

package logging

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/config"
)

// DefaultLevel applies when the configured level is empty or unparsable.
const DefaultLevel = zerolog.WarnLevel

// New returns a logger writing to w.
// format is one of config.FormatAuto, config.FormatConsole or config.FormatJSON;
// auto selects the console writer only when w is a terminal.
func New(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = DefaultLevel
	}

	out := w
	switch format {
	case config.FormatConsole:
		out = consoleWriter(w)
	case config.FormatJSON:
	default:
		if isTerminal(w) {
			out = consoleWriter(w)
		}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Setup installs a logger built from cfg as the global zerolog logger.
func Setup(cfg config.Config, w io.Writer) {
	log.Logger = New(w, cfg.LogLevel, cfg.LogFormat)
}

// consoleWriter renders human-readable lines, colourised only on terminals.
func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		cw.Out = colorable.NewColorable(f)
		cw.NoColor = false
	}
	return cw
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
