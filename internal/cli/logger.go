package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// InitLogger builds the CLI logger writing to w.
//
// Levels:
//   - verbose: debug
//   - quiet: warn
//   - otherwise the configured level, or info when it is empty or unknown
//
// A terminal without NO_COLOR gets the console writer; anything else gets
// JSON lines.
func InitLogger(w io.Writer, verbose, quiet bool, configured string) zerolog.Logger {
	return zerolog.New(selectOutput(w)).
		Level(selectLevel(verbose, quiet, configured)).
		With().Timestamp().Logger()
}

func selectLevel(verbose, quiet bool, configured string) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	}
	level, err := zerolog.ParseLevel(configured)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func selectOutput(w io.Writer) io.Writer {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.Kitchen,
		}
	}
	return w
}
