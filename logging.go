package boson

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger receives the codec's diagnostics: a dropped unknown slot, an
// array-shape mismatch, an unresolved enum constant. The codec keeps
// decoding the rest of the graph on these but tells the caller what it
// skipped.
//
// Replace it (e.g. Logger = Logger.Level(zerolog.Disabled)) to silence or
// redirect diagnostics; it defaults to warn level on stderr.
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	Level(zerolog.WarnLevel).
	With().Timestamp().Str("component", "boson").Logger()
