package assembly

import (
	"io"

	"github.com/rs/zerolog"
)

// testWarnLogger returns a zerolog.Logger whose hook flips *warned to true
// the first time a Warn-level event is logged.
func testWarnLogger(warned *bool) zerolog.Logger {
	return zerolog.New(io.Discard).Hook(zerolog.HookFunc(func(e *zerolog.Event, level zerolog.Level, msg string) {
		if level == zerolog.WarnLevel {
			*warned = true
		}
	}))
}
