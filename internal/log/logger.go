package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the process logger. Development gets colored console output
// at debug level; production gets plain lines at info. Latencies are
// logged in milliseconds, the scale catalog queries live at.
func New(environment string) zerolog.Logger {
	production := environment == "production"

	zerolog.DurationFieldUnit = time.Millisecond

	level := zerolog.DebugLevel
	if production {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    production,
	}

	return zerolog.New(output).With().
		Timestamp().
		Str("service", "bigmanpc-api").
		Str("env", environment).
		Logger()
}
