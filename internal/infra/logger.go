package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger aliases zerolog.Logger so the rest of the module depends on the
// logging contract through infra instead of importing the third-party
// package everywhere.
type Logger = zerolog.Logger

// NewLogger builds the root logger for the studio service. Development runs
// get the console writer at debug level; everything else emits JSON for log
// shippers. Every line carries the service field so pipeline logs stay
// attributable when streams are mixed.
func NewLogger(appEnv string) Logger {
	var out io.Writer = os.Stdout
	level := zerolog.InfoLevel
	if appEnv == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "studio").
		Logger()
}
