package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var initOnce sync.Once

// Init builds the process logger and installs it as the zerolog global.
// Repeated calls keep the first configuration.
func Init(app string, cfg Config) zerolog.Logger {
	initOnce.Do(func() {
		output := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
		ctx := zerolog.New(output).Level(ParseLevel(cfg.Level)).With().Str("app", app)
		if cfg.Timestamp {
			ctx = ctx.Timestamp()
		}
		log.Logger = ctx.Logger()
	})
	return log.Logger
}
