// Package logging configures the process-wide zerolog logger.
package logging

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	logger   zerolog.Logger
	initOnce sync.Once
)

// Init sets up the global logger. level is parsed case-insensitively;
// anything unrecognized falls back to info.
func Init(level, environment string) {
	initOnce.Do(func() {
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			lvl = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(lvl)

		var out = zerolog.New(os.Stderr)
		if environment != "production" {
			console := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
				w.Out = os.Stderr
				w.TimeFormat = time.Kitchen
			})
			out = zerolog.New(console)
		}

		logger = out.With().Timestamp().Logger()
	})
}

// L returns the configured logger. Components call this rather than holding
// a logger of their own.
func L() *zerolog.Logger {
	return &logger
}
