// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It discards everything until Init is called,
// so packages can log freely in tests.
var Log = newDiscard()

// Options configures Init.
type Options struct {
	Level  string // logrus level name, default "info"
	Format string // "json" or "text", default "text"
	File   string // log file path; empty discards output
}

// Init configures the global logger. The terminal belongs to the game, so
// output goes to a file. It returns a close function for that file.
func Init(opts Options) (func() error, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	closeFn := func() error { return nil }
	if opts.File == "" {
		log.SetOutput(io.Discard)
	} else {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.SetOutput(io.Discard)
			Log = log
			return closeFn, err
		}
		log.SetOutput(f)
		closeFn = f.Close
	}

	Log = log
	return closeFn, nil
}

func newDiscard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
