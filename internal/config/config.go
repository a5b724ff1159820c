// Package config reads optional settings from a .env file.
//
// The file is parsed with godotenv.Read into a map; the process
// environment is never consulted or modified.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/samdwyer/mysterymachine/internal/logger"
	"github.com/samdwyer/mysterymachine/internal/telemetry"
)

// DefaultFile is the settings file read from the working directory.
const DefaultFile = ".env"

// Settings recognised in the .env file.
const (
	KeyLogLevel         = "LOG_LEVEL"
	KeyLogFormat        = "LOG_FORMAT"
	KeyLogFile          = "LOG_FILE"
	KeySeed             = "GAME_SEED"
	KeyHoneycombAPIKey  = "HONEYCOMB_API_KEY"
	KeyHoneycombDataset = "HONEYCOMB_DATASET"
	KeyOTLPEndpoint     = "OTLP_ENDPOINT"
)

// Settings holds the ambient configuration of a run.
type Settings struct {
	LogLevel  string
	LogFormat string
	LogFile   string
	Seed      int64 // 0 means time-seeded

	HoneycombAPIKey  string
	HoneycombDataset string
	OTLPEndpoint     string
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		LogLevel:  "info",
		LogFormat: "text",
		LogFile:   "mysterymachine.log",
	}
}

// Load reads path. A missing file yields the defaults and no error; a
// malformed file yields the defaults and the parse error.
func Load(path string) (Settings, error) {
	s := Default()

	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("read %s: %w", path, err)
	}

	if v, ok := values[KeyLogLevel]; ok {
		s.LogLevel = v
	}
	if v, ok := values[KeyLogFormat]; ok {
		s.LogFormat = v
	}
	if v, ok := values[KeyLogFile]; ok {
		s.LogFile = v
	}
	s.HoneycombAPIKey = values[KeyHoneycombAPIKey]
	s.HoneycombDataset = values[KeyHoneycombDataset]
	s.OTLPEndpoint = values[KeyOTLPEndpoint]

	if v, ok := values[KeySeed]; ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("%s: %w", KeySeed, err)
		}
		s.Seed = seed
	}
	return s, nil
}

// Logger returns the logger options.
func (s Settings) Logger() logger.Options {
	return logger.Options{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		File:   s.LogFile,
	}
}

// Telemetry returns the exporter options.
func (s Settings) Telemetry() telemetry.Options {
	return telemetry.Options{
		APIKey:   s.HoneycombAPIKey,
		Dataset:  s.HoneycombDataset,
		Endpoint: s.OTLPEndpoint,
	}
}
