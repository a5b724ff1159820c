package game

import (
	"time"

	"github.com/samdwyer/mysterymachine/internal/storage"
	"github.com/samdwyer/mysterymachine/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible runs.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// SavePath is the save slot file.
	SavePath string

	// Pace is the length of a narration pause.
	Pace time.Duration

	// Map dimensions for a new game.
	MapWidth  int
	MapHeight int
}

// DefaultConfig returns the standard settings.
func DefaultConfig() Config {
	return Config{
		SavePath:  storage.DefaultPath,
		Pace:      850 * time.Millisecond,
		MapWidth:  world.DefaultWidth,
		MapHeight: world.DefaultHeight,
	}
}
