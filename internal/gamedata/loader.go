package gamedata

import (
	"encoding/json"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// Load reads and decodes a data file from the embedded filesystem.
// The decoder is chosen by extension: .json or .yaml.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	switch ext := path.Ext(filename); ext {
	case ".json":
		err = json.Unmarshal(content, &result)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &result)
	default:
		return result, fmt.Errorf("unsupported data format %q for %s", ext, filename)
	}
	if err != nil {
		return result, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	return result, nil
}

// MustLoad reads and decodes a data file, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
