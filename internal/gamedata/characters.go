package gamedata

import "fmt"

// CharacterDef defines a preset member loaded from JSON.
type CharacterDef struct {
	ID        string `json:"id"`        // Unique identifier (e.g., "velma")
	Name      string `json:"name"`      // Display name (e.g., "Velma")
	MaxHP     int    `json:"maxHp"`     // Maximum and starting hit points
	Infection int    `json:"infection"` // Starting infection level
}

// Range is an inclusive integer interval encoded as [lo, hi].
type Range [2]int

// Lo returns the lower bound.
func (r Range) Lo() int { return r[0] }

// Hi returns the upper bound.
func (r Range) Hi() int { return r[1] }

// SurvivorTier defines the stat ranges for a class of rescued survivor.
type SurvivorTier struct {
	MaxHP     Range `json:"maxHp"`
	Infection Range `json:"infection"`
	HP        Range `json:"hp"` // Starting hit points, capped at the rolled MaxHP
}

// CharactersFile represents the structure of characters.json.
type CharactersFile struct {
	Playable  []CharacterDef          `json:"playable"`
	Companion CharacterDef            `json:"companion"`
	Survivors map[string]SurvivorTier `json:"survivors"`
}

// Survivor tier identifiers used in characters.json.
const (
	TierWild     = "wild"
	TierMilitary = "military"
	TierShopping = "shopping"
)

// LoadCharacters loads character definitions from the embedded characters.json file.
func LoadCharacters() (*CharactersFile, error) {
	file, err := Load[CharactersFile]("characters.json")
	if err != nil {
		return nil, err
	}
	if len(file.Playable) == 0 {
		return nil, fmt.Errorf("no playable characters in characters.json")
	}
	for _, tier := range []string{TierWild, TierMilitary, TierShopping} {
		if _, ok := file.Survivors[tier]; !ok {
			return nil, fmt.Errorf("survivor tier %q missing from characters.json", tier)
		}
	}
	return &file, nil
}

// MustLoadCharacters loads character definitions, panicking on error.
func MustLoadCharacters() *CharactersFile {
	file, err := LoadCharacters()
	if err != nil {
		panic(err)
	}
	return file
}
