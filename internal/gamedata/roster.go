package gamedata

import "errors"

// RosterFile represents the structure of roster.json.
type RosterFile struct {
	Names []string `json:"names"`
}

// LoadRoster loads the survivor name roster from the embedded roster.json file.
func LoadRoster() ([]string, error) {
	file, err := Load[RosterFile]("roster.json")
	if err != nil {
		return nil, err
	}
	if len(file.Names) == 0 {
		return nil, errors.New("no names loaded from roster.json")
	}
	return file.Names, nil
}

// MustLoadRoster loads the roster, panicking on error.
func MustLoadRoster() []string {
	names, err := LoadRoster()
	if err != nil {
		panic(err)
	}
	return names
}
