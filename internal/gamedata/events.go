package gamedata

import "fmt"

// EventDef is one entry of an event table. Weights are expressed by
// repetition: Repeat copies of the entry are placed in the table.
type EventDef struct {
	Kind   string `yaml:"kind"`   // ammo, food, money, fuel, zombie, survivor or nothing
	Amount int    `yaml:"amount"` // Upper bound of the rolled amount
	Repeat int    `yaml:"repeat"` // Number of copies; 0 is treated as 1
}

// TableDef holds the day and night tables of one place.
type TableDef struct {
	Day   []EventDef `yaml:"day"`
	Night []EventDef `yaml:"night"`
}

// EventsFile represents the structure of events.yaml.
type EventsFile struct {
	Tables map[string]TableDef `yaml:"tables"`
}

// Table keys used in events.yaml.
const (
	TableDefault        = "default"
	TableShoppingCentre = "shopping_centre"
	TableTradeWell      = "trade_well"
	TableMilitaryBase   = "military_base"
)

// Expand returns defs with every entry duplicated Repeat times and Repeat cleared.
func Expand(defs []EventDef) []EventDef {
	out := make([]EventDef, 0, len(defs))
	for _, d := range defs {
		n := d.Repeat
		if n <= 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			out = append(out, EventDef{Kind: d.Kind, Amount: d.Amount})
		}
	}
	return out
}

// LoadEvents loads the event tables from the embedded events.yaml file.
func LoadEvents() (map[string]TableDef, error) {
	file, err := Load[EventsFile]("events.yaml")
	if err != nil {
		return nil, err
	}
	for _, key := range []string{TableDefault, TableShoppingCentre, TableTradeWell, TableMilitaryBase} {
		t, ok := file.Tables[key]
		if !ok {
			return nil, fmt.Errorf("event table %q missing from events.yaml", key)
		}
		if len(t.Day) == 0 || len(t.Night) == 0 {
			return nil, fmt.Errorf("event table %q has an empty day or night list", key)
		}
	}
	return file.Tables, nil
}

// MustLoadEvents loads the event tables, panicking on error.
func MustLoadEvents() map[string]TableDef {
	tables, err := LoadEvents()
	if err != nil {
		panic(err)
	}
	return tables
}
