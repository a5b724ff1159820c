package event

import (
	"fmt"

	"github.com/samdwyer/mysterymachine/internal/gamedata"
)

// Table is a read-only multiset of events. Weights are encoded by
// repeating entries, so a roll is a single uniform choice.
type Table struct {
	events []Event
}

// NewTable creates a table holding a copy of events.
func NewTable(events ...Event) Table {
	return Table{events: append([]Event(nil), events...)}
}

// Len returns the number of entries, counting repeats.
func (t Table) Len() int { return len(t.events) }

// At returns entry i.
func (t Table) At(i int) Event { return t.events[i] }

// Events returns a copy of the entries.
func (t Table) Events() []Event {
	return append([]Event(nil), t.events...)
}

// Count returns how many entries equal e.
func (t Table) Count(e Event) int {
	n := 0
	for _, x := range t.events {
		if x == e {
			n++
		}
	}
	return n
}

type dayNight struct {
	day, night Table
}

// tables is loaded once from events.yaml and never mutated.
var tables = mustBuildTables(gamedata.MustLoadEvents())

// For returns the table registered under key (one of the gamedata.Table*
// keys) for the given time of day. It panics on an unknown key.
func For(key string, night bool) Table {
	t, ok := tables[key]
	if !ok {
		panic(fmt.Sprintf("event: no table %q", key))
	}
	if night {
		return t.night
	}
	return t.day
}

func buildTable(defs []gamedata.EventDef) (Table, error) {
	var events []Event
	for _, d := range gamedata.Expand(defs) {
		kind, err := ParseKind(d.Kind)
		if err != nil {
			return Table{}, err
		}
		events = append(events, Event{Kind: kind, Amount: d.Amount})
	}
	return Table{events: events}, nil
}

func mustBuildTables(defs map[string]gamedata.TableDef) map[string]dayNight {
	out := make(map[string]dayNight, len(defs))
	for key, def := range defs {
		day, err := buildTable(def.Day)
		if err != nil {
			panic(fmt.Errorf("event table %s/day: %w", key, err))
		}
		night, err := buildTable(def.Night)
		if err != nil {
			panic(fmt.Errorf("event table %s/night: %w", key, err))
		}
		out[key] = dayNight{day: day, night: night}
	}
	return out
}
