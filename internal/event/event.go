// Package event provides the randomised outcomes of a search.
package event

import (
	"fmt"

	"github.com/samdwyer/mysterymachine/internal/rng"
)

// Kind identifies an event variant.
type Kind int

const (
	Nothing Kind = iota
	Ammo
	Food
	Money
	Fuel
	Zombie
	Survivor
)

var kindNames = map[Kind]string{
	Nothing:  "nothing",
	Ammo:     "ammo",
	Food:     "food",
	Money:    "money",
	Fuel:     "fuel",
	Zombie:   "zombie",
	Survivor: "survivor",
}

// String returns the name used in events.yaml.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind converts an events.yaml kind name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return Nothing, fmt.Errorf("unknown event kind %q", name)
}

// Event is one outcome. Amount is the table bound before a roll and the
// rolled quantity after one.
type Event struct {
	Kind   Kind
	Amount int
}

func (e Event) String() string {
	if e.Kind == Nothing {
		return "Nothing"
	}
	return fmt.Sprintf("%s(%d)", e.Kind, e.Amount)
}

// positiveBias is the chance that an ammo or food find is a gain.
const positiveBias = 0.7

// Roll picks a uniform entry from t and rolls its amount.
func Roll(src rng.Source, t Table) Event {
	e := rng.Choose(src, t.events)
	switch e.Kind {
	case Money, Fuel, Zombie:
		e.Amount = src.IntRange(1, e.Amount)
	case Ammo, Food:
		e.Amount = src.IntRange(1, e.Amount)
		if !src.Chance(positiveBias) {
			e.Amount = -e.Amount
		}
	case Survivor:
		e.Amount = src.IntRange(0, e.Amount)
	case Nothing:
		e.Amount = 0
	}
	return e
}
