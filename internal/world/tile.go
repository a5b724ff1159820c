// Package world provides the clock and the wrap-around map.
package world

import (
	"github.com/samdwyer/mysterymachine/internal/event"
	"github.com/samdwyer/mysterymachine/internal/rng"
)

// locationChance is the chance a fresh tile hosts a point of interest.
const locationChance = 0.15

// Tile represents a single map cell.
type Tile struct {
	Seen     bool         `json:"seen"`
	Explored bool         `json:"explored"`
	Location LocationKind `json:"location"`
}

// Tile display characters.
const (
	RuneUnseen         = ' '
	RuneUnexplored     = '.'
	RuneInterest       = '?'
	RuneExplored       = '#'
	RuneExploredPOI    = 'X'
	RuneMysteryMachine = 'M'
)

// RandomTile rolls a fresh, unseen tile.
func RandomTile(src rng.Source) Tile {
	var t Tile
	if src.Chance(locationChance) {
		t.Location = rng.Choose(src, locationKinds)
	}
	return t
}

// HasLocation reports whether the tile hosts a point of interest.
func (t Tile) HasLocation() bool {
	return t.Location != None
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	switch {
	case !t.Seen:
		return RuneUnseen
	case t.HasLocation() && t.Explored:
		return RuneExploredPOI
	case t.HasLocation():
		return RuneInterest
	case t.Explored:
		return RuneExplored
	default:
		return RuneUnexplored
	}
}

// EventTable returns the table used when searching this tile.
func (t Tile) EventTable(night bool) event.Table {
	return event.For(t.Location.TableKey(), night)
}
