package game

import (
	"encoding/json"
	"fmt"

	"github.com/samdwyer/mysterymachine/internal/entity"
	"github.com/samdwyer/mysterymachine/internal/world"
)

// World is the complete state of a run, as saved between actions.
type World struct {
	Clock    world.Clock      `json:"clock"`
	Map      *world.Map       `json:"map"`
	Party    *entity.Party    `json:"party"`
	NamePool *entity.NamePool `json:"name_pool"`
}

// Encode serializes w as indented JSON.
func (w *World) Encode() ([]byte, error) {
	return json.MarshalIndent(w, "", "  ")
}

// DecodeWorld parses a saved world and checks it is playable.
func DecodeWorld(data []byte) (*World, error) {
	var w World
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode world: %w", err)
	}
	if err := w.validate(); err != nil {
		return nil, fmt.Errorf("invalid world: %w", err)
	}
	return &w, nil
}

func (w *World) validate() error {
	switch {
	case w.Map == nil:
		return fmt.Errorf("missing map")
	case w.Party == nil:
		return fmt.Errorf("missing party")
	case w.Map.Width < 1 || w.Map.Height < 1:
		return fmt.Errorf("map is %dx%d", w.Map.Width, w.Map.Height)
	case len(w.Map.Rows) != w.Map.Height:
		return fmt.Errorf("map has %d rows, want %d", len(w.Map.Rows), w.Map.Height)
	case w.Map.Position.X < 0 || w.Map.Position.X >= w.Map.Width ||
		w.Map.Position.Y < 0 || w.Map.Position.Y >= w.Map.Height:
		return fmt.Errorf("position %+v is off the map", w.Map.Position)
	case w.Clock.Hour < 0 || w.Clock.Hour > 23 || w.Clock.Day < 0:
		return fmt.Errorf("clock %+v out of range", w.Clock)
	}
	for y, row := range w.Map.Rows {
		if len(row) != w.Map.Width {
			return fmt.Errorf("map row %d has %d tiles, want %d", y, len(row), w.Map.Width)
		}
	}
	if w.NamePool == nil {
		w.NamePool = entity.NewNamePool()
	}
	return nil
}
