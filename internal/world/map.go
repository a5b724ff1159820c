package world

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mysterymachine/internal/rng"
	"github.com/samdwyer/mysterymachine/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 60
	DefaultHeight = 30
)

// legend is appended to the first rows of a rendered map.
var legend = []string{
	".  Unexplored",
	"?  Point of Interest",
	"#  Explored",
	"X  Explored Point of Interest",
	"M  Mystery Machine",
}

// Position is a map coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is a compass direction of travel.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// String returns the lower-case direction name typed by the player.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseDirection converts a typed direction, ignoring case and surrounding space.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north":
		return North, true
	case "east":
		return East, true
	case "south":
		return South, true
	case "west":
		return West, true
	}
	return North, false
}

// Map is a wrap-around grid of tiles with the party's position.
type Map struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Position Position `json:"position"`
	Rows     [][]Tile `json:"rows"`
}

// NewMap rolls a width x height map, drops the party at a random position
// and reveals its surroundings.
func NewMap(ctx context.Context, src rng.Source, width, height int) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "map.generate")
	defer span.End()

	if width < 1 || height < 1 {
		panic("world: map dimensions must be positive")
	}

	rows := make([][]Tile, height)
	locations := 0
	for y := range rows {
		rows[y] = make([]Tile, width)
		for x := range rows[y] {
			rows[y][x] = RandomTile(src)
			if rows[y][x].HasLocation() {
				locations++
			}
		}
	}

	m := &Map{
		Width:  width,
		Height: height,
		Rows:   rows,
		Position: Position{
			X: src.Intn(width),
			Y: src.Intn(height),
		},
	}
	m.reveal()

	span.SetAttributes(
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.locations", locations),
	)
	return m
}

// wrap maps a coordinate onto the torus.
func wrap(v, n int) int {
	return ((v % n) + n) % n
}

// At returns the tile at (x, y), wrapping out-of-range coordinates.
func (m *Map) At(x, y int) *Tile {
	return &m.Rows[wrap(y, m.Height)][wrap(x, m.Width)]
}

// Current returns the tile under the party.
func (m *Map) Current() *Tile {
	return m.At(m.Position.X, m.Position.Y)
}

// reveal marks the party's tile and its eight neighbours as seen.
func (m *Map) reveal() {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			m.At(m.Position.X+dx, m.Position.Y+dy).Seen = true
		}
	}
}

// Travel moves the party one tile in dir and reveals the new surroundings.
func (m *Map) Travel(dir Direction) {
	x, y := m.Position.X, m.Position.Y
	switch dir {
	case North:
		y--
	case South:
		y++
	case East:
		x++
	case West:
		x--
	}
	m.Position = Position{X: wrap(x, m.Width), Y: wrap(y, m.Height)}
	m.reveal()
}

// Explore marks the current tile as explored.
func (m *Map) Explore() {
	m.Current().Explored = true
}

// String renders the map, one line per row, with the legend alongside.
func (m *Map) String() string {
	var b strings.Builder
	for y, row := range m.Rows {
		for x, tile := range row {
			if x == m.Position.X && y == m.Position.Y {
				b.WriteRune(RuneMysteryMachine)
			} else {
				b.WriteRune(tile.Rune())
			}
		}
		if y < len(legend) {
			b.WriteString(" | ")
			b.WriteString(legend[y])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
