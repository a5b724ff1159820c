package entity

import (
	"encoding/json"

	"github.com/samdwyer/mysterymachine/internal/gamedata"
	"github.com/samdwyer/mysterymachine/internal/rng"
)

// roster is the fixed list the name pool refills from.
var roster = gamedata.MustLoadRoster()

// NamePool hands out survivor names without repeats until it runs dry,
// then refills from the roster.
type NamePool struct {
	names []string
}

// NewNamePool creates a full pool.
func NewNamePool() *NamePool {
	return &NamePool{names: append([]string(nil), roster...)}
}

// Take removes and returns a random name, refilling the pool when empty.
func (p *NamePool) Take(src rng.Source) string {
	if len(p.names) == 0 {
		p.names = append(p.names, roster...)
	}
	src.Shuffle(len(p.names), func(i, j int) { p.names[i], p.names[j] = p.names[j], p.names[i] })
	name := p.names[len(p.names)-1]
	p.names = p.names[:len(p.names)-1]
	return name
}

// Len returns the number of names left before a refill.
func (p *NamePool) Len() int { return len(p.names) }

// Remaining returns a copy of the names left in the pool.
func (p *NamePool) Remaining() []string {
	return append([]string{}, p.names...)
}

// MarshalJSON encodes the remaining names as an array.
func (p *NamePool) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Remaining())
}

// UnmarshalJSON decodes an array of remaining names.
func (p *NamePool) UnmarshalJSON(b []byte) error {
	var names []string
	if err := json.Unmarshal(b, &names); err != nil {
		return err
	}
	p.names = names
	return nil
}
