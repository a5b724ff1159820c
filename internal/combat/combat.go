// Package combat provides the zombie horde fight used by every encounter.
package combat

import (
	"github.com/samdwyer/mysterymachine/internal/rng"
	"github.com/samdwyer/mysterymachine/internal/ui"
)

// Status is the death classification of a combatant.
type Status int

const (
	// Alive - hit points remain
	Alive Status = iota
	// Dead - no hit points, infection too low to reanimate
	Dead
	// Undead - no hit points, infected enough to reanimate
	Undead
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Alive:
		return "alive"
	case Dead:
		return "dead"
	case Undead:
		return "undead"
	default:
		return "unknown"
	}
}

// Combatant is anything the horde can attack.
type Combatant interface {
	GetName() string
	Hurt(out ui.Presenter, damage int)
	CheckDead() Status
}

// Result summarises one fight.
type Result struct {
	Zombies    int  // Attackers at the start of the fight
	AmmoUsed   int  // Shells spent before the horde closed in
	Rounds     int  // Members resolved
	Deaths     int  // Members killed for good
	Reanimated int  // Members that rose and joined the horde
	Victory    bool // Horde destroyed with members remaining
}

// Outcome returns "victory" or "defeat".
func (r Result) Outcome() string {
	if r.Victory {
		return "victory"
	}
	return "defeat"
}

// Resolver runs fights using a random source and narrates them.
type Resolver struct {
	rand rng.Source
	out  ui.Presenter
}

// NewResolver creates a new combat resolver.
func NewResolver(src rng.Source, out ui.Presenter) *Resolver {
	return &Resolver{rand: src, out: out}
}
