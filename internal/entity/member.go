// Package entity provides the party and its members.
package entity

import (
	"fmt"

	"github.com/samdwyer/mysterymachine/internal/combat"
	"github.com/samdwyer/mysterymachine/internal/gamedata"
	"github.com/samdwyer/mysterymachine/internal/rng"
	"github.com/samdwyer/mysterymachine/internal/ui"
)

const (
	heavyHit          = 6  // Damage at which a hit counts as heavy
	heavyHitInfection = 5  // Infection gained from a heavy hit
	lightHitInfection = 2  // Infection gained from any other hit
	undeadInfection   = 20 // Infection at which a dead member reanimates
	coughInfection    = 25 // Infection at which the infection starts to hurt
	coughDamage       = 4  // Hit points lost per infection tick above coughInfection
)

// characters holds the preset members and survivor tiers.
var characters = gamedata.MustLoadCharacters()

// Member represents an individual party member.
type Member struct {
	Name      string `json:"name"`
	HP        int    `json:"hp"`
	MaxHP     int    `json:"max_hp"`
	Infection int    `json:"infection_level"`
}

// NewMember creates a member with the given stats.
func NewMember(name string, maxHP, infection, hp int) *Member {
	return &Member{
		Name:      name,
		HP:        hp,
		MaxHP:     maxHP,
		Infection: infection,
	}
}

// FromDef creates a member at full health from a character definition.
func FromDef(def gamedata.CharacterDef) *Member {
	return NewMember(def.Name, def.MaxHP, def.Infection, def.MaxHP)
}

// Playable returns the characters a new game can start with.
func Playable() []gamedata.CharacterDef {
	return append([]gamedata.CharacterDef(nil), characters.Playable...)
}

// Character creates a playable character by ID, panicking on an unknown ID.
func Character(id string) *Member {
	for _, def := range characters.Playable {
		if def.ID == id {
			return FromDef(def)
		}
	}
	panic(fmt.Sprintf("entity: unknown character %q", id))
}

func Velma() *Member  { return Character("velma") }
func Shaggy() *Member { return Character("shaggy") }
func Fred() *Member   { return Character("fred") }
func Daphne() *Member { return Character("daphne") }

// Scoob creates the companion every party starts with.
func Scoob() *Member { return FromDef(characters.Companion) }

// NewSurvivor rolls a rescued member of the given tier.
// Tiers are gamedata.TierWild, TierMilitary and TierShopping.
func NewSurvivor(name, tier string, src rng.Source) *Member {
	t, ok := characters.Survivors[tier]
	if !ok {
		panic(fmt.Sprintf("entity: unknown survivor tier %q", tier))
	}
	maxHP := src.IntRange(t.MaxHP.Lo(), t.MaxHP.Hi())
	infection := src.IntRange(t.Infection.Lo(), t.Infection.Hi())
	hp := min(src.IntRange(t.HP.Lo(), t.HP.Hi()), maxHP)
	return NewMember(name, maxHP, infection, hp)
}

// GetName returns the member's name.
func (m *Member) GetName() string { return m.Name }

// Hurt applies damage, raising infection by the severity of the hit.
// Hit points never drop below zero.
func (m *Member) Hurt(out ui.Presenter, damage int) {
	if damage >= heavyHit {
		ui.Linef(out, "%s takes %d damage, and becomes much more infected...", m.Name, damage)
		m.Infection += heavyHitInfection
	} else {
		ui.Linef(out, "%s takes %d damage, and becomes slightly more infected...", m.Name, damage)
		m.Infection += lightHitInfection
	}
	m.HP -= min(m.HP, damage)
}

// Heal restores hit points up to MaxHP.
func (m *Member) Heal(amount int) {
	m.HP = min(m.MaxHP, m.HP+amount)
}

// Cure lowers the infection level, never below zero.
func (m *Member) Cure(amount int) {
	m.Infection = max(0, m.Infection-amount)
}

// CheckDead classifies the member as alive, dead or undead.
func (m *Member) CheckDead() combat.Status {
	switch {
	case m.HP > 0:
		return combat.Alive
	case m.Infection >= undeadInfection:
		return combat.Undead
	default:
		return combat.Dead
	}
}

// CheckInfection applies the infection's toll and reclassifies the member.
func (m *Member) CheckInfection(out ui.Presenter) combat.Status {
	if m.Infection >= coughInfection {
		m.HP -= min(m.HP, coughDamage)
		ui.Linef(out, "%s has a violent coughing fit, the infection is spreading...", m.Name)
	}
	return m.CheckDead()
}

// String formats the member's vitals.
func (m *Member) String() string {
	return fmt.Sprintf("%s:\n- HP: %d/%d\n- Infection: %d", m.Name, m.HP, m.MaxHP, m.Infection)
}

// Ensure Member implements combat.Combatant
var _ combat.Combatant = (*Member)(nil)
