package entity

import (
	"fmt"

	"github.com/samdwyer/mysterymachine/internal/ui"
)

// Party represents the player's group: shared resources plus an ordered
// member list. The tail of Members is the member singled out by combat
// and by the money event; the front is where survivors rejoin the line.
type Party struct {
	Ammo     int       `json:"ammo"`
	Money    int       `json:"money"`
	Fuel     int       `json:"fuel"`
	Medicine int       `json:"medicine"`
	Food     int       `json:"food"`
	Members  []*Member `json:"members"`
}

// NewParty creates a party with the given members and the standard starting
// food, medicine and fuel.
func NewParty(ammo, money int, members ...*Member) *Party {
	return &Party{
		Ammo:    ammo,
		Money:   money,
		Fuel:    2,
		Food:    4,
		Members: members,
	}
}

// Normalise clamps every resource counter to zero or above.
func (p *Party) Normalise() {
	p.Ammo = max(0, p.Ammo)
	p.Money = max(0, p.Money)
	p.Fuel = max(0, p.Fuel)
	p.Medicine = max(0, p.Medicine)
	p.Food = max(0, p.Food)
}

// Extinct reports whether every member has been lost.
func (p *Party) Extinct() bool {
	return len(p.Members) == 0
}

// PushFront inserts m at the head of the line.
func (p *Party) PushFront(m *Member) {
	p.Members = append([]*Member{m}, p.Members...)
}

// PushBack appends m at the tail of the line.
func (p *Party) PushBack(m *Member) {
	p.Members = append(p.Members, m)
}

// PopBack removes and returns the tail member. It panics on an empty party.
func (p *Party) PopBack() *Member {
	if len(p.Members) == 0 {
		panic("entity: pop from an empty party")
	}
	m := p.Members[len(p.Members)-1]
	p.Members = p.Members[:len(p.Members)-1]
	return m
}

// MemberRows converts the members for ui.MemberTable.
func (p *Party) MemberRows() []ui.MemberRow {
	rows := make([]ui.MemberRow, len(p.Members))
	for i, m := range p.Members {
		rows[i] = ui.MemberRow{Name: m.Name, HP: m.HP, MaxHP: m.MaxHP, Infection: m.Infection}
	}
	return rows
}

// String formats the resource counters.
func (p *Party) String() string {
	return fmt.Sprintf("- Ammo: %d\n- Money: %d\n- Fuel: %d\n- Food: %d\n- Medicine: %d",
		p.Ammo, p.Money, p.Fuel, p.Food, p.Medicine)
}

// Summary formats the resource counters followed by the member count.
func (p *Party) Summary() string {
	return fmt.Sprintf("Party:\n%s\n- Members: %d", p, len(p.Members))
}
