package entity

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/mysterymachine/internal/combat"
	"github.com/samdwyer/mysterymachine/internal/gamedata"
	"github.com/samdwyer/mysterymachine/internal/rng/rngtest"
	"github.com/samdwyer/mysterymachine/internal/ui"
)

// newTestOutput returns a presenter fed with input and the buffer it writes to.
func newTestOutput(input string) (*ui.Stream, *bytes.Buffer) {
	var out bytes.Buffer
	return ui.NewStream(strings.NewReader(input), &out, ui.NoDelay), &out
}

func TestPresetCharacters(t *testing.T) {
	tests := []struct {
		member    *Member
		name      string
		maxHP     int
		infection int
	}{
		{Velma(), "Velma", 17, 3},
		{Shaggy(), "Shaggy", 12, 0},
		{Fred(), "Fred", 20, 7},
		{Daphne(), "Daphne", 15, 1},
		{Scoob(), "Scoob", 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.member.Name)
			assert.Equal(t, tt.maxHP, tt.member.MaxHP)
			assert.Equal(t, tt.maxHP, tt.member.HP, "characters start at full health")
			assert.Equal(t, tt.infection, tt.member.Infection)
		})
	}
}

func TestPlayableIsACopy(t *testing.T) {
	p := Playable()
	assert.Len(t, p, 4)
	p[0].Name = "Mutated"
	assert.Equal(t, "Velma", Playable()[0].Name)
}

func TestCharacterUnknownPanics(t *testing.T) {
	assert.Panics(t, func() { Character("scrappy") })
}

func TestHurt(t *testing.T) {
	tests := []struct {
		name          string
		hp, infection int
		damage        int
		wantHP        int
		wantInfection int
		wantWording   string
	}{
		{"light hit", 10, 0, 5, 5, 2, "slightly more infected"},
		{"heavy hit", 10, 0, 6, 4, 5, "much more infected"},
		{"overkill clamps at zero", 3, 1, 9, 0, 6, "much more infected"},
		{"zero damage still infects", 4, 0, 0, 4, 2, "slightly more infected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, buf := newTestOutput("")
			m := NewMember("Luna", 10, tt.infection, tt.hp)

			m.Hurt(out, tt.damage)

			assert.Equal(t, tt.wantHP, m.HP)
			assert.Equal(t, tt.wantInfection, m.Infection)
			assert.Contains(t, buf.String(), tt.wantWording)
		})
	}
}

func TestHealCapsAtMax(t *testing.T) {
	m := NewMember("Thorn", 12, 0, 9)
	m.Heal(2)
	assert.Equal(t, 11, m.HP)
	m.Heal(4)
	assert.Equal(t, 12, m.HP)
}

func TestCureFloorsAtZero(t *testing.T) {
	m := NewMember("Thorn", 12, 7, 12)
	m.Cure(5)
	assert.Equal(t, 2, m.Infection)
	m.Cure(10)
	assert.Equal(t, 0, m.Infection)
}

func TestCheckDead(t *testing.T) {
	tests := []struct {
		hp, infection int
		want          combat.Status
	}{
		{1, 50, combat.Alive},
		{0, 0, combat.Dead},
		{0, 19, combat.Dead},
		{0, 20, combat.Undead},
		{0, 31, combat.Undead},
	}
	for _, tt := range tests {
		m := NewMember("Dusk", 10, tt.infection, tt.hp)
		if got := m.CheckDead(); got != tt.want {
			t.Errorf("CheckDead(hp=%d, infection=%d) = %v, want %v", tt.hp, tt.infection, got, tt.want)
		}
	}
}

func TestCheckInfection(t *testing.T) {
	t.Run("below threshold is harmless", func(t *testing.T) {
		out, buf := newTestOutput("")
		m := NewMember("Bogel", 10, 24, 10)
		assert.Equal(t, combat.Alive, m.CheckInfection(out))
		assert.Equal(t, 10, m.HP)
		assert.Empty(t, buf.String())
	})

	t.Run("cough costs hit points", func(t *testing.T) {
		out, buf := newTestOutput("")
		m := NewMember("Bogel", 10, 25, 10)
		assert.Equal(t, combat.Alive, m.CheckInfection(out))
		assert.Equal(t, 6, m.HP)
		assert.Contains(t, buf.String(), "coughing fit")
	})

	t.Run("cough can reanimate", func(t *testing.T) {
		out, _ := newTestOutput("")
		m := NewMember("Bogel", 10, 25, 3)
		assert.Equal(t, combat.Undead, m.CheckInfection(out))
		assert.Equal(t, 0, m.HP)
	})
}

func TestNewSurvivorDrawOrder(t *testing.T) {
	tests := []struct {
		tier   string
		script []int
		want   Member
	}{
		{gamedata.TierWild, []int{15, 3, 9}, Member{Name: "Weerd", MaxHP: 15, Infection: 3, HP: 9}},
		{gamedata.TierMilitary, []int{30, 0, 18}, Member{Name: "Weerd", MaxHP: 30, Infection: 0, HP: 18}},
		{gamedata.TierShopping, []int{10, 15, 10}, Member{Name: "Weerd", MaxHP: 10, Infection: 15, HP: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			script := rngtest.New(tt.script...)
			got := NewSurvivor("Weerd", tt.tier, script)
			assert.Equal(t, tt.want, *got)
			ints, _ := script.Remaining()
			assert.Zero(t, ints)
		})
	}
}

func TestNewSurvivorUnknownTierPanics(t *testing.T) {
	assert.Panics(t, func() { NewSurvivor("Weerd", "pirate", rngtest.New()) })
}

func TestMemberString(t *testing.T) {
	m := NewMember("Luna", 18, 4, 11)
	assert.Equal(t, "Luna:\n- HP: 11/18\n- Infection: 4", m.String())
}
