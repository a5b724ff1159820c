package event

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mysterymachine/internal/entity"
	"github.com/samdwyer/mysterymachine/internal/rng/rngtest"
	"github.com/samdwyer/mysterymachine/internal/ui"
)

func newTestScene(p *entity.Party, script *rngtest.Script) (*entity.Scene, *bytes.Buffer) {
	var buf bytes.Buffer
	out := ui.NewStream(strings.NewReader(strings.Repeat("\n", 16)), &buf, ui.NoDelay)
	return &entity.Scene{Party: p, Names: entity.NewNamePool(), Out: out, Rand: script}, &buf
}

func TestHandleFoodSpoilageClamp(t *testing.T) {
	p := &entity.Party{Food: 2, Members: []*entity.Member{entity.Scoob()}}
	s, buf := newTestScene(p, rngtest.New())

	Handle(context.Background(), s, Event{Food, -5})

	assert.Equal(t, 0, p.Food)
	assert.Contains(t, buf.String(), "-2 food")
	assert.NotContains(t, buf.String(), "-5")
}

func TestHandleFoodWithNothingToSpoil(t *testing.T) {
	p := &entity.Party{Members: []*entity.Member{entity.Scoob()}}
	s, buf := newTestScene(p, rngtest.New())

	Handle(context.Background(), s, Event{Food, -3})

	assert.Equal(t, 0, p.Food)
	assert.Contains(t, buf.String(), "no food left to spoil")
}

func TestHandleFoodGain(t *testing.T) {
	p := &entity.Party{Food: 1, Members: []*entity.Member{entity.Scoob()}}
	s, _ := newTestScene(p, rngtest.New())

	Handle(context.Background(), s, Event{Food, 3})

	assert.Equal(t, 4, p.Food)
}

func TestHandleAmmoLossIsClamped(t *testing.T) {
	p := &entity.Party{Ammo: 0, Members: []*entity.Member{entity.Scoob()}}
	s, buf := newTestScene(p, rngtest.New())

	Handle(context.Background(), s, Event{Ammo, -2})

	assert.Equal(t, 0, p.Ammo)
	assert.Contains(t, buf.String(), "-2 ammo")
}

func TestHandleFuel(t *testing.T) {
	p := &entity.Party{Fuel: 1, Members: []*entity.Member{entity.Scoob()}}
	s, _ := newTestScene(p, rngtest.New())

	Handle(context.Background(), s, Event{Fuel, 2})

	assert.Equal(t, 3, p.Fuel)
}

func TestHandleMoney(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		a, b := entity.NewMember("A", 10, 0, 10), entity.NewMember("B", 10, 0, 10)
		p := &entity.Party{Money: 1, Members: []*entity.Member{a, b}}
		s, _ := newTestScene(p, rngtest.New().WithBools(false))

		Handle(context.Background(), s, Event{Money, 3})

		assert.Equal(t, 4, p.Money)
		assert.Equal(t, []*entity.Member{a, b}, p.Members)
		assert.Zero(t, b.Infection)
	})

	t.Run("tail member is cut and moved to the front", func(t *testing.T) {
		a, b := entity.NewMember("A", 10, 0, 10), entity.NewMember("B", 10, 2, 10)
		p := &entity.Party{Money: 1, Members: []*entity.Member{a, b}}
		s, buf := newTestScene(p, rngtest.New().WithBools(true))

		Handle(context.Background(), s, Event{Money, 2})

		assert.Equal(t, 3, p.Money)
		assert.Equal(t, []*entity.Member{b, a}, p.Members)
		assert.Equal(t, 12, b.Infection)
		assert.Contains(t, buf.String(), "B cuts their hand")
	})
}

func TestHandleSurvivorsJoinAtFront(t *testing.T) {
	scoob := entity.Scoob()
	p := &entity.Party{Members: []*entity.Member{scoob}}
	s, buf := newTestScene(p, rngtest.New(10, 0, 8, 20, 5, 10))

	Handle(context.Background(), s, Event{Survivor, 2})

	require.Len(t, p.Members, 3)
	assert.Same(t, scoob, p.Members[2])
	assert.Equal(t, 20, p.Members[0].MaxHP, "the last rescued is at the front")
	assert.Equal(t, 10, p.Members[1].MaxHP)
	assert.Equal(t, 26, s.Names.Len())
	assert.Contains(t, buf.String(), "You spot 2 survivors")
}

func TestHandleNoSurvivors(t *testing.T) {
	p := &entity.Party{Members: []*entity.Member{entity.Scoob()}}
	s, buf := newTestScene(p, rngtest.New())

	Handle(context.Background(), s, Event{Survivor, 0})

	assert.Len(t, p.Members, 1)
	assert.Contains(t, buf.String(), "there is no one left")
}

func TestHandleZombieFightsParty(t *testing.T) {
	p := &entity.Party{Ammo: 5, Members: []*entity.Member{entity.Scoob()}}
	s, buf := newTestScene(p, rngtest.New(2))

	Handle(context.Background(), s, Event{Zombie, 2})

	assert.Equal(t, 3, p.Ammo)
	assert.Len(t, p.Members, 1)
	assert.Contains(t, buf.String(), "2 zombies lurch out")
}

func TestHandleNothing(t *testing.T) {
	p := &entity.Party{Members: []*entity.Member{entity.Scoob()}}
	s, buf := newTestScene(p, rngtest.New())

	Handle(context.Background(), s, Event{Kind: Nothing})

	assert.Contains(t, buf.String(), "find nothing of use")
}
