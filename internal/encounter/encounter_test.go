package encounter

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
	"github.com/samdwyer/mysterymachine/internal/world"
)

func newTestScene(p *entity.Party, script *rngtest.Script, input string) (*entity.Scene, *bytes.Buffer) {
	var buf bytes.Buffer
	out := ui.NewStream(strings.NewReader(input), &buf, ui.NoDelay)
	return &entity.Scene{Party: p, Names: entity.NewNamePool(), Out: out, Rand: script}, &buf
}

func TestRunWithoutLocationPanics(t *testing.T) {
	s, _ := newTestScene(&entity.Party{}, rngtest.New(), "")
	assert.Panics(t, func() { Run(context.Background(), s, world.None) })
}

func TestTradeWell(t *testing.T) {
	t.Run("medicine for money", func(t *testing.T) {
		p := &entity.Party{Money: 5, Members: []*entity.Member{entity.Scoob()}}
		script := rngtest.New(2).WithBools(true)
		s, buf := newTestScene(p, script, "\n\n3\n\n")

		Run(context.Background(), s, world.TradeWell)

		assert.Equal(t, 5, p.Medicine)
		assert.Equal(t, 2, p.Money)
		assert.Zero(t, p.Ammo)
		out := buf.String()
		assert.Contains(t, out, "+2 medicine")
		assert.Contains(t, out, "exactly 3 loose antibiotic tablets")
		assert.Contains(t, out, "-3 money")
	})

	t.Run("ammo and no trade", func(t *testing.T) {
		p := &entity.Party{Money: 2, Members: []*entity.Member{entity.Scoob()}}
		script := rngtest.New(3).WithBools(false)
		s, buf := newTestScene(p, script, "\n\n9\n-1\n0\n\n")

		Run(context.Background(), s, world.TradeWell)

		assert.Equal(t, 3, p.Ammo)
		assert.Equal(t, 2, p.Money)
		out := buf.String()
		assert.Equal(t, 2, strings.Count(out, "Invalid amount."))
		assert.Contains(t, out, "You leave the bucket.")
	})
}

func TestMilitaryBase(t *testing.T) {
	t.Run("bunker survivors join at the tail", func(t *testing.T) {
		scoob := entity.Scoob()
		p := &entity.Party{Members: []*entity.Member{scoob}}
		script := rngtest.New(2, 20, 1, 12, 25, 3, 15, 7).WithBools(true)
		s, buf := newTestScene(p, script, "\ny\n\n\n\n\n")

		Run(context.Background(), s, world.MilitaryBase)

		require.Len(t, p.Members, 3)
		assert.Same(t, scoob, p.Members[0])
		assert.Equal(t, 20, p.Members[1].MaxHP)
		assert.Equal(t, 25, p.Members[2].MaxHP)
		assert.Equal(t, 7, p.Ammo)
		assert.Contains(t, buf.String(), "2 survivors rush out of the room")
	})

	t.Run("door left shut", func(t *testing.T) {
		p := &entity.Party{Members: []*entity.Member{entity.Scoob()}}
		s, buf := newTestScene(p, rngtest.New(5), "\nmaybe\nn\n\n\n")

		Run(context.Background(), s, world.MilitaryBase)

		assert.Len(t, p.Members, 1)
		assert.Equal(t, 5, p.Ammo)
		assert.Contains(t, buf.String(), "Invalid option.")
		assert.Contains(t, buf.String(), "+5 ammo")
	})

	t.Run("wipe out stops the script", func(t *testing.T) {
		p := &entity.Party{Members: []*entity.Member{entity.NewMember("Dusk", 10, 0, 1)}}
		// 4 zombies, no shells, 2 attack for 4 damage
		script := rngtest.New(4, 0, 2, 4).WithBools(false)
		s, buf := newTestScene(p, script, "\ny\n"+strings.Repeat("\n", 4))

		Run(context.Background(), s, world.MilitaryBase)

		assert.True(t, p.Extinct())
		assert.Zero(t, p.Ammo)
		assert.NotContains(t, buf.String(), "weapons locker")
	})
}

func TestShoppingCentre(t *testing.T) {
	t.Run("snacks, stuck coin and a rescue", func(t *testing.T) {
		scoob := entity.Scoob()
		p := &entity.Party{Money: 10, Food: 1, Members: []*entity.Member{scoob}}
		script := rngtest.New(
			6,         // food salvaged
			5,         // snack limit
			4,         // zombies chasing the survivor
			15, 12, 8, // survivor stats
			0,         // no shells
			4, 4, 4,   // 4 attack the survivor for 4, who takes out all 4
		).WithBools(true)
		s, buf := newTestScene(p, script, "\n7\n\ny\n\n\n\n")

		Run(context.Background(), s, world.ShoppingCentre)

		assert.Equal(t, 12, p.Food)
		assert.Equal(t, 4, p.Money)
		require.Len(t, p.Members, 2)
		assert.Same(t, scoob, p.Members[1])
		assert.Equal(t, 4, p.Members[0].HP)
		out := buf.String()
		assert.Contains(t, out, "The coin is stuck")
		assert.Contains(t, out, "-6 money")
		assert.Contains(t, out, "You leave the shopping centre")
		ints, bools := script.Remaining()
		assert.Zero(t, ints)
		assert.Zero(t, bools)
	})

	t.Run("exact change and no detour", func(t *testing.T) {
		p := &entity.Party{Money: 3, Members: []*entity.Member{entity.Scoob()}}
		s, buf := newTestScene(p, rngtest.New(4, 7), "\n3\n\nno\n")

		Run(context.Background(), s, world.ShoppingCentre)

		assert.Equal(t, 7, p.Food)
		assert.Zero(t, p.Money)
		out := buf.String()
		assert.Contains(t, out, "As the last item leaves the machine")
		assert.Contains(t, out, "It's not worth it.")
	})

	t.Run("machine ignored", func(t *testing.T) {
		p := &entity.Party{Money: 3, Members: []*entity.Member{entity.Scoob()}}
		s, buf := newTestScene(p, rngtest.New(8), "\n0\nn\n")

		Run(context.Background(), s, world.ShoppingCentre)

		assert.Equal(t, 8, p.Food)
		assert.Equal(t, 3, p.Money)
		assert.Contains(t, buf.String(), "You leave the machine")
	})
}
