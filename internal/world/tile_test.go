package world

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mysterymachine/internal/event"
	"github.com/samdwyer/mysterymachine/internal/gamedata"
	"github.com/samdwyer/mysterymachine/internal/rng/rngtest"
)

func TestTileRune(t *testing.T) {
	tests := []struct {
		tile     Tile
		expected rune
	}{
		{Tile{}, ' '},
		{Tile{Location: TradeWell}, ' '},
		{Tile{Seen: true}, '.'},
		{Tile{Seen: true, Location: MilitaryBase}, '?'},
		{Tile{Seen: true, Explored: true}, '#'},
		{Tile{Seen: true, Explored: true, Location: ShoppingCentre}, 'X'},
	}
	for _, tt := range tests {
		if got := tt.tile.Rune(); got != tt.expected {
			t.Errorf("%+v.Rune() = %q, want %q", tt.tile, got, tt.expected)
		}
	}
}

func TestRandomTile(t *testing.T) {
	plain := RandomTile(rngtest.New().WithBools(false))
	assert.Equal(t, Tile{}, plain)

	poi := RandomTile(rngtest.New(1).WithBools(true))
	assert.Equal(t, Tile{Location: TradeWell}, poi)
}

func TestTileEventTable(t *testing.T) {
	tests := []struct {
		location LocationKind
		key      string
	}{
		{None, gamedata.TableDefault},
		{ShoppingCentre, gamedata.TableShoppingCentre},
		{TradeWell, gamedata.TableTradeWell},
		{MilitaryBase, gamedata.TableMilitaryBase},
	}
	for _, tt := range tests {
		for _, night := range []bool{false, true} {
			got := Tile{Location: tt.location}.EventTable(night)
			assert.Equal(t, event.For(tt.key, night).Events(), got.Events(), "%v night=%v", tt.location, night)
		}
	}
}

func TestLocationJSON(t *testing.T) {
	tiles := []Tile{
		{Seen: true},
		{Seen: true, Explored: true, Location: ShoppingCentre},
		{Location: TradeWell},
		{Location: MilitaryBase},
	}
	b, err := json.Marshal(tiles)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"seen":true,"explored":false,"location":null},
		{"seen":true,"explored":true,"location":"shopping_centre"},
		{"seen":false,"explored":false,"location":"trade_well"},
		{"seen":false,"explored":false,"location":"military_base"}
	]`, string(b))

	var decoded []Tile
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, tiles, decoded)
}

func TestLocationJSONRejectsUnknown(t *testing.T) {
	var tile Tile
	assert.Error(t, json.Unmarshal([]byte(`{"location":"desert"}`), &tile))
}
