package world

import (
	"encoding/json"
	"fmt"

	"github.com/samdwyer/mysterymachine/internal/gamedata"
)

// LocationKind is the point of interest hosted by a tile.
type LocationKind int

const (
	None LocationKind = iota
	ShoppingCentre
	TradeWell
	MilitaryBase
)

var locationKinds = []LocationKind{ShoppingCentre, TradeWell, MilitaryBase}

// String returns the saved name of the kind, or "none".
func (k LocationKind) String() string {
	switch k {
	case ShoppingCentre:
		return "shopping_centre"
	case TradeWell:
		return "trade_well"
	case MilitaryBase:
		return "military_base"
	default:
		return "none"
	}
}

// TableKey returns the event table key for searches on this kind.
func (k LocationKind) TableKey() string {
	switch k {
	case ShoppingCentre:
		return gamedata.TableShoppingCentre
	case TradeWell:
		return gamedata.TableTradeWell
	case MilitaryBase:
		return gamedata.TableMilitaryBase
	default:
		return gamedata.TableDefault
	}
}

// MarshalJSON encodes None as null and other kinds by name.
func (k LocationKind) MarshalJSON() ([]byte, error) {
	if k == None {
		return []byte("null"), nil
	}
	return json.Marshal(k.String())
}

// UnmarshalJSON decodes null or a kind name.
func (k *LocationKind) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*k = None
		return nil
	}
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	for _, kind := range locationKinds {
		if kind.String() == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown location %q", name)
}
