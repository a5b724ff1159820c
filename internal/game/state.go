// Package game provides the main game loop and state management.
package game

import "strings"

// Action is a choice from the main menu.
type Action int

const (
	// ActionShowMembers lists each member's vitals.
	ActionShowMembers Action = iota + 1
	// ActionShowMap opens the map, from which the party can travel.
	ActionShowMap
	// ActionExplore searches the current tile.
	ActionExplore
	// ActionFeed opens the feeding menu.
	ActionFeed
	// ActionCure opens the medicine menu.
	ActionCure
)

// menu is the main menu in display order.
var menu = []struct {
	action Action
	label  string
}{
	{ActionShowMembers, "Show party members"},
	{ActionShowMap, "Show map"},
	{ActionExplore, "Explore area"},
	{ActionFeed, "Feed party"},
	{ActionCure, "Cure party"},
}

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionShowMembers:
		return "show_members"
	case ActionShowMap:
		return "show_map"
	case ActionExplore:
		return "explore"
	case ActionFeed:
		return "feed"
	case ActionCure:
		return "cure"
	default:
		return "unknown"
	}
}

// ParseAction converts a typed menu number.
func ParseAction(s string) (Action, bool) {
	switch strings.TrimSpace(s) {
	case "1":
		return ActionShowMembers, true
	case "2":
		return ActionShowMap, true
	case "3":
		return ActionExplore, true
	case "4":
		return ActionFeed, true
	case "5":
		return ActionCure, true
	}
	return 0, false
}
