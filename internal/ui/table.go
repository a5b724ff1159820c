package ui

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// plain renders without colour so the output is safe for both the tcell
// console and piped streams.
var plain = lipgloss.NewRenderer(io.Discard)

// MemberRow is one line of a member listing.
type MemberRow struct {
	Name      string
	HP, MaxHP int
	Infection int
}

// MemberTable renders a numbered member listing with box borders.
func MemberTable(rows []MemberRow) string {
	cell := plain.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(plain.NewStyle()).
		StyleFunc(func(row, col int) lipgloss.Style { return cell }).
		Headers("#", "Name", "HP", "Infection")
	for i, r := range rows {
		t.Row(
			strconv.Itoa(i+1),
			r.Name,
			strconv.Itoa(r.HP)+"/"+strconv.Itoa(r.MaxHP),
			strconv.Itoa(r.Infection),
		)
	}
	return t.String()
}
