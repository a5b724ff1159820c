package ui

import (
	"strconv"
	"strings"
)

// Input returns a trimmed, lower-cased line of input.
func Input(p Presenter) string {
	return strings.ToLower(strings.TrimSpace(p.ReadLine()))
}

// AskYesNo prints question and re-prompts until the player answers y/yes or n/no.
func AskYesNo(p Presenter, question string) bool {
	for {
		p.PrintLine(question + " (y/n)")
		p.Print(": ")
		switch Input(p) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			p.PrintLine("Invalid option.")
		}
	}
}

// AskAmount prints prompt and re-prompts until the player enters an integer in [0, max].
func AskAmount(p Presenter, prompt string, max int) int {
	for {
		p.Print(prompt)
		amount, err := strconv.Atoi(Input(p))
		if err != nil || amount < 0 || amount > max {
			p.PrintLine("Invalid amount.")
			continue
		}
		return amount
	}
}

// AskIndex reads a 1-based index into a list of n entries. It returns the
// 0-based index, or ok=false when the player typed back.
func AskIndex(p Presenter, prompt string, n int) (index int, ok bool) {
	for {
		p.PrintLine(prompt)
		p.Print(": ")
		in := Input(p)
		if in == "back" {
			return 0, false
		}
		choice, err := strconv.Atoi(in)
		if err == nil && choice > 0 && choice <= n {
			return choice - 1, true
		}
		p.PrintLine("Invalid input.")
	}
}
