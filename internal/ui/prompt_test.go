package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  n \n", false},
		{"maybe\nno\n", false},
		{"\n\nyes\n", true},
	}
	for _, tt := range tests {
		s, _ := newTestStream(tt.input)
		assert.Equal(t, tt.want, AskYesNo(s, "Open?"), "input %q", tt.input)
	}
}

func TestAskYesNoReprompts(t *testing.T) {
	s, out := newTestStream("what\ny\n")
	AskYesNo(s, "Open?")
	assert.Contains(t, out.String(), "Invalid option.")
}

func TestAskAmount(t *testing.T) {
	s, out := newTestStream("-1\nabc\n7\n5\n")
	assert.Equal(t, 5, AskAmount(s, "How much? ", 6))
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid amount."))
}

func TestAskAmountZero(t *testing.T) {
	s, _ := newTestStream("0\n")
	assert.Equal(t, 0, AskAmount(s, "How much? ", 0))
}

func TestAskIndex(t *testing.T) {
	s, _ := newTestStream("0\n3\n2\n")
	idx, ok := AskIndex(s, "Pick", 2)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	s, _ = newTestStream("Back\n")
	_, ok = AskIndex(s, "Pick", 2)
	assert.False(t, ok)
}
