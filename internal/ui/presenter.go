// Package ui provides the line-oriented terminal presenter used by the game.
package ui

import (
	"fmt"
	"time"
)

// Presenter is the text I/O contract consumed by every part of the engine.
type Presenter interface {
	// PrintLine emits s followed by a line break.
	PrintLine(s string)
	// Print emits s without a line break.
	Print(s string)
	// Ellipsis emits three dots with a short delay between each.
	Ellipsis()
	// Pause blocks for a short pacing delay.
	Pause()
	// Wait blocks for a line of input, then blanks the prompt line.
	Wait()
	// Clear clears the screen.
	Clear()
	// ReadLine reads one line of input including its trailing newline.
	ReadLine() string
}

// Timing controls the pacing delays of a presenter.
type Timing struct {
	Pause time.Duration // Length of Pause
	Dot   time.Duration // Delay after each dot of Ellipsis
}

// DefaultTiming matches the pacing of the original game.
var DefaultTiming = Timing{
	Pause: 850 * time.Millisecond,
	Dot:   700 * time.Millisecond,
}

// NoDelay disables all pacing, for tests and piped input.
var NoDelay = Timing{}

// Linef formats and prints a full line.
func Linef(p Presenter, format string, args ...any) {
	p.PrintLine(fmt.Sprintf(format, args...))
}

// Printf formats and prints without a line break.
func Printf(p Presenter, format string, args ...any) {
	p.Print(fmt.Sprintf(format, args...))
}
