package ui

import (
	"errors"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrInterrupted is passed to the interrupt handler on Ctrl-C.
var ErrInterrupted = errors.New("ui: interrupted")

// maxScrollback bounds the number of completed lines kept in memory.
const maxScrollback = 1000

// Console is a Presenter drawn on a tcell screen. It keeps a scrollback of
// printed lines and shows as many of the most recent ones as fit.
type Console struct {
	screen   *Screen
	renderer *Renderer
	timing   Timing
	sleep    func(time.Duration)

	lines   []string
	current string
	input   []rune

	// OnInterrupt is called on Ctrl-C or when the screen shuts down while
	// waiting for input. The default panics with ErrInterrupted.
	OnInterrupt func(err error)
}

// NewConsole creates a console presenter on screen.
func NewConsole(screen *Screen, timing Timing) *Console {
	return &Console{
		screen:      screen,
		renderer:    NewRenderer(screen),
		timing:      timing,
		sleep:       time.Sleep,
		OnInterrupt: func(err error) { panic(err) },
	}
}

// PrintLine emits s and a line break.
func (c *Console) PrintLine(s string) { c.Print(s + "\n") }

// Print emits s, splitting it into scrollback lines on line breaks.
func (c *Console) Print(s string) {
	parts := strings.Split(s, "\n")
	c.current += parts[0]
	for _, part := range parts[1:] {
		c.lines = append(c.lines, c.current)
		c.current = part
	}
	if over := len(c.lines) - maxScrollback; over > 0 {
		c.lines = c.lines[over:]
	}
	c.draw()
}

// Ellipsis emits three paced dots.
func (c *Console) Ellipsis() {
	for i := 0; i < 3; i++ {
		c.Print(".")
		c.delay(c.timing.Dot)
	}
}

// Pause blocks for the pause delay.
func (c *Console) Pause() { c.delay(c.timing.Pause) }

// Wait shows the continue glyph, reads a line, then blanks that line.
func (c *Console) Wait() {
	c.Print(waitPromptGlyph)
	c.ReadLine()
	if n := len(c.lines); n > 0 {
		c.lines[n-1] = ""
	}
	c.draw()
}

// Clear empties the scrollback.
func (c *Console) Clear() {
	c.lines = nil
	c.current = ""
	c.screen.Clear()
	c.draw()
}

// ReadLine edits a line of input until Enter and returns it with a trailing newline.
func (c *Console) ReadLine() string {
	c.input = c.input[:0]
	c.draw()
	for {
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			c.OnInterrupt(ErrInterrupted)
			return "\n"
		case *tcell.EventResize:
			c.screen.Sync()
			c.draw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				text := string(c.input)
				c.input = c.input[:0]
				c.Print(text + "\n")
				return text + "\n"
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if n := len(c.input); n > 0 {
					c.input = c.input[:n-1]
					c.draw()
				}
			case tcell.KeyCtrlC:
				c.OnInterrupt(ErrInterrupted)
				return "\n"
			case tcell.KeyRune:
				c.input = append(c.input, ev.Rune())
				c.draw()
			}
		}
	}
}

// Lines returns the completed scrollback lines followed by the current line.
func (c *Console) Lines() []string {
	out := make([]string, 0, len(c.lines)+1)
	out = append(out, c.lines...)
	return append(out, c.current+string(c.input))
}

func (c *Console) draw() {
	width, height := c.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	var rows []string
	for _, line := range c.Lines() {
		rows = append(rows, wrapRunes(line, width)...)
	}
	if len(rows) > height {
		rows = rows[len(rows)-height:]
	}
	last := len(rows) - 1
	c.renderer.Render(rows, len([]rune(rows[last])), last)
}

func (c *Console) delay(d time.Duration) {
	if d > 0 {
		c.sleep(d)
	}
}

// wrapRunes hard-wraps s into rows of at most width runes. An empty string
// yields one empty row.
func wrapRunes(s string, width int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return []string{""}
	}
	var rows []string
	for len(runes) > width {
		rows = append(rows, string(runes[:width]))
		runes = runes[width:]
	}
	return append(rows, string(runes))
}

var _ Presenter = (*Console)(nil)
