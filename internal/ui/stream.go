package ui

import (
	"bufio"
	"errors"
	"io"
	"time"
)

// ErrInputClosed is passed to the EOF handler when input runs out.
var ErrInputClosed = errors.New("ui: input closed")

// ANSI sequences used by the plain stream presenter.
const (
	ansiReset       = "\x1bc"
	ansiPrevLine    = "\x1b[1F"
	ansiClearLine   = "\x1b[2K"
	waitPromptGlyph = "→"
)

// Stream is a Presenter over a plain reader and writer.
// It is used when the game is not attached to a terminal, and in tests.
type Stream struct {
	in     *bufio.Reader
	out    io.Writer
	timing Timing
	sleep  func(time.Duration)

	// OnEOF is called when input is exhausted. The default panics with
	// ErrInputClosed so that a runaway prompt loop cannot spin forever.
	OnEOF func(err error)
}

// NewStream creates a Stream presenter.
func NewStream(r io.Reader, w io.Writer, timing Timing) *Stream {
	return &Stream{
		in:     bufio.NewReader(r),
		out:    w,
		timing: timing,
		sleep:  time.Sleep,
		OnEOF:  func(err error) { panic(err) },
	}
}

func (s *Stream) write(str string) {
	// Write errors on the terminal are not recoverable and not reportable.
	_, _ = io.WriteString(s.out, str)
}

// PrintLine emits str and a line break.
func (s *Stream) PrintLine(str string) { s.write(str + "\n") }

// Print emits str.
func (s *Stream) Print(str string) { s.write(str) }

// Ellipsis emits three paced dots.
func (s *Stream) Ellipsis() {
	for i := 0; i < 3; i++ {
		s.write(".")
		s.delay(s.timing.Dot)
	}
}

// Pause blocks for the pause delay.
func (s *Stream) Pause() { s.delay(s.timing.Pause) }

// Wait reads a line and blanks it.
func (s *Stream) Wait() {
	s.write(waitPromptGlyph)
	s.ReadLine()
	s.write(ansiPrevLine + ansiClearLine + "\n")
}

// Clear resets the terminal.
func (s *Stream) Clear() { s.write(ansiReset) }

// ReadLine reads one line including the trailing newline.
func (s *Stream) ReadLine() string {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if line == "" {
			s.OnEOF(ErrInputClosed)
			return "\n"
		}
		return line + "\n"
	}
	return line
}

func (s *Stream) delay(d time.Duration) {
	if d > 0 {
		s.sleep(d)
	}
}

var _ Presenter = (*Stream)(nil)
