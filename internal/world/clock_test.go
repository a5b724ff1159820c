package world

import "testing"

func TestNewClock(t *testing.T) {
	c := NewClock()
	if c.String() != "Day 0: 10:00 (DAY)" {
		t.Errorf("NewClock().String() = %q", c.String())
	}
}

func TestClockAdvance(t *testing.T) {
	tests := []struct {
		start    Clock
		hours    int
		expected Clock
	}{
		{Clock{0, 10}, 0, Clock{0, 10}},
		{Clock{0, 10}, 6, Clock{0, 16}},
		{Clock{0, 22}, 2, Clock{1, 0}},
		{Clock{2, 23}, 49, Clock{5, 0}},
	}

	for _, tt := range tests {
		c := tt.start
		c.Advance(tt.hours)
		if c != tt.expected {
			t.Errorf("%+v.Advance(%d) = %+v, want %+v", tt.start, tt.hours, c, tt.expected)
		}
	}
}

func TestClockAdvanceAssociative(t *testing.T) {
	for a := 0; a < 30; a++ {
		for b := 0; b < 30; b++ {
			split, whole := NewClock(), NewClock()
			split.Advance(a)
			split.Advance(b)
			whole.Advance(a + b)
			if split != whole {
				t.Fatalf("Advance(%d)+Advance(%d) = %+v, Advance(%d) = %+v", a, b, split, a+b, whole)
			}
		}
	}
}

func TestClockIsNight(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := hour < 7 || hour > 20
		c := Clock{Day: 3, Hour: hour}
		if got := c.IsNight(); got != want {
			t.Errorf("Clock{Hour: %d}.IsNight() = %v, want %v", hour, got, want)
		}
	}
}

func TestClockString(t *testing.T) {
	tests := []struct {
		clock    Clock
		expected string
	}{
		{Clock{0, 7}, "Day 0: 07:00 (DAY)"},
		{Clock{4, 20}, "Day 4: 20:00 (DAY)"},
		{Clock{4, 21}, "Day 4: 21:00 (NIGHT)"},
		{Clock{12, 3}, "Day 12: 03:00 (NIGHT)"},
	}
	for _, tt := range tests {
		if got := tt.clock.String(); got != tt.expected {
			t.Errorf("%+v.String() = %q, want %q", tt.clock, got, tt.expected)
		}
	}
}
