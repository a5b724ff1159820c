package world

import "fmt"

const (
	dawnHour = 7  // First daylight hour
	duskHour = 20 // Last daylight hour
)

// Clock counts in-game days and hours.
type Clock struct {
	Day  int `json:"day"`
	Hour int `json:"hour"`
}

// NewClock returns the clock at the start of a run: day 0, 10:00.
func NewClock() Clock {
	return Clock{Day: 0, Hour: 10}
}

// Advance moves the clock forward by hours, rolling over into new days.
func (c *Clock) Advance(hours int) {
	total := c.Hour + hours
	c.Day += total / 24
	c.Hour = total % 24
}

// IsNight reports whether the current hour is outside daylight.
func (c Clock) IsNight() bool {
	return c.Hour < dawnHour || c.Hour > duskHour
}

// String formats the clock as "Day D: HH:00 (DAY|NIGHT)".
func (c Clock) String() string {
	period := "DAY"
	if c.IsNight() {
		period = "NIGHT"
	}
	return fmt.Sprintf("Day %d: %02d:00 (%s)", c.Day, c.Hour, period)
}
