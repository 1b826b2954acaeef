package clock

import (
	"testing"
	"time"
)

func TestSystemClockUsesLocation(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Skip("tzdata not available")
	}
	c := NewSystem(loc)
	if got := c.Now().Location(); got != loc {
		t.Errorf("Now().Location() = %v, want %v", got, loc)
	}
}

func TestSystemClockNilLocationDefaultsToUTC(t *testing.T) {
	c := NewSystem(nil)
	if got := c.Now().Location(); got != time.UTC {
		t.Errorf("Now().Location() = %v, want UTC", got)
	}
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2024, 3, 11, 9, 15, 0, 0, time.UTC)
	c := Fixed{Instant: instant}
	if !c.Now().Equal(instant) {
		t.Errorf("Now() = %v, want %v", c.Now(), instant)
	}
}
