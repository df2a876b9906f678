// Package layout turns time-bound calendar entries into positioned rectangles
// over the fixed business window.
package layout

import (
	"strings"
	"time"

	"fieldcal/models"
)

const (
	// WindowStart and WindowEnd bound the business window, in minutes from midnight.
	WindowStart = 9 * 60
	WindowEnd   = 18 * 60
	Noon        = 12 * 60

	// UnitsPerHour is the vertical size of one hour on every grid.
	UnitsPerHour = 4.0
	// MinHeight is the smallest rectangle height ever rendered.
	MinHeight = 2.0
)

// Slot is either the whole business day or a [Start, End) range in minutes
// from midnight.
type Slot struct {
	AllDay bool `json:"allDay"`
	Start  int  `json:"start"`
	End    int  `json:"end"`
}

func AllDay() Slot { return Slot{AllDay: true} }

// Range builds a bounded slot. A non-positive duration degrades to AllDay.
func Range(start, end int) Slot {
	if start >= end {
		return AllDay()
	}
	return Slot{Start: start, End: end}
}

// Span returns the effective minutes covered; all-day covers the whole window.
func (s Slot) Span() (int, int) {
	if s.AllDay {
		return WindowStart, WindowEnd
	}
	return s.Start, s.End
}

// Rendered stretches a range to the minutes its clamped rectangle covers.
func (s Slot) Rendered() Slot {
	if s.AllDay {
		return s
	}
	if minEnd := s.Start + int(MinHeight/UnitsPerHour*60); s.End < minEnd {
		s.End = minEnd
	}
	return s
}

// Overlaps uses half-open ranges. All-day overlaps everything.
func (s Slot) Overlaps(o Slot) bool {
	if s.AllDay || o.AllDay {
		return true
	}
	return s.Start < o.End && o.Start < s.End
}

// ParseSlot reads a stored time slot. It never fails: anything that is not
// the all-day sentinel or a well formed "HH:MM-HH:MM" pair becomes AllDay.
func ParseSlot(raw string) Slot {
	raw = strings.TrimSpace(raw)
	if raw == "" || isAllDaySentinel(raw) {
		return AllDay()
	}
	sep := strings.IndexAny(raw, "-~")
	if sep < 0 {
		return AllDay()
	}
	start, ok := ParseClock(raw[:sep])
	if !ok {
		return AllDay()
	}
	end, ok := ParseClock(raw[sep+1:])
	if !ok {
		return AllDay()
	}
	return Range(start, end)
}

// ValidSlot reports whether raw is the sentinel or a parsable, increasing range.
func ValidSlot(raw string) bool {
	raw = strings.TrimSpace(raw)
	if isAllDaySentinel(raw) {
		return true
	}
	return !ParseSlot(raw).AllDay
}

func isAllDaySentinel(raw string) bool {
	switch strings.ToLower(raw) {
	case models.AllDaySlot, "allday", "all day", "終日":
		return true
	}
	return false
}

// ParseClock converts "H:MM" or "HH:MM" into minutes from midnight.
func ParseClock(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "24:00" {
		return 24 * 60, true
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// FormatClock is the inverse of ParseClock.
func FormatClock(minutes int) string {
	return time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(minutes) * time.Minute).Format("15:04")
}

// ExclusionSlot maps an exclusion time type onto a slot. All-day, unknown and
// malformed custom exclusions become AllDay.
func ExclusionSlot(timeType models.ExclusionTimeType, start, end string) Slot {
	switch timeType {
	case models.ExclusionMorning:
		return Range(WindowStart, Noon)
	case models.ExclusionAfternoon:
		return Range(Noon, WindowEnd)
	case models.ExclusionCustom:
		s, ok1 := ParseClock(start)
		e, ok2 := ParseClock(end)
		if ok1 && ok2 && s < e {
			return Range(s, e)
		}
	}
	return AllDay()
}

// TopOffset is the distance from the top of the window, in units.
func TopOffset(s Slot) float64 {
	if s.AllDay {
		return 0
	}
	return float64(s.Start-WindowStart) / 60 * UnitsPerHour
}

// Height is the rectangle height in units, never below MinHeight.
func Height(s Slot) float64 {
	if s.AllDay {
		return WindowHeight()
	}
	h := float64(s.End-s.Start) / 60 * UnitsPerHour
	if h < MinHeight {
		return MinHeight
	}
	return h
}

// WindowHeight is the full business window in units.
func WindowHeight() float64 {
	return float64(WindowEnd-WindowStart) / 60 * UnitsPerHour
}

// Hours lists every grid hour from the window start to its end, inclusive.
func Hours() []int {
	hours := make([]int, 0, (WindowEnd-WindowStart)/60+1)
	for h := WindowStart / 60; h <= WindowEnd/60; h++ {
		hours = append(hours, h)
	}
	return hours
}
