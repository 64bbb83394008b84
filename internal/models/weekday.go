package models

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is a day of the week used for schedule matching. It round-trips
// through JSON as a lowercase string, which is also the persisted form of
// the schedule blob.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// AllWeekdays lists the weekdays in canonical Monday-first order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var timeWeekdays = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// WeekdayOf maps a calendar date to its weekday. The mapping is total: every
// date resolves to exactly one Weekday.
func WeekdayOf(t time.Time) Weekday {
	return timeWeekdays[t.Weekday()]
}

// ParseWeekday parses a weekday name or common three-letter abbreviation.
func ParseWeekday(s string) (Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mon", "monday":
		return Monday, nil
	case "tue", "tuesday":
		return Tuesday, nil
	case "wed", "wednesday":
		return Wednesday, nil
	case "thu", "thursday":
		return Thursday, nil
	case "fri", "friday":
		return Friday, nil
	case "sat", "saturday":
		return Saturday, nil
	case "sun", "sunday":
		return Sunday, nil
	}
	return "", fmt.Errorf("invalid weekday: %s", s)
}

// Short returns the three-letter abbreviation for display.
func (w Weekday) Short() string {
	if len(w) < 3 {
		return string(w)
	}
	return string(w)[:3]
}

// ScheduleContains reports whether the schedule includes the given weekday.
func ScheduleContains(schedule []Weekday, day Weekday) bool {
	for _, w := range schedule {
		if w == day {
			return true
		}
	}
	return false
}

// SortSchedule returns a copy of the schedule in canonical Monday-first order
// with duplicates removed.
func SortSchedule(schedule []Weekday) []Weekday {
	seen := make(map[Weekday]bool, len(schedule))
	for _, w := range schedule {
		seen[w] = true
	}
	out := make([]Weekday, 0, len(seen))
	for _, w := range AllWeekdays {
		if seen[w] {
			out = append(out, w)
		}
	}
	return out
}
