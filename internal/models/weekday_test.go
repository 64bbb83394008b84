package models

import (
	"testing"
	"time"
)

func TestWeekdayOf(t *testing.T) {
	cases := []struct {
		date string
		want Weekday
	}{
		{"2024-01-08", Monday},
		{"2024-01-09", Tuesday},
		{"2024-01-10", Wednesday},
		{"2024-01-11", Thursday},
		{"2024-01-12", Friday},
		{"2024-01-13", Saturday},
		{"2024-01-14", Sunday},
	}

	for _, tc := range cases {
		t.Run(tc.date, func(t *testing.T) {
			d, err := time.ParseInLocation("2006-01-02", tc.date, time.Local)
			if err != nil {
				t.Fatalf("failed to parse date: %v", err)
			}
			if got := WeekdayOf(d); got != tc.want {
				t.Errorf("WeekdayOf(%s) = %s, want %s", tc.date, got, tc.want)
			}
		})
	}
}

func TestParseWeekday(t *testing.T) {
	t.Run("full names and abbreviations", func(t *testing.T) {
		for _, w := range AllWeekdays {
			got, err := ParseWeekday(string(w))
			if err != nil {
				t.Fatalf("ParseWeekday(%s) returned error: %v", w, err)
			}
			if got != w {
				t.Errorf("ParseWeekday(%s) = %s, want %s", w, got, w)
			}

			got, err = ParseWeekday(w.Short())
			if err != nil {
				t.Fatalf("ParseWeekday(%s) returned error: %v", w.Short(), err)
			}
			if got != w {
				t.Errorf("ParseWeekday(%s) = %s, want %s", w.Short(), got, w)
			}
		}
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		got, err := ParseWeekday("  MONDAY ")
		if err != nil {
			t.Fatalf("ParseWeekday returned error: %v", err)
		}
		if got != Monday {
			t.Errorf("ParseWeekday(\"  MONDAY \") = %s, want monday", got)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		if _, err := ParseWeekday("someday"); err == nil {
			t.Error("ParseWeekday(someday) did not return an error")
		}
	})
}

func TestSortSchedule(t *testing.T) {
	got := SortSchedule([]Weekday{Friday, Monday, Friday, Wednesday})
	want := []Weekday{Monday, Wednesday, Friday}
	if len(got) != len(want) {
		t.Fatalf("SortSchedule returned %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortSchedule[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestNormalizeDay(t *testing.T) {
	late := time.Date(2024, 1, 10, 23, 59, 59, 500, time.Local)
	norm := NormalizeDay(late)

	if norm.Hour() != 0 || norm.Minute() != 0 || norm.Second() != 0 || norm.Nanosecond() != 0 {
		t.Errorf("NormalizeDay did not truncate time of day: %v", norm)
	}
	if norm.Year() != 2024 || norm.Month() != time.January || norm.Day() != 10 {
		t.Errorf("NormalizeDay changed the calendar day: %v", norm)
	}

	if DayKey(late) != "2024-01-10" {
		t.Errorf("DayKey(%v) = %s, want 2024-01-10", late, DayKey(late))
	}
	if DayKey(late) != DayKey(norm) {
		t.Error("DayKey differs before and after normalization")
	}
}
