package utils

import (
	"errors"
	"testing"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"08:30", 510},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ToMinutes(tc.in)
		if err != nil {
			t.Fatalf("ToMinutes(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ToMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestToMinutesRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "8", "24:00", "12:60", "ab:cd", "12-30"} {
		_, err := ToMinutes(in)
		if err == nil {
			t.Errorf("ToMinutes(%q): expected error", in)
			continue
		}
		var perr *TimeParseError
		if !errors.As(err, &perr) {
			t.Errorf("ToMinutes(%q): expected *TimeParseError, got %T", in, err)
		}
	}
}

func TestAddMinutesWraps(t *testing.T) {
	got, err := AddMinutes("23:45", 30)
	if err != nil {
		t.Fatal(err)
	}
	if got != "00:15" {
		t.Errorf("AddMinutes(23:45, 30) = %q, want 00:15", got)
	}

	got, err = AddMinutes("08:00", 30)
	if err != nil {
		t.Fatal(err)
	}
	if got != "08:30" {
		t.Errorf("AddMinutes(08:00, 30) = %q, want 08:30", got)
	}
}

func TestFormatTwelveHour(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"00:15", "12:15 AM"},
		{"08:00", "8:00 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"23:30", "11:30 PM"},
	}
	for _, tc := range cases {
		got, err := FormatTwelveHour(tc.in)
		if err != nil {
			t.Fatalf("FormatTwelveHour(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("FormatTwelveHour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDateLabel(t *testing.T) {
	got, err := FormatDateLabel("2025-01-06")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Jan 6, 2025" {
		t.Errorf("FormatDateLabel = %q, want Jan 6, 2025", got)
	}
	if _, err := FormatDateLabel("01/06/2025"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestWeekdayOf(t *testing.T) {
	got, err := WeekdayOf("2025-01-06")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Monday" {
		t.Errorf("WeekdayOf(2025-01-06) = %q, want Monday", got)
	}
}
