package schedule

import (
	"reflect"
	"testing"

	"clinicore/models"
)

func TestExpandRecurrenceNone(t *testing.T) {
	dates, err := ExpandRecurrence("2025-01-06", models.RepeatNone, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(dates, []string{"2025-01-06"}) {
		t.Errorf("got %v, want the anchor alone", dates)
	}
}

func TestExpandRecurrenceDaily(t *testing.T) {
	dates, err := ExpandRecurrence("2025-01-06", models.RepeatDaily, "2025-01-08")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2025-01-06", "2025-01-07", "2025-01-08"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("got %v, want %v", dates, want)
	}
}

func TestExpandRecurrenceWeekly(t *testing.T) {
	// 2025-01-06 is a Monday; every Monday through the end date.
	dates, err := ExpandRecurrence("2025-01-06", models.RepeatWeekly, "2025-01-27")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2025-01-06", "2025-01-13", "2025-01-20", "2025-01-27"}
	if !reflect.DeepEqual(dates, want) {
		t.Errorf("got %v, want %v", dates, want)
	}
}

func TestExpandRecurrenceWeeklyEndBeforeNextOccurrence(t *testing.T) {
	dates, err := ExpandRecurrence("2025-01-06", models.RepeatWeekly, "2025-01-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(dates, []string{"2025-01-06"}) {
		t.Errorf("got %v, want the anchor alone", dates)
	}
}

func TestExpandRecurrenceDefaultUntil(t *testing.T) {
	dates, err := ExpandRecurrence("2025-01-06", models.RepeatDaily, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Anchor through anchor+30 inclusive.
	if len(dates) != DefaultRecurrenceDays+1 {
		t.Errorf("got %d dates, want %d", len(dates), DefaultRecurrenceDays+1)
	}
	if dates[len(dates)-1] != "2025-02-05" {
		t.Errorf("last date = %s, want 2025-02-05", dates[len(dates)-1])
	}
}

func TestExpandRecurrenceErrors(t *testing.T) {
	tests := []struct {
		name    string
		anchor  string
		repeat  string
		until   string
	}{
		{"bad anchor", "06-01-2025", models.RepeatDaily, "2025-01-08"},
		{"bad until", "2025-01-06", models.RepeatDaily, "soon"},
		{"until equals anchor", "2025-01-06", models.RepeatDaily, "2025-01-06"},
		{"until before anchor", "2025-01-06", models.RepeatWeekly, "2025-01-01"},
		{"unknown policy", "2025-01-06", "fortnightly", "2025-02-06"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ExpandRecurrence(tt.anchor, tt.repeat, tt.until); err == nil {
				t.Error("expected error")
			}
		})
	}
}
