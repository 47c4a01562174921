package schedule

import (
	"testing"

	"clinicore/models"
)

func TestIsOverlapping(t *testing.T) {
	existing := []models.TimeSlot{
		{Start: "09:00", End: "09:30"},
		{Start: "11:00", End: "12:00"},
	}

	tests := []struct {
		name         string
		start, end   string
		excludeIndex int
		want         bool
	}{
		{"partial overlap from the left", "08:45", "09:15", -1, true},
		{"partial overlap from the right", "09:15", "09:45", -1, true},
		{"contained inside existing", "11:15", "11:45", -1, true},
		{"contains existing", "08:30", "10:00", -1, true},
		{"identical range", "09:00", "09:30", -1, true},
		{"adjacent before", "08:30", "09:00", -1, false},
		{"adjacent after", "09:30", "10:00", -1, false},
		{"gap between slots", "10:00", "10:30", -1, false},
		{"editing the colliding slot in place", "09:00", "09:45", 0, false},
		{"excluded index leaves others checked", "11:30", "12:30", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsOverlapping(tt.start, tt.end, existing, tt.excludeIndex)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsOverlapping(%s, %s, exclude %d) = %v, want %v",
					tt.start, tt.end, tt.excludeIndex, got, tt.want)
			}
		})
	}
}

func TestIsOverlappingEmptyList(t *testing.T) {
	got, err := IsOverlapping("09:00", "09:30", nil, -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("empty list cannot overlap")
	}
}

func TestIsOverlappingMalformedInput(t *testing.T) {
	if _, err := IsOverlapping("9am", "09:30", nil, -1); err == nil {
		t.Error("expected error for malformed candidate start")
	}
	existing := []models.TimeSlot{{Start: "bad", End: "09:30"}}
	if _, err := IsOverlapping("10:00", "10:30", existing, -1); err == nil {
		t.Error("expected error for malformed existing slot")
	}
}
