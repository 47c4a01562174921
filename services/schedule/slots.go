package schedule

import (
	"iter"
	"strings"

	"clinicore/models"
	"clinicore/utils"
)

// DefaultSlotSize is the bookable subdivision length in minutes.
const DefaultSlotSize = 30

// Slot is one generated subdivision of an availability window. Value is the
// 24-hour range string stored on appointments and compared for equality;
// Display is the 12-hour projection shown to patients.
type Slot struct {
	Start   int // minutes from midnight
	End     int
	Value   string // "HH:MM - HH:MM"
	Display string // "H:MM AM/PM - H:MM AM/PM"
}

// GenerateSlots expands the half-open window [start, end) (minutes from
// midnight) into consecutive size-minute slots in ascending order. A trailing
// remainder shorter than size is dropped; an empty or inverted window yields
// nothing. The sequence is lazy and restarts from the window start each time
// it is ranged over.
func GenerateSlots(start, end, size int) iter.Seq[Slot] {
	return func(yield func(Slot) bool) {
		if size <= 0 {
			return
		}
		for s := start; s+size <= end; s += size {
			if !yield(newSlot(s, s+size)) {
				return
			}
		}
	}
}

// WindowSlots expands one staff-declared window into size-minute slots.
func WindowSlots(window models.TimeSlot, size int) (iter.Seq[Slot], error) {
	start, err := utils.ToMinutes(window.Start)
	if err != nil {
		return nil, NewValidationError("invalid window start: %v", err)
	}
	end, err := utils.ToMinutes(window.End)
	if err != nil {
		return nil, NewValidationError("invalid window end: %v", err)
	}
	return GenerateSlots(start, end, size), nil
}

func newSlot(start, end int) Slot {
	startClock := utils.MinutesToClock(start)
	endClock := utils.MinutesToClock(end)
	// Clock strings from MinutesToClock are always well-formed.
	startDisplay, _ := utils.FormatTwelveHour(startClock)
	endDisplay, _ := utils.FormatTwelveHour(endClock)
	return Slot{
		Start:   start,
		End:     end,
		Value:   startClock + " - " + endClock,
		Display: startDisplay + " - " + endDisplay,
	}
}

// ParseSlotValue splits a stored "HH:MM - HH:MM" range back into minute
// offsets, so bookings compare numerically rather than by raw string.
func ParseSlotValue(value string) (start, end int, err error) {
	left, right, ok := strings.Cut(value, " - ")
	if !ok {
		return 0, 0, NewValidationError("invalid slot value %q", value)
	}
	start, err = utils.ToMinutes(left)
	if err != nil {
		return 0, 0, NewValidationError("invalid slot value %q: %v", value, err)
	}
	end, err = utils.ToMinutes(right)
	if err != nil {
		return 0, 0, NewValidationError("invalid slot value %q: %v", value, err)
	}
	return start, end, nil
}
