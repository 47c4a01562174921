package schedule

import (
	"clinicore/models"
	"clinicore/utils"
)

// IsOverlapping reports whether the candidate window [candidateStart,
// candidateEnd) intersects any slot in existing. Two half-open intervals
// overlap iff s1 < e2 && e1 > s2, so adjacent windows do not collide.
// excludeIndex skips the slot being edited in place; pass -1 to compare
// against the whole list.
func IsOverlapping(candidateStart, candidateEnd string, existing []models.TimeSlot, excludeIndex int) (bool, error) {
	cs, err := utils.ToMinutes(candidateStart)
	if err != nil {
		return false, NewValidationError("invalid start time: %v", err)
	}
	ce, err := utils.ToMinutes(candidateEnd)
	if err != nil {
		return false, NewValidationError("invalid end time: %v", err)
	}

	for i, slot := range existing {
		if i == excludeIndex {
			continue
		}
		s, err := utils.ToMinutes(slot.Start)
		if err != nil {
			return false, NewValidationError("invalid existing slot start %q: %v", slot.Start, err)
		}
		e, err := utils.ToMinutes(slot.End)
		if err != nil {
			return false, NewValidationError("invalid existing slot end %q: %v", slot.End, err)
		}
		if cs < e && ce > s {
			return true, nil
		}
	}
	return false, nil
}
