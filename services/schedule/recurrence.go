package schedule

import (
	"time"

	"clinicore/models"
	"clinicore/utils"
)

// DefaultRecurrenceDays bounds open-ended recurrence to 30 days past the anchor.
const DefaultRecurrenceDays = 30

// ExpandRecurrence returns the ordered calendar dates an availability entry
// applies to. "none" yields the anchor alone; "daily" every date from anchor
// to until inclusive; "weekly" every date in that range sharing the anchor's
// weekday. An empty until with recurrence enabled defaults to anchor+30 days;
// until must lie at least one day past the anchor.
func ExpandRecurrence(anchorDate, repeat, until string) ([]string, error) {
	anchor, err := time.Parse(utils.DateLayout, anchorDate)
	if err != nil {
		return nil, NewValidationError("invalid anchor date %q", anchorDate)
	}

	switch repeat {
	case "", models.RepeatNone:
		return []string{anchor.Format(utils.DateLayout)}, nil
	case models.RepeatDaily, models.RepeatWeekly:
	default:
		return nil, NewValidationError("unknown repeat policy %q", repeat)
	}

	end := anchor.AddDate(0, 0, DefaultRecurrenceDays)
	if until != "" {
		end, err = time.Parse(utils.DateLayout, until)
		if err != nil {
			return nil, NewValidationError("invalid repeat-until date %q", until)
		}
	}
	if !end.After(anchor) {
		return nil, NewValidationError("repeat-until %s must be at least one day after %s",
			end.Format(utils.DateLayout), anchorDate)
	}

	var dates []string
	for d := anchor; !d.After(end); d = d.AddDate(0, 0, 1) {
		if repeat == models.RepeatWeekly && d.Weekday() != anchor.Weekday() {
			continue
		}
		dates = append(dates, d.Format(utils.DateLayout))
	}
	return dates, nil
}
