package models

// Repeat policies for an availability entry.
const (
	RepeatNone   = "none"
	RepeatDaily  = "daily"
	RepeatWeekly = "weekly"
)

// TimeSlot is a staff-declared working window on a given date.
// Start and End are 24-hour "HH:MM" clock strings; the interval is half-open [Start, End).
type TimeSlot struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// AvailabilityEntry groups the working windows a staff member declared for one
// calendar date. A staff document holds at most one entry per date; merging a
// second entry for the same date appends its slots to the existing one.
type AvailabilityEntry struct {
	Date        string     `bson:"date" json:"date"`       // "2006-01-02"
	Weekday     string     `bson:"weekday" json:"weekday"` // cached from Date for display
	Slots       []TimeSlot `bson:"slots" json:"slots"`
	Repeat      string     `bson:"repeat" json:"repeat"` // "none", "daily" or "weekly"
	RepeatUntil string     `bson:"repeatUntil,omitempty" json:"repeatUntil,omitempty"`
}

// AvailableSlot is one 30-minute subdivision of an availability window, offered
// to the booking UI. Value is the 24-hour range string used as the equality key
// against booked appointments; Display is the 12-hour projection.
type AvailableSlot struct {
	Value    string `json:"value"`   // e.g. "08:00 - 08:30"
	Display  string `json:"display"` // e.g. "8:00 AM - 8:30 AM"
	Start    int    `json:"start"`   // minutes from midnight
	End      int    `json:"end"`
	Date     string `json:"date"`
	Bookable bool   `json:"bookable"`
}
