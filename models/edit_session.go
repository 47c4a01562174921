package models

import "time"

// AvailabilityEditSession is the working state of one availability-editing
// dialog: the staff member and date being edited plus the draft slot list.
// Sessions live in Redis under a TTL and are discarded on save or cancel; the
// draft list is private to the operator who opened the session.
type AvailabilityEditSession struct {
	ID          string     `json:"id"`
	StaffID     string     `json:"staffId"`
	Date        string     `json:"date"` // "2006-01-02"
	Repeat      string     `json:"repeat"`
	RepeatUntil string     `json:"repeatUntil,omitempty"`
	Draft       []TimeSlot `json:"draft"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// StartEditSessionRequest opens an editing session for one staff member + date.
type StartEditSessionRequest struct {
	StaffID     string `json:"staffId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Repeat      string `json:"repeat"`
	RepeatUntil string `json:"repeatUntil"`
}

// DraftSlotRequest adds or replaces one window in the session's draft list.
// Index below zero appends; otherwise the slot at Index is edited in place.
type DraftSlotRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
	Index int    `json:"index"`
}
