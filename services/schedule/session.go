package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicore/models"
	"clinicore/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// StartEditSession opens an availability-editing session for one staff member
// and date. The draft slot list starts empty; recurrence without an explicit
// end defaults to thirty days past the anchor date.
func (s *DefaultScheduleService) StartEditSession(ctx context.Context, req models.StartEditSessionRequest) (*models.AvailabilityEditSession, error) {
	if _, err := time.Parse(utils.DateLayout, req.Date); err != nil {
		return nil, NewValidationError("invalid date %q", req.Date)
	}

	repeat := req.Repeat
	if repeat == "" {
		repeat = models.RepeatNone
	}
	until := req.RepeatUntil
	switch repeat {
	case models.RepeatNone:
		until = ""
	case models.RepeatDaily, models.RepeatWeekly:
		// Validate the policy up front so a bad end date surfaces before the
		// operator has entered any slots.
		if _, err := ExpandRecurrence(req.Date, repeat, until); err != nil {
			return nil, err
		}
		if until == "" {
			anchor, _ := time.Parse(utils.DateLayout, req.Date)
			until = anchor.AddDate(0, 0, DefaultRecurrenceDays).Format(utils.DateLayout)
		}
	default:
		return nil, NewValidationError("unknown repeat policy %q", repeat)
	}

	if _, err := s.StaffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Kind: "staff", ID: req.StaffID}
		}
		return nil, &StoreError{Op: "fetch staff", Err: err}
	}

	session := &models.AvailabilityEditSession{
		ID:          uuid.New().String(),
		StaffID:     req.StaffID,
		Date:        req.Date,
		Repeat:      repeat,
		RepeatUntil: until,
		Draft:       []models.TimeSlot{},
		CreatedAt:   time.Now(),
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, &StoreError{Op: "save edit session", Err: err}
	}
	return session, nil
}

// AddDraftSlot validates a candidate window and adds it to the session's draft
// list, or replaces the slot at req.Index when editing in place. The candidate
// is checked against the other draft slots and against the slots already
// persisted for that date; on overlap the draft is left untouched.
func (s *DefaultScheduleService) AddDraftSlot(ctx context.Context, sessionID string, req models.DraftSlotRequest) (*models.AvailabilityEditSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	start, err := utils.ToMinutes(req.Start)
	if err != nil {
		return nil, NewValidationError("invalid start time: %v", err)
	}
	end, err := utils.ToMinutes(req.End)
	if err != nil {
		return nil, NewValidationError("invalid end time: %v", err)
	}
	if end <= start {
		return nil, NewValidationError("end time %s must be after start time %s", req.End, req.Start)
	}
	if req.Index >= len(session.Draft) {
		return nil, NewValidationError("no draft slot at index %d", req.Index)
	}

	excludeIndex := req.Index
	if excludeIndex < 0 {
		excludeIndex = -1
	}
	overlaps, err := IsOverlapping(req.Start, req.End, session.Draft, excludeIndex)
	if err != nil {
		return nil, err
	}
	if !overlaps {
		overlaps, err = s.overlapsPersisted(ctx, session.StaffID, session.Date, req.Start, req.End)
		if err != nil {
			return nil, err
		}
	}
	if overlaps {
		return nil, &OverlapError{Start: req.Start, End: req.End}
	}

	slot := models.TimeSlot{Start: req.Start, End: req.End}
	if req.Index < 0 {
		session.Draft = append(session.Draft, slot)
	} else {
		session.Draft[req.Index] = slot
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, &StoreError{Op: "save edit session", Err: err}
	}
	return session, nil
}

// overlapsPersisted checks the candidate against the slots already saved for
// the session's date, so a merge cannot introduce an overlap the dialog never
// saw.
func (s *DefaultScheduleService) overlapsPersisted(ctx context.Context, staffID, date, start, end string) (bool, error) {
	entry, err := s.StaffRepo.GetAvailabilityEntry(ctx, staffID, date)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, &NotFoundError{Kind: "staff", ID: staffID}
		}
		return false, &StoreError{Op: "fetch availability", Err: err}
	}
	if entry == nil {
		return false, nil
	}
	return IsOverlapping(start, end, entry.Slots, -1)
}

// RemoveDraftSlot deletes one window from the draft list.
func (s *DefaultScheduleService) RemoveDraftSlot(ctx context.Context, sessionID string, index int) (*models.AvailabilityEditSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(session.Draft) {
		return nil, NewValidationError("no draft slot at index %d", index)
	}
	session.Draft = append(session.Draft[:index], session.Draft[index+1:]...)
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, &StoreError{Op: "save edit session", Err: err}
	}
	return session, nil
}

// SaveEditSession expands the session's recurrence policy into calendar dates,
// merges the draft slot set into each date's availability entry and discards
// the session. Merging appends to an existing entry for a date and does not
// deduplicate identical slots; resubmitting the same draft doubles them.
func (s *DefaultScheduleService) SaveEditSession(ctx context.Context, sessionID, actorID string) ([]string, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Draft) == 0 {
		return nil, NewValidationError("no slots to save")
	}

	dates, err := ExpandRecurrence(session.Date, session.Repeat, session.RepeatUntil)
	if err != nil {
		return nil, err
	}

	entries := make([]models.AvailabilityEntry, 0, len(dates))
	for _, date := range dates {
		weekday, err := utils.WeekdayOf(date)
		if err != nil {
			return nil, NewValidationError("invalid date %q", date)
		}
		entries = append(entries, models.AvailabilityEntry{
			Date:        date,
			Weekday:     weekday,
			Slots:       session.Draft,
			Repeat:      session.Repeat,
			RepeatUntil: session.RepeatUntil,
		})
	}

	if err := s.StaffRepo.MergeAvailability(ctx, session.StaffID, entries); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Kind: "staff", ID: session.StaffID}
		}
		return nil, &StoreError{Op: "merge availability", Err: err}
	}

	s.audit(ctx, fmt.Sprintf("availability saved for staff %s: %d slot(s) across %d date(s)",
		session.StaffID, len(session.Draft), len(dates)), actorID, "availability")

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("failed to discard edit session after save",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return dates, nil
}

// DiscardEditSession drops the session and its draft without writing anything.
func (s *DefaultScheduleService) DiscardEditSession(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		return &StoreError{Op: "delete edit session", Err: err}
	}
	return nil
}

// OverrideAvailabilityEntry replaces a single date's entry, detaching it from
// whatever recurrence expansion generated it.
func (s *DefaultScheduleService) OverrideAvailabilityEntry(ctx context.Context, staffID string, entry models.AvailabilityEntry, actorID string) error {
	if _, err := time.Parse(utils.DateLayout, entry.Date); err != nil {
		return NewValidationError("invalid date %q", entry.Date)
	}
	for i, slot := range entry.Slots {
		overlaps, err := IsOverlapping(slot.Start, slot.End, entry.Slots, i)
		if err != nil {
			return err
		}
		if overlaps {
			return &OverlapError{Start: slot.Start, End: slot.End}
		}
	}

	weekday, err := utils.WeekdayOf(entry.Date)
	if err != nil {
		return NewValidationError("invalid date %q", entry.Date)
	}
	entry.Weekday = weekday
	entry.Repeat = models.RepeatNone
	entry.RepeatUntil = ""

	if err := s.StaffRepo.SetAvailabilityEntry(ctx, staffID, entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Kind: "staff", ID: staffID}
		}
		return &StoreError{Op: "set availability", Err: err}
	}
	s.audit(ctx, fmt.Sprintf("availability overridden for staff %s on %s", staffID, entry.Date),
		actorID, "availability")
	return nil
}

// RemoveAvailabilityEntry deletes one date's entry outright.
func (s *DefaultScheduleService) RemoveAvailabilityEntry(ctx context.Context, staffID, date, actorID string) error {
	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		return NewValidationError("invalid date %q", date)
	}
	if err := s.StaffRepo.DeleteAvailabilityEntry(ctx, staffID, date); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &NotFoundError{Kind: "staff", ID: staffID}
		}
		return &StoreError{Op: "delete availability", Err: err}
	}
	s.audit(ctx, fmt.Sprintf("availability removed for staff %s on %s", staffID, date),
		actorID, "availability")
	return nil
}

func (s *DefaultScheduleService) loadSession(ctx context.Context, sessionID string) (*models.AvailabilityEditSession, error) {
	session, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, &StoreError{Op: "fetch edit session", Err: err}
	}
	if session == nil {
		return nil, &NotFoundError{Kind: "edit session", ID: sessionID}
	}
	return session, nil
}

// audit records a trail entry; failures are logged and swallowed.
func (s *DefaultScheduleService) audit(ctx context.Context, message, actorID, section string) {
	if s.AuditRepo == nil {
		return
	}
	if err := s.AuditRepo.Record(ctx, message, actorID, section); err != nil {
		utils.GetLogger().Warn("failed to record audit event",
			zap.String("section", section), zap.Error(err))
	}
}
