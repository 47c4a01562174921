package schedule

import (
	"context"
	"errors"
	"testing"

	"clinicore/models"
)

func TestStartEditSessionDefaults(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStaffRepo(testStaff()))

	session, err := svc.StartEditSession(context.Background(), models.StartEditSessionRequest{
		StaffID: "staff-1",
		Date:    "2025-01-06",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Repeat != models.RepeatNone {
		t.Errorf("repeat = %q, want %q", session.Repeat, models.RepeatNone)
	}
	if session.RepeatUntil != "" {
		t.Errorf("repeatUntil = %q, want empty for non-recurring", session.RepeatUntil)
	}
	if len(session.Draft) != 0 {
		t.Errorf("draft should start empty, got %d slots", len(session.Draft))
	}
	if session.ID == "" {
		t.Error("session ID should be assigned")
	}
}

func TestStartEditSessionRecurrenceDefaultUntil(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStaffRepo(testStaff()))

	session, err := svc.StartEditSession(context.Background(), models.StartEditSessionRequest{
		StaffID: "staff-1",
		Date:    "2025-01-06",
		Repeat:  models.RepeatWeekly,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.RepeatUntil != "2025-02-05" {
		t.Errorf("repeatUntil = %q, want 2025-02-05", session.RepeatUntil)
	}
}

func TestStartEditSessionErrors(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStaffRepo(testStaff()))
	ctx := context.Background()

	_, err := svc.StartEditSession(ctx, models.StartEditSessionRequest{StaffID: "staff-1", Date: "Jan 6"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("bad date: error %T, want *ValidationError", err)
	}

	_, err = svc.StartEditSession(ctx, models.StartEditSessionRequest{
		StaffID: "staff-1", Date: "2025-01-06", Repeat: "monthly",
	})
	if !errors.As(err, &ve) {
		t.Errorf("unknown repeat: error %T, want *ValidationError", err)
	}

	_, err = svc.StartEditSession(ctx, models.StartEditSessionRequest{
		StaffID: "staff-1", Date: "2025-01-06", Repeat: models.RepeatDaily, RepeatUntil: "2025-01-06",
	})
	if !errors.As(err, &ve) {
		t.Errorf("until at anchor: error %T, want *ValidationError", err)
	}

	_, err = svc.StartEditSession(ctx, models.StartEditSessionRequest{StaffID: "ghost", Date: "2025-01-06"})
	var ne *NotFoundError
	if !errors.As(err, &ne) {
		t.Errorf("unknown staff: error %T, want *NotFoundError", err)
	}
}

func startSession(t *testing.T, svc *DefaultScheduleService, req models.StartEditSessionRequest) *models.AvailabilityEditSession {
	t.Helper()
	session, err := svc.StartEditSession(context.Background(), req)
	if err != nil {
		t.Fatalf("StartEditSession: %v", err)
	}
	return session
}

func TestAddDraftSlot(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStaffRepo(testStaff()))
	ctx := context.Background()
	session := startSession(t, svc, models.StartEditSessionRequest{StaffID: "staff-1", Date: "2025-01-06"})

	session, err := svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "09:00", End: "10:00", Index: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(session.Draft) != 1 {
		t.Fatalf("draft has %d slots, want 1", len(session.Draft))
	}

	// Adjacent window is fine.
	session, err = svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "10:00", End: "11:00", Index: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(session.Draft) != 2 {
		t.Fatalf("draft has %d slots, want 2", len(session.Draft))
	}

	// Overlapping window is rejected and the draft is left untouched.
	_, err = svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "09:30", End: "10:30", Index: -1})
	var oe *OverlapError
	if !errors.As(err, &oe) {
		t.Fatalf("error %T, want *OverlapError", err)
	}
	reloaded, err := svc.Sessions.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reloaded.Draft) != 2 {
		t.Errorf("draft has %d slots after rejected add, want 2", len(reloaded.Draft))
	}
}

func TestAddDraftSlotEditInPlace(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStaffRepo(testStaff()))
	ctx := context.Background()
	session := startSession(t, svc, models.StartEditSessionRequest{StaffID: "staff-1", Date: "2025-01-06"})

	if _, err := svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "09:00", End: "10:00", Index: -1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Widening the slot being edited does not collide with itself.
	session, err := svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "09:00", End: "11:00", Index: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Draft[0].End != "11:00" {
		t.Errorf("slot end = %q, want 11:00", session.Draft[0].End)
	}

	// Editing a slot that does not exist.
	_, err = svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "12:00", End: "13:00", Index: 5})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("error %T, want *ValidationError", err)
	}
}

func TestAddDraftSlotValidation(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStaffRepo(testStaff()))
	ctx := context.Background()
	session := startSession(t, svc, models.StartEditSessionRequest{StaffID: "staff-1", Date: "2025-01-06"})

	var ve *ValidationError
	for _, req := range []models.DraftSlotRequest{
		{Start: "9am", End: "10:00", Index: -1},
		{Start: "09:00", End: "25:00", Index: -1},
		{Start: "10:00", End: "10:00", Index: -1},
		{Start: "10:00", End: "09:00", Index: -1},
	} {
		if _, err := svc.AddDraftSlot(ctx, session.ID, req); !errors.As(err, &ve) {
			t.Errorf("AddDraftSlot(%v): error %T, want *ValidationError", req, err)
		}
	}
}

func TestAddDraftSlotAgainstPersisted(t *testing.T) {
	member := testStaff()
	member.Availability = []models.AvailabilityEntry{{
		Date:  "2025-01-06",
		Slots: []models.TimeSlot{{Start: "08:00", End: "09:00"}},
	}}
	svc, _, _, _ := newTestService(newFakeStaffRepo(member))
	ctx := context.Background()
	session := startSession(t, svc, models.StartEditSessionRequest{StaffID: "staff-1", Date: "2025-01-06"})

	_, err := svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "08:30", End: "09:30", Index: -1})
	var oe *OverlapError
	if !errors.As(err, &oe) {
		t.Fatalf("error %T, want *OverlapError against persisted slot", err)
	}

	if _, err := svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "09:00", End: "10:00", Index: -1}); err != nil {
		t.Fatalf("adjacent to persisted slot should pass: %v", err)
	}
}

func TestRemoveDraftSlot(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStaffRepo(testStaff()))
	ctx := context.Background()
	session := startSession(t, svc, models.StartEditSessionRequest{StaffID: "staff-1", Date: "2025-01-06"})

	for _, slot := range []models.DraftSlotRequest{
		{Start: "09:00", End: "10:00", Index: -1},
		{Start: "10:00", End: "11:00", Index: -1},
	} {
		if _, err := svc.AddDraftSlot(ctx, session.ID, slot); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	session, err := svc.RemoveDraftSlot(ctx, session.ID, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(session.Draft) != 1 || session.Draft[0].Start != "10:00" {
		t.Errorf("draft after removal = %v, want the second slot alone", session.Draft)
	}

	var ve *ValidationError
	if _, err := svc.RemoveDraftSlot(ctx, session.ID, 7); !errors.As(err, &ve) {
		t.Errorf("error %T, want *ValidationError for out-of-range index", err)
	}
}

func TestSaveEditSessionWeekly(t *testing.T) {
	repo := newFakeStaffRepo(testStaff())
	svc, _, sessions, audit := newTestService(repo)
	ctx := context.Background()
	session := startSession(t, svc, models.StartEditSessionRequest{
		StaffID: "staff-1", Date: "2025-01-06", Repeat: models.RepeatWeekly, RepeatUntil: "2025-01-27",
	})

	if _, err := svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "09:00", End: "12:00", Index: -1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dates, err := svc.SaveEditSession(ctx, session.ID, "admin-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2025-01-06", "2025-01-13", "2025-01-20", "2025-01-27"}
	if len(dates) != len(want) {
		t.Fatalf("wrote %d dates, want %d", len(dates), len(want))
	}

	member := repo.members["staff-1"]
	if len(member.Availability) != 4 {
		t.Fatalf("staff has %d availability entries, want 4", len(member.Availability))
	}
	for i, entry := range member.Availability {
		if entry.Date != want[i] {
			t.Errorf("entry %d date = %s, want %s", i, entry.Date, want[i])
		}
		if entry.Weekday != "Monday" {
			t.Errorf("entry %d weekday = %s, want Monday", i, entry.Weekday)
		}
		if entry.Repeat != models.RepeatWeekly || entry.RepeatUntil != "2025-01-27" {
			t.Errorf("entry %d lost recurrence metadata: %+v", i, entry)
		}
	}

	// The session is gone once saved.
	if got, _ := sessions.Get(ctx, session.ID); got != nil {
		t.Error("session should be discarded after save")
	}
	if len(audit.events) == 0 {
		t.Error("save should leave an audit event")
	}
}

func TestSaveEditSessionMergeAppends(t *testing.T) {
	member := testStaff()
	member.Availability = []models.AvailabilityEntry{{
		Date:  "2025-01-06",
		Slots: []models.TimeSlot{{Start: "08:00", End: "09:00"}},
	}}
	repo := newFakeStaffRepo(member)
	svc, _, _, _ := newTestService(repo)
	ctx := context.Background()

	session := startSession(t, svc, models.StartEditSessionRequest{StaffID: "staff-1", Date: "2025-01-06"})
	if _, err := svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "14:00", End: "15:00", Index: -1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SaveEditSession(ctx, session.ID, "admin-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entry := repo.members["staff-1"].Availability[0]
	if len(entry.Slots) != 2 {
		t.Fatalf("entry has %d slots, want the original plus the merged one", len(entry.Slots))
	}

	// Merging appends blindly; saving the same window again duplicates it.
	session = startSession(t, svc, models.StartEditSessionRequest{StaffID: "staff-1", Date: "2025-01-06"})
	if _, err := svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "16:00", End: "17:00", Index: -1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SaveEditSession(ctx, session.ID, "admin-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	session = startSession(t, svc, models.StartEditSessionRequest{StaffID: "staff-1", Date: "2025-01-06"})
	if _, err := svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "18:00", End: "19:00", Index: -1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.SaveEditSession(ctx, session.ID, "admin-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(repo.members["staff-1"].Availability[0].Slots); got != 4 {
		t.Errorf("entry has %d slots after repeated saves, want 4", got)
	}
}

func TestSaveEditSessionEmptyDraft(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStaffRepo(testStaff()))
	ctx := context.Background()
	session := startSession(t, svc, models.StartEditSessionRequest{StaffID: "staff-1", Date: "2025-01-06"})

	_, err := svc.SaveEditSession(ctx, session.ID, "admin-1")
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("error %T, want *ValidationError for empty draft", err)
	}
}

func TestDiscardEditSession(t *testing.T) {
	svc, _, sessions, _ := newTestService(newFakeStaffRepo(testStaff()))
	ctx := context.Background()
	session := startSession(t, svc, models.StartEditSessionRequest{StaffID: "staff-1", Date: "2025-01-06"})

	if err := svc.DiscardEditSession(ctx, session.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := sessions.Get(ctx, session.ID); got != nil {
		t.Error("session should be gone after discard")
	}

	// Operating on a discarded session reports not found.
	_, err := svc.AddDraftSlot(ctx, session.ID, models.DraftSlotRequest{Start: "09:00", End: "10:00", Index: -1})
	var ne *NotFoundError
	if !errors.As(err, &ne) {
		t.Errorf("error %T, want *NotFoundError", err)
	}
}

func TestOverrideAvailabilityEntry(t *testing.T) {
	member := testStaff()
	member.Availability = []models.AvailabilityEntry{{
		Date:        "2025-01-13",
		Repeat:      models.RepeatWeekly,
		RepeatUntil: "2025-02-03",
		Slots:       []models.TimeSlot{{Start: "09:00", End: "12:00"}},
	}}
	repo := newFakeStaffRepo(member)
	svc, _, _, _ := newTestService(repo)
	ctx := context.Background()

	entry := models.AvailabilityEntry{
		Date:  "2025-01-13",
		Slots: []models.TimeSlot{{Start: "14:00", End: "16:00"}},
	}
	if err := svc.OverrideAvailabilityEntry(ctx, "staff-1", entry, "admin-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := repo.members["staff-1"].Availability[0]
	if len(got.Slots) != 1 || got.Slots[0].Start != "14:00" {
		t.Errorf("override did not replace slots: %+v", got.Slots)
	}
	// The date is detached from its recurrence series.
	if got.Repeat != models.RepeatNone || got.RepeatUntil != "" {
		t.Errorf("override kept recurrence metadata: %+v", got)
	}
	if got.Weekday != "Monday" {
		t.Errorf("weekday = %s, want Monday", got.Weekday)
	}
}

func TestOverrideAvailabilityEntryRejectsSelfOverlap(t *testing.T) {
	svc, _, _, _ := newTestService(newFakeStaffRepo(testStaff()))

	entry := models.AvailabilityEntry{
		Date: "2025-01-13",
		Slots: []models.TimeSlot{
			{Start: "09:00", End: "11:00"},
			{Start: "10:00", End: "12:00"},
		},
	}
	err := svc.OverrideAvailabilityEntry(context.Background(), "staff-1", entry, "admin-1")
	var oe *OverlapError
	if !errors.As(err, &oe) {
		t.Errorf("error %T, want *OverlapError", err)
	}
}

func TestRemoveAvailabilityEntry(t *testing.T) {
	member := testStaff()
	member.Availability = []models.AvailabilityEntry{{
		Date:  "2025-01-06",
		Slots: []models.TimeSlot{{Start: "09:00", End: "12:00"}},
	}}
	repo := newFakeStaffRepo(member)
	svc, _, _, _ := newTestService(repo)

	if err := svc.RemoveAvailabilityEntry(context.Background(), "staff-1", "2025-01-06", "admin-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.members["staff-1"].Availability) != 0 {
		t.Error("entry should be removed")
	}

	err := svc.RemoveAvailabilityEntry(context.Background(), "ghost", "2025-01-06", "admin-1")
	var ne *NotFoundError
	if !errors.As(err, &ne) {
		t.Errorf("error %T, want *NotFoundError", err)
	}
}
