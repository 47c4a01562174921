package schedule

import (
	"context"
	"fmt"

	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeStaffRepo is an in-memory StaffRepository for service tests.
type fakeStaffRepo struct {
	members map[string]*models.Staff
}

func newFakeStaffRepo(members ...*models.Staff) *fakeStaffRepo {
	repo := &fakeStaffRepo{members: make(map[string]*models.Staff)}
	for _, m := range members {
		repo.members[m.ID] = m
	}
	return repo
}

func (r *fakeStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	r.members[staff.ID] = staff
	return nil
}

func (r *fakeStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	member, ok := r.members[id]
	if !ok {
		return nil, fmt.Errorf("staff %s: %w", id, mongo.ErrNoDocuments)
	}
	return member, nil
}

func (r *fakeStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	for _, member := range r.members {
		if member.Email == email {
			return member, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeStaffRepo) Update(ctx context.Context, id string, updateDoc bson.M) error {
	if _, ok := r.members[id]; !ok {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *fakeStaffRepo) Delete(ctx context.Context, id string) error {
	delete(r.members, id)
	return nil
}

func (r *fakeStaffRepo) ListByRole(ctx context.Context, roles ...string) ([]models.StaffSummary, error) {
	var out []models.StaffSummary
	for _, member := range r.members {
		for _, role := range roles {
			if member.Role == role && member.Active {
				out = append(out, models.StaffSummary{ID: member.ID, Name: member.Name, Role: member.Role})
			}
		}
	}
	return out, nil
}

func (r *fakeStaffRepo) GetAvailabilityEntry(ctx context.Context, staffID, date string) (*models.AvailabilityEntry, error) {
	member, ok := r.members[staffID]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	for i := range member.Availability {
		if member.Availability[i].Date == date {
			entry := member.Availability[i]
			return &entry, nil
		}
	}
	return nil, nil
}

func (r *fakeStaffRepo) MergeAvailability(ctx context.Context, staffID string, entries []models.AvailabilityEntry) error {
	member, ok := r.members[staffID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for _, entry := range entries {
		merged := false
		for i := range member.Availability {
			if member.Availability[i].Date == entry.Date {
				member.Availability[i].Slots = append(member.Availability[i].Slots, entry.Slots...)
				merged = true
				break
			}
		}
		if !merged {
			entry.Slots = append([]models.TimeSlot(nil), entry.Slots...)
			member.Availability = append(member.Availability, entry)
		}
	}
	return nil
}

func (r *fakeStaffRepo) SetAvailabilityEntry(ctx context.Context, staffID string, entry models.AvailabilityEntry) error {
	member, ok := r.members[staffID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for i := range member.Availability {
		if member.Availability[i].Date == entry.Date {
			member.Availability[i] = entry
			return nil
		}
	}
	member.Availability = append(member.Availability, entry)
	return nil
}

func (r *fakeStaffRepo) DeleteAvailabilityEntry(ctx context.Context, staffID, date string) error {
	member, ok := r.members[staffID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	for i := range member.Availability {
		if member.Availability[i].Date == date {
			member.Availability = append(member.Availability[:i], member.Availability[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeApptRepo is an in-memory AppointmentRepository.
type fakeApptRepo struct {
	appts  []*models.Appointment
	nextID int
}

func (r *fakeApptRepo) Create(ctx context.Context, appt *models.Appointment) (string, error) {
	if appt.ID == "" {
		r.nextID++
		appt.ID = fmt.Sprintf("appt-%d", r.nextID)
	}
	r.appts = append(r.appts, appt)
	return appt.ID, nil
}

func (r *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for _, appt := range r.appts {
		if appt.ID == id {
			return appt, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeApptRepo) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, appt := range r.appts {
		if filter.StaffID != "" && appt.StaffID != filter.StaffID {
			continue
		}
		if filter.PatientID != "" && appt.PatientID != filter.PatientID {
			continue
		}
		if filter.Status != "" && appt.Status != filter.Status {
			continue
		}
		if filter.Date != "" && appt.Date != filter.Date {
			continue
		}
		out = append(out, *appt)
	}
	return out, nil
}

func (r *fakeApptRepo) Update(ctx context.Context, id string, patch bson.M) error {
	for _, appt := range r.appts {
		if appt.ID != id {
			continue
		}
		if status, ok := patch["status"].(string); ok {
			appt.Status = status
		}
		if date, ok := patch["date"].(string); ok {
			appt.Date = date
		}
		if slot, ok := patch["slot"].(string); ok {
			appt.Slot = slot
		}
		return nil
	}
	return mongo.ErrNoDocuments
}

func (r *fakeApptRepo) Delete(ctx context.Context, id string) error {
	for i, appt := range r.appts {
		if appt.ID == id {
			r.appts = append(r.appts[:i], r.appts[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

// memSessionStore keeps sessions in a map, copying on both sides the way the
// Redis store's marshal round-trip does.
type memSessionStore struct {
	sessions map[string]models.AvailabilityEditSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]models.AvailabilityEditSession)}
}

func (s *memSessionStore) Save(ctx context.Context, session *models.AvailabilityEditSession) error {
	copied := *session
	copied.Draft = append([]models.TimeSlot(nil), session.Draft...)
	s.sessions[session.ID] = copied
	return nil
}

func (s *memSessionStore) Get(ctx context.Context, id string) (*models.AvailabilityEditSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := session
	copied.Draft = append([]models.TimeSlot(nil), session.Draft...)
	return &copied, nil
}

func (s *memSessionStore) Delete(ctx context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

// memAuditRepo collects audit events for assertions.
type memAuditRepo struct {
	events []models.AuditEvent
}

func (r *memAuditRepo) Record(ctx context.Context, message, actorID, section string) error {
	r.events = append(r.events, models.AuditEvent{Message: message, ActorID: actorID, Section: section})
	return nil
}

func (r *memAuditRepo) ListBySection(ctx context.Context, section string, limit int64) ([]models.AuditEvent, error) {
	var out []models.AuditEvent
	for _, e := range r.events {
		if section == "" || e.Section == section {
			out = append(out, e)
		}
	}
	return out, nil
}

// newTestService wires the service against in-memory collaborators.
func newTestService(staff *fakeStaffRepo) (*DefaultScheduleService, *fakeApptRepo, *memSessionStore, *memAuditRepo) {
	appts := &fakeApptRepo{}
	sessions := newMemSessionStore()
	audit := &memAuditRepo{}
	svc := &DefaultScheduleService{
		StaffRepo: staff,
		ApptRepo:  appts,
		AuditRepo: audit,
		Sessions:  sessions,
	}
	return svc, appts, sessions, audit
}

func testStaff() *models.Staff {
	return &models.Staff{
		ID:     "staff-1",
		Name:   "Dr. Achieng",
		Email:  "achieng@clinic.test",
		Role:   models.RoleDoctor,
		Active: true,
	}
}
