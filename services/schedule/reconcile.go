package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"clinicore/models"
	"clinicore/services/notification"
	"clinicore/services/tasks"
	"clinicore/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// allowedTransitions is the appointment state machine. Finished, "No Show" and
// Cancelled are terminal; nothing transitions automatically.
var allowedTransitions = map[string][]string{
	models.StatusPending:  {models.StatusAccepted, models.StatusCancelled},
	models.StatusAccepted: {models.StatusFinished, models.StatusNoShow, models.StatusCancelled},
}

func canTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type rangeKey struct {
	start, end int
}

// AvailableSlotsFor expands the staff member's availability entry for the date
// into fixed-size slots and marks each one bookable unless an appointment
// already holds its exact range. No entry for the date yields an empty result.
func (s *DefaultScheduleService) AvailableSlotsFor(ctx context.Context, staffID, date string) ([]models.AvailableSlot, error) {
	if _, err := time.Parse(utils.DateLayout, date); err != nil {
		return nil, NewValidationError("invalid date %q", date)
	}

	entry, err := s.StaffRepo.GetAvailabilityEntry(ctx, staffID, date)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Kind: "staff", ID: staffID}
		}
		return nil, &StoreError{Op: "fetch availability", Err: err}
	}
	if entry == nil {
		return []models.AvailableSlot{}, nil
	}

	booked, err := s.bookedRanges(ctx, staffID, date, "")
	if err != nil {
		return nil, err
	}

	size := s.slotSize()
	var out []models.AvailableSlot
	for _, window := range entry.Slots {
		seq, err := WindowSlots(window, size)
		if err != nil {
			return nil, err
		}
		for slot := range seq {
			out = append(out, models.AvailableSlot{
				Value:    slot.Value,
				Display:  slot.Display,
				Start:    slot.Start,
				End:      slot.End,
				Date:     date,
				Bookable: !booked[rangeKey{slot.Start, slot.End}],
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out, nil
}

// bookedRanges collects the slot ranges held by the staff member's
// non-cancelled appointments on a date, compared numerically. excludeApptID
// lets a reschedule treat the appointment's own slot as free.
func (s *DefaultScheduleService) bookedRanges(ctx context.Context, staffID, date, excludeApptID string) (map[rangeKey]bool, error) {
	appts, err := s.ApptRepo.List(ctx, models.AppointmentFilter{StaffID: staffID, Date: date})
	if err != nil {
		return nil, &StoreError{Op: "list appointments", Err: err}
	}

	booked := make(map[rangeKey]bool, len(appts))
	for _, appt := range appts {
		if appt.ID == excludeApptID || appt.Status == models.StatusCancelled {
			continue
		}
		start, end, err := ParseSlotValue(appt.Slot)
		if err != nil {
			utils.GetLogger().Warn("skipping appointment with malformed slot",
				zap.String("appointmentID", appt.ID), zap.String("slot", appt.Slot))
			continue
		}
		booked[rangeKey{start, end}] = true
	}
	return booked, nil
}

// slotOffered reports whether slotValue is one of the slots generated from the
// staff member's availability entry for the date.
func (s *DefaultScheduleService) slotOffered(ctx context.Context, staffID, date, slotValue string) (bool, error) {
	want, wantEnd, err := ParseSlotValue(slotValue)
	if err != nil {
		return false, err
	}

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

	size := s.slotSize()
	for _, window := range entry.Slots {
		seq, err := WindowSlots(window, size)
		if err != nil {
			return false, err
		}
		for slot := range seq {
			if slot.Start == want && slot.End == wantEnd {
				return true, nil
			}
		}
	}
	return false, nil
}

// BookSlot creates a Pending appointment on a bookable slot. The check and the
// insert are separate round-trips; two operators racing for the same slot is
// accepted behavior and resolved by staff when reviewing the pending list.
func (s *DefaultScheduleService) BookSlot(ctx context.Context, req models.BookAppointmentRequest) (*models.Appointment, error) {
	if _, err := time.Parse(utils.DateLayout, req.Date); err != nil {
		return nil, NewValidationError("invalid date %q", req.Date)
	}

	offered, err := s.slotOffered(ctx, req.StaffID, req.Date, req.Slot)
	if err != nil {
		return nil, err
	}
	if !offered {
		return nil, NewValidationError("slot %q is not offered on %s", req.Slot, req.Date)
	}

	booked, err := s.bookedRanges(ctx, req.StaffID, req.Date, "")
	if err != nil {
		return nil, err
	}
	start, end, _ := ParseSlotValue(req.Slot)
	if booked[rangeKey{start, end}] {
		return nil, NewValidationError("slot %q on %s is already booked", req.Slot, req.Date)
	}

	appt := &models.Appointment{
		StaffID:      req.StaffID,
		PatientID:    req.PatientID,
		PatientName:  req.PatientName,
		PatientEmail: req.PatientEmail,
		Date:         req.Date,
		Slot:         req.Slot,
		Status:       models.StatusPending,
		Reason:       req.Reason,
	}
	if _, err := s.ApptRepo.Create(ctx, appt); err != nil {
		return nil, &StoreError{Op: "create appointment", Err: err}
	}

	s.audit(ctx, fmt.Sprintf("appointment %s booked with staff %s on %s %s",
		appt.ID, appt.StaffID, appt.Date, appt.Slot), req.PatientID, "appointments")
	return appt, nil
}

// AcceptAppointment moves a Pending appointment to Accepted, notifies the
// patient and queues a reminder. The status write commits before either side
// effect runs; neither can undo it.
func (s *DefaultScheduleService) AcceptAppointment(ctx context.Context, id, actorID string) (*models.Appointment, error) {
	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTransition(appt.Status, models.StatusAccepted) {
		return nil, NewValidationError("cannot accept appointment in status %q", appt.Status)
	}

	if err := s.ApptRepo.Update(ctx, id, bson.M{"status": models.StatusAccepted}); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Kind: "appointment", ID: id}
		}
		return nil, &StoreError{Op: "update appointment", Err: err}
	}
	appt.Status = models.StatusAccepted

	s.notifyPatient(appt, notification.TemplateAppointmentAccepted)
	s.scheduleReminder(ctx, appt)
	s.audit(ctx, fmt.Sprintf("appointment %s accepted", id), actorID, "appointments")
	return appt, nil
}

// RescheduleAppointment rewrites date and slot in one document update and
// forces the status to Accepted. The target slot must be offered and free;
// the appointment's current slot counts as free when moving within one date.
func (s *DefaultScheduleService) RescheduleAppointment(ctx context.Context, id string, req models.RescheduleRequest, actorID string) (*models.Appointment, error) {
	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	switch appt.Status {
	case models.StatusFinished, models.StatusNoShow, models.StatusCancelled:
		return nil, NewValidationError("cannot reschedule appointment in status %q", appt.Status)
	}
	if _, err := time.Parse(utils.DateLayout, req.Date); err != nil {
		return nil, NewValidationError("invalid date %q", req.Date)
	}

	offered, err := s.slotOffered(ctx, appt.StaffID, req.Date, req.Slot)
	if err != nil {
		return nil, err
	}
	if !offered {
		return nil, NewValidationError("slot %q is not offered on %s", req.Slot, req.Date)
	}
	booked, err := s.bookedRanges(ctx, appt.StaffID, req.Date, appt.ID)
	if err != nil {
		return nil, err
	}
	start, end, _ := ParseSlotValue(req.Slot)
	if booked[rangeKey{start, end}] {
		return nil, NewValidationError("slot %q on %s is already booked", req.Slot, req.Date)
	}

	patch := bson.M{"date": req.Date, "slot": req.Slot, "status": models.StatusAccepted}
	if err := s.ApptRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Kind: "appointment", ID: id}
		}
		return nil, &StoreError{Op: "update appointment", Err: err}
	}
	appt.Date = req.Date
	appt.Slot = req.Slot
	appt.Status = models.StatusAccepted

	s.notifyPatient(appt, notification.TemplateAppointmentRescheduled)
	s.scheduleReminder(ctx, appt)
	s.audit(ctx, fmt.Sprintf("appointment %s rescheduled to %s %s", id, req.Date, req.Slot),
		actorID, "appointments")
	return appt, nil
}

// UpdateAppointmentStatus applies a staff-initiated status transition.
// Accepting routes through AcceptAppointment so the notification and reminder
// side effects stay in one place.
func (s *DefaultScheduleService) UpdateAppointmentStatus(ctx context.Context, id, status, actorID string) (*models.Appointment, error) {
	if status == models.StatusAccepted {
		return s.AcceptAppointment(ctx, id, actorID)
	}
	switch status {
	case models.StatusFinished, models.StatusNoShow, models.StatusCancelled:
	default:
		return nil, NewValidationError("unknown appointment status %q", status)
	}

	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTransition(appt.Status, status) {
		return nil, NewValidationError("cannot move appointment from %q to %q", appt.Status, status)
	}

	if err := s.ApptRepo.Update(ctx, id, bson.M{"status": status}); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Kind: "appointment", ID: id}
		}
		return nil, &StoreError{Op: "update appointment", Err: err}
	}
	appt.Status = status

	s.audit(ctx, fmt.Sprintf("appointment %s marked %s", id, status), actorID, "appointments")
	return appt, nil
}

func (s *DefaultScheduleService) getAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Kind: "appointment", ID: id}
		}
		return nil, &StoreError{Op: "fetch appointment", Err: err}
	}
	return appt, nil
}

// notifyPatient sends the templated email on a detached context. Failures are
// logged only; the status change has already committed.
func (s *DefaultScheduleService) notifyPatient(appt *models.Appointment, templateID string) {
	if s.Notification == nil || appt.PatientEmail == "" {
		return
	}

	staffName := appt.StaffID
	if staff, err := s.StaffRepo.GetByID(context.Background(), appt.StaffID); err == nil {
		staffName = staff.Name
	}
	params := map[string]string{
		"patientName": appt.PatientName,
		"staffName":   staffName,
		"dateLabel":   appt.Date,
		"slotDisplay": appt.Slot,
	}
	if label, err := utils.FormatDateLabel(appt.Date); err == nil {
		params["dateLabel"] = label
	}
	if start, end, err := ParseSlotValue(appt.Slot); err == nil {
		params["slotDisplay"] = newSlot(start, end).Display
	}

	recipient := appt.PatientEmail
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.Notification.Send(ctx, templateID, recipient, params); err != nil {
			utils.GetLogger().Error("failed to send appointment notification",
				zap.String("template", templateID),
				zap.String("appointmentID", appt.ID),
				zap.Error(err))
		}
	}()
}

// scheduleReminder queues a reminder email for 24 hours before the slot start.
// Nothing is queued when the reminder would already be due.
func (s *DefaultScheduleService) scheduleReminder(ctx context.Context, appt *models.Appointment) {
	if s.AsynqClient == nil {
		return
	}
	start, _, err := ParseSlotValue(appt.Slot)
	if err != nil {
		return
	}
	day, err := time.ParseInLocation(utils.DateLayout, appt.Date, time.Local)
	if err != nil {
		return
	}
	fireAt := day.Add(time.Duration(start)*time.Minute - 24*time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}

	staffName := appt.StaffID
	if staff, err := s.StaffRepo.GetByID(ctx, appt.StaffID); err == nil {
		staffName = staff.Name
	}
	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		PatientName:   appt.PatientName,
		PatientEmail:  appt.PatientEmail,
		StaffName:     staffName,
		Date:          appt.Date,
		Slot:          appt.Slot,
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		utils.GetLogger().Error("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.AsynqClient.Enqueue(task, opts...); err != nil {
		utils.GetLogger().Error("failed to enqueue reminder",
			zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}
