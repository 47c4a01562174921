package models

import "time"

// Appointment statuses. Pending moves to Accepted (or straight to a reschedule,
// which forces Accepted); Finished, "No Show" and Cancelled are terminal.
const (
	StatusPending   = "Pending"
	StatusAccepted  = "Accepted"
	StatusFinished  = "Finished"
	StatusNoShow    = "No Show"
	StatusCancelled = "Cancelled"
)

// Appointment references staff and patient by ID only. Slot stores the booked
// range as the literal "HH:MM - HH:MM" string generated by the slot expander,
// so equality against generated slot values needs no parsing on the read path.
type Appointment struct {
	ID           string    `bson:"id" json:"id"`
	StaffID      string    `bson:"staffId" json:"staffId"`
	PatientID    string    `bson:"patientId" json:"patientId"`
	PatientName  string    `bson:"patientName" json:"patientName"`
	PatientEmail string    `bson:"patientEmail" json:"patientEmail"`
	Date         string    `bson:"date" json:"date"` // "2006-01-02"
	Slot         string    `bson:"slot" json:"slot"` // "HH:MM - HH:MM"
	Status       string    `bson:"status" json:"status"`
	Reason       string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentFilter narrows appointment listings. Zero-valued fields are ignored.
type AppointmentFilter struct {
	StaffID   string
	PatientID string
	Status    string
	Date      string
}

// BookAppointmentRequest is the patient-facing booking payload.
type BookAppointmentRequest struct {
	StaffID      string `json:"staffId" binding:"required"`
	PatientID    string `json:"patientId" binding:"required"`
	PatientName  string `json:"patientName" binding:"required"`
	PatientEmail string `json:"patientEmail" binding:"required,email"`
	Date         string `json:"date" binding:"required"`
	Slot         string `json:"slot" binding:"required"`
	Reason       string `json:"reason"`
}

// RescheduleRequest rewrites an appointment's date and slot in one update.
type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Slot string `json:"slot" binding:"required"`
}
