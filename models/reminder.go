package models

// ReminderPayload is the queued appointment-reminder job consumed by the
// async worker.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	PatientName   string `json:"patientName"`
	PatientEmail  string `json:"patientEmail"`
	StaffName     string `json:"staffName"`
	Date          string `json:"date"` // "2006-01-02"
	Slot          string `json:"slot"` // "HH:MM - HH:MM"
}
