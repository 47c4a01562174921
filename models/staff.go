package models

import "time"

// Staff roles recognised by the scheduling screens.
const (
	RoleDoctor       = "doctor"
	RoleNurse        = "nurse"
	RoleReceptionist = "receptionist"
	RoleAdmin        = "admin"
)

// Staff is a clinic staff member. The availability array is owned exclusively
// by this document; there is no separate availability collection.
type Staff struct {
	ID           string              `bson:"id" json:"id"`
	Name         string              `bson:"name" json:"name"`
	Email        string              `bson:"email" json:"email"`
	Phone        string              `bson:"phone,omitempty" json:"phone,omitempty"`
	Role         string              `bson:"role" json:"role"`
	Specialty    string              `bson:"specialty,omitempty" json:"specialty,omitempty"`
	PasswordHash string              `bson:"passwordHash" json:"-"`
	Availability []AvailabilityEntry `bson:"availability" json:"availability"`
	Active       bool                `bson:"active" json:"active"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// StaffSummary is the projection returned by role listings.
type StaffSummary struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Role      string `bson:"role" json:"role"`
	Specialty string `bson:"specialty,omitempty" json:"specialty,omitempty"`
}

// CreateStaffRequest is the payload for registering a staff account.
type CreateStaffRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"required"`
	Specialty string `json:"specialty"`
	Password  string `json:"password" binding:"required,min=8"`
}
