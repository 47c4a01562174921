package models

import "time"

// Patient is an independent aggregate; appointments reference it by ID only.
type Patient struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	DateOfBirth string    `bson:"dateOfBirth,omitempty" json:"dateOfBirth,omitempty"` // "2006-01-02"
	Gender      string    `bson:"gender,omitempty" json:"gender,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
