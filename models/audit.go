package models

import "time"

// AuditEvent is one append-only trail entry. Writes are best-effort; the
// sections mirror the admin screens ("availability", "appointments", "patients").
type AuditEvent struct {
	ID        string    `bson:"id" json:"id"`
	Message   string    `bson:"message" json:"message"`
	ActorID   string    `bson:"actorId" json:"actorId"`
	Section   string    `bson:"section" json:"section"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
