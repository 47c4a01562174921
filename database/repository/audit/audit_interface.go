// File: database/repository/audit/audit_interface.go
package auditRepo

import (
	"context"
	"time"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AuditLogRepository is the append-only audit trail. Record is best-effort:
// callers log failures and move on, nothing in the core reads the trail back.
type AuditLogRepository interface {
	// Record appends one audit event.
	Record(ctx context.Context, message, actorID, section string) error
	// ListBySection returns the most recent events for one admin section.
	ListBySection(ctx context.Context, section string, limit int64) ([]models.AuditEvent, error)
}

// MongoAuditRepo implements AuditLogRepository using MongoDB.
type MongoAuditRepo struct {
	coll *mongo.Collection
}

// NewMongoAuditRepo creates a new AuditLogRepository backed by MongoDB.
func NewMongoAuditRepo() AuditLogRepository {
	return &MongoAuditRepo{coll: database.DB().Collection("audit_log")}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
