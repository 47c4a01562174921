// File: database/repository/audit/crud.go
package auditRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicore/models"
)

// Record appends one audit event to the trail.
func (r *MongoAuditRepo) Record(ctx context.Context, message, actorID, section string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	event := models.AuditEvent{
		ID:        uuid.New().String(),
		Message:   message,
		ActorID:   actorID,
		Section:   section,
		CreatedAt: time.Now(),
	}
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("failed to record audit event: %w", err)
	}
	return nil
}

// ListBySection returns the most recent events for one section.
func (r *MongoAuditRepo) ListBySection(ctx context.Context, section string, limit int64) ([]models.AuditEvent, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 100
	}
	filter := bson.M{}
	if section != "" {
		filter["section"] = section
	}
	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.AuditEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode audit events: %w", err)
	}
	return events, nil
}
