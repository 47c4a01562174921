// File: database/repository/staff/queries.go
package staffRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicore/models"
)

// ListByRole returns summaries of active staff holding any of the given roles.
// With no roles, all active staff are returned.
func (r *MongoStaffRepo) ListByRole(ctx context.Context, roles ...string) ([]models.StaffSummary, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"active": true}
	if len(roles) > 0 {
		filter["role"] = bson.M{"$in": roles}
	}

	projection := bson.M{"id": 1, "name": 1, "role": 1, "specialty": 1}
	cursor, err := r.coll.Find(ctx, filter,
		options.Find().SetProjection(projection).SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.StaffSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode staff summaries: %w", err)
	}
	return summaries, nil
}

// GetAvailabilityEntry returns the availability entry for one date, or nil when
// the staff member has no entry for it.
func (r *MongoStaffRepo) GetAvailabilityEntry(ctx context.Context, staffID, date string) (*models.AvailabilityEntry, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": staffID}
	projection := bson.M{"availability": bson.M{"$elemMatch": bson.M{"date": date}}}

	var doc struct {
		Availability []models.AvailabilityEntry `bson:"availability"`
	}
	err := r.coll.FindOne(ctx, filter, options.FindOne().SetProjection(projection)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("staff with id %s not found: %w", staffID, err)
		}
		return nil, fmt.Errorf("failed to fetch availability for staff %s: %w", staffID, err)
	}
	if len(doc.Availability) == 0 {
		return nil, nil
	}
	return &doc.Availability[0], nil
}
