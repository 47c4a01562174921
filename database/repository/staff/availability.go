// File: database/repository/staff/availability.go
package staffRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinicore/models"
)

// MergeAvailability merges each entry into the staff document's availability
// array. An entry whose date already exists has its slots appended to the
// existing entry ($push on the matched array element); a new date pushes the
// entry whole. Appending does not deduplicate identical slots. Both paths are
// single server-side updates, so two operators merging concurrently cannot
// overwrite each other's slots.
func (r *MongoStaffRepo) MergeAvailability(ctx context.Context, staffID string, entries []models.AvailabilityEntry) error {
	for _, entry := range entries {
		if err := r.mergeEntry(ctx, staffID, entry); err != nil {
			return err
		}
	}
	return nil
}

func (r *MongoStaffRepo) mergeEntry(ctx context.Context, staffID string, entry models.AvailabilityEntry) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	// Append into an existing entry for this date.
	appendFilter := bson.M{"id": staffID, "availability.date": entry.Date}
	appendUpdate := bson.M{
		"$push": bson.M{"availability.$.slots": bson.M{"$each": entry.Slots}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, appendFilter, appendUpdate)
	if err != nil {
		return fmt.Errorf("failed to append availability for staff %s on %s: %w", staffID, entry.Date, err)
	}
	if result.MatchedCount > 0 {
		return nil
	}

	// No entry for this date yet: push it whole. The date guard keeps a racing
	// append from creating a duplicate entry between the two updates.
	pushFilter := bson.M{"id": staffID, "availability.date": bson.M{"$ne": entry.Date}}
	pushUpdate := bson.M{
		"$push": bson.M{"availability": entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err = r.coll.UpdateOne(ctx, pushFilter, pushUpdate)
	if err != nil {
		return fmt.Errorf("failed to push availability for staff %s on %s: %w", staffID, entry.Date, err)
	}
	if result.MatchedCount == 0 {
		// Either the staff member is gone or a concurrent merge created the
		// entry first; retry the append once before reporting not-found.
		result, err = r.coll.UpdateOne(ctx, appendFilter, appendUpdate)
		if err != nil {
			return fmt.Errorf("failed to append availability for staff %s on %s: %w", staffID, entry.Date, err)
		}
		if result.MatchedCount == 0 {
			return mongo.ErrNoDocuments
		}
	}
	return nil
}

// SetAvailabilityEntry replaces the entry for the entry's date, or inserts it
// when no entry exists. Used to override a recurrence-generated instance.
func (r *MongoStaffRepo) SetAvailabilityEntry(ctx context.Context, staffID string, entry models.AvailabilityEntry) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": staffID, "availability.date": entry.Date}
	update := bson.M{
		"$set": bson.M{"availability.$": entry, "updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set availability for staff %s on %s: %w", staffID, entry.Date, err)
	}
	if result.MatchedCount > 0 {
		return nil
	}
	return r.mergeEntry(ctx, staffID, entry)
}

// DeleteAvailabilityEntry removes the entry for one date.
func (r *MongoStaffRepo) DeleteAvailabilityEntry(ctx context.Context, staffID, date string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": staffID}
	update := bson.M{
		"$pull": bson.M{"availability": bson.M{"date": date}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete availability for staff %s on %s: %w", staffID, date, err)
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
