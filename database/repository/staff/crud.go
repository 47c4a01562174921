// File: database/repository/staff/crud.go
package staffRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"clinicore/models"
)

// Create inserts a new staff document.
func (r *MongoStaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	now := time.Now()
	staff.CreatedAt = now
	staff.UpdatedAt = now
	if staff.Availability == nil {
		staff.Availability = []models.AvailabilityEntry{}
	}

	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

// GetByID retrieves a staff document by its ID.
func (r *MongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &staff, nil
}

// GetByEmail retrieves a staff document by email.
func (r *MongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&staff); err != nil {
		return nil, fmt.Errorf("failed to fetch staff with email %s: %w", email, err)
	}
	return &staff, nil
}

// Update patches a staff document with the given update document.
func (r *MongoStaffRepo) Update(ctx context.Context, id string, updateDoc bson.M) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc})
	if err != nil {
		return fmt.Errorf("failed to update staff with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff with id %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// Delete removes a staff document by its ID.
func (r *MongoStaffRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("staff with id %s: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}
