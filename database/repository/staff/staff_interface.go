// File: database/repository/staff/staff_interface.go
package staffRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// StaffRepository defines methods for staff data access, including the
// embedded availability array owned by each staff document.
type StaffRepository interface {
	// Create inserts a new staff record.
	Create(ctx context.Context, staff *models.Staff) error
	// GetByID retrieves a staff member by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	// GetByEmail retrieves a staff member by email address.
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	// Update patches a staff document with the given update document.
	Update(ctx context.Context, id string, updateDoc bson.M) error
	// Delete removes a staff record by its ID.
	Delete(ctx context.Context, id string) error
	// ListByRole returns summaries of active staff holding any of the given roles.
	ListByRole(ctx context.Context, roles ...string) ([]models.StaffSummary, error)

	// GetAvailabilityEntry returns the entry for one date, or nil when none exists.
	GetAvailabilityEntry(ctx context.Context, staffID, date string) (*models.AvailabilityEntry, error)
	// MergeAvailability appends each entry's slots into the existing entry for
	// that date, or pushes the entry whole when the date is new. The append is a
	// server-side positional update, so concurrent merges cannot drop slots.
	MergeAvailability(ctx context.Context, staffID string, entries []models.AvailabilityEntry) error
	// SetAvailabilityEntry replaces the whole entry for the entry's date,
	// overriding anything recurrence expansion generated for it.
	SetAvailabilityEntry(ctx context.Context, staffID string, entry models.AvailabilityEntry) error
	// DeleteAvailabilityEntry removes the entry for one date.
	DeleteAvailabilityEntry(ctx context.Context, staffID, date string) error
}

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new StaffRepository backed by MongoDB.
func NewMongoStaffRepo() StaffRepository {
	repo := &MongoStaffRepo{coll: database.DB().Collection("staff")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create staff indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
