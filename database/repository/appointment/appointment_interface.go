// File: database/repository/appointment/appointment_interface.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"clinicore/database"
	"clinicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository defines methods for appointment data access.
// Appointments are independent aggregates referencing staff and patient by ID.
type AppointmentRepository interface {
	// Create inserts a new appointment and returns its ID.
	Create(ctx context.Context, appt *models.Appointment) (string, error)
	// GetByID retrieves an appointment by its ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// List returns appointments matching the filter, newest first.
	List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error)
	// Update patches an appointment document with the given fields.
	Update(ctx context.Context, id string, patch bson.M) error
	// Delete removes an appointment by its ID.
	Delete(ctx context.Context, id string) error
}

// MongoAppointmentRepo implements AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo creates a new AppointmentRepository backed by MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	repo := &MongoAppointmentRepo{coll: database.DB().Collection("appointments")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create appointment indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
