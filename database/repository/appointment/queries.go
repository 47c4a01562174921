// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"clinicore/models"
)

// List returns appointments matching the filter, most recent date first.
// Zero-valued filter fields are ignored.
func (r *MongoAppointmentRepo) List(ctx context.Context, filter models.AppointmentFilter) ([]models.Appointment, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.StaffID != "" {
		query["staffId"] = filter.StaffID
	}
	if filter.PatientID != "" {
		query["patientId"] = filter.PatientID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	}

	cursor, err := r.coll.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "slot", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}
