// File: database/repository/appointment/appointment.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"holistia/config"
	"holistia/database"
	"holistia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AppointmentRepository defines the read-only data access the availability
// engine needs for booking records.
type AppointmentRepository interface {
	// GetActiveInRange returns pending/confirmed appointments for the
	// professional within the inclusive date range.
	GetActiveInRange(ctx context.Context, professionalID, startDate, endDate string) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}

func (r *mongoAppointmentRepo) GetActiveInRange(ctx context.Context, professionalID, startDate, endDate string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"date":            bson.M{"$gte": startDate, "$lte": endDate},
		"status":          bson.M{"$in": models.ActiveAppointmentStatuses},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appointments, nil
}
