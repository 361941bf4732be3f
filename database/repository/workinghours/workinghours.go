// File: database/repository/workinghours/workinghours.go
package workingHoursRepo

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

// WorkingHoursRepository defines data access for a professional's recurring
// weekly schedule.
type WorkingHoursRepository interface {
	// GetByProfessionalID returns the professional's working hours, or
	// (nil, nil) when the professional has never configured any.
	GetByProfessionalID(ctx context.Context, professionalID string) (*models.WorkingHours, error)
	// Upsert replaces the professional's working-hours record.
	Upsert(ctx context.Context, hours *models.WorkingHours) error
}

type mongoWorkingHoursRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkingHoursRepo constructs a MongoDB WorkingHoursRepository.
func NewMongoWorkingHoursRepo() WorkingHoursRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoWorkingHoursRepo{
		coll: db.Collection("working_hours"),
	}
}

func (r *mongoWorkingHoursRepo) GetByProfessionalID(ctx context.Context, professionalID string) (*models.WorkingHours, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var hours models.WorkingHours
	err := r.coll.FindOne(ctx, bson.M{"professional_id": professionalID}).Decode(&hours)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// No configuration is a valid state, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch working hours: %w", err)
	}
	return &hours, nil
}

func (r *mongoWorkingHoursRepo) Upsert(ctx context.Context, hours *models.WorkingHours) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	hours.UpdatedAt = time.Now().UTC()
	filter := bson.M{"professional_id": hours.ProfessionalID}
	update := bson.M{"$set": hours}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert working hours: %w", err)
	}
	return nil
}
