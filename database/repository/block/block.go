// File: database/repository/block/block.go
package blockRepo

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

// BlockRepository defines data access for availability blocks.
type BlockRepository interface {
	// GetOverlapping returns every block whose date range intersects the
	// inclusive [startDate, endDate] window. Open-ended blocks (no end
	// date) overlap whenever their start date is not past the window.
	GetOverlapping(ctx context.Context, professionalID, startDate, endDate string) ([]models.AvailabilityBlock, error)
	Create(ctx context.Context, block *models.AvailabilityBlock) error
	Delete(ctx context.Context, professionalID, blockID string) error
}

type mongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRepo constructs a MongoDB BlockRepository.
func NewMongoBlockRepo() BlockRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBlockRepo{
		coll: db.Collection("availability_blocks"),
	}
}

func (r *mongoBlockRepo) GetOverlapping(ctx context.Context, professionalID, startDate, endDate string) ([]models.AvailabilityBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"start_date":      bson.M{"$lte": endDate},
		"$or": bson.A{
			bson.M{"end_date": bson.M{"$exists": false}},
			bson.M{"end_date": ""},
			bson.M{"end_date": bson.M{"$gte": startDate}},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.AvailabilityBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding availability blocks: %w", err)
	}
	return blocks, nil
}

func (r *mongoBlockRepo) Create(ctx context.Context, block *models.AvailabilityBlock) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, block); err != nil {
		return fmt.Errorf("failed to create availability block: %w", err)
	}
	return nil
}

func (r *mongoBlockRepo) Delete(ctx context.Context, professionalID, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": blockID, "professional_id": professionalID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete availability block: %w", err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
