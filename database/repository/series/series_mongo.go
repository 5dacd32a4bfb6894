package seriesRepo

import (
	"context"
	"fmt"
	"time"

	"servify/database"
	"servify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSeriesRepo implements SeriesRepository using MongoDB.
type MongoSeriesRepo struct {
	coll *mongo.Collection
}

// NewMongoSeriesRepo constructs a new instance of MongoSeriesRepo.
func NewMongoSeriesRepo() SeriesRepository {
	return &MongoSeriesRepo{coll: database.DB().Collection("recurring_series")}
}

func (repo *MongoSeriesRepo) Create(series *models.RecurringSeries) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, series); err != nil {
		return fmt.Errorf("error creating recurring series: %w", err)
	}
	return nil
}

func (repo *MongoSeriesRepo) GetByID(businessID, seriesID string) (*models.RecurringSeries, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var series models.RecurringSeries
	filter := bson.M{"id": seriesID, "business_id": businessID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&series); err != nil {
		return nil, fmt.Errorf("error fetching series with id %s: %w", seriesID, err)
	}
	return &series, nil
}

func (repo *MongoSeriesRepo) ListActive(businessID string) ([]models.RecurringSeries, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"business_id": businessID, "status": models.SeriesStatusActive}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching active series: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.RecurringSeries
	for cursor.Next(ctx) {
		var s models.RecurringSeries
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("error decoding series: %w", err)
		}
		out = append(out, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return out, nil
}

func (repo *MongoSeriesRepo) UpdateStatus(businessID, seriesID, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": seriesID, "business_id": businessID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating series %s: %w", seriesID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("series %s not found", seriesID)
	}
	return nil
}
