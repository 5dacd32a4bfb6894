package settingsRepo

import (
	"context"
	"fmt"
	"time"

	"servify/database"
	"servify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSettingsRepo implements SettingsRepository using MongoDB.
type MongoSettingsRepo struct {
	configColl  *mongo.Collection
	holidayColl *mongo.Collection
	reserveColl *mongo.Collection
}

// NewMongoSettingsRepo constructs a new instance of MongoSettingsRepo.
func NewMongoSettingsRepo() SettingsRepository {
	db := database.DB()
	return &MongoSettingsRepo{
		configColl:  db.Collection("scheduling_configs"),
		holidayColl: db.Collection("holidays"),
		reserveColl: db.Collection("reserve_slot_configs"),
	}
}

// GetSchedulingConfig returns the tenant's scheduling config. A tenant with
// no stored config gets the platform defaults (manual mode).
func (repo *MongoSettingsRepo) GetSchedulingConfig(businessID string) (*models.SchedulingConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cfg models.SchedulingConfig
	filter := bson.M{"business_id": businessID}
	if err := repo.configColl.FindOne(ctx, filter).Decode(&cfg); err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.SchedulingConfig{
				BusinessID:             businessID,
				ProviderAssignmentMode: models.AssignmentModeManual,
				SchedulingType:         models.SchedulingAcceptedAutomatically,
			}, nil
		}
		return nil, fmt.Errorf("error fetching scheduling config: %w", err)
	}
	return &cfg, nil
}

func (repo *MongoSettingsRepo) ListHolidays(businessID string) ([]models.Holiday, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.holidayColl.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("error fetching holidays: %w", err)
	}
	defer cursor.Close(ctx)

	var holidays []models.Holiday
	for cursor.Next(ctx) {
		var h models.Holiday
		if err := cursor.Decode(&h); err != nil {
			return nil, fmt.Errorf("error decoding holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return holidays, nil
}

func (repo *MongoSettingsRepo) GetReserveSlotConfig(businessID string) (*models.ReserveSlotConfig, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var cfg models.ReserveSlotConfig
	filter := bson.M{"business_id": businessID}
	if err := repo.reserveColl.FindOne(ctx, filter).Decode(&cfg); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching reserve slot config: %w", err)
	}
	return &cfg, nil
}
