package providerRepo

import (
	"context"
	"fmt"
	"time"

	"servify/database"
	"servify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo constructs a new instance of MongoProviderRepo.
func NewMongoProviderRepo() ProviderRepository {
	return &MongoProviderRepo{coll: database.DB().Collection("providers")}
}

func (repo *MongoProviderRepo) GetByID(businessID, providerID string) (*models.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var provider models.Provider
	filter := bson.M{"id": providerID, "business_id": businessID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&provider); err != nil {
		return nil, fmt.Errorf("error fetching provider with id %s: %w", providerID, err)
	}
	return &provider, nil
}

func (repo *MongoProviderRepo) ListActive(businessID string) ([]models.Provider, error) {
	return repo.list(bson.M{"business_id": businessID, "status": models.ProviderStatusActive})
}

func (repo *MongoProviderRepo) ListAll(businessID string) ([]models.Provider, error) {
	return repo.list(bson.M{"business_id": businessID})
}

func (repo *MongoProviderRepo) list(filter bson.M) ([]models.Provider, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	for cursor.Next(ctx) {
		var p models.Provider
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("error decoding provider: %w", err)
		}
		providers = append(providers, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return providers, nil
}
