package earningsRepo

import (
	"context"
	"fmt"
	"time"

	"servify/database"
	"servify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoEarningsRepo implements EarningsRepository using MongoDB.
type MongoEarningsRepo struct {
	coll *mongo.Collection
}

// NewMongoEarningsRepo constructs a new instance of MongoEarningsRepo.
func NewMongoEarningsRepo() EarningsRepository {
	return &MongoEarningsRepo{coll: database.DB().Collection("earnings")}
}

func (repo *MongoEarningsRepo) Create(earnings *models.Earnings) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, earnings); err != nil {
		return fmt.Errorf("error creating earnings record: %w", err)
	}
	return nil
}

func (repo *MongoEarningsRepo) GetByBooking(businessID, bookingID string) (*models.Earnings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var earnings models.Earnings
	filter := bson.M{"business_id": businessID, "booking_id": bookingID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&earnings); err != nil {
		return nil, fmt.Errorf("error fetching earnings for booking %s: %w", bookingID, err)
	}
	return &earnings, nil
}
