package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"servify/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureBookingIndexes creates the indexes the scheduling paths query on.
func EnsureBookingIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.DB().Collection("bookings")
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "business_id", Value: 1}, {Key: "scheduled_date", Value: 1}}},
		{Keys: bson.D{{Key: "business_id", Value: 1}, {Key: "recurring_series_id", Value: 1}, {Key: "scheduled_date", Value: 1}}},
	}
	if _, err := coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("error creating booking indexes: %w", err)
	}
	return nil
}
