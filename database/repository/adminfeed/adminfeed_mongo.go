package adminfeedRepo

import (
	"context"
	"fmt"
	"time"

	"servify/database"
	"servify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoAdminFeedRepo implements AdminFeedRepository using MongoDB.
type MongoAdminFeedRepo struct {
	coll *mongo.Collection
}

// NewMongoAdminFeedRepo constructs a new instance of MongoAdminFeedRepo.
func NewMongoAdminFeedRepo() AdminFeedRepository {
	return &MongoAdminFeedRepo{coll: database.DB().Collection("admin_notifications")}
}

func (repo *MongoAdminFeedRepo) Create(notification *models.AdminNotification) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("error creating admin notification: %w", err)
	}
	return nil
}
