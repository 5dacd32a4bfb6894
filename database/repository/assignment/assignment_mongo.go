package assignmentRepo

import (
	"context"
	"fmt"
	"time"

	"servify/database"
	"servify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAssignmentRepo implements AssignmentRepository using MongoDB.
type MongoAssignmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAssignmentRepo constructs a new instance of MongoAssignmentRepo.
func NewMongoAssignmentRepo() AssignmentRepository {
	return &MongoAssignmentRepo{coll: database.DB().Collection("assignments")}
}

func (repo *MongoAssignmentRepo) Create(assignment *models.Assignment) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, assignment); err != nil {
		return fmt.Errorf("error creating assignment: %w", err)
	}
	return nil
}

func (repo *MongoAssignmentRepo) GetActiveByBooking(businessID, bookingID string) (*models.Assignment, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var assignment models.Assignment
	filter := bson.M{
		"business_id": businessID,
		"booking_id":  bookingID,
		"status":      models.AssignmentStatusActive,
	}
	if err := repo.coll.FindOne(ctx, filter).Decode(&assignment); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no active assignment for booking %s: %w", bookingID, ErrNotFound)
		}
		return nil, fmt.Errorf("error fetching active assignment for booking %s: %w", bookingID, err)
	}
	return &assignment, nil
}

// EnsureAssignmentIndexes creates a partial unique index so a booking can
// never hold two active assignments, even under concurrent writers.
func EnsureAssignmentIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := database.DB().Collection("assignments")
	model := mongo.IndexModel{
		Keys: bson.D{{Key: "booking_id", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": models.AssignmentStatusActive}),
	}
	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("error creating assignment index: %w", err)
	}
	return nil
}
