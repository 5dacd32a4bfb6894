package invitationRepo

import (
	"context"
	"fmt"
	"time"

	"servify/database"
	"servify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoInvitationRepo implements InvitationRepository using MongoDB.
type MongoInvitationRepo struct {
	coll *mongo.Collection
}

// NewMongoInvitationRepo constructs a new instance of MongoInvitationRepo.
func NewMongoInvitationRepo() InvitationRepository {
	return &MongoInvitationRepo{coll: database.DB().Collection("invitations")}
}

func (repo *MongoInvitationRepo) Create(invitation *models.Invitation) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, invitation); err != nil {
		return fmt.Errorf("error creating invitation: %w", err)
	}
	return nil
}

func (repo *MongoInvitationRepo) GetByID(businessID, invitationID string) (*models.Invitation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var invitation models.Invitation
	filter := bson.M{"id": invitationID, "business_id": businessID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&invitation); err != nil {
		return nil, fmt.Errorf("error fetching invitation with id %s: %w", invitationID, err)
	}
	return &invitation, nil
}

func (repo *MongoInvitationRepo) UpdateStatus(businessID, invitationID, status string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"id": invitationID, "business_id": businessID}
	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("error updating invitation %s: %w", invitationID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("invitation %s not found", invitationID)
	}
	return nil
}
