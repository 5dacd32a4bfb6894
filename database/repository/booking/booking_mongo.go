package bookingRepo

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

// Statuses that occupy capacity. Completed and cancelled never count.
var activeStatuses = []string{
	models.BookingStatusPending,
	models.BookingStatusConfirmed,
	models.BookingStatusInProgress,
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{coll: database.DB().Collection("bookings")}
}

func (repo *MongoBookingRepo) GetByID(businessID, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": bookingID, "business_id": businessID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		return nil, fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}
	return &booking, nil
}

func (repo *MongoBookingRepo) Create(booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) CreateMany(bookings []models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(bookings))
	for i := range bookings {
		docs = append(docs, bookings[i])
	}
	if _, err := repo.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error creating bookings: %w", err)
	}
	return nil
}

// ClaimForAssignment performs a conditional update: the provider is written
// only when provider_id is still unset. mongo.ErrNoDocuments means another
// request claimed the booking first.
func (repo *MongoBookingRepo) ClaimForAssignment(businessID, bookingID, providerID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":          bookingID,
		"business_id": businessID,
		"$or": []bson.M{
			{"provider_id": bson.M{"$exists": false}},
			{"provider_id": ""},
		},
	}
	update := bson.M{"$set": bson.M{
		"provider_id": providerID,
		"status":      models.BookingStatusConfirmed,
		"updated_at":  time.Now().UTC(),
	}}

	res := repo.coll.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	if err := res.Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return false, nil
		}
		return false, fmt.Errorf("error claiming booking %s: %w", bookingID, err)
	}
	return true, nil
}

func (repo *MongoBookingRepo) CountInDateRange(businessID, from, to string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"business_id":    businessID,
		"scheduled_date": bson.M{"$gte": from, "$lte": to},
		"status":         bson.M{"$in": activeStatuses},
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings in range: %w", err)
	}
	return int(count), nil
}

func (repo *MongoBookingRepo) ListActiveForDate(businessID, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"business_id":    businessID,
		"scheduled_date": date,
		"status":         bson.M{"$in": activeStatuses},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for date %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

func (repo *MongoBookingRepo) CountInSeriesAfter(businessID, seriesID, date string) (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{
		"business_id":         businessID,
		"recurring_series_id": seriesID,
		"scheduled_date":      bson.M{"$gt": date},
		"status":              bson.M{"$ne": models.BookingStatusCancelled},
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting series bookings: %w", err)
	}
	return int(count), nil
}

func (repo *MongoBookingRepo) LatestDateInSeries(businessID, seriesID string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"business_id": businessID, "recurring_series_id": seriesID}
	opts := options.FindOne().SetSort(bson.D{{Key: "scheduled_date", Value: -1}})

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, filter, opts).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", fmt.Errorf("error fetching latest series booking: %w", err)
	}
	return booking.ScheduledDate, nil
}
