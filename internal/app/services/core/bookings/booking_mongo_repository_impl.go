package bookings

import (
	"context"
	"time"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection        *mongo.Collection
	CounterCollection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) BookingRepository {
	return &BookingMongoRepository{
		Collection:        db.Database(dbName).Collection(constvars.MongoCollectionBookings),
		CounterCollection: db.Database(dbName).Collection(constvars.MongoCollectionBookingCounters),
	}
}

func (r *BookingMongoRepository) CreateBooking(ctx context.Context, bookingModel *models.Booking) (string, error) {
	result, err := r.Collection.InsertOne(ctx, bookingModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *BookingMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Booking, error) {
	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var booking models.Booking
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": -1})

	cursor, err := r.Collection.Find(ctx, bson.M{"user": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) UpdateBooking(ctx context.Context, bookingModel *models.Booking) error {
	filter := bson.M{"_id": bookingModel.ID}
	update := bson.M{"$set": bookingModel}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *BookingMongoRepository) DeleteByID(ctx context.Context, bookingID string) error {
	objectID, err := primitive.ObjectIDFromHex(bookingID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *BookingMongoRepository) DistinctDates(ctx context.Context) ([]time.Time, error) {
	values, err := r.Collection.Distinct(ctx, "date", bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	dates := make([]time.Time, 0, len(values))
	for _, value := range values {
		switch v := value.(type) {
		case primitive.DateTime:
			dates = append(dates, v.Time())
		case time.Time:
			dates = append(dates, v)
		}
	}
	return dates, nil
}

// NextBookingNumber atomically increments the per-clinic per-day counter
// and returns the new sequence. The upsert creates the counter document
// on the first booking of the day, so numbering starts at 1.
func (r *BookingMongoRepository) NextBookingNumber(ctx context.Context, clinicID primitive.ObjectID, date time.Time) (int64, error) {
	filter := bson.M{"clinicId": clinicID, "date": date}
	update := bson.M{"$inc": bson.M{"sequence": 1}}
	findOptions := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.BookingCounter
	err := r.CounterCollection.FindOneAndUpdate(ctx, filter, update, findOptions).Decode(&counter)
	if err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return counter.Sequence, nil
}

func (r *BookingMongoRepository) CountForClinicBetween(ctx context.Context, clinicID primitive.ObjectID, from, to time.Time) (int64, error) {
	filter := bson.M{
		"clinic": clinicID,
		"date":   bson.M{"$gte": from, "$lt": to},
	}

	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
