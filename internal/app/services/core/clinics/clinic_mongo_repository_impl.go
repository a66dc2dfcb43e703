package clinics

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

type ClinicMongoRepository struct {
	Collection *mongo.Collection
}

func NewClinicMongoRepository(db *mongo.Client, dbName string) ClinicRepository {
	return &ClinicMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionClinics),
	}
}

func (r *ClinicMongoRepository) CreateClinic(ctx context.Context, clinicModel *models.Clinic) (string, error) {
	result, err := r.Collection.InsertOne(ctx, clinicModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ClinicMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Clinic, error) {
	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var clinics []models.Clinic
	if err := cursor.All(ctx, &clinics); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return clinics, nil
}

func (r *ClinicMongoRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *ClinicMongoRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	objectID, err := primitive.ObjectIDFromHex(clinicID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var clinic models.Clinic
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&clinic)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &clinic, nil
}

func (r *ClinicMongoRepository) FindByIDs(ctx context.Context, clinicIDs []primitive.ObjectID) ([]models.Clinic, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"_id": bson.M{"$in": clinicIDs}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var clinics []models.Clinic
	if err := cursor.All(ctx, &clinics); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return clinics, nil
}

func (r *ClinicMongoRepository) UpdateClinic(ctx context.Context, clinicModel *models.Clinic) error {
	filter := bson.M{"_id": clinicModel.ID}
	update := bson.M{"$set": clinicModel}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ClinicMongoRepository) DeleteByID(ctx context.Context, clinicID string) error {
	objectID, err := primitive.ObjectIDFromHex(clinicID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *ClinicMongoRepository) AddDoctors(ctx context.Context, clinicID primitive.ObjectID, doctorIDs []primitive.ObjectID) error {
	filter := bson.M{"_id": clinicID}
	update := bson.M{
		"$addToSet": bson.M{"doctors": bson.M{"$each": doctorIDs}},
		"$set":      bson.M{"updatedAt": time.Now()},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ClinicMongoRepository) PullDoctorFromAll(ctx context.Context, doctorID primitive.ObjectID) error {
	filter := bson.M{"doctors": doctorID}
	update := bson.M{"$pull": bson.M{"doctors": doctorID}}

	_, err := r.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ClinicMongoRepository) PushVideos(ctx context.Context, clinicID primitive.ObjectID, videos []models.ClinicVideo) error {
	filter := bson.M{"_id": clinicID}
	update := bson.M{
		"$push": bson.M{"videos": bson.M{"$each": videos}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ClinicMongoRepository) PullVideo(ctx context.Context, clinicID, videoID primitive.ObjectID) error {
	filter := bson.M{"_id": clinicID}
	update := bson.M{
		"$pull": bson.M{"videos": bson.M{"_id": videoID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}

	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ClinicMongoRepository) IncrementTotalBookings(ctx context.Context, clinicID primitive.ObjectID, delta int64) error {
	filter := bson.M{"_id": clinicID}
	update := bson.M{"$inc": bson.M{"totalBookings": delta}}

	_, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
