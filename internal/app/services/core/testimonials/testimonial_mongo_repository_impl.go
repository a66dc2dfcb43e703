package testimonials

import (
	"context"

	"github.com/mmhmddd/khobaraalafia-server/internal/app/models"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/constvars"
	"github.com/mmhmddd/khobaraalafia-server/internal/pkg/exceptions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestimonialMongoRepository struct {
	Collection *mongo.Collection
}

func NewTestimonialMongoRepository(db *mongo.Client, dbName string) TestimonialRepository {
	return &TestimonialMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTestimonials),
	}
}

func (r *TestimonialMongoRepository) CreateTestimonial(ctx context.Context, testimonialModel *models.Testimonial) (string, error) {
	result, err := r.Collection.InsertOne(ctx, testimonialModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *TestimonialMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Testimonial, error) {
	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var testimonials []models.Testimonial
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return testimonials, nil
}

func (r *TestimonialMongoRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *TestimonialMongoRepository) FindByID(ctx context.Context, testimonialID string) (*models.Testimonial, error) {
	objectID, err := primitive.ObjectIDFromHex(testimonialID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var testimonial models.Testimonial
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&testimonial)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &testimonial, nil
}

func (r *TestimonialMongoRepository) UpdateTestimonial(ctx context.Context, testimonialModel *models.Testimonial) error {
	filter := bson.M{"_id": testimonialModel.ID}
	update := bson.M{"$set": testimonialModel}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *TestimonialMongoRepository) DeleteByID(ctx context.Context, testimonialID string) error {
	objectID, err := primitive.ObjectIDFromHex(testimonialID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
