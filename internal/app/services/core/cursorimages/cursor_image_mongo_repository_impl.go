package cursorimages

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

type CursorImageMongoRepository struct {
	Collection *mongo.Collection
}

func NewCursorImageMongoRepository(db *mongo.Client, dbName string) CursorImageRepository {
	return &CursorImageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCursorImages),
	}
}

func (r *CursorImageMongoRepository) CreateCursorImage(ctx context.Context, cursorImageModel *models.CursorImage) (string, error) {
	result, err := r.Collection.InsertOne(ctx, cursorImageModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CursorImageMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.CursorImage, error) {
	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"order": 1})

	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var images []models.CursorImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return images, nil
}

func (r *CursorImageMongoRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}

func (r *CursorImageMongoRepository) FindActive(ctx context.Context) ([]models.CursorImage, error) {
	findOptions := options.Find().SetSort(bson.M{"order": 1})

	cursor, err := r.Collection.Find(ctx, bson.M{"isActive": true}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var images []models.CursorImage
	if err := cursor.All(ctx, &images); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return images, nil
}

func (r *CursorImageMongoRepository) FindByID(ctx context.Context, cursorImageID string) (*models.CursorImage, error) {
	objectID, err := primitive.ObjectIDFromHex(cursorImageID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var image models.CursorImage
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&image)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &image, nil
}

func (r *CursorImageMongoRepository) UpdateCursorImage(ctx context.Context, cursorImageModel *models.CursorImage) error {
	filter := bson.M{"_id": cursorImageModel.ID}
	update := bson.M{"$set": cursorImageModel}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *CursorImageMongoRepository) DeleteByID(ctx context.Context, cursorImageID string) error {
	objectID, err := primitive.ObjectIDFromHex(cursorImageID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
