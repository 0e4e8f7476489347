package consultations

import (
	"context"
	"errors"
	"proacolhe-service/internal/app/contracts"
	"proacolhe-service/internal/app/models"
	"proacolhe-service/internal/pkg/constvars"
	"proacolhe-service/internal/pkg/exceptions"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ConsultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) contracts.ConsultationRepository {
	return &ConsultationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
	}
}

func (r *ConsultationMongoRepository) CreateConsultation(ctx context.Context, consultation *models.Consultation) error {
	_, err := r.Collection.InsertOne(ctx, consultation)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ConsultationMongoRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.Collection.FindOne(ctx, bson.M{"_id": consultationID}).Decode(&consultation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (r *ConsultationMongoRepository) FindAll(ctx context.Context) ([]models.Consultation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	consultations := make([]models.Consultation, 0)
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return consultations, nil
}

func (r *ConsultationMongoRepository) Count(ctx context.Context) (int, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(count), nil
}

func (r *ConsultationMongoRepository) CountByCIDPrefix(ctx context.Context, prefix string) (int, error) {
	filter := bson.M{"diagnosis.cid": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(count), nil
}

func (r *ConsultationMongoRepository) DeleteAll(ctx context.Context) (int, error) {
	result, err := r.Collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return int(result.DeletedCount), nil
}
