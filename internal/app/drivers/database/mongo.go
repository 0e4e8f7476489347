package database

import (
	"context"
	"fmt"
	"log"
	"proacolhe-service/internal/app/config"
	"proacolhe-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	connectionString := fmt.Sprintf("mongodb://%s:%s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port)
	if driverConfig.MongoDB.Username != "" {
		connectionString = fmt.Sprintf(
			"mongodb://%s:%s@%s:%s",
			driverConfig.MongoDB.Username,
			driverConfig.MongoDB.Password,
			driverConfig.MongoDB.Host,
			driverConfig.MongoDB.Port,
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connectionString))
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}

	if err := EnsureMongoIndexes(ctx, client.Database(driverConfig.MongoDB.DbName)); err != nil {
		log.Fatalf("Failed to create mongo indexes: %s", err.Error())
	}

	log.Println("Successfully connected to mongo database")
	return client
}

// EnsureMongoIndexes mirrors the unique and lookup indexes of the sqlite schema.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		constvars.MongoCollectionUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		constvars.MongoCollectionPatients: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		constvars.MongoCollectionConsultations: {
			{Keys: bson.D{{Key: "patientId", Value: 1}}},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("collection %s: %w", collection, err)
		}
	}
	return nil
}
