package subscriptions

import (
	"context"
	"dentaflow-service/internal/app/contracts"
	"dentaflow-service/internal/app/models"
	"dentaflow-service/internal/pkg/constvars"
	"dentaflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PaymentWebhookEventMongoRepository struct {
	Collection *mongo.Collection
}

func NewPaymentWebhookEventMongoRepository(db *mongo.Client, dbName string) contracts.PaymentWebhookEventRepository {
	return &PaymentWebhookEventMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPaymentWebhookEvents),
	}
}

func (repo *PaymentWebhookEventMongoRepository) Insert(ctx context.Context, event *models.PaymentWebhookEvent) error {
	result, err := repo.Collection.InsertOne(ctx, event)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	if objectID, ok := result.InsertedID.(primitive.ObjectID); ok {
		event.ID = objectID
	}
	return nil
}
