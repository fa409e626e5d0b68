package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentWebhookEvent is the journal entry of one provider notification as received.
type PaymentWebhookEvent struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	RequestID         string             `bson:"request_id"`
	ProviderPaymentID string             `bson:"provider_payment_id"`
	ProviderStatus    string             `bson:"provider_status"`
	MappedStatus      string             `bson:"mapped_status"`
	Payload           string             `bson:"payload"`
	RemoteAddr        string             `bson:"remote_addr"`
	ReceivedAt        time.Time          `bson:"received_at"`
}
