package interfaces

import (
	"context"

	"renegaderace/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessagingRepository interface {
	// Conversation operations
	CreateConversation(ctx context.Context, conversation *models.Conversation) error
	GetConversationByID(ctx context.Context, id primitive.ObjectID) (*models.Conversation, error)

	// FindConversation looks up the unique (renter, owner, vehicle) triple.
	// A nil vehicleID matches only conversations without a vehicle.
	FindConversation(ctx context.Context, renterID, ownerID string, vehicleID *primitive.ObjectID) (*models.Conversation, error)

	ListConversationsByParticipant(ctx context.Context, externalID string) ([]*models.Conversation, error)
	UpdateConversation(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// Message operations. CreateMessage appends the message and patches the
	// parent conversation's last-message fields and the recipient's unread
	// counter as one logical write.
	CreateMessage(ctx context.Context, message *models.Message, senderIsRenter bool) error
	ListMessages(ctx context.Context, conversationID primitive.ObjectID) ([]*models.Message, error)
}
