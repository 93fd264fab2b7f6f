package mongodb

import (
	"context"
	"fmt"
	"time"

	"renegaderace/internal/models"
	"renegaderace/internal/repositories/interfaces"
	"renegaderace/internal/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messagingRepository struct {
	conversationsCollection *mongo.Collection
	messagesCollection      *mongo.Collection
}

func NewMessagingRepository(db *mongo.Database) interfaces.MessagingRepository {
	return &messagingRepository{
		conversationsCollection: db.Collection("conversations"),
		messagesCollection:      db.Collection("messages"),
	}
}

// Conversation operations
func (r *messagingRepository) CreateConversation(ctx context.Context, conversation *models.Conversation) error {
	conversation.ID = primitive.NewObjectID()
	conversation.CreatedAt = time.Now()
	conversation.UpdatedAt = conversation.CreatedAt

	_, err := r.conversationsCollection.InsertOne(ctx, conversation)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("conversation: %w", services.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create conversation: %w", err)
	}

	return nil
}

func (r *messagingRepository) GetConversationByID(ctx context.Context, id primitive.ObjectID) (*models.Conversation, error) {
	var conversation models.Conversation
	err := r.conversationsCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("conversation %s: %w", id.Hex(), services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}

	return &conversation, nil
}

func (r *messagingRepository) FindConversation(ctx context.Context, renterID, ownerID string, vehicleID *primitive.ObjectID) (*models.Conversation, error) {
	// A stored nil vehicle_id is null in the document, so the triple with no
	// vehicle is its own key rather than a wildcard.
	filter := bson.M{
		"renter_id":  renterID,
		"owner_id":   ownerID,
		"vehicle_id": vehicleID,
	}

	var conversation models.Conversation
	err := r.conversationsCollection.FindOne(ctx, filter).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("conversation: %w", services.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}

	return &conversation, nil
}

func (r *messagingRepository) ListConversationsByParticipant(ctx context.Context, externalID string) ([]*models.Conversation, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"renter_id": externalID},
			{"owner_id": externalID},
		},
	}

	cursor, err := r.conversationsCollection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var conversations []*models.Conversation
	for cursor.Next(ctx) {
		var conversation models.Conversation
		if err := cursor.Decode(&conversation); err != nil {
			return nil, fmt.Errorf("failed to decode conversation: %w", err)
		}
		conversations = append(conversations, &conversation)
	}

	return conversations, cursor.Err()
}

func (r *messagingRepository) UpdateConversation(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.conversationsCollection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update conversation: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("conversation %s: %w", id.Hex(), services.ErrNotFound)
	}

	return nil
}

// Message operations
func (r *messagingRepository) CreateMessage(ctx context.Context, message *models.Message, senderIsRenter bool) error {
	message.ID = primitive.NewObjectID()
	message.CreatedAt = time.Now()

	unreadField := "unread_count_renter"
	if senderIsRenter {
		unreadField = "unread_count_owner"
	}

	// The message append and the parent conversation's bookkeeping must land
	// together, so both writes run in one session.
	session, err := r.conversationsCollection.Database().Client().StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	err = mongo.WithSession(ctx, session, func(sc mongo.SessionContext) error {
		_, err := r.messagesCollection.InsertOne(sc, message)
		if err != nil {
			return fmt.Errorf("failed to insert message: %w", err)
		}

		result, err := r.conversationsCollection.UpdateOne(
			sc,
			bson.M{"_id": message.ConversationID},
			bson.M{
				"$set": bson.M{
					"last_message_at":        message.CreatedAt,
					"last_message_text":      message.Content,
					"last_message_sender_id": message.SenderID,
					"updated_at":             time.Now(),
				},
				"$inc": bson.M{unreadField: 1},
			},
		)
		if err != nil {
			return fmt.Errorf("failed to update conversation: %w", err)
		}
		if result.MatchedCount == 0 {
			return fmt.Errorf("conversation %s: %w", message.ConversationID.Hex(), services.ErrNotFound)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

func (r *messagingRepository) ListMessages(ctx context.Context, conversationID primitive.ObjectID) ([]*models.Message, error) {
	cursor, err := r.messagesCollection.Find(
		ctx,
		bson.M{"conversation_id": conversationID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []*models.Message
	for cursor.Next(ctx) {
		var message models.Message
		if err := cursor.Decode(&message); err != nil {
			return nil, fmt.Errorf("failed to decode message: %w", err)
		}
		messages = append(messages, &message)
	}

	return messages, cursor.Err()
}
