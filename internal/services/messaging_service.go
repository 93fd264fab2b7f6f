package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"renegaderace/internal/models"
	"renegaderace/internal/repositories/interfaces"
	"renegaderace/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessagingService interface {
	// ListConversations returns every conversation the user is a side of,
	// enriched with the counterparty and the vehicle (when any), most recent
	// activity first.
	ListConversations(ctx context.Context, userExternalID string) ([]*models.ConversationWithDetails, error)

	// CreateConversation is idempotent on the (renter, owner, vehicle)
	// triple; an absent vehicle is its own key value.
	CreateConversation(ctx context.Context, renterExternalID, ownerExternalID string, vehicleID *primitive.ObjectID) (primitive.ObjectID, error)

	// MarkAsRead zeroes the unread counter of whichever side the caller is
	// on; the other side's counter is untouched.
	MarkAsRead(ctx context.Context, conversationID primitive.ObjectID, userExternalID string) (primitive.ObjectID, error)

	// ListMessages returns the thread in chronological order.
	ListMessages(ctx context.Context, conversationID primitive.ObjectID) ([]*models.Message, error)

	// SendMessage appends a text message and updates the conversation's
	// last-message fields and the recipient's unread counter.
	SendMessage(ctx context.Context, conversationID primitive.ObjectID, senderExternalID, content string) (primitive.ObjectID, error)
}

type messagingService struct {
	messagingRepo interfaces.MessagingRepository
	userRepo      interfaces.UserRepository
	vehicleRepo   interfaces.VehicleRepository
	logger        *logger.Logger
}

func NewMessagingService(
	messagingRepo interfaces.MessagingRepository,
	userRepo interfaces.UserRepository,
	vehicleRepo interfaces.VehicleRepository,
	log *logger.Logger,
) MessagingService {
	return &messagingService{
		messagingRepo: messagingRepo,
		userRepo:      userRepo,
		vehicleRepo:   vehicleRepo,
		logger:        log,
	}
}

func (s *messagingService) ListConversations(ctx context.Context, userExternalID string) ([]*models.ConversationWithDetails, error) {
	conversations, err := s.messagingRepo.ListConversationsByParticipant(ctx, userExternalID)
	if err != nil {
		return nil, err
	}

	result := make([]*models.ConversationWithDetails, 0, len(conversations))
	for _, c := range conversations {
		details := &models.ConversationWithDetails{Conversation: *c}

		if otherUser, err := s.userRepo.GetByExternalID(ctx, c.OtherSide(userExternalID)); err == nil {
			details.OtherUser = otherUser
		}

		if c.VehicleID != nil {
			if vehicle, err := s.vehicleRepo.GetByID(ctx, *c.VehicleID); err == nil {
				details.Vehicle = vehicle
			}
		}

		result = append(result, details)
	}

	// The store returns insertion order; recency ordering is ours to apply.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastMessageAt.After(result[j].LastMessageAt)
	})

	return result, nil
}

func (s *messagingService) CreateConversation(ctx context.Context, renterExternalID, ownerExternalID string, vehicleID *primitive.ObjectID) (primitive.ObjectID, error) {
	existing, err := s.messagingRepo.FindConversation(ctx, renterExternalID, ownerExternalID, vehicleID)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return primitive.NilObjectID, err
	}

	conversation := &models.Conversation{
		VehicleID:         vehicleID,
		RenterID:          renterExternalID,
		OwnerID:           ownerExternalID,
		LastMessageAt:     time.Now(),
		UnreadCountRenter: 0,
		UnreadCountOwner:  0,
		IsActive:          true,
	}

	if err := s.messagingRepo.CreateConversation(ctx, conversation); err != nil {
		// Lost a creation race on the unique triple; return the winner.
		if errors.Is(err, ErrAlreadyExists) {
			winner, findErr := s.messagingRepo.FindConversation(ctx, renterExternalID, ownerExternalID, vehicleID)
			if findErr != nil {
				return primitive.NilObjectID, findErr
			}
			return winner.ID, nil
		}
		return primitive.NilObjectID, err
	}

	s.logger.WithUserID(renterExternalID).
		WithConversationID(conversation.ID).
		Info("Conversation started")

	return conversation.ID, nil
}

func (s *messagingService) MarkAsRead(ctx context.Context, conversationID primitive.ObjectID, userExternalID string) (primitive.ObjectID, error) {
	conversation, err := s.messagingRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	updates := map[string]interface{}{}
	if conversation.RenterID == userExternalID {
		updates["unread_count_renter"] = 0
	} else {
		updates["unread_count_owner"] = 0
	}

	if err := s.messagingRepo.UpdateConversation(ctx, conversationID, updates); err != nil {
		return primitive.NilObjectID, err
	}

	return conversationID, nil
}

func (s *messagingService) ListMessages(ctx context.Context, conversationID primitive.ObjectID) ([]*models.Message, error) {
	return s.messagingRepo.ListMessages(ctx, conversationID)
}

func (s *messagingService) SendMessage(ctx context.Context, conversationID primitive.ObjectID, senderExternalID, content string) (primitive.ObjectID, error) {
	if _, err := s.userRepo.GetByExternalID(ctx, senderExternalID); err != nil {
		return primitive.NilObjectID, fmt.Errorf("sender: %w", err)
	}

	conversation, err := s.messagingRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return primitive.NilObjectID, err
	}

	message := &models.Message{
		ConversationID: conversationID,
		SenderID:       senderExternalID,
		Content:        content,
		MessageType:    models.MessageTypeText,
		IsRead:         false,
	}

	senderIsRenter := conversation.RenterID == senderExternalID
	if err := s.messagingRepo.CreateMessage(ctx, message, senderIsRenter); err != nil {
		return primitive.NilObjectID, err
	}

	s.logger.WithUserID(senderExternalID).
		WithConversationID(conversationID).
		Debug("Message sent")

	return message.ID, nil
}
