package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessageType string

const (
	MessageTypeText   MessageType = "text"
	MessageTypeSystem MessageType = "system"
)

// Conversation is a pairwise thread between a renter and an owner, optionally
// scoped to a vehicle. The (RenterID, OwnerID, VehicleID) triple is
// de-duplicated on creation; a nil VehicleID is its own key value, not a
// wildcard.
type Conversation struct {
	ID                  primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	VehicleID           *primitive.ObjectID `json:"vehicle_id,omitempty" bson:"vehicle_id"`
	RenterID            string              `json:"renter_id" bson:"renter_id" validate:"required"`
	OwnerID             string              `json:"owner_id" bson:"owner_id" validate:"required"`
	LastMessageAt       time.Time           `json:"last_message_at" bson:"last_message_at"`
	LastMessageText     string              `json:"last_message_text,omitempty" bson:"last_message_text,omitempty"`
	LastMessageSenderID string              `json:"last_message_sender_id,omitempty" bson:"last_message_sender_id,omitempty"`
	UnreadCountRenter   int                 `json:"unread_count_renter" bson:"unread_count_renter"`
	UnreadCountOwner    int                 `json:"unread_count_owner" bson:"unread_count_owner"`
	IsActive            bool                `json:"is_active" bson:"is_active"`
	CreatedAt           time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at" bson:"updated_at"`
}

// OtherSide returns the counterparty's external id for the given participant.
func (c *Conversation) OtherSide(externalID string) string {
	if c.RenterID == externalID {
		return c.OwnerID
	}
	return c.RenterID
}

// ConversationWithDetails enriches a conversation with the counterparty and
// the vehicle it concerns, when any.
type ConversationWithDetails struct {
	Conversation `bson:",inline"`
	OtherUser    *User    `json:"other_user"`
	Vehicle      *Vehicle `json:"vehicle,omitempty"`
}

// Message is one entry in a conversation's append-only log. CreatedAt defines
// thread order; messages are never edited after insert apart from read state.
type Message struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ConversationID primitive.ObjectID `json:"conversation_id" bson:"conversation_id" validate:"required"`
	SenderID       string             `json:"sender_id" bson:"sender_id" validate:"required"`
	Content        string             `json:"content" bson:"content" validate:"required,max=1000"`
	MessageType    MessageType        `json:"message_type" bson:"message_type"`
	IsRead         bool               `json:"is_read" bson:"is_read"`
	ReadAt         *time.Time         `json:"read_at,omitempty" bson:"read_at,omitempty"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}
