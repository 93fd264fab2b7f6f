package services

import (
	"context"
	"testing"
	"time"

	"renegaderace/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newMessagingFixture() (MessagingService, *fakeMessagingRepo, *fakeUserRepo, *fakeVehicleRepo) {
	messagingRepo := &fakeMessagingRepo{}
	userRepo := newFakeUserRepo()
	vehicleRepo := &fakeVehicleRepo{}
	svc := NewMessagingService(messagingRepo, userRepo, vehicleRepo, newTestLogger())
	return svc, messagingRepo, userRepo, vehicleRepo
}

func TestCreateConversationIdempotentOnTriple(t *testing.T) {
	svc, _, _, vehicleRepo := newMessagingFixture()
	ctx := context.Background()

	vehicle := seedVehicle(vehicleRepo, "owner_1", "Porsche", "911", 1000, true, time.Now())

	first, err := svc.CreateConversation(ctx, "renter_1", "owner_1", &vehicle.ID)
	require.NoError(t, err)

	again, err := svc.CreateConversation(ctx, "renter_1", "owner_1", &vehicle.ID)
	require.NoError(t, err)
	assert.Equal(t, first, again, "same triple yields the existing conversation")

	other := seedVehicle(vehicleRepo, "owner_1", "BMW", "M2", 400, true, time.Now())
	different, err := svc.CreateConversation(ctx, "renter_1", "owner_1", &other.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first, different, "a different vehicle is a different thread")
}

func TestCreateConversationNilVehicleIsItsOwnKey(t *testing.T) {
	svc, _, _, vehicleRepo := newMessagingFixture()
	ctx := context.Background()

	vehicle := seedVehicle(vehicleRepo, "owner_1", "Porsche", "911", 1000, true, time.Now())

	withVehicle, err := svc.CreateConversation(ctx, "renter_1", "owner_1", &vehicle.ID)
	require.NoError(t, err)

	general, err := svc.CreateConversation(ctx, "renter_1", "owner_1", nil)
	require.NoError(t, err)
	assert.NotEqual(t, withVehicle, general, "nil vehicle does not match vehicle-scoped threads")

	generalAgain, err := svc.CreateConversation(ctx, "renter_1", "owner_1", nil)
	require.NoError(t, err)
	assert.Equal(t, general, generalAgain)
}

func TestSendMessageUpdatesRecipientCounter(t *testing.T) {
	svc, messagingRepo, userRepo, _ := newMessagingFixture()
	ctx := context.Background()

	seedUser(userRepo, "renter_1", "Renter", models.UserTypeGuest)
	seedUser(userRepo, "owner_1", "Owner", models.UserTypeHost)

	conversationID, err := svc.CreateConversation(ctx, "renter_1", "owner_1", nil)
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, conversationID, "renter_1", "Is the car free next weekend?")
	require.NoError(t, err)

	conversation, err := messagingRepo.GetConversationByID(ctx, conversationID)
	require.NoError(t, err)
	assert.Equal(t, 1, conversation.UnreadCountOwner, "renter's message is unread for the owner")
	assert.Equal(t, 0, conversation.UnreadCountRenter)
	assert.Equal(t, "Is the car free next weekend?", conversation.LastMessageText)
	assert.Equal(t, "renter_1", conversation.LastMessageSenderID)

	_, err = svc.SendMessage(ctx, conversationID, "owner_1", "Yes, it is.")
	require.NoError(t, err)

	conversation, err = messagingRepo.GetConversationByID(ctx, conversationID)
	require.NoError(t, err)
	assert.Equal(t, 1, conversation.UnreadCountOwner)
	assert.Equal(t, 1, conversation.UnreadCountRenter)
	assert.Equal(t, "owner_1", conversation.LastMessageSenderID)
}

func TestSendMessageUnknownSender(t *testing.T) {
	svc, _, _, _ := newMessagingFixture()

	conversationID, err := svc.CreateConversation(context.Background(), "renter_1", "owner_1", nil)
	require.NoError(t, err)

	_, err = svc.SendMessage(context.Background(), conversationID, "ghost", "hello?")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMarkAsReadZeroesOnlyCallerSide(t *testing.T) {
	svc, messagingRepo, userRepo, _ := newMessagingFixture()
	ctx := context.Background()

	seedUser(userRepo, "renter_1", "Renter", models.UserTypeGuest)
	seedUser(userRepo, "owner_1", "Owner", models.UserTypeHost)

	conversationID, err := svc.CreateConversation(ctx, "renter_1", "owner_1", nil)
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, conversationID, "renter_1", "ping")
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, conversationID, "owner_1", "pong")
	require.NoError(t, err)

	_, err = svc.MarkAsRead(ctx, conversationID, "owner_1")
	require.NoError(t, err)

	conversation, err := messagingRepo.GetConversationByID(ctx, conversationID)
	require.NoError(t, err)
	assert.Equal(t, 0, conversation.UnreadCountOwner)
	assert.Equal(t, 1, conversation.UnreadCountRenter, "the other side's counter is untouched")
}

func TestListMessagesChronological(t *testing.T) {
	svc, _, userRepo, _ := newMessagingFixture()
	ctx := context.Background()

	seedUser(userRepo, "renter_1", "Renter", models.UserTypeGuest)
	seedUser(userRepo, "owner_1", "Owner", models.UserTypeHost)

	conversationID, err := svc.CreateConversation(ctx, "renter_1", "owner_1", nil)
	require.NoError(t, err)

	for _, content := range []string{"first", "second", "third"} {
		_, err = svc.SendMessage(ctx, conversationID, "renter_1", content)
		require.NoError(t, err)
	}

	messages, err := svc.ListMessages(ctx, conversationID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "third", messages[2].Content)
	for i := 1; i < len(messages); i++ {
		assert.True(t, !messages[i].CreatedAt.Before(messages[i-1].CreatedAt))
	}
}

func TestListConversationsRecencyOrderAndEnrichment(t *testing.T) {
	svc, _, userRepo, vehicleRepo := newMessagingFixture()
	ctx := context.Background()

	seedUser(userRepo, "renter_1", "Renter", models.UserTypeGuest)
	seedUser(userRepo, "owner_1", "Owner One", models.UserTypeHost)
	seedUser(userRepo, "owner_2", "Owner Two", models.UserTypeHost)

	vehicle := seedVehicle(vehicleRepo, "owner_1", "Porsche", "911", 1000, true, time.Now())

	older, err := svc.CreateConversation(ctx, "renter_1", "owner_1", &vehicle.ID)
	require.NoError(t, err)
	newer, err := svc.CreateConversation(ctx, "renter_1", "owner_2", nil)
	require.NoError(t, err)

	// Bump the older thread so it becomes the most recent.
	_, err = svc.SendMessage(ctx, older, "renter_1", "still interested")
	require.NoError(t, err)

	conversations, err := svc.ListConversations(ctx, "renter_1")
	require.NoError(t, err)
	require.Len(t, conversations, 2)

	assert.Equal(t, older, conversations[0].ID, "most recent activity first")
	assert.Equal(t, newer, conversations[1].ID)

	require.NotNil(t, conversations[0].OtherUser)
	assert.Equal(t, "Owner One", conversations[0].OtherUser.Name)
	require.NotNil(t, conversations[0].Vehicle)
	assert.Equal(t, vehicle.ID, conversations[0].Vehicle.ID)
	assert.Nil(t, conversations[1].Vehicle)
}

func TestOtherSide(t *testing.T) {
	c := &models.Conversation{RenterID: "r", OwnerID: "o"}
	assert.Equal(t, "o", c.OtherSide("r"))
	assert.Equal(t, "r", c.OtherSide("o"))
}

func TestMarkAsReadUnknownConversation(t *testing.T) {
	svc, _, _, _ := newMessagingFixture()

	_, err := svc.MarkAsRead(context.Background(), primitive.NewObjectID(), "renter_1")
	assert.ErrorIs(t, err, ErrNotFound)
}
