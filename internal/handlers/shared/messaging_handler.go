package handlers

import (
	"renegaderace/internal/services"
	"renegaderace/internal/utils"
	"renegaderace/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MessagingHandler struct {
	messagingService services.MessagingService
}

func NewMessagingHandler(messagingService services.MessagingService) *MessagingHandler {
	return &MessagingHandler{
		messagingService: messagingService,
	}
}

// ListConversations returns the caller's conversations, most recent first
func (h *MessagingHandler) ListConversations(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	conversations, err := h.messagingService.ListConversations(c.Request.Context(), externalID)
	if err != nil {
		serviceErrorResponse(c, err, "Conversation")
		return
	}

	utils.SuccessResponse(c, "Conversations retrieved successfully", conversations)
}

type createConversationRequest struct {
	OwnerID   string `json:"owner_id" validate:"required"`
	VehicleID string `json:"vehicle_id" validate:"omitempty,object_id"`
}

// CreateConversation opens (or returns the existing) thread between the
// caller and an owner, optionally anchored to a vehicle.
func (h *MessagingHandler) CreateConversation(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	var request createConversationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	var vehicleID *primitive.ObjectID
	if request.VehicleID != "" {
		parsed, err := primitive.ObjectIDFromHex(request.VehicleID)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid vehicle ID")
			return
		}
		vehicleID = &parsed
	}

	id, err := h.messagingService.CreateConversation(c.Request.Context(), externalID, request.OwnerID, vehicleID)
	if err != nil {
		serviceErrorResponse(c, err, "Conversation")
		return
	}

	utils.CreatedResponse(c, "Conversation created successfully", gin.H{"id": id})
}

// MarkConversationRead zeroes the caller's unread counter on the thread
func (h *MessagingHandler) MarkConversationRead(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	conversationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid conversation ID")
		return
	}

	id, err := h.messagingService.MarkAsRead(c.Request.Context(), conversationID, externalID)
	if err != nil {
		serviceErrorResponse(c, err, "Conversation")
		return
	}

	utils.SuccessResponse(c, "Conversation marked as read", gin.H{"id": id})
}

// ListMessages returns the thread in chronological order
func (h *MessagingHandler) ListMessages(c *gin.Context) {
	conversationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid conversation ID")
		return
	}

	messages, err := h.messagingService.ListMessages(c.Request.Context(), conversationID)
	if err != nil {
		serviceErrorResponse(c, err, "Conversation")
		return
	}

	utils.SuccessResponse(c, "Messages retrieved successfully", messages)
}

type sendMessageRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// SendMessage appends a message to the thread as the caller
func (h *MessagingHandler) SendMessage(c *gin.Context) {
	externalID, ok := externalIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c)
		return
	}

	conversationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid conversation ID")
		return
	}

	var request sendMessageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateStruct(&request); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	id, err := h.messagingService.SendMessage(c.Request.Context(), conversationID, externalID, request.Content)
	if err != nil {
		serviceErrorResponse(c, err, "Conversation")
		return
	}

	utils.CreatedResponse(c, "Message sent successfully", gin.H{"id": id})
}
