package chat

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"modelo/internal/domain/application"
	"modelo/internal/domain/auth"
	"modelo/internal/domain/listing"
	"modelo/internal/pkg/response"
)

// Handler handles HTTP requests for the chat domain
type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

type openConversationRequest struct {
	RecipientID   int64  `json:"recipient_id" binding:"required"`
	ListingID     *int64 `json:"listing_id"`
	ApplicationID *int64 `json:"application_id"`
}

type sendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// OpenConversation starts or returns the thread for a participant pair and
// optional listing/application scope.
func (h *Handler) OpenConversation(c *gin.Context) {
	userID := c.GetInt64("user_id")
	var req openConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
		return
	}

	conv, err := h.service.GetOrCreate(c.Request.Context(), userID, req.RecipientID, req.ListingID, req.ApplicationID)
	if err != nil {
		handleChatError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, conv)
}

// ListConversations returns the caller's threads with unread counts.
func (h *Handler) ListConversations(c *gin.Context) {
	userID := c.GetInt64("user_id")
	convs, err := h.service.ListConversations(c.Request.Context(), userID)
	if err != nil {
		handleChatError(c, err)
		return
	}
	response.Success(c, http.StatusOK, convs)
}

// GetConversation returns one thread.
func (h *Handler) GetConversation(c *gin.Context) {
	userID := c.GetInt64("user_id")
	conv, err := h.service.GetConversation(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		handleChatError(c, err)
		return
	}
	response.Success(c, http.StatusOK, conv)
}

// GetMessages returns paginated messages of a thread.
func (h *Handler) GetMessages(c *gin.Context) {
	userID := c.GetInt64("user_id")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	msgs, err := h.service.GetMessages(c.Request.Context(), c.Param("id"), userID, limit, offset)
	if err != nil {
		handleChatError(c, err)
		return
	}
	response.Success(c, http.StatusOK, msgs)
}

// SendMessage appends a message and pushes it to subscribers.
func (h *Handler) SendMessage(c *gin.Context) {
	userID := c.GetInt64("user_id")
	conversationID := c.Param("id")
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
		return
	}

	msg, err := h.service.Send(c.Request.Context(), conversationID, userID, req.Content)
	if err != nil {
		handleChatError(c, err)
		return
	}

	h.hub.BroadcastToConversation(conversationID, &WSEvent{
		Type:           EventNewMessage,
		ConversationID: conversationID,
		Payload:        msg,
	})

	response.Success(c, http.StatusCreated, msg)
}

// MarkAllRead flips every unread message addressed to the caller.
func (h *Handler) MarkAllRead(c *gin.Context) {
	userID := c.GetInt64("user_id")
	conversationID := c.Param("id")

	updated, err := h.service.MarkAllRead(c.Request.Context(), conversationID, userID)
	if err != nil {
		handleChatError(c, err)
		return
	}

	if updated > 0 {
		h.hub.BroadcastToConversation(conversationID, &WSEvent{
			Type:           EventRead,
			ConversationID: conversationID,
			Payload:        map[string]int64{"user_id": userID},
		})
	}

	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

// UnreadTotal returns the caller's unread count across all threads.
func (h *Handler) UnreadTotal(c *gin.Context) {
	userID := c.GetInt64("user_id")
	count, err := h.service.UnreadTotal(c.Request.Context(), userID)
	if err != nil {
		handleChatError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread_count": count})
}

// WebSocket upgrades the connection for real-time events, auto-subscribing
// to the caller's existing threads.
func (h *Handler) WebSocket(c *gin.Context) {
	userID := c.GetInt64("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	convs, err := h.service.ListConversations(c.Request.Context(), userID)
	var ids []string
	if err == nil {
		for _, conv := range convs {
			ids = append(ids, conv.ID)
		}
	}

	h.hub.ServeWS(conn, userID, ids)
}

func handleChatError(c *gin.Context, err error) {
	switch err {
	case ErrConversationNotFound, auth.ErrUserNotFound,
		application.ErrApplicationNotFound, listing.ErrListingNotFound:
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case ErrNotParticipant, ErrNotUnlocked:
		response.Error(c, http.StatusForbidden, response.CodeForbidden, err.Error())
	case ErrCannotChatSelf, ErrEmptyContent, ErrContentTooLong, ErrScopeMismatch:
		response.Error(c, http.StatusBadRequest, response.CodeValidationFailed, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "internal error")
	}
}
