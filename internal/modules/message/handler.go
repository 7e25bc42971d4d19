package message

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"openland/internal/pkg/response"
	"openland/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/messages")
	{
		g.POST("", h.Send)
		g.GET("/conversations", h.Conversations)
		g.GET("/conversations/:userId", h.GetConversation)
	}
}

func (h *Handler) Send(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", validator.FormatErrors(err))
		return
	}

	msg, err := h.service.Send(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfMessage):
			response.Error(c, http.StatusBadRequest, "SELF_MESSAGE", "Cannot send a message to yourself")
		case errors.Is(err, ErrReceiverNotFound):
			response.Error(c, http.StatusNotFound, "RECEIVER_NOT_FOUND", "Receiver not found")
		default:
			response.Error(c, http.StatusInternalServerError, "SEND_FAILED", "Failed to send message")
		}
		return
	}

	response.Success(c, http.StatusCreated, msg)
}

func (h *Handler) Conversations(c *gin.Context) {
	userID := c.GetInt64("user_id")

	conversations, err := h.service.Conversations(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get conversations")
		return
	}

	response.Success(c, http.StatusOK, conversations)
}

func (h *Handler) GetConversation(c *gin.Context) {
	userID := c.GetInt64("user_id")

	partnerID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil || partnerID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	msgs, err := h.service.GetConversation(c.Request.Context(), userID, partnerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get conversation")
		return
	}

	response.Success(c, http.StatusOK, msgs)
}
