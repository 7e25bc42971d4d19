package consultation

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

func (h *Handler) RegisterRoutes(protected, admin *gin.RouterGroup) {
	g := protected.Group("/consultations")
	{
		g.POST("", h.Create)
		g.GET("/my", h.ListMine)
	}

	ag := admin.Group("/consultations")
	{
		ag.GET("", h.ListAll)
		ag.PUT("/:id/respond", h.Respond)
	}
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateConsultationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", validator.FormatErrors(err))
		return
	}

	consultation, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create consultation request")
		return
	}

	response.Success(c, http.StatusCreated, consultation)
}

func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")

	list, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get consultation requests")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListAll(c *gin.Context) {
	list, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get consultation requests")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Respond(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid consultation ID")
		return
	}

	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", validator.FormatErrors(err))
		return
	}

	consultation, err := h.service.Respond(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Consultation request not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to respond")
		return
	}

	response.Success(c, http.StatusOK, consultation)
}
