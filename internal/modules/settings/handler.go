package settings

import (
	"net/http"

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

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	public.GET("/settings", h.GetAll)
	admin.PUT("/settings", h.Update)
}

func (h *Handler) GetAll(c *gin.Context) {
	settings, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get settings")
		return
	}

	response.Success(c, http.StatusOK, settings)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request data", validator.FormatErrors(err))
		return
	}

	settings, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update settings")
		return
	}

	response.Success(c, http.StatusOK, settings)
}
