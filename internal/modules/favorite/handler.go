package favorite

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"openland/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/favorites")
	{
		g.GET("", h.List)
		g.POST("/:landId", h.Add)
		g.DELETE("/:landId", h.Remove)
	}
}

func (h *Handler) List(c *gin.Context) {
	userID := c.GetInt64("user_id")

	favorites, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to get favorites")
		return
	}

	response.Success(c, http.StatusOK, favorites)
}

func (h *Handler) Add(c *gin.Context) {
	userID := c.GetInt64("user_id")

	landID, err := strconv.ParseInt(c.Param("landId"), 10, 64)
	if err != nil || landID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid land ID")
		return
	}

	fav, err := h.service.Add(c.Request.Context(), userID, landID)
	if err != nil {
		switch {
		case errors.Is(err, ErrLandNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Land not found")
		case errors.Is(err, ErrAlreadyFavorited):
			response.Error(c, http.StatusConflict, "ALREADY_FAVORITED", "Land is already in favorites")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to add favorite")
		}
		return
	}

	response.Success(c, http.StatusCreated, fav)
}

func (h *Handler) Remove(c *gin.Context) {
	userID := c.GetInt64("user_id")

	landID, err := strconv.ParseInt(c.Param("landId"), 10, 64)
	if err != nil || landID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid land ID")
		return
	}

	if err := h.service.Remove(c.Request.Context(), userID, landID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Favorite not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to remove favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "removed"})
}
