package admin

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

// RegisterRoutes mounts the moderation surface on the admin group. The
// group must already be behind auth + admin-role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/lands/pending", h.ListPending)
	rg.GET("/lands", h.Search)
	rg.GET("/lands/:id", h.GetLand)
	rg.PUT("/lands/:id/verify", h.Verify)
	rg.PUT("/lands/:id", h.UpdateLand)
	rg.DELETE("/lands/:id", h.DeleteLand)
	rg.PUT("/documents/:id/verify", h.VerifyDocument)
	rg.GET("/stats", h.Stats)
}

func (h *Handler) ListPending(c *gin.Context) {
	lands, err := h.service.ListPending(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch pending lands")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lands": lands})
}

func (h *Handler) GetLand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	land, err := h.service.GetLand(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Land not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch land")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"land": land})
}

func (h *Handler) Verify(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req VerifyLandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	land, err := h.service.Moderate(c.Request.Context(), id, req.Status, req.RejectionReason)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status")
		case errors.Is(err, ErrReasonRequired):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rejection reason is required")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Land not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to moderate land")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"land": land})
}

func (h *Handler) Search(c *gin.Context) {
	lands, err := h.service.Search(c.Request.Context(), c.Query("search"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search lands")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lands": lands})
}

func (h *Handler) UpdateLand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateLandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	land, err := h.service.UpdateLand(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Land not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update land")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"land": land})
}

func (h *Handler) DeleteLand(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteLand(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Land not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete land")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

func (h *Handler) VerifyDocument(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req VerifyDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	doc, err := h.service.VerifyDocument(c.Request.Context(), id, *req.IsVerified)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Document not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update document")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"document": doc})
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}
