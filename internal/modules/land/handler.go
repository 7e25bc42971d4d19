package land

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"openland/internal/domain"
	"openland/internal/pkg/response"
	"openland/internal/repository"
	"openland/internal/upload"
)

type Handler struct {
	service *Service
	storage *upload.Storage
}

func NewHandler(service *Service, storage *upload.Storage) *Handler {
	return &Handler{service: service, storage: storage}
}

// RegisterPublicRoutes mounts the anonymous read surface.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/lands", h.List)
	rg.GET("/lands/:id", h.GetByID)
}

// RegisterProtectedRoutes mounts the authenticated seller surface.
func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/lands", h.Create)
	rg.GET("/lands/my-lands", h.MyLands)
	rg.PUT("/lands/my-lands/:id", h.UpdateMine)
}

func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")

	var req CreateLandRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing fields")
		return
	}

	in, ok := h.parseCreateInput(c, req)
	if !ok {
		return
	}

	files, ok := h.saveAttachments(c)
	if !ok {
		return
	}

	land, err := h.service.Create(c.Request.Context(), userID, in, files)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create land")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"land": land})
}

func (h *Handler) List(c *gin.Context) {
	f, ok := h.parseFilters(c)
	if !ok {
		return
	}

	lands, err := h.service.PublicList(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch lands")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lands": lands})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid land ID")
		return
	}

	land, err := h.service.GetPublic(c.Request.Context(), id)
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

func (h *Handler) MyLands(c *gin.Context) {
	userID := c.GetInt64("user_id")

	lands, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch lands")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"lands": lands})
}

func (h *Handler) UpdateMine(c *gin.Context) {
	userID := c.GetInt64("user_id")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid land ID")
		return
	}

	var req UpdateLandRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid listing fields")
		return
	}

	in, ok := h.parseUpdateInput(c, req)
	if !ok {
		return
	}

	files, ok := h.saveAttachments(c)
	if !ok {
		return
	}

	land, err := h.service.UpdateMine(c.Request.Context(), userID, id, in, files)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Land not found")
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not authorized to edit this land")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update land")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"land": land})
}

func (h *Handler) parseCreateInput(c *gin.Context, req CreateLandRequest) (CreateLandInput, bool) {
	price, err := strconv.ParseFloat(req.Price, 64)
	if err != nil || price <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Price must be a positive number")
		return CreateLandInput{}, false
	}
	area, err := strconv.ParseFloat(req.AreaM2, 64)
	if err != nil || area <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Area must be a positive number")
		return CreateLandInput{}, false
	}

	in := CreateLandInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       price,
		AreaM2:      area,
		Type:        domain.LandType(req.Type),
		ServiceType: domain.ServiceType(req.ServiceType),
		Wilaya:      req.Wilaya,
		Baladia:     req.Baladia,
		Phone:       req.Phone,
		Email:       req.Email,
	}

	// A geographic point needs both coordinates; anything less is
	// dropped silently.
	if lat, err := strconv.ParseFloat(req.Lat, 64); err == nil {
		if lng, err := strconv.ParseFloat(req.Lng, 64); err == nil {
			in.Lat = &lat
			in.Lng = &lng
		}
	}

	return in, true
}

func (h *Handler) parseUpdateInput(c *gin.Context, req UpdateLandRequest) (UpdateLandInput, bool) {
	in := UpdateLandInput{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		ServiceType: req.ServiceType,
		Wilaya:      req.Wilaya,
		Baladia:     req.Baladia,
	}

	if req.Price != "" {
		price, err := strconv.ParseFloat(req.Price, 64)
		if err != nil || price <= 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Price must be a positive number")
			return UpdateLandInput{}, false
		}
		in.Price = &price
	}
	if req.AreaM2 != "" {
		area, err := strconv.ParseFloat(req.AreaM2, 64)
		if err != nil || area <= 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Area must be a positive number")
			return UpdateLandInput{}, false
		}
		in.AreaM2 = &area
	}

	return in, true
}

// saveAttachments stores the multipart file fields through the upload
// collaborator. A request without files is fine.
func (h *Handler) saveAttachments(c *gin.Context) ([]upload.StoredFile, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body at all.
		return nil, true
	}

	var images, videos, documents []*multipart.FileHeader
	if form != nil {
		images = form.File["images"]
		videos = form.File["videos"]
		documents = form.File["documents"]
	}
	if len(images) == 0 && len(videos) == 0 && len(documents) == 0 {
		return nil, true
	}

	files, err := h.storage.SaveListingFiles(c.Request.Context(), images, videos, documents)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrTooManyFiles):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Too many files attached")
		case errors.Is(err, upload.ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File type is not allowed")
		case errors.Is(err, upload.ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "File exceeds maximum size")
		case errors.Is(err, upload.ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Empty file attached")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store files")
		}
		return nil, false
	}
	return files, true
}

func (h *Handler) parseFilters(c *gin.Context) (repository.PublicFilters, bool) {
	f := repository.PublicFilters{
		Wilaya:      c.Query("wilaya"),
		Baladia:     c.Query("baladia"),
		Type:        c.Query("type"),
		ServiceType: c.Query("service_type"),
	}

	for _, rangeParam := range []struct {
		name string
		dst  **float64
	}{
		{"minPrice", &f.MinPrice},
		{"maxPrice", &f.MaxPrice},
		{"minArea", &f.MinArea},
		{"maxArea", &f.MaxArea},
	} {
		s := c.Query(rangeParam.name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", rangeParam.name+" must be a number")
			return repository.PublicFilters{}, false
		}
		*rangeParam.dst = &v
	}

	// Radius search needs lat, lng and radius together; partial or
	// malformed geo input is ignored, not an error.
	if lat, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		if lng, err := strconv.ParseFloat(c.Query("lng"), 64); err == nil {
			if radius, err := strconv.ParseFloat(c.Query("radius"), 64); err == nil && radius > 0 {
				f.Lat = &lat
				f.Lng = &lng
				f.RadiusKm = &radius
			}
		}
	}

	return f, true
}
