package land

import "openland/internal/domain"

// CreateLandRequest is the multipart form of a listing submission.
// Price and area arrive as text and are parsed in the handler; parse
// failures are validation errors and never reach the service.
type CreateLandRequest struct {
	Title       string `form:"title" binding:"required,min=5,max=200"`
	Description string `form:"description" binding:"required,min=20"`
	Price       string `form:"price" binding:"required"`
	AreaM2      string `form:"area_m2" binding:"required"`
	Type        string `form:"type" binding:"required,oneof=private agricultural waqf concession"`
	ServiceType string `form:"service_type" binding:"omitempty,oneof=sale rent"`
	Wilaya      string `form:"wilaya" binding:"required"`
	Baladia     string `form:"baladia" binding:"required"`
	Lat         string `form:"lat"`
	Lng         string `form:"lng"`
	Phone       string `form:"phone"`
	Email       string `form:"email" binding:"omitempty,email"`
}

// UpdateLandRequest carries an owner's resubmission. Every field is
// optional; empty means "keep the current value".
type UpdateLandRequest struct {
	Title       string `form:"title" binding:"omitempty,min=5,max=200"`
	Description string `form:"description" binding:"omitempty,min=20"`
	Price       string `form:"price"`
	AreaM2      string `form:"area_m2"`
	Type        string `form:"type" binding:"omitempty,oneof=private agricultural waqf concession"`
	ServiceType string `form:"service_type" binding:"omitempty,oneof=sale rent"`
	Wilaya      string `form:"wilaya"`
	Baladia     string `form:"baladia"`
}

// CreateLandInput is the typed payload the service receives after
// boundary validation and numeric parsing.
type CreateLandInput struct {
	Title       string
	Description string
	Price       float64
	AreaM2      float64
	Type        domain.LandType
	ServiceType domain.ServiceType
	Wilaya      string
	Baladia     string
	Phone       string
	Email       string
	Lat         *float64
	Lng         *float64
}

// UpdateLandInput carries partial-update fields: nil/empty fields keep
// their prior values.
type UpdateLandInput struct {
	Title       string
	Description string
	Price       *float64
	AreaM2      *float64
	Type        string
	ServiceType string
	Wilaya      string
	Baladia     string
}
