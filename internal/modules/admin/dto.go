package admin

// VerifyLandRequest carries a moderation decision. Status must be
// "verified" or "rejected"; any other value is invalid input.
type VerifyLandRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejection_reason"`
}

type VerifyDocumentRequest struct {
	IsVerified *bool `json:"is_verified" binding:"required"`
}

// UpdateLandRequest is an admin field edit; all fields optional, status
// untouched.
type UpdateLandRequest struct {
	Title       string   `json:"title" binding:"omitempty,min=5,max=200"`
	Description string   `json:"description" binding:"omitempty,min=20"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	AreaM2      *float64 `json:"area_m2" binding:"omitempty,gt=0"`
	Type        string   `json:"type" binding:"omitempty,oneof=private agricultural waqf concession"`
	ServiceType string   `json:"service_type" binding:"omitempty,oneof=sale rent"`
	Wilaya      string   `json:"wilaya"`
	Baladia     string   `json:"baladia"`
}

type StatsResponse struct {
	TotalUsers    int64 `json:"total_users"`
	TotalLands    int64 `json:"total_lands"`
	PendingLands  int64 `json:"pending_lands"`
	VerifiedLands int64 `json:"verified_lands"`
	RejectedLands int64 `json:"rejected_lands"`
}
