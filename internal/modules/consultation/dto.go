package consultation

type CreateConsultationRequest struct {
	Type        string `json:"type" binding:"required,oneof=legal agricultural"`
	Subject     string `json:"subject" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"required,min=10"`
}

type RespondRequest struct {
	AdminResponse string `json:"admin_response" binding:"required,min=1"`
	Status        string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
}
