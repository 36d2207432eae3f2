package dto

// PromoteRequest carries the setup key guarding the admin promotion endpoint
type PromoteRequest struct {
	SetupKey string `json:"setupKey" binding:"required"`
}
