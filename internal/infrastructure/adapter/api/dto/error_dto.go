package dto

// ErrorResponse is the uniform error body for the API. Details carries
// machine-readable context for errors that have it, such as the required
// and available amounts on an insufficient funds rejection.
type ErrorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
