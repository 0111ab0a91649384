package dto

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// MessageResponse is used where the old API returned a bare status message.
type MessageResponse struct {
	Message string `json:"message"`
}
