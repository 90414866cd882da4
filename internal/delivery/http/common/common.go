package http_common

// ErrorResponse
type ErrorResponse struct {
	Message string `json:"message"`
}
