package dto

// ErrorResponse is the wire shape for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse acknowledges a mutation with no payload
type SuccessResponse struct {
	Success bool `json:"success"`
}

// MessageResponse carries a human-readable acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse creates an error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// NewSuccessResponse creates a success acknowledgement
func NewSuccessResponse() SuccessResponse {
	return SuccessResponse{Success: true}
}

// NewMessageResponse creates a message acknowledgement
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// IDRequest represents a request with an ID path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}
