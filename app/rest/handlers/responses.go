package handlers

// ErrorResponse is the error shape every endpoint returns
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the generic success acknowledgement shape
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
