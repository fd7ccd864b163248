package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the failure envelope of every API response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the envelope for responses that carry only a message.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// DeletedResponse is the success envelope for DELETE endpoints.
// swagger:model DeletedResponse
type DeletedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode, and encodes body.
// body is one of the {message, <entity>} envelopes.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONError sets Content-Type to application/json, writes statusCode, and encodes {"error": message}.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}
