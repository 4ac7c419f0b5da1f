package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func respondWithError(w http.ResponseWriter, status int, errorTitle, message string) {
	respondWithJSON(w, status, ErrorResponse{Error: errorTitle, Message: message})
}
