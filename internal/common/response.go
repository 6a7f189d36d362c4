package common

import (
	"encoding/json"
	"net/http"
)

// Every endpoint answers with this envelope: a success flag plus either a
// data payload or an error code and message.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func RespondWithData(w http.ResponseWriter, status int, data interface{}) {
	RespondWithJSON(w, status, SuccessResponse{Success: true, Data: data})
}

// RespondWithError maps a domain error to its HTTP status and stable code.
func RespondWithError(w http.ResponseWriter, err error) {
	RespondWithJSON(w, HTTPStatusFromError(err), ErrorResponse{
		Success: false,
		Code:    ErrorCode(err),
		Message: err.Error(),
	})
}

func RespondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "code": "INTERNAL", "message": "failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}
