package middlewares

import (
	"encoding/json"
	"net/http"
)

// errorBody matches the handlers' error shape and adds the request id so a
// client report can be traced in the logs
type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{
		Error:     message,
		RequestID: GetRequestID(r.Context()),
	})
}
