package handler

import (
	"encoding/json"
	"net/http"

	dErrors "giftwell/pkg/domain-errors"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteError maps a domain error to its HTTP status and writes the JSON
// error envelope.
func WriteError(w http.ResponseWriter, err error) {
	status := dErrors.StatusOf(err)
	writeJSON(w, status, errorEnvelope{
		Error: errorBody{
			Code:    string(dErrors.CodeOf(err)),
			Message: dErrors.MessageOf(err),
		},
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
