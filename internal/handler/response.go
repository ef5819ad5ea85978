package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/forgo/trivia/api/internal/model"
)

// maxBodyBytes caps request bodies; questions are small
const maxBodyBytes = 1 << 20

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteError writes an {"error": "..."} response
func WriteError(w http.ResponseWriter, err *model.APIError) {
	WriteJSON(w, err.Status, err)
}

// DecodePayload decodes a JSON object request body. An empty body decodes to
// an empty payload so that validation, not decoding, reports what is missing.
func DecodePayload(w http.ResponseWriter, r *http.Request) (model.TriviaPayload, error) {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)

	payload := model.TriviaPayload{}
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return model.TriviaPayload{}, nil
		}
		return nil, err
	}
	// Reject trailing data such as a second JSON value
	if decoder.More() {
		return nil, errors.New("unexpected data after JSON object")
	}
	if payload == nil {
		payload = model.TriviaPayload{}
	}
	return payload, nil
}
