// Package httpjson holds the small JSON request/response helpers every API
// handler uses. Error responses always carry the same envelope:
//
//	{ "error": "message" }
//
// so clients can read one field regardless of which endpoint failed.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies; the largest legitimate payload here is
// a post document, which is far below this.
const maxBodyBytes = 1 << 20 // 1 MiB

// errorBody is the failure envelope.
type errorBody struct {
	Error string `json:"error"`
}

// Write encodes v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the failure envelope with the given status.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errorBody{Error: msg})
}

// Decode reads the request body into v. It rejects oversized bodies and
// returns an error suitable for a 400 response. An empty body decodes into
// the zero value so endpoints with optional bodies can share it.
func Decode(r *http.Request, v any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	err := json.NewDecoder(body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
