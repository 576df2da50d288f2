package api

import (
	"encoding/json"
	"net/http"
)

// maxBodySize caps JSON request bodies; marketplace payloads are small.
const maxBodySize = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageResponse{Message: msg})
}

// writeUnauthorized is the single rejection path of the authorization
// gate. Every failure mode produces this exact response so callers cannot
// distinguish a bad token from a logged-out one.
func writeUnauthorized(w http.ResponseWriter) {
	writeMessage(w, http.StatusUnauthorized, "Unauthorized")
}

// decodeJSON reads a JSON body into T, replying 400 on malformed input.
// The boolean reports whether the caller should proceed.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var v T
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request")
		return v, false
	}
	return v, true
}
