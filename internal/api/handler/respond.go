package handler

import (
	"encoding/json"
	"net/http"
)

// WriteJSON sets the JSON content type, writes status and encodes v. The
// status line is already sent when encoding fails, so the returned error is
// only useful for logging.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes {"error": msg} with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) error {
	return WriteJSON(w, status, map[string]string{"error": msg})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	_ = WriteJSON(w, status, v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	_ = WriteError(w, status, msg)
}

// NotFound answers unknown paths with a JSON error so API clients never
// have to parse chi's plain-text default. Method mismatches on known paths
// keep the router's 405.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, "not found")
}
