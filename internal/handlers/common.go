package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/services"
)

func extractBearerToken(header string) string {
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// requireAuth validates the session and returns the authenticated user's ID.
// Returns ("", false) if not authenticated.
func requireAuth(r *http.Request) (string, bool) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return "", false
	}
	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		return "", false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}
