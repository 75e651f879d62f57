package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/services"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/store"
)

type ProfilePictureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
}

// GetAccount returns the authenticated user's own profile.
func GetAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user, err := store.Records.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
		} else {
			writeError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Success: true,
		Message: "OK",
		User:    user,
	})
}

// UpdateProfilePicture uploads a new profile picture and stores its URL.
// The picture URL is the only user field writable through this service.
func UpdateProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if cloudinaryService == nil {
		writeError(w, http.StatusServiceUnavailable, "File uploads are not available")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, fh, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "No file provided: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	url, err := cloudinaryService.UploadFileFromHeader(ctx, fh, services.FolderEventImages)
	if err != nil {
		log.Printf("failed to upload profile picture: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload profile picture")
		return
	}

	if err := store.Records.UpdateUserProfilePicture(ctx, userID, url); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
		} else {
			log.Printf("failed to save profile picture for %s: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "Failed to save profile picture")
		}
		return
	}

	writeJSON(w, http.StatusOK, ProfilePictureResponse{
		Success: true,
		Message: "Profile picture updated",
		URL:     url,
	})
}
