package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/models"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/services"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/store"
)

// EventDetailResponse is the single-event payload. Event content is rendered
// as one opaque block — no marker processing.
type EventDetailResponse struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message,omitempty"`
	Record   *models.Record `json:"record,omitempty"`
	UserName string         `json:"userName,omitempty"`
}

// CreateEvent publishes an event. Multipart form: title, content, link,
// date, location, font and an optional image.
func CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	title := r.FormValue("title")
	content := r.FormValue("content")

	if title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}
	if content == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	user, err := store.Records.GetUserByID(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	var imageURL string
	if file, fh, err := r.FormFile("image"); err == nil {
		defer file.Close()
		if cloudinaryService == nil {
			writeError(w, http.StatusServiceUnavailable, "File uploads are not available")
			return
		}
		imageURL, err = cloudinaryService.UploadFileFromHeader(ctx, fh, services.FolderEventImages)
		if err != nil {
			log.Printf("failed to upload event image: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to upload image")
			return
		}
	}

	rec := &models.Record{
		Kind:      models.KindEvent,
		Title:     title,
		Content:   content,
		ImageURL:  imageURL,
		Font:      r.FormValue("font"),
		UserID:    userID,
		UserEmail: user.Email,
		Link:      r.FormValue("link"),
		Date:      r.FormValue("date"),
		Location:  r.FormValue("location"),
	}
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := store.Records.Create(ctx, rec); err != nil {
		log.Printf("failed to create event: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}

	writeJSON(w, http.StatusCreated, RecordResponse{
		Success: true,
		Message: "Event created",
		Record:  rec,
	})
}

// GetEvents lists all events with author names. Public.
func GetEvents(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, models.KindEvent)
}

// GetMyEvents lists the authenticated user's events.
func GetMyEvents(w http.ResponseWriter, r *http.Request) {
	listOwnRecords(w, r, models.KindEvent)
}

// GetEvent returns one event.
func GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec, err := store.Records.GetByID(ctx, models.KindEvent, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, EventDetailResponse{Success: false, Message: "Event not found"})
		} else {
			writeJSON(w, http.StatusInternalServerError, EventDetailResponse{Success: false, Message: "Failed to load event"})
		}
		return
	}

	writeJSON(w, http.StatusOK, EventDetailResponse{
		Success:  true,
		Record:   rec,
		UserName: services.Resolver.ResolveName(ctx, rec.UserID),
	})
}

// UpdateEvent merges submitted fields into an owned event.
func UpdateEvent(w http.ResponseWriter, r *http.Request) {
	updateRecord(w, r, models.KindEvent)
}

// DeleteEvent permanently removes an owned event.
func DeleteEvent(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, models.KindEvent)
}
