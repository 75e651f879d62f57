package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/models"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/services"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/store"
)

// RecordWithAuthor is a list item annotated with the resolved author name.
type RecordWithAuthor struct {
	models.Record
	UserName string `json:"userName"`
}

type RecordResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Record  *models.Record `json:"record,omitempty"`
}

type RecordListResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Records []RecordWithAuthor `json:"records"`
	Total   int                `json:"total"`
}

// listRecords returns every record of a kind with author names attached.
// Anyone may read.
func listRecords(w http.ResponseWriter, r *http.Request, kind models.Kind) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	records, err := store.Records.ListAll(ctx, kind)
	if err != nil {
		log.Printf("failed to list %s: %v", kind, err)
		writeJSON(w, http.StatusInternalServerError, RecordListResponse{
			Success: false,
			Message: "Failed to load records",
			Records: []RecordWithAuthor{},
		})
		return
	}

	annotated := make([]RecordWithAuthor, 0, len(records))
	for _, rec := range records {
		annotated = append(annotated, RecordWithAuthor{
			Record:   rec,
			UserName: services.Resolver.ResolveName(ctx, rec.UserID),
		})
	}

	writeJSON(w, http.StatusOK, RecordListResponse{
		Success: true,
		Records: annotated,
		Total:   len(annotated),
	})
}

// listOwnRecords returns the authenticated user's records of a kind.
func listOwnRecords(w http.ResponseWriter, r *http.Request, kind models.Kind) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	records, err := store.Records.ListByOwner(ctx, kind, userID)
	if err != nil {
		log.Printf("failed to list own %s for %s: %v", kind, userID, err)
		writeJSON(w, http.StatusInternalServerError, RecordListResponse{
			Success: false,
			Message: "Failed to load records",
			Records: []RecordWithAuthor{},
		})
		return
	}

	annotated := make([]RecordWithAuthor, 0, len(records))
	for _, rec := range records {
		annotated = append(annotated, RecordWithAuthor{Record: rec, UserName: ""})
	}

	writeJSON(w, http.StatusOK, RecordListResponse{
		Success: true,
		Records: annotated,
		Total:   len(annotated),
	})
}

// updateRecord merges the submitted fields into a record the caller owns.
// The store reduces the payload to the kind's mutable fields, so a hostile
// payload cannot reassign ownership or smuggle in the other kind's shape.
func updateRecord(w http.ResponseWriter, r *http.Request, kind models.Kind) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")

	var fields map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if title, present := fields["title"]; present {
		if s, _ := title.(string); s == "" {
			writeError(w, http.StatusBadRequest, "Title cannot be empty")
			return
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec, err := store.Records.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Record not found")
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to load record")
		}
		return
	}

	if !services.CanMutate(rec, userID) {
		writeError(w, http.StatusForbidden, "Only the owner can edit this record")
		return
	}

	if err := store.Records.Update(ctx, kind, id, fields); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Record not found")
		} else {
			log.Printf("failed to update %s %s: %v", kind, id, err)
			writeError(w, http.StatusInternalServerError, "Failed to update record")
		}
		return
	}

	updated, err := store.Records.GetByID(ctx, kind, id)
	if err != nil {
		// The write went through; return what we know.
		writeJSON(w, http.StatusOK, RecordResponse{Success: true, Message: "Record updated"})
		return
	}

	writeJSON(w, http.StatusOK, RecordResponse{
		Success: true,
		Message: "Record updated",
		Record:  updated,
	})
}

// deleteRecord permanently removes a record the caller owns. Deleting an
// already-deleted id is success, so clients never see an error on a retry.
func deleteRecord(w http.ResponseWriter, r *http.Request, kind models.Kind) {
	userID, ok := requireAuth(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec, err := store.Records.GetByID(ctx, kind, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Already gone — idempotent success
			writeJSON(w, http.StatusOK, RecordResponse{Success: true, Message: "Record deleted"})
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to load record")
		}
		return
	}

	if !services.CanMutate(rec, userID) {
		writeError(w, http.StatusForbidden, "Only the owner can delete this record")
		return
	}

	if err := store.Records.Delete(ctx, kind, id); err != nil {
		log.Printf("failed to delete %s %s: %v", kind, id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete record")
		return
	}

	writeJSON(w, http.StatusOK, RecordResponse{Success: true, Message: "Record deleted"})
}
