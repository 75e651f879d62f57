package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/models"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/services"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/store"
)

// AuthorResponse is the public author page: profile plus everything they
// published. An unresolvable id still yields a page, with the sentinel
// author and empty lists.
type AuthorResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Author  *models.User    `json:"author"`
	Blogs   []models.Record `json:"blogs"`
	Events  []models.Record `json:"events"`
}

// GetAuthor returns an author's profile with their blogs and events.
func GetAuthor(w http.ResponseWriter, r *http.Request) {
	authorID := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	author := services.Resolver.ResolveAuthor(ctx, authorID)
	// Password hash never leaves the store layer on this path
	author.Password = ""

	blogs, err := store.Records.ListByOwner(ctx, models.KindBlog, authorID)
	if err != nil {
		log.Printf("failed to list author blogs for %s: %v", authorID, err)
		blogs = []models.Record{}
	}

	events, err := store.Records.ListByOwner(ctx, models.KindEvent, authorID)
	if err != nil {
		log.Printf("failed to list author events for %s: %v", authorID, err)
		events = []models.Record{}
	}

	writeJSON(w, http.StatusOK, AuthorResponse{
		Success: true,
		Author:  author,
		Blogs:   blogs,
		Events:  events,
	})
}
