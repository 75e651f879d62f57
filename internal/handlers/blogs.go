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
	"github.com/bhanujongit4/Rise.Foundation.Connect/pkg/compose"
)

// BlogDetailResponse carries the raw record plus the interleaved segments the
// client renders, and the resolved author name.
type BlogDetailResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message,omitempty"`
	Record   *models.Record    `json:"record,omitempty"`
	Segments []compose.Segment `json:"segments,omitempty"`
	UserName string            `json:"userName,omitempty"`
}

// CreateBlog publishes a blog post. Multipart form: title, content, font,
// an optional mainImage and any number of contentImages whose order must
// match the [IMAGE] markers in the content.
func CreateBlog(w http.ResponseWriter, r *http.Request) {
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
	font := r.FormValue("font")

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

	// The record carries the owner's email alongside the id
	user, err := store.Records.GetUserByID(ctx, userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load user")
		return
	}

	var imageURL string
	if file, fh, err := r.FormFile("mainImage"); err == nil {
		defer file.Close()
		if cloudinaryService == nil {
			writeError(w, http.StatusServiceUnavailable, "File uploads are not available")
			return
		}
		imageURL, err = cloudinaryService.UploadFileFromHeader(ctx, fh, services.FolderBlogImages)
		if err != nil {
			log.Printf("failed to upload main image: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to upload main image")
			return
		}
	}

	var contentImageURLs []string
	if r.MultipartForm != nil {
		files := r.MultipartForm.File["contentImages"]
		if len(files) > 0 {
			if cloudinaryService == nil {
				writeError(w, http.StatusServiceUnavailable, "File uploads are not available")
				return
			}
			contentImageURLs, err = services.UploadAll(ctx, cloudinaryService, files, services.FolderBlogContentImages)
			if err != nil {
				log.Printf("failed to upload content images: %v", err)
				writeError(w, http.StatusInternalServerError, "Failed to upload content images")
				return
			}
		}
	}

	rec := &models.Record{
		Kind:             models.KindBlog,
		Title:            title,
		Content:          content,
		ImageURL:         imageURL,
		ContentImageURLs: contentImageURLs,
		Font:             font,
		UserID:           userID,
		UserEmail:        user.Email,
	}
	if err := rec.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := store.Records.Create(ctx, rec); err != nil {
		log.Printf("failed to create blog: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create blog post")
		return
	}

	writeJSON(w, http.StatusCreated, RecordResponse{
		Success: true,
		Message: "Blog post created",
		Record:  rec,
	})
}

// GetBlogs lists all blog posts with author names. Public.
func GetBlogs(w http.ResponseWriter, r *http.Request) {
	listRecords(w, r, models.KindBlog)
}

// GetMyBlogs lists the authenticated user's blog posts.
func GetMyBlogs(w http.ResponseWriter, r *http.Request) {
	listOwnRecords(w, r, models.KindBlog)
}

// GetBlog returns one blog post with its content pre-split into segments:
// text, then image-and-text for each marker that has an uploaded image.
func GetBlog(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec, err := store.Records.GetByID(ctx, models.KindBlog, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, BlogDetailResponse{Success: false, Message: "Blog post not found"})
		} else {
			writeJSON(w, http.StatusInternalServerError, BlogDetailResponse{Success: false, Message: "Failed to load blog post"})
		}
		return
	}

	writeJSON(w, http.StatusOK, BlogDetailResponse{
		Success:  true,
		Record:   rec,
		Segments: compose.Render(rec.Content, rec.ContentImageURLs),
		UserName: services.Resolver.ResolveName(ctx, rec.UserID),
	})
}

// UpdateBlog merges submitted fields into an owned blog post.
func UpdateBlog(w http.ResponseWriter, r *http.Request) {
	updateRecord(w, r, models.KindBlog)
}

// DeleteBlog permanently removes an owned blog post.
func DeleteBlog(w http.ResponseWriter, r *http.Request) {
	deleteRecord(w, r, models.KindBlog)
}
