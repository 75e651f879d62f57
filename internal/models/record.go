package models

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind selects which collection a record lives in. Blogs and events are
// stored in disjoint collections and never share ids.
type Kind string

const (
	KindBlog  Kind = "blogs"
	KindEvent Kind = "events"
)

// DefaultFont is applied when a record is stored without one.
const DefaultFont = "Arial"

// Record is a blog post or an event. The two kinds share the core publishing
// fields; ContentImageURLs is blog-only (aligned with [IMAGE] markers in the
// content), Link/Date/Location are event-only. Kind is not persisted — the
// collection a record is read from determines it.
type Record struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Kind Kind               `bson:"-" json:"-"`

	Title            string   `bson:"title" json:"title"`
	Content          string   `bson:"content" json:"content"`
	ImageURL         string   `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ContentImageURLs []string `bson:"contentImageUrls,omitempty" json:"contentImageUrls,omitempty"`
	Font             string   `bson:"font" json:"font"`
	CreatedAt        string   `bson:"createdAt" json:"createdAt"` // ISO-8601, set once at creation
	UserID           string   `bson:"userId" json:"userId"`
	UserEmail        string   `bson:"userEmail" json:"userEmail"`

	// Event-only fields
	Link     string `bson:"link,omitempty" json:"link,omitempty"`
	Date     string `bson:"date,omitempty" json:"date,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
}

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrOwnerRequired   = errors.New("record owner is required")
	ErrInvalidKind     = errors.New("invalid record kind")
)

// Validate checks the per-kind field contract before the record hits the
// store. It also applies the default font so stored documents always render.
func (r *Record) Validate() error {
	switch r.Kind {
	case KindBlog, KindEvent:
	default:
		return ErrInvalidKind
	}
	if r.Title == "" {
		return ErrTitleRequired
	}
	if r.Content == "" {
		return ErrContentRequired
	}
	if r.UserID == "" {
		return ErrOwnerRequired
	}
	if r.Kind == KindEvent && len(r.ContentImageURLs) > 0 {
		return errors.New("events cannot carry content images")
	}
	if r.Font == "" {
		r.Font = DefaultFont
	}
	return nil
}
