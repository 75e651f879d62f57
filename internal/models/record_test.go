package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBlog() *Record {
	return &Record{
		Kind:    KindBlog,
		Title:   "First Light",
		Content: "hello[IMAGE]world",
		ContentImageURLs: []string{
			"https://res.example.com/blog-content-images/one.png",
		},
		UserID:    "user-1",
		UserEmail: "author@example.com",
	}
}

func TestRecordValidate(t *testing.T) {
	t.Run("valid blog passes and gets default font", func(t *testing.T) {
		rec := validBlog()
		assert.NoError(t, rec.Validate())
		assert.Equal(t, DefaultFont, rec.Font)
	})

	t.Run("explicit font is kept", func(t *testing.T) {
		rec := validBlog()
		rec.Font = "Georgia"
		assert.NoError(t, rec.Validate())
		assert.Equal(t, "Georgia", rec.Font)
	})

	t.Run("title required", func(t *testing.T) {
		rec := validBlog()
		rec.Title = ""
		assert.ErrorIs(t, rec.Validate(), ErrTitleRequired)
	})

	t.Run("content required", func(t *testing.T) {
		rec := validBlog()
		rec.Content = ""
		assert.ErrorIs(t, rec.Validate(), ErrContentRequired)
	})

	t.Run("owner required", func(t *testing.T) {
		rec := validBlog()
		rec.UserID = ""
		assert.ErrorIs(t, rec.Validate(), ErrOwnerRequired)
	})

	t.Run("kind required", func(t *testing.T) {
		rec := validBlog()
		rec.Kind = ""
		assert.ErrorIs(t, rec.Validate(), ErrInvalidKind)
	})

	t.Run("valid event passes", func(t *testing.T) {
		rec := &Record{
			Kind:      KindEvent,
			Title:     "Cleanup Day",
			Content:   "Bring gloves.",
			Link:      "https://example.com/signup",
			Date:      "2026-09-12",
			Location:  "Riverside Park",
			UserID:    "user-1",
			UserEmail: "author@example.com",
		}
		assert.NoError(t, rec.Validate())
	})

	t.Run("event rejects content images", func(t *testing.T) {
		rec := &Record{
			Kind:             KindEvent,
			Title:            "Cleanup Day",
			Content:          "Bring gloves.",
			UserID:           "user-1",
			ContentImageURLs: []string{"https://res.example.com/x.png"},
		}
		assert.Error(t, rec.Validate())
	})
}
