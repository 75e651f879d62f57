package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/models"
)

func TestSanitizeUpdate(t *testing.T) {
	t.Run("strips identity and creation fields", func(t *testing.T) {
		clean := sanitizeUpdate(models.KindBlog, map[string]interface{}{
			"title":     "New Title",
			"content":   "new body",
			"_id":       "attacker-chosen",
			"id":        "attacker-chosen",
			"userId":    "attacker",
			"userEmail": "attacker@example.com",
			"createdAt": "1970-01-01T00:00:00Z",
		})

		assert.Equal(t, "New Title", clean["title"])
		assert.Equal(t, "new body", clean["content"])
		for _, k := range []string{"_id", "id", "userId", "userEmail", "createdAt"} {
			assert.NotContains(t, clean, k)
		}
	})

	t.Run("event-only fields pass through on events", func(t *testing.T) {
		clean := sanitizeUpdate(models.KindEvent, map[string]interface{}{
			"font":     "Georgia",
			"imageUrl": "https://res.example.com/images/x.png",
			"link":     "https://example.com",
			"date":     "2026-09-12",
			"location": "Riverside Park",
		})

		assert.Len(t, clean, 5)
	})

	t.Run("an event cannot acquire blog fields", func(t *testing.T) {
		clean := sanitizeUpdate(models.KindEvent, map[string]interface{}{
			"title":            "Edited Event",
			"contentImageUrls": []string{"https://res.example.com/blog-content-images/x.png"},
			"bogusField":       "anything",
		})

		assert.Equal(t, "Edited Event", clean["title"])
		assert.NotContains(t, clean, "contentImageUrls")
		assert.NotContains(t, clean, "bogusField")
	})

	t.Run("a blog cannot acquire event fields", func(t *testing.T) {
		clean := sanitizeUpdate(models.KindBlog, map[string]interface{}{
			"contentImageUrls": []string{"https://res.example.com/blog-content-images/x.png"},
			"date":             "2026-09-12",
			"location":         "Riverside Park",
			"link":             "https://example.com",
		})

		assert.Contains(t, clean, "contentImageUrls")
		for _, k := range []string{"date", "location", "link"} {
			assert.NotContains(t, clean, k)
		}
	})

	t.Run("payload with no writable fields sanitizes to empty", func(t *testing.T) {
		clean := sanitizeUpdate(models.KindBlog, map[string]interface{}{"userId": "x", "id": "y"})

		assert.Empty(t, clean)
	})
}
