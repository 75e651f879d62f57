package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/models"
)

func TestCanMutate(t *testing.T) {
	rec := &models.Record{Kind: models.KindBlog, UserID: "owner-1"}

	assert.True(t, CanMutate(rec, "owner-1"))
	assert.False(t, CanMutate(rec, "someone-else"))
	assert.False(t, CanMutate(rec, ""), "unauthenticated caller is always denied")
	assert.False(t, CanMutate(nil, "owner-1"))
}
