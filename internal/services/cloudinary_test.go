package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeUploader returns a URL derived from the filename, after a per-file
// delay so completion order differs from input order.
type fakeUploader struct {
	mu     sync.Mutex
	calls  int
	delays map[string]time.Duration
	failOn string
}

func (f *fakeUploader) UploadFileFromHeader(_ context.Context, fh *multipart.FileHeader, folder string) (string, error) {
	if d, ok := f.delays[fh.Filename]; ok {
		time.Sleep(d)
	}
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if fh.Filename == f.failOn {
		return "", errors.New("upload failed")
	}
	return fmt.Sprintf("https://res.example.com/%s/%s", folder, fh.Filename), nil
}

func headers(names ...string) []*multipart.FileHeader {
	out := make([]*multipart.FileHeader, len(names))
	for i, n := range names {
		out[i] = &multipart.FileHeader{Filename: n}
	}
	return out
}

func TestUploadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("preserves input order even when uploads finish out of order", func(t *testing.T) {
		up := &fakeUploader{delays: map[string]time.Duration{
			"a.png": 30 * time.Millisecond,
			"b.png": 1 * time.Millisecond,
			"c.png": 15 * time.Millisecond,
		}}

		urls, err := UploadAll(ctx, up, headers("a.png", "b.png", "c.png"), "blog-content-images")

		assert.NoError(t, err)
		assert.Equal(t, []string{
			"https://res.example.com/blog-content-images/a.png",
			"https://res.example.com/blog-content-images/b.png",
			"https://res.example.com/blog-content-images/c.png",
		}, urls)
	})

	t.Run("any single failure fails the whole batch", func(t *testing.T) {
		up := &fakeUploader{failOn: "b.png"}

		urls, err := UploadAll(ctx, up, headers("a.png", "b.png", "c.png"), "blog-content-images")

		assert.Error(t, err)
		assert.Nil(t, urls)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		up := &fakeUploader{}

		urls, err := UploadAll(ctx, up, nil, "images")

		assert.NoError(t, err)
		assert.Empty(t, urls)
		assert.Equal(t, 0, up.calls)
	})
}
