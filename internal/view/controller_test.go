package view

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/models"
)

type updateCall struct {
	id     string
	fields map[string]interface{}
}

// fakeStore records every call so tests can assert that cancels and
// optimistic updates never hit the network.
type fakeStore struct {
	records   []models.Record
	listErr   error
	listCalls int

	updateErr   error
	updateCalls []updateCall

	deleteErr   error
	deleteCalls []string
}

func (f *fakeStore) ListByOwner(_ context.Context, _ models.Kind, _ string) ([]models.Record, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Record, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeStore) Update(_ context.Context, _ models.Kind, id string, fields map[string]interface{}) error {
	f.updateCalls = append(f.updateCalls, updateCall{id: id, fields: fields})
	return f.updateErr
}

func (f *fakeStore) Delete(_ context.Context, _ models.Kind, id string) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.deleteErr
}

func ownedBlogs(n int) []models.Record {
	out := make([]models.Record, n)
	for i := range out {
		out[i] = models.Record{
			ID:      primitive.NewObjectID(),
			Kind:    models.KindBlog,
			Title:   "Post",
			Content: "body",
			Font:    models.DefaultFont,
			UserID:  "owner-1",
		}
	}
	return out
}

func loadedController(t *testing.T, records []models.Record) (*Controller, *fakeStore) {
	t.Helper()
	store := &fakeStore{records: records}
	c := NewController(store, models.KindBlog)
	assert.NoError(t, c.Load(context.Background(), Authenticated, "owner-1"))
	return c, store
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("unauthenticated signals login redirect and stays unloaded", func(t *testing.T) {
		store := &fakeStore{}
		c := NewController(store, models.KindBlog)

		assert.ErrorIs(t, c.Load(ctx, Unauthenticated, ""), ErrLoginRequired)
		assert.Equal(t, Unloaded, c.State())
		assert.Equal(t, 0, store.listCalls)
	})

	t.Run("pending session is not a redirect", func(t *testing.T) {
		c := NewController(&fakeStore{}, models.KindBlog)

		assert.ErrorIs(t, c.Load(ctx, Pending, ""), ErrSessionPending)
		assert.Equal(t, Unloaded, c.State())
	})

	t.Run("authenticated loads own records", func(t *testing.T) {
		c, store := loadedController(t, ownedBlogs(3))

		assert.Equal(t, Loaded, c.State())
		assert.Len(t, c.Records(), 3)
		assert.Equal(t, 1, store.listCalls)
	})

	t.Run("store failure keeps the controller unloaded", func(t *testing.T) {
		store := &fakeStore{listErr: errors.New("unavailable")}
		c := NewController(store, models.KindBlog)

		assert.Error(t, c.Load(ctx, Authenticated, "owner-1"))
		assert.Equal(t, Unloaded, c.State())
	})
}

func TestSelectAndCancels(t *testing.T) {
	records := ownedBlogs(2)
	c, store := loadedController(t, records)

	t.Run("select enters viewing without a network call", func(t *testing.T) {
		assert.NoError(t, c.Select(records[0].ID.Hex()))
		assert.Equal(t, Viewing, c.State())
		assert.Equal(t, records[0].ID, c.Selected().ID)
	})

	t.Run("cancel chain performs no store calls", func(t *testing.T) {
		assert.NoError(t, c.StartEdit())
		assert.NoError(t, c.CancelEdit())
		assert.Equal(t, Viewing, c.State())

		assert.NoError(t, c.RequestDelete())
		assert.NoError(t, c.CancelDelete())
		assert.Equal(t, Viewing, c.State())

		assert.NoError(t, c.Back())
		assert.Equal(t, Loaded, c.State())

		assert.Equal(t, 1, store.listCalls)
		assert.Empty(t, store.updateCalls)
		assert.Empty(t, store.deleteCalls)
	})

	t.Run("selecting an uncached record is refused", func(t *testing.T) {
		assert.ErrorIs(t, c.Select(primitive.NewObjectID().Hex()), ErrInvalidTransition)
	})
}

func TestCommitEdit(t *testing.T) {
	ctx := context.Background()

	t.Run("optimistically replaces the cached record without re-fetching", func(t *testing.T) {
		records := ownedBlogs(2)
		c, store := loadedController(t, records)

		assert.NoError(t, c.Select(records[1].ID.Hex()))
		assert.NoError(t, c.StartEdit())
		c.Draft().Title = "Updated Title"

		assert.NoError(t, c.CommitEdit(ctx))

		assert.Equal(t, Loaded, c.State())
		assert.Equal(t, "Updated Title", c.Records()[1].Title)
		assert.Equal(t, 1, store.listCalls, "commit must not trigger a re-fetch")

		assert.Len(t, store.updateCalls, 1)
		call := store.updateCalls[0]
		assert.Equal(t, records[1].ID.Hex(), call.id)
		assert.Equal(t, "Updated Title", call.fields["title"])
		assert.NotContains(t, call.fields, "userId")
		assert.NotContains(t, call.fields, "createdAt")
	})

	t.Run("store failure rolls the cached list back", func(t *testing.T) {
		records := ownedBlogs(1)
		store := &fakeStore{records: records, updateErr: errors.New("write refused")}
		c := NewController(store, models.KindBlog)
		assert.NoError(t, c.Load(ctx, Authenticated, "owner-1"))

		assert.NoError(t, c.Select(records[0].ID.Hex()))
		assert.NoError(t, c.StartEdit())
		c.Draft().Title = "Doomed Edit"

		assert.Error(t, c.CommitEdit(ctx))
		assert.Equal(t, "Post", c.Records()[0].Title, "failed edit must not stick")
	})

	t.Run("draft edits do not leak into the cache before commit", func(t *testing.T) {
		records := ownedBlogs(1)
		c, _ := loadedController(t, records)

		assert.NoError(t, c.Select(records[0].ID.Hex()))
		assert.NoError(t, c.StartEdit())
		c.Draft().Title = "Half-typed"

		assert.Equal(t, "Post", c.Selected().Title)
		assert.NoError(t, c.CancelEdit())
		assert.Equal(t, "Post", c.Selected().Title)
	})
}

func TestConfirmDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("optimistically removes the second of three without re-fetch", func(t *testing.T) {
		records := ownedBlogs(3)
		c, store := loadedController(t, records)

		assert.NoError(t, c.Select(records[1].ID.Hex()))
		assert.NoError(t, c.RequestDelete())
		assert.NoError(t, c.ConfirmDelete(ctx))

		assert.Equal(t, Loaded, c.State())
		assert.Len(t, c.Records(), 2)
		assert.Equal(t, records[0].ID, c.Records()[0].ID)
		assert.Equal(t, records[2].ID, c.Records()[1].ID)
		assert.Equal(t, 1, store.listCalls)
		assert.Equal(t, []string{records[1].ID.Hex()}, store.deleteCalls)
	})

	t.Run("store failure restores the record at its original position", func(t *testing.T) {
		records := ownedBlogs(3)
		store := &fakeStore{records: records, deleteErr: errors.New("unavailable")}
		c := NewController(store, models.KindBlog)
		assert.NoError(t, c.Load(ctx, Authenticated, "owner-1"))

		assert.NoError(t, c.Select(records[1].ID.Hex()))
		assert.NoError(t, c.RequestDelete())
		assert.Error(t, c.ConfirmDelete(ctx))

		assert.Len(t, c.Records(), 3)
		assert.Equal(t, records[1].ID, c.Records()[1].ID)
	})
}

func TestCommandProtocol(t *testing.T) {
	t.Run("second mutation for a busy record is refused", func(t *testing.T) {
		records := ownedBlogs(1)
		c, store := loadedController(t, records)
		id := records[0].ID.Hex()

		assert.NoError(t, c.Select(id))
		assert.NoError(t, c.StartEdit())
		c.Draft().Title = "First"
		cmd, err := c.DispatchEdit()
		assert.NoError(t, err)
		assert.Equal(t, OpUpdate, cmd.Op)

		// The first command has not resolved yet; a second one for the same
		// record must be refused.
		assert.NoError(t, c.Select(id))
		assert.NoError(t, c.StartEdit())
		c.Draft().Title = "Second"
		_, err = c.DispatchEdit()
		assert.ErrorIs(t, err, ErrMutationInFlight)

		// Once resolved, the record accepts mutations again.
		assert.NoError(t, c.CancelEdit())
		assert.NoError(t, c.Resolve(cmd.ID, nil))
		assert.NoError(t, c.StartEdit())
		_, err = c.DispatchEdit()
		assert.NoError(t, err)

		assert.Empty(t, store.updateCalls, "dispatch alone must not call the store")
	})

	t.Run("resolving an unknown correlation id fails", func(t *testing.T) {
		c, _ := loadedController(t, ownedBlogs(1))

		err := c.Resolve(Command{}.ID, nil)
		assert.ErrorIs(t, err, ErrUnknownCommand)
	})

	t.Run("late failure rolls back a confirmed-optimistic edit", func(t *testing.T) {
		records := ownedBlogs(2)
		c, _ := loadedController(t, records)
		id := records[0].ID.Hex()

		assert.NoError(t, c.Select(id))
		assert.NoError(t, c.StartEdit())
		c.Draft().Title = "Optimistic"
		cmd, err := c.DispatchEdit()
		assert.NoError(t, err)
		assert.Equal(t, "Optimistic", c.Records()[0].Title)

		assert.Error(t, c.Resolve(cmd.ID, errors.New("rejected")))
		assert.Equal(t, "Post", c.Records()[0].Title)
	})
}
