// Package view holds the session-scoped controller behind the "your posts"
// list/detail screens: a cache of the signed-in user's own records that
// mutations are applied to optimistically and reconciled against the store's
// response.
package view

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/models"
)

// AuthStatus mirrors the session boundary: a controller only loads once the
// identity is authenticated.
type AuthStatus int

const (
	Unauthenticated AuthStatus = iota
	Authenticated
	Pending
)

// State is the controller's position in the list/detail flow.
type State int

const (
	Unloaded State = iota
	Loaded
	Viewing
	Editing
	ConfirmingDelete
)

var (
	// ErrLoginRequired signals the caller to redirect to authentication.
	ErrLoginRequired = errors.New("login required")
	// ErrSessionPending means the identity is still resolving; try again.
	ErrSessionPending = errors.New("session pending")
	// ErrInvalidTransition is returned for out-of-order state changes.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrMutationInFlight refuses a second mutation for a record whose
	// previous one has not resolved yet.
	ErrMutationInFlight = errors.New("mutation already in flight for record")
	// ErrUnknownCommand is returned when resolving a correlation id the
	// controller did not issue (or already resolved).
	ErrUnknownCommand = errors.New("unknown command")
)

// Store is what the controller needs from the record store.
type Store interface {
	ListByOwner(ctx context.Context, kind models.Kind, userID string) ([]models.Record, error)
	Update(ctx context.Context, kind models.Kind, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, kind models.Kind, id string) error
}

// Op is a mutation type.
type Op string

const (
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

// Command is one optimistic mutation. The ID correlates the optimistic
// application with the store's eventual result.
type Command struct {
	ID       uuid.UUID
	Op       Op
	RecordID string
	Fields   map[string]interface{}
}

// pending remembers what a command changed so a failed result can be rolled
// back exactly.
type pending struct {
	cmd      Command
	snapshot models.Record
	index    int
}

// Controller caches one user's records of one kind and walks the
// Unloaded → Loaded → Viewing → Editing/ConfirmingDelete flow. It is a
// single-session object and is not safe for concurrent use; the surrounding
// event loop serializes calls.
type Controller struct {
	store  Store
	kind   models.Kind
	userID string

	state    State
	records  []models.Record
	selected string // id of the record in Viewing/Editing/ConfirmingDelete
	draft    *models.Record

	pending  map[uuid.UUID]pending
	byRecord map[string]uuid.UUID
}

func NewController(store Store, kind models.Kind) *Controller {
	return &Controller{
		store:    store,
		kind:     kind,
		state:    Unloaded,
		pending:  make(map[uuid.UUID]pending),
		byRecord: make(map[string]uuid.UUID),
	}
}

func (c *Controller) State() State { return c.state }

// Records returns the cached list. Callers must treat it as read-only.
func (c *Controller) Records() []models.Record { return c.records }

// Selected returns the record currently being viewed, edited or
// delete-confirmed, or nil.
func (c *Controller) Selected() *models.Record {
	if c.selected == "" {
		return nil
	}
	if i := c.indexOf(c.selected); i >= 0 {
		return &c.records[i]
	}
	return nil
}

// Draft returns the editable copy seeded by StartEdit. Mutating it does not
// touch the cached list until CommitEdit.
func (c *Controller) Draft() *models.Record { return c.draft }

// Load fetches the user's own records and enters Loaded. An unauthenticated
// identity never reaches Loaded; the caller should redirect to login.
func (c *Controller) Load(ctx context.Context, status AuthStatus, userID string) error {
	switch status {
	case Pending:
		return ErrSessionPending
	case Authenticated:
	default:
		return ErrLoginRequired
	}
	if c.state != Unloaded {
		return ErrInvalidTransition
	}

	records, err := c.store.ListByOwner(ctx, c.kind, userID)
	if err != nil {
		return err
	}
	c.userID = userID
	c.records = records
	c.state = Loaded
	return nil
}

// Select moves Loaded → Viewing for one cached record. No network call.
func (c *Controller) Select(id string) error {
	if c.state != Loaded {
		return ErrInvalidTransition
	}
	if c.indexOf(id) < 0 {
		return ErrInvalidTransition
	}
	c.selected = id
	c.state = Viewing
	return nil
}

// Back cancels Viewing → Loaded.
func (c *Controller) Back() error {
	if c.state != Viewing {
		return ErrInvalidTransition
	}
	c.selected = ""
	c.state = Loaded
	return nil
}

// StartEdit seeds an editable copy of the selected record.
func (c *Controller) StartEdit() error {
	if c.state != Viewing {
		return ErrInvalidTransition
	}
	rec := c.Selected()
	if rec == nil {
		return ErrInvalidTransition
	}
	draft := *rec
	c.draft = &draft
	c.state = Editing
	return nil
}

// CancelEdit discards the draft, Editing → Viewing. No network call.
func (c *Controller) CancelEdit() error {
	if c.state != Editing {
		return ErrInvalidTransition
	}
	c.draft = nil
	c.state = Viewing
	return nil
}

// RequestDelete moves Viewing → ConfirmingDelete.
func (c *Controller) RequestDelete() error {
	if c.state != Viewing {
		return ErrInvalidTransition
	}
	c.state = ConfirmingDelete
	return nil
}

// CancelDelete moves ConfirmingDelete → Viewing. No network call.
func (c *Controller) CancelDelete() error {
	if c.state != ConfirmingDelete {
		return ErrInvalidTransition
	}
	c.state = Viewing
	return nil
}

// DispatchEdit turns the draft into an update command and applies it to the
// cached list optimistically. The store call happens elsewhere; the result
// comes back through Resolve. A record with an unresolved command refuses a
// second one.
func (c *Controller) DispatchEdit() (Command, error) {
	if c.state != Editing || c.draft == nil {
		return Command{}, ErrInvalidTransition
	}
	id := c.draft.ID.Hex()
	if _, busy := c.byRecord[id]; busy {
		return Command{}, ErrMutationInFlight
	}
	i := c.indexOf(id)
	if i < 0 {
		return Command{}, ErrInvalidTransition
	}

	cmd := Command{
		ID:       uuid.New(),
		Op:       OpUpdate,
		RecordID: id,
		Fields:   editableFields(c.draft),
	}

	p := pending{cmd: cmd, snapshot: c.records[i], index: i}
	c.records[i] = *c.draft
	c.pending[cmd.ID] = p
	c.byRecord[id] = cmd.ID

	c.draft = nil
	c.selected = ""
	c.state = Loaded
	return cmd, nil
}

// DispatchDelete removes the selected record from the cached list
// optimistically and issues a delete command.
func (c *Controller) DispatchDelete() (Command, error) {
	if c.state != ConfirmingDelete {
		return Command{}, ErrInvalidTransition
	}
	id := c.selected
	if _, busy := c.byRecord[id]; busy {
		return Command{}, ErrMutationInFlight
	}
	i := c.indexOf(id)
	if i < 0 {
		return Command{}, ErrInvalidTransition
	}

	cmd := Command{
		ID:       uuid.New(),
		Op:       OpDelete,
		RecordID: id,
	}

	p := pending{cmd: cmd, snapshot: c.records[i], index: i}
	c.records = append(c.records[:i], c.records[i+1:]...)
	c.pending[cmd.ID] = p
	c.byRecord[id] = cmd.ID

	c.selected = ""
	c.state = Loaded
	return cmd, nil
}

// Resolve reconciles a command with the store's response: confirm on success,
// roll the cached list back to the pre-command snapshot on failure. The
// store's answer is authoritative either way.
func (c *Controller) Resolve(cmdID uuid.UUID, storeErr error) error {
	p, ok := c.pending[cmdID]
	if !ok {
		return ErrUnknownCommand
	}
	delete(c.pending, cmdID)
	delete(c.byRecord, p.cmd.RecordID)

	if storeErr == nil {
		return nil
	}

	switch p.cmd.Op {
	case OpUpdate:
		if i := c.indexOf(p.cmd.RecordID); i >= 0 {
			c.records[i] = p.snapshot
		}
	case OpDelete:
		i := p.index
		if i > len(c.records) {
			i = len(c.records)
		}
		c.records = append(c.records[:i], append([]models.Record{p.snapshot}, c.records[i:]...)...)
	}
	return storeErr
}

// CommitEdit dispatches the draft, runs the store update and reconciles.
// Convenience for callers without their own event loop.
func (c *Controller) CommitEdit(ctx context.Context) error {
	cmd, err := c.DispatchEdit()
	if err != nil {
		return err
	}
	return c.Resolve(cmd.ID, c.store.Update(ctx, c.kind, cmd.RecordID, cmd.Fields))
}

// ConfirmDelete dispatches the delete, runs it and reconciles.
func (c *Controller) ConfirmDelete(ctx context.Context) error {
	cmd, err := c.DispatchDelete()
	if err != nil {
		return err
	}
	return c.Resolve(cmd.ID, c.store.Delete(ctx, c.kind, cmd.RecordID))
}

func (c *Controller) indexOf(id string) int {
	for i := range c.records {
		if c.records[i].ID.Hex() == id {
			return i
		}
	}
	return -1
}

// editableFields builds the update payload from a draft. Identity and
// creation fields are never part of it.
func editableFields(r *models.Record) map[string]interface{} {
	fields := map[string]interface{}{
		"title":   r.Title,
		"content": r.Content,
		"font":    r.Font,
	}
	if r.ImageURL != "" {
		fields["imageUrl"] = r.ImageURL
	}
	if r.Kind == models.KindBlog && r.ContentImageURLs != nil {
		fields["contentImageUrls"] = r.ContentImageURLs
	}
	if r.Kind == models.KindEvent {
		fields["link"] = r.Link
		fields["date"] = r.Date
		fields["location"] = r.Location
	}
	return fields
}
