package services

import (
	"context"
	"errors"
	"log"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/models"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/store"
)

// Sentinel display names for authors that cannot be resolved. The list pages
// and the author profile page historically used different wording; both are
// kept.
const (
	UnknownUser   = "Unknown User"
	UnknownAuthor = "Unknown Author"
)

// UserLookup is what the resolver needs from the store.
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByUID(ctx context.Context, uid string) (*models.User, error)
}

// IdentityResolver maps the userId stamped on a record to a display identity.
// Records created before the auth migration carry the old provider's id, so a
// missed primary lookup falls back to an exact-match query on the uid alias
// field. A user that cannot be found either way resolves to a sentinel —
// never an error.
type IdentityResolver struct {
	users UserLookup
	cache *CacheService
}

// Resolver is the process-wide resolver handle, set by InitResolver in main.
var Resolver *IdentityResolver

func InitResolver(users UserLookup) *IdentityResolver {
	Resolver = NewIdentityResolver(users, Cache)
	return Resolver
}

func NewIdentityResolver(users UserLookup, cache *CacheService) *IdentityResolver {
	return &IdentityResolver{users: users, cache: cache}
}

// lookup runs the two-stage resolution. Returns nil with no error when the
// user simply does not exist.
func (r *IdentityResolver) lookup(ctx context.Context, id string) (*models.User, error) {
	user, err := r.users.GetUserByID(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	user, err = r.users.FindUserByUID(ctx, id)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return nil, nil
}

// ResolveName returns the display name for a user id, falling back to the
// "Unknown User" sentinel on a miss or a transport failure. Names are cached
// in Redis since list pages resolve the same authors over and over.
func (r *IdentityResolver) ResolveName(ctx context.Context, id string) string {
	if id == "" {
		return UnknownUser
	}

	cacheKey := CacheKey("author-name", id)
	if r.cache != nil {
		if name, ok, _ := r.cache.GetString(cacheKey); ok {
			return name
		}
	}

	user, err := r.lookup(ctx, id)
	if err != nil {
		log.Printf("identity resolution failed for %s: %v", id, err)
		return UnknownUser
	}
	if user == nil || user.Name == "" {
		return UnknownUser
	}

	if r.cache != nil {
		if err := r.cache.SetString(cacheKey, user.Name); err != nil {
			log.Printf("failed to cache author name for %s: %v", id, err)
		}
	}
	return user.Name
}

// ResolveAuthor returns the full profile for the author page. A miss or a
// transport failure yields a sentinel profile named "Unknown Author".
func (r *IdentityResolver) ResolveAuthor(ctx context.Context, id string) *models.User {
	user, err := r.lookup(ctx, id)
	if err != nil {
		log.Printf("author resolution failed for %s: %v", id, err)
		return &models.User{Name: UnknownAuthor}
	}
	if user == nil {
		return &models.User{Name: UnknownAuthor}
	}
	return user
}
