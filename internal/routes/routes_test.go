package routes

import (
	"fmt"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestSetupRoutes(t *testing.T) {
	r := chi.NewRouter()
	SetupRoutes(r)

	endpoints := []struct {
		method string
		path   string
	}{
		{"POST", "/api/auth/signup"},
		{"POST", "/api/auth/signin"},
		{"POST", "/api/auth/signout"},
		{"GET", "/api/auth/me"},
		{"POST", "/api/blogs"},
		{"GET", "/api/blogs"},
		{"GET", "/api/blogs/mine"},
		{"GET", "/api/blogs/abc123"},
		{"PUT", "/api/blogs/abc123"},
		{"DELETE", "/api/blogs/abc123"},
		{"POST", "/api/events"},
		{"GET", "/api/events"},
		{"GET", "/api/events/mine"},
		{"GET", "/api/events/abc123"},
		{"PUT", "/api/events/abc123"},
		{"DELETE", "/api/events/abc123"},
		{"GET", "/api/authors/abc123"},
		{"GET", "/api/account"},
		{"PUT", "/api/account/picture"},
		{"POST", "/api/upload"},
	}

	for _, ep := range endpoints {
		t.Run(fmt.Sprintf("%s %s", ep.method, ep.path), func(t *testing.T) {
			rctx := chi.NewRouteContext()
			assert.True(t, r.Match(rctx, ep.method, ep.path))
		})
	}
}
