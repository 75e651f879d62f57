package routes

import (
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/handlers"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r *chi.Mux) {
	// Auth routes
	r.Post("/api/auth/signup", handlers.Signup)
	r.Post("/api/auth/signin", handlers.Signin)
	r.Post("/api/auth/signout", handlers.Signout)
	r.Get("/api/auth/me", handlers.GetMe)

	// Blog routes
	r.Post("/api/blogs", handlers.CreateBlog)
	r.Get("/api/blogs", handlers.GetBlogs)
	r.Get("/api/blogs/mine", handlers.GetMyBlogs)
	r.Get("/api/blogs/{id}", handlers.GetBlog)
	r.Put("/api/blogs/{id}", handlers.UpdateBlog)
	r.Delete("/api/blogs/{id}", handlers.DeleteBlog)

	// Event routes
	r.Post("/api/events", handlers.CreateEvent)
	r.Get("/api/events", handlers.GetEvents)
	r.Get("/api/events/mine", handlers.GetMyEvents)
	r.Get("/api/events/{id}", handlers.GetEvent)
	r.Put("/api/events/{id}", handlers.UpdateEvent)
	r.Delete("/api/events/{id}", handlers.DeleteEvent)

	// Author pages
	r.Get("/api/authors/{id}", handlers.GetAuthor)

	// Account routes
	r.Get("/api/account", handlers.GetAccount)
	r.Put("/api/account/picture", handlers.UpdateProfilePicture)

	// File upload routes
	r.Post("/api/upload", handlers.UploadFile)
}
