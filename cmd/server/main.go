package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/joho/godotenv"

	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/config"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/database"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/handlers"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/middleware"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/routes"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/services"
	"github.com/bhanujongit4/Rise.Foundation.Connect/internal/store"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Load env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	// Log connection attempt (without showing password)
	log.Printf("Connecting to MongoDB...")
	if cfg.MongoURI != "" {
		// Mask password in log for security
		maskedURI := cfg.MongoURI
		if strings.Contains(maskedURI, "@") {
			parts := strings.Split(maskedURI, "@")
			if len(parts) > 0 && strings.Contains(parts[0], ":") {
				userPass := strings.Split(parts[0], ":")
				if len(userPass) >= 3 {
					maskedURI = strings.Replace(maskedURI, userPass[2], "***", 1)
				}
			}
		}
		log.Printf("MongoDB URI: %s", maskedURI)
	}

	// Connect to MongoDB
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	// Connect to Redis
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Initialize Cloudinary service
	if cfg.CloudinaryName != "" && cfg.CloudinaryAPIKey != "" && cfg.CloudinaryAPISecret != "" {
		if err := handlers.InitCloudinaryService(cfg); err != nil {
			log.Printf("Warning: Failed to initialize Cloudinary: %v", err)
			log.Println("File uploads will not be available")
		} else {
			log.Println("✅ Cloudinary service initialized")
		}
	} else {
		log.Println("Warning: Cloudinary credentials not found. File uploads will not be available")
	}

	// Process-wide service handles: record store and identity resolver
	recordStore := store.Init(database.DB)
	services.InitResolver(recordStore)
	log.Println("✅ Record store and identity resolver initialized")

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	routes.SetupRoutes(r)

	// Log registered routes for debugging
	log.Println("📋 Registered routes:")
	log.Println("  GET  /health")
	log.Println("  POST /api/auth/signup")
	log.Println("  POST /api/auth/signin")
	log.Println("  GET  /api/auth/me")
	log.Println("  POST /api/blogs")
	log.Println("  GET  /api/blogs")
	log.Println("  GET  /api/blogs/mine")
	log.Println("  GET  /api/blogs/{id}")
	log.Println("  POST /api/events")
	log.Println("  GET  /api/events")
	log.Println("  GET  /api/authors/{id}")
	log.Println("  POST /api/upload")

	log.Printf("🚀 Rise Foundation Connect backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
