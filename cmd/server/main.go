package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"binroute-backend/internal/handlers"
	"binroute-backend/internal/middleware"
	"binroute-backend/internal/services"
	"binroute-backend/internal/websocket"
	"binroute-backend/internal/xmlstore"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("🚀 BINROUTE BACKEND SERVER STARTING")
	log.Println("═══════════════════════════════════════════════════════════════════")

	// Load .env file
	log.Println("📂 Loading environment variables...")
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Warning: .env file not found, using environment variables from system")
	} else {
		log.Println("✅ .env file loaded successfully")
	}

	if os.Getenv("APP_JWT_SECRET") == "" {
		log.Fatal("APP_JWT_SECRET environment variable is required")
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
		log.Printf("⚠️  DATA_DIR not set, using default: %s", dataDir)
	}

	// Open the document store
	log.Printf("📁 Opening document store at %s...", dataDir)
	store := xmlstore.New(dataDir)

	// Seed missing documents
	log.Println("🌱 Seeding missing documents...")
	if err := xmlstore.SeedUsers(store); err != nil {
		log.Fatalf("user seeding failed: %v", err)
	}
	if err := xmlstore.SeedBins(store); err != nil {
		log.Fatalf("bin seeding failed: %v", err)
	}
	if err := xmlstore.SeedTours(store); err != nil {
		log.Fatalf("tour seeding failed: %v", err)
	}
	log.Println("✅ Document store ready")

	// Selection bridge (map page -> report page)
	selectionTTL := services.DefaultSelectionTTL
	if minutes := os.Getenv("SELECTION_TTL_MINUTES"); minutes != "" {
		if n, err := strconv.Atoi(minutes); err == nil && n > 0 {
			selectionTTL = time.Duration(n) * time.Minute
		}
	}
	selections := services.NewSelectionStore(selectionTTL)
	go selections.Run()
	log.Printf("✅ Selection store started (TTL %s)", selectionTTL)

	// Initialize WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run()
	log.Println("✅ WebSocket hub started")

	// Create router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Authentication routes (no auth required)
	r.Post("/api/auth/login", handlers.Login(store))

	// WebSocket endpoint (authentication handled in handler via query param)
	r.Get("/ws", websocket.HandleWebSocket(wsHub))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Bins endpoints
		r.Get("/bins", handlers.GetBins(store))
		r.Post("/bins/update", handlers.UpdateBinStatus(store, wsHub))

		// Tour and vehicle lookups
		r.Get("/tours", handlers.GetTours(store))
		r.Get("/vehicles", handlers.GetVehicles(store))

		// Map selection bridge
		r.Post("/selection", handlers.CreateSelection(selections))
		r.Get("/selection/{token}", handlers.GetSelection(selections))
		r.Delete("/selection/{token}", handlers.ClearSelection(selections))

		// Report listing
		r.Get("/reports", handlers.GetReports(store))

		// Supervisor endpoints (require authentication)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth)

			r.Get("/auth/status", handlers.GetAuthStatus(store))
			r.Get("/tours/active", handlers.GetActiveTour(store))
			r.Post("/tours/plan", handlers.PlanRoute(store))
			r.Post("/reports", handlers.CreateReport(store, wsHub))
		})

		// Admin endpoints
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth)
			r.Use(middleware.RequireRole("admin"))

			r.Get("/users", handlers.GetUsers(store))
		})
	})

	// Get port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("⚠️  PORT not set, using default: %s", port)
	}

	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("✅ ALL INITIALIZATION COMPLETE")
	log.Printf("🚀 Server starting on http://localhost:%s", port)
	log.Println("═══════════════════════════════════════════════════════════════════")

	// Start server
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
