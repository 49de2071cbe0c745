package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"showdb/internal/bookmarks"
	"showdb/internal/catalog"
	"showdb/internal/database"
	"showdb/internal/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	dbPath := getEnv("DATABASE_PATH", "./showdb.db")
	port := getEnv("PORT", "8080")
	apiKey := getEnv("TMDB_API_KEY", "")

	if apiKey == "" {
		log.Println("TMDB_API_KEY not set - serving local fallback data only")
	}

	// Initialize database
	db, err := database.Connect(dbPath)
	if err != nil {
		log.Fatal("Database connection failed:", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Initialize catalog gateway and bookmark store
	gateway := catalog.NewGateway(catalog.NewClient(apiKey), catalog.DefaultFixtures())
	store := bookmarks.NewStore(db)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(gateway)
	bookmarkHandler := handlers.NewBookmarkHandler(store)
	posterHandler := handlers.NewPosterHandler()

	// Setup router using standard library ServeMux
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Catalog routes
	mux.HandleFunc("GET /api/trending/{kind}", catalogHandler.GetTrending)
	mux.HandleFunc("GET /api/popular/{kind}", catalogHandler.GetPopular)
	mux.HandleFunc("GET /api/search", catalogHandler.Search)
	mux.HandleFunc("GET /api/similar/{kind}/{id}", catalogHandler.GetSimilar)
	mux.HandleFunc("GET /api/{kind}/{id}", catalogHandler.GetDetails)

	// Bookmark routes
	mux.HandleFunc("GET /api/bookmarks", bookmarkHandler.List)
	mux.HandleFunc("POST /api/bookmarks", bookmarkHandler.Add)
	mux.HandleFunc("GET /api/bookmarks/{kind}/{id}", bookmarkHandler.Contains)
	mux.HandleFunc("DELETE /api/bookmarks/{kind}/{id}", bookmarkHandler.Remove)

	// Poster route
	mux.HandleFunc("GET /api/poster", posterHandler.GetPoster)

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, mux))
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
