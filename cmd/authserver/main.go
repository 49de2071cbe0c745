// The auth server is a standalone process handling signup and login for the
// discovery UI. It shares nothing with the catalog server beyond the handler
// and database packages, so either can run without the other.
package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"showdb/internal/database"
	"showdb/internal/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	dbPath := getEnv("AUTH_DATABASE_PATH", "./showdb-auth.db")
	port := getEnv("AUTH_PORT", "5000")

	db, err := database.Connect(dbPath)
	if err != nil {
		log.Fatal("Database connection failed:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	authHandler := handlers.NewAuthHandler(db)

	r := mux.NewRouter()
	r.Use(corsMiddleware)

	r.HandleFunc("/test", authHandler.Test).Methods(http.MethodGet)
	r.HandleFunc("/signup", authHandler.Signup).Methods(http.MethodPost)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Auth server starting on port %s", port)
	log.Fatal(server.ListenAndServe())
}

// corsMiddleware allows the browser frontend to call this server from another
// origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
