package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheapstop/backend-go/api"
	"github.com/cheapstop/backend-go/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env (optional, for local dev)
	_ = godotenv.Load()

	// Config
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Optional database: the search pipeline never uses it, it only backs
	// the /test diagnostic endpoint. Run without one rather than failing.
	var store *storage.PostgresStore
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		s, err := storage.NewPostgresStore(dbURL)
		if err != nil {
			log.Printf("Database unavailable, continuing without it: %v", err)
		} else {
			store = s
			defer store.Close()
		}
	}

	// Initialize Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// Routes
	handler := api.NewHandler(store)
	r.Get("/", handler.Root)
	r.Post("/api/search", handler.Search)
	r.Get("/test", handler.DBStatus)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Start Server
	server := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		fmt.Printf("CheapStop backend running on port %s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
