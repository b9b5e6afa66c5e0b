package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flashcards/internal/config"
	"flashcards/internal/database"
	"flashcards/internal/deck"
	"flashcards/internal/handlers"
	"flashcards/internal/repository"
	"flashcards/internal/service"
	"flashcards/internal/source"
	"flashcards/internal/templates"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// The deck library is only opened when the deck is read from it
	var decks source.DeckStore
	if source.NeedsDatabase(cfg.DeckSource) {
		db, err := database.InitializeWithConfig(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize database: %v", err)
		} else {
			defer db.Close()
			log.Printf("Database connection established (type: %s)", cfg.DatabaseType)

			if err := db.RunMigrations(); err != nil {
				log.Printf("Warning: Failed to run migrations: %v", err)
			} else {
				decks = repository.NewDeckRepository(db)
			}
		}
	}

	// Fetch the deck once; any failure falls back to the sample deck
	ctx, cancel := context.Background(), context.CancelFunc(func() {})
	if cfg.FetchTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.FetchTimeout)
	}
	fetcher, err := source.New(ctx, cfg.DeckSource, source.Options{
		Timeout:   cfg.FetchTimeout,
		AWSRegion: cfg.AWSRegion,
		Decks:     decks,
	})
	if err != nil {
		log.Printf("Warning: Invalid deck source %q: %v", cfg.DeckSource, err)
	}
	text, fallback := source.Load(ctx, fetcher)
	cancel()

	cards := deck.Parse(text)
	log.Printf("Loaded %d cards", len(cards))

	seed := cfg.ShuffleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	studyService := service.NewStudyService(cards, rand.New(rand.NewSource(seed)))

	// Load templates
	tmpl, err := handlers.LoadTemplates(templates.FS)
	if err != nil {
		log.Fatalf("Failed to load templates: %v", err)
	}

	log.Println("Templates loaded successfully")

	studyHandler := handlers.NewStudyHandler(studyService, tmpl, cfg.DeckSource, fallback)

	// Setup routes
	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, studyHandler)

	// Wrap with logging middleware
	handler := handlers.Logging(mux)

	// Start server
	addr := ":" + cfg.ServerPort
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost%s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
}
