// Command deckctl manages the deck library the study server reads db:// decks from.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"flashcards/internal/config"
	"flashcards/internal/database"
	"flashcards/internal/repository"
	"flashcards/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "deckctl",
	Short: "Manage the flashcard deck library",
	Long: `Manage the flashcard deck library.

Decks are stored in the database selected by DATABASE_TYPE, DB_PATH and
DATABASE_URL. Start the server with DECK_SOURCE=db://<name> to study one.`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openLibrary connects to the configured database and applies migrations.
// The returned close function must be called when the command is done.
func openLibrary() (*service.LibraryService, func(), error) {
	cfg := config.Load()

	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	closeFn := func() {
		if err := db.Close(); err != nil {
			log.Printf("Warning: Failed to close database: %v", err)
		}
	}
	return service.NewLibraryService(repository.NewDeckRepository(db)), closeFn, nil
}
