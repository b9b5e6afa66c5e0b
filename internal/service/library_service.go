package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"flashcards/internal/deck"
	"flashcards/internal/models"
	"flashcards/internal/repository"
	"flashcards/internal/source"
	"flashcards/internal/validation"
)

var ErrEmptyDeck = errors.New("deck has no cards")

// LibraryService manages the decks stored in the database
type LibraryService struct {
	repo *repository.DeckRepository
}

// NewLibraryService creates a new deck library service
func NewLibraryService(repo *repository.DeckRepository) *LibraryService {
	return &LibraryService{repo: repo}
}

// ImportDeck stores body under name, replacing any deck of the same name.
// The body is kept verbatim; it is parsed only to count and validate the cards.
// Surrounding whitespace is trimmed from name.
func (s *LibraryService) ImportDeck(name, body string) (int, error) {
	name = strings.TrimSpace(name)
	if err := validation.ValidateDeckName(name); err != nil {
		return 0, err
	}

	cards := deck.Parse(body)
	if len(cards) == 0 {
		return 0, ErrEmptyDeck
	}

	if err := s.repo.SaveDeck(name, body, len(cards)); err != nil {
		return 0, err
	}

	log.Printf("Imported deck %q with %d cards", name, len(cards))
	return len(cards), nil
}

// ImportFromReader reads a whole deck from reader and imports it
func (s *LibraryService) ImportFromReader(name string, reader io.Reader) (int, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return 0, fmt.Errorf("failed to read deck: %w", err)
	}
	return s.ImportDeck(name, string(data))
}

// GetDeck returns a stored deck including its body
func (s *LibraryService) GetDeck(name string) (*models.Deck, error) {
	d, err := s.repo.GetDeckByName(name)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("%w: %s", source.ErrDeckNotFound, name)
	}
	return d, nil
}

// ExportToWriter writes the stored deck text to w
func (s *LibraryService) ExportToWriter(name string, w io.Writer) error {
	d, err := s.GetDeck(name)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, d.Body); err != nil {
		return fmt.Errorf("failed to write deck: %w", err)
	}
	return nil
}

// ListDecks returns every stored deck without its body
func (s *LibraryService) ListDecks() ([]models.Deck, error) {
	return s.repo.ListDecks()
}

// DeleteDeck removes a stored deck
func (s *LibraryService) DeleteDeck(name string) error {
	deleted, err := s.repo.DeleteDeck(name)
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", source.ErrDeckNotFound, name)
	}

	log.Printf("Deleted deck %q", name)
	return nil
}
