package source

import (
	"context"
	"fmt"

	"flashcards/internal/models"
)

// DeckStore looks decks up by name; nil, nil means no such deck
type DeckStore interface {
	GetDeckByName(name string) (*models.Deck, error)
}

// Database reads a named deck from the deck library
type Database struct {
	Name  string
	Store DeckStore
}

func (d *Database) Fetch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	deck, err := d.Store.GetDeckByName(d.Name)
	if err != nil {
		return "", err
	}
	if deck == nil {
		return "", fmt.Errorf("%w: %s", ErrDeckNotFound, d.Name)
	}
	return deck.Body, nil
}

func (d *Database) String() string {
	return "db://" + d.Name
}
