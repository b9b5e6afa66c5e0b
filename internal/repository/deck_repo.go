package repository

import (
	"database/sql"
	"fmt"

	"flashcards/internal/database"
	"flashcards/internal/models"
)

// DeckRepository handles database operations for the deck library
type DeckRepository struct {
	db *database.DB
}

// NewDeckRepository creates a new deck repository
func NewDeckRepository(db *database.DB) *DeckRepository {
	return &DeckRepository{db: db}
}

// SaveDeck stores the raw CSV body under name, replacing any deck with that name
func (r *DeckRepository) SaveDeck(name, body string, cardCount int) error {
	if _, err := r.db.Exec(r.db.Dialect.UpsertDeckQuery(), name, body, cardCount); err != nil {
		return fmt.Errorf("failed to save deck: %w", err)
	}
	return nil
}

// GetDeckByName retrieves a deck with its body. It returns nil when no deck has that name.
func (r *DeckRepository) GetDeckByName(name string) (*models.Deck, error) {
	query := `
		SELECT id, name, body, card_count, created_at, updated_at
		FROM decks
		WHERE name = ?
	`
	deck := &models.Deck{}
	err := r.db.QueryRow(query, name).Scan(
		&deck.ID,
		&deck.Name,
		&deck.Body,
		&deck.CardCount,
		&deck.CreatedAt,
		&deck.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deck: %w", err)
	}

	return deck, nil
}

// ListDecks retrieves every deck without its body, ordered by name
func (r *DeckRepository) ListDecks() ([]models.Deck, error) {
	query := `
		SELECT id, name, card_count, created_at, updated_at
		FROM decks
		ORDER BY name ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list decks: %w", err)
	}
	defer rows.Close()

	var decks []models.Deck
	for rows.Next() {
		var deck models.Deck
		if err := rows.Scan(&deck.ID, &deck.Name, &deck.CardCount, &deck.CreatedAt, &deck.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan deck: %w", err)
		}
		decks = append(decks, deck)
	}

	return decks, rows.Err()
}

// DeleteDeck removes a deck and reports whether it existed
func (r *DeckRepository) DeleteDeck(name string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM decks WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("failed to delete deck: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check deleted deck: %w", err)
	}
	return affected > 0, nil
}
