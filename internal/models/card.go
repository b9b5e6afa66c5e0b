package models

import "time"

// Card is one question/answer pair read from a deck source
type Card struct {
	ID       int // 1-based row position in the source, header included
	Question string
	Answer   string
}

// Deck is a raw CSV deck stored in the deck library
type Deck struct {
	ID        int64
	Name      string
	Body      string
	CardCount int
	CreatedAt time.Time
	UpdatedAt time.Time
}
