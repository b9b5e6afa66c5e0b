package service

import (
	"errors"
	"math/rand"

	"flashcards/internal/models"
)

// ErrEmptySelection is returned when a selection leaves no cards to play
var ErrEmptySelection = errors.New("no cards match the selection")

// SelectQueue builds a play queue from source without modifying it.
// Random order shuffles the whole source; sequential order drops opts.Start
// cards from the front. Either way the queue is then cut to opts.Limit cards
// when a limit is set.
func SelectQueue(source []models.Card, opts models.SelectOptions, rng *rand.Rand) ([]models.Card, error) {
	var queue []models.Card

	switch opts.Order {
	case models.OrderRandom:
		queue = make([]models.Card, len(source))
		copy(queue, source)
		shuffleCards(queue, rng)
	default:
		start := opts.Start
		if start < 0 {
			start = 0
		}
		if start < len(source) {
			queue = make([]models.Card, len(source)-start)
			copy(queue, source[start:])
		}
	}

	if opts.Limit > 0 && opts.Limit < len(queue) {
		queue = queue[:opts.Limit]
	}

	if len(queue) == 0 {
		return nil, ErrEmptySelection
	}
	return queue, nil
}

// shuffleCards is a Fisher-Yates shuffle: walking down from the last index,
// each card swaps with a uniformly chosen card at or before it.
func shuffleCards(cards []models.Card, rng *rand.Rand) {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	for i := len(cards) - 1; i > 0; i-- {
		j := intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
