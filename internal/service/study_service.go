package service

import (
	"errors"
	"log"
	"math/rand"
	"sort"
	"sync"
	"time"

	"flashcards/internal/grading"
	"flashcards/internal/models"

	"github.com/google/uuid"
)

var (
	ErrNoActiveSession = errors.New("no active study session")
	ErrStaleSession    = errors.New("study session is no longer active")
	ErrWrongMode       = errors.New("answer does not match the session mode")
	ErrCardNotFound    = errors.New("card not found")
	ErrCardMismatch    = errors.New("answer is not for the current card")
)

// StudyService owns the deck, the miss table and the current quiz.
// One process serves one learner, so a single mutex serializes every call.
type StudyService struct {
	mu     sync.Mutex
	cards  []models.Card
	byID   map[int]models.Card
	misses MissTable
	rng    *rand.Rand
	active *models.StudySession
	last   *models.SessionSummary
}

// NewStudyService creates a study service over the parsed deck.
// A nil rng falls back to the global math/rand source.
func NewStudyService(cards []models.Card, rng *rand.Rand) *StudyService {
	byID := make(map[int]models.Card, len(cards))
	for _, card := range cards {
		byID[card.ID] = card
	}

	return &StudyService{
		cards:  cards,
		byID:   byID,
		misses: make(MissTable),
		rng:    rng,
	}
}

// Cards returns the master deck in source order
func (s *StudyService) Cards() []models.Card {
	out := make([]models.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Card looks up a card by ID
func (s *StudyService) Card(id int) (models.Card, error) {
	card, ok := s.byID[id]
	if !ok {
		return models.Card{}, ErrCardNotFound
	}
	return card, nil
}

// Overview summarises the deck and miss table for the menu screen
func (s *StudyService) Overview() models.StudyOverview {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.StudyOverview{
		TotalCards:    len(s.cards),
		MissedCards:   len(s.misses),
		TotalMisses:   s.misses.Total(),
		ActiveSession: s.active != nil,
		HasResults:    s.last != nil,
	}
}

// Start builds a play queue and makes it the active session, replacing any
// session in progress. An empty queue leaves the current state untouched.
func (s *StudyService) Start(opts models.SessionOptions) (models.StudySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue, err := SelectQueue(s.pool(opts.Pool), opts.SelectOptions, s.rng)
	if err != nil {
		return models.StudySession{}, err
	}

	mode := opts.Mode
	if mode == "" {
		mode = models.ModeFlip
	}
	pool := opts.Pool
	if pool == "" {
		pool = models.PoolAll
	}

	s.active = &models.StudySession{
		ID:        uuid.NewString(),
		Mode:      mode,
		Pool:      pool,
		Queue:     queue,
		StartedAt: time.Now(),
	}
	s.last = nil

	log.Printf("Started %s session %s with %d cards (%s, %s)", mode, s.active.ID, len(queue), pool, opts.Order)
	return s.snapshot(), nil
}

// pool returns the cards a session may draw from, in deck order
func (s *StudyService) pool(p models.CardPool) []models.Card {
	if p != models.PoolMissed {
		return s.cards
	}

	missed := make([]models.Card, 0, len(s.misses))
	for _, card := range s.cards {
		if s.misses.Has(card.ID) {
			missed = append(missed, card)
		}
	}
	return missed
}

// Current returns a copy of the active session
func (s *StudyService) Current() (models.StudySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return models.StudySession{}, ErrNoActiveSession
	}
	return s.snapshot(), nil
}

// Grade records a self-graded flip-card answer for the current card.
// cardID must name the card being asked so a repeated answer is not applied
// to the next card.
func (s *StudyService) Grade(sessionID string, cardID int, correct bool) (models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.currentCard(sessionID, cardID, models.ModeFlip)
	if err != nil {
		return models.Result{}, err
	}

	return s.record(models.Result{CardID: card.ID, Correct: correct}), nil
}

// Submit grades a typed answer for the current card
func (s *StudyService) Submit(sessionID string, cardID int, input string) (models.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, err := s.currentCard(sessionID, cardID, models.ModeTyped)
	if err != nil {
		return models.Result{}, err
	}

	return s.record(models.Result{
		CardID:  card.ID,
		Correct: grading.Equivalent(input, card.Answer),
		Input:   input,
	}), nil
}

// currentCard validates that an answer belongs to the active session
func (s *StudyService) currentCard(sessionID string, cardID int, mode models.StudyMode) (models.Card, error) {
	if s.active == nil {
		return models.Card{}, ErrNoActiveSession
	}
	if s.active.ID != sessionID {
		return models.Card{}, ErrStaleSession
	}
	if s.active.Mode != mode {
		return models.Card{}, ErrWrongMode
	}
	card := s.active.Queue[s.active.Position()]
	if card.ID != cardID {
		return models.Card{}, ErrCardMismatch
	}
	return card, nil
}

// record appends a result, counts a miss when it is wrong and closes the
// session after the last card
func (s *StudyService) record(result models.Result) models.Result {
	s.active.Results = append(s.active.Results, result)
	if !result.Correct {
		s.misses.Record(result.CardID)
	}

	if s.active.Done() {
		s.finish()
	}
	return result
}

// Finish ends the session early and returns the summary of what was answered
func (s *StudyService) Finish(sessionID string) (models.SessionSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active == nil {
		return models.SessionSummary{}, ErrNoActiveSession
	}
	if s.active.ID != sessionID {
		return models.SessionSummary{}, ErrStaleSession
	}

	return s.finish(), nil
}

func (s *StudyService) finish() models.SessionSummary {
	session := s.active

	correct := 0
	for _, result := range session.Results {
		if result.Correct {
			correct++
		}
	}

	accuracy := 0.0
	if len(session.Results) > 0 {
		accuracy = float64(correct) / float64(len(session.Results)) * 100
	}

	summary := models.SessionSummary{
		SessionID:   session.ID,
		Mode:        session.Mode,
		Pool:        session.Pool,
		Queued:      len(session.Queue),
		Results:     session.Results,
		Correct:     correct,
		Accuracy:    accuracy,
		CompletedAt: time.Now(),
	}

	s.active = nil
	s.last = &summary

	log.Printf("Completed session %s: %d/%d correct", summary.SessionID, correct, len(summary.Results))
	return summary
}

// LastSummary returns the results of the most recently finished session
func (s *StudyService) LastSummary() (models.SessionSummary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil {
		return models.SessionSummary{}, false
	}
	return *s.last, true
}

// Missed lists every missed card, most missed first
func (s *StudyService) Missed() []models.MissedCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	missed := make([]models.MissedCard, 0, len(s.misses))
	for _, id := range s.misses.IDs() {
		card, ok := s.byID[id]
		if !ok {
			continue
		}
		missed = append(missed, models.MissedCard{Card: card, Misses: s.misses.Count(id)})
	}

	sort.SliceStable(missed, func(i, j int) bool {
		return missed[i].Misses > missed[j].Misses
	})
	return missed
}

// Forget removes one card from the miss table
func (s *StudyService) Forget(cardID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.misses.Has(cardID) {
		return ErrCardNotFound
	}
	s.misses.Forget(cardID)
	return nil
}

// ResetMisses clears the miss table
func (s *StudyService) ResetMisses() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.misses.Reset()
}

func (s *StudyService) snapshot() models.StudySession {
	session := *s.active
	session.Results = append([]models.Result(nil), s.active.Results...)
	return session
}
