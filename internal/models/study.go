package models

import "time"

// StudyMode selects how answers are graded
type StudyMode string

const (
	ModeFlip  StudyMode = "flip"  // self-graded flip card
	ModeTyped StudyMode = "typed" // typed answer, graded by normalization
)

// Order selects how the play queue is arranged
type Order string

const (
	OrderSequential Order = "sequential"
	OrderRandom     Order = "random"
)

// CardPool selects which cards a session draws from
type CardPool string

const (
	PoolAll    CardPool = "all"
	PoolMissed CardPool = "missed"
)

// SelectOptions configures how a play queue is built from a pool.
// Start is only honoured for sequential order. Limit 0 means no limit.
type SelectOptions struct {
	Order Order
	Start int
	Limit int
}

// SessionOptions holds the setup screen choices
type SessionOptions struct {
	Mode StudyMode
	Pool CardPool
	SelectOptions
}

// Result is the outcome of one played card
type Result struct {
	CardID  int
	Correct bool
	Input   string // typed mode only
}

// StudySession represents an active quiz run
type StudySession struct {
	ID        string
	Mode      StudyMode
	Pool      CardPool
	Queue     []Card
	Results   []Result
	StartedAt time.Time
}

// Position returns the 0-based index of the card being asked
func (s StudySession) Position() int {
	return len(s.Results)
}

// Done reports whether every queued card has been answered
func (s StudySession) Done() bool {
	return len(s.Results) >= len(s.Queue)
}

// SessionSummary is what the results screen shows once a session ends
type SessionSummary struct {
	SessionID   string
	Mode        StudyMode
	Pool        CardPool
	Queued      int
	Results     []Result
	Correct     int
	Accuracy    float64 // Percentage of correct answers
	CompletedAt time.Time
}

// Total returns the number of answered cards
func (s SessionSummary) Total() int {
	return len(s.Results)
}

// MissedCard pairs a card with how often it was answered incorrectly
type MissedCard struct {
	Card   Card
	Misses int
}

// StudyOverview summarises the study state for the menu screen
type StudyOverview struct {
	TotalCards    int
	MissedCards   int
	TotalMisses   int
	ActiveSession bool
	HasResults    bool
}
