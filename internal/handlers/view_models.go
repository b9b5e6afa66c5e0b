package handlers

import (
	"flashcards/internal/models"
)

// Page carries what the shared header needs
type Page struct {
	Title    string
	Fallback bool
}

type MenuViewData struct {
	Page
	Source   string
	Overview models.StudyOverview
}

type SetupViewData struct {
	Page
	Form     models.SessionOptions
	Overview models.StudyOverview
	Notice   string
}

type QuizViewData struct {
	Page
	Session models.StudySession
	Card    models.Card
}

type FeedbackViewData struct {
	Page
	Card     models.Card
	Result   models.Result
	Finished bool
}

type ResultRow struct {
	Card   models.Card
	Result models.Result
}

type ResultsViewData struct {
	Page
	Summary   models.SessionSummary
	Rows      []ResultRow
	HasMissed bool
}

type ReviewViewData struct {
	Page
	Missed []models.MissedCard
}
