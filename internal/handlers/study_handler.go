package handlers

import (
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"flashcards/internal/models"
	"flashcards/internal/service"
	"flashcards/internal/validation"
)

// StudyHandler serves the study screens for the single local learner
type StudyHandler struct {
	study     *service.StudyService
	templates *template.Template
	source    string
	fallback  bool
}

// NewStudyHandler creates a new study handler. source names where the deck
// came from; fallback reports that the built-in sample deck is in use.
func NewStudyHandler(study *service.StudyService, templates *template.Template, source string, fallback bool) *StudyHandler {
	return &StudyHandler{
		study:     study,
		templates: templates,
		source:    source,
		fallback:  fallback,
	}
}

// RegisterRoutes wires the study screens into mux
func RegisterRoutes(mux *http.ServeMux, h *StudyHandler) {
	mux.HandleFunc("GET /{$}", h.Menu)
	mux.HandleFunc("GET /setup", h.ShowSetup)
	mux.HandleFunc("POST /setup", h.StartSession)
	mux.HandleFunc("GET /quiz", h.ShowQuiz)
	mux.HandleFunc("POST /quiz/answer", h.SubmitAnswer)
	mux.HandleFunc("POST /quiz/finish", h.FinishSession)
	mux.HandleFunc("GET /results", h.ShowResults)
	mux.HandleFunc("GET /review", h.ShowReview)
	mux.HandleFunc("POST /review/{id}/forget", h.ForgetCard)
	mux.HandleFunc("POST /review/reset", h.ResetMisses)
	mux.HandleFunc("GET /healthz", h.Health)
}

func (h *StudyHandler) page(title string) Page {
	return Page{Title: title + " - Flashcards", Fallback: h.fallback}
}

// Menu shows the main menu
func (h *StudyHandler) Menu(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "menu.tmpl", MenuViewData{
		Page:     h.page("Menu"),
		Source:   h.source,
		Overview: h.study.Overview(),
	})
}

// ShowSetup displays the session setup form. Query parameters preselect options.
func (h *StudyHandler) ShowSetup(w http.ResponseWriter, r *http.Request) {
	opts, err := validation.ParseSessionOptions(r.URL.Query())
	if err != nil {
		opts, _ = validation.ParseSessionOptions(nil)
	}

	h.render(w, http.StatusOK, "setup.tmpl", SetupViewData{
		Page:     h.page("New session"),
		Form:     opts,
		Overview: h.study.Overview(),
	})
}

// StartSession builds the play queue from the setup form
func (h *StudyHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	opts, err := validation.ParseSessionOptions(r.PostForm)
	if err != nil {
		var verr validation.ValidationError
		if errors.As(err, &verr) {
			h.renderSetupNotice(w, http.StatusBadRequest, opts, verr.Message)
			return
		}
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	if _, err := h.study.Start(opts); err != nil {
		if errors.Is(err, service.ErrEmptySelection) {
			h.renderSetupNotice(w, http.StatusUnprocessableEntity, opts, NoticeEmptySelection)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error starting session", err)
		return
	}

	http.Redirect(w, r, "/quiz", http.StatusSeeOther)
}

func (h *StudyHandler) renderSetupNotice(w http.ResponseWriter, status int, opts models.SessionOptions, notice string) {
	h.render(w, status, "setup.tmpl", SetupViewData{
		Page:     h.page("New session"),
		Form:     opts,
		Overview: h.study.Overview(),
		Notice:   notice,
	})
}

// ShowQuiz displays the current card of the active session
func (h *StudyHandler) ShowQuiz(w http.ResponseWriter, r *http.Request) {
	session, err := h.study.Current()
	if err != nil {
		http.Redirect(w, r, "/setup", http.StatusSeeOther)
		return
	}

	h.render(w, http.StatusOK, "quiz.tmpl", QuizViewData{
		Page:    h.page("Quiz"),
		Session: session,
		Card:    session.Queue[session.Position()],
	})
}

// SubmitAnswer grades the current card. Flip cards post a self-grade in
// "correct", typed cards post the learner's text in "answer".
func (h *StudyHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	sessionID := r.PostForm.Get(FieldSession)
	cardID, err := strconv.Atoi(r.PostForm.Get(FieldCard))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidCardID, "", err)
		return
	}

	var result models.Result
	if r.PostForm.Has(FieldCorrect) {
		correct, perr := strconv.ParseBool(r.PostForm.Get(FieldCorrect))
		if perr != nil {
			respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", perr)
			return
		}
		result, err = h.study.Grade(sessionID, cardID, correct)
	} else {
		result, err = h.study.Submit(sessionID, cardID, r.PostForm.Get(FieldAnswer))
	}

	switch {
	case errors.Is(err, service.ErrWrongMode):
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "Answer for wrong study mode", err)
		return
	case errors.Is(err, service.ErrCardMismatch):
		// A resubmitted form for a card that was already graded goes back to the quiz
		http.Redirect(w, r, "/quiz", http.StatusSeeOther)
		return
	case errors.Is(err, service.ErrNoActiveSession), errors.Is(err, service.ErrStaleSession):
		h.redirectAfterSession(w, r, sessionID)
		return
	case err != nil:
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error grading answer", err)
		return
	}

	card, err := h.study.Card(result.CardID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error loading graded card", err)
		return
	}

	h.render(w, http.StatusOK, "feedback.tmpl", FeedbackViewData{
		Page:     h.page("Quiz"),
		Card:     card,
		Result:   result,
		Finished: h.finished(sessionID),
	})
}

// FinishSession ends the active session early
func (h *StudyHandler) FinishSession(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, ErrInvalidFormData, "", err)
		return
	}

	sessionID := r.PostForm.Get(FieldSession)
	if _, err := h.study.Finish(sessionID); err != nil {
		if !errors.Is(err, service.ErrNoActiveSession) && !errors.Is(err, service.ErrStaleSession) {
			respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error finishing session", err)
			return
		}
		log.Printf("Ignoring finish for session %q: %v", sessionID, err)
	}

	h.redirectAfterSession(w, r, sessionID)
}

// finished reports whether sessionID is the session the last summary belongs to
func (h *StudyHandler) finished(sessionID string) bool {
	summary, ok := h.study.LastSummary()
	return ok && summary.SessionID == sessionID
}

// redirectAfterSession sends a form for an inactive session to its results
// when they are still available, otherwise to the menu
func (h *StudyHandler) redirectAfterSession(w http.ResponseWriter, r *http.Request, sessionID string) {
	if h.finished(sessionID) {
		http.Redirect(w, r, "/results", http.StatusSeeOther)
		return
	}
	if _, err := h.study.Current(); err == nil {
		http.Redirect(w, r, "/quiz", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ShowResults displays the summary of the last finished session
func (h *StudyHandler) ShowResults(w http.ResponseWriter, r *http.Request) {
	summary, ok := h.study.LastSummary()
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	rows := make([]ResultRow, 0, len(summary.Results))
	hasMissed := false
	for _, result := range summary.Results {
		card, err := h.study.Card(result.CardID)
		if err != nil {
			log.Printf("Skipping result for unknown card %d", result.CardID)
			continue
		}
		rows = append(rows, ResultRow{Card: card, Result: result})
		if !result.Correct {
			hasMissed = true
		}
	}

	h.render(w, http.StatusOK, "results.tmpl", ResultsViewData{
		Page:      h.page("Results"),
		Summary:   summary,
		Rows:      rows,
		HasMissed: hasMissed,
	})
}

// ShowReview lists every missed card
func (h *StudyHandler) ShowReview(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "review.tmpl", ReviewViewData{
		Page:   h.page("Missed cards"),
		Missed: h.study.Missed(),
	})
}

// ForgetCard removes one card from the missed list
func (h *StudyHandler) ForgetCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, ErrInvalidCardID, http.StatusBadRequest)
		return
	}

	if err := h.study.Forget(cardID); err != nil {
		if errors.Is(err, service.ErrCardNotFound) {
			http.Error(w, ErrCardNotMissed, http.StatusNotFound)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error forgetting card", err)
		return
	}

	http.Redirect(w, r, "/review", http.StatusSeeOther)
}

// ResetMisses clears the missed list
func (h *StudyHandler) ResetMisses(w http.ResponseWriter, r *http.Request) {
	h.study.ResetMisses()
	http.Redirect(w, r, "/review", http.StatusSeeOther)
}

// Health reports that the deck is loaded
func (h *StudyHandler) Health(w http.ResponseWriter, r *http.Request) {
	overview := h.study.Overview()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":   "ok",
		"cards":    overview.TotalCards,
		"fallback": h.fallback,
	}); err != nil {
		log.Printf("Error encoding health response: %v", err)
	}
}
