package handlers

const (
	FieldSession = "session"
	FieldCard    = "card"
	FieldCorrect = "correct"
	FieldAnswer  = "answer"

	ErrInvalidFormData     = "Invalid form data"
	ErrInvalidCardID       = "Invalid card ID"
	ErrCardNotMissed       = "Card is not in the missed list"
	ErrInternalServerError = "Internal server error"

	NoticeEmptySelection = "No cards match these settings. Lower the start position or pick a different card pool."
)
