package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"flashcards/internal/models"
)

var deckNameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._\-]*$`)

const maxDeckNameLength = 64

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateDeckName checks that a deck name is usable in a db:// location
func ValidateDeckName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if len(name) > maxDeckNameLength {
		return ValidationError{Field: "name", Message: fmt.Sprintf("name must be at most %d characters", maxDeckNameLength)}
	}
	if !deckNameRegex.MatchString(name) {
		return ValidationError{Field: "name", Message: "name may only contain letters, digits, '.', '_' and '-'"}
	}
	return nil
}

// ParseSessionOptions reads the setup form. Missing fields take their
// defaults: flip mode, all cards, sequential order, start 0, no limit.
func ParseSessionOptions(form url.Values) (models.SessionOptions, error) {
	opts := models.SessionOptions{
		Mode: models.ModeFlip,
		Pool: models.PoolAll,
		SelectOptions: models.SelectOptions{
			Order: models.OrderSequential,
		},
	}

	switch mode := models.StudyMode(strings.TrimSpace(form.Get("mode"))); mode {
	case "":
	case models.ModeFlip, models.ModeTyped:
		opts.Mode = mode
	default:
		return opts, ValidationError{Field: "mode", Message: "mode must be flip or typed"}
	}

	switch pool := models.CardPool(strings.TrimSpace(form.Get("pool"))); pool {
	case "":
	case models.PoolAll, models.PoolMissed:
		opts.Pool = pool
	default:
		return opts, ValidationError{Field: "pool", Message: "pool must be all or missed"}
	}

	switch order := models.Order(strings.TrimSpace(form.Get("order"))); order {
	case "":
	case models.OrderSequential, models.OrderRandom:
		opts.Order = order
	default:
		return opts, ValidationError{Field: "order", Message: "order must be sequential or random"}
	}

	start, err := parseCount(form, "start")
	if err != nil {
		return opts, err
	}
	opts.Start = start

	limit, err := parseCount(form, "limit")
	if err != nil {
		return opts, err
	}
	opts.Limit = limit

	return opts, nil
}

// parseCount reads a non-negative integer field; blank means 0
func parseCount(form url.Values, field string) (int, error) {
	raw := strings.TrimSpace(form.Get(field))
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ValidationError{Field: field, Message: field + " must be a whole number"}
	}
	if n < 0 {
		return 0, ValidationError{Field: field, Message: field + " cannot be negative"}
	}
	return n, nil
}
