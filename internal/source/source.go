// Package source retrieves the raw deck text the study service is built from.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"time"

	"flashcards/internal/deck"
)

var (
	ErrEmptySource  = errors.New("deck source is empty")
	ErrDeckNotFound = errors.New("deck not found")
	ErrDeckTooLarge = errors.New("deck source is too large")
)

// maxDeckSize caps how much of a remote deck is accepted
const maxDeckSize = 8 << 20

// readDeck reads a whole remote deck. A body over maxDeckSize is an error,
// never a truncated deck.
func readDeck(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxDeckSize+1))
	if err != nil {
		return "", err
	}
	if len(data) > maxDeckSize {
		return "", fmt.Errorf("%w: more than %d bytes", ErrDeckTooLarge, maxDeckSize)
	}
	return string(data), nil
}

// Fetcher retrieves the full text of a deck
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
	String() string
}

// Options carries what the individual fetchers need beyond the location
type Options struct {
	Timeout   time.Duration
	AWSRegion string
	Decks     DeckStore // required for db:// locations
}

// New picks a fetcher from the location scheme: http(s)://, s3://bucket/key,
// db://name, file:// or a plain filesystem path.
func New(ctx context.Context, location string, opts Options) (Fetcher, error) {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTP(location, opts.Timeout), nil

	case strings.HasPrefix(location, "s3://"):
		u, err := url.Parse(location)
		if err != nil {
			return nil, fmt.Errorf("invalid s3 location %q: %w", location, err)
		}
		key := strings.TrimPrefix(u.Path, "/")
		if u.Host == "" || key == "" {
			return nil, fmt.Errorf("s3 location %q needs a bucket and a key", location)
		}
		f, err := NewS3(ctx, opts.AWSRegion, u.Host, key)
		if err != nil {
			return nil, err
		}
		return f, nil

	case strings.HasPrefix(location, "db://"):
		name := strings.TrimPrefix(location, "db://")
		if name == "" {
			return nil, fmt.Errorf("db location %q needs a deck name", location)
		}
		if opts.Decks == nil {
			return nil, fmt.Errorf("db location %q needs a deck library", location)
		}
		return &Database{Name: name, Store: opts.Decks}, nil

	case strings.HasPrefix(location, "file://"):
		return File{Path: strings.TrimPrefix(location, "file://")}, nil

	case location == "":
		return nil, errors.New("no deck source configured")

	default:
		return File{Path: location}, nil
	}
}

// NeedsDatabase reports whether location is read from the deck library
func NeedsDatabase(location string) bool {
	return strings.HasPrefix(location, "db://")
}

// Load performs the single startup fetch. Any failure, including an empty
// body, is logged and answered with the built-in sample deck instead; it is
// never retried. fallback reports whether the sample deck was used.
func Load(ctx context.Context, f Fetcher) (text string, fallback bool) {
	if f == nil {
		log.Println("Warning: No deck source available, using built-in sample deck")
		return deck.FallbackCSV, true
	}

	text, err := f.Fetch(ctx)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptySource
	}
	if err != nil {
		log.Printf("Warning: Failed to load deck from %s, using built-in sample deck: %v", f, err)
		return deck.FallbackCSV, true
	}

	return text, false
}
