package source

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// HTTP downloads a deck with a plain GET request
type HTTP struct {
	URL    string
	client *http.Client
}

// NewHTTP creates an HTTP fetcher. A zero timeout means no client timeout.
func NewHTTP(rawURL string, timeout time.Duration) *HTTP {
	return &HTTP{
		URL:    rawURL,
		client: &http.Client{Timeout: timeout},
	}
}

func (h *HTTP) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch deck: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("deck request returned status %d", resp.StatusCode)
	}

	text, err := readDeck(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read deck response: %w", err)
	}
	return text, nil
}

func (h *HTTP) String() string {
	return h.URL
}
