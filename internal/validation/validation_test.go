package validation

import (
	"errors"
	"net/url"
	"testing"

	"flashcards/internal/models"
)

func TestValidateDeckName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "simple name",
			input:   "japanese",
			wantErr: false,
		},
		{
			name:    "name with separators",
			input:   "jlpt-n5_vocab.v2",
			wantErr: false,
		},
		{
			name:    "empty name",
			input:   "",
			wantErr: true,
		},
		{
			name:    "only spaces",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "contains slash",
			input:   "decks/japanese",
			wantErr: true,
		},
		{
			name:    "leading dot",
			input:   ".hidden",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxyzabcdefghijklm",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeckName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDeckName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseSessionOptions(t *testing.T) {
	tests := []struct {
		name      string
		form      url.Values
		want      models.SessionOptions
		wantField string
	}{
		{
			name: "defaults",
			form: url.Values{},
			want: models.SessionOptions{
				Mode:          models.ModeFlip,
				Pool:          models.PoolAll,
				SelectOptions: models.SelectOptions{Order: models.OrderSequential},
			},
		},
		{
			name: "typed random review with limit",
			form: url.Values{"mode": {"typed"}, "pool": {"missed"}, "order": {"random"}, "limit": {"5"}},
			want: models.SessionOptions{
				Mode:          models.ModeTyped,
				Pool:          models.PoolMissed,
				SelectOptions: models.SelectOptions{Order: models.OrderRandom, Limit: 5},
			},
		},
		{
			name: "sequential with start",
			form: url.Values{"order": {"sequential"}, "start": {" 3 "}, "limit": {""}},
			want: models.SessionOptions{
				Mode:          models.ModeFlip,
				Pool:          models.PoolAll,
				SelectOptions: models.SelectOptions{Order: models.OrderSequential, Start: 3},
			},
		},
		{
			name:      "unknown mode",
			form:      url.Values{"mode": {"multiple-choice"}},
			wantField: "mode",
		},
		{
			name:      "unknown pool",
			form:      url.Values{"pool": {"favourites"}},
			wantField: "pool",
		},
		{
			name:      "unknown order",
			form:      url.Values{"order": {"alphabetical"}},
			wantField: "order",
		},
		{
			name:      "negative start",
			form:      url.Values{"start": {"-1"}},
			wantField: "start",
		},
		{
			name:      "non-numeric limit",
			form:      url.Values{"limit": {"ten"}},
			wantField: "limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSessionOptions(tt.form)
			if tt.wantField != "" {
				var verr ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("ParseSessionOptions() error = %v, want ValidationError", err)
				}
				if verr.Field != tt.wantField {
					t.Errorf("ParseSessionOptions() field = %q, want %q", verr.Field, tt.wantField)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSessionOptions() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSessionOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
