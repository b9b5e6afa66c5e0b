// Package deck turns comma-separated deck text into cards.
package deck

import (
	"strings"

	"flashcards/internal/models"
)

// Parse reads question/answer cards from comma-separated text.
//
// The first non-blank row is a header and is skipped. Every later row with at
// least two fields becomes a card whose ID is the row's 1-based position among
// the non-blank rows, so the first data row gets ID 2. Rows with fewer than two
// fields are dropped. Malformed input never fails; it only yields fewer cards.
func Parse(text string) []models.Card {
	rows := Rows(text)
	if len(rows) == 0 {
		return nil
	}

	cards := make([]models.Card, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 2 {
			continue
		}
		cards = append(cards, models.Card{
			ID:       i + 2,
			Question: strings.TrimSpace(row[0]),
			Answer:   strings.TrimSpace(row[1]),
		})
	}
	return cards
}

// Rows splits text into rows of fields, honouring double-quoted fields that
// contain commas, line breaks or doubled quotes. Blank lines are omitted.
func Rows(text string) [][]string {
	var s scanner
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if s.quoted && i+1 < len(text) && text[i+1] == '"' {
				s.field.WriteByte('"')
				i++
				continue
			}
			s.quoted = !s.quoted
		case c == ',' && !s.quoted:
			s.endField()
		case (c == '\r' || c == '\n') && !s.quoted:
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			s.endRow()
		default:
			s.field.WriteByte(c)
		}
	}

	if s.field.Len() > 0 || len(s.row) > 0 {
		s.endRow()
	}
	return s.rows
}

// scanner holds the state of one left-to-right pass over deck text
type scanner struct {
	rows   [][]string
	row    []string
	field  strings.Builder
	quoted bool
}

func (s *scanner) endField() {
	s.row = append(s.row, s.field.String())
	s.field.Reset()
}

func (s *scanner) endRow() {
	s.endField()
	// a blank line yields a single empty field
	if len(s.row) != 1 || s.row[0] != "" {
		s.rows = append(s.rows, s.row)
	}
	s.row = nil
}
