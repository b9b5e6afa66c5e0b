package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
)

// cardMarkdown renders card faces. Raw HTML in the deck is not passed through.
var cardMarkdown = goldmark.New(
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// markdownPunct is every character a backslash escape applies to
const markdownPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// escapeMarkdown makes card text render literally: punctuation is
// backslash-escaped and leading indentation becomes character references so
// no line turns into a list, heading, rule or code block.
func escapeMarkdown(text string) string {
	var b strings.Builder
	lineStart := true
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r':
			lineStart = true
			b.WriteRune(r)
			continue
		case lineStart && r == ' ':
			b.WriteString("&#32;")
			continue
		case lineStart && r == '\t':
			b.WriteString("&#9;")
			continue
		case strings.ContainsRune(markdownPunct, r):
			b.WriteByte('\\')
		}
		lineStart = false
		b.WriteRune(r)
	}
	return b.String()
}

// RenderCard converts card text to HTML, keeping line breaks
func RenderCard(text string) template.HTML {
	var buf bytes.Buffer
	if err := cardMarkdown.Convert([]byte(escapeMarkdown(text)), &buf); err != nil {
		log.Printf("Error rendering card text: %v", err)
		return template.HTML(template.HTMLEscapeString(text))
	}
	return template.HTML(buf.String())
}

// LoadTemplates parses every screen template in fsys
func LoadTemplates(fsys fs.FS) (*template.Template, error) {
	funcMap := template.FuncMap{
		"card": RenderCard,
		"add": func(a, b int) int {
			return a + b
		},
		"percent": func(f float64) string {
			return fmt.Sprintf("%.0f%%", f)
		},
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(fsys, "*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return tmpl, nil
}

// render executes a template into a buffer before writing the response
func (h *StudyHandler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "Error rendering "+name, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
