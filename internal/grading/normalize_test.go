package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: " \t\n ", want: ""},
		{name: "trim and lower", input: "  Tokyo ", want: "tokyo"},
		{name: "internal whitespace removed", input: "New  York", want: "newyork"},
		{name: "tabs and newlines removed", input: "a\tb\nc", want: "abc"},
		{name: "half-width katakana", input: "ﾈｺ", want: "ネコ"},
		{name: "half-width voiced mark composes", input: "ｶﾞｯｺｳ", want: "ガッコウ"},
		{name: "full-width latin", input: "ＴＯＫＹＯ", want: "tokyo"},
		{name: "ideographic space", input: "おはよう　ございます", want: "おはようございます"},
		{name: "full case folding", input: "Straße", want: "strasse"},
		{name: "hiragana untouched", input: "りんご", want: "りんご"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"  Tokyo ",
		"ﾈｺ",
		"ｶﾞｯｺｳ",
		"ＡＢＣ　ｄｅｆ",
		"New York",
		"Straße",
		"Ⅻ",
		"ﬁne",
		"he said \"hi\"",
		"a \u0301",
		"e\u3000\u0308",
		"A \u030a B",
		"ｶ ﾞ",
		" \u0301",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}

func TestNormalize_ComposesAcrossRemovedSpace(t *testing.T) {
	assert.Equal(t, "\u00e1", Normalize("a \u0301"))
	assert.True(t, Equivalent("a \u0301", "\u00e1"))
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		want     bool
	}{
		{name: "padding and case", input: "  Tokyo ", expected: "tokyo", want: true},
		{name: "half and full width", input: "ﾈｺ", expected: "ネコ", want: true},
		{name: "whitespace inside", input: "NewYork", expected: "New York", want: true},
		{name: "both empty", input: "", expected: "   ", want: true},
		{name: "different word", input: "Kyoto", expected: "Tokyo", want: false},
		{name: "no fuzzy match", input: "Tokio", expected: "Tokyo", want: false},
		{name: "hiragana is not katakana", input: "ねこ", expected: "ネコ", want: false},
		{name: "empty against answer", input: "", expected: "りんご", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equivalent(tt.input, tt.expected))
		})
	}
}
