package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintCheck(t *testing.T) {
	var buf bytes.Buffer
	err := printCheck(&buf, "Question,Answer\nApple,りんご\nlonely\n\"a, b\",c\n")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"Apple"`)
	assert.Contains(t, out, `"a, b"`)
	assert.Contains(t, out, "2 cards, 1 rows skipped")
}

func TestPrintCheck_NoCards(t *testing.T) {
	var buf bytes.Buffer
	err := printCheck(&buf, "Question,Answer\n")
	assert.Error(t, err)
	assert.Contains(t, buf.String(), "0 cards, 0 rows skipped")
}
