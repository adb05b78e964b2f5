package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	printOK(&buf, "dental", "loaded")
	printMiss(&buf, "", "gone")
	printSection(&buf, "Title")
	assert.Equal(t, "  ✓  [dental] loaded\n  -  gone\n\n=== Title ===\n", buf.String())
}

func TestRenderer_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf)
	assert.False(t, r.styled)
	assert.Equal(t, defaultWidth, r.width)
	assert.Equal(t, "Heading", r.heading("Heading"))
}

func TestRenderer_Wrap(t *testing.T) {
	r := renderer{width: 24}
	text := "one two three four five six seven eight nine ten"
	got := r.wrap(text, 2)

	lines := strings.Split(got, "\n")
	assert.Greater(t, len(lines), 1)
	var words []string
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, "  "), l)
		assert.LessOrEqual(t, len(l), 24, l)
		words = append(words, strings.Fields(l)...)
	}
	assert.Equal(t, strings.Fields(text), words)
}
