package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMarkdown(t *testing.T) {
	got, err := ToMarkdown("<h2>Heading</h2><p>Some <strong>bold</strong> text.</p>", "")
	require.NoError(t, err)

	assert.Contains(t, got, "## Heading")
	assert.Contains(t, got, "**bold**")
}

func TestToMarkdown_Empty(t *testing.T) {
	got, err := ToMarkdown("", "")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
