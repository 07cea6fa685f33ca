package styles

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("anything", 0))
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "Pride a...", Truncate("Pride and Prejudice", 10))
	assert.Equal(t, "Pr", Truncate("Pride", 2))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "abc", Pad("abcdef", 3))
}

func TestRenderListRow_FillsWidth(t *testing.T) {
	row := RenderListRow([]RowPart{{Text: "84. Frankenstein"}}, true, 30)
	assert.Equal(t, 30, ansi.StringWidth(row))
}
