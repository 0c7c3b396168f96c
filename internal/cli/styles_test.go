package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSuccess(t *testing.T) {
	out := FormatSuccess("done")
	assert.Contains(t, out, SuccessIcon)
	assert.Contains(t, out, "done")
}

func TestFormatError(t *testing.T) {
	out := FormatError("failed")
	assert.Contains(t, out, ErrorIcon)
	assert.Contains(t, out, "failed")
}

func TestRenderBar(t *testing.T) {
	count := func(s string) int { return strings.Count(s, "█") }

	assert.Equal(t, 30, count(RenderBar(100, 100, 30)), "max value fills the bar")
	assert.Equal(t, 15, count(RenderBar(50, 100, 30)))
	assert.Equal(t, 1, count(RenderBar(0.1, 100, 30)), "tiny values still show one cell")

	assert.Empty(t, RenderBar(0, 100, 30))
	assert.Empty(t, RenderBar(10, 0, 30))
	assert.Empty(t, RenderBar(10, 100, 0))
}
