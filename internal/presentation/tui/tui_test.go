package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner_Ascii(t *testing.T) {
	buf := &bytes.Buffer{}
	PrintBanner(buf, termenv.Ascii, "1.2.3")

	out := buf.String()
	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "v1.2.3")
	assert.Equal(t, len(bannerLines)+3, strings.Count(out, "\n"))
}

func TestNewRenderer_KeepsText(t *testing.T) {
	render := NewRenderer()

	out, err := render("**Choose a function:**")
	require.NoError(t, err)
	assert.Contains(t, out, "Choose a function:")
}
