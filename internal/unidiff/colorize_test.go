package unidiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorize(t *testing.T) {
	// Force escape codes even though the test runner is not a terminal.
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	diff := strings.Join([]string{
		"--- a/depot/f.c",
		"+++ b/depot/f.c",
		"@@ -1,2 +1,2 @@",
		" context",
		"-removed",
		"+added",
	}, "\n") + "\n"

	var buf bytes.Buffer
	require.NoError(t, Colorize(&buf, []byte(diff)))

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)

	// Context lines pass through unchanged.
	assert.Equal(t, " context", lines[3])
	// Colored lines carry escape codes and keep their content.
	assert.Contains(t, lines[4], "removed")
	assert.Contains(t, lines[4], "\x1b[")
	assert.Contains(t, lines[5], "added")
	assert.Contains(t, lines[5], "\x1b[")
}

func TestColorizeDisabled(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	diff := "+added\n-removed\n"
	var buf bytes.Buffer
	require.NoError(t, Colorize(&buf, []byte(diff)))
	assert.Equal(t, diff, buf.String())
}
