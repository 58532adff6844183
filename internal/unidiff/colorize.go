package unidiff

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Diff colors for the built-in colorizer, used when no external color-diff
// utility is configured.
var (
	addColor    = color.New(color.FgGreen)
	delColor    = color.New(color.FgRed)
	hunkColor   = color.New(color.FgCyan)
	headerColor = color.New(color.FgWhite, color.Bold)
)

// Colorize writes diff text to w with ANSI colors applied per line class:
// headers bold, hunk markers cyan, additions green, deletions red. Everything
// else passes through unchanged.
func Colorize(w io.Writer, diff []byte) error {
	sc := bufio.NewScanner(strings.NewReader(string(diff)))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		var err error
		switch {
		case strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ ") || strings.HasPrefix(line, "==== "):
			_, err = headerColor.Fprintln(w, line)
		case strings.HasPrefix(line, "@@"):
			_, err = hunkColor.Fprintln(w, line)
		case strings.HasPrefix(line, "+"):
			_, err = addColor.Fprintln(w, line)
		case strings.HasPrefix(line, "-"):
			_, err = delColor.Fprintln(w, line)
		default:
			_, err = fmt.Fprintln(w, line)
		}
		if err != nil {
			return err
		}
	}
	return sc.Err()
}
