// Package unidiff reconstructs unified-diff text from Perforce output.
//
// The p4 client reports adds and deletes without any diff body and embeds
// depot revision metadata in the headers of the diffs it does produce. This
// package turns all of that into standard `--- a/<path>` / `+++ b/<path>`
// patches that the system patch utility accepts with -p1.
package unidiff

import (
	"fmt"
	"regexp"
	"strings"
)

const noNewlineMarker = `\ No newline at end of file`

// splitLines breaks content into lines, reporting whether the content ended
// without a trailing newline. An empty input yields zero lines.
func splitLines(content []byte) ([]string, bool) {
	if len(content) == 0 {
		return nil, false
	}
	s := string(content)
	terminated := strings.HasSuffix(s, "\n")
	if terminated {
		s = s[:len(s)-1]
	}
	return strings.Split(s, "\n"), !terminated
}

// PatchPath normalizes a depot path like //depot/dir/file.c into
// depot/dir/file.c so that a/<path> and b/<path> headers apply with -p1.
func PatchPath(depotPath string) string {
	return strings.TrimLeft(depotPath, "/")
}

// Addition renders a unified diff that creates path with the given content.
// A file with k lines produces the hunk header @@ -0,0 +1,k @@ and k lines
// prefixed with '+'.
func Addition(path string, content []byte) string {
	lines, noEOL := splitLines(content)
	var b strings.Builder
	fmt.Fprintf(&b, "--- /dev/null\n")
	fmt.Fprintf(&b, "+++ b/%s\n", PatchPath(path))
	fmt.Fprintf(&b, "@@ -0,0 +1,%d @@\n", len(lines))
	for _, line := range lines {
		b.WriteString("+")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if noEOL {
		b.WriteString(noNewlineMarker)
		b.WriteString("\n")
	}
	return b.String()
}

// Deletion renders the mirror image of Addition: a unified diff that removes
// path, whose current content is given.
func Deletion(path string, content []byte) string {
	lines, noEOL := splitLines(content)
	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", PatchPath(path))
	fmt.Fprintf(&b, "+++ /dev/null\n")
	fmt.Fprintf(&b, "@@ -1,%d +0,0 @@\n", len(lines))
	for _, line := range lines {
		b.WriteString("-")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if noEOL {
		b.WriteString(noNewlineMarker)
		b.WriteString("\n")
	}
	return b.String()
}

var (
	bannerRe = regexp.MustCompile(`^==== .* ====`)
	fromRe   = regexp.MustCompile(`^--- .*$`)
	toRe     = regexp.MustCompile(`^\+\+\+ .*$`)
)

// RewriteHeaders converts one file's `p4 diff -du` or `p4 diff2 -du` output
// into standard unified-diff form for path: the ==== banner is dropped and
// the first ---/+++ pair, which embeds depot specs and dates, is replaced
// with a/<path> and b/<path> references.
func RewriteHeaders(diff []byte, path string) string {
	clean := PatchPath(path)
	lines := strings.Split(strings.TrimRight(string(diff), "\n"), "\n")
	out := make([]string, 0, len(lines)+1)
	sawFrom, sawTo := false, false
	for _, line := range lines {
		switch {
		case bannerRe.MatchString(line):
			continue
		case !sawFrom && fromRe.MatchString(line):
			out = append(out, "--- a/"+clean)
			sawFrom = true
		case !sawTo && toRe.MatchString(line):
			out = append(out, "+++ b/"+clean)
			sawTo = true
		default:
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

// IsIdentical reports whether diff2 output says the two revisions have the
// same content, in which case the entry contributes nothing to a patch.
func IsIdentical(diff []byte) bool {
	trimmed := strings.TrimSpace(string(diff))
	if trimmed == "" {
		return true
	}
	first, _, _ := strings.Cut(trimmed, "\n")
	return strings.HasSuffix(first, "==== identical")
}
