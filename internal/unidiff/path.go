package unidiff

import "strings"

// SplitRevision separates a revision qualifier from a path expression:
// //depot/f.c#3 yields (//depot/f.c, "#3") and //depot/f.c@1234 yields
// (//depot/f.c, "@1234"). A bare path returns an empty qualifier.
func SplitRevision(spec string) (path, rev string) {
	if i := strings.LastIndexAny(spec, "#@"); i >= 0 {
		return spec[:i], spec[i:]
	}
	return spec, ""
}

// SplitCommonSuffix splits two path expressions around their longest common
// suffix, so that prefixA+suffix == a and prefixB+suffix == b hold exactly.
// Comparing //depot/main/x/f.c against //depot/rel1/x/f.c this way recovers
// the shared /x/f.c tail that names the file in rewritten diff headers.
func SplitCommonSuffix(a, b string) (prefixA, prefixB, suffix string) {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return a[:len(a)-n], b[:len(b)-n], a[len(a)-n:]
}

// CommonFile returns the shared filename of two revision expressions for use
// in a/<path> b/<path> headers: revision qualifiers are stripped, the longest
// common suffix is taken, and any leading separator is dropped. When the two
// paths share nothing, the first path is used whole.
func CommonFile(specA, specB string) string {
	pathA, _ := SplitRevision(specA)
	pathB, _ := SplitRevision(specB)
	_, _, suffix := SplitCommonSuffix(pathA, pathB)
	if suffix == "" {
		return PatchPath(pathA)
	}
	return strings.TrimLeft(suffix, "/")
}
