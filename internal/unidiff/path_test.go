package unidiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRevision(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		wantPath string
		wantRev  string
	}{
		{"hash revision", "//depot/main/f.c#3", "//depot/main/f.c", "#3"},
		{"change revision", "//depot/main/f.c@1234", "//depot/main/f.c", "@1234"},
		{"bare path", "//depot/main/f.c", "//depot/main/f.c", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, rev := SplitRevision(tt.spec)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantRev, rev)
		})
	}
}

func TestSplitCommonSuffix(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
	}{
		{"different branches", "//depot/main/x/f.c", "//depot/rel1/x/f.c"},
		{"identical", "//depot/f.c", "//depot/f.c"},
		{"nothing shared", "abc", "xyz"},
		{"one empty", "", "//depot/f.c"},
		{"suffix is whole of one", "/f.c", "//depot/dir/f.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefixA, prefixB, suffix := SplitCommonSuffix(tt.a, tt.b)
			// Concatenation must reconstruct each input exactly.
			assert.Equal(t, tt.a, prefixA+suffix)
			assert.Equal(t, tt.b, prefixB+suffix)
		})
	}
}

func TestSplitCommonSuffixIsLongest(t *testing.T) {
	prefixA, prefixB, suffix := SplitCommonSuffix("//depot/main/x/f.c", "//depot/rel1/x/f.c")
	assert.Equal(t, "/x/f.c", suffix)
	assert.Equal(t, "//depot/main", prefixA)
	assert.Equal(t, "//depot/rel1", prefixB)
}

func TestCommonFile(t *testing.T) {
	tests := []struct {
		name  string
		specA string
		specB string
		want  string
	}{
		{
			name:  "branches with revisions",
			specA: "//depot/main/x/f.c@100",
			specB: "//depot/rel1/x/f.c@200",
			want:  "x/f.c",
		},
		{
			name:  "same file two revisions",
			specA: "//depot/f.c#1",
			specB: "//depot/f.c#2",
			want:  "depot/f.c",
		},
		{
			name:  "nothing shared falls back to first path",
			specA: "//depot/a#1",
			specB: "//other/z#2",
			want:  "depot/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CommonFile(tt.specA, tt.specB))
		})
	}
}
