package unidiff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const describeOutput = `Change 1234 by alice@ws1 on 2024/03/01 12:00:00

	Fix the frobnicator

Affected files ...

... //depot/main/frob.c#7 edit
... //depot/main/frob_test.c#1 add
... //depot/main/legacy.c#4 delete
`

func TestParseDescribeFiles(t *testing.T) {
	files, err := ParseDescribeFiles([]byte(describeOutput))
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, FileChange{DepotPath: "//depot/main/frob.c", Rev: 7, Action: ActionEdit}, files[0])
	assert.Equal(t, FileChange{DepotPath: "//depot/main/frob_test.c", Rev: 1, Action: ActionAdd}, files[1])
	assert.Equal(t, FileChange{DepotPath: "//depot/main/legacy.c", Rev: 4, Action: ActionDelete}, files[2])
}

func TestParseDescribeFilesUnsupportedType(t *testing.T) {
	out := strings.ReplaceAll(describeOutput, "edit", "integrate")

	_, err := ParseDescribeFiles([]byte(out))
	require.Error(t, err)
	// The diagnostic must name the offending keyword.
	assert.Contains(t, err.Error(), "integrate")

	var unsupported *UnsupportedActionError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "integrate", unsupported.Keyword)
}

func TestParseDescribeFilesMalformedEntry(t *testing.T) {
	out := "Affected files ...\n\n... //depot/main/frob.c edit\n"

	_, err := ParseDescribeFiles([]byte(out))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized file entry")
}

func TestParseOpened(t *testing.T) {
	out := strings.Join([]string{
		"//depot/main/a.c#3 - edit change 999 (text)",
		"//depot/main/b.txt#1 - add default change (text)",
		"//depot/main/c.c#9 - delete change 999 (xtext)",
	}, "\n") + "\n"

	files, err := ParseOpened([]byte(out))
	require.NoError(t, err)
	require.Len(t, files, 3)

	assert.Equal(t, ActionEdit, files[0].Action)
	assert.Equal(t, "//depot/main/a.c", files[0].DepotPath)
	assert.Equal(t, 3, files[0].Rev)
	assert.Equal(t, ActionAdd, files[1].Action)
	assert.Equal(t, ActionDelete, files[2].Action)
}

func TestParseOpenedSkipsInfoLines(t *testing.T) {
	files, err := ParseOpened([]byte("File(s) not opened on this client.\n"))
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestNormalizeAction(t *testing.T) {
	tests := []struct {
		keyword string
		want    Action
		wantErr bool
	}{
		{keyword: "add", want: ActionAdd},
		{keyword: "branch", want: ActionAdd},
		{keyword: "move/add", want: ActionAdd},
		{keyword: "edit", want: ActionEdit},
		{keyword: "delete", want: ActionDelete},
		{keyword: "move/delete", want: ActionDelete},
		{keyword: "purge", wantErr: true},
		{keyword: "integrate", wantErr: true},
		{keyword: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			got, err := NormalizeAction(tt.keyword)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileChangeSpecs(t *testing.T) {
	f := FileChange{DepotPath: "//depot/x.c", Rev: 5, Action: ActionEdit}
	assert.Equal(t, "//depot/x.c#5", f.Spec())
	assert.Equal(t, "//depot/x.c#4", f.PrevSpec())
}
