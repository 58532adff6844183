package unidiff

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Action is a normalized change type from a describe or opened listing.
type Action string

// Normalized change actions. Perforce's move/add and move/delete collapse
// onto plain add and delete for patch purposes; branch is an add.
const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// UnsupportedActionError reports a change-type keyword the patch
// reconstruction does not understand. The whole operation aborts on it
// rather than guessing.
type UnsupportedActionError struct {
	Keyword string
}

func (e *UnsupportedActionError) Error() string {
	return fmt.Sprintf("unsupported change type %q", e.Keyword)
}

// NormalizeAction maps a raw p4 change-type keyword to an Action.
func NormalizeAction(keyword string) (Action, error) {
	switch keyword {
	case "add", "branch", "move/add":
		return ActionAdd, nil
	case "edit":
		return ActionEdit, nil
	case "delete", "move/delete":
		return ActionDelete, nil
	default:
		return "", &UnsupportedActionError{Keyword: keyword}
	}
}

// FileChange is one entry of a changeset description or opened listing.
type FileChange struct {
	DepotPath string
	Rev       int
	Action    Action
}

// Spec returns the path#rev expression for the entry's own revision.
func (f FileChange) Spec() string {
	return fmt.Sprintf("%s#%d", f.DepotPath, f.Rev)
}

// PrevSpec returns the path#rev expression for the revision preceding the
// entry's own, which holds the content a delete removes.
func (f FileChange) PrevSpec() string {
	return fmt.Sprintf("%s#%d", f.DepotPath, f.Rev-1)
}

// The fixed layouts below are a documented contract with the p4 client.
// Lines that look like entries but do not match them exactly are parse
// failures, never loosely guessed at.
var (
	// "... //depot/dir/file.c#3 edit" from `p4 describe -s`.
	describeEntryRe = regexp.MustCompile(`^\.\.\. (//[^#]+)#(\d+) (\S+)$`)

	// "//depot/dir/file.c#3 - edit change 1234 (text)" from `p4 opened`.
	openedEntryRe = regexp.MustCompile(`^(//[^#]+)#(\d+) - (\S+) `)
)

// ParseDescribeFiles extracts the affected-file entries from `p4 describe -s`
// output. Entries appear after the "Affected files ..." marker, one per
// "... " line.
func ParseDescribeFiles(out []byte) ([]FileChange, error) {
	var changes []FileChange
	inFiles := false
	for _, line := range strings.Split(string(out), "\n") {
		if strings.HasPrefix(line, "Affected files") {
			inFiles = true
			continue
		}
		if !inFiles || !strings.HasPrefix(line, "... ") {
			continue
		}
		change, err := parseEntry(describeEntryRe, line)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// ParseOpened extracts entries from `p4 opened` output. Informational lines
// such as "File(s) not opened on this client." are skipped.
func ParseOpened(out []byte) ([]FileChange, error) {
	var changes []FileChange
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.HasPrefix(line, "//") {
			continue
		}
		change, err := parseEntry(openedEntryRe, line)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}

func parseEntry(re *regexp.Regexp, line string) (FileChange, error) {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return FileChange{}, fmt.Errorf("unrecognized file entry %q", line)
	}
	rev, err := strconv.Atoi(m[2])
	if err != nil {
		return FileChange{}, fmt.Errorf("unrecognized revision in %q: %w", line, err)
	}
	action, err := NormalizeAction(m[3])
	if err != nil {
		return FileChange{}, err
	}
	return FileChange{DepotPath: m[1], Rev: rev, Action: action}, nil
}
