// Package patcher reconstructs unified patches from Perforce changesets or
// the open workspace, and drives the system patch utility to apply or back
// them out.
package patcher

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/p4tools/p4wrap/internal/contract"
	"github.com/p4tools/p4wrap/internal/unidiff"
)

// IsChangeNumber reports whether the argument names a changeset: a nonempty
// run of digits.
func IsChangeNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Builder reconstructs patches through a P4Runner. ReadFile is settable so
// tests can supply workspace file content without touching the filesystem.
type Builder struct {
	P4       contract.P4Runner
	ReadFile func(name string) ([]byte, error)
}

// NewBuilder returns a Builder backed by the given runner and the local
// filesystem.
func NewBuilder(p4 contract.P4Runner) *Builder {
	return &Builder{P4: p4, ReadFile: os.ReadFile}
}

// ChangesetPatch rebuilds the unified patch for a submitted changeset from
// its describe summary: adds and deletes are reconstructed from printed file
// content, edits from diff2 between the adjacent revisions. Any unsupported
// change type aborts the whole patch.
func (b *Builder) ChangesetPatch(ctx context.Context, change string) (string, error) {
	out, err := b.P4.DescribeSummary(ctx, change)
	if err != nil {
		return "", err
	}
	files, err := unidiff.ParseDescribeFiles(out)
	if err != nil {
		return "", err
	}

	var patch strings.Builder
	for _, f := range files {
		switch f.Action {
		case unidiff.ActionAdd:
			content, err := b.P4.Print(ctx, f.Spec())
			if err != nil {
				return "", err
			}
			patch.WriteString(unidiff.Addition(f.DepotPath, content))
		case unidiff.ActionDelete:
			content, err := b.P4.Print(ctx, f.PrevSpec())
			if err != nil {
				return "", err
			}
			patch.WriteString(unidiff.Deletion(f.DepotPath, content))
		case unidiff.ActionEdit:
			diff, err := b.P4.Diff2(ctx, f.PrevSpec(), f.Spec())
			if err != nil {
				return "", err
			}
			if unidiff.IsIdentical(diff) {
				continue
			}
			patch.WriteString(unidiff.RewriteHeaders(diff, f.DepotPath))
		}
	}
	return patch.String(), nil
}

// WorkspacePatch rebuilds the unified patch for the uncommitted workspace
// state from the opened-file listing: edits come from the workspace diff,
// adds from the local file content, deletes from the last submitted revision.
func (b *Builder) WorkspacePatch(ctx context.Context) (string, error) {
	out, err := b.P4.Opened(ctx)
	if err != nil {
		return "", err
	}
	files, err := unidiff.ParseOpened(out)
	if err != nil {
		return "", err
	}

	var patch strings.Builder
	for _, f := range files {
		switch f.Action {
		case unidiff.ActionAdd:
			local, err := b.P4.Where(ctx, f.DepotPath)
			if err != nil {
				return "", err
			}
			content, err := b.ReadFile(local)
			if err != nil {
				return "", err
			}
			patch.WriteString(unidiff.Addition(f.DepotPath, content))
		case unidiff.ActionDelete:
			content, err := b.P4.Print(ctx, f.Spec())
			if err != nil {
				return "", err
			}
			patch.WriteString(unidiff.Deletion(f.DepotPath, content))
		case unidiff.ActionEdit:
			diff, err := b.P4.Diff(ctx, f.DepotPath)
			if err != nil {
				return "", err
			}
			if unidiff.IsIdentical(diff) {
				continue
			}
			patch.WriteString(unidiff.RewriteHeaders(diff, f.DepotPath))
		}
	}
	return patch.String(), nil
}

// Diff2Patch rebuilds the unified diff between two arbitrary revision
// expressions. The rewritten headers use the longest common suffix of the
// two paths as the filename.
func (b *Builder) Diff2Patch(ctx context.Context, specA, specB string) (string, error) {
	diff, err := b.P4.Diff2(ctx, specA, specB)
	if err != nil {
		return "", err
	}
	if unidiff.IsIdentical(diff) {
		return "", nil
	}
	return unidiff.RewriteHeaders(diff, unidiff.CommonFile(specA, specB)), nil
}

// Stage writes patch text to a temporary staging file and returns its path
// together with a cleanup function. The cleanup must run whether or not the
// patch application succeeds.
func Stage(patch string) (string, func(), error) {
	tmp, err := os.CreateTemp("", "p4wrap-*.patch")
	if err != nil {
		return "", nil, fmt.Errorf("create staging file: %w", err)
	}
	name := tmp.Name()
	cleanup := func() { _ = os.Remove(name) }
	if _, err := tmp.WriteString(patch); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", nil, fmt.Errorf("write staging file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("close staging file: %w", err)
	}
	return name, cleanup, nil
}
