// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "context"

// P4Runner defines the captured-output operations against the Perforce
// client that patch reconstruction depends on. This allows the patch logic
// to be tested without needing a real p4 executable, and keeps the fragile
// output-scraping behind one seam.
type P4Runner interface {
	// --- Generic / Low-Level ---

	// Run executes a p4 command and returns its captured stdout.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, args ...string) ([]byte, error)

	// --- Changeset / Workspace State ---

	// DescribeSummary returns `p4 describe -s <change>` output: the change
	// description plus its affected-file entries, without diffs.
	DescribeSummary(ctx context.Context, change string) ([]byte, error)

	// Opened returns `p4 opened` output for the current workspace.
	Opened(ctx context.Context) ([]byte, error)

	// --- File Content / Diffs ---

	// Print returns the raw content of the given path#rev or path@change
	// expression without the p4 header line.
	Print(ctx context.Context, spec string) ([]byte, error)

	// Diff returns `p4 diff -du` output for an opened workspace file.
	Diff(ctx context.Context, depotPath string) ([]byte, error)

	// Diff2 returns `p4 diff2 -du` output comparing two revision expressions.
	Diff2(ctx context.Context, specA, specB string) ([]byte, error)

	// Where resolves a depot path to its local filesystem path in the
	// current workspace mapping.
	Where(ctx context.Context, depotPath string) (string, error)
}
