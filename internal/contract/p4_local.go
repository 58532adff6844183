package contract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/p4tools/p4wrap/internal/procs"
)

// LocalP4Runner implements the P4Runner interface by executing the local
// p4 binary.
type LocalP4Runner struct {
	Bin string
}

var _ P4Runner = &LocalP4Runner{} // Compile-time check

// NewLocalP4Runner creates a runner that invokes the given p4 executable.
func NewLocalP4Runner(bin string) *LocalP4Runner {
	return &LocalP4Runner{Bin: bin}
}

// Run executes a p4 command with the locale pinned and returns its captured
// stdout.
func (r *LocalP4Runner) Run(ctx context.Context, args ...string) ([]byte, error) {
	out, err := procs.New(procs.Command{Name: r.Bin, Args: args}).Output(ctx)
	if err != nil {
		var exitErr *procs.ExitError
		if errors.As(err, &exitErr) {
			return out, fmt.Errorf("p4 %s failed: %w", strings.Join(args, " "), err)
		}
		return out, fmt.Errorf("could not execute %s (is it installed and on PATH?): %w", r.Bin, err)
	}
	return out, nil
}

// DescribeSummary implements the P4Runner interface.
func (r *LocalP4Runner) DescribeSummary(ctx context.Context, change string) ([]byte, error) {
	return r.Run(ctx, "describe", "-s", change)
}

// Opened implements the P4Runner interface.
func (r *LocalP4Runner) Opened(ctx context.Context) ([]byte, error) {
	return r.Run(ctx, "opened")
}

// Print implements the P4Runner interface. The -q flag suppresses the file
// header line so the output is the file content alone.
func (r *LocalP4Runner) Print(ctx context.Context, spec string) ([]byte, error) {
	return r.Run(ctx, "print", "-q", spec)
}

// Diff implements the P4Runner interface.
func (r *LocalP4Runner) Diff(ctx context.Context, depotPath string) ([]byte, error) {
	return r.Run(ctx, "diff", "-du", depotPath)
}

// Diff2 implements the P4Runner interface.
func (r *LocalP4Runner) Diff2(ctx context.Context, specA, specB string) ([]byte, error) {
	return r.Run(ctx, "diff2", "-du", specA, specB)
}

// Where implements the P4Runner interface by taking the local-path column of
// `p4 where` output.
func (r *LocalP4Runner) Where(ctx context.Context, depotPath string) (string, error) {
	out, err := r.Run(ctx, "where", depotPath)
	if err != nil {
		return "", err
	}
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return "", fmt.Errorf("unrecognized p4 where output %q", line)
	}
	return fields[len(fields)-1], nil
}
