package cmd

import (
	"bytes"
	"context"

	"github.com/p4tools/p4wrap/internal/procs"
	"github.com/p4tools/p4wrap/internal/unidiff"
	"github.com/spf13/cobra"
)

// runPaged streams a p4 command to stdout, through the pager when stdout is
// an interactive terminal.
func runPaged(ctx context.Context, args ...string) error {
	stages := []procs.Command{{Name: cfg.P4Bin, Args: args}}
	if isTerminal() && len(cfg.Pager) > 0 {
		stages = append(stages, argvCommand(cfg.Pager))
	}
	return procs.New(stages...).Run(ctx)
}

// runColorized streams a p4 diff-producing command through a color-diff
// filter and the pager on a terminal, raw otherwise. With no external
// colorizer configured the built-in ANSI colorizer is used instead.
func runColorized(ctx context.Context, args ...string) error {
	if !isTerminal() {
		return procs.New(procs.Command{Name: cfg.P4Bin, Args: args}).Run(ctx)
	}
	if len(cfg.Colorizer) > 0 {
		stages := []procs.Command{{Name: cfg.P4Bin, Args: args}, argvCommand(cfg.Colorizer)}
		if len(cfg.Pager) > 0 {
			stages = append(stages, argvCommand(cfg.Pager))
		}
		return procs.New(stages...).Run(ctx)
	}

	out, err := p4Runner().Run(ctx, args...)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if cfg.UseColors {
		if err := unidiff.Colorize(&buf, out); err != nil {
			return err
		}
	} else {
		buf.Write(out)
	}
	if len(cfg.Pager) > 0 {
		return procs.New(argvCommand(cfg.Pager)).WithStdin(&buf).Run(ctx)
	}
	return writeOut(buf.String())
}

// listshCmd lists the configured user's shelved changesets.
var listshCmd = &cobra.Command{
	Use:   "listsh",
	Short: "List shelved changesets for the configured user.",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return runPaged(rootCtx, "changes", "-s", "shelved", "-u", cfg.User)
	},
}

// printCmd prints a depot revision, syntax highlighted and paged on a
// terminal, raw otherwise.
var printCmd = &cobra.Command{
	Use:   "print <file[#rev]>",
	Short: "Print a file revision, highlighted and paged on a terminal.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		p4Args := append([]string{"print", "-q"}, args...)
		if !isTerminal() {
			return procs.New(procs.Command{Name: cfg.P4Bin, Args: p4Args}).Run(rootCtx)
		}
		stages := []procs.Command{{Name: cfg.P4Bin, Args: p4Args}}
		if len(cfg.Highlighter) > 0 {
			stages = append(stages, argvCommand(cfg.Highlighter))
		}
		if len(cfg.Pager) > 0 {
			stages = append(stages, argvCommand(cfg.Pager))
		}
		return procs.New(stages...).Run(rootCtx)
	},
}

// statusCmd shows the files currently opened in the workspace.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show files opened for edit, add or delete.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(_ *cobra.Command, args []string) error {
		return runPaged(rootCtx, append([]string{"opened"}, args...)...)
	},
}

// unchangedCmd lists opened files whose content matches the depot.
var unchangedCmd = &cobra.Command{
	Use:   "unchanged",
	Short: "List opened files that are unchanged from the depot.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(_ *cobra.Command, args []string) error {
		return runPaged(rootCtx, append([]string{"diff", "-sr"}, args...)...)
	},
}

// annotateCmd shows per-line changeset attribution.
var annotateCmd = &cobra.Command{
	Use:   "annotate <file>",
	Short: "Annotate each line with the changeset that introduced it.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runPaged(rootCtx, append([]string{"annotate", "-c"}, args...)...)
	},
}

// describeCmd shows a changeset with its diffs, colorized and paged.
var describeCmd = &cobra.Command{
	Use:   "describe <change>",
	Short: "Describe a changeset with colorized diffs.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runColorized(rootCtx, append([]string{"describe", "-du"}, args...)...)
	},
}

// diffCmd diffs the workspace against the depot, colorized and paged.
var diffCmd = &cobra.Command{
	Use:   "diff [file...]",
	Short: "Diff opened files against the depot with colorized output.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(_ *cobra.Command, args []string) error {
		return runColorized(rootCtx, append([]string{"diff", "-du"}, args...)...)
	},
}
