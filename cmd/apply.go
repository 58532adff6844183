package cmd

import (
	"context"

	"github.com/p4tools/p4wrap/internal/patcher"
	"github.com/p4tools/p4wrap/internal/procs"
	"github.com/spf13/cobra"
)

// runPatchUtility invokes the system patch utility with fixed strip flags
// against a staged or user-supplied patch file. reverse selects -R.
func runPatchUtility(ctx context.Context, patchFile string, reverse bool) error {
	args := []string{"-p1", "-i", patchFile}
	if reverse {
		args = append([]string{"-R"}, args...)
	}
	return procs.New(procs.Command{Name: cfg.PatchBin, Args: args}).Run(ctx)
}

// stageChangeset builds a changeset's patch into a temp file and hands it to
// the patch utility. The staging file is removed whether or not the build or
// the application succeeds.
func stageChangeset(ctx context.Context, change string, reverse bool) error {
	builder := patcher.NewBuilder(p4Runner())
	patch, err := builder.ChangesetPatch(ctx, change)
	if err != nil {
		return err
	}
	staged, cleanup, err := patcher.Stage(patch)
	if err != nil {
		return err
	}
	defer cleanup()
	return runPatchUtility(ctx, staged, reverse)
}

// applyCmd applies a changeset's reconstructed patch to the current tree,
// or a plain patch file when the argument is not a changeset number.
var applyCmd = &cobra.Command{
	Use:   "apply <change|patch-file>",
	Short: "Apply a changeset's patch, or a patch file, to the working tree.",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if patcher.IsChangeNumber(args[0]) {
			return stageChangeset(rootCtx, args[0], false)
		}
		return runPatchUtility(rootCtx, args[0], false)
	},
}

// revertCmd backs out a changeset by reverse-applying its reconstructed
// patch; without a changeset number it falls back to native p4 revert.
var revertCmd = &cobra.Command{
	Use:   "revert [change | p4-revert-args...]",
	Short: "Back out a changeset's patch, or run native p4 revert.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 1 && patcher.IsChangeNumber(args[0]) {
			return stageChangeset(rootCtx, args[0], true)
		}
		return passthrough(rootCtx, append([]string{"revert"}, args...))
	},
}
