package cmd

import (
	"fmt"

	"github.com/p4tools/p4wrap/internal/patcher"
	"github.com/spf13/cobra"
)

// patchCmd writes a reconstructed unified patch to stdout: for a submitted
// changeset when given its number, for the open workspace state otherwise.
var patchCmd = &cobra.Command{
	Use:   "patch [change]",
	Short: "Write a unified patch for a changeset or the open workspace.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		builder := patcher.NewBuilder(p4Runner())
		var patch string
		var err error
		switch {
		case len(args) == 0:
			patch, err = builder.WorkspacePatch(rootCtx)
		case patcher.IsChangeNumber(args[0]):
			patch, err = builder.ChangesetPatch(rootCtx, args[0])
		default:
			return fmt.Errorf("not a changeset number: %q", args[0])
		}
		if err != nil {
			return err
		}
		return writeOut(patch)
	},
}

// diff2PatchCmd writes a unified patch between two arbitrary revision
// expressions, e.g. //depot/main/f.c@100 //depot/rel1/f.c@200.
var diff2PatchCmd = &cobra.Command{
	Use:   "diff2_patch <spec1> <spec2>",
	Short: "Write a unified patch between two revision expressions.",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		builder := patcher.NewBuilder(p4Runner())
		patch, err := builder.Diff2Patch(rootCtx, args[0], args[1])
		if err != nil {
			return err
		}
		return writeOut(patch)
	},
}
