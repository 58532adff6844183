package cmd

import (
	"github.com/spf13/cobra"
)

// realCmd is the escape hatch: it strips itself and forwards everything else
// to p4, even argument lists that would otherwise collide with wrapper
// subcommand names (e.g. `p4wrap real diff`).
var realCmd = &cobra.Command{
	Use:                "real [p4-args...]",
	Short:              "Forward all remaining arguments to p4 verbatim.",
	DisableFlagParsing: true,
	RunE: func(_ *cobra.Command, args []string) error {
		return passthrough(rootCtx, args)
	},
}
