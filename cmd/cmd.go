package cmd

import (
	"github.com/p4tools/p4wrap/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Every subcommand needs the resolved configuration
	rootCmd.PersistentPreRunE = sharedSetup

	// Add subcommands to the root command
	rootCmd.AddCommand(listshCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(unchangedCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(patchCmd)
	rootCmd.AddCommand(diff2PatchCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(revertCmd)
	rootCmd.AddCommand(realCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("user", "", "Perforce user for shelve listing (default: P4USER, then USER)")
	rootCmd.PersistentFlags().String("p4-bin", "", "Path to the p4 executable (default: P4 env var, ~/bin/p4, then PATH lookup)")
	rootCmd.PersistentFlags().String("patch-bin", "", "Path to the system patch utility")
	rootCmd.PersistentFlags().String("pager", "", "Pager command line (default: PAGER, then 'less -FRX')")
	rootCmd.PersistentFlags().String("highlighter", "", "Syntax highlighter command line for print (default: 'pygmentize -g')")
	rootCmd.PersistentFlags().String("colorizer", "", "External color-diff command line (default: built-in colorizer)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable built-in diff colorization (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
