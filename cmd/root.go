// Package cmd defines the command-line interface for p4wrap.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/p4tools/p4wrap/internal/contract"
	"github.com/p4tools/p4wrap/internal/procs"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "p4wrap",
	Short:              "Convenience wrapper around the Perforce p4 client.",
	Long:               `p4wrap adds patch generation, patch apply/revert and colorized paged display on top of p4; everything it does not recognize is forwarded to p4 untouched.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		// Set config file name and paths
		viper.SetConfigName(".p4wrap") // Name of config file (without extension)
		viper.SetConfigType("yaml")    // We'll use YAML format
		viper.AddConfigPath(".")       // Look in the current directory
		viper.AddConfigPath("$HOME")   // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("P4WRAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	viper.SetDefault("user", "")
	viper.SetDefault("p4-bin", "")
	viper.SetDefault("patch-bin", "")
	viper.SetDefault("pager", "")
	viper.SetDefault("highlighter", "")
	viper.SetDefault("colorizer", "")
	viper.SetDefault("color", "yes")
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env/flags.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and environment fallbacks.
	// This function populates the global 'cfg' from 'input'.
	return contract.ProcessAndValidate(cfg, input)
}

// p4Runner returns the captured-output runner for the configured executable.
func p4Runner() contract.P4Runner {
	return contract.NewLocalP4Runner(cfg.P4Bin)
}

// isTerminal reports whether stdout is attached to an interactive terminal,
// which gates paging and colorization.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// argvCommand turns a configured argv like ["less", "-FRX"] into a stage.
func argvCommand(argv []string) procs.Command {
	return procs.Command{Name: argv[0], Args: argv[1:]}
}

// passthrough forwards the argument vector to p4 verbatim, inheriting the
// caller's streams.
func passthrough(ctx context.Context, args []string) error {
	return procs.New(procs.Command{Name: cfg.P4Bin, Args: args}).Run(ctx)
}

// knownSubcommand reports whether the first CLI argument names one of our
// own subcommands (or a cobra builtin / flag) and should be dispatched to
// cobra instead of falling through to p4.
func knownSubcommand(arg string) bool {
	switch arg {
	// Our own help and version surface; any other leading flag belongs to
	// p4 (e.g. `p4 -u alice changes`) and falls through with the rest.
	case "help", "completion", "--help", "-h", "--version":
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == arg {
			return true
		}
	}
	return false
}

// writeOut writes generated text to stdout, treating a broken pipe (the user
// closed the pager early) as a clean termination.
func writeOut(s string) error {
	if _, err := os.Stdout.WriteString(s); err != nil {
		if procs.IsBrokenPipe(err) {
			return nil
		}
		return err
	}
	return nil
}

// Execute runs the root command. A first argument that is not one of our
// subcommands, or an empty argument list, forwards everything to p4
// unchanged, so plain p4 usage keeps working through the wrapper.
func Execute() error {
	args := os.Args[1:]
	if len(args) == 0 || !knownSubcommand(args[0]) {
		initConfig()
		if err := sharedSetup(nil, nil); err != nil {
			return err
		}
		return passthrough(rootCtx, args)
	}
	return rootCmd.Execute()
}

// ExitCode maps an error returned by Execute to the wrapper's process exit
// code: spawned-process codes are surfaced unchanged, broken pipes are
// benign, I/O failures exit with the OS errno, and anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if procs.IsBrokenPipe(err) {
		return 0
	}
	return procs.ExitCode(err)
}
