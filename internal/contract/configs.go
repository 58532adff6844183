package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Default executable names used when neither config nor environment says
// otherwise.
const (
	DefaultP4Bin       = "p4"
	DefaultPatchBin    = "patch"
	DefaultPager       = "less -FRX"
	DefaultHighlighter = "pygmentize -g"
)

// ConfigRawInput holds the raw, unvalidated configuration from all sources
// (file, env, flags). Viper unmarshals into this struct.
type ConfigRawInput struct {
	User        string `mapstructure:"user"`
	P4Bin       string `mapstructure:"p4-bin"`
	PatchBin    string `mapstructure:"patch-bin"`
	Pager       string `mapstructure:"pager"`
	Highlighter string `mapstructure:"highlighter"`
	Colorizer   string `mapstructure:"colorizer"`
	ColorStr    string `mapstructure:"color"`
}

// Config holds the runtime configuration for all subcommands.
// This struct remains the "final, validated" config: every value is resolved
// once at startup and threaded into operations explicitly, so tests can
// substitute fake executables.
type Config struct {
	User     string // Perforce user, for shelve listing
	P4Bin    string // path to the p4 executable
	PatchBin string // path to the system patch utility

	Pager       []string // pager argv, empty disables paging
	Highlighter []string // syntax highlighter argv for print, empty disables
	Colorizer   []string // external color-diff argv, empty selects the built-in

	UseColors bool // enable the built-in ANSI diff colorizer
}

// ProcessAndValidate resolves raw input into the final config, applying the
// environment and home-directory conventions the wrapper has always used:
// P4USER then USER for the user, the P4 env var then ~/bin/p4 for the
// executable, PAGER for the pager.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.User = input.User
	if cfg.User == "" {
		cfg.User = os.Getenv("P4USER")
	}
	if cfg.User == "" {
		cfg.User = os.Getenv("USER")
	}

	cfg.P4Bin = input.P4Bin
	if cfg.P4Bin == "" {
		cfg.P4Bin = os.Getenv("P4")
	}
	if cfg.P4Bin == "" {
		if home, err := os.UserHomeDir(); err == nil {
			candidate := filepath.Join(home, "bin", "p4")
			if _, statErr := os.Stat(candidate); statErr == nil {
				cfg.P4Bin = candidate
			}
		}
	}
	if cfg.P4Bin == "" {
		cfg.P4Bin = DefaultP4Bin
	}

	cfg.PatchBin = input.PatchBin
	if cfg.PatchBin == "" {
		cfg.PatchBin = DefaultPatchBin
	}

	pager := input.Pager
	if pager == "" {
		pager = os.Getenv("PAGER")
	}
	if pager == "" {
		pager = DefaultPager
	}
	cfg.Pager = strings.Fields(pager)

	highlighter := input.Highlighter
	if highlighter == "" {
		highlighter = DefaultHighlighter
	}
	cfg.Highlighter = strings.Fields(highlighter)

	cfg.Colorizer = strings.Fields(input.Colorizer)

	useColors, err := parseBoolean(input.ColorStr, true)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	return nil
}

// parseBoolean interprets the yes/no style toggles accepted on the command
// line and in config files.
func parseBoolean(s string, fallback bool) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return fallback, nil
	case "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("unrecognized value %q", s)
	}
}
