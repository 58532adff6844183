package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownSubcommand(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{"listsh", true},
		{"print", true},
		{"status", true},
		{"unchanged", true},
		{"annotate", true},
		{"describe", true},
		{"diff", true},
		{"patch", true},
		{"diff2_patch", true},
		{"apply", true},
		{"revert", true},
		{"real", true},
		{"version", true},
		{"help", true},
		{"completion", true},
		{"--help", true},
		{"-h", true},
		// Plain p4 subcommands fall through to the real client, and so do
		// p4 global flags like `-u alice`.
		{"sync", false},
		{"submit", false},
		{"changes", false},
		{"edit", false},
		{"-u", false},
		{"-c", false},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, knownSubcommand(tt.arg))
		})
	}
}

func TestPassthroughForwardsArgvVerbatim(t *testing.T) {
	// A fake p4 records its argv; forwarding must reproduce exactly the
	// invocation a direct p4 call would have received.
	dir := t.TempDir()
	record := filepath.Join(dir, "argv")
	bin := filepath.Join(dir, "p4")
	script := "#!/bin/sh\nprintf '%s\\n' \"$@\" > " + record + "\n"
	require.NoError(t, os.WriteFile(bin, []byte(script), 0o755))

	prev := cfg.P4Bin
	cfg.P4Bin = bin
	defer func() { cfg.P4Bin = prev }()

	args := []string{"sync", "//depot/main/...@1234", "-n"}
	require.NoError(t, passthrough(context.Background(), args))

	got, err := os.ReadFile(record)
	require.NoError(t, err)
	assert.Equal(t, "sync\n//depot/main/...@1234\n-n\n", string(got))
}

func TestArgvCommand(t *testing.T) {
	c := argvCommand([]string{"less", "-FRX"})
	assert.Equal(t, "less", c.Name)
	assert.Equal(t, []string{"-FRX"}, c.Args)

	c = argvCommand([]string{"colordiff"})
	assert.Equal(t, "colordiff", c.Name)
	assert.Empty(t, c.Args)
}
