// main holds the entry logic for the p4wrap CLI.
package main

import (
	"errors"
	"os"
	"os/exec"
	"os/signal"

	"github.com/p4tools/p4wrap/cmd"
	"github.com/p4tools/p4wrap/internal/contract"
	"github.com/p4tools/p4wrap/internal/procs"
)

// interruptExitCode is returned after Ctrl-C so callers can tell an
// interrupted run from a failed one.
const interruptExitCode = 4

// handleInterrupt restores the terminal and exits when the user hits Ctrl-C
// mid-pager or mid-pipeline. Child processes in our process group receive
// the signal on their own.
func handleInterrupt() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)
	go func() {
		<-ch
		// A killed pager can leave the terminal in a raw state.
		sane := exec.Command("stty", "sane")
		sane.Stdin = os.Stdin
		_ = sane.Run()
		os.Exit(interruptExitCode)
	}()
}

// isChildExit reports whether err only carries a child process's exit
// status, which the child has already explained on stderr.
func isChildExit(err error) bool {
	var exitErr *procs.ExitError
	return errors.As(err, &exitErr)
}

func main() {
	handleInterrupt()
	err := cmd.Execute()
	if err != nil && !isChildExit(err) && !procs.IsBrokenPipe(err) {
		// Failures of our own logic deserve a diagnostic; child processes
		// have already written theirs to stderr.
		contract.LogWarn("command failed", err)
	}
	os.Exit(cmd.ExitCode(err))
}
