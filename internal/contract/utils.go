package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// ErrorColor highlights fatal diagnostics on stderr.
var ErrorColor = color.New(color.FgRed, color.Bold)

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = ErrorColor.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}
