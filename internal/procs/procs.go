// Package procs runs external commands, optionally chained into a shell-style
// pipeline where each stage's stdout feeds the next stage's stdin.
package procs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// Command describes one external process invocation.
type Command struct {
	Name string   // executable name or path
	Args []string // argument vector, not including Name
	Env  []string // extra KEY=VALUE entries appended to the inherited environment
}

// ExitError carries a nonzero exit code from the final pipeline stage so that
// callers can surface it unchanged.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Pipeline is an ordered list of commands chained stdout-to-stdin.
// A single-command pipeline degenerates to a plain invocation.
type Pipeline struct {
	stages []Command
	stdin  io.Reader
}

// New builds a pipeline from one or more command stages.
func New(stages ...Command) *Pipeline {
	return &Pipeline{stages: stages}
}

// WithStdin supplies a reader for the first stage's standard input.
// By default the first stage inherits the caller's stdin.
func (p *Pipeline) WithStdin(r io.Reader) *Pipeline {
	p.stdin = r
	return p
}

// baseEnv returns a copy of the process environment with the locale pinned,
// so that p4 and friends emit output our parsers understand.
func baseEnv(extra []string) []string {
	env := append(os.Environ(), "LANG=C", "LC_ALL=C")
	return append(env, extra...)
}

// build constructs the exec.Cmd chain and wires the inter-stage pipes.
// The last stage's stdout is left unset for the caller to direct.
func (p *Pipeline) build(ctx context.Context) ([]*exec.Cmd, error) {
	if len(p.stages) == 0 {
		return nil, errors.New("procs: empty pipeline")
	}
	cmds := make([]*exec.Cmd, len(p.stages))
	for i, stage := range p.stages {
		cmd := exec.CommandContext(ctx, stage.Name, stage.Args...)
		cmd.Env = baseEnv(stage.Env)
		cmd.Stderr = os.Stderr
		cmds[i] = cmd
	}
	if p.stdin != nil {
		cmds[0].Stdin = p.stdin
	} else {
		cmds[0].Stdin = os.Stdin
	}
	for i := 0; i < len(cmds)-1; i++ {
		out, err := cmds[i].StdoutPipe()
		if err != nil {
			return nil, fmt.Errorf("procs: pipe stage %d: %w", i, err)
		}
		cmds[i+1].Stdin = out
	}
	return cmds, nil
}

// run starts every stage, waits for all of them in order, and reports the
// final stage's exit code. Failures of intermediate stages are ignored in
// favor of the last stage's status, matching shell pipeline semantics.
func run(cmds []*exec.Cmd) error {
	for _, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("procs: start %s: %w", p0(cmd), err)
		}
	}
	var last error
	for i, cmd := range cmds {
		err := cmd.Wait()
		if i == len(cmds)-1 {
			last = err
		}
	}
	if last == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(last, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode()}
	}
	return last
}

// Run executes the pipeline with the final stage writing to the caller's
// stdout. It returns nil on exit code zero, an *ExitError on a nonzero exit,
// or another error if a stage could not be started.
func (p *Pipeline) Run(ctx context.Context) error {
	cmds, err := p.build(ctx)
	if err != nil {
		return err
	}
	cmds[len(cmds)-1].Stdout = os.Stdout
	return run(cmds)
}

// Output executes the pipeline with the final stage's stdout captured into a
// buffer, returned alongside the final stage's exit status.
func (p *Pipeline) Output(ctx context.Context) ([]byte, error) {
	cmds, err := p.build(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	cmds[len(cmds)-1].Stdout = &buf
	runErr := run(cmds)
	return buf.Bytes(), runErr
}

// IsBrokenPipe reports whether err is an EPIPE write failure, which happens
// when the user closes the pager before the output is fully written. Callers
// treat this as a clean termination rather than a fault.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE)
}

// ExitCode maps an error from Run/Output to a process exit code: 0 for nil,
// the surfaced code for *ExitError, the OS errno for syscall failures, and 1
// for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 1
}

func p0(cmd *exec.Cmd) string {
	if len(cmd.Args) > 0 {
		return cmd.Args[0]
	}
	return cmd.Path
}
