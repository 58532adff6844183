package procs

import (
	"context"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputSingleCommand(t *testing.T) {
	out, err := New(Command{Name: "echo", Args: []string{"hello"}}).Output(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestOutputPipeline(t *testing.T) {
	// echo feeds tr, mirroring p4 | colorizer | pager chains.
	p := New(
		Command{Name: "echo", Args: []string{"hello"}},
		Command{Name: "tr", Args: []string{"a-z", "A-Z"}},
	)
	out, err := p.Output(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "HELLO\n", string(out))
}

func TestOutputWithStdin(t *testing.T) {
	p := New(Command{Name: "cat"}).WithStdin(strings.NewReader("piped in"))
	out, err := p.Output(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "piped in", string(out))
}

func TestOutputReportsLastExitCode(t *testing.T) {
	p := New(
		Command{Name: "echo", Args: []string{"ignored"}},
		Command{Name: "sh", Args: []string{"-c", "cat >/dev/null; exit 3"}},
	)
	_, err := p.Output(context.Background())
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
}

func TestOutputLocalePinned(t *testing.T) {
	t.Setenv("LC_ALL", "en_US.UTF-8")
	out, err := New(Command{Name: "sh", Args: []string{"-c", "echo $LC_ALL"}}).Output(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "C\n", string(out))
}

func TestOutputExtraEnv(t *testing.T) {
	p := New(Command{
		Name: "sh",
		Args: []string{"-c", "echo $P4WRAP_TEST_VALUE"},
		Env:  []string{"P4WRAP_TEST_VALUE=set"},
	})
	out, err := p.Output(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "set\n", string(out))
}

func TestEmptyPipeline(t *testing.T) {
	_, err := New().Output(context.Background())
	require.Error(t, err)
}

func TestStartFailure(t *testing.T) {
	_, err := New(Command{Name: "p4wrap-no-such-binary"}).Output(context.Background())
	require.Error(t, err)
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"exit error", &ExitError{Code: 7}, 7},
		{"errno", syscall.ENOSPC, int(syscall.ENOSPC)},
		{"other", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestIsBrokenPipe(t *testing.T) {
	assert.True(t, IsBrokenPipe(syscall.EPIPE))
	assert.False(t, IsBrokenPipe(errors.New("boom")))
	assert.False(t, IsBrokenPipe(nil))
}
