package pitch

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// ErrCommandFailed is returned when an external tool exits with a non-zero status
var ErrCommandFailed = errors.New("command failed")

// Output is the captured result of one external command
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner invokes external command-line tools
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Output, error)
}

// ExecRunner runs commands as child processes
type ExecRunner struct{}

// Run executes name with args. A non-zero exit is reported through Output.ExitCode, not err.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (*Output, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &Output{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
