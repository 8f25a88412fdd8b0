package merger

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// Invocation describes a single external tool call: the binary, its
// argument list, and the working directory it must run in.
type Invocation struct {
	Path string
	Args []string
	Dir  string
}

// Result of a completed invocation. Stdout is populated only by Output.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Runner executes external tools. Run streams the tool's output to the
// console; Output captures it instead. A non-zero exit is reported
// through both the Result and a non-nil error.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (Result, error)
	Output(ctx context.Context, inv Invocation) (Result, error)
}

// ExecRunner executes invocations on the local host.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, inv Invocation) (Result, error) {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return result(cmd.Run(), nil, nil)
}

func (ExecRunner) Output(ctx context.Context, inv Invocation) (Result, error) {
	cmd := exec.CommandContext(ctx, inv.Path, inv.Args...)
	cmd.Dir = inv.Dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	return result(cmd.Run(), stdout.Bytes(), stderr.Bytes())
}

func result(err error, stdout, stderr []byte) (Result, error) {
	res := Result{Stdout: stdout, Stderr: stderr}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, err
	}

	// The binary could not be started at all.
	res.ExitCode = 127
	return res, err
}
