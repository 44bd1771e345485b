// Package execx runs shell commands with captured output and reports how
// they ended.
package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"runtime"
	"time"
)

// Result is the outcome of one command.
type Result struct {
	Code   int
	Stdout string
	Stderr string
	Err    error
}

// OK reports whether the command exited with status 0.
func (r Result) OK() bool {
	return r.Code == 0 && r.Err == nil
}

// Executor runs a command line and waits for it to finish.
type Executor interface {
	Execute(ctx context.Context, command, dir string) Result
}

// Shell runs commands through the platform shell so pipes, && and builtins
// like cd behave as they would when typed.
type Shell struct{}

func (Shell) Execute(ctx context.Context, command, dir string) Result {
	name, args := shellArgs(command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	// Grandchildren can hold the output pipes open after a cancel.
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	if err != nil {
		var ee *exec.ExitError
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			code = 124
		case errors.As(err, &ee):
			code = ee.ExitCode()
		default:
			code = 1
		}
	}

	res := Result{Code: code, Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
	// The process never started (bad dir, no shell): surface why.
	if err != nil && res.Stderr == "" {
		var ee *exec.ExitError
		if !errors.As(err, &ee) {
			res.Stderr = err.Error()
		}
	}
	return res
}

func shellArgs(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	return "sh", []string{"-c", command}
}
