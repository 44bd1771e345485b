package execx

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
)

// Step is one command in the setup sequence.
type Step struct {
	Name    string
	Command string
	// Dir is the working directory; empty means the current one.
	Dir string
	// Quiet steps print Ack instead of a success/failure report. The real
	// outcome is still logged.
	Quiet bool
	Ack   string
}

// Runner executes steps one at a time and reports each outcome on out.
// A failed step never stops the caller; the Result says what happened.
type Runner struct {
	exec    Executor
	out     io.Writer
	dryRun  bool
	timeout time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithDryRun prints each command instead of executing it.
func WithDryRun(dry bool) Option {
	return func(r *Runner) { r.dryRun = dry }
}

// WithTimeout bounds every command. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

func NewRunner(exec Executor, out io.Writer, opts ...Option) *Runner {
	r := &Runner{exec: exec, out: out}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes step synchronously and prints its report.
func (r *Runner) Run(ctx context.Context, step Step) Result {
	logger := log.With().Str("step", step.Name).Str("cmd", step.Command).Str("dir", step.Dir).Logger()

	if r.dryRun {
		if step.Dir != "" {
			fmt.Fprintf(r.out, "+ (cd %s && %s)\n", step.Dir, step.Command)
		} else {
			fmt.Fprintf(r.out, "+ %s\n", step.Command)
		}
		return Result{}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logger.Debug().Msg("Running command")
	start := time.Now()
	res := r.exec.Execute(ctx, step.Command, step.Dir)
	logger = logger.With().Int("exit_code", res.Code).Dur("elapsed", time.Since(start)).Logger()

	if res.OK() {
		logger.Info().Msg("Command finished")
	} else {
		logger.Warn().Err(res.Err).Msg("Command failed")
	}

	r.report(step, res)
	return res
}

func (r *Runner) report(step Step, res Result) {
	if step.Quiet {
		fmt.Fprintln(r.out, step.Ack)
		return
	}

	if res.OK() {
		fmt.Fprintln(r.out, "Command executed successfully.")
		if res.Stdout != "" {
			fmt.Fprintln(r.out, "Output:")
			fmt.Fprintln(r.out, res.Stdout)
		}
		return
	}

	fmt.Fprintln(r.out, "Command execution failed.")
	if res.Stderr != "" {
		fmt.Fprintln(r.out, "Error:")
		fmt.Fprintln(r.out, res.Stderr)
	}
}
