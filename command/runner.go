package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Failure reports whether the command failed, returning the diagnostic that
// best describes it. A command fails when it could not run, exited non-zero,
// or wrote anything to its error stream. The run error's message wins over
// stderr when both exist.
func (r Result) Failure(runErr error) error {
	if runErr != nil {
		return runErr
	}
	if r.Stderr != "" {
		return errors.New(strings.TrimSpace(r.Stderr))
	}
	return nil
}

// Runner runs external programs with an explicit environment.
type Runner interface {
	// Run executes the program, waits for it, and captures stdout and stderr.
	Run(ctx context.Context, env []string, name string, args ...string) (Result, error)

	// Start launches the program without waiting for it to exit.
	Start(ctx context.Context, env []string, name string, args ...string) error
}

// ExecRunner is the production Runner built on a SafeBuilder.
type ExecRunner struct {
	builder *SafeBuilder
}

// NewExecRunner creates a Runner backed by real processes.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{builder: NewSafeBuilder()}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, env []string, name string, args ...string) (Result, error) {
	path, err := LookPath(name, env)
	if err != nil {
		return Result{}, err
	}

	cmd, err := r.builder.Build(ctx, path, args...)
	if err != nil {
		return Result{}, fmt.Errorf("failed to build command: %w", err)
	}

	var stdout, stderr bytes.Buffer
	execCmd := cmd.WithEnv(env).Exec()
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err = execCmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
	}
	if err != nil {
		return res, fmt.Errorf("`%s`: %w", cmd, err)
	}

	return res, nil
}

// Start implements Runner. The child is released immediately so it keeps
// running after the caller exits.
func (r *ExecRunner) Start(ctx context.Context, env []string, name string, args ...string) error {
	path, err := LookPath(name, env)
	if err != nil {
		return err
	}

	cmd, err := r.builder.Build(ctx, path, args...)
	if err != nil {
		return fmt.Errorf("failed to build command: %w", err)
	}

	execCmd := cmd.WithEnv(env).Detached()
	if err := execCmd.Start(); err != nil {
		return fmt.Errorf("`%s`: %w", cmd, err)
	}

	return execCmd.Process.Release()
}
