// Package executor runs external programs for dotsetup. It is the only
// place the tool spawns processes; the crontab boundary goes through it.
package executor

import (
	"bytes"
	"context"
	"os/exec"
	"time"

	"github.com/arthur-debert/dotsetup/pkg/errors"
	"github.com/arthur-debert/dotsetup/pkg/logging"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single command when the caller's context has no
// deadline of its own.
const DefaultTimeout = 30 * time.Second

// Result represents the result of a command execution
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes external commands.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// CommandExecutor is the os/exec backed Runner.
type CommandExecutor struct {
	logger  zerolog.Logger
	timeout time.Duration
}

// New creates a command executor. A zero timeout means DefaultTimeout.
func New(timeout time.Duration) *CommandExecutor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CommandExecutor{
		logger:  logging.GetLogger("executor"),
		timeout: timeout,
	}
}

// Run executes name with args and captures its output. A non-zero exit is
// returned as ErrCommandFailed; the Result still carries stdout, stderr and
// the exit code so callers can inspect them.
func (e *CommandExecutor) Run(ctx context.Context, name string, args ...string) (Result, error) {
	if name == "" {
		return Result{}, errors.New(errors.ErrInvalidInput, "command name is required")
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	e.logger.Debug().
		Str("command", name).
		Strs("args", args).
		Msg("Executing command")

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if stdout.Len() > 0 {
		e.logger.Trace().
			Str("output", result.Stdout).
			Msg("Command stdout")
	}
	if stderr.Len() > 0 {
		e.logger.Debug().
			Str("output", result.Stderr).
			Msg("Command stderr")
	}

	if err != nil {
		e.logger.Debug().
			Err(err).
			Str("command", name).
			Strs("args", args).
			Int("exitCode", result.ExitCode).
			Msg("Command execution failed")

		return result, errors.Wrapf(err, errors.ErrCommandFailed,
			"failed to execute command: %s", name).
			WithDetail("command", name).
			WithDetail("exitCode", result.ExitCode).
			WithDetail("stderr", result.Stderr)
	}

	e.logger.Debug().
		Str("command", name).
		Msg("Command executed successfully")

	return result, nil
}
