// Package executor runs validated tool invocations as child processes.
//
// Commands are always structured argv: there is no shell between the
// dispatcher and the process, so parameter values can never be interpreted
// as shell syntax.
package executor

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"kalibot/config"
	"kalibot/model"
)

// Runner executes argv slices with a hard per-invocation deadline.
type Runner struct{}

// Run executes argv and captures both output streams. When the timeout
// elapses the process is killed and a TimeoutError is returned; a non-zero
// exit from a tool that ran to completion is not an error, the exit code is
// simply reported.
func (Runner) Run(ctx context.Context, argv []string, timeout time.Duration) (model.ExecutionResult, error) {
	command := strings.Join(argv, " ")

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	// Give the process a moment to flush after the kill signal.
	cmd.WaitDelay = 2 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if config.DebugLog != nil {
		config.DebugLog.Printf("ran %q in %s (err=%v)", command, elapsed.Round(time.Millisecond), err)
	}

	res := model.ExecutionResult{
		Command:  command,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: elapsed,
	}

	if ctx.Err() == context.DeadlineExceeded {
		res.Success = false
		res.Err = (&model.TimeoutError{Command: command, Limit: timeout}).Error()
		return res, &model.TimeoutError{Command: command, Limit: timeout}
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		res.Success = true
	case errors.As(err, &exitErr):
		// The tool ran and exited non-zero; that is a finding, not a failure.
		res.Success = true
		res.ExitCode = exitErr.ExitCode()
	default:
		res.Success = false
		res.Err = err.Error()
		return res, err
	}
	return res, nil
}
