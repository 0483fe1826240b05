package model

import "time"

// ExecutionResult is the outcome of one external tool invocation.
//
// Command is the argv the runner actually executed, joined for display and
// redacted of secret-looking parameter values. The result is ephemeral: it is
// rendered to the user and recorded in run history, never consumed by later
// requests.
type ExecutionResult struct {
	Success  bool
	Command  string
	Stdout   string
	Stderr   string
	ExitCode int
	Duration time.Duration

	// Err is set when Success is false (spawn failure, timeout). Non-zero
	// exits still count as Success=true with ExitCode populated, matching
	// the "surface stderr/exit code, not fatal" contract.
	Err string
}

// Output returns the text to show the user: stdout when present, otherwise
// stderr. Many scanners write their report to stderr.
func (r ExecutionResult) Output() string {
	if r.Stdout != "" {
		return r.Stdout
	}
	return r.Stderr
}
