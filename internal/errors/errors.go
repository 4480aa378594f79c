// Package errors provides sentinel errors and custom error types for the git-state application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Process exit codes. ExitUsage follows the sysexits.h convention for
// command line usage errors.
const (
	ExitOK    = 0
	ExitFatal = 1
	ExitUsage = 64
)

// Sentinel errors for common conditions
var (
	// ErrNotInRepository indicates the command was run outside a git repository
	ErrNotInRepository = errors.New("not a git repository")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrStateNotSet indicates that the current branch has no state recorded.
	// It is reported through the exit status alone, never printed.
	ErrStateNotSet = errors.New("no state set")

	// ErrNoStaleState indicates a reuse-previous request with no previous state recorded
	ErrNoStaleState = errors.New("no previous state")
)

// UsageError represents a command line usage error (unknown flag, bad arguments)
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// NewUsageError creates a new UsageError
func NewUsageError(format string, args ...interface{}) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// InstallError represents a failure to set up the prepare-commit-msg hook
type InstallError struct {
	Path string
	Err  error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("failed to install hook at %s: %v", e.Path, e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// NewInstallError creates a new InstallError
func NewInstallError(path string, err error) *InstallError {
	return &InstallError{Path: path, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}
	return ExitFatal
}

// IsSilent reports whether an error should terminate the process without
// any output. Absence of state is signaled by the exit status alone.
func IsSilent(err error) bool {
	return errors.Is(err, ErrStateNotSet)
}
