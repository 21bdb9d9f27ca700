// Package adapter contains infrastructure adapters for the zrank CLI.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultRankerCommand is the directory-tracking tool queried for scores.
const DefaultRankerCommand = "zoxide"

// ErrNonZeroExit is returned when the ranking tool exits with a non-zero status.
var ErrNonZeroExit = errors.New("ranking tool returned non-zero exit code")

var defaultRankerArgs = []string{"query", "--list", "--score"}

// ScoreSourceAdapter abstracts the external tool that reports frecency scores.
type ScoreSourceAdapter interface {
	// QueryScores runs the tool and returns its standard output. Each line is
	// expected to look like "<score> <path>".
	QueryScores(ctx context.Context) ([]byte, error)
}

// LocalScoreSourceAdapter runs the ranking tool as a child process.
type LocalScoreSourceAdapter struct {
	command string
	args    []string
}

// NewLocalScoreSourceAdapter constructs an adapter that runs
// "<command> query --list --score". An empty command falls back to zoxide.
func NewLocalScoreSourceAdapter(command string) *LocalScoreSourceAdapter {
	if strings.TrimSpace(command) == "" {
		command = DefaultRankerCommand
	}

	return &LocalScoreSourceAdapter{
		command: command,
		args:    defaultRankerArgs,
	}
}

// Command returns the executable name the adapter runs.
func (a *LocalScoreSourceAdapter) Command() string {
	return a.command
}

// QueryScores runs the ranking tool and returns its stdout.
func (a *LocalScoreSourceAdapter) QueryScores(ctx context.Context) ([]byte, error) {
	cmd := exec.CommandContext(ctx, a.command, a.args...) //nolint:gosec // command comes from user config

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return nil, fmt.Errorf("%s: %w (%d)", a.command, ErrNonZeroExit, exitErr.ExitCode())
		}

		return nil, fmt.Errorf("%s: %w (%d): %s", a.command, ErrNonZeroExit, exitErr.ExitCode(), msg)
	}

	return nil, fmt.Errorf("failed to execute %s: %w", a.command, err)
}
