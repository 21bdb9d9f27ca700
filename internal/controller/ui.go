// Package controller renders ranking results to the user.
package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "zrank.dev/pkg/zrank/internal/model"
)

// ErrNoSelection is returned when the picker is closed without choosing a directory.
var ErrNoSelection = errors.New("no directory selected")

// ErrNotInteractive is returned when the picker is started without a terminal.
var ErrNotInteractive = errors.New("interactive picker requires a terminal")

// Format selects how DisplayRanking renders results.
type Format string

// Available output formats.
const (
	FormatPlain Format = "plain"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatPlain, FormatTable, FormatYAML}
}

// ParseFormat validates a user supplied format name. An empty value means plain.
func ParseFormat(value string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return FormatPlain, nil
	}

	for _, format := range Formats() {
		if Format(name) == format {
			return format, nil
		}
	}

	return "", fmt.Errorf("unknown output format %q (expected one of %v)", value, Formats())
}

// DisplayOption is a functional option for DisplayRanking.
type DisplayOption func(*DisplayConfig)

// DisplayConfig holds configuration for rendering a ranking.
type DisplayConfig struct {
	format Format
}

// Format returns the selected output format.
func (c DisplayConfig) Format() Format {
	return c.format
}

// WithFormat sets the output format.
func WithFormat(format Format) DisplayOption {
	return func(c *DisplayConfig) {
		c.format = format
	}
}

func newDisplayConfig(options []DisplayOption) DisplayConfig {
	cfg := DisplayConfig{format: FormatPlain}
	for _, option := range options {
		option(&cfg)
	}

	if cfg.format == "" {
		cfg.format = FormatPlain
	}

	return cfg
}

// UI defines how ranking results reach the user.
type UI interface {
	DisplayRanking(ctx context.Context, results []m.RankedResult, options ...DisplayOption) error
	SelectResult(ctx context.Context, results []m.RankedResult) (m.RankedResult, error)
	DisplaySelection(ctx context.Context, selected m.RankedResult) error
}

// NewUI creates the console UI writing through the command's output streams.
// interactive reports whether a terminal is available for the picker.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	return &ConsoleUI{
		cmd:         cmd,
		interactive: interactive,
		runPicker:   runPicker,
	}
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
