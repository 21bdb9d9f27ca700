package controller

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	m "zrank.dev/pkg/zrank/internal/model"
)

// ConsoleUI implements UI on top of a cobra command's output streams.
type ConsoleUI struct {
	cmd         *cobra.Command
	interactive bool
	runPicker   pickerFunc
}

// DisplayRanking prints results in the requested format.
func (c *ConsoleUI) DisplayRanking(ctx context.Context, results []m.RankedResult, options ...DisplayOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newDisplayConfig(options)
	out := c.cmd.OutOrStdout()

	switch cfg.format {
	case FormatPlain:
		return writePlain(out, results)
	case FormatTable:
		_, err := io.WriteString(out, renderTable(results))
		return err
	case FormatYAML:
		return writeYAML(out, results)
	}

	return fmt.Errorf("unknown output format %q", cfg.format)
}

// SelectResult lets the user choose one of results interactively.
func (c *ConsoleUI) SelectResult(ctx context.Context, results []m.RankedResult) (m.RankedResult, error) {
	if err := ctx.Err(); err != nil {
		return m.RankedResult{}, err
	}

	if !c.interactive {
		return m.RankedResult{}, ErrNotInteractive
	}

	if len(results) == 0 {
		return m.RankedResult{}, ErrNoSelection
	}

	index, err := c.runPicker(ctx, c.cmd.InOrStdin(), c.cmd.ErrOrStderr(), results)
	if err != nil {
		return m.RankedResult{}, err
	}

	if index < 0 || index >= len(results) {
		return m.RankedResult{}, ErrNoSelection
	}

	return results[index], nil
}

// DisplaySelection prints the chosen path alone so it can be consumed by a shell.
func (c *ConsoleUI) DisplaySelection(ctx context.Context, selected m.RankedResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(c.cmd.OutOrStdout(), selected.Path)

	return err
}

// FormatResult renders one result the way the plain format prints it,
// without the trailing newline.
func FormatResult(result m.RankedResult) string {
	return fmt.Sprintf("%6.1f %s", result.Score, result.Path)
}

func writePlain(out io.Writer, results []m.RankedResult) error {
	for _, result := range results {
		if _, err := fmt.Fprintln(out, FormatResult(result)); err != nil {
			return err
		}
	}

	return nil
}

func writeYAML(out io.Writer, results []m.RankedResult) error {
	if results == nil {
		results = []m.RankedResult{}
	}

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)

	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return encoder.Close()
}

func renderTable(results []m.RankedResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Score", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for _, result := range results {
		table.Append([]string{fmt.Sprintf("%.1f", result.Score), string(result.Path)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("%d", len(results)),
		"directories",
	})

	table.Render()

	return tableBuffer.String()
}
