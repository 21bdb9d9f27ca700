// Package domain implements the directory ranking pipeline.
package domain

import (
	"context"
	"fmt"

	"zrank.dev/pkg/zrank/internal/adapter"
	"zrank.dev/pkg/zrank/internal/controller"
	m "zrank.dev/pkg/zrank/internal/model"
)

// RankArgs contains the arguments for printing a ranking.
type RankArgs struct {
	Roots  []m.Path
	Format controller.Format
}

// PickArgs contains the arguments for the interactive picker.
type PickArgs struct {
	Roots []m.Path
}

// Workflow runs the ranking pipeline: fetch scores, list the roots, join,
// sort and hand the result to the UI.
type Workflow interface {
	Rank(ctx context.Context, args RankArgs) error
	Pick(ctx context.Context, args PickArgs) error
}

type workflow struct {
	scoreSource adapter.ScoreSourceAdapter
	fsAdapter   adapter.DirFSAdapter
	ui          controller.UI
}

// NewWorkflow creates a Workflow backed by the provided adapters and UI.
func NewWorkflow(
	scoreSource adapter.ScoreSourceAdapter,
	fsAdapter adapter.DirFSAdapter,
	ui controller.UI,
) Workflow {
	return &workflow{
		scoreSource: scoreSource,
		fsAdapter:   fsAdapter,
		ui:          ui,
	}
}

func (w *workflow) Rank(ctx context.Context, args RankArgs) error {
	results, err := w.collect(ctx, args.Roots)
	if err != nil {
		return err
	}

	return w.ui.DisplayRanking(ctx, results, controller.WithFormat(args.Format))
}

func (w *workflow) Pick(ctx context.Context, args PickArgs) error {
	results, err := w.collect(ctx, args.Roots)
	if err != nil {
		return err
	}

	selected, err := w.ui.SelectResult(ctx, results)
	if err != nil {
		return err
	}

	return w.ui.DisplaySelection(ctx, selected)
}

func (w *workflow) collect(ctx context.Context, roots []m.Path) ([]m.RankedResult, error) {
	scores, err := w.fetchScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch scores: %w", err)
	}

	var dirs []m.Path

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rootDirs, err := ListDirs(w.fsAdapter, root)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", root, err)
		}

		dirs = append(dirs, rootDirs...)
	}

	return RankResults(dirs, scores), nil
}
