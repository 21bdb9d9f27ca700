package domain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"zrank.dev/pkg/zrank/internal/adapter"
	adaptermocks "zrank.dev/pkg/zrank/internal/adapter/mocks"
	"zrank.dev/pkg/zrank/internal/controller"
	controllermocks "zrank.dev/pkg/zrank/internal/controller/mocks"
	m "zrank.dev/pkg/zrank/internal/model"
)

func homeFixture(t *testing.T) adapter.DirFSAdapter {
	t.Helper()

	return memFS(t,
		[]string{"/home/u/sandbox/a", "/home/u/sandbox/b", "/home/u/c"},
		[]string{"/home/u/.bashrc", "/home/u/sandbox/README"},
	)
}

func TestWorkflow_Rank_EndToEnd(t *testing.T) {
	scoreSource := adaptermocks.NewMockScoreSourceAdapter(t)
	scoreSource.On("QueryScores", mock.Anything).
		Return([]byte("  10.5 /home/u/sandbox/a\n   2.0 /home/u/c\n"), nil)

	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	wf := NewWorkflow(scoreSource, homeFixture(t), controller.NewUI(cmd, false))

	err := wf.Rank(context.Background(), RankArgs{Roots: DefaultRoots("/home/u")})
	require.NoError(t, err)

	assert.Equal(t,
		"  10.5 /home/u/sandbox/a\n"+
			"   2.0 /home/u/c\n"+
			"   0.0 /home/u/sandbox/b\n"+
			"   0.0 /home/u/sandbox\n",
		out.String(),
	)
}

func TestWorkflow_Rank_PassesFormatAndResults(t *testing.T) {
	scoreSource := adaptermocks.NewMockScoreSourceAdapter(t)
	scoreSource.On("QueryScores", mock.Anything).Return([]byte("3.0 /home/u/c\n"), nil)

	ui := controllermocks.NewMockUI(t)
	ui.On("DisplayRanking",
		mock.Anything,
		[]m.RankedResult{
			{Score: 3.0, Path: "/home/u/c"},
			{Score: 0, Path: "/home/u/sandbox"},
		},
		mock.MatchedBy(func(option controller.DisplayOption) bool {
			cfg := controller.DisplayConfig{}
			option(&cfg)

			return cfg.Format() == controller.FormatYAML
		}),
	).Return(nil)

	wf := NewWorkflow(scoreSource, homeFixture(t), ui)

	err := wf.Rank(context.Background(), RankArgs{
		Roots:  []m.Path{"/home/u"},
		Format: controller.FormatYAML,
	})
	require.NoError(t, err)
}

func TestWorkflow_Rank_ScoreSourceFailure(t *testing.T) {
	scoreSource := adaptermocks.NewMockScoreSourceAdapter(t)
	scoreSource.On("QueryScores", mock.Anything).
		Return(nil, fmt.Errorf("zoxide: %w (1)", adapter.ErrNonZeroExit))

	fsAdapter := adaptermocks.NewMockDirFSAdapter(t)
	ui := controllermocks.NewMockUI(t)

	wf := NewWorkflow(scoreSource, fsAdapter, ui)

	err := wf.Rank(context.Background(), RankArgs{Roots: DefaultRoots("/home/u")})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrNonZeroExit)
	assert.Contains(t, err.Error(), "fetch scores")

	fsAdapter.AssertNotCalled(t, "ReadDir", mock.Anything)
	ui.AssertNotCalled(t, "DisplayRanking", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Rank_MissingSandboxAborts(t *testing.T) {
	scoreSource := adaptermocks.NewMockScoreSourceAdapter(t)
	scoreSource.On("QueryScores", mock.Anything).Return([]byte("1.0 /home/u/c\n"), nil)

	ui := controllermocks.NewMockUI(t)

	fsAdapter := memFS(t, []string{"/home/u/c"}, nil)
	wf := NewWorkflow(scoreSource, fsAdapter, ui)

	err := wf.Rank(context.Background(), RankArgs{Roots: DefaultRoots("/home/u")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list /home/u/sandbox")

	ui.AssertNotCalled(t, "DisplayRanking", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Rank_CancelledContext(t *testing.T) {
	scoreSource := adaptermocks.NewMockScoreSourceAdapter(t)
	scoreSource.On("QueryScores", mock.Anything).Return([]byte(""), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	wf := NewWorkflow(scoreSource, homeFixture(t), controllermocks.NewMockUI(t))

	err := wf.Rank(ctx, RankArgs{Roots: DefaultRoots("/home/u")})
	require.ErrorIs(t, err, context.Canceled)
}

func TestWorkflow_Pick(t *testing.T) {
	expected := []m.RankedResult{
		{Score: 2.0, Path: "/home/u/c"},
		{Score: 0, Path: "/home/u/sandbox"},
	}

	t.Run("prints the selection", func(t *testing.T) {
		scoreSource := adaptermocks.NewMockScoreSourceAdapter(t)
		scoreSource.On("QueryScores", mock.Anything).Return([]byte("2.0 /home/u/c\n"), nil)

		ui := controllermocks.NewMockUI(t)
		ui.On("SelectResult", mock.Anything, expected).Return(expected[1], nil)
		ui.On("DisplaySelection", mock.Anything, expected[1]).Return(nil)

		wf := NewWorkflow(scoreSource, homeFixture(t), ui)
		require.NoError(t, wf.Pick(context.Background(), PickArgs{Roots: []m.Path{"/home/u"}}))
	})

	t.Run("cancelled selection is returned", func(t *testing.T) {
		scoreSource := adaptermocks.NewMockScoreSourceAdapter(t)
		scoreSource.On("QueryScores", mock.Anything).Return([]byte("2.0 /home/u/c\n"), nil)

		ui := controllermocks.NewMockUI(t)
		ui.On("SelectResult", mock.Anything, expected).Return(m.RankedResult{}, controller.ErrNoSelection)

		wf := NewWorkflow(scoreSource, homeFixture(t), ui)

		err := wf.Pick(context.Background(), PickArgs{Roots: []m.Path{"/home/u"}})
		require.ErrorIs(t, err, controller.ErrNoSelection)
		ui.AssertNotCalled(t, "DisplaySelection", mock.Anything, mock.Anything)
	})

	t.Run("collection failure skips the picker", func(t *testing.T) {
		scoreSource := adaptermocks.NewMockScoreSourceAdapter(t)
		scoreSource.On("QueryScores", mock.Anything).Return(nil, errors.New("exec: not found"))

		ui := controllermocks.NewMockUI(t)

		wf := NewWorkflow(scoreSource, homeFixture(t), ui)

		err := wf.Pick(context.Background(), PickArgs{Roots: []m.Path{"/home/u"}})
		require.Error(t, err)
		ui.AssertNotCalled(t, "SelectResult", mock.Anything, mock.Anything)
	})
}
