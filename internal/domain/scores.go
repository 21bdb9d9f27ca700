package domain

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	m "zrank.dev/pkg/zrank/internal/model"
)

// Longest score line accepted from the ranking tool.
const maxScoreLineSize = 1 << 20

// ParseScores reads "<score> <path>" lines into a ScoreTable.
//
// Lines are trimmed and split once at the first space, so paths may contain
// spaces. Blank lines and lines whose score is not a number are skipped. When
// a path appears more than once the last score wins.
func ParseScores(r io.Reader) (m.ScoreTable, error) {
	scores := m.ScoreTable{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxScoreLineSize)

	for scanner.Scan() {
		path, score, ok := parseScoreLine(scanner.Text())
		if !ok {
			continue
		}

		scores[path] = score
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read scores: %w", err)
	}

	return scores, nil
}

func parseScoreLine(line string) (m.Path, float64, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", 0, false
	}

	scoreToken, path, found := strings.Cut(line, " ")
	if !found {
		return "", 0, false
	}

	score, err := strconv.ParseFloat(strings.TrimSpace(scoreToken), 64)
	if err != nil {
		slog.Debug("skipping malformed score line", "line", line, "error", err)
		return "", 0, false
	}

	return m.Path(strings.TrimSpace(path)), score, true
}

func (w *workflow) fetchScores(ctx context.Context) (m.ScoreTable, error) {
	output, err := w.scoreSource.QueryScores(ctx)
	if err != nil {
		slog.Error("Failed to query ranking tool", "error", err)
		return nil, err
	}

	scores, err := ParseScores(bytes.NewReader(output))
	if err != nil {
		slog.Error("Failed to parse ranking tool output", "error", err)
		return nil, err
	}

	slog.Debug("fetched scores", "count", len(scores))

	return scores, nil
}
