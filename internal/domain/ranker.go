package domain

import (
	"cmp"
	"slices"

	m "zrank.dev/pkg/zrank/internal/model"
)

// RankResults joins dirs against scores and sorts them by descending score.
// Directories missing from scores get 0. Equal scores keep the order of dirs
// and NaN scores sort last.
func RankResults(dirs []m.Path, scores m.ScoreTable) []m.RankedResult {
	results := make([]m.RankedResult, 0, len(dirs))
	for _, dir := range dirs {
		results = append(results, m.RankedResult{Score: scores.Lookup(dir), Path: dir})
	}

	slices.SortStableFunc(results, func(a, b m.RankedResult) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return results
}
