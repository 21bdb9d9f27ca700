package model

// ScoreTable maps an absolute directory path to the frecency score reported by
// the ranking tool. It is rebuilt on every run.
type ScoreTable map[Path]float64

// Lookup returns the score recorded for path, or 0 when the path is not tracked.
func (t ScoreTable) Lookup(path Path) float64 {
	return t[path]
}
