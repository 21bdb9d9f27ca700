package model

// RankedResult pairs a candidate directory with its score.
type RankedResult struct {
	Score float64 `yaml:"score"`
	Path  Path    `yaml:"path"`
}
