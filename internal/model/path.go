// Package model defines the data structures shared by the ranking pipeline.
package model

// Path represents a file system path.
type Path string
