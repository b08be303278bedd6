package config

import (
	"errors"
	"fmt"
)

// Source operations that can fail.
const (
	OpStat  = "stat"
	OpRead  = "read"
	OpParse = "parse"
)

// SourceError reports a configuration file that exists but could not be
// used. Callers keep their previous snapshot when they receive one.
type SourceError struct {
	Path string // File path
	Op   string // OpStat, OpRead or OpParse
	Err  error  // Underlying error
}

// Error implements the error interface
func (e *SourceError) Error() string {
	return fmt.Sprintf("config %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsSourceError checks if an error is a SourceError
func IsSourceError(err error) bool {
	var se *SourceError
	return errors.As(err, &se)
}
