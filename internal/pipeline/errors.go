package pipeline

import (
	"errors"
	"fmt"
)

// ErrInvalidImage reports a malformed or zero-dimension input image.
// The pipeline fails fast with no partial output.
var ErrInvalidImage = errors.New("pipeline: invalid input image")

// ErrInvalidConfig reports an out-of-range or inconsistent threshold.
// Raised at configuration validation time, before any image work.
var ErrInvalidConfig = errors.New("pipeline: invalid configuration")

// ProposerError wraps a region proposer failure. Without proposals no
// components can be produced, so this is fatal for the invocation.
//
// Labeler failures are deliberately not represented here: they are
// recovered per component as the "Unknown" sentinel and never abort a
// run.
type ProposerError struct {
	Err error
}

func (e *ProposerError) Error() string {
	return fmt.Sprintf("pipeline: region proposer failed: %v", e.Err)
}

func (e *ProposerError) Unwrap() error {
	return e.Err
}
