package tts

import (
	"errors"
	"fmt"
)

// Sentinel errors for the synthesis and export pipeline.
var (
	// Synthesis errors
	ErrVoiceModelMissing = errors.New("voice model is not available")
	ErrSynthesisFailure  = errors.New("speech synthesis failed")

	// Subprocess errors (recoverable, per tier)
	ErrSubprocessUnavailable = errors.New("external tool not found in PATH")
	ErrSubprocessTimeout     = errors.New("external tool timed out")

	// Structural errors (fatal for the request)
	ErrAlignmentMismatch = errors.New("alignment span count does not match token count")
	ErrIOFailure         = errors.New("artifact write failed")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IsRecoverable reports whether an error leaves the run usable.
// Tier-level subprocess failures are absorbed by the resolution
// chain; structural errors abort the current export.
func IsRecoverable(err error) bool {
	if err == nil {
		return true
	}
	switch {
	case errors.Is(err, ErrSubprocessUnavailable),
		errors.Is(err, ErrSubprocessTimeout):
		return true
	}
	return false
}

// StageError wraps a failure with the export stage that produced it,
// so a caller can tell apart synthesis, alignment, and write failures
// without tracing.
type StageError struct {
	Stage string // Pipeline stage name (e.g. "synthesize", "align")
	Err   error  // The underlying error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a stage-tagged error.
func NewStageError(stage string, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
