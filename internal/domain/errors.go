package domain

import (
	"errors"
	"fmt"

	m "fsh.dev/pkg/fsh/internal/model"
)

var (
	// ErrSafetyViolation is matched by every refusal of the remove safety rails.
	ErrSafetyViolation = errors.New("safety violation")

	// ErrDestinationNotDirectory is returned when several sources target
	// something that is not an existing directory.
	ErrDestinationNotDirectory = errors.New("destination is not a directory")

	// ErrIsDirectory is returned by read operations that need a file.
	ErrIsDirectory = errors.New("is a directory")

	// ErrNotDirectory is returned by read operations that need a directory.
	ErrNotDirectory = errors.New("not a directory")
)

// SafetyViolationError reports a removal refused by a safety rail.
type SafetyViolationError struct {
	Path    m.Path
	WorkDir m.Path
	Reason  m.Reason
}

func (e *SafetyViolationError) Error() string {
	if e.Reason == m.ReasonAncestorOfWorkDir {
		return fmt.Sprintf("refusing to remove %s: it contains the working directory %s", e.Path, e.WorkDir)
	}

	return fmt.Sprintf("refusing to remove %s: %s", e.Path, e.Reason)
}

// Is lets errors.Is match ErrSafetyViolation.
func (e *SafetyViolationError) Is(target error) bool {
	return target == ErrSafetyViolation
}

// PathResolutionError reports a path that could not be stat'ed or resolved.
type PathResolutionError struct {
	Path m.Path
	Err  error
}

func (e *PathResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s: %v", e.Path, e.Err)
}

func (e *PathResolutionError) Unwrap() error {
	return e.Err
}

// BatchError is returned once a batch finished with skipped or failed items.
type BatchError struct {
	Result m.BatchResult
}

func (e *BatchError) Error() string {
	skipped, failed := e.Result.Counts()

	return fmt.Sprintf("%s: %d of %d item(s) not completed (%d skipped, %d failed)",
		e.Result.Op, skipped+failed, e.Result.Attempted, skipped, failed)
}
