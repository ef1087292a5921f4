// Package project scaffolds a new JavaScript project. It validates the
// collected options, runs the ordered creation pipeline (directory, package
// manifest, scripts, configuration, mocks, dependencies, sources) and rolls
// the run back by deleting the project directory when any step fails.
package project

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for the project package.
var (
	// ErrInvalidProjectName indicates a name outside [A-Za-z0-9_-]+.
	ErrInvalidProjectName = errors.New("invalid project name")

	// ErrUnsupportedCombination indicates a bundler/framework pair missing from the compatibility table.
	ErrUnsupportedCombination = errors.New("unsupported combination")

	// ErrProjectExists indicates the target directory already exists.
	ErrProjectExists = errors.New("project directory already exists")
)

// InvalidNameMessage is shown to the operator for a rejected project name.
const InvalidNameMessage = "Invalid project name!"

// ValidationError is returned for options rejected before any side effect.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// StepError reports a pipeline step that failed. State is the state the
// step would have reached; Stderr holds the tail of a failed command's output.
type StepError struct {
	State  State
	Title  string
	Err    error
	Stderr string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Title, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// RollbackError reports that the project directory could not be removed
// after StepErr. The directory must be cleaned up by hand.
type RollbackError struct {
	Dir     string
	StepErr error
	Err     error
}

func (e *RollbackError) Error() string {
	return fmt.Sprintf("rollback failed: remove %s: %v (after %v)", e.Dir, e.Err, e.StepErr)
}

func (e *RollbackError) Unwrap() []error {
	return []error{e.StepErr, e.Err}
}
