// Package wizard asks for the options of a new project with huh forms:
// project name, bundler and framework.
package wizard

import (
	"github.com/cockroachdb/errors"

	"github.com/csja-dev/csja/pkg/models"
)

// WizardResult holds the user's selections.
type WizardResult struct {
	ProjectName string
	Bundler     models.Bundler
	Framework   models.Framework
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
)

// Question defines a single wizard question.
type Question struct {
	ID          string                       // Unique identifier
	Type        QuestionType                 // Select or Input
	Title       string                       // Question title
	Description string                       // Help text
	Options     []Option                     // Static options for select questions
	OptionsFunc func(*WizardResult) []Option // Options computed from earlier answers; overrides Options
	Default     string                       // Default value
	Required    bool                         // Whether an answer is required
	Validate    func(string) error           // Rejecting keeps the prompt open
	Condition   func(*WizardResult) bool     // Condition for showing this question
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// options resolves the options of q against the answers so far.
func (q *Question) options(result *WizardResult) []Option {
	if q.OptionsFunc != nil {
		return q.OptionsFunc(result)
	}
	return q.Options
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrNoOptions is returned when a select question has nothing to offer.
	ErrNoOptions = errors.New("no options available")
)
