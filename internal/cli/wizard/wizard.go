package wizard

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"

	"github.com/csja-dev/csja/pkg/models"
)

// runForm runs a single huh form. Replaced in tests.
var runForm = func(f *huh.Form) error { return f.Run() }

// Run executes the wizard and returns the result. Answers in preset are
// carried over unchanged; questions whose Condition is false are skipped.
// Each question runs as its own huh.Form so later options can depend on
// earlier answers.
func Run(questions []Question, preset WizardResult) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := preset
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]

		if q.Condition != nil && !q.Condition(&result) {
			continue
		}

		if q.Type == QuestionTypeSelect {
			opts := q.options(&result)
			switch len(opts) {
			case 0:
				return nil, errors.Wrapf(ErrNoOptions, "%s", q.ID)
			case 1:
				// Nothing to choose.
				saveAnswer(q.ID, opts[0].Value, &result)
				continue
			}
		}

		field, value := buildQuestionField(q, &result)
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(false)

		if err := runForm(form); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, errors.Wrap(err, "wizard error")
		}
		saveAnswer(q.ID, answerValue(q, *value), &result)
	}

	return &result, nil
}

// RunWithDefaults runs the default questions, skipping what preset answers.
func RunWithDefaults(preset WizardResult) (*WizardResult, error) {
	return Run(DefaultQuestions(preset), preset)
}

// buildQuestionField creates the huh field for q and returns the pointer
// its value is bound to.
func buildQuestionField(q *Question, result *WizardResult) (huh.Field, *string) {
	value := new(string)
	*value = q.Default

	switch q.Type {
	case QuestionTypeSelect:
		return buildSelectField(q, result, value), value
	default:
		return buildInputField(q, result, value), value
	}
}

// buildSelectField creates a huh.Select field for a select-type question.
// Options are built eagerly: each question runs in its own form, so earlier
// answers are already in result.
func buildSelectField(q *Question, result *WizardResult, selected *string) *huh.Select[string] {
	src := q.options(result)
	opts := make([]huh.Option[string], len(src))
	for i, opt := range src {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(selected)

	sel.Validate(func(val string) error {
		saveAnswer(q.ID, val, result)
		return nil
	})

	return sel
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, result *WizardResult, value *string) *huh.Input {
	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(value)

	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	inp = inp.Validate(func(val string) error {
		v := answerValue(q, val)
		if q.Required && v == "" {
			return errors.New("this field is required")
		}
		if q.Validate != nil {
			if err := q.Validate(v); err != nil {
				return err
			}
		}
		saveAnswer(q.ID, v, result)
		return nil
	})

	return inp
}

// answerValue trims v and falls back to the question default.
func answerValue(q *Question, v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return q.Default
	}
	return v
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, result *WizardResult) {
	switch id {
	case QuestionProjectName:
		result.ProjectName = value
	case QuestionBundler:
		result.Bundler = models.Bundler(value)
	case QuestionFramework:
		result.Framework = models.Framework(value)
	}
}
