package wizard

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/csja-dev/csja/internal/core/project"
	"github.com/csja-dev/csja/pkg/models"
)

// Question IDs.
const (
	QuestionProjectName = "project_name"
	QuestionBundler     = "bundler"
	QuestionFramework   = "framework"
)

var bundlerDescriptions = map[models.Bundler]string{
	models.BundlerWebpack: "webpack + webpack-dev-server",
	models.BundlerRollup:  "rollup with livereload",
}

var frameworkDescriptions = map[models.Framework]string{
	models.FrameworkNone:   "plain JavaScript",
	models.FrameworkSvelte: "Svelte 3 components",
}

// DefaultQuestions returns the questions for a new project. Answers already
// present in preset (typically from flags) are not asked again:
// 1. Project name
// 2. Bundler
// 3. Framework, offering only those the bundler supports
func DefaultQuestions(preset WizardResult) []Question {
	return []Question{
		{
			ID:          QuestionProjectName,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Letters, digits, '-' and '_' only.",
			Required:    true,
			Validate:    validateProjectName,
			Condition:   func(*WizardResult) bool { return preset.ProjectName == "" },
		},
		{
			ID:          QuestionBundler,
			Type:        QuestionTypeSelect,
			Title:       "Bundler",
			Description: "Builds and serves the project.",
			Options:     bundlerOptions(),
			Default:     string(models.BundlerWebpack),
			Required:    true,
			Condition:   func(*WizardResult) bool { return preset.Bundler == "" },
		},
		{
			ID:          QuestionFramework,
			Type:        QuestionTypeSelect,
			Title:       "Framework",
			Description: "UI framework for the starter source tree.",
			OptionsFunc: func(r *WizardResult) []Option { return frameworkOptions(r.Bundler) },
			Default:     string(models.FrameworkNone),
			Required:    true,
			Condition:   func(*WizardResult) bool { return preset.Framework == "" },
		},
	}
}

func validateProjectName(v string) error {
	if err := project.ValidateProjectName(strings.TrimSpace(v)); err != nil {
		return errors.New(project.InvalidNameMessage)
	}
	return nil
}

func bundlerOptions() []Option {
	opts := make([]Option, 0, len(models.ValidBundlers()))
	for _, b := range models.ValidBundlers() {
		opts = append(opts, Option{Label: string(b), Value: string(b), Desc: bundlerDescriptions[b]})
	}
	return opts
}

// frameworkOptions lists the frameworks compatible with b.
func frameworkOptions(b models.Bundler) []Option {
	supported := project.SupportedFrameworks(b)
	opts := make([]Option, 0, len(supported))
	for _, f := range supported {
		opts = append(opts, Option{Label: string(f), Value: string(f), Desc: frameworkDescriptions[f]})
	}
	return opts
}
