package wizard

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"

	"github.com/csja-dev/csja/internal/core/project"
	"github.com/csja-dev/csja/pkg/models"
)

// stubForms replaces runForm for the duration of a test and counts calls.
func stubForms(t *testing.T, fn func(*huh.Form) error) *int {
	t.Helper()
	calls := 0
	orig := runForm
	runForm = func(f *huh.Form) error {
		calls++
		return fn(f)
	}
	t.Cleanup(func() { runForm = orig })
	return &calls
}

func TestDefaultQuestions(t *testing.T) {
	questions := DefaultQuestions(WizardResult{})

	want := []string{QuestionProjectName, QuestionBundler, QuestionFramework}
	if len(questions) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(questions))
	}
	for i, id := range want {
		if questions[i].ID != id {
			t.Errorf("question %d: expected ID %q, got %q", i, id, questions[i].ID)
		}
		if questions[i].Condition == nil || !questions[i].Condition(&WizardResult{}) {
			t.Errorf("question %q should be shown with an empty preset", id)
		}
	}
	if questions[0].Type != QuestionTypeInput {
		t.Error("project name should be an input question")
	}
}

func TestDefaultQuestions_PresetSkips(t *testing.T) {
	preset := WizardResult{ProjectName: "app", Bundler: models.BundlerRollup, Framework: models.FrameworkSvelte}
	for _, q := range DefaultQuestions(preset) {
		if q.Condition(&preset) {
			t.Errorf("question %q should be skipped when preset", q.ID)
		}
	}
}

func TestProjectNameValidation(t *testing.T) {
	q := DefaultQuestions(WizardResult{})[0]

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain", "my-app", false},
		{"underscore_digits", "app_2", false},
		{"surrounding_space", "  app  ", false},
		{"space_inside", "my app", true},
		{"slash", "a/b", true},
		{"dot", "my.app", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := q.Validate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				if err.Error() != project.InvalidNameMessage {
					t.Errorf("expected %q, got %q", project.InvalidNameMessage, err.Error())
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error for %q: %v", tt.input, err)
			}
		})
	}
}

func TestFrameworkOptions(t *testing.T) {
	t.Run("webpack_offers_none_only", func(t *testing.T) {
		opts := frameworkOptions(models.BundlerWebpack)
		if len(opts) != 1 || opts[0].Value != string(models.FrameworkNone) {
			t.Errorf("unexpected options: %+v", opts)
		}
	})

	t.Run("rollup_offers_svelte", func(t *testing.T) {
		opts := frameworkOptions(models.BundlerRollup)
		if len(opts) != 2 {
			t.Fatalf("expected 2 options, got %+v", opts)
		}
		if opts[1].Value != string(models.FrameworkSvelte) {
			t.Errorf("expected Svelte as second option, got %q", opts[1].Value)
		}
	})

	t.Run("options_follow_bundler_answer", func(t *testing.T) {
		q := DefaultQuestions(WizardResult{})[2]
		got := q.options(&WizardResult{Bundler: models.BundlerRollup})
		if len(got) != 2 {
			t.Errorf("expected 2 options for Rollup, got %d", len(got))
		}
	})
}

func TestBundlerOptions(t *testing.T) {
	opts := bundlerOptions()
	if len(opts) != len(models.ValidBundlers()) {
		t.Fatalf("expected %d options, got %d", len(models.ValidBundlers()), len(opts))
	}
	for _, o := range opts {
		if o.Desc == "" {
			t.Errorf("option %q has no description", o.Value)
		}
	}
}

func TestRunWithEmptyQuestions(t *testing.T) {
	_, err := Run(nil, WizardResult{})
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}
}

func TestRun_FullyPreset(t *testing.T) {
	calls := stubForms(t, func(*huh.Form) error { return nil })

	preset := WizardResult{ProjectName: "app", Bundler: models.BundlerRollup, Framework: models.FrameworkSvelte}
	got, err := RunWithDefaults(preset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *got != preset {
		t.Errorf("expected %+v, got %+v", preset, *got)
	}
	if *calls != 0 {
		t.Errorf("expected no forms, got %d", *calls)
	}
}

func TestRun_WebpackSkipsFrameworkPrompt(t *testing.T) {
	calls := stubForms(t, func(*huh.Form) error { return nil })

	got, err := RunWithDefaults(WizardResult{ProjectName: "app"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Bundler != models.BundlerWebpack {
		t.Errorf("expected default bundler Webpack, got %q", got.Bundler)
	}
	if got.Framework != models.FrameworkNone {
		t.Errorf("expected framework none, got %q", got.Framework)
	}
	if *calls != 1 {
		t.Errorf("expected only the bundler form, got %d forms", *calls)
	}
}

func TestRun_RollupAsksFramework(t *testing.T) {
	calls := stubForms(t, func(*huh.Form) error { return nil })

	got, err := RunWithDefaults(WizardResult{ProjectName: "app", Bundler: models.BundlerRollup})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Framework != models.FrameworkNone {
		t.Errorf("expected default framework none, got %q", got.Framework)
	}
	if *calls != 1 {
		t.Errorf("expected the framework form, got %d forms", *calls)
	}
}

func TestRun_Aborted(t *testing.T) {
	stubForms(t, func(*huh.Form) error { return huh.ErrUserAborted })

	_, err := RunWithDefaults(WizardResult{})
	if !errors.Is(err, ErrCancelled) {
		t.Errorf("expected ErrCancelled, got %v", err)
	}
}

func TestRun_FormError(t *testing.T) {
	boom := errors.New("no tty")
	stubForms(t, func(*huh.Form) error { return boom })

	_, err := RunWithDefaults(WizardResult{})
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped form error, got %v", err)
	}
	if errors.Is(err, ErrCancelled) {
		t.Error("form error should not be reported as cancellation")
	}
}

func TestRun_NoOptions(t *testing.T) {
	stubForms(t, func(*huh.Form) error { return nil })

	questions := []Question{{ID: "empty", Type: QuestionTypeSelect}}
	_, err := Run(questions, WizardResult{})
	if !errors.Is(err, ErrNoOptions) {
		t.Errorf("expected ErrNoOptions, got %v", err)
	}
}

func TestSaveAnswer(t *testing.T) {
	var r WizardResult
	saveAnswer(QuestionProjectName, "app", &r)
	saveAnswer(QuestionBundler, "Rollup", &r)
	saveAnswer(QuestionFramework, "Svelte", &r)
	saveAnswer("unknown", "ignored", &r)

	want := WizardResult{ProjectName: "app", Bundler: models.BundlerRollup, Framework: models.FrameworkSvelte}
	if r != want {
		t.Errorf("expected %+v, got %+v", want, r)
	}
}

func TestBuildQuestionField(t *testing.T) {
	t.Run("select_binds_default", func(t *testing.T) {
		q := DefaultQuestions(WizardResult{})[1]
		field, value := buildQuestionField(&q, &WizardResult{})
		if field == nil {
			t.Fatal("expected a field")
		}
		if _, ok := field.(*huh.Select[string]); !ok {
			t.Errorf("expected *huh.Select[string], got %T", field)
		}
		if *value != string(models.BundlerWebpack) {
			t.Errorf("expected bound default Webpack, got %q", *value)
		}
	})

	t.Run("input", func(t *testing.T) {
		q := DefaultQuestions(WizardResult{})[0]
		field, value := buildQuestionField(&q, &WizardResult{})
		if _, ok := field.(*huh.Input); !ok {
			t.Errorf("expected *huh.Input, got %T", field)
		}
		if *value != "" {
			t.Errorf("expected empty bound value, got %q", *value)
		}
	})
}

func TestAnswerValue(t *testing.T) {
	q := &Question{Default: "fallback"}
	if got := answerValue(q, "  x "); got != "x" {
		t.Errorf("expected trimmed value, got %q", got)
	}
	if got := answerValue(q, "   "); got != "fallback" {
		t.Errorf("expected default, got %q", got)
	}
}

func TestNewWizardTheme(t *testing.T) {
	if newWizardTheme() == nil {
		t.Fatal("newWizardTheme() returned nil")
	}
}
