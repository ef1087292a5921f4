package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/csja-dev/csja/internal/core/project"
)

// Final messages of a run.
const (
	DoneMessage          = "Done! :)"
	RolledBackFormat     = "Rolled back: removed %s"
	RollbackFailedFormat = "Rollback failed: could not remove %[1]s: %[2]v; remove %[1]s manually"
)

const (
	symSuccess = "\u2713"
	symError   = "\u2717"
)

var _ project.Reporter = (*StepReporter)(nil)

// StepReporter prints one line per finished step, with a spinner for the
// step in progress.
type StepReporter struct {
	theme    *Theme
	headless *HeadlessManager
	out      io.Writer
	total    int

	mu      sync.Mutex
	index   int
	current Spinner
	summary func(*project.Result) string
}

// NewStepReporter creates a StepReporter for a pipeline of total steps.
func NewStepReporter(theme *Theme, hm *HeadlessManager, out io.Writer, total int) *StepReporter {
	return &StepReporter{theme: theme, headless: hm, out: out, total: total}
}

// SetSummary registers text printed after the last step and before the
// final success message.
func (r *StepReporter) SetSummary(fn func(*project.Result) string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.summary = fn
}

func (r *StepReporter) label(title string) string {
	if r.total <= 0 {
		return title
	}
	return fmt.Sprintf("[%d/%d] %s", r.index, r.total, title)
}

func (r *StepReporter) stopSpinner() {
	if r.current != nil {
		r.current.Stop()
		r.current = nil
	}
}

func (r *StepReporter) StepStarted(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopSpinner()
	r.index++
	r.current = NewSpinner(r.theme, r.headless, r.out, r.label(title)+"...")
}

func (r *StepReporter) StepSucceeded(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopSpinner()
	_, _ = fmt.Fprintf(r.out, "%s %s\n", r.theme.Success(symSuccess), r.label(title))
}

// StepFailed prints the failure line followed by the tail of the failed
// command's stderr, if any. A step that never started (cancelled before it
// ran) still takes the next number.
func (r *StepReporter) StepFailed(title string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		r.index++
	}
	r.stopSpinner()

	detail := err
	var serr *project.StepError
	if errors.As(err, &serr) {
		detail = serr.Err
	}
	_, _ = fmt.Fprintf(r.out, "%s %s: %v\n", r.theme.Error(symError), r.label(title), detail)

	if serr != nil && serr.Stderr != "" {
		for _, line := range strings.Split(strings.TrimRight(serr.Stderr, "\n"), "\n") {
			_, _ = fmt.Fprintf(r.out, "    %s\n", r.theme.Muted(line))
		}
	}
}

func (r *StepReporter) RollbackSucceeded(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopSpinner()
	_, _ = fmt.Fprintln(r.out, r.theme.Warn(fmt.Sprintf(RolledBackFormat, dir)))
}

func (r *StepReporter) RollbackFailed(dir string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopSpinner()
	_, _ = fmt.Fprintln(r.out, r.theme.Error(fmt.Sprintf(RollbackFailedFormat, dir, err)))
}

func (r *StepReporter) Done(res *project.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopSpinner()
	if r.summary != nil {
		if text := r.summary(res); text != "" {
			_, _ = fmt.Fprint(r.out, text)
		}
	}
	_, _ = fmt.Fprintln(r.out, r.theme.Success(DoneMessage))
}
