package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/csja-dev/csja/internal/core/project"
)

func newHeadlessReporter(total int) (*StepReporter, *strings.Builder) {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	var buf strings.Builder
	return NewStepReporter(NewNoColorTheme(), hm, &buf, total), &buf
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestStepReporter_Success(t *testing.T) {
	r, buf := newHeadlessReporter(2)

	r.StepStarted("Creating project directory")
	r.StepSucceeded("Creating project directory")
	r.StepStarted("Initializing package.json")
	r.StepSucceeded("Initializing package.json")
	r.Done(&project.Result{State: project.StateDone})

	want := []string{
		"[1/2] Creating project directory...",
		"✓ [1/2] Creating project directory",
		"[2/2] Initializing package.json...",
		"✓ [2/2] Initializing package.json",
		"Done! :)",
	}
	got := lines(buf.String())
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("output =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestStepReporter_RollbackIsLastLine(t *testing.T) {
	r, buf := newHeadlessReporter(7)

	r.StepStarted("Installing dependencies")
	r.StepFailed("Installing dependencies", errors.New("npm exited with status 1"))
	r.RollbackSucceeded("/tmp/demo-app")

	got := lines(buf.String())
	if got[len(got)-1] != "Rolled back: removed /tmp/demo-app" {
		t.Errorf("last line = %q", got[len(got)-1])
	}
	if !strings.Contains(buf.String(), "✗ [1/7] Installing dependencies: npm exited with status 1") {
		t.Errorf("missing failure line in %q", buf.String())
	}
}

func TestStepReporter_RollbackFailed(t *testing.T) {
	r, buf := newHeadlessReporter(0)

	r.StepStarted("Copying mocks")
	r.StepFailed("Copying mocks", errors.New("disk full"))
	r.RollbackFailed("/tmp/demo-app", errors.New("permission denied"))

	got := lines(buf.String())
	if got[len(got)-1] != "Rollback failed: could not remove /tmp/demo-app: permission denied; remove /tmp/demo-app manually" {
		t.Errorf("last line = %q", got[len(got)-1])
	}
	if got[0] != "Copying mocks..." {
		t.Errorf("first line = %q, want unnumbered title", got[0])
	}
}

func TestStepReporter_SummaryBeforeDone(t *testing.T) {
	r, buf := newHeadlessReporter(1)
	r.SetSummary(func(res *project.Result) string {
		return "next: cd " + res.Dir + "\n"
	})

	r.StepStarted("Copying source files")
	r.StepSucceeded("Copying source files")
	r.Done(&project.Result{Dir: "demo-app", State: project.StateDone})

	got := lines(buf.String())
	if got[len(got)-1] != "Done! :)" {
		t.Errorf("last line = %q", got[len(got)-1])
	}
	if got[len(got)-2] != "next: cd demo-app" {
		t.Errorf("summary line = %q", got[len(got)-2])
	}
}

func TestStepReporter_FailureShowsCommandStderr(t *testing.T) {
	r, buf := newHeadlessReporter(7)

	r.StepStarted("Installing dependencies")
	r.StepFailed("Installing dependencies", &project.StepError{
		Title:  "Installing dependencies",
		Err:    errors.New("npm install exited with status 1"),
		Stderr: "npm ERR! code E404\nnpm ERR! 404 Not Found\n",
	})

	got := lines(buf.String())
	want := []string{
		"[1/7] Installing dependencies...",
		"✗ [1/7] Installing dependencies: npm install exited with status 1",
		"    npm ERR! code E404",
		"    npm ERR! 404 Not Found",
	}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("output =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestStepReporter_FailureWithoutStart(t *testing.T) {
	r, buf := newHeadlessReporter(7)

	r.StepFailed("Creating project directory", errors.New("context canceled"))

	got := lines(buf.String())
	if got[0] != "✗ [1/7] Creating project directory: context canceled" {
		t.Errorf("line = %q", got[0])
	}
}
