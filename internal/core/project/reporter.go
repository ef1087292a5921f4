package project

// Reporter receives progress of a run. A run that created its directory
// ends with exactly one of Done, RollbackSucceeded or RollbackFailed.
type Reporter interface {
	StepStarted(title string)
	StepSucceeded(title string)
	StepFailed(title string, err error)
	RollbackSucceeded(dir string)
	RollbackFailed(dir string, err error)
	Done(result *Result)
}

// NopReporter discards all progress.
type NopReporter struct{}

func (NopReporter) StepStarted(string) {}
func (NopReporter) StepSucceeded(string) {}
func (NopReporter) StepFailed(string, error) {}
func (NopReporter) RollbackSucceeded(string) {}
func (NopReporter) RollbackFailed(string, error) {}
func (NopReporter) Done(*Result) {}
