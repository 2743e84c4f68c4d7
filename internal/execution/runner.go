package execution

import (
	"ptd/internal/domain"
	"ptd/internal/ui"
)

// Runner drives a ResultSource over every method of a catalog, one method
// at a time, in catalog order. The records it returns feed both the
// per-method report lines and the aggregated summary; there is no second
// accumulator.
type Runner struct {
	source   ResultSource
	progress *ui.ProgressBar
}

// NewRunner creates a new Runner
func NewRunner(source ResultSource) *Runner {
	return &Runner{source: source}
}

// SetProgress sets the progress bar for the runner
func (r *Runner) SetProgress(progress *ui.ProgressBar) {
	r.progress = progress
}

// Run produces one result per method in the catalog.
func (r *Runner) Run(catalog *domain.Catalog) []domain.TestResult {
	results := make([]domain.TestResult, 0, catalog.CountMethods())
	var passed, failed int

	for _, suite := range catalog.Suites() {
		methods, ok := catalog.Methods(suite)
		if !ok {
			continue
		}
		for _, method := range methods {
			result := r.source.Result(suite, method)
			results = append(results, result)
			if result.Failed() {
				failed++
			} else {
				passed++
			}
			if r.progress != nil {
				r.progress.Update(passed, failed)
			}
		}
	}

	if r.progress != nil {
		r.progress.Finish()
	}
	return results
}
