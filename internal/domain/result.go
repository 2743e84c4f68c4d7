package domain

import "time"

// Status of a single executed test method.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// TestResult represents the outcome of executing one test method.
type TestResult struct {
	Suite      string  // Suite identifier the method belongs to
	Method     string  // Test method name
	Assertions int     // Number of assertions performed
	Time       float64 // Execution time in seconds
	Status     Status  // PASS or FAIL
}

// Failed reports whether the result is a failure.
func (r TestResult) Failed() bool {
	return r.Status == StatusFail
}

// RunMeta contains aggregate statistics about one test run.
type RunMeta struct {
	TotalSuites     int     `json:"total_suites"`
	TotalMethods    int     `json:"total_methods"`
	PassedMethods   int     `json:"passed_methods"`
	FailedMethods   int     `json:"failed_methods"`
	TotalAssertions int     `json:"total_assertions"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// NewRunMeta aggregates per-method results into run statistics.
func NewRunMeta(results []TestResult) RunMeta {
	meta := RunMeta{
		Timestamp: time.Now().Format(time.RFC3339),
	}
	suites := make(map[string]struct{})
	for _, result := range results {
		suites[result.Suite] = struct{}{}
		meta.TotalMethods++
		meta.TotalAssertions += result.Assertions
		meta.DurationSeconds += result.Time
		if result.Failed() {
			meta.FailedMethods++
		} else {
			meta.PassedMethods++
		}
	}
	meta.TotalSuites = len(suites)
	return meta
}

// RunOutput is the complete persisted form of a test run.
type RunOutput struct {
	Meta    RunMeta   `json:"meta"`
	Details []Failure `json:"details"`
}
