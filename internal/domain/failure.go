package domain

// Failure captures the reportable details of a failed test method.
type Failure struct {
	Suite   string  `json:"suite"`
	Method  string  `json:"method"`
	Message string  `json:"message"`
	Time    float64 `json:"time"`
}

// CollectFailures extracts a Failure record for every failed result,
// attaching the given mismatch message.
func CollectFailures(results []TestResult, message string) []Failure {
	var failures []Failure
	for _, result := range results {
		if !result.Failed() {
			continue
		}
		failures = append(failures, Failure{
			Suite:   result.Suite,
			Method:  result.Method,
			Message: message,
			Time:    result.Time,
		})
	}
	return failures
}
