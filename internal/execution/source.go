package execution

import (
	"math/rand"
	"time"

	"ptd/internal/domain"
)

// ResultSource produces the execution outcome for a single test method.
// The discovery and filter pipeline stays deterministic by depending on
// this interface instead of a concrete test runner.
type ResultSource interface {
	Result(suite, method string) domain.TestResult
}

const (
	stubFailRate      = 0.1
	stubMaxAssertions = 10
	stubMaxSeconds    = 0.5
)

// StubSource fabricates results from a seeded generator. It stands in for a
// real PHPUnit backend: assertion counts, durations and statuses are made
// up and carry no meaning beyond exercising the reporting pipeline. Wire a
// real ResultSource here to report actual execution results.
type StubSource struct {
	rng *rand.Rand
}

// NewStubSource creates a StubSource. A zero seed is replaced with the
// current time; any other seed makes the fabricated results reproducible.
func NewStubSource(seed int64) *StubSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &StubSource{rng: rand.New(rand.NewSource(seed))}
}

// Result fabricates an outcome for the given method.
func (s *StubSource) Result(suite, method string) domain.TestResult {
	status := domain.StatusPass
	if s.rng.Float64() < stubFailRate {
		status = domain.StatusFail
	}
	return domain.TestResult{
		Suite:      suite,
		Method:     method,
		Assertions: 1 + s.rng.Intn(stubMaxAssertions),
		Time:       s.rng.Float64() * stubMaxSeconds,
		Status:     status,
	}
}
