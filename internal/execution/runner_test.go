package execution

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ptd/internal/domain"
)

// fixedSource returns predetermined statuses keyed by method name.
type fixedSource struct {
	failing map[string]bool
}

func (s *fixedSource) Result(suite, method string) domain.TestResult {
	status := domain.StatusPass
	if s.failing[method] {
		status = domain.StatusFail
	}
	return domain.TestResult{
		Suite:      suite,
		Method:     method,
		Assertions: 2,
		Time:       0.05,
		Status:     status,
	}
}

func TestRunner_Run(t *testing.T) {
	catalog := domain.NewCatalog()
	catalog.Set("Tests.Feature.UserTest", []string{"testCreate", "testDelete"})
	catalog.Set("Tests.Unit.MathTest", []string{"testAdd"})

	runner := NewRunner(&fixedSource{failing: map[string]bool{"testDelete": true}})
	results := runner.Run(catalog)

	require.Len(t, results, 3)

	// One result per method, in catalog order
	require.Equal(t, "testCreate", results[0].Method)
	require.Equal(t, "testDelete", results[1].Method)
	require.Equal(t, "testAdd", results[2].Method)
	require.Equal(t, "Tests.Feature.UserTest", results[0].Suite)
	require.Equal(t, "Tests.Unit.MathTest", results[2].Suite)

	require.False(t, results[0].Failed())
	require.True(t, results[1].Failed())
	require.False(t, results[2].Failed())
}

func TestRunner_Run_EmptyCatalog(t *testing.T) {
	runner := NewRunner(&fixedSource{})
	results := runner.Run(domain.NewCatalog())
	require.Empty(t, results)
}
