package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"ptd/internal/domain"
)

// FailureMessage is the fixed mismatch message printed for every failed
// method.
const FailureMessage = "Failed asserting that false is true."

// Reporter renders the fixed-format console report: banner, per-suite and
// per-method lines with right-aligned durations, and the aggregate summary.
// The exact strings and column alignment are a wire-equivalent contract for
// downstream log scraping.
type Reporter struct {
	out   io.Writer
	width int
}

// NewReporter creates a Reporter writing to out. Durations are right-aligned
// at the given column width.
func NewReporter(out io.Writer, width int) *Reporter {
	return &Reporter{out: out, width: width}
}

// Print renders the full report for one run: the found-suites banner, a
// header and method lines per suite in catalog order, then the summary with
// a detail block per failure.
func (r *Reporter) Print(catalog *domain.Catalog, results []domain.TestResult) {
	fmt.Fprintf(r.out, "%s\n\n", color.GreenString("Found %d test suite(s)", catalog.Len()))

	bySuite := make(map[string][]domain.TestResult)
	for _, result := range results {
		bySuite[result.Suite] = append(bySuite[result.Suite], result)
	}

	for _, suite := range catalog.Suites() {
		r.printSuite(suite, bySuite[suite])
	}

	r.printSummary(results)
}

func (r *Reporter) printSuite(suite string, results []domain.TestResult) {
	header := color.GreenString("PASS")
	for _, result := range results {
		if result.Failed() {
			header = color.RedString("FAIL")
			break
		}
	}
	fmt.Fprintf(r.out, "  %s  %s\n", header, suite)

	for _, result := range results {
		r.printMethod(result)
	}
	fmt.Fprintln(r.out)
}

// printMethod prints one method line. Padding is computed from the uncolored
// text so ANSI escape codes do not shift the duration column.
func (r *Reporter) printMethod(result domain.TestResult) {
	mark := color.GreenString("✓")
	if result.Failed() {
		mark = color.RedString("✗")
	}

	label := fmt.Sprintf("%s (%d assertions)", result.Method, result.Assertions)
	pad := r.width - utf8.RuneCountInString("  ✓ "+label)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(r.out, "  %s %s%s%.2fs\n", mark, label, strings.Repeat(" ", pad), result.Time)
}

func (r *Reporter) printSummary(results []domain.TestResult) {
	var passed, failed, assertions int
	var total float64
	for _, result := range results {
		assertions += result.Assertions
		total += result.Time
		if result.Failed() {
			failed++
		} else {
			passed++
		}
	}

	separator := strings.Repeat("-", r.width)

	fmt.Fprintln(r.out, separator)
	fmt.Fprintf(r.out, "Tests:    %d failed, %d passed (%d assertions)\n", failed, passed, assertions)
	fmt.Fprintf(r.out, "Duration: %.2fs\n", total)

	for _, result := range results {
		if !result.Failed() {
			continue
		}
		fmt.Fprintln(r.out, separator)
		fmt.Fprintf(r.out, "%s  %s > %s\n", color.RedString("FAIL"), result.Suite, result.Method)
		fmt.Fprintln(r.out, FailureMessage)
		fmt.Fprintf(r.out, "Duration: %.2fs\n", result.Time)
	}
}
