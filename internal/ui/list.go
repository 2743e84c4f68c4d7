package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"ptd/internal/domain"
)

// ListFormatter prints a discovered catalog as a tree.
type ListFormatter struct {
	out io.Writer
}

// NewListFormatter creates a new ListFormatter writing to out.
func NewListFormatter(out io.Writer) *ListFormatter {
	return &ListFormatter{out: out}
}

// PrintCatalog prints every suite in the catalog, optionally with its test
// methods as children.
func (f *ListFormatter) PrintCatalog(catalog *domain.Catalog, showMethods bool) {
	suites := catalog.Suites()

	if showMethods {
		fmt.Fprintf(f.out, "%s\n\n", color.GreenString("Found %d test suite(s) with test methods:", len(suites)))
	} else {
		fmt.Fprintf(f.out, "%s\n\n", color.GreenString("Found %d test suite(s):", len(suites)))
	}

	for i, suite := range suites {
		isLastSuite := i == len(suites)-1
		if isLastSuite {
			fmt.Fprintf(f.out, "└── %s\n", color.CyanString(suite))
		} else {
			fmt.Fprintf(f.out, "├── %s\n", color.CyanString(suite))
		}

		if !showMethods {
			continue
		}

		methods, _ := catalog.Methods(suite)
		for j, method := range methods {
			isLastMethod := j == len(methods)-1

			var prefix string
			if isLastSuite {
				if isLastMethod {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastMethod {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			fmt.Fprintf(f.out, "%s%s\n", prefix, color.YellowString(method))
		}

		if !isLastSuite {
			fmt.Fprintln(f.out)
		}
	}
}
