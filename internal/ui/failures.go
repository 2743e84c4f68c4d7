package ui

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ptd/internal/domain"
)

// FailureViewer displays the failures of the last run in an interactive TUI.
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View opens the interactive failure browser for the given run output.
// With no recorded failures it prints a confirmation and returns.
func (fv *FailureViewer) View(output *domain.RunOutput) error {
	if len(output.Details) == 0 {
		color.Green("✓ No test failures found!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)
	list.SetBorder(true).SetTitle(" Failed tests ")

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	details.SetBorder(true).SetTitle(" Details ")

	header := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	header.SetText(fmt.Sprintf(
		"[red]%d[white] failed of [white]%d[white] methods in [white]%d[white] suite(s)  |  duration [white]%.2fs[white]  |  [yellow]q[white] quit",
		output.Meta.FailedMethods, output.Meta.TotalMethods, output.Meta.TotalSuites, output.Meta.DurationSeconds,
	))

	showDetails := func(index int) {
		if index < 0 || index >= len(output.Details) {
			return
		}
		failure := output.Details[index]
		details.SetText(fmt.Sprintf(
			"[red]FAIL[white]  %s > %s\n\n%s\n\n[gray]Duration: %.2fs[white]",
			failure.Suite, failure.Method, failure.Message, failure.Time,
		))
	}

	for i, failure := range output.Details {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s > %s", i+1, failure.Suite, failure.Method), "", 0, nil)
	}

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showDetails(index)
	})
	showDetails(0)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 1, 0, false).
		AddItem(tview.NewFlex().
			AddItem(list, 0, 1, true).
			AddItem(details, 0, 2, false), 0, 1, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})

	if err := app.SetRoot(flex, true).Run(); err != nil {
		return fmt.Errorf("failed to start failure viewer: %w", err)
	}
	return nil
}
