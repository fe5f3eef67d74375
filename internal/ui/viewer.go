package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"shtest/internal/domain"
)

// FailureViewer displays the last run's failures in an interactive TUI.
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer.
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View opens the interactive viewer. Arrow keys move through the failed test
// functions, Tab switches focus to the output pane, q or Escape quits.
func (fv *FailureViewer) View(output *domain.RunOutput) error {
	if len(output.Failures) == 0 {
		color.Green("✓ No test failures recorded!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" Failures (%d) ", len(output.Failures)))
	list.SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)
	details.SetBorder(true).SetTitle(" Output ")

	showFailure := func(index int) {
		if index < 0 || index >= len(output.Failures) {
			return
		}
		failure := output.Failures[index]
		out := strings.TrimRight(failure.Output, "\n")
		if out == "" {
			out = "[gray](no output)"
		}
		details.SetText(fmt.Sprintf(
			"[yellow]%s[white]\n%s:%d\nexit status %d\n\n%s",
			failure.Name, failure.Script, failure.Line, failure.ExitCode, tview.Escape(out),
		))
		details.ScrollToBeginning()
	}

	for i, failure := range output.Failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, failure.Name), "", 0, nil)
	}
	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		showFailure(index)
	})
	showFailure(0)

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape, event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Key() == tcell.KeyTab:
			if list.HasFocus() {
				app.SetFocus(details)
			} else {
				app.SetFocus(list)
			}
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
