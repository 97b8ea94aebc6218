package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"uitv/internal/domain"
	"uitv/internal/storage"
)

// FindingsViewer displays report findings in an interactive TUI
type FindingsViewer struct {
	storage storage.Storage
	out     io.Writer
}

// NewFindingsViewer creates a new FindingsViewer. Messages printed outside the TUI go to out.
func NewFindingsViewer(st storage.Storage, out io.Writer) *FindingsViewer {
	return &FindingsViewer{storage: st, out: out}
}

// View displays findings; 'r' toggles the resolved flag and saves it back to storage
func (fv *FindingsViewer) View(report *domain.ReportOutput) error {
	if len(report.Details) == 0 {
		color.New(color.FgGreen).Fprintln(fv.out, "✓ No findings in report!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	for i := range report.Details {
		list.AddItem(listItemText(report.Details[i], i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(headerText(report))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(report.Details) {
			statsView.SetText(formatFindingStats(report.Details[index], report.Meta.Directory))
			detailsView.SetText(formatFindingDetails(report.Details[index]))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(report.Details) {
					report.Details[index].Resolved = !report.Details[index].Resolved
					list.SetItemText(index, listItemText(report.Details[index], index), "")
					updateHeader()
					updateDetails()
					// Failing to persist must not kill the viewer
					_ = fv.storage.SaveOutput(report)
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func headerText(report *domain.ReportOutput) string {
	unresolved := 0
	for _, f := range report.Details {
		if !f.Resolved {
			unresolved++
		}
	}
	return fmt.Sprintf(" Findings (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] resolve, → details, ← back, Ctrl+C exit ",
		len(report.Details), unresolved)
}

func listItemText(f domain.Finding, index int) string {
	tag := "[red]E"
	if !f.IsError() {
		tag = "[yellow]W"
	}
	if f.Resolved {
		return fmt.Sprintf("[gray]✓ %d. %s[white]", index+1, f.Message)
	}
	return fmt.Sprintf("%s[white] %d. %s", tag, index+1, f.Message)
}

// formatFindingDetails formats a finding for display using tview color tags
func formatFindingDetails(f domain.Finding) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	if f.IsError() {
		fmt.Fprintf(w, "[red]✗ Error (%s)[white]\n\n", f.Check)
	} else {
		fmt.Fprintf(w, "[yellow]⚠ Warning (%s)[white]\n\n", f.Check)
	}

	if f.File != "" {
		fmt.Fprintf(w, "[cyan]File: %s[white]\n", f.File)
		if f.Line > 0 {
			fmt.Fprintf(w, "[yellow]Line: %d[white]\n", f.Line)
		}
		fmt.Fprintf(w, "\n")
	}

	fmt.Fprintf(w, "[yellow]Message:[white]\n%s\n\n", tview.Escape(f.Message))

	if f.Detail != "" {
		fmt.Fprintf(w, "[yellow]Diagnostics:[white]\n%s\n", tview.Escape(f.Detail))
	}

	w.Flush()
	return builder.String()
}

// formatFindingStats formats the header line above the details pane
func formatFindingStats(f domain.Finding, directory string) string {
	file := f.File
	if file == "" {
		file = "(run)"
	}
	status := "[red]open"
	if f.Resolved {
		status = "[green]resolved"
	}
	return fmt.Sprintf("[cyan]dir:[white] [yellow]%s[white]  [cyan]file:[white] [yellow]%s[white]  %s[white]\n",
		directory, file, status)
}
