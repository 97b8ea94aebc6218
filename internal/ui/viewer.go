package ui

import "uitv/internal/domain"

// Viewer displays report findings in an interactive TUI
type Viewer interface {
	View(report *domain.ReportOutput) error
}
