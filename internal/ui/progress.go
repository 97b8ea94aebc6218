package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows validation progress in place of per-file markers
type ProgressBar struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

// NewProgressBar creates a progress bar that renders to writer once started
func NewProgressBar(writer io.Writer) *ProgressBar {
	return &ProgressBar{writer: writer}
}

// Start renders an empty bar sized for count files
func (p *ProgressBar) Start(count int) {
	w := p.writer
	p.bar = progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)
}

// Update sets the bar to valid+invalid completed files
func (p *ProgressBar) Update(valid, invalid int) {
	if p.bar == nil {
		return
	}
	_ = p.bar.Set(valid + invalid)
	p.bar.Describe(describe(valid, invalid))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}

func describe(valid, invalid int) string {
	return color.CyanString("Validating: ") +
		color.GreenString("[valid: %d", valid) +
		" | " +
		color.RedString("invalid: %d]", invalid)
}
