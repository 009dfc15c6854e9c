package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows how many source files a scan has inspected
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a spinner; the total is unknown until the walk ends
func NewProgressBar(w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString("Scanning sources")),
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
	)

	return &ProgressBar{bar: bar}
}

// Update sets the number of inspected files
func (p *ProgressBar) Update(inspected int) {
	p.bar.Set(inspected)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
