package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"ftgen/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintCreating announces the script before any command is written
func (f *Formatter) PrintCreating(path string) {
	color.New(color.FgCyan).Fprintf(f.out, "Creating %s.\n", path)
}

// PrintCreated reports that every command has been written
func (f *Formatter) PrintCreated(path string) {
	color.New(color.FgGreen).Fprintf(f.out, "Created %s file\n", path)
}

// PrintModuleTree prints modules with their classes in generation order
func (f *Formatter) PrintModuleTree(set *domain.ModuleSet) {
	if set.Len() == 0 {
		color.New(color.FgYellow).Fprintln(f.out, "No functional tests found")
		return
	}

	color.New(color.FgGreen).Fprintf(f.out, "Found %d test class(es) in %d module(s):\n\n", set.Count(), set.Len())

	modules := set.Modules()
	for i, m := range modules {
		isLastModule := i == len(modules)-1

		connector := "├── "
		if isLastModule {
			connector = "└── "
		}
		fmt.Fprintf(f.out, "%s%s %s\n", connector, color.CyanString(m.Module), color.WhiteString("(forkCount=%d)", len(m.Classes)))

		for j, class := range m.Classes {
			isLastCase := j == len(m.Classes)-1

			var prefix string
			if isLastModule {
				if isLastCase {
					prefix = "    └── "
				} else {
					prefix = "    ├── "
				}
			} else {
				if isLastCase {
					prefix = "│   └── "
				} else {
					prefix = "│   ├── "
				}
			}

			fmt.Fprintf(f.out, "%s%s\n", prefix, color.YellowString(class))
		}
	}
}
