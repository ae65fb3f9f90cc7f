package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"ltr/internal/domain"
)

// Formatter formats discovered cases for display
type Formatter struct {
	out    io.Writer
	header *color.Color
	group  *color.Color
	name   *color.Color
	empty  *color.Color
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer, noColor bool) *Formatter {
	f := &Formatter{
		out:    out,
		header: color.New(color.FgGreen),
		group:  color.New(color.FgCyan),
		name:   color.New(color.FgYellow),
		empty:  color.New(color.FgRed),
	}
	if noColor {
		f.header.DisableColor()
		f.group.DisableColor()
		f.name.DisableColor()
		f.empty.DisableColor()
	}
	return f
}

// PrintCaseList prints cases as a tree of groups, in run order
func (f *Formatter) PrintCaseList(groups []domain.Group, cases []domain.Case) {
	f.header.Fprintf(f.out, "Found %d case(s) in %d group(s):\n", len(cases), len(groups))

	byGroup := make(map[domain.Group][]string, len(groups))
	for _, c := range cases {
		byGroup[c.Group] = append(byGroup[c.Group], c.Name)
	}

	for i, group := range groups {
		isLastGroup := i == len(groups)-1
		if isLastGroup {
			f.group.Fprintf(f.out, "└── %s\n", group)
		} else {
			f.group.Fprintf(f.out, "├── %s\n", group)
		}

		indent := "│   "
		if isLastGroup {
			indent = "    "
		}

		names := byGroup[group]
		if len(names) == 0 {
			fmt.Fprintf(f.out, "%s└── ", indent)
			f.empty.Fprintln(f.out, "(no cases found)")
			continue
		}
		for j, name := range names {
			connector := "├── "
			if j == len(names)-1 {
				connector = "└── "
			}
			fmt.Fprintf(f.out, "%s%s", indent, connector)
			f.name.Fprintln(f.out, name)
		}
	}
}
