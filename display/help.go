package display

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/hzeller/libargparse/core"
	"github.com/hzeller/libargparse/internal/common"
)

const (
	// maxColumn is the widest argument column before its help moves to the next line.
	maxColumn = 24
	indent    = "  "
)

var headingColor = color.New(color.Bold, color.Underline)

func heading(s string) string { return headingColor.Sprint(s) }

// BuildHelp renders the full help text of p: usage, description, one section
// per non-empty group and the epilog. Text is wrapped to width columns; a
// width of 0 or less uses the terminal width.
func BuildHelp(p *core.Parser, width int) string {
	if width <= 0 {
		width = common.TerminalWidth()
	}

	var builder strings.Builder
	builder.WriteString(BuildUsage(p))

	if d := p.Description(); d != "" {
		builder.WriteString("\n")
		builder.WriteString(wrap(d, width, ""))
	}

	for i, g := range p.Groups() {
		args := p.GroupArguments(core.GroupID(i))
		if len(args) == 0 {
			continue
		}

		builder.WriteString("\n" + heading(g.Name+":") + "\n")
		builder.WriteString(argumentsHelp(args, width))

		if g.Epilog != "" {
			builder.WriteString("\n")
			builder.WriteString(wrap(g.Epilog, width, indent))
		}
	}

	if e := p.Epilog(); e != "" {
		builder.WriteString("\n")
		builder.WriteString(wrap(e, width, ""))
	}

	return builder.String()
}

// === HELPERS ===

// argumentsHelp renders one aligned line block per argument.
func argumentsHelp(args []*core.Argument, width int) string {
	names := make([]string, len(args))
	column := 0
	for i, arg := range args {
		names[i] = indent + invocation(arg)
		if l := len(names[i]); l <= maxColumn && l > column {
			column = l
		}
	}
	column += len(indent)

	var builder strings.Builder
	for i, arg := range args {
		desc := describe(arg)
		if desc == "" {
			builder.WriteString(names[i] + "\n")
			continue
		}

		pad := strings.Repeat(" ", column)
		helpLines := strings.Split(wrap(desc, max(width-column, 20), ""), "\n")
		helpLines = helpLines[:len(helpLines)-1]

		if len(names[i])+len(indent) > column {
			builder.WriteString(names[i] + "\n")
		} else {
			builder.WriteString(names[i] + strings.Repeat(" ", column-len(names[i])) + helpLines[0] + "\n")
			helpLines = helpLines[1:]
		}
		for _, line := range helpLines {
			builder.WriteString(pad + line + "\n")
		}
	}
	return builder.String()
}

// invocation renders how arg is written on the command line, e.g. "-c, --count COUNT".
func invocation(arg *core.Argument) string {
	if arg.Positional() {
		return arg.Long()
	}

	names := arg.Long()
	if arg.Short() != "" {
		names = arg.Short() + ", " + names
	}
	if mv := metavar(arg); mv != "" {
		return names + " " + mv
	}
	return names
}

// describe returns the help text of arg with its default appended.
func describe(arg *core.Argument) string {
	desc := arg.Help()
	if def, ok := arg.Default(); ok {
		if desc != "" {
			desc += " "
		}
		desc += fmt.Sprintf("(default: %s)", def)
	}
	return desc
}

// wrap breaks s into lines of at most width columns, each prefixed with prefix and
// terminated by a newline.
func wrap(s string, width int, prefix string) string {
	var builder strings.Builder
	for _, paragraph := range strings.Split(s, "\n") {
		for _, line := range common.WrapWidth(paragraph, width-len(prefix), " ") {
			builder.WriteString(prefix + strings.TrimRight(line, " \n") + "\n")
		}
	}
	return builder.String()
}
