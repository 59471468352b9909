package display

import (
	"fmt"
	"strings"

	"github.com/hzeller/libargparse/core"
)

// BuildUsage returns the one-line usage summary of p, e.g.
//
//	usage: app [-h] [-c COUNT] file
//
// Arguments declared with core.ShowInHelpOnly are left out.
func BuildUsage(p *core.Parser) string {
	parts := []string{p.Prog()}

	for _, arg := range p.Optionals() {
		if arg.ShowIn() == core.ShowInHelpOnly {
			continue
		}
		part := usageOption(arg)
		if !arg.Required() {
			part = "[" + part + "]"
		}
		parts = append(parts, part)
	}
	for _, arg := range p.Positionals() {
		if arg.ShowIn() == core.ShowInHelpOnly {
			continue
		}
		parts = append(parts, arg.Long())
	}

	return fmt.Sprintf("%s %s\n", heading("usage:"), strings.Join(parts, " "))
}

// usageOption renders an option in its shortest form with its value placeholder.
func usageOption(arg *core.Argument) string {
	name := arg.Long()
	if arg.Short() != "" {
		name = arg.Short()
	}
	if mv := metavar(arg); mv != "" {
		return name + " " + mv
	}
	return name
}

// metavar renders the value placeholder of arg according to its arity.
func metavar(arg *core.Argument) string {
	if !arg.TakesValue() {
		return ""
	}

	mv := arg.Metavar()
	if choices := arg.Choices(); len(choices) > 0 {
		mv = "{" + strings.Join(choices, ",") + "}"
	}

	switch arg.Nargs() {
	case core.NargsOptional:
		return "[" + mv + "]"
	case core.NargsZeroOrMore:
		return "[" + mv + " ...]"
	case core.NargsOneOrMore:
		return mv + " [" + mv + " ...]"
	default:
		return mv
	}
}
