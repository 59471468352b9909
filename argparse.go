package argparse

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/hzeller/libargparse/core"
	"github.com/hzeller/libargparse/display"
)

var (
	osExit             = os.Exit // Mockable for testing
	stdout   io.Writer = os.Stdout
	stderr   io.Writer = os.Stderr
	errColor           = color.New(color.FgRed, color.Bold)
)

// NewParser creates an empty argument registry.
//
// Usage:
//
//	p := argparse.NewParser(argparse.ParserConfig{
//		Prog:         os.Args[0],
//		BasenameOnly: true,
//		Description:  "Copies files.",
//		AddHelp:      true,
//	})
var NewParser = core.NewParser

// NewArgument validates cfg and returns the argument it declares.
// Definition mistakes are reported as errors.BuildError.
var NewArgument = core.NewArgument

// MustArgument is like NewArgument but panics on an invalid definition.
var MustArgument = core.MustArgument

// BuildUsage returns the one-line usage summary of a Parser.
var BuildUsage = display.BuildUsage

// BuildHelp renders the full help text of a Parser wrapped to the given width
// (0 detects the terminal width).
var BuildHelp = display.BuildHelp

// BuildVersion returns "prog vX.Y.Z", inferring the version from build info
// when the Parser has none.
var BuildVersion = display.BuildVersion

// PrintHelp writes the help text of p to w, wrapped to the terminal width.
func PrintHelp(w io.Writer, p *Parser) error {
	_, err := io.WriteString(w, display.BuildHelp(p, 0))
	return err
}

// ParseOrExit decodes argv (including the program path in argv[0]) against p.
//
// If -h/--help or -V/--version were registered through ParserConfig and given
// on the command line, it prints the help or version text and exits with
// status 0. On a decoding error it prints the usage and the error to stderr
// and exits with status 2.
func ParseOrExit(p *Parser, argv []string) *ResultSet {
	res, err := p.ParseArgs(argv)

	// Help and version win over decoding errors such as missing positionals.
	if requested(p, argv, core.HelpLong) {
		fmt.Fprint(stdout, display.BuildHelp(p, 0))
		osExit(0)
		return res
	}
	if requested(p, argv, core.VersionLong) {
		version, verr := display.BuildVersion(p)
		if verr != nil {
			version = p.Prog()
		}
		fmt.Fprintln(stdout, version)
		osExit(0)
		return res
	}

	if err != nil {
		fmt.Fprint(stderr, display.BuildUsage(p))
		fmt.Fprintf(stderr, "%s: %s %s\n", p.Prog(), errColor.Sprint("error:"), err)
		osExit(2)
		return nil
	}
	return res
}

// requested reports whether the flag registered in p under long appears in
// argv after the program path, in its long or short form.
func requested(p *Parser, argv []string, long string) bool {
	if len(argv) < 2 {
		return false
	}
	for _, a := range p.Optionals() {
		if a.Long() != long || a.Action() != core.StoreTrue {
			continue
		}
		for _, tok := range argv[1:] {
			if tok == a.Long() || (a.Short() != "" && tok == a.Short()) {
				return true
			}
		}
	}
	return false
}
