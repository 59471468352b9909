package common

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is used for help output when the terminal width cannot be determined.
const DefaultWidth = 80

// Mockable for testing
var (
	isTerminalFn = term.IsTerminal
	getSizeFn    = term.GetSize
)

// SplitLeadingDashes splits s into its leading run of dashes and the remaining name.
func SplitLeadingDashes(s string) (dashes, name string) {
	name = strings.TrimLeft(s, "-")
	return s[:len(s)-len(name)], name
}

// Basename returns the last element of a program path.
func Basename(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}

// TerminalWidth returns the column count of stdout, or DefaultWidth when stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !isTerminalFn(fd) {
		return DefaultWidth
	}
	cols, _, err := getSizeFn(fd)
	if err != nil || cols <= 0 {
		return DefaultWidth
	}
	return cols
}

// WrapWidth breaks s into lines of at most width characters, splitting after any of breakChars.
// A trailing break character does not count towards the width, and a run without
// break characters longer than width is kept on one line.
// Every line but the last keeps its trailing break character and ends with "\n".
func WrapWidth(s string, width int, breakChars string) []string {
	var lines []string

	start, lastBreak := 0, 0
	for end := 0; end < len(s); end++ {
		if strings.IndexByte(breakChars, s[end]) >= 0 {
			lastBreak = end + 1
		}
		if end-start >= width && lastBreak > start {
			lines = append(lines, s[start:lastBreak]+"\n")
			start = lastBreak
		}
	}

	return append(lines, s[start:])
}
