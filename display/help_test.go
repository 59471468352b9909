package display_test

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hzeller/libargparse/core"
	"github.com/hzeller/libargparse/display"
	clierr "github.com/hzeller/libargparse/errors"
)

func init() {
	color.NoColor = true
}

func ptr(s string) *string { return &s }

func newParser(t *testing.T, cfg core.ParserConfig, args ...core.ArgumentConfig) *core.Parser {
	t.Helper()
	p := core.NewParser(cfg)
	for _, a := range args {
		arg, err := core.NewArgument(a)
		require.NoError(t, err)
		require.NoError(t, p.Add(arg))
	}
	return p
}

func TestBuildUsage(t *testing.T) {
	p := newParser(t, core.ParserConfig{Prog: "mytool", AddHelp: true},
		core.ArgumentConfig{Long: "--count", Short: "c"},
		core.ArgumentConfig{Long: "--output", Required: true},
		core.ArgumentConfig{Long: "--tags", Nargs: core.NargsZeroOrMore},
		core.ArgumentConfig{Long: "--inputs", Nargs: core.NargsOneOrMore},
		core.ArgumentConfig{Long: "--color", Nargs: core.NargsOptional, Choices: []string{"auto", "never"}},
		core.ArgumentConfig{Long: "file"},
	)

	assert.Equal(t,
		"usage: mytool [-h] [-c COUNT] --output OUTPUT [--tags [TAGS ...]] [--inputs INPUTS [INPUTS ...]] [--color [{auto,never}]] file\n",
		display.BuildUsage(p))
}

func TestBuildUsage_HelpOnly(t *testing.T) {
	p := newParser(t, core.ParserConfig{Prog: "mytool"},
		core.ArgumentConfig{Long: "--count", Short: "c", Help: "number of runs"},
		core.ArgumentConfig{Long: "--trace", Action: core.StoreTrue, ShowIn: core.ShowInHelpOnly, Help: "trace decoding"},
		core.ArgumentConfig{Long: "extra", ShowIn: core.ShowInHelpOnly, Help: "extra input"},
		core.ArgumentConfig{Long: "file"},
	)

	assert.Equal(t, "usage: mytool [-c COUNT] file\n", display.BuildUsage(p))

	help := display.BuildHelp(p, 80)
	assert.Contains(t, help, "--trace")
	assert.Contains(t, help, "trace decoding")
	assert.Contains(t, help, "extra input")
}

func TestBuildHelp_ValidInput(t *testing.T) {
	p := newParser(t, core.ParserConfig{Prog: "mytool", Description: "Process input files.", Epilog: "See the manual for more."},
		core.ArgumentConfig{Long: "input", Help: "The input file"},
		core.ArgumentConfig{Long: "--verbose", Short: "v", Action: core.StoreTrue, Help: "Enable verbose output"},
		core.ArgumentConfig{Long: "--level", Default: ptr("info"), Help: "Log level"},
	)

	help := display.BuildHelp(p, 80)
	assert.Contains(t, help, "usage:")
	assert.Contains(t, help, "Process input files.")
	assert.Contains(t, help, "arguments:")
	assert.Contains(t, help, "-v, --verbose")
	assert.Contains(t, help, "The input file")
	assert.Contains(t, help, "Enable verbose output")
	assert.Contains(t, help, "--level LEVEL")
	assert.Contains(t, help, "Log level (default: info)")
	assert.True(t, strings.HasSuffix(help, "See the manual for more.\n"))
}

func TestBuildHelp_NoArguments(t *testing.T) {
	p := newParser(t, core.ParserConfig{Prog: "emptytool"})

	help := display.BuildHelp(p, 80)
	assert.Equal(t, "usage: emptytool\n", help)
	assert.NotContains(t, help, "arguments:")
}

func TestBuildHelp_Groups(t *testing.T) {
	p := newParser(t, core.ParserConfig{Prog: "tool"})
	g := p.AddGroup("output options", "Defaults to stdout.")
	require.NoError(t, p.AddTo(g, core.MustArgument(core.ArgumentConfig{Long: "--format", Help: "Output format"})))

	help := display.BuildHelp(p, 80)
	assert.NotContains(t, help, "arguments:")
	assert.Contains(t, help, "output options:")
	assert.Contains(t, help, "  Defaults to stdout.")
}

func TestOptionsAlignment(t *testing.T) {
	p := newParser(t, core.ParserConfig{Prog: "alignmenttool"},
		core.ArgumentConfig{Long: "--config", Short: "c", Help: "Path to config file"},
		core.ArgumentConfig{Long: "--debug", Short: "d", Action: core.StoreTrue, Help: "Enable debug mode"},
	)

	help := display.BuildHelp(p, 80)

	lines := filterLinesContaining(strings.Split(help, "\n"), "Path", "Enable")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Index(lines[0], "Path"), strings.Index(lines[1], "Enable"))
}

func TestBuildHelp_Wrapping(t *testing.T) {
	p := newParser(t, core.ParserConfig{Prog: "tool"},
		core.ArgumentConfig{Long: "--name", Help: "one two three four five six seven eight nine ten"},
		core.ArgumentConfig{Long: "--a-very-long-option-name", Help: "short help"},
	)

	help := display.BuildHelp(p, 40)
	for _, line := range strings.Split(help, "\n") {
		if strings.HasPrefix(line, "usage:") || strings.HasPrefix(line, "  --a-very-long") {
			continue
		}
		assert.LessOrEqual(t, len(line), 40, "line %q", line)
	}

	lines := strings.Split(help, "\n")
	idx := indexOf(lines, "  --a-very-long-option-name A-VERY-LONG-OPTION-NAME")
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, "short help", strings.TrimSpace(lines[idx+1]))
}

func TestBuildVersion(t *testing.T) {
	version, err := display.BuildVersion(newParser(t, core.ParserConfig{Prog: "mycli", Version: "2.3.4"}))
	require.NoError(t, err)
	assert.Equal(t, "mycli v2.3.4", version)

	version, err = display.BuildVersion(newParser(t, core.ParserConfig{Prog: "mycli", Version: "v1.0.0"}))
	require.NoError(t, err)
	assert.Equal(t, "mycli v1.0.0", version)
}

func TestBuildVersion_Inferred(t *testing.T) {
	defer display.SetReadBuildInfo(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "v0.4.2"}}, true
	})()

	version, err := display.BuildVersion(newParser(t, core.ParserConfig{Prog: "mycli"}))
	require.NoError(t, err)
	assert.Equal(t, "mycli v0.4.2", version)
}

func TestBuildVersion_Unknown(t *testing.T) {
	defer display.SetReadBuildInfo(func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, true
	})()

	_, err := display.BuildVersion(newParser(t, core.ParserConfig{Prog: "mycli"}))
	require.Error(t, err)
	assert.NotErrorIs(t, err, clierr.ErrBuild)
}

func TestBuildVersion_NoBuildInfo(t *testing.T) {
	defer display.SetReadBuildInfo(func() (*debug.BuildInfo, bool) { return nil, false })()

	_, err := display.BuildVersion(newParser(t, core.ParserConfig{Prog: "mycli"}))
	require.Error(t, err)
	assert.NotErrorIs(t, err, clierr.ErrBuild)
	assert.NotErrorIs(t, err, clierr.ErrDecode)
}

func filterLinesContaining(lines []string, terms ...string) []string {
	var out []string
	for _, line := range lines {
		for _, term := range terms {
			if strings.Contains(line, term) {
				out = append(out, line)
				break
			}
		}
	}
	return out
}

func indexOf(lines []string, s string) int {
	for i, l := range lines {
		if l == s {
			return i
		}
	}
	return -1
}
