package core

import (
	stderrs "errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clierr "github.com/hzeller/libargparse/errors"
)

func TestNewParser_ProgDefaults(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"/usr/local/bin/mytool", "x"}

	assert.Equal(t, "/usr/local/bin/mytool", NewParser(ParserConfig{}).Prog())
	assert.Equal(t, "mytool", NewParser(ParserConfig{BasenameOnly: true}).Prog())
	assert.Equal(t, "other", NewParser(ParserConfig{Prog: "/opt/other", BasenameOnly: true}).Prog())
}

func TestNewParser_HelpAndVersion(t *testing.T) {
	p := NewParser(ParserConfig{Prog: "app", AddHelp: true, AddVersion: true, Version: "1.0.0"})

	opts := p.Optionals()
	require.Len(t, opts, 2)
	assert.Equal(t, HelpLong, opts[0].Long())
	assert.Equal(t, HelpShort, opts[0].Short())
	assert.Equal(t, VersionLong, opts[1].Long())
	assert.Equal(t, "1.0.0", p.Version())
}

func TestParser_AddDuplicate(t *testing.T) {
	p := NewParser(ParserConfig{Prog: "app", AddHelp: true})
	require.NoError(t, p.Add(MustArgument(ArgumentConfig{Long: "--count", Short: "-c"})))

	for _, cfg := range []ArgumentConfig{
		{Long: "--count"},
		{Long: "--cores", Short: "c"},
		{Long: "--hint", Short: "h"},
	} {
		err := p.Add(MustArgument(cfg))
		var de clierr.DuplicateOptionError
		require.True(t, stderrs.As(err, &de), "config %+v", cfg)
		assert.ErrorIs(t, err, clierr.ErrBuild)
	}

	// A positional may share its name with an option, but not with another positional.
	assert.NoError(t, p.Add(MustArgument(ArgumentConfig{Long: "count"})))
	err := p.Add(MustArgument(ArgumentConfig{Long: "count"}))
	var be clierr.BuildError
	require.True(t, stderrs.As(err, &be))
	assert.Contains(t, err.Error(), "'count'")
	assert.Len(t, p.Arguments(), 3)
}

func TestParser_Groups(t *testing.T) {
	p := NewParser(ParserConfig{Prog: "app"})
	out := p.AddGroup("output options", "Output goes to stdout by default.")

	require.NoError(t, p.Add(MustArgument(ArgumentConfig{Long: "file"})))
	require.NoError(t, p.AddTo(out, MustArgument(ArgumentConfig{Long: "--format"})))
	require.NoError(t, p.Add(MustArgument(ArgumentConfig{Long: "--verbose", Action: StoreTrue})))

	groups := p.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, DefaultGroupName, groups[0].Name)
	assert.Equal(t, "output options", groups[1].Name)
	assert.Equal(t, "Output goes to stdout by default.", groups[1].Epilog)

	var names []string
	for _, a := range p.GroupArguments(DefaultGroup) {
		names = append(names, a.Long())
	}
	assert.Equal(t, []string{"file", "--verbose"}, names)

	require.Len(t, p.GroupArguments(out), 1)
	assert.Equal(t, "--format", p.GroupArguments(out)[0].Long())
	assert.Nil(t, p.GroupArguments(GroupID(7)))

	err := p.AddTo(GroupID(7), MustArgument(ArgumentConfig{Long: "--other"}))
	assert.ErrorIs(t, err, clierr.ErrBuild)
	assert.Error(t, p.Add(nil))

	assert.Len(t, p.Positionals(), 1)
	assert.Len(t, p.Optionals(), 2)
}

func TestParser_AddByGroupName(t *testing.T) {
	p := NewParser(ParserConfig{Prog: "app"})
	require.NoError(t, p.Add(MustArgument(ArgumentConfig{Long: "--host", Group: "network"})))
	require.NoError(t, p.Add(MustArgument(ArgumentConfig{Long: "--port", Group: "network"})))
	require.NoError(t, p.Add(MustArgument(ArgumentConfig{Long: "--verbose", Action: StoreTrue})))

	groups := p.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "network", groups[1].Name)
	assert.Len(t, p.GroupArguments(GroupID(1)), 2)
	assert.Len(t, p.GroupArguments(DefaultGroup), 1)

	// A failed registration does not leave an empty group behind.
	err := p.Add(MustArgument(ArgumentConfig{Long: "--port", Group: "other"}))
	assert.Error(t, err)
	assert.Len(t, p.Groups(), 2)
}

func TestParser_Clone(t *testing.T) {
	p := NewParser(ParserConfig{Prog: "app"})
	require.NoError(t, p.Add(MustArgument(ArgumentConfig{Long: "--count"})))

	c := p.Clone()
	require.NoError(t, c.Add(MustArgument(ArgumentConfig{Long: "--extra"})))

	assert.Len(t, p.Arguments(), 1)
	assert.Len(t, c.Arguments(), 2)

	_, err := p.Parse([]string{"--extra", "1"})
	var ue clierr.UnrecognizedArgumentError
	assert.True(t, stderrs.As(err, &ue))

	rs, err := c.Parse([]string{"--extra", "1"})
	require.NoError(t, err)
	assert.Equal(t, "1", rs.String("extra"))
}
