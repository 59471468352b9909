package core

import (
	"log/slog"
	"os"
	"slices"

	"github.com/hzeller/libargparse/errors"
	"github.com/hzeller/libargparse/internal/common"
)

// DefaultGroupName is the section that holds arguments added without an explicit group.
const DefaultGroupName = "arguments"

// Help and version option strings registered by ParserConfig.AddHelp and ParserConfig.AddVersion.
const (
	HelpLong     = "--help"
	HelpShort    = "-h"
	VersionLong  = "--version"
	VersionShort = "-V"
)

// ParserConfig describes the program an argument registry belongs to.
type ParserConfig struct {
	// Prog is the program name shown in usage. It defaults to os.Args[0].
	Prog string
	// BasenameOnly strips directories from Prog.
	BasenameOnly bool
	Description  string
	Epilog       string
	// Version is reported by --version. Empty means "infer from build info".
	Version string
	// AddHelp registers -h/--help as a StoreTrue option.
	AddHelp bool
	// AddVersion registers -V/--version as a StoreTrue option.
	AddVersion bool
	// Logger receives debug records for every decoding step. Nil disables logging.
	Logger *slog.Logger
}

// GroupID identifies a group within its Parser.
type GroupID int

// DefaultGroup is the group created by NewParser.
const DefaultGroup GroupID = 0

// Group is a named display section. It refers to its arguments by index into the owning Parser.
type Group struct {
	Name    string
	Epilog  string
	members []int
}

// Parser is the argument registry and the decoder that runs against it.
//
// A Parser is not safe for concurrent use: Parse resets and fills per-argument
// state in place. Give each goroutine its own Clone, or serialize calls.
type Parser struct {
	prog        string
	description string
	epilog      string
	version     string
	l           *slog.Logger

	args   []*Argument
	groups []Group
	names  map[string]int

	// resolved is indexed like args and rebuilt by every Parse.
	resolved []Value
}

// NewParser creates an empty registry with a single default group.
func NewParser(cfg ParserConfig) *Parser {
	prog := cfg.Prog
	if prog == "" && len(os.Args) > 0 {
		prog = os.Args[0]
	}
	if cfg.BasenameOnly {
		prog = common.Basename(prog)
	}

	l := cfg.Logger
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}

	p := &Parser{
		prog:        prog,
		description: cfg.Description,
		epilog:      cfg.Epilog,
		version:     cfg.Version,
		l:           l,
		groups:      []Group{{Name: DefaultGroupName}},
		names:       map[string]int{},
	}

	if cfg.AddHelp {
		p.mustAdd(ArgumentConfig{Long: HelpLong, Short: HelpShort, Action: StoreTrue, Help: "show this help message and exit"})
	}
	if cfg.AddVersion {
		p.mustAdd(ArgumentConfig{Long: VersionLong, Short: VersionShort, Action: StoreTrue, Help: "show version information and exit"})
	}

	return p
}

func (p *Parser) mustAdd(cfg ArgumentConfig) {
	if err := p.Add(MustArgument(cfg)); err != nil {
		panic(err)
	}
}

// AddGroup appends a new display section and returns its id.
func (p *Parser) AddGroup(name, epilog string) GroupID {
	p.groups = append(p.groups, Group{Name: name, Epilog: epilog})
	return GroupID(len(p.groups) - 1)
}

// Add registers arg in the group named by its Group field, creating that group
// if needed. Arguments without a group name go to the default group.
func (p *Parser) Add(arg *Argument) error {
	if arg == nil || arg.Group() == "" {
		return p.AddTo(DefaultGroup, arg)
	}
	for i, g := range p.groups {
		if g.Name == arg.Group() {
			return p.AddTo(GroupID(i), arg)
		}
	}
	g := p.AddGroup(arg.Group(), "")
	if err := p.AddTo(g, arg); err != nil {
		p.groups = p.groups[:g]
		return err
	}
	return nil
}

// AddTo registers arg in group g.
// It fails if another option already claims one of arg's option strings, or
// if a positional with the same name exists.
func (p *Parser) AddTo(g GroupID, arg *Argument) error {
	if arg == nil {
		return errors.NewBuildError("nil argument")
	}
	if g < 0 || int(g) >= len(p.groups) {
		return errors.NewBuildError("unknown argument group %d", int(g))
	}

	if arg.Positional() {
		for _, a := range p.args {
			if a.Positional() && a.Dest() == arg.Dest() {
				return errors.NewBuildError("positional argument '%s' is already defined", arg.Long())
			}
		}
	}

	opts := arg.optionStrings()
	for _, opt := range opts {
		if _, ok := p.names[opt]; ok {
			return errors.NewDuplicateOption(opt)
		}
	}

	idx := len(p.args)
	for _, opt := range opts {
		p.names[opt] = idx
	}
	p.args = append(p.args, arg)
	p.groups[g].members = append(p.groups[g].members, idx)
	return nil
}

// Clone returns a registry with the same arguments and groups and independent decode state.
// Argument descriptors are shared since they are immutable.
func (p *Parser) Clone() *Parser {
	c := *p
	c.args = slices.Clone(p.args)
	c.groups = make([]Group, len(p.groups))
	for i, g := range p.groups {
		g.members = slices.Clone(g.members)
		c.groups[i] = g
	}
	c.names = make(map[string]int, len(p.names))
	for k, v := range p.names {
		c.names[k] = v
	}
	c.resolved = nil
	return &c
}

// Prog, Description, Epilog and Version return the program metadata from ParserConfig,
// with Prog already defaulted and trimmed.
func (p *Parser) Prog() string        { return p.prog }
func (p *Parser) Description() string { return p.description }
func (p *Parser) Epilog() string      { return p.epilog }
func (p *Parser) Version() string     { return p.version }

// Groups returns the display sections in creation order.
func (p *Parser) Groups() []Group {
	groups := make([]Group, len(p.groups))
	for i, g := range p.groups {
		g.members = slices.Clone(g.members)
		groups[i] = g
	}
	return groups
}

// GroupArguments returns the arguments of group g in declaration order.
func (p *Parser) GroupArguments(g GroupID) []*Argument {
	if g < 0 || int(g) >= len(p.groups) {
		return nil
	}
	members := p.groups[g].members
	args := make([]*Argument, len(members))
	for i, idx := range members {
		args[i] = p.args[idx]
	}
	return args
}

// Arguments returns every registered argument in declaration order.
func (p *Parser) Arguments() []*Argument { return slices.Clone(p.args) }

// Positionals returns the positional arguments in declaration order.
func (p *Parser) Positionals() []*Argument {
	var res []*Argument
	for _, a := range p.args {
		if a.Positional() {
			res = append(res, a)
		}
	}
	return res
}

// Optionals returns the named options in declaration order.
func (p *Parser) Optionals() []*Argument {
	var res []*Argument
	for _, a := range p.args {
		if !a.Positional() {
			res = append(res, a)
		}
	}
	return res
}
