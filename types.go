//go:generate gomarkdoc ./ -o docs/argparse.md
package argparse

import "github.com/hzeller/libargparse/core"

// Parser is the argument registry and decoder. See core.Parser.
type Parser = core.Parser

// ParserConfig describes the program a Parser belongs to.
type ParserConfig = core.ParserConfig

// Argument is an immutable option or positional descriptor built by NewArgument.
type Argument = core.Argument

// ArgumentConfig declares one option or positional argument.
//
// Usage:
//
//	// option with a short form and a default
//	argparse.ArgumentConfig{Long: "--level", Short: "l", Default: &level, Choices: []string{"debug", "info"}}
//
//	// boolean switch
//	argparse.ArgumentConfig{Long: "--verbose", Short: "v", Action: argparse.StoreTrue}
//
//	// positional
//	argparse.ArgumentConfig{Long: "file", Help: "input file"}
type ArgumentConfig = core.ArgumentConfig

// Action decides what an argument does with the tokens it matches.
type Action = core.Action

// Nargs is the number of values a Store argument consumes.
type Nargs = core.Nargs

// GroupID identifies an argument group within its Parser.
type GroupID = core.GroupID

// Result is one matched argument occurrence with its captured values.
type Result = core.Result

// ResultSet is the outcome of a successful decode.
type ResultSet = core.ResultSet

// Value is the resolved state of one argument after a decode.
type Value = core.Value

const (
	Store      = core.Store
	StoreTrue  = core.StoreTrue
	StoreFalse = core.StoreFalse
)

const (
	NargsDefault    = core.NargsDefault
	NargsZero       = core.NargsZero
	NargsOne        = core.NargsOne
	NargsOptional   = core.NargsOptional
	NargsZeroOrMore = core.NargsZeroOrMore
	NargsOneOrMore  = core.NargsOneOrMore
)

// ShowIn selects where help output mentions an argument.
type ShowIn = core.ShowIn

// ShowIn modes.
const (
	ShowInUsageAndHelp = core.ShowInUsageAndHelp
	ShowInHelpOnly     = core.ShowInHelpOnly
)

// DefaultGroup is the group every Parser starts with.
const DefaultGroup = core.DefaultGroup
