package core

import (
	"slices"
	"strings"

	"github.com/hzeller/libargparse/errors"
	"github.com/hzeller/libargparse/internal/common"
)

// Action decides what an argument does with the tokens it matches.
type Action int

const (
	// Store binds the value tokens that follow the option (or the positional token itself).
	Store Action = iota
	// StoreTrue binds "true" when the option is present and takes no values.
	StoreTrue
	// StoreFalse binds "false" when the option is present and takes no values.
	StoreFalse
)

func (a Action) String() string {
	switch a {
	case Store:
		return "store"
	case StoreTrue:
		return "store_true"
	case StoreFalse:
		return "store_false"
	default:
		return "unknown"
	}
}

// Nargs is the number of value tokens an argument consumes.
type Nargs int

const (
	// NargsDefault picks the arity implied by the action.
	NargsDefault Nargs = iota
	// NargsZero takes no values ('0').
	NargsZero
	// NargsOne takes exactly one value ('1').
	NargsOne
	// NargsOptional takes zero or one value ('?').
	NargsOptional
	// NargsZeroOrMore takes any number of values ('*').
	NargsZeroOrMore
	// NargsOneOrMore takes at least one value ('+').
	NargsOneOrMore
)

const unbounded = int(^uint(0) >> 1)

// Window returns the minimum and maximum number of values the arity accepts.
func (n Nargs) Window() (min, max int) {
	switch n {
	case NargsOne:
		return 1, 1
	case NargsOptional:
		return 0, 1
	case NargsZeroOrMore:
		return 0, unbounded
	case NargsOneOrMore:
		return 1, unbounded
	default:
		return 0, 0
	}
}

func (n Nargs) String() string {
	switch n {
	case NargsZero:
		return "0"
	case NargsOne:
		return "1"
	case NargsOptional:
		return "?"
	case NargsZeroOrMore:
		return "*"
	case NargsOneOrMore:
		return "+"
	default:
		return "default"
	}
}

// ShowIn selects where help output mentions an argument.
type ShowIn int

const (
	// ShowInUsageAndHelp lists the argument in the usage line and in its group section.
	ShowInUsageAndHelp ShowIn = iota
	// ShowInHelpOnly keeps the argument out of the usage line.
	ShowInHelpOnly
)

func (s ShowIn) String() string {
	switch s {
	case ShowInUsageAndHelp:
		return "usage_and_help"
	case ShowInHelpOnly:
		return "help_only"
	default:
		return "unknown"
	}
}

// ArgumentConfig declares one option or positional argument.
// Long is required; a name without leading dashes declares a positional.
type ArgumentConfig struct {
	Long     string
	Short    string
	Action   Action
	Nargs    Nargs
	Required bool
	Default  *string
	Choices  []string
	Help     string
	Metavar  string
	Group    string
	ShowIn   ShowIn
}

// Argument is a validated argument descriptor. It is immutable once built.
type Argument struct {
	long     string
	short    string
	dest     string
	action   Action
	nargs    Nargs
	required bool
	def      string
	hasDef   bool
	choices  []string
	help     string
	metavar  string
	group    string
	showIn   ShowIn
}

// NewArgument validates cfg and returns the descriptor it declares.
func NewArgument(cfg ArgumentConfig) (*Argument, error) {
	if cfg.Long == "" {
		return nil, errors.NewBuildError("argument must be at least one character long")
	}

	dashes, name := common.SplitLeadingDashes(cfg.Long)
	switch {
	case len(dashes) > 2:
		return nil, errors.NewBuildError("more than two dashes in argument name '%s'", cfg.Long)
	case name == "":
		return nil, errors.NewBuildError("argument name '%s' has no characters after its dashes", cfg.Long)
	}

	short := cfg.Short
	if short != "" {
		if !strings.HasPrefix(short, "-") {
			short = "-" + short
		}
		if Classify(short) != TokenShort {
			return nil, errors.NewBuildError("short option '%s' must be a single character", cfg.Short)
		}
		if len(dashes) != 2 {
			return nil, errors.NewBuildError("long option must be specified before short option '%s'", cfg.Short)
		}
	}

	nargs := cfg.Nargs
	if nargs == NargsDefault {
		nargs = NargsOne
		if cfg.Action != Store {
			nargs = NargsZero
		}
	}

	switch cfg.Action {
	case Store:
		if nargs == NargsZero {
			return nil, errors.NewBuildError("STORE action on '%s' requires nargs other than '0'", cfg.Long)
		}
	case StoreTrue, StoreFalse:
		if nargs != NargsZero {
			return nil, errors.NewBuildError("%s action on '%s' requires nargs to be '0'",
				strings.ToUpper(cfg.Action.String()), cfg.Long)
		}
		if cfg.Default != nil {
			return nil, errors.NewBuildError("%s action on '%s' does not take a default value",
				strings.ToUpper(cfg.Action.String()), cfg.Long)
		}
		if len(cfg.Choices) > 0 {
			return nil, errors.NewBuildError("%s action on '%s' does not take choices",
				strings.ToUpper(cfg.Action.String()), cfg.Long)
		}
	default:
		return nil, errors.NewBuildError("unrecognized action %d on '%s'", int(cfg.Action), cfg.Long)
	}

	if cfg.ShowIn != ShowInUsageAndHelp && cfg.ShowIn != ShowInHelpOnly {
		return nil, errors.NewBuildError("unrecognized show-in mode %d on '%s'", int(cfg.ShowIn), cfg.Long)
	}

	if dashes == "" && (cfg.Action != Store || nargs != NargsOne) {
		return nil, errors.NewBuildError("positional argument '%s' must use STORE with nargs '1'", cfg.Long)
	}

	if cfg.Default != nil && len(cfg.Choices) > 0 && !slices.Contains(cfg.Choices, *cfg.Default) {
		return nil, errors.NewBuildError("default '%s' of '%s' is not one of its choices", *cfg.Default, cfg.Long)
	}

	metavar := cfg.Metavar
	if metavar == "" {
		metavar = strings.ToUpper(name)
	}

	arg := &Argument{
		long:     cfg.Long,
		short:    short,
		dest:     name,
		action:   cfg.Action,
		nargs:    nargs,
		required: cfg.Required,
		choices:  slices.Clone(cfg.Choices),
		help:     cfg.Help,
		metavar:  metavar,
		group:    cfg.Group,
		showIn:   cfg.ShowIn,
	}
	if cfg.Default != nil {
		arg.def, arg.hasDef = *cfg.Default, true
	}
	return arg, nil
}

// MustArgument is like NewArgument but panics on an invalid config.
// It is meant for package-level argument tables.
func MustArgument(cfg ArgumentConfig) *Argument {
	arg, err := NewArgument(cfg)
	if err != nil {
		panic(err)
	}
	return arg
}

// Long returns the declared name, dashes included.
func (a *Argument) Long() string { return a.long }

// Short returns the "-x" form, or "" when none was declared.
func (a *Argument) Short() string { return a.short }

// Dest returns the name without leading dashes.
func (a *Argument) Dest() string { return a.dest }

// Action returns what the argument does with its matches.
func (a *Argument) Action() Action { return a.action }

// Nargs returns the resolved arity; it is never NargsDefault.
func (a *Argument) Nargs() Nargs { return a.nargs }

// Help returns the help text.
func (a *Argument) Help() string { return a.help }

// Metavar returns the value placeholder used in help output.
func (a *Argument) Metavar() string { return a.metavar }

// Group returns the name of the display section the argument asked for.
func (a *Argument) Group() string { return a.group }

// ShowIn returns where help output mentions the argument.
func (a *Argument) ShowIn() ShowIn { return a.showIn }

// Choices returns a copy of the allowed values.
func (a *Argument) Choices() []string { return slices.Clone(a.choices) }

// Default returns the default value and whether one was declared.
func (a *Argument) Default() (string, bool) { return a.def, a.hasDef }

// Positional reports whether the argument is matched by position rather than by name.
func (a *Argument) Positional() bool { return !strings.HasPrefix(a.long, "-") }

// Required reports whether the argument must appear on the command line.
// Positional arguments are always required.
func (a *Argument) Required() bool { return a.required || a.Positional() }

// TakesValue reports whether the argument binds value tokens rather than a flag state.
func (a *Argument) TakesValue() bool { return a.action == Store }

// optionStrings returns the strings that select the argument on the command line.
func (a *Argument) optionStrings() []string {
	if a.Positional() {
		return nil
	}
	if a.short == "" {
		return []string{a.long}
	}
	return []string{a.long, a.short}
}

// checkChoice verifies value against the declared choices.
func (a *Argument) checkChoice(option, value string) error {
	if len(a.choices) == 0 || slices.Contains(a.choices, value) {
		return nil
	}
	return errors.NewInvalidChoice(option, value, a.Choices())
}
