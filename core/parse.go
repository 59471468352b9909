package core

import (
	"log/slog"
	"os"

	"github.com/hzeller/libargparse/errors"
)

// ParseOS decodes the process arguments, skipping the program path.
func (p *Parser) ParseOS() (*ResultSet, error) {
	return p.ParseArgs(os.Args)
}

// ParseArgs decodes an argument vector whose first element is the program path.
func (p *Parser) ParseArgs(argv []string) (*ResultSet, error) {
	if len(argv) == 0 {
		return p.Parse(nil)
	}
	return p.Parse(argv[1:])
}

// Parse decodes tokens against the registered arguments.
//
// Tokens equal to a registered option string always select that option, even
// while positionals are still waiting. A Store option then takes the following
// tokens as values, up to its arity, stopping at the first token that looks like
// an option whether or not it is registered. Any other token fills the next
// unbound positional in declaration order.
//
// On failure the returned ResultSet is nil and err is one of the decode errors
// in package errors.
func (p *Parser) Parse(tokens []string) (*ResultSet, error) {
	p.reset()

	options, err := p.index()
	if err != nil {
		return nil, err
	}

	var positionals []int
	for i, a := range p.args {
		if a.Positional() {
			positionals = append(positionals, i)
		}
	}

	var specified []Result

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		idx, ok := options[token]
		if !ok {
			if len(positionals) == 0 {
				p.l.Debug("Unrecognized argument", slog.String("token", token))
				return nil, errors.NewUnrecognizedArgument(token)
			}

			idx, positionals = positionals[0], positionals[1:]
			arg := p.args[idx]
			if err := arg.checkChoice(arg.Long(), token); err != nil {
				return nil, err
			}

			p.bind(idx, []string{token})
			specified = append(specified, Result{Arg: arg, Values: []string{token}})
			p.l.Debug("Bound positional", slog.String("positional", arg.Long()), slog.String("token", token))
			continue
		}

		arg := p.args[idx]

		var values []string
		switch arg.Action() {
		case StoreTrue:
			values = []string{"true"}
		case StoreFalse:
			values = []string{"false"}
		default:
			if values, err = consume(tokens, i, arg.Nargs()); err != nil {
				p.l.Debug("Option values rejected", slog.String("option", token), slog.Any("error", err))
				return nil, err
			}
			for _, v := range values {
				if err := arg.checkChoice(token, v); err != nil {
					return nil, err
				}
			}
			i += len(values)
		}

		p.bind(idx, values)
		specified = append(specified, Result{Arg: arg, Values: values})
		p.l.Debug("Bound option", slog.String("option", token), slog.Any("values", values))
	}

	if len(positionals) > 0 {
		return nil, errors.NewMissingPositional(p.args[positionals[0]].Long())
	}

	for i, a := range p.args {
		if a.Positional() || !a.required || p.resolved[i].Specified {
			continue
		}
		if _, ok := a.Default(); ok {
			continue
		}
		return nil, errors.NewMissingOption(a.Long())
	}

	return &ResultSet{
		specified: specified,
		args:      p.args,
		resolved:  p.resolved,
		options:   options,
	}, nil
}

// consume returns the value tokens that follow the option at tokens[at].
func consume(tokens []string, at int, nargs Nargs) ([]string, error) {
	min, max := nargs.Window()

	var values []string
	for len(values) < max {
		next := at + 1 + len(values)
		if next >= len(tokens) {
			if len(values) < min {
				return nil, errors.NewMissingValue(tokens[at])
			}
			break
		}
		if IsOption(tokens[next]) {
			break
		}
		values = append(values, tokens[next])
	}

	if len(values) < min {
		return nil, errors.NewInsufficientValues(tokens[at], min)
	}

	if values == nil {
		values = []string{}
	}
	return values, nil
}

// reset clears the decode state left by a previous Parse and applies defaults.
func (p *Parser) reset() {
	p.resolved = make([]Value, len(p.args))
	for i, a := range p.args {
		switch a.Action() {
		case StoreTrue:
			p.resolved[i] = Value{Strings: []string{"false"}}
		case StoreFalse:
			p.resolved[i] = Value{Strings: []string{"true"}}
		default:
			if def, ok := a.Default(); ok {
				p.resolved[i] = Value{Strings: []string{def}}
			}
		}
	}
}

// index maps every option string to its argument.
func (p *Parser) index() (map[string]int, error) {
	options := make(map[string]int, len(p.names))
	for i, a := range p.args {
		for _, opt := range a.optionStrings() {
			if _, ok := options[opt]; ok {
				return nil, errors.NewDuplicateOption(opt)
			}
			options[opt] = i
		}
	}
	return options, nil
}

// bind records values for the argument at idx. An option given without values keeps its default.
func (p *Parser) bind(idx int, values []string) {
	v := Value{Strings: values, Specified: true}
	if len(values) == 0 {
		v.Strings = []string{}
		if def, ok := p.args[idx].Default(); ok {
			v.Strings = []string{def}
		}
	}
	p.resolved[idx] = v
}
