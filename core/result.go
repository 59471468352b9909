package core

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Value is the resolved state of one argument after a decode.
type Value struct {
	// Strings holds the bound values: the captured tokens, the default, or
	// "true"/"false" for flag actions.
	Strings []string
	// Specified reports whether the argument appeared on the command line.
	Specified bool
}

// Result pairs an argument with the values it captured from one occurrence on the command line.
type Result struct {
	Arg    *Argument
	Values []string
}

// Value returns the first captured value, or "" when there is none.
func (r Result) Value() string {
	if len(r.Values) == 0 {
		return ""
	}
	return r.Values[0]
}

func (r Result) String() string {
	return fmt.Sprintf("%s=%s", r.Arg.Dest(), strings.Join(r.Values, ","))
}

// ResultSet is the outcome of a successful decode.
type ResultSet struct {
	specified []Result
	args      []*Argument
	resolved  []Value
	options   map[string]int
}

// Specified returns the matched arguments in the order they were scanned.
func (rs *ResultSet) Specified() []Result {
	return slices.Clone(rs.specified)
}

// Len returns the number of matched arguments.
func (rs *ResultSet) Len() int { return len(rs.specified) }

// Lookup returns the resolved value of the argument called name.
// Name may be an option string ("--count", "-c") or a bare name ("count", "file").
// A bare name shared by a positional and an option selects the positional;
// the option stays reachable through its option strings.
// Arguments that were neither given nor have a default are not found,
// except flag actions which always resolve to "true" or "false".
func (rs *ResultSet) Lookup(name string) (Value, bool) {
	idx, ok := rs.find(name)
	if !ok {
		return Value{}, false
	}
	v := rs.resolved[idx]
	if v.Strings == nil {
		return Value{}, false
	}
	return Value{Strings: slices.Clone(v.Strings), Specified: v.Specified}, true
}

func (rs *ResultSet) find(name string) (int, bool) {
	if idx, ok := rs.options[name]; ok {
		return idx, true
	}
	found := -1
	for i, a := range rs.args {
		if a.Dest() != name {
			continue
		}
		if a.Positional() {
			return i, true
		}
		if found < 0 {
			found = i
		}
	}
	return found, found >= 0
}

// String returns the first value of name, or "" when it has none.
func (rs *ResultSet) String(name string) string {
	v, ok := rs.Lookup(name)
	if !ok || len(v.Strings) == 0 {
		return ""
	}
	return v.Strings[0]
}

// Strings returns every value bound to name.
func (rs *ResultSet) Strings(name string) []string {
	v, _ := rs.Lookup(name)
	return v.Strings
}

// Bool interprets the first value of name as a boolean. Missing values are false.
func (rs *ResultSet) Bool(name string) bool {
	b, err := strconv.ParseBool(rs.String(name))
	return err == nil && b
}

// Int interprets the first value of name as a base-10 integer.
func (rs *ResultSet) Int(name string) (int, error) {
	v, ok := rs.Lookup(name)
	if !ok || len(v.Strings) == 0 {
		return 0, fmt.Errorf("argument %q has no value", name)
	}
	n, err := strconv.Atoi(v.Strings[0])
	if err != nil {
		return 0, fmt.Errorf("argument %q: %w", name, err)
	}
	return n, nil
}

// IsSet reports whether name appeared on the command line.
func (rs *ResultSet) IsSet(name string) bool {
	v, ok := rs.Lookup(name)
	return ok && v.Specified
}
