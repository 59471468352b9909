package errors

import (
	stderrs "errors"
	"fmt"
	"strings"
)

// ErrBuild is matched by every error returned while declaring arguments.
var ErrBuild = stderrs.New("argparse: invalid argument definition")

// ErrDecode is matched by every error returned while decoding command-line tokens.
// These are user-input errors and are meant to be shown to the user as is.
var ErrDecode = stderrs.New("argparse: invalid command line")

// BuildError represents a malformed argument or group definition.
type BuildError struct{ Msg string }

func (e BuildError) Error() string        { return e.Msg }
func (e BuildError) Is(target error) bool { return target == ErrBuild }

// DuplicateOptionError indicates that two optional arguments claim the same option string.
type DuplicateOptionError struct{ Option string }

func (e DuplicateOptionError) Error() string {
	return fmt.Sprintf("option string '%s' maps to multiple options", e.Option)
}

func (e DuplicateOptionError) Is(target error) bool { return target == ErrBuild || target == ErrDecode }

// MissingValueError indicates the input ended before an option received its mandatory value.
type MissingValueError struct{ Option string }

func (e MissingValueError) Error() string {
	return fmt.Sprintf("missing expected argument for '%s'", e.Option)
}

func (e MissingValueError) Is(target error) bool { return target == ErrDecode }

// InsufficientValuesError indicates an option was followed by fewer plain values than it needs.
type InsufficientValuesError struct {
	Option string
	Min    int
}

func (e InsufficientValuesError) Error() string {
	return fmt.Sprintf("expected at least %d values for argument '%s'", e.Min, e.Option)
}

func (e InsufficientValuesError) Is(target error) bool { return target == ErrDecode }

// UnrecognizedArgumentError indicates a token that matched no option and no free positional.
type UnrecognizedArgumentError struct{ Arg string }

func (e UnrecognizedArgumentError) Error() string {
	return fmt.Sprintf("unexpected command-line argument '%s'", e.Arg)
}

func (e UnrecognizedArgumentError) Is(target error) bool { return target == ErrDecode }

// MissingPositionalError indicates a positional argument that received no token.
type MissingPositionalError struct{ Name string }

func (e MissingPositionalError) Error() string {
	return fmt.Sprintf("missing required positional argument: %s", e.Name)
}

func (e MissingPositionalError) Is(target error) bool { return target == ErrDecode }

// MissingOptionError indicates a required option that was not given on the command line.
type MissingOptionError struct{ Option string }

func (e MissingOptionError) Error() string {
	return fmt.Sprintf("missing required option: %s", e.Option)
}

func (e MissingOptionError) Is(target error) bool { return target == ErrDecode }

// InvalidChoiceError indicates a value outside the argument's declared choices.
type InvalidChoiceError struct {
	Option  string
	Value   string
	Choices []string
}

func (e InvalidChoiceError) Error() string {
	return fmt.Sprintf("argument '%s': invalid choice '%s' (choose from %s)",
		e.Option, e.Value, strings.Join(e.Choices, ", "))
}

func (e InvalidChoiceError) Is(target error) bool { return target == ErrDecode }

// Helper constructors
func NewBuildError(format string, args ...any) error {
	return BuildError{Msg: fmt.Sprintf(format, args...)}
}
func NewDuplicateOption(opt string) error { return DuplicateOptionError{Option: opt} }
func NewMissingValue(opt string) error    { return MissingValueError{Option: opt} }
func NewInsufficientValues(opt string, min int) error {
	return InsufficientValuesError{Option: opt, Min: min}
}
func NewUnrecognizedArgument(arg string) error { return UnrecognizedArgumentError{Arg: arg} }
func NewMissingPositional(name string) error   { return MissingPositionalError{Name: name} }
func NewMissingOption(opt string) error        { return MissingOptionError{Option: opt} }
func NewInvalidChoice(opt, value string, choices []string) error {
	return InvalidChoiceError{Option: opt, Value: value, Choices: choices}
}
