package usage

import (
	"errors"
	"fmt"
)

// ArgKind classifies a positional-argument slot declared on a usage line.
type ArgKind int

const (
	// RequiredSingle denotes <name> - consumes exactly one token
	RequiredSingle ArgKind = iota
	// OptionalSingle denotes [<name>] - consumes one token when available
	OptionalSingle
	// RequiredVariadic denotes <name>... - consumes all remaining tokens, at least one
	RequiredVariadic
	// OptionalVariadic denotes [<name>...] - consumes all remaining tokens, possibly none
	OptionalVariadic
)

// String returns the string representation of an ArgKind
func (k ArgKind) String() string {
	switch k {
	case RequiredSingle:
		return "required"
	case OptionalSingle:
		return "optional"
	case RequiredVariadic:
		return "required variadic"
	case OptionalVariadic:
		return "optional variadic"
	default:
		return "unknown"
	}
}

// Optional reports whether the slot may be left unbound
func (k ArgKind) Optional() bool {
	return k == OptionalSingle || k == OptionalVariadic
}

// Variadic reports whether the slot consumes all remaining tokens
func (k ArgKind) Variadic() bool {
	return k == RequiredVariadic || k == OptionalVariadic
}

// PositionalArg describes one declared positional-argument slot. Slots bind
// command-line tokens in declaration order.
type PositionalArg struct {
	Name string
	Kind ArgKind
}

// Grammar-construction errors. These are raised while deriving the command
// model from help text and indicate a broken help text - a programmer error,
// never routed through the runtime error handler.
var (
	ErrNoCommand            = errors.New("no command defined")
	ErrNoMainCommand        = errors.New("no default command defined")
	ErrAmbiguousMainCommand = errors.New("ambiguous default command")
	ErrCommandDefined       = errors.New("command already defined")
	ErrOptionDefined        = errors.New("option already defined")
	ErrArgumentDefined      = errors.New("argument already defined")
	ErrOptionOutsideCommand = errors.New("option defined before any command")
	ErrSubCommandName       = errors.New("invalid sub-command name")
)

// Command-line resolution/binding errors. These are raised while matching
// argv against a valid model and are intended for end users.
var (
	ErrInvalidCommand   = errors.New("invalid command")
	ErrUnknownOption    = errors.New("unknown option")
	ErrArgumentMissing  = errors.New("argument missing")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrConversion       = errors.New("cannot convert argument")
	ErrUnknownConverter = errors.New("unknown conversion")
)

// GrammarError wraps a grammar-construction failure with the offending help
// text line number (0 when no single line is at fault, e.g. "no command
// defined").
type GrammarError struct {
	Line int
	Err  error
}

func (e *GrammarError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("help text line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *GrammarError) Unwrap() error {
	return e.Err
}

// ParseError wraps a command-line resolution or binding failure with the
// full name of the command being invoked.
type ParseError struct {
	Command string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ErrorHandlerFunc intercepts ParseErrors raised by MustParse. The model is
// passed along so a handler can look up and print the failing command's help.
type ErrorHandlerFunc func(model *Model, err *ParseError)

func grammarErr(line int, sentinel error, detail string) *GrammarError {
	if detail == "" {
		return &GrammarError{Line: line, Err: sentinel}
	}
	return &GrammarError{Line: line, Err: fmt.Errorf("%w - %s", sentinel, detail)}
}

func parseErr(command string, sentinel error, detail string) *ParseError {
	if detail == "" {
		return &ParseError{Command: command, Err: sentinel}
	}
	return &ParseError{Command: command, Err: fmt.Errorf("%w - %s", sentinel, detail)}
}
