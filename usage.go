// Package usage derives a complete command-line grammar from a program's own
// help text. Write the help text you want users to read; usage scans it for
// usage: headers, option/switch declarations and positional-argument
// declarations, then parses argv against the derived grammar.
//
// A minimal program:
//
//	res := usage.MustParse(`
//	My program.
//
//	usage: prog <input> [<output>]
//	  -v, --verbose    print more
//	  -f, --format <format>  output format
//	`, os.Args[1:])
//
//	input, _ := res.Get("input")
//	if res.IsTrue("verbose") { ... }
//
// Sub-commands are extra usage: lines whose names start with the main
// command's name ("usage: prog fetch <url>"); argv resolution picks the
// longest matching sub-command name from the leading tokens.
//
// The pipeline is purely synchronous and deterministic: help text to model,
// model plus argv to an immutable Result. Grammar errors (broken help text)
// surface as *GrammarError and are programmer errors; argv errors surface as
// *ParseError and can be funneled through a process-wide handler.
package usage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/cmdtext/usage/util"
)

// New derives a command model from help text. The returned model is immutable
// and may be reused across Parse calls. Errors are *GrammarError.
func New(helpText string) (*Model, error) {
	cmds, err := buildCommands(helpText)
	if err != nil {
		return nil, err
	}
	return newModel(cmds)
}

// Parse derives the model from helpText and parses args in one call. Errors
// are *GrammarError for broken help text, *ParseError for bad argv.
func Parse(helpText string, args []string) (*Result, error) {
	model, err := New(helpText)
	if err != nil {
		return nil, err
	}
	return model.Parse(args)
}

// ParseString is Parse for a raw command-line string, split with the platform
// lexer.
func ParseString(helpText, commandLine string) (*Result, error) {
	model, err := New(helpText)
	if err != nil {
		return nil, err
	}
	return model.ParseString(commandLine)
}

// MustParse parses args against helpText. A broken help text panics - that is
// a bug in the calling program, not user input. A command-line error is
// routed through the installed error handler (by default: print to stderr,
// exit non-zero); when the handler was cleared with SetErrorHandler(nil) the
// error panics instead so the caller can recover it.
func MustParse(helpText string, args []string) *Result {
	model, err := New(helpText)
	if err != nil {
		panic(err)
	}
	res, err := model.Parse(args)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			if h := currentHandler(); h != nil {
				h(model, perr)
				return nil
			}
		}
		panic(err)
	}
	return res
}

var (
	handlerMu    sync.Mutex
	errorHandler ErrorHandlerFunc = DefaultErrorHandler

	// injectable for tests
	stderr       io.Writer = os.Stderr
	exitFunc               = os.Exit
	terminalFunc           = func() bool { return util.IsTerminal(os.Stderr) }
)

// SetErrorHandler installs a process-wide handler for ParseErrors raised by
// MustParse and returns the previous handler. Passing nil removes the handler
// so MustParse re-raises by panicking.
func SetErrorHandler(h ErrorHandlerFunc) ErrorHandlerFunc {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := errorHandler
	errorHandler = h
	return prev
}

func currentHandler() ErrorHandlerFunc {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	return errorHandler
}

// DefaultErrorHandler prints the error to stderr and terminates the process
// with a non-zero status. When stderr is attached to a terminal it also
// prints the failing command's help text; pipes get just the one-line error.
func DefaultErrorHandler(model *Model, err *ParseError) {
	fmt.Fprintln(stderr, err)
	if terminalFunc() && model != nil {
		if cmd := model.Lookup(err.Command); cmd != nil {
			fmt.Fprintln(stderr, cmd.Help())
		}
	}
	exitFunc(1)
}
