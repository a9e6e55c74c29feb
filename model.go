package usage

import (
	"strings"

	"github.com/cmdtext/usage/parse"
	"github.com/cmdtext/usage/types/orderedmap"
)

// Model is a program's whole derived grammar: every Command in declaration
// order plus the designated main command. A Model is immutable and safe for
// concurrent Parse calls.
type Model struct {
	commands *orderedmap.OrderedMap[string, *Command]
	main     *Command
}

// newModel organizes a list of command definitions into a model: it locates
// the main command (the single space-free name), verifies that every other
// command's name is prefixed by the main command's name plus a space, and
// derives each sub-command's local name by stripping that prefix.
func newModel(cmds []*Command) (*Model, error) {
	m := &Model{commands: orderedmap.NewOrderedMap[string, *Command]()}

	if len(cmds) == 1 {
		// a lone command is trivially main, whatever its name
		m.main = cmds[0]
		m.commands.Set(cmds[0].fullName, cmds[0])
		return m, nil
	}

	for _, c := range cmds {
		if !c.IsMain() {
			continue
		}
		if m.main != nil {
			return nil, grammarErr(0, ErrAmbiguousMainCommand, m.main.fullName+" vs "+c.fullName)
		}
		m.main = c
	}
	if m.main == nil {
		return nil, grammarErr(0, ErrNoMainCommand, "")
	}

	prefix := m.main.fullName + " "
	for _, c := range cmds {
		if c != m.main {
			if !strings.HasPrefix(c.fullName, prefix) {
				return nil, grammarErr(0, ErrSubCommandName, c.fullName+" (not a sub-command of "+m.main.fullName+")")
			}
			c.localName = strings.TrimPrefix(c.fullName, prefix)
		}
		m.commands.Set(c.fullName, c)
	}
	return m, nil
}

// Main returns the model's main command
func (m *Model) Main() *Command {
	return m.main
}

// Commands returns every command in declaration order
func (m *Model) Commands() []*Command {
	cmds := make([]*Command, 0, m.commands.Count())
	next := m.commands.Iterator()
	for {
		_, c, ok := next()
		if !ok {
			return cmds
		}
		cmds = append(cmds, c)
	}
}

// Lookup finds a command by full name or local name. It returns nil when no
// command matches, which callers typically turn into the main command's help.
func (m *Model) Lookup(name string) *Command {
	if c, ok := m.commands.Get(name); ok {
		return c
	}
	next := m.commands.Iterator()
	for {
		_, c, ok := next()
		if !ok {
			return nil
		}
		if c.localName == name {
			return c
		}
	}
}

// Parse resolves which command the token list invokes and binds the remaining
// tokens against that command's declared options and positional slots.
func (m *Model) Parse(args []string) (*Result, error) {
	cmd, rest, err := m.resolveCommand(args)
	if err != nil {
		return nil, err
	}
	return bindCommand(m, cmd, rest)
}

// ParseString splits a raw command-line string with the platform lexer and
// parses the resulting tokens.
func (m *Model) ParseString(commandLine string) (*Result, error) {
	args, err := parse.Split(commandLine)
	if err != nil {
		return nil, &ParseError{Command: m.main.fullName, Err: err}
	}
	return m.Parse(args)
}
