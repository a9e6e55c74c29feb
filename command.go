package usage

import (
	"strings"

	"github.com/cmdtext/usage/types/orderedmap"
)

// flagTarget is the shared binding target of one or more flag spellings.
// Spellings mapping to the same target are synonyms (e.g. -f and --format).
type flagTarget struct {
	key      string
	isSwitch bool
}

// Command is the frozen definition of one (sub-)command: its name path, its
// displayable help text, its positional-argument slots in declaration order
// and its option/switch table keyed by flag spelling. Commands are immutable
// once the model is built.
type Command struct {
	fullName   string
	localName  string
	helpText   string
	positional *orderedmap.OrderedMap[string, PositionalArg]
	flags      *orderedmap.OrderedMap[string, *flagTarget]
}

// FullName returns the space-joined command path as declared on its usage line
func (c *Command) FullName() string {
	return c.fullName
}

// LocalName returns the command name with the main command's prefix stripped.
// For the main command it equals FullName.
func (c *Command) LocalName() string {
	return c.localName
}

// Help returns the command's full help text: its leading description, its
// usage line and every declaration line that followed it.
func (c *Command) Help() string {
	return c.helpText
}

// IsMain reports whether the command was declared with a single top-level word
func (c *Command) IsMain() bool {
	return !strings.Contains(c.fullName, " ")
}

// PositionalArgs returns the declared positional slots in binding order
func (c *Command) PositionalArgs() []PositionalArg {
	args := make([]PositionalArg, 0, c.positional.Count())
	next := c.positional.Iterator()
	for {
		_, decl, ok := next()
		if !ok {
			return args
		}
		args = append(args, decl)
	}
}

// Switches returns the distinct boolean result keys declared for the command,
// in declaration order. Every one of them is present in any Result produced
// for this command.
func (c *Command) Switches() []string {
	var keys []string
	seen := map[string]bool{}
	next := c.flags.Iterator()
	for {
		_, target, ok := next()
		if !ok {
			return keys
		}
		if target.isSwitch && !seen[target.key] {
			seen[target.key] = true
			keys = append(keys, target.key)
		}
	}
}

// lookupFlag resolves a flag spelling (short letter or long word, without
// dashes) to its binding target.
func (c *Command) lookupFlag(spelling string) (*flagTarget, bool) {
	return c.flags.Get(spelling)
}

// commandBuilder is the mutable counterpart of Command, used only while the
// model builder consumes classified lines. finalize freezes it.
type commandBuilder struct {
	fullName   string
	line       int
	helpLines  []string
	positional *orderedmap.OrderedMap[string, PositionalArg]
	flags      *orderedmap.OrderedMap[string, *flagTarget]
	resultKeys map[string]bool
}

func newCommandBuilder(fullName string, line int) *commandBuilder {
	return &commandBuilder{
		fullName:   fullName,
		line:       line,
		positional: orderedmap.NewOrderedMap[string, PositionalArg](),
		flags:      orderedmap.NewOrderedMap[string, *flagTarget](),
		resultKeys: map[string]bool{},
	}
}

// addPositional registers one positional slot. The name must be unique among
// positional names and option result keys of the command.
func (b *commandBuilder) addPositional(decl PositionalArg, line int) error {
	if b.resultKeys[decl.Name] {
		return grammarErr(line, ErrArgumentDefined, decl.Name)
	}
	b.resultKeys[decl.Name] = true
	b.positional.Set(decl.Name, decl)
	return nil
}

// addFlag registers an option or switch declaration. Each spelling (short
// letter, long word) becomes a separate lookup key bound to one shared target.
func (b *commandBuilder) addFlag(li lineInfo, line int) error {
	target := &flagTarget{isSwitch: li.class == lineSwitch}
	switch {
	case li.class == lineOption:
		// options bind under their value name, not their spelling
		target.key = li.arg
	case li.long != "":
		target.key = li.long
	default:
		target.key = li.short
	}

	for _, spelling := range []string{li.short, li.long} {
		if spelling == "" {
			continue
		}
		if b.flags.Has(spelling) {
			return grammarErr(line, ErrOptionDefined, spelling)
		}
		b.flags.Set(spelling, target)
	}
	if b.resultKeys[target.key] {
		return grammarErr(line, ErrArgumentDefined, target.key)
	}
	b.resultKeys[target.key] = true
	return nil
}

// finalize trims leading and trailing blank lines from the accumulated help
// text and produces the immutable Command.
func (b *commandBuilder) finalize() *Command {
	lines := b.helpLines
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return &Command{
		fullName:   b.fullName,
		localName:  b.fullName,
		helpText:   strings.Join(lines, "\n"),
		positional: b.positional,
		flags:      b.flags,
	}
}
