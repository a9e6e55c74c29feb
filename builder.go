package usage

import "strings"

// modelBuilder consumes classified help-text lines sequentially, maintaining
// the command currently being defined and a pending paragraph buffer for the
// next command's leading description.
type modelBuilder struct {
	commands []*Command
	seen     map[string]int
	current  *commandBuilder
	pending  []string
}

// buildCommands derives the ordered list of frozen Command definitions from
// free-form help text.
//
// Dialect rules (fixed here, see DESIGN.md for the rationale):
//   - a line whose first non-blank character is '#' closes the open command
//     and clears the pending paragraph; the marker itself is recorded nowhere
//   - a usage: header also implicitly closes the previous command; the
//     pending paragraph becomes the new command's leading description
//   - option/switch declarations attach to the open command; declaring one
//     before any usage: line is an error
//   - every non-marker line is appended to the owning command's help text,
//     which is finalized by trimming leading/trailing blank lines
func buildCommands(helpText string) ([]*Command, error) {
	b := &modelBuilder{seen: map[string]int{}}

	for i, raw := range strings.Split(helpText, "\n") {
		if err := b.consume(strings.TrimSuffix(raw, "\r"), i+1); err != nil {
			return nil, err
		}
	}
	b.close()

	if len(b.commands) == 0 {
		return nil, grammarErr(0, ErrNoCommand, "")
	}
	return b.commands, nil
}

func (b *modelBuilder) consume(line string, n int) error {
	li := classifyLine(line)
	switch li.class {
	case lineSeparator:
		b.close()
		b.pending = b.pending[:0]
	case lineUsage:
		if _, dup := b.seen[li.name]; dup {
			return grammarErr(n, ErrCommandDefined, li.name)
		}
		b.seen[li.name] = n
		b.close()
		b.current = newCommandBuilder(li.name, n)
		b.current.helpLines = append(b.current.helpLines, b.pending...)
		b.pending = b.pending[:0]
		b.current.helpLines = append(b.current.helpLines, line)
		for _, decl := range parsePositionals(li.rest) {
			if err := b.current.addPositional(decl, n); err != nil {
				return err
			}
		}
	case lineOption, lineSwitch:
		if b.current == nil {
			return grammarErr(n, ErrOptionOutsideCommand, li.spelling())
		}
		if err := b.current.addFlag(li, n); err != nil {
			return err
		}
		b.current.helpLines = append(b.current.helpLines, line)
	default:
		if b.current != nil {
			b.current.helpLines = append(b.current.helpLines, line)
		} else {
			b.pending = append(b.pending, line)
		}
	}
	return nil
}

// close finalizes the open command, if any
func (b *modelBuilder) close() {
	if b.current == nil {
		return
	}
	b.commands = append(b.commands, b.current.finalize())
	b.current = nil
}
