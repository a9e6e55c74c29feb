package usage

import "strings"

// looksLikeOption reports whether a token would be consumed as a flag rather
// than a command name or positional value.
func looksLikeOption(token string) bool {
	return strings.HasPrefix(token, "-")
}

// resolveCommand determines which command a token list invokes and returns it
// together with the tokens left after removing the consumed command path.
//
// The longest run of leading non-option tokens is matched, longest prefix
// first, against the sub-commands' local names. Longest-first matters because
// local names may themselves contain spaces; a parent must not shadow its own
// children. An empty token list, an option-looking first token or a
// single-command model all select the main command.
func (m *Model) resolveCommand(args []string) (*Command, []string, error) {
	if len(args) == 0 || m.commands.Count() == 1 {
		return m.main, args, nil
	}

	run := 0
	for run < len(args) && !looksLikeOption(args[run]) {
		run++
	}
	if run == 0 {
		return m.main, args, nil
	}

	for n := run; n >= 1; n-- {
		candidate := strings.Join(args[:n], " ")
		next := m.commands.Iterator()
		for {
			_, c, ok := next()
			if !ok {
				break
			}
			if c != m.main && c.localName == candidate {
				return c, args[n:], nil
			}
		}
	}
	return nil, nil, parseErr(m.main.fullName, ErrInvalidCommand, args[0])
}
