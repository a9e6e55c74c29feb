package parse

// State tracks a left-to-right walk over an argument list. A fresh State sits
// before the first argument; Advance moves onto it. Peek looks one argument
// ahead without moving, which is how option values are claimed.
type State struct {
	pos  int
	args []string
}

// NewState creates a State over the given argument list
func NewState(args []string) *State {
	return &State{pos: -1, args: args}
}

// Pos returns the current position, -1 before the first Advance
func (s *State) Pos() int {
	return s.pos
}

// Len returns the length of the argument list
func (s *State) Len() int {
	return len(s.args)
}

// Args returns the entire argument list
func (s *State) Args() []string {
	return s.args
}

// CurrentArg returns the argument at the current position, or "" when the
// position is out of range
func (s *State) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Peek returns the next argument without advancing, or "" at the end
func (s *State) Peek() string {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1]
	}
	return ""
}

// Advance moves to the next argument; it returns false (and stays put) when
// no arguments remain
func (s *State) Advance() bool {
	if s.pos+1 >= len(s.args) {
		return false
	}
	s.pos++
	return true
}
