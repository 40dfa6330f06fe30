package parse

// State is a cursor over the argument list. The cursor starts before the
// first argument; call Advance to move onto it.
type State struct {
	pos  int
	args []string
}

// NewState creates a State over the given argument list
func NewState(args []string) *State {
	return &State{
		pos:  -1,
		args: args,
	}
}

// CurrentArg returns the argument under the cursor or "" when out of range
func (s *State) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}

	return s.args[s.pos]
}

// Advance moves to the next argument, returning false at end of input
func (s *State) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}

	return false
}
