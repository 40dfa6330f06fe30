package wrench

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ef-ds/deque"

	"github.com/napalu/wrench/parse"
)

const fmtErrorWithString = "%w: %s"

// Parse scans tokens left to right against the schema. Scanning starts in
// the global scope and switches - once - into a subcommand scope when a
// subcommand token is seen; global options remain reachable from either
// scope. The first fatal error aborts the scan.
//
// Value-taking options consume the following token unconditionally, so a
// flag-looking token after one is taken as its value; ErrMissingValue is
// only possible at end of input.
func (s *Schema) Parse(args []string) (*RawArgs, error) {
	raw := &RawArgs{
		global: map[string]string{},
		local:  map[string]string{},
	}
	// open positional slots of the active scope, in index order
	slots := deque.New()
	state := parse.NewState(args)

	for state.Advance() {
		current := state.CurrentArg()
		switch {
		case isFlag(current):
			alias, long, ok := flagAlias(current)
			if !ok {
				return nil, fmt.Errorf(fmtErrorWithString, ErrUnknownArgument, current)
			}
			spec, found := s.lookupOption(raw.command, alias)
			if !found || (long && alias != spec.Name) || (!long && alias != spec.Short) {
				return nil, fmt.Errorf(fmtErrorWithString, ErrUnknownArgument, current)
			}
			if err := s.processOption(state, raw, spec, current); err != nil {
				return nil, err
			}
		case s.isCommand(current):
			if raw.command != "" {
				return nil, fmt.Errorf("%w: %s given after %s", ErrMultipleSubcommands, current, raw.command)
			}
			command, _ := s.Command(current)
			raw.command = current
			for _, positional := range sortedPositionals(command) {
				slots.PushBack(positional)
			}
		default:
			v, ok := slots.PopFront()
			if !ok {
				return nil, fmt.Errorf(fmtErrorWithString, ErrUnknownArgument, current)
			}
			spec := v.(*OptionSpec)
			raw.local[spec.Name] = current
			raw.positionals = append(raw.positionals, PositionalArgument{
				Position: *spec.Position,
				Value:    current,
			})
		}
	}

	return raw, nil
}

// ParseString tokenizes a command line with the platform lexer and parses it
func (s *Schema) ParseString(argString string) (*RawArgs, error) {
	args, err := parse.Split(argString)
	if err != nil {
		return nil, err
	}

	return s.Parse(args)
}

// processOption records an option's presence or consumes its value
func (s *Schema) processOption(state *parse.State, raw *RawArgs, spec *OptionSpec, current string) error {
	value := "true"
	if spec.TypeOf == Single {
		if !state.Advance() {
			return fmt.Errorf("%w: %s expects a following %s", ErrMissingValue, current, valuePlaceholder(spec))
		}
		value = state.CurrentArg()
	}

	s.record(raw, spec, value)

	return nil
}

// record stores the raw value in the scope the option was declared in
func (s *Schema) record(raw *RawArgs, spec *OptionSpec, value string) {
	if raw.command != "" {
		if command, found := s.Command(raw.command); found {
			if _, local := command.options.byName(spec.Name); local {
				raw.local[spec.Name] = value
				return
			}
		}
	}
	raw.global[spec.Name] = value
}

func (s *Schema) isCommand(arg string) bool {
	_, found := s.commands.Get(arg)

	return found
}

// isFlag reports whether a token is a flag alias. A lone "-" is a value.
func isFlag(arg string) bool {
	return len(arg) > 1 && strings.HasPrefix(arg, "-")
}

// flagAlias splits a flag token into its alias and dash form. ok is false
// for malformed spellings such as "---debug" or a bare "--"; matching the
// alias against the right form for its dash count is the caller's job.
func flagAlias(arg string) (alias string, long bool, ok bool) {
	long = strings.HasPrefix(arg, "--")
	alias = strings.TrimPrefix(arg, "-")
	if long {
		alias = alias[1:]
	}

	return alias, long, alias != "" && !strings.HasPrefix(alias, "-")
}

func valuePlaceholder(spec *OptionSpec) string {
	if spec.ValueName != "" {
		return spec.ValueName
	}

	return "VALUE"
}

func sortedPositionals(command *CommandSpec) []*OptionSpec {
	positionals := make([]*OptionSpec, len(command.positionals))
	copy(positionals, command.positionals)
	sort.SliceStable(positionals, func(i, j int) bool {
		return *positionals[i].Position < *positionals[j].Position
	})

	return positionals
}
