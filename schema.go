package wrench

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map"
)

// optionRegistry stores OptionSpec entries in declaration order (the order
// drives usage output) with an alias index for lookup by name or short form
type optionRegistry struct {
	specs  *orderedmap.OrderedMap
	lookup map[string]string
}

func newOptionRegistry() *optionRegistry {
	return &optionRegistry{
		specs:  orderedmap.New(),
		lookup: map[string]string{},
	}
}

// add registers a spec. Alias collisions are programmer errors in the static
// option table and panic.
func (o *optionRegistry) add(spec *OptionSpec) {
	if _, found := o.lookup[spec.Name]; found {
		panic(fmt.Errorf("%w: %s", ErrDuplicateAlias, spec.Name))
	}
	o.lookup[spec.Name] = spec.Name
	if spec.Short != "" {
		if _, found := o.lookup[spec.Short]; found {
			panic(fmt.Errorf("%w: %s", ErrDuplicateAlias, spec.Short))
		}
		o.lookup[spec.Short] = spec.Name
	}
	o.specs.Set(spec.Name, spec)
}

// byAlias resolves a long or short alias to its spec. Positional specs are
// never matched by alias.
func (o *optionRegistry) byAlias(alias string) (*OptionSpec, bool) {
	name, found := o.lookup[alias]
	if !found {
		return nil, false
	}
	v, _ := o.specs.Get(name)
	spec := v.(*OptionSpec)
	if spec.Position != nil {
		return nil, false
	}

	return spec, true
}

func (o *optionRegistry) byName(name string) (*OptionSpec, bool) {
	v, found := o.specs.Get(name)
	if !found {
		return nil, false
	}

	return v.(*OptionSpec), true
}

// forEach visits specs in declaration order until the callback returns false
func (o *optionRegistry) forEach(visit func(spec *OptionSpec) bool) {
	for pair := o.specs.Oldest(); pair != nil; pair = pair.Next() {
		if !visit(pair.Value.(*OptionSpec)) {
			return
		}
	}
}

// Schema is the read-only catalogue of every recognized option, positional
// and subcommand. It is built once at startup and never mutated afterwards;
// no locking is needed.
type Schema struct {
	appName  string
	version  string
	global   *optionRegistry
	commands *orderedmap.OrderedMap
}

// NewSchema creates an empty Schema for the named program
func NewSchema(appName, version string) *Schema {
	return &Schema{
		appName:  appName,
		version:  version,
		global:   newOptionRegistry(),
		commands: orderedmap.New(),
	}
}

// AddOption registers a global option
func (s *Schema) AddOption(spec *OptionSpec) *Schema {
	s.global.add(spec)

	return s
}

// AddCommand registers a subcommand and checks its positional indices are
// unique - a duplicate index in the static table panics
func (s *Schema) AddCommand(command *CommandSpec) *Schema {
	if _, found := s.commands.Get(command.Name); found {
		panic(fmt.Errorf("%w: %s", ErrDuplicateAlias, command.Name))
	}
	seen := map[int]bool{}
	for _, positional := range command.positionals {
		if seen[*positional.Position] {
			panic(fmt.Errorf("%w: %s %d", ErrDuplicatePosition, command.Name, *positional.Position))
		}
		seen[*positional.Position] = true
	}
	s.commands.Set(command.Name, command)

	return s
}

// AppName returns the program name used in usage output
func (s *Schema) AppName() string {
	return s.appName
}

// Version returns the version reported by --version
func (s *Schema) Version() string {
	return s.version
}

// Command returns the CommandSpec registered under name
func (s *Schema) Command(name string) (*CommandSpec, bool) {
	v, found := s.commands.Get(name)
	if !found {
		return nil, false
	}

	return v.(*CommandSpec), true
}

// forEachCommand visits commands in declaration order
func (s *Schema) forEachCommand(visit func(command *CommandSpec) bool) {
	for pair := s.commands.Oldest(); pair != nil; pair = pair.Next() {
		if !visit(pair.Value.(*CommandSpec)) {
			return
		}
	}
}

// lookupOption resolves an alias within a command scope, falling back to the
// global scope. An empty scope restricts the lookup to global options only.
func (s *Schema) lookupOption(scope, alias string) (*OptionSpec, bool) {
	if scope != "" {
		if command, found := s.Command(scope); found {
			if spec, found := command.options.byAlias(alias); found {
				return spec, true
			}
		}
	}

	return s.global.byAlias(alias)
}
