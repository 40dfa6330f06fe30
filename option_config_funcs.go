package wrench

// NewOption convenience initialization method to declare options
func NewOption(name string, configs ...ConfigureOptionFunc) *OptionSpec {
	option := &OptionSpec{Name: name, TypeOf: Single}
	for _, config := range configs {
		config(option)
	}

	return option
}

// WithShort sets the single-character alias of the option
func WithShort(short string) ConfigureOptionFunc {
	return func(option *OptionSpec) {
		option.Short = short
	}
}

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureOptionFunc {
	return func(option *OptionSpec) {
		option.Description = description
	}
}

// WithType - one of two types:
//  1. Single - an option which expects a value
//  2. Standalone - a boolean option which takes no value
func WithType(typeOf OptionType) ConfigureOptionFunc {
	return func(option *OptionSpec) {
		option.TypeOf = typeOf
	}
}

// SetRequired when true, the option must be supplied on the command line
func SetRequired(required bool) ConfigureOptionFunc {
	return func(option *OptionSpec) {
		option.Required = required
	}
}

// WithDefaultValue sets the value used when the option is absent
func WithDefaultValue(defaultValue string) ConfigureOptionFunc {
	return func(option *OptionSpec) {
		option.DefaultValue = defaultValue
	}
}

// WithValueName sets the value placeholder shown in usage output
func WithValueName(valueName string) ConfigureOptionFunc {
	return func(option *OptionSpec) {
		option.ValueName = valueName
	}
}

// WithPosition marks the option as a positional argument bound by index
// (1-based) instead of by alias
func WithPosition(index int) ConfigureOptionFunc {
	return func(option *OptionSpec) {
		option.Position = &index
	}
}

// NewCommand convenience initialization method to declare subcommands
func NewCommand(name string, configs ...ConfigureCommandFunc) *CommandSpec {
	command := &CommandSpec{
		Name:    name,
		options: newOptionRegistry(),
	}
	for _, config := range configs {
		config(command)
	}

	return command
}

// WithCommandDescription the description will be used in usage output
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *CommandSpec) {
		command.Description = description
	}
}

// WithCommandOptions registers the command's own options in declaration order
func WithCommandOptions(options ...*OptionSpec) ConfigureCommandFunc {
	return func(command *CommandSpec) {
		for _, option := range options {
			command.options.add(option)
			if option.Position != nil {
				command.positionals = append(command.positionals, option)
			}
		}
	}
}
