package wrench

import (
	"errors"
)

// OptionType used to define option arity (value-taking vs boolean)
type OptionType int

const (
	// Empty denotes an option which is not set
	Empty OptionType = iota
	// Single denotes an option accepting a string value
	Single
	// Standalone denotes a boolean option (does not accept a value)
	Standalone
)

// String returns the string representation of an OptionType
func (o OptionType) String() string {
	switch o {
	case Single:
		return "single"
	case Standalone:
		return "standalone"
	case Empty:
		fallthrough
	default:
		return "empty"
	}
}

// OptionSpec describes a single command-line option or positional argument.
// Specs are static data - registered once when the Schema is built and never
// mutated afterwards.
type OptionSpec struct {
	Name         string
	Short        string
	Description  string
	TypeOf       OptionType
	Required     bool
	DefaultValue string
	// ValueName is the placeholder shown in usage output for value-taking
	// options, e.g. PATH or WIDTHxHEIGHT
	ValueName string
	// Position marks the spec as a positional argument bound by index
	// (1-based) instead of by alias
	Position *int
}

// CommandSpec describes a subcommand: its own ordered option set plus the
// positional arguments it accepts
type CommandSpec struct {
	Name        string
	Description string

	options     *optionRegistry
	positionals []*OptionSpec
}

// ConfigureOptionFunc is used when declaring options - see NewOption
type ConfigureOptionFunc func(option *OptionSpec)

// ConfigureCommandFunc is used when declaring commands - see NewCommand
type ConfigureCommandFunc func(command *CommandSpec)

// PositionalArgument records a non-flag token bound to a positional slot
type PositionalArgument struct {
	Position int
	Value    string
}

// RawArgs is the parser's deliverable: raw string values per recognized
// option, split between the global scope and the active subcommand scope.
// Created fresh per Parse call and discarded after BuildConfig.
type RawArgs struct {
	global      map[string]string
	command     string
	local       map[string]string
	positionals []PositionalArgument
}

// Command returns the active subcommand name or "" when none was given
func (r *RawArgs) Command() string {
	return r.command
}

// Get returns the raw value recorded for an option, preferring the
// subcommand scope over the global scope
func (r *RawArgs) Get(name string) (string, bool) {
	if v, found := r.local[name]; found {
		return v, true
	}
	v, found := r.global[name]

	return v, found
}

// HasFlag reports whether an option was seen on the command line
func (r *RawArgs) HasFlag(name string) bool {
	_, found := r.Get(name)

	return found
}

// Positionals returns the positional arguments bound in the subcommand scope
func (r *RawArgs) Positionals() []PositionalArgument {
	return r.positionals
}

// SaveFormat selects the serialization format for --save
type SaveFormat int

const (
	SaveYaml SaveFormat = iota
	SaveJson
)

// String returns the command-line spelling of the format
func (f SaveFormat) String() string {
	if f == SaveJson {
		return "json"
	}

	return "yaml"
}

// WindowSize is the parsed form of the WIDTHxHEIGHT --size value
type WindowSize struct {
	Width  uint32
	Height uint32
}

// ShowConfig holds the show-mode settings: a YAML frame description to
// build, submitting queue-depth frames at a time
type ShowConfig struct {
	QueueDepth uint32
	InputPath  string
}

// ReplayConfig holds the replay-mode settings. SkipUploads without
// ReissueAPI is accepted but has no effect - it only matters when API
// messages are reissued per frame.
type ReplayConfig struct {
	ReissueAPI  bool
	SkipUploads bool
	InputPath   string
}

// Config is the validated, typed configuration handed to the renderer
// driver. It is built once per invocation and immutable afterwards.
// Optional values are nil when the option was absent. Exactly one of Show
// and Replay is non-nil.
type Config struct {
	Debug            bool
	ShadersPath      *string
	Rebuild          bool
	SaveFormat       *SaveFormat
	SubpixelAA       bool
	DevicePixelRatio *float64
	WindowSize       *WindowSize
	TimeLimit        *float64
	Vsync            bool
	Show             *ShowConfig
	Replay           *ReplayConfig
}

// Mode returns the name of the active subcommand
func (c *Config) Mode() string {
	if c.Replay != nil {
		return cmdReplay
	}

	return cmdShow
}

var (
	ErrUnknownArgument         = errors.New("unknown argument")
	ErrMissingValue            = errors.New("missing value")
	ErrMissingRequiredArgument = errors.New("missing required argument")
	ErrMissingSubcommand       = errors.New("missing subcommand")
	ErrMultipleSubcommands     = errors.New("multiple subcommands")
	ErrInvalidNumber           = errors.New("invalid number")
	ErrInvalidFormat           = errors.New("invalid format")
	ErrInvalidEnumValue        = errors.New("invalid value")
	ErrDuplicateAlias          = errors.New("duplicate alias")
	ErrDuplicatePosition       = errors.New("duplicate positional index")
)
