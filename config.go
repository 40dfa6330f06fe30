package wrench

import (
	"fmt"
	"regexp"

	"github.com/napalu/wrench/util"
)

var sizePattern = regexp.MustCompile(`^([0-9]+)x([0-9]+)$`)

// BuildConfig converts the raw value map into the typed Config, applying the
// per-option semantic checks and the subcommand-specific rules. Fail-fast:
// the first malformed or missing value aborts the build. No filesystem
// access happens here - path validity is the downstream consumer's problem.
func (s *Schema) BuildConfig(raw *RawArgs) (*Config, error) {
	config := &Config{
		Debug:      raw.HasFlag(optDebug),
		Rebuild:    raw.HasFlag(optRebuild),
		SubpixelAA: raw.HasFlag(optSubpixelAA),
		Vsync:      raw.HasFlag(optVsync),
	}

	if v, found := raw.Get(optShaders); found {
		config.ShadersPath = util.To(v)
	}

	if v, found := raw.Get(optSave); found {
		switch v {
		case "yaml":
			config.SaveFormat = util.To(SaveYaml)
		case "json":
			config.SaveFormat = util.To(SaveJson)
		default:
			return nil, fmt.Errorf("%w: --%s must be one of {yaml, json}, got %q", ErrInvalidEnumValue, optSave, v)
		}
	}

	if v, found := raw.Get(optDevicePixelRatio); found {
		ratio, ok := util.ParsePositiveFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: --%s expects a positive FLOAT, got %q", ErrInvalidNumber, optDevicePixelRatio, v)
		}
		config.DevicePixelRatio = &ratio
	}

	if v, found := raw.Get(optSize); found {
		size, err := parseWindowSize(v)
		if err != nil {
			return nil, err
		}
		config.WindowSize = size
	}

	if v, found := raw.Get(optTime); found {
		limit, ok := util.ParseNonNegativeFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: --%s expects a non-negative number of SECONDS, got %q", ErrInvalidNumber, optTime, v)
		}
		config.TimeLimit = &limit
	}

	switch raw.Command() {
	case cmdShow:
		if err := s.checkRequired(cmdShow, raw); err != nil {
			return nil, err
		}
		v, found := raw.Get(optQueue)
		if !found {
			v = s.optionDefault(cmdShow, optQueue)
		}
		depth, ok := util.ParsePositiveUint32(v)
		if !ok {
			return nil, fmt.Errorf("%w: --%s expects a positive integer N, got %q", ErrInvalidNumber, optQueue, v)
		}
		input, _ := raw.Get(optInput)
		config.Show = &ShowConfig{
			QueueDepth: depth,
			InputPath:  input,
		}
	case cmdReplay:
		if err := s.checkRequired(cmdReplay, raw); err != nil {
			return nil, err
		}
		input, _ := raw.Get(optInput)
		config.Replay = &ReplayConfig{
			ReissueAPI:  raw.HasFlag(optAPI),
			SkipUploads: raw.HasFlag(optSkipUploads),
			InputPath:   input,
		}
	default:
		return nil, fmt.Errorf("%w: expected one of show, replay", ErrMissingSubcommand)
	}

	return config, nil
}

// checkRequired verifies every required option of the command was supplied
func (s *Schema) checkRequired(commandName string, raw *RawArgs) error {
	command, _ := s.Command(commandName)
	var err error
	command.options.forEach(func(spec *OptionSpec) bool {
		if spec.Required && !raw.HasFlag(spec.Name) {
			err = fmt.Errorf("%w: %s requires %s", ErrMissingRequiredArgument, commandName, valuePlaceholder(spec))
			return false
		}
		return true
	})

	return err
}

// optionDefault returns the declared default value of a command's option
func (s *Schema) optionDefault(commandName, optionName string) string {
	command, found := s.Command(commandName)
	if !found {
		return ""
	}
	spec, found := command.options.byName(optionName)
	if !found {
		return ""
	}

	return spec.DefaultValue
}

// parseWindowSize parses the literal WIDTHxHEIGHT form; both components must
// be positive integers
func parseWindowSize(v string) (*WindowSize, error) {
	groups := sizePattern.FindStringSubmatch(v)
	if groups == nil {
		return nil, fmt.Errorf("%w: --%s expects WIDTHxHEIGHT, got %q", ErrInvalidFormat, optSize, v)
	}
	width, okW := util.ParsePositiveUint32(groups[1])
	height, okH := util.ParsePositiveUint32(groups[2])
	if !okW || !okH {
		return nil, fmt.Errorf("%w: --%s expects positive WIDTHxHEIGHT, got %q", ErrInvalidFormat, optSize, v)
	}

	return &WindowSize{Width: width, Height: height}, nil
}
