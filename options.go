package wrench

// Version reported by --version
const Version = "0.2.0"

// Canonical option and command names. Lookup by short alias resolves to
// these, so downstream code only ever sees the long spelling.
const (
	optDebug            = "debug"
	optShaders          = "shaders"
	optRebuild          = "rebuild"
	optSave             = "save"
	optSubpixelAA       = "subpixel-aa"
	optDevicePixelRatio = "device-pixel-ratio"
	optSize             = "size"
	optTime             = "time"
	optVsync            = "vsync"
	optHelp             = "help"
	optVersion          = "version"

	optQueue       = "queue"
	optAPI         = "api"
	optSkipUploads = "skip-uploads"
	optInput       = "input"

	cmdShow   = "show"
	cmdReplay = "replay"
)

// DefaultSchema builds the wrench option table: the global options, the show
// command and the replay command. The returned Schema is static data - build
// it once at startup.
func DefaultSchema() *Schema {
	schema := NewSchema("wrench", Version)

	schema.AddOption(NewOption(optDebug,
		WithShort("d"),
		WithType(Standalone),
		WithDescription("Enable debug renderer"),
	)).AddOption(NewOption(optShaders,
		WithValueName("PATH"),
		WithDescription("Override path for shaders"),
	)).AddOption(NewOption(optRebuild,
		WithShort("r"),
		WithType(Standalone),
		WithDescription("Rebuild display list from scratch every frame"),
	)).AddOption(NewOption(optSave,
		WithValueName("FORMAT"),
		WithDescription("Save frames to yaml or json files"),
	)).AddOption(NewOption(optSubpixelAA,
		WithShort("a"),
		WithType(Standalone),
		WithDescription("Enable subpixel antialiasing"),
	)).AddOption(NewOption(optDevicePixelRatio,
		WithShort("p"),
		WithValueName("FLOAT"),
		WithDescription("Device pixel ratio"),
	)).AddOption(NewOption(optSize,
		WithShort("s"),
		WithValueName("WIDTHxHEIGHT"),
		WithDescription("Window size, specified as WIDTHxHEIGHT"),
	)).AddOption(NewOption(optTime,
		WithShort("t"),
		WithValueName("SECONDS"),
		WithDescription("Time limit in seconds"),
	)).AddOption(NewOption(optVsync,
		WithType(Standalone),
		WithDescription("Enable vsync for OpenGL window"),
	)).AddOption(NewOption(optHelp,
		WithShort("h"),
		WithType(Standalone),
		WithDescription("Print usage information"),
	)).AddOption(NewOption(optVersion,
		WithShort("V"),
		WithType(Standalone),
		WithDescription("Print version information"),
	))

	schema.AddCommand(NewCommand(cmdShow,
		WithCommandDescription("Show a YAML frame description"),
		WithCommandOptions(
			NewOption(optQueue,
				WithShort("q"),
				WithValueName("N"),
				WithDefaultValue("1"),
				WithDescription("How many frames to submit before waiting"),
			),
			NewOption(optInput,
				WithPosition(1),
				SetRequired(true),
				WithValueName("INPUT"),
				WithDescription("YAML frame description file"),
			),
		),
	)).AddCommand(NewCommand(cmdReplay,
		WithCommandDescription("Replay a recorded binary trace"),
		WithCommandOptions(
			NewOption(optAPI,
				WithType(Standalone),
				WithDescription("Reissue API messages for each frame"),
			),
			NewOption(optSkipUploads,
				WithType(Standalone),
				WithDescription("Skip re-uploads while reissuing API messages (BROKEN)"),
			),
			NewOption(optInput,
				WithPosition(1),
				SetRequired(true),
				WithValueName("INPUT"),
				WithDescription("Binary recording file or directory"),
			),
		),
	))

	return schema
}
