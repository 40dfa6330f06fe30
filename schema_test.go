package wrench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_LookupByAlias(t *testing.T) {
	schema := DefaultSchema()

	spec, found := schema.lookupOption("", "d")
	require.True(t, found)
	assert.Equal(t, "debug", spec.Name)

	spec, found = schema.lookupOption("", "debug")
	require.True(t, found)
	assert.Equal(t, "debug", spec.Name)

	_, found = schema.lookupOption("", "q")
	assert.False(t, found, "command options are invisible in the global scope")
}

func TestSchema_LookupFallsBackToGlobal(t *testing.T) {
	schema := DefaultSchema()

	spec, found := schema.lookupOption("show", "q")
	require.True(t, found)
	assert.Equal(t, "queue", spec.Name)

	spec, found = schema.lookupOption("show", "vsync")
	require.True(t, found, "command scope should fall back to global options")
	assert.Equal(t, "vsync", spec.Name)
}

func TestSchema_PositionalNotMatchedByAlias(t *testing.T) {
	schema := DefaultSchema()

	_, found := schema.lookupOption("show", "input")
	assert.False(t, found, "positionals bind by index, never by alias")
}

func TestSchema_CommandRegistry(t *testing.T) {
	schema := DefaultSchema()

	show, found := schema.Command("show")
	require.True(t, found)
	assert.Equal(t, "show", show.Name)
	require.Len(t, show.positionals, 1)
	assert.Equal(t, 1, *show.positionals[0].Position)

	_, found = schema.Command("record")
	assert.False(t, found)
}

func TestSchema_DuplicateAliasPanics(t *testing.T) {
	schema := NewSchema("test", "0.0.1")
	schema.AddOption(NewOption("debug", WithShort("d"), WithType(Standalone)))

	assert.Panics(t, func() {
		schema.AddOption(NewOption("dump", WithShort("d")))
	}, "a short alias collision in the static table is a programmer error")

	assert.Panics(t, func() {
		schema.AddOption(NewOption("debug"))
	})
}

func TestSchema_DuplicatePositionPanics(t *testing.T) {
	schema := NewSchema("test", "0.0.1")

	assert.Panics(t, func() {
		schema.AddCommand(NewCommand("run",
			WithCommandOptions(
				NewOption("first", WithPosition(1)),
				NewOption("second", WithPosition(1)),
			),
		))
	})
}

func TestOptionType_String(t *testing.T) {
	assert.Equal(t, "single", Single.String())
	assert.Equal(t, "standalone", Standalone.String())
	assert.Equal(t, "empty", Empty.String())
}
