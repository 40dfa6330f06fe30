package wrench

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_FormatUsageIsDeterministic(t *testing.T) {
	schema := DefaultSchema()

	first := schema.FormatUsage()
	second := schema.FormatUsage()
	assert.Equal(t, first, second, "usage text is a pure projection of the static schema")
}

func TestSchema_FormatUsageContent(t *testing.T) {
	schema := DefaultSchema()
	usage := schema.FormatUsage()

	assert.True(t, strings.HasPrefix(usage, "usage: wrench"), "usage should open with the program name")
	assert.Contains(t, usage, "--debug or -d")
	assert.Contains(t, usage, "--device-pixel-ratio or -p <FLOAT>")
	assert.Contains(t, usage, "--size or -s <WIDTHxHEIGHT>")
	assert.Contains(t, usage, "--shaders <PATH>")
	assert.Contains(t, usage, "--vsync")

	assert.Contains(t, usage, `+ show "Show a YAML frame description"`)
	assert.Contains(t, usage, `+ replay "Replay a recorded binary trace"`)
	assert.Contains(t, usage, "--queue or -q <N>")
	assert.Contains(t, usage, "(defaults to: 1)")
	assert.Contains(t, usage, "INPUT")
	assert.Contains(t, usage, "(required)")

	globals := strings.Index(usage, "Global Flags:")
	commands := strings.Index(usage, "Commands:")
	require.Greater(t, globals, -1)
	require.Greater(t, commands, -1)
	assert.Less(t, globals, commands, "global options are listed before the commands")
}

func TestSchema_FormatUsageDeclarationOrder(t *testing.T) {
	schema := DefaultSchema()
	usage := schema.FormatUsage()

	assert.Less(t, strings.Index(usage, "--debug"), strings.Index(usage, "--shaders"))
	assert.Less(t, strings.Index(usage, "--shaders"), strings.Index(usage, "--vsync"))
	assert.Less(t, strings.Index(usage, "+ show"), strings.Index(usage, "+ replay"))
}

func TestSchema_PrintUsage(t *testing.T) {
	schema := DefaultSchema()

	var buf bytes.Buffer
	schema.PrintUsage(&buf)
	assert.Equal(t, schema.FormatUsage(), buf.String(), "a non-terminal writer gets the default width")
}

func TestWriteWrapped(t *testing.T) {
	var sb strings.Builder
	writeWrapped(&sb, " --flag "+strings.Repeat("word ", 30), 40)

	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len(line), 40, "folded lines should respect the width")
	}
}

func TestWriteWrapped_ShortLineUntouched(t *testing.T) {
	var sb strings.Builder
	writeWrapped(&sb, " --flag short", 80)
	assert.Equal(t, " --flag short\n", sb.String())
}
