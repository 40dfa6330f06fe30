//go:build linux || darwin

package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	args, err := Split(`-d show "my scene.yaml"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"-d", "show", "my scene.yaml"}, args)
}

func TestSplit_SingleQuotes(t *testing.T) {
	args, err := Split(`--shaders '/tmp/my shaders'`)
	require.NoError(t, err)
	assert.Equal(t, []string{"--shaders", "/tmp/my shaders"}, args)
}

func TestSplit_UnterminatedQuote(t *testing.T) {
	_, err := Split(`show "scene.yaml`)
	assert.Error(t, err)
}
