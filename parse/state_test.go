package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_Advance(t *testing.T) {
	state := NewState([]string{"a", "b"})

	assert.Equal(t, "", state.CurrentArg(), "the cursor starts before the first argument")

	assert.True(t, state.Advance())
	assert.Equal(t, "a", state.CurrentArg())

	assert.True(t, state.Advance())
	assert.Equal(t, "b", state.CurrentArg())

	assert.False(t, state.Advance(), "advancing past the end should fail")
	assert.Equal(t, "b", state.CurrentArg(), "a failed advance should not move the cursor")
}

func TestState_Empty(t *testing.T) {
	state := NewState(nil)

	assert.False(t, state.Advance())
	assert.Equal(t, "", state.CurrentArg())
}
