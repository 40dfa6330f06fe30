package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo(t *testing.T) {
	p := To("yaml")
	assert.NotNil(t, p)
	assert.Equal(t, "yaml", *p)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, 2.0, Deref(To(2.0), 1.0))
	assert.Equal(t, 1.0, Deref[float64](nil, 1.0))
}
