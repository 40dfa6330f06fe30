package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/wrench"
)

func writeFrames(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte{0}, 0o644))
	}

	return dir
}

func TestReplayer_FramesFromDirectory(t *testing.T) {
	dir := writeFrames(t, "frame_2.bin", "frame_10.bin", "frame_1.bin")
	replayer := NewReplayer(&wrench.ReplayConfig{InputPath: dir})

	frames, err := replayer.Frames()
	require.NoError(t, err)

	require.Len(t, frames, 3)
	assert.Equal(t, "frame_1.bin", filepath.Base(frames[0]))
	assert.Equal(t, "frame_2.bin", filepath.Base(frames[1]))
	assert.Equal(t, "frame_10.bin", filepath.Base(frames[2]), "frames order numerically, not lexically")
}

func TestReplayer_SingleFile(t *testing.T) {
	dir := writeFrames(t, "trace.bin")
	path := filepath.Join(dir, "trace.bin")
	replayer := NewReplayer(&wrench.ReplayConfig{InputPath: path})

	frames, err := replayer.Frames()
	require.NoError(t, err)
	assert.Equal(t, []string{path}, frames)
}

func TestReplayer_EmptyDirectory(t *testing.T) {
	replayer := NewReplayer(&wrench.ReplayConfig{InputPath: t.TempDir()})

	_, err := replayer.Frames()
	assert.ErrorIs(t, err, ErrNoFrames)
}

func TestReplayer_MissingInput(t *testing.T) {
	replayer := NewReplayer(&wrench.ReplayConfig{InputPath: filepath.Join(t.TempDir(), "nope")})

	_, err := replayer.Frames()
	assert.Error(t, err)
}

func TestReplayer_Passthrough(t *testing.T) {
	replayer := NewReplayer(&wrench.ReplayConfig{
		ReissueAPI:  true,
		SkipUploads: true,
		InputPath:   "trace.bin",
	})

	assert.True(t, replayer.ReissueAPI)
	assert.True(t, replayer.SkipUploads)
	assert.Equal(t, "trace.bin", replayer.InputPath())
}
