package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/napalu/wrench"
)

// ErrNoFrames is returned when a recording directory holds no frame files
var ErrNoFrames = errors.New("no recorded frames")

// Replayer resolves a recorded binary trace into the per-frame files to
// feed the renderer. Decoding the recording is the renderer driver's job;
// this layer only enumerates input and carries the passthrough flags.
type Replayer struct {
	// ReissueAPI re-sends the recorded API messages for each frame
	ReissueAPI bool
	// SkipUploads suppresses resource re-uploads while reissuing. Without
	// ReissueAPI it has no effect.
	SkipUploads bool

	inputPath string
}

// NewReplayer creates a Replayer from a replay-mode Config
func NewReplayer(config *wrench.ReplayConfig) *Replayer {
	return &Replayer{
		ReissueAPI:  config.ReissueAPI,
		SkipUploads: config.SkipUploads,
		inputPath:   config.InputPath,
	}
}

// InputPath returns the recording file or directory
func (r *Replayer) InputPath() string {
	return r.inputPath
}

// Frames returns the recorded frame files in frame order. A single-file
// input is one frame; a directory input holds frame_<N>.bin files ordered
// by N.
func (r *Replayer) Frames() ([]string, error) {
	info, err := os.Stat(r.inputPath)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{r.inputPath}, nil
	}

	matches, err := filepath.Glob(filepath.Join(r.inputPath, "frame_*.bin"))
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoFrames, r.inputPath)
	}

	sort.Slice(matches, func(i, j int) bool {
		return frameIndex(matches[i]) < frameIndex(matches[j])
	})

	return matches, nil
}

// frameIndex extracts N from frame_<N>.bin so frame_10 sorts after frame_9
func frameIndex(path string) int {
	name := filepath.Base(path)
	name = strings.TrimPrefix(name, "frame_")
	name = strings.TrimSuffix(name, ".bin")
	n, err := strconv.Atoi(name)
	if err != nil {
		return -1
	}

	return n
}
