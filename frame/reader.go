package frame

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/napalu/wrench"
)

var (
	ErrMissingRoot  = errors.New("missing root stacking context")
	ErrInvalidItem  = errors.New("invalid display item")
	ErrInvalidColor = errors.New("invalid color")
)

// yamlItem mirrors one node of the frame description. Items come in two
// forms: a shorthand keyed on "rect", "image", "text" or "stacking_context",
// or a longhand "type: xxx" entry. Shorthand rects declare their bounds
// under "rect" and images their file under "image"; longhand items use
// "bounds" and "src".
type yamlItem struct {
	Type            string      `yaml:"type"`
	Bounds          []float32   `yaml:"bounds"`
	Rect            []float32   `yaml:"rect"`
	Color           string      `yaml:"color"`
	Image           string      `yaml:"image"`
	Src             string      `yaml:"src"`
	Text            string      `yaml:"text"`
	Size            float32     `yaml:"size"`
	StackingContext interface{} `yaml:"stacking_context"`
	Items           []yamlItem  `yaml:"items"`
}

type yamlDocument struct {
	Root *yamlItem `yaml:"root"`
}

// Reader builds Scenes from a YAML frame description. Relative resource
// paths resolve against the description's parent directory.
type Reader struct {
	yamlPath   string
	auxDir     string
	queueDepth uint32
	frameCount uint32
}

// NewReader creates a Reader for the given frame description path
func NewReader(yamlPath string) *Reader {
	return &Reader{
		yamlPath:   yamlPath,
		auxDir:     filepath.Dir(yamlPath),
		queueDepth: 1,
	}
}

// NewReaderFromConfig creates a Reader from a show-mode Config
func NewReaderFromConfig(config *wrench.Config) (*Reader, error) {
	if config.Show == nil {
		return nil, fmt.Errorf("config has no show mode")
	}
	reader := NewReader(config.Show.InputPath)
	reader.queueDepth = config.Show.QueueDepth

	return reader, nil
}

// QueueDepth returns how many built frames are submitted before waiting
func (r *Reader) QueueDepth() uint32 {
	return r.queueDepth
}

// FrameCount returns the number of frames built so far
func (r *Reader) FrameCount() uint32 {
	return r.frameCount
}

// Build loads the description and walks the stacking-context tree into a
// flat display list. A document without a root stacking context is an error.
func (r *Reader) Build() (*Scene, error) {
	data, err := os.ReadFile(r.yamlPath)
	if err != nil {
		return nil, err
	}

	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", r.yamlPath, err)
	}
	if doc.Root == nil {
		return nil, fmt.Errorf("%w in %s", ErrMissingRoot, r.yamlPath)
	}

	scene := &Scene{}
	if err := r.addStackingContext(scene, doc.Root); err != nil {
		return nil, err
	}
	r.frameCount++

	return scene, nil
}

// addStackingContext walks one stacking context, appending its items in
// document order and recursing into nested contexts. Shorthand keys win over
// the "type" longhand; entries matching neither are skipped, like the
// upstream reader does.
func (r *Reader) addStackingContext(scene *Scene, context *yamlItem) error {
	scene.StackingContexts++

	for i := range context.Items {
		item := &context.Items[i]

		var err error
		switch {
		case item.Rect != nil:
			err = r.handleRect(scene, item)
		case item.Image != "":
			err = r.handleImage(scene, item)
		case item.Text != "":
			err = r.handleText(scene, item)
		case item.StackingContext != nil:
			err = r.addStackingContext(scene, item)
		default:
			switch item.Type {
			case KindRect:
				err = r.handleRect(scene, item)
			case KindImage:
				err = r.handleImage(scene, item)
			case KindText:
				err = r.handleText(scene, item)
			case "stacking_context":
				err = r.addStackingContext(scene, item)
			}
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *Reader) handleRect(scene *Scene, item *yamlItem) error {
	// a shorthand rect declares its bounds under "rect", a longhand one
	// under "bounds"
	raw := item.Rect
	if item.Type != "" {
		raw = item.Bounds
	}
	bounds, err := parseBounds(raw)
	if err != nil {
		return fmt.Errorf("rect: %w", err)
	}
	color, err := parseColor(item.Color)
	if err != nil {
		return err
	}
	scene.Items = append(scene.Items, DisplayItem{
		Kind:   KindRect,
		Bounds: bounds,
		Color:  color,
	})

	return nil
}

func (r *Reader) handleImage(scene *Scene, item *yamlItem) error {
	bounds, err := parseBounds(item.Bounds)
	if err != nil {
		return fmt.Errorf("image: %w", err)
	}
	// a shorthand image names its file under "image", a longhand one under
	// "src"
	src := item.Image
	if item.Type != "" {
		src = item.Src
	}
	if src == "" {
		return fmt.Errorf("%w: image without src", ErrInvalidItem)
	}
	if !filepath.IsAbs(src) {
		src = filepath.Join(r.auxDir, src)
	}
	scene.Items = append(scene.Items, DisplayItem{
		Kind:   KindImage,
		Bounds: bounds,
		Src:    src,
	})

	return nil
}

func (r *Reader) handleText(scene *Scene, item *yamlItem) error {
	bounds, err := parseBounds(item.Bounds)
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}
	if item.Text == "" {
		return fmt.Errorf("%w: text without text", ErrInvalidItem)
	}
	size := item.Size
	if size == 0 {
		size = 16
	}
	color, err := parseColor(item.Color)
	if err != nil {
		return err
	}
	scene.Items = append(scene.Items, DisplayItem{
		Kind:   KindText,
		Bounds: bounds,
		Color:  color,
		Text:   item.Text,
		Size:   size,
	})

	return nil
}

func parseBounds(raw []float32) (Rect, error) {
	if len(raw) != 4 {
		return Rect{}, fmt.Errorf("%w: bounds must be [x, y, w, h]", ErrInvalidItem)
	}

	return Rect{X: raw[0], Y: raw[1], W: raw[2], H: raw[3]}, nil
}

// parseColor accepts a named color or 3-4 whitespace-separated components,
// RGB on a 0-255 scale and alpha in [0, 1]. An empty value is white.
func parseColor(s string) (ColorF, error) {
	if s == "" {
		return White, nil
	}
	if color, found := namedColors[s]; found {
		return color, nil
	}

	fields := strings.Fields(s)
	if len(fields) != 3 && len(fields) != 4 {
		return ColorF{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	components := make([]float32, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 32)
		if err != nil {
			return ColorF{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		components[i] = float32(v)
	}

	color := ColorF{
		R: components[0] / 255,
		G: components[1] / 255,
		B: components[2] / 255,
		A: 1,
	}
	if len(components) == 4 {
		color.A = components[3]
	}

	return color, nil
}
