package frame

// ColorF is an RGBA color with components in [0, 1]
type ColorF struct {
	R float32
	G float32
	B float32
	A float32
}

// White is the fill color used when an item declares none
var White = ColorF{R: 1, G: 1, B: 1, A: 1}

var namedColors = map[string]ColorF{
	"white":       White,
	"black":       {A: 1},
	"red":         {R: 1, A: 1},
	"green":       {G: 1, A: 1},
	"blue":        {B: 1, A: 1},
	"transparent": {},
}

// Rect is an axis-aligned rectangle in layout coordinates
type Rect struct {
	X float32
	Y float32
	W float32
	H float32
}

// Display item kinds produced by the reader
const (
	KindRect  = "rect"
	KindImage = "image"
	KindText  = "text"
)

// DisplayItem is one entry of the flattened display list. Only the fields
// relevant to its Kind are set.
type DisplayItem struct {
	Kind   string
	Bounds Rect
	Color  ColorF
	// Src is the image path resolved against the frame's aux dir
	Src  string
	Text string
	// Size is the text size in points
	Size float32
}

// Scene is the built frame: the flattened display list plus the number of
// stacking contexts walked to produce it. This is the hand-off the show
// command prints a summary of.
type Scene struct {
	Items            []DisplayItem
	StackingContexts int
}

// CountByKind tallies display items per kind
func (s *Scene) CountByKind() map[string]int {
	counts := map[string]int{}
	for _, item := range s.Items {
		counts[item.Kind]++
	}

	return counts
}
