package object2d

// Vec2 is a 2D vector used for node positions.
type Vec2 struct {
	X, Y float64
}

// Kind tags a Node with the variant that created it. The base node uses
// KindObject2D; types built on top of Node pick their own tag with WithKind.
type Kind string

// KindObject2D is the Kind of a plain Node.
const KindObject2D Kind = "Object2D"

// String returns the tag as a plain string.
func (k Kind) String() string {
	return string(k)
}
