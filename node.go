package object2d

import "slices"

// --- Node ---

// Node is the base scene element: a transform, a visibility flag, and a place
// in a single-parent tree. A node has at most one parent and owns an ordered
// list of children with no duplicates. Types that specialise Node embed it and
// tag themselves with a Kind; they must go through Add and Remove like
// everything else.
type Node struct {
	// Identity
	id   uint32
	kind Kind
	Name string

	// Hierarchy
	parent   *Node
	children []*Node

	// Transform (local)
	Position Vec2
	Rotation float64 // radians
	Scale    float64 // uniform

	Visible bool

	// Metadata
	UserData any
}

// Option configures a Node at construction.
type Option func(*Node)

// WithPosition sets the initial position.
func WithPosition(x, y float64) Option {
	return func(n *Node) { n.Position = Vec2{X: x, Y: y} }
}

// WithPositionVec sets the initial position from a vector.
func WithPositionVec(v Vec2) Option {
	return func(n *Node) { n.Position = v }
}

// WithRotation sets the initial rotation in radians.
func WithRotation(r float64) Option {
	return func(n *Node) { n.Rotation = r }
}

// WithScale sets the initial uniform scale.
func WithScale(s float64) Option {
	return func(n *Node) { n.Scale = s }
}

// WithVisible sets the initial visibility.
func WithVisible(v bool) Option {
	return func(n *Node) { n.Visible = v }
}

// WithName sets the node's name. Names are informational and need not be unique.
func WithName(name string) Option {
	return func(n *Node) { n.Name = name }
}

// WithKind tags the node as a specialised variant.
func WithKind(k Kind) Option {
	return func(n *Node) { n.kind = k }
}

// nodeDefaults sets the default field values shared by all constructors.
// The identity is assigned by the caller.
func nodeDefaults(n *Node) {
	n.kind = KindObject2D
	n.Scale = 1
	n.Visible = true
}

// NewNode creates a rooted node with no children. Options override the
// defaults (origin position, rotation 0, scale 1, visible). The identity is
// taken from the process-wide allocator.
func NewNode(opts ...Option) *Node {
	return defaultIDs.NewNode(opts...)
}

// ID returns the node's identity.
func (n *Node) ID() uint32 {
	return n.id
}

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind {
	return n.kind
}

// Parent returns the node's parent, or nil if it is a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// --- Tree manipulation ---

// Add appends child to this node's children and returns n.
// If child already has a parent, it is removed from that parent first, so a
// node moves between parents in one call. Adding a child to its current
// parent moves it to the end of the list.
//
// Self-parenting and cycles are not checked unless debug mode is on; use
// CanAdd to guard against them. Panics if child is nil.
func (n *Node) Add(child *Node) *Node {
	if child == nil {
		panic("object2d: cannot add nil child")
	}
	if globalDebug {
		debugCheckCycle(n, child)
	}
	if child.parent != nil {
		child.parent.Remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
	return n
}

// Remove detaches child from this node and returns n.
// If child is not one of n's children the call does nothing. The removed
// node keeps its own children.
func (n *Node) Remove(child *Node) *Node {
	if n.removeChildByPtr(child) {
		child.parent = nil
	}
	return n
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.Remove(n)
}

// RemoveChildren detaches all children from this node.
// Grandchildren stay attached to their own parents.
func (n *Node) RemoveChildren() {
	for i, child := range n.children {
		child.parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
}

// Children returns a copy of the child list in order. Changing the copy does
// not affect the tree, and Add or Remove calls made while ranging over it do
// not shift the elements being visited. Use NumChildren and ChildAt to read
// children without allocating.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("object2d: child index out of range")
	}
	return n.children[index]
}

// IndexOf returns the position of child among n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// --- Queries ---

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Root returns the topmost ancestor of n, or n itself when it is a root.
// On a cyclic chain (only possible when debug mode is off) it stops when the
// walk comes back to n, or after maxWalkDepth steps.
func (n *Node) Root() *Node {
	r := n
	seen := 0
	for r.parent != nil && r.parent != n {
		r = r.parent
		seen++
		if seen > maxWalkDepth {
			break
		}
	}
	return r
}

// Depth returns the number of ancestors above n. A root has depth 0.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil && p != n; p = p.parent {
		d++
		if d > maxWalkDepth {
			break
		}
	}
	return d
}

// IsAncestorOf reports whether n appears on other's parent chain.
// A node is not its own ancestor unless it has been made its own parent.
func (n *Node) IsAncestorOf(other *Node) bool {
	if other == nil {
		return false
	}
	steps := 0
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
		steps++
		if p == other || steps > maxWalkDepth {
			return false
		}
	}
	return false
}

// CanAdd reports whether n.Add(child) would keep the tree acyclic: child must
// be non-nil, must not be n, and must not be an ancestor of n.
func (n *Node) CanAdd(child *Node) bool {
	return child != nil && child != n && !child.IsAncestorOf(n)
}

// Walk visits n and its descendants in pre-order, children in list order.
// If fn returns false the node's subtree is skipped. Walk must not be used on
// a tree that contains a cycle.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// --- Helpers ---

// maxWalkDepth bounds upward walks so a cycle built without debug mode cannot
// hang Root, Depth or IsAncestorOf.
const maxWalkDepth = 1 << 20

// removeChildByPtr removes child from n.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return true
		}
	}
	return false
}
