package object2d

// Scene owns a root node, the allocator its nodes draw identities from, and
// the debug flag.
type Scene struct {
	root  *Node
	ids   *IDAllocator
	debug bool
}

// NewScene creates a scene whose nodes take identities from the process-wide
// allocator, so they never collide with nodes made by NewNode.
func NewScene() *Scene {
	return NewSceneWithAllocator(defaultIDs)
}

// NewSceneWithAllocator creates a scene that assigns identities from ids.
// A nil ids falls back to the process-wide allocator.
func NewSceneWithAllocator(ids *IDAllocator) *Scene {
	if ids == nil {
		ids = defaultIDs
	}
	return &Scene{
		root: ids.NewNode(WithName("root")),
		ids:  ids,
	}
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// IDs returns the allocator this scene assigns identities from.
func (s *Scene) IDs() *IDAllocator {
	return s.ids
}

// NewNode creates a rooted node with an identity from the scene's allocator.
// The node is not attached; add it under Root or another node.
func (s *Scene) NewNode(opts ...Option) *Node {
	return s.ids.NewNode(opts...)
}

// Find returns the first node named name in a pre-order walk from the root,
// or nil.
func (s *Scene) Find(name string) *Node {
	var found *Node
	s.root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.Name == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByID returns the node with the given identity under the root, or nil.
func (s *Scene) FindByID(id uint32) *Node {
	var found *Node
	s.root.Walk(func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.id == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// SetDebugMode enables or disables debug checks on tree operations: cycle
// detection in Add plus depth and child-count warnings on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// DebugMode reports whether debug checks are enabled for this scene.
func (s *Scene) DebugMode() bool {
	return s.debug
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
