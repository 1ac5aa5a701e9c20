// Package object2d provides the base node of a 2D scene graph.
//
// A [Node] carries a local transform (position, rotation, uniform scale), a
// visibility flag, and a place in a strict single-parent tree. Drawable or
// interactive elements are built on top of it; they read the transform fields
// and iterate [Node.Children] without caring how re-parenting works.
//
// # Scene graph
//
// Create nodes with [NewNode] and functional options, then build the tree with
// [Node.Add] and [Node.Remove]. Both return the receiver so calls chain:
//
//	root := object2d.NewNode(object2d.WithName("root"))
//	hero := object2d.NewNode(object2d.WithName("hero"), object2d.WithPosition(100, 50))
//	shadow := object2d.NewNode(object2d.WithName("shadow"), object2d.WithScale(0.5))
//	root.Add(hero).Add(shadow)
//
// A node has at most one parent. Adding a node that already has a parent
// moves it: the old parent loses it and the new parent appends it, in one
// call. Removing a node that is not a child does nothing.
//
// # Identities
//
// Every node gets a unique, increasing [Node.ID] when it is created. The
// counter lives in an [IDAllocator]; [NewNode] uses a process-wide one, while
// [IDAllocator.NewNode] and [NewSceneWithAllocator] draw from an allocator you
// control.
//
// # Debug mode
//
// Cycles (adding a node to itself or to one of its descendants) are not
// rejected by default. [Scene.SetDebugMode] turns on checks that panic on
// cycles and warn on stderr about very deep or very wide trees. [Node.CanAdd]
// performs the cycle check on demand.
//
// # Tweens
//
// [TweenPosition], [TweenRotation] and [TweenScale] animate transform fields
// with [gween] easing functions.
//
// [gween]: https://github.com/tanema/gween
package object2d
