package object2d

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenRotation,
// TweenScale) and call Update(dt) each frame. The group writes values straight
// into the node's fields.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	target *Node
	Done   bool
}

// Target returns the node being animated.
func (g *TweenGroup) Target() *Node {
	return g.target
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Once every tween has finished, Done is set and further calls do
// nothing.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Reset rewinds every tween to its start value and clears Done.
func (g *TweenGroup) Reset() {
	for i := 0; i < g.count; i++ {
		val, _ := g.tweens[i].Set(0)
		*g.fields[i] = float64(val)
	}
	g.Done = false
}

// TweenPosition creates a TweenGroup that animates node.Position to the given
// target coordinates over the specified duration using the easing function.
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node}
	g.tweens[0] = gween.New(float32(node.Position.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(node.Position.Y), float32(toY), duration, fn)
	g.fields[0] = &node.Position.X
	g.fields[1] = &node.Position.Y
	return g
}

// TweenRotation creates a TweenGroup that animates node.Rotation to the target
// value over the specified duration using the easing function.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Rotation), float32(to), duration, fn)
	g.fields[0] = &node.Rotation
	return g
}

// TweenScale creates a TweenGroup that animates node.Scale to the target value
// over the specified duration using the easing function.
func TweenScale(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node}
	g.tweens[0] = gween.New(float32(node.Scale), float32(to), duration, fn)
	g.fields[0] = &node.Scale
	return g
}
