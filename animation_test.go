package object2d

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewNode(WithPosition(10, 20))

	g := TweenPosition(node, 100, 200, 1.0, ease.Linear)

	// Run for full duration using exact halves to avoid float32 accumulation drift.
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Position.X-100) > 0.5 {
		t.Errorf("X = %f, want ~100", node.Position.X)
	}
	if math.Abs(node.Position.Y-200) > 0.5 {
		t.Errorf("Y = %f, want ~200", node.Position.Y)
	}
}

func TestTweenPositionMidpoint(t *testing.T) {
	node := NewNode()

	g := TweenPosition(node, 100, -50, 1.0, ease.Linear)
	g.Update(0.5)

	if g.Done {
		t.Fatal("should not be Done at the midpoint")
	}
	if math.Abs(node.Position.X-50) > 0.5 {
		t.Errorf("X = %f, want ~50", node.Position.X)
	}
	if math.Abs(node.Position.Y+25) > 0.5 {
		t.Errorf("Y = %f, want ~-25", node.Position.Y)
	}
}

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewNode()

	g := TweenScale(node, 2.0, 0.5, ease.Linear)

	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Scale-2.0) > 0.01 {
		t.Errorf("Scale = %f, want ~2.0", node.Scale)
	}
}

func TestTweenRotationReachesTarget(t *testing.T) {
	node := NewNode()

	g := TweenRotation(node, math.Pi, 1.0, ease.InOutQuad)

	for i := 0; i < 4; i++ {
		g.Update(0.25)
	}

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(node.Rotation-math.Pi) > 0.01 {
		t.Errorf("Rotation = %f, want ~%f", node.Rotation, math.Pi)
	}
}

func TestTweenUpdateAfterDoneNoOp(t *testing.T) {
	node := NewNode()
	g := TweenScale(node, 3.0, 0.5, ease.Linear)
	g.Update(0.5)
	if !g.Done {
		t.Fatal("expected Done")
	}

	node.Scale = 7
	g.Update(0.5)
	if node.Scale != 7 {
		t.Errorf("Scale = %f, Update after Done should not write", node.Scale)
	}
}

func TestTweenReset(t *testing.T) {
	node := NewNode(WithPosition(0, 0))
	g := TweenPosition(node, 10, 10, 1.0, ease.Linear)
	g.Update(1.0)
	if !g.Done {
		t.Fatal("expected Done")
	}

	g.Reset()
	if g.Done {
		t.Error("Reset should clear Done")
	}
	if node.Position.X != 0 || node.Position.Y != 0 {
		t.Errorf("Position = %v, want start (0, 0)", node.Position)
	}
}

func TestTweenTarget(t *testing.T) {
	node := NewNode()
	g := TweenRotation(node, 1, 1, ease.Linear)
	if g.Target() != node {
		t.Error("Target should return the animated node")
	}
}

func TestTweenDoesNotTouchTree(t *testing.T) {
	parent := NewNode()
	child := NewNode()
	parent.Add(child)

	g := TweenPosition(child, 5, 5, 0.5, ease.Linear)
	g.Update(0.5)

	if child.Parent() != parent || parent.NumChildren() != 1 {
		t.Error("tweening should not change tree membership")
	}
}
