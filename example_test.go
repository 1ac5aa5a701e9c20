package object2d_test

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/phanxgames/object2d"
)

func ExampleNode_Add() {
	root := object2d.NewNode(object2d.WithName("root"))
	a := object2d.NewNode(object2d.WithName("a"))
	b := object2d.NewNode(object2d.WithName("b"))

	root.Add(a).Add(b)
	b.Add(a) // moves a under b

	fmt.Println(root.NumChildren(), b.NumChildren(), a.Parent().Name)
	// Output: 1 1 b
}

func ExampleDumpTree() {
	defer func(prev bool) { color.NoColor = prev }(color.NoColor)
	color.NoColor = true

	s := object2d.NewSceneWithAllocator(object2d.NewIDAllocator())
	ui := s.NewNode(object2d.WithName("ui"))
	label := s.NewNode(object2d.WithName("label"), object2d.WithPosition(8, 4), object2d.WithKind("Text"))
	s.Root().Add(ui)
	ui.Add(label)

	_ = object2d.DumpTree(os.Stdout, s.Root())
	// Output:
	// root #1 Object2D
	//   ui #2 Object2D
	//     label #3 Text pos=(8, 4) rot=0 scale=1
}
