package object2d

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	warnColor = color.New(color.FgYellow)
	kindColor = color.New(color.FgCyan)
)

// debugCheckCycle panics when attaching child under parent would make a node
// its own ancestor. Only called in debug mode.
func debugCheckCycle(parent, child *Node) {
	if child == parent {
		panic(fmt.Sprintf("object2d debug: node %q (ID %d) cannot be its own parent", child.Name, child.id))
	}
	if child.IsAncestorOf(parent) {
		panic(fmt.Sprintf("object2d debug: adding %q (ID %d) to %q (ID %d) would create a cycle",
			child.Name, child.id, parent.Name, parent.id))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := n.Depth() + 1
	if depth > debugMaxTreeDepth {
		_, _ = warnColor.Fprintf(os.Stderr, "[object2d] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}

// debugCheckChildCount warns on stderr if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		_, _ = warnColor.Fprintf(os.Stderr, "[object2d] warning: node %q has %d children (threshold %d)\n",
			n.Name, len(n.children), debugMaxChildCount)
	}
}

// DumpTree writes an indented outline of root and its descendants to w, one
// node per line:
//
//	root #1 Object2D
//	  hero #2 Object2D pos=(10, 20) rot=0 scale=1
//
// Hidden nodes are marked "hidden". The transform is omitted when it is the
// default. Kinds are coloured unless color.NoColor is set.
func DumpTree(w io.Writer, root *Node) error {
	var err error
	root.Walk(func(n *Node) bool {
		if err != nil {
			return false
		}
		err = dumpNode(w, n, n.Depth()-root.Depth())
		return err == nil
	})
	return err
}

func dumpNode(w io.Writer, n *Node, indent int) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", indent))
	name := n.Name
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(&b, "%s #%d %s", name, n.id, kindColor.Sprint(n.kind))
	if n.Position != (Vec2{}) || n.Rotation != 0 || n.Scale != 1 {
		fmt.Fprintf(&b, " pos=(%g, %g) rot=%g scale=%g", n.Position.X, n.Position.Y, n.Rotation, n.Scale)
	}
	if !n.Visible {
		b.WriteString(" hidden")
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
