package vatican

import (
	"fmt"
	"io"
)

// Dotify writes a DOT-format rendering of h's term graph to w: lambdas
// labeled `\`, applications `*`, variables `x`, primitives their Repr().
// Application edges are labeled fv/av; a lambda's binding edge to its
// bound variable is drawn blue when the variable has occurrences;
// uplinks are drawn red. The head itself appears as a node labeled
// HEAD pointing at its body.
func Dotify(h *Head, w io.Writer) {
	seen := make(map[*Node]bool)
	fmt.Fprintln(w, "digraph Lambda {")
	fmt.Fprintf(w, "p%p [label=\"HEAD\"];\n", h.dummy)
	fmt.Fprintf(w, "p%p -> p%p;\n", h.dummy, h.dummy.body)
	seen[h.dummy] = true
	dotifyRec(h.dummy.body, w, seen)
	fmt.Fprintln(w, "}")
}

func dotifyRec(node *Node, w io.Writer, seen map[*Node]bool) {
	if seen[node] {
		return
	}
	seen[node] = true

	switch node.kind {
	case kindLambda:
		fmt.Fprintf(w, "p%p [label=\"\\\\\"];\n", node)
		fmt.Fprintf(w, "p%p -> p%p;\n", node, node.body)
		if !node.bound.uplinks.empty() {
			fmt.Fprintf(w, "p%p -> p%p [color=blue];\n", node, node.bound)
		}
		dotifyRec(node.body, w, seen)
	case kindApp:
		fmt.Fprintf(w, "p%p [label=\"*\"];\n", node)
		fmt.Fprintf(w, "p%p -> p%p [color=\"#007f00\",label=\"fv\"];\n", node, node.left)
		fmt.Fprintf(w, "p%p -> p%p [label=\"av\"];\n", node, node.right)
		dotifyRec(node.left, w, seen)
		dotifyRec(node.right, w, seen)
	case kindVar:
		fmt.Fprintf(w, "p%p [label=\"x\"];\n", node)
	case kindPrim:
		fmt.Fprintf(w, "p%p [label=%q];\n", node, node.prim.Repr())
	default:
		panic("vatican: dotify: unknown node kind")
	}

	for u := node.uplinks.head; u != nil; u = u.next {
		fmt.Fprintf(w, "p%p -> p%p [color=red];\n", node, u.parent)
	}
}
