package vatican

import (
	"strconv"
	"testing"
)

// constPrim is a test-only primitive that never fires a rule: Apply
// always returns nil, so it behaves as an opaque, irreducible value.
type constPrim struct {
	name string
}

func (c *constPrim) Apply(arg *Head) Primitive { return nil }
func (c *constPrim) Repr() string              { return c.name }

// numPrim is a test-only primitive wrapping a Go int. Applying one
// numPrim to another fires and produces a numPrim holding the sum of
// the two: n == 1 behaves as a Church-style successor, n == 0 as the
// identity, and this is the one test primitive whose Apply returns a
// non-nil Primitive, so it is what exercises primReduce's firing path
// (and, chained, a Church-numeral tower of successors) rather than just
// the stuck/non-firing case constPrim covers.
type numPrim struct {
	n int
}

func (p *numPrim) Apply(arg *Head) Primitive {
	other, ok := GetPrim(arg).(*numPrim)
	if !ok {
		return nil
	}
	return &numPrim{n: p.n + other.n}
}

func (p *numPrim) Repr() string { return strconv.Itoa(p.n) }

// checkInvariants walks the graph reachable from h and asserts that
// every structural edge has exactly one matching uplink on its target,
// and that every reachable node's cache has been reset.
func checkInvariants(t *testing.T, h *Head) {
	t.Helper()
	seen := make(map[*Node]bool)
	var walk func(n *Node)
	walk = func(n *Node) {
		if seen[n] {
			return
		}
		seen[n] = true

		if n.cacheState != cacheNone {
			t.Fatalf("node %p: cache not reset", n)
		}

		switch n.kind {
		case kindApp:
			requireSingleUplink(t, n.left, n, edgeAppLeft)
			requireSingleUplink(t, n.right, n, edgeAppRight)
			walk(n.left)
			walk(n.right)
		case kindLambda:
			requireSingleUplink(t, n.body, n, edgeNA)
			walk(n.body)
			if !n.bound.uplinks.empty() {
				walk(n.bound)
			}
		case kindVar, kindPrim:
			// leaves
		}
	}
	walk(h.dummy)
}

func requireSingleUplink(t *testing.T, child, parent *Node, edge edgeKind) {
	t.Helper()
	count := 0
	for u := child.uplinks.head; u != nil; u = u.next {
		if u.parent == parent && u.edge == edge {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one (%p, %v) uplink on %p, found %d", parent, edge, child, count)
	}
}

// countReachable counts distinct nodes reachable from h, to demonstrate
// that shared subgraphs are not duplicated by reduction.
func countReachable(h *Head) int {
	seen := make(map[*Node]bool)
	var walk func(n *Node)
	walk = func(n *Node) {
		if seen[n] {
			return
		}
		seen[n] = true
		switch n.kind {
		case kindApp:
			walk(n.left)
			walk(n.right)
		case kindLambda:
			walk(n.body)
			if !n.bound.uplinks.empty() {
				walk(n.bound)
			}
		}
	}
	seen[h.dummy] = true
	walk(h.dummy.body)
	return len(seen)
}
