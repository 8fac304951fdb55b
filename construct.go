package vatican

// Constructors
// ------------
//
// Each builder is an atomic node allocation that installs uplinks from
// its children to the new parent, grounded on runtime2.go's // Constructors
// section (Var/Dp0/Dp1/.../Ctr), ported from Lnk-tag builders to Node
// builders.

// Var returns a fresh variable with no occurrences yet.
func Var() *Node {
	return &Node{kind: kindVar}
}

// Fun builds a lambda binding var over body. The caller promises var
// was produced by Var and is not already bound elsewhere.
func Fun(v, body *Node) *Node {
	n := &Node{kind: kindLambda, body: body, bound: v}
	body.uplinks.add(n, edgeNA)
	return n
}

// App builds an application of left to right.
func App(left, right *Node) *Node {
	n := &Node{kind: kindApp, left: left, right: right}
	left.uplinks.add(n, edgeAppLeft)
	right.uplinks.add(n, edgeAppRight)
	return n
}

// Prim wraps a host primitive handle as a term-graph leaf.
func Prim(p Primitive) *Node {
	return &Node{kind: kindPrim, prim: p}
}
