package vatican

// Head is an externally owned handle wrapping a user-level term in a
// vacuous lambda, so the term's top always has a parent and an uplink.
// Without it beta-reducing a top-level redex would need a special case
// for "no parent to rewire"; with it, upreplace treats the sentinel's
// body slot exactly like any other lambda body.
type Head struct {
	dummy *Node
}

// MakeHead wraps body in a fresh sentinel.
func MakeHead(body *Node) *Head {
	return &Head{dummy: Fun(Var(), body)}
}

// CopyHead wraps an existing head one level deeper, sharing its body.
// This lets a caller hold two independent owning handles onto the same
// subgraph: each sentinel contributes its own uplink, so freeing one
// leaves the other's term intact — a node may be shared between two
// Heads as long as it has uplinks from both sentinels.
func CopyHead(other *Head) *Head {
	return &Head{dummy: Fun(Var(), other.dummy)}
}

// FreeHead releases the handle, reclaiming its body if nothing else
// references it.
func FreeHead(h *Head) {
	cleanup(h.dummy)
}

// Body returns the node currently wrapped by h.
func (h *Head) Body() *Node {
	return h.dummy.body
}

// GetPrim returns the primitive iff h wraps a lambda whose body is a
// single primitive node, or nil otherwise.
func GetPrim(h *Head) Primitive {
	if h.dummy.kind != kindLambda || h.dummy.body.kind != kindPrim {
		return nil
	}
	return h.dummy.body.prim
}
