package vatican

// Node kinds
// ----------
//
// A Node is a tagged variant: exactly one of the four shapes below is
// live at a time, selected by kind. This mirrors the tag-dispatch style
// used for node shapes elsewhere (NODE_APP/NODE_LAMBDA/NODE_VAR/NODE_PRIM,
// and the VAR/LAM/APP/... Lnk tags switched on throughout runtime2.go)
// rather than one Go interface per shape: the reduction engine mutates
// uplinks and cache identically regardless of kind, and a shared struct
// keeps that bookkeeping in one place instead of duplicating it across
// four receiver types.
type kind int

const (
	kindApp kind = iota
	kindLambda
	kindVar
	kindPrim
)

func (k kind) String() string {
	switch k {
	case kindApp:
		return "app"
	case kindLambda:
		return "lambda"
	case kindVar:
		return "var"
	case kindPrim:
		return "prim"
	default:
		return "?"
	}
}

// Edge kinds
// ----------
//
// edgeKind names the role an edge plays at its target, so an uplink can
// be unlinked (or a clone's slot patched) without re-deriving which side
// of the parent it came from.
type edgeKind int

const (
	edgeAppLeft  edgeKind = iota // left child of an application
	edgeAppRight                 // right child of an application
	edgeNA                       // a lambda's body edge, or the edge that seeds an upward walk at its binder
)

// cacheState tags the scratch slot used during one reduction step: two
// sentinels (null, stop) plus a clone pointer. Rather than overload a
// single *Node field with a magic ~0 sentinel the way the original C++
// runtime does, the scratch slot is a tagged option: {None, Stop, Clone(h)}.
type cacheState int

const (
	cacheNone cacheState = iota
	cacheStop
	cacheClone
)

// Node is one term-graph node. Only the fields relevant to its kind are
// meaningful; the rest are zero.
type Node struct {
	kind kind

	uplinks uplinkSet

	cacheState cacheState
	cacheNode  *Node

	// kindApp
	left, right *Node

	// kindLambda
	body, bound *Node // bound must have kind == kindVar

	// kindPrim
	prim Primitive
}

func (n *Node) setCache(c *Node) {
	n.cacheState = cacheClone
	n.cacheNode = c
}

func (n *Node) clearCache() {
	n.cacheState = cacheNone
	n.cacheNode = nil
}
