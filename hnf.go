package vatican

// hnfReduce1 performs at most one reduction step anywhere on the path
// to head position and reports whether it fired. Lambdas recurse into
// their body (this yields head normal form, not weak head normal form:
// arguments are never touched unless the head itself demands them).
func hnfReduce1(node *Node) bool {
	switch node.kind {
	case kindLambda:
		return hnfReduce1(node.body)

	case kindApp:
		if hnfReduce1(node.left) {
			return true
		}
		switch node.left.kind {
		case kindLambda:
			betaReduce(node)
			return true
		case kindPrim:
			return primReduce(node)
		default:
			return false
		}

	case kindVar, kindPrim:
		return false

	default:
		panic("vatican: hnfReduce1: unknown node kind")
	}
}

// HnfReduce drives h's body to head normal form, applying hnfReduce1
// until no further reduction applies. It terminates whenever a head
// normal form exists; a term with none runs forever, which is the
// caller's responsibility to bound.
func HnfReduce(h *Head) {
	for hnfReduce1(h.dummy) {
	}
}
