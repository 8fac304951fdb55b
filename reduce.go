package vatican

// Reduction engine
// ----------------
//
// upcopy, clearUp and cleanup are mutually recursive; together with
// upreplace they implement one beta step in time proportional to the
// length of the spine from the substituted variable to the redex, not
// to the size of the function body. The comments below only call out
// the parts that are easy to get wrong when porting.

// upcopy walks upward from a changed child, producing a cloned spine.
// into is the parent being visited; edge names which of into's slots
// now holds newchild in the copy. Uplinks on freshly created clones are
// not installed here — that is clearUp's job, done on the second pass
// once every clone along the spine exists.
func upcopy(newchild, into *Node, edge edgeKind) {
	var newNode *Node

	switch into.kind {
	case kindApp:
		if into.cacheState == cacheNone {
			newNode = &Node{kind: kindApp}
			if edge == edgeAppLeft {
				newNode.left = newchild
				newNode.right = into.right
			} else {
				newNode.left = into.left
				newNode.right = newchild
			}
			into.setCache(newNode)
		} else {
			// Second visit, arriving from the other child: patch the
			// clone's remaining slot and stop. The upward walk from
			// into already happened on the first visit, so recursing
			// again here would duplicate work (and, with a cyclic
			// uplink structure, never terminate).
			clone := into.cacheNode
			if edge == edgeAppLeft {
				clone.left = newchild
			} else {
				clone.right = newchild
			}
			return
		}

	case kindLambda:
		if into.cacheState == cacheStop {
			// Reached the redex's function node; the caller reads the
			// result out of the function body's cache.
			return
		}

		newVar := Var()
		newNode = &Node{kind: kindLambda, body: newchild, bound: newVar}
		into.setCache(newNode)

		// Realises alpha-renaming implicitly: every occurrence of the
		// old binder is walked and replaced with the new one, cloning
		// any parents along the way.
		upcopy(newVar, into.bound, edgeNA)

	case kindVar, kindPrim:
		// Variables are identity and primitives are shared: the node
		// itself is its own clone.
		newNode = newchild
		into.setCache(newNode)

	default:
		panic("vatican: upcopy: unknown node kind")
	}

	for u := into.uplinks.head; u != nil; u = u.next {
		upcopy(newNode, u.parent, u.edge)
	}
}

// clearUp installs uplinks on the clones upcopy created and resets every
// visited cache to cacheNone before the reduction step returns.
func clearUp(node *Node) {
	// node is a binder or an already-cleared parent; binders had their
	// cache set by upcopy and are never reached as a parent below.
	node.clearCache()
	for u := node.uplinks.head; u != nil; u = u.next {
		p := u.parent
		if p.cacheState == cacheNone {
			continue // p was never visited by upcopy
		}

		clone := p.cacheNode
		switch p.kind {
		case kindApp:
			clone.left.uplinks.add(clone, edgeAppLeft)
			clone.right.uplinks.add(clone, edgeAppRight)
			p.clearCache()
		case kindLambda:
			clone.body.uplinks.add(clone, edgeNA)
			p.clearCache()
			// Finalises the clones spawned by the nested variable walk.
			clearUp(p.bound)
		default:
			panic("vatican: clearUp: unexpected cached parent kind")
		}

		clearUp(p)
	}
}

// cleanup reclaims node once its last incoming edge is gone, recursing
// into what it pointed to.
func cleanup(node *Node) {
	if !node.uplinks.empty() {
		return
	}

	switch node.kind {
	case kindLambda:
		node.body.uplinks.unlink(node, edgeNA)
		cleanup(node.body)
	case kindApp:
		node.left.uplinks.unlink(node, edgeAppLeft)
		cleanup(node.left)
		node.right.uplinks.unlink(node, edgeAppRight)
		cleanup(node.right)
	case kindVar:
		// no outgoing edges
	case kindPrim:
		node.prim = nil
	default:
		panic("vatican: cleanup: unknown node kind")
	}
}

// upreplace rewires into's indicated slot from its current child to
// newchild, accounting uplinks on both sides and reclaiming the old
// child if that was its last reference.
func upreplace(newchild, into *Node, edge edgeKind) {
	switch into.kind {
	case kindApp:
		if edge == edgeAppLeft {
			old := into.left
			old.uplinks.unlink(into, edgeAppLeft)
			into.left = newchild
			newchild.uplinks.add(into, edgeAppLeft)
			cleanup(old)
		} else {
			old := into.right
			old.uplinks.unlink(into, edgeAppRight)
			into.right = newchild
			newchild.uplinks.add(into, edgeAppRight)
			cleanup(old)
		}
	case kindLambda:
		old := into.body
		old.uplinks.unlink(into, edgeNA)
		into.body = newchild
		newchild.uplinks.add(into, edgeNA)
		cleanup(old)
	default:
		panic("vatican: upreplace: into is not an app or lambda")
	}
}

// betaReduce performs one beta step on the redex app = (fun @ arg),
// where fun must be a lambda, then grafts the result into every parent
// of app.
func betaReduce(app *Node) {
	fun := app.left
	arg := app.right

	var result *Node
	if fun.bound.uplinks.empty() {
		// Bound variable unused: the result is the body, shared as-is.
		result = fun.body
	} else {
		fun.cacheState = cacheStop // bounds the upward walk at fun
		upcopy(arg, fun.bound, edgeNA)
		result = fun.body.cacheNode
		fun.clearCache()
		clearUp(fun.bound)
	}

	// Each next pointer must be captured before upreplace mutates
	// app's uplink list, or a naive iterator would skip entries.
	for u := app.uplinks.head; u != nil; {
		next := u.next
		upreplace(result, u.parent, u.edge)
		u = next
	}
}

// primReduce attempts one reduction of app = (prim @ arg) where the
// left child is a primitive. It reports whether a rule fired.
func primReduce(app *Node) bool {
	fun := app.left
	arg := app.right

	argHead := MakeHead(arg)
	p := fun.prim.Apply(argHead)
	FreeHead(argHead)

	if p == nil {
		return false
	}

	result := Prim(p)
	for u := app.uplinks.head; u != nil; {
		next := u.next
		upreplace(result, u.parent, u.edge)
		u = next
	}
	return true
}
