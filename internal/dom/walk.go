package dom

// Walk visits root and every descendant in pre-order, depth-first. If fn
// returns false for a node, that node's children are skipped (but its
// siblings are still visited).
func Walk(a *Arena, root Index, fn func(Index) bool) {
	if root == NoIndex {
		return
	}
	if !fn(root) {
		return
	}
	// Copy the children slice up front: a modifier may mutate the tree
	// (insert/remove siblings) while handling the callback for root, and
	// walking a live slice under mutation would be unsafe.
	children := append([]Index(nil), a.Get(root).Base().Children...)
	for _, c := range children {
		Walk(a, c, fn)
	}
}

// WalkAll walks every node reachable from every entry in roots.
func WalkAll(a *Arena, roots []Index, fn func(Index) bool) {
	for _, r := range roots {
		Walk(a, r, fn)
	}
}

// Ancestors returns idx's ancestors, innermost first, not including idx
// itself.
func Ancestors(a *Arena, idx Index) []Index {
	var out []Index
	cur := a.Get(idx).Base().Parent
	for cur != NoIndex {
		out = append(out, cur)
		cur = a.Get(cur).Base().Parent
	}
	return out
}

// ConditionalContext computes the stack of active PreprocessorConditional
// ancestors for idx, outermost first, as their Expr text (negated
// expressions are prefixed with "!"). This is the authoritative
// definition backing Base.CondContext; modifiers that change nesting
// should keep CondContext in sync by recomputing through this helper
// rather than hand-editing the slice.
func ConditionalContext(a *Arena, idx Index) []string {
	ancestors := Ancestors(a, idx)
	var ctx []string
	for i := len(ancestors) - 1; i >= 0; i-- {
		n := a.Get(ancestors[i])
		if pc, ok := n.(*PreprocessorConditional); ok {
			expr := pc.Expr
			if pc.Negated {
				expr = "!" + expr
			}
			ctx = append(ctx, expr)
		}
	}
	return ctx
}

// FindFirst returns the first descendant of root (pre-order,
// self-inclusive) for which pred returns true, or NoIndex.
func FindFirst(a *Arena, root Index, pred func(Node) bool) Index {
	found := NoIndex
	Walk(a, root, func(idx Index) bool {
		if found != NoIndex {
			return false
		}
		if pred(a.Get(idx)) {
			found = idx
			return false
		}
		return true
	})
	return found
}

// FindAll returns every descendant of root (pre-order, self-inclusive)
// for which pred returns true.
func FindAll(a *Arena, root Index, pred func(Node) bool) []Index {
	var out []Index
	Walk(a, root, func(idx Index) bool {
		if pred(a.Get(idx)) {
			out = append(out, idx)
		}
		return true
	})
	return out
}

// DirectChildrenOfKind returns idx's immediate children with the given
// Kind, in order.
func DirectChildrenOfKind(a *Arena, idx Index, k Kind) []Index {
	var out []Index
	for _, c := range a.Get(idx).Base().Children {
		if a.Get(c).Kind() == k {
			out = append(out, c)
		}
	}
	return out
}
