package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// FlattenConditionals resolves every PreprocessorConditional whose Expr
// matches macroName, given the macro's assumed truth value: the chosen
// branch's children are promoted to the conditional's own parent in its
// place, and the other branch is discarded. Conditionals for other
// macros are left untouched.
func FlattenConditionals(a *dom.Arena, root dom.Index, macroName string, truth bool) {
	for {
		idx := dom.FindFirst(a, root, func(n dom.Node) bool {
			c, ok := n.(*dom.PreprocessorConditional)
			return ok && conditionMatches(c, macroName)
		})
		if idx == dom.NoIndex {
			return
		}
		flattenOne(a, idx, macroName, truth)
	}
}

func conditionMatches(c *dom.PreprocessorConditional, macroName string) bool {
	return c.Expr == macroName || c.Expr == "defined("+macroName+")"
}

func flattenOne(a *dom.Arena, idx dom.Index, macroName string, truth bool) {
	node := a.Get(idx).(*dom.PreprocessorConditional)
	takeThen := truth
	if node.Negated {
		takeThen = !truth
	}

	var keep []dom.Index
	if takeThen {
		keep = append([]dom.Index(nil), a.Get(idx).Base().Children...)
	} else {
		keep = append([]dom.Index(nil), node.ElseBody...)
	}

	anchor := idx
	for _, k := range keep {
		a.Remove(k)
		a.InsertAfter(anchor, k)
		anchor = k
	}
	a.Remove(idx)
}
