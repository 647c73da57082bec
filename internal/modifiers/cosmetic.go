package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// RemoveEmptyConditionals drops any PreprocessorConditional left with
// no children on either branch, which modifier passes that remove
// declarations (RemoveFunctions, RemoveStructs, and friends) can leave
// behind once every guarded declaration inside has been stripped out.
func RemoveEmptyConditionals(a *dom.Arena, root dom.Index) {
	for {
		idx := dom.FindFirst(a, root, func(n dom.Node) bool {
			cond, ok := n.(*dom.PreprocessorConditional)
			return ok && len(cond.Base().Children) == 0 && len(cond.ElseBody) == 0
		})
		if idx == dom.NoIndex {
			return
		}
		a.Remove(idx)
	}
}

// MergeBlankLines collapses consecutive BlankLines siblings into one,
// summing their Count, so a run of removed declarations doesn't leave
// behind a stack of separate single-blank-line markers.
func MergeBlankLines(a *dom.Arena, root dom.Index) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		children := a.Get(idx).Base().Children
		for i := 0; i < len(children)-1; {
			cur, curOK := a.Get(children[i]).(*dom.BlankLines)
			next, nextOK := a.Get(children[i+1]).(*dom.BlankLines)
			if curOK && nextOK {
				cur.Count += next.Count
				a.Remove(children[i+1])
				children = a.Get(idx).Base().Children
				continue
			}
			i++
		}
		return true
	})
}

// TrimBlankLines removes any leading or trailing BlankLines node from
// every node's child list, since a sequence of removed declarations
// can leave a blank-line marker stranded at the start or end of a
// scope with nothing left to separate.
func TrimBlankLines(a *dom.Arena, root dom.Index) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		children := a.Get(idx).Base().Children
		if len(children) == 0 {
			return true
		}
		if _, ok := a.Get(children[0]).(*dom.BlankLines); ok {
			a.Remove(children[0])
		}
		children = a.Get(idx).Base().Children
		if n := len(children); n > 0 {
			if _, ok := a.Get(children[n-1]).(*dom.BlankLines); ok {
				a.Remove(children[n-1])
			}
		}
		return true
	})
}
