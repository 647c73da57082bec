package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// AttachPrecedingComments converts floating Comment nodes into attached
// leading comments of the declaration that immediately follows them in
// the same scope, then removes the now-redundant Comment node. Comments
// already captured as LeadingComments/TrailingComments by the parser
// (the common case) are left untouched; this modifier exists for
// Comment nodes synthesized by earlier tooling or left unattached by a
// parser recovery path.
func AttachPrecedingComments(a *dom.Arena, root dom.Index) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		children := a.Get(idx).Base().Children
		for i := 0; i < len(children); i++ {
			c := children[i]
			comment, ok := a.Get(c).(*dom.Comment)
			if !ok || !comment.Preceding {
				continue
			}
			if i+1 < len(children) {
				target := a.Get(children[i+1]).Base()
				target.LeadingComments = append(append([]string(nil), comment.Text), target.LeadingComments...)
			}
			a.Remove(c)
			children = a.Get(idx).Base().Children
			i--
		}
		return true
	})
}

// AddFunctionComment appends detail to the trailing comment block of
// the first function named name found anywhere in the tree - used to
// attach a hand-written usage note the original C++ comment doesn't
// carry (mod_add_function_comment in the original).
func AddFunctionComment(a *dom.Arena, root dom.Index, name, detail string) {
	idx := dom.FindFirst(a, root, func(n dom.Node) bool {
		fn, ok := n.(*dom.FunctionDeclaration)
		return ok && fn.Name == name
	})
	if idx == dom.NoIndex {
		return
	}
	b := a.Get(idx).Base()
	b.TrailingComments = append(b.TrailingComments, detail)
}
