package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// FlattenNamespaces strips each Namespace node whose name is a key of
// prefixes, promoting its children to its parent in place and
// prepending the configured prefix to every identifier declared
// (directly or transitively) within it.
func FlattenNamespaces(a *dom.Arena, root dom.Index, prefixes map[string]string) {
	for {
		idx := dom.FindFirst(a, root, func(n dom.Node) bool {
			ns, ok := n.(*dom.Namespace)
			return ok && prefixes[ns.Name] != ""
		})
		if idx == dom.NoIndex {
			return
		}
		flattenNamespace(a, idx, prefixes)
	}
}

func flattenNamespace(a *dom.Arena, idx dom.Index, prefixes map[string]string) {
	ns := a.Get(idx).(*dom.Namespace)
	prefix := prefixes[ns.Name]

	dom.Walk(a, idx, func(child dom.Index) bool {
		if child == idx {
			return true
		}
		n := a.Get(child)
		if name := dom.Name(n); name != "" {
			dom.SetName(n, prefix+name)
		}
		if fn, ok := n.(*dom.FunctionDeclaration); ok && fn.OwningClass != "" {
			fn.OwningClass = prefix + fn.OwningClass
		}
		return true
	})

	children := append([]dom.Index(nil), a.Get(idx).Base().Children...)
	anchor := idx
	for _, c := range children {
		a.Remove(c)
		a.InsertAfter(anchor, c)
		anchor = c
	}
	a.Remove(idx)
}

// AddPrefixToLooseFunctions prepends prefix to every free function
// (one with no OwningClass) not already inside a namespace this driver
// invocation is about to flatten - run before FlattenNamespaces so a
// loose "c"-style prefix can't later collide with a flattened member
// function of the same short name.
func AddPrefixToLooseFunctions(a *dom.Arena, root dom.Index, prefix string) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		fn, ok := a.Get(idx).(*dom.FunctionDeclaration)
		if !ok || fn.OwningClass != "" || fn.IsConstructor || fn.IsDestructor {
			return true
		}
		if _, insideNamespace := firstAncestorOfKind(a, idx, dom.KindNamespace); insideNamespace {
			return true
		}
		fn.Name = prefix + fn.Name
		return true
	})
}

func firstAncestorOfKind(a *dom.Arena, idx dom.Index, kind dom.Kind) (dom.Index, bool) {
	for _, anc := range dom.Ancestors(a, idx) {
		if a.Get(anc).Kind() == kind {
			return anc, true
		}
	}
	return dom.NoIndex, false
}
