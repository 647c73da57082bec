package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// RemoveStructs deletes every ClassStructUnion whose name is in names,
// wherever it appears in the tree.
func RemoveStructs(a *dom.Arena, root dom.Index, names map[string]bool) {
	removeWhere(a, root, func(n dom.Node) bool {
		s, ok := n.(*dom.ClassStructUnion)
		return ok && names[s.Name]
	})
}

// RemoveAllFunctionsOfClass deletes every FunctionDeclaration whose
// OwningClass is in classNames - used for classes that exist in the
// original API purely for C++ convenience (operator overloading,
// iterators) with no sensible C projection.
func RemoveAllFunctionsOfClass(a *dom.Arena, root dom.Index, classNames map[string]bool) {
	removeWhere(a, root, func(n dom.Node) bool {
		fn, ok := n.(*dom.FunctionDeclaration)
		return ok && classNames[fn.OwningClass]
	})
}

// RemoveFunctions deletes free-standing or member functions by exact
// (OwningClass, Name) pair; an empty OwningClass in the key matches
// free functions.
func RemoveFunctions(a *dom.Arena, root dom.Index, keys map[[2]string]bool) {
	removeWhere(a, root, func(n dom.Node) bool {
		fn, ok := n.(*dom.FunctionDeclaration)
		return ok && keys[[2]string{fn.OwningClass, fn.Name}]
	})
}

// RemoveOperators deletes every operator overload - the C binding
// surface has no operator-overload concept, so these never survive
// flattening in recognizable form.
func RemoveOperators(a *dom.Arena, root dom.Index) {
	removeWhere(a, root, func(n dom.Node) bool {
		fn, ok := n.(*dom.FunctionDeclaration)
		return ok && fn.IsOperator
	})
}

// RemoveHeapConstructorDestructor deletes the default constructor and
// destructor of classes in names - used for classes the C binding
// exposes only as opaque pointers obtained some other way (a factory
// function), so the implicit new/delete pair would be dead weight.
func RemoveHeapConstructorDestructor(a *dom.Arena, root dom.Index, names map[string]bool) {
	removeWhere(a, root, func(n dom.Node) bool {
		fn, ok := n.(*dom.FunctionDeclaration)
		return ok && names[fn.OwningClass] && (fn.IsConstructor || fn.IsDestructor)
	})
}

// RemoveStaticFields deletes static data members - C has no notion of
// a member belonging to the type itself rather than an instance, and
// the original never exposes these across the binding.
func RemoveStaticFields(a *dom.Arena, root dom.Index) {
	removeWhere(a, root, func(n dom.Node) bool {
		f, ok := n.(*dom.FieldDeclaration)
		return ok && f.Static
	})
}

// RemoveExternFields deletes extern data members for the same reason
// static fields are dropped: they denote linkage the C binding doesn't
// surface as a declaration of its own.
func RemoveExternFields(a *dom.Arena, root dom.Index) {
	removeWhere(a, root, func(n dom.Node) bool {
		f, ok := n.(*dom.FieldDeclaration)
		return ok && f.Extern
	})
}

// RemoveNestedTypedefs deletes typedefs declared inside a
// class/struct/union body - C has no nested-scope notion for typedefs,
// and flatten-nested-classes already promotes the types that matter.
func RemoveNestedTypedefs(a *dom.Arena, root dom.Index) {
	removeWhere(a, root, func(n dom.Node) bool {
		_, ok := n.(*dom.Typedef)
		return ok
	}, isNestedInClass)
}

// RemoveTypedefs deletes top-level Typedef nodes by exact name - used
// for aliases the template flattener can't instantiate on its own
// (e.g. a two-parameter template typedef, when only single-parameter
// templates are supported) and that a human has instead hand-picked
// for outright removal.
func RemoveTypedefs(a *dom.Arena, root dom.Index, names []string) {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	removeWhere(a, root, func(n dom.Node) bool {
		t, ok := n.(*dom.Typedef)
		return ok && set[t.Name]
	})
}

// RemoveConstexpr deletes constexpr functions; the C binding has no
// constant-expression-evaluation-at-compile-time concept, and these
// values are inlined at their use sites elsewhere. Field declarations
// are not touched: constexpr variables are not removed.
func RemoveConstexpr(a *dom.Arena, root dom.Index) {
	removeWhere(a, root, func(n dom.Node) bool {
		fn, ok := n.(*dom.FunctionDeclaration)
		return ok && fn.IsConstexpr
	})
}

func isNestedInClass(a *dom.Arena, idx dom.Index) bool {
	parent := a.Get(idx).Base().Parent
	if parent == dom.NoIndex {
		return false
	}
	_, ok := a.Get(parent).(*dom.ClassStructUnion)
	return ok
}

// removeWhere deletes every node matching pred (and, if given, every
// extra guard in guards) reachable from root. Collected first, then
// removed, so mutation never happens mid-walk.
func removeWhere(a *dom.Arena, root dom.Index, pred func(dom.Node) bool, guards ...func(*dom.Arena, dom.Index) bool) {
	matches := dom.FindAll(a, root, pred)
	for _, idx := range matches {
		ok := true
		for _, g := range guards {
			if !g(a, idx) {
				ok = false
				break
			}
		}
		if ok {
			a.Remove(idx)
		}
	}
}
