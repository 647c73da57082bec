package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// FlattenClassFunctions turns every non-static member function into a
// free function taking the owning struct by pointer as its first
// ("self") argument, renamed "OwningClass_Name" (or
// "OwningClass_OwningClass"/"OwningClass_destroy" for constructors and
// destructors). Static member functions are renamed the same way but
// keep no self parameter, since there's no instance to bind.
func FlattenClassFunctions(a *dom.Arena, root dom.Index) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		fn, ok := a.Get(idx).(*dom.FunctionDeclaration)
		if !ok || fn.OwningClass == "" {
			return true
		}
		flattenOneFunction(a, fn)
		return true
	})
}

func flattenOneFunction(a *dom.Arena, fn *dom.FunctionDeclaration) {
	owner := fn.OwningClass
	fn.OriginalName = fn.Name

	switch {
	case fn.IsConstructor:
		fn.Name = owner + "_" + owner
	case fn.IsDestructor:
		fn.Name = owner + "_destroy"
	default:
		fn.Name = owner + "_" + fn.Name
	}

	if fn.IsStatic || fn.IsConstructor {
		// Constructors allocate their own instance elsewhere
		// (mod_remove_heap_constructor_and_destructor decides whether a
		// heap-allocating variant still exists); neither takes a self.
		return
	}

	self := &dom.FunctionParameter{
		Name: "self",
		Type: &dom.Type{BaseName: owner, Pointer: 1},
	}
	selfIdx := a.Alloc(self)
	a.InsertChildAt(fn.Self, 0, selfIdx)
	fn.IsMember = true
	fn.SelfParamName = "self"
}
