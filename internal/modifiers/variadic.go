package modifiers

import (
	"strconv"

	"github.com/dearbindings/dearbindings-go/internal/dom"
)

// AddExplodedVariadicFunctions synthesizes, for every variadic function
// (one whose last parameter IsVarArgs), maxArgs extra non-variadic
// overloads named "NameV0".."NameV<maxArgs-1>" taking 0..maxArgs-1
// additional typed parameters instead of "...", since plain C callers
// that aren't themselves variadic can't forward a "..." parameter
// list. The extra-arg count is suffixed onto each overload's name so
// the maxArgs siblings stay distinct post-disambiguation (spec.md §8).
// Each generated overload's extra parameters are named argN and typed
// as "const char*" format arguments, the only variadic usage ImGui's
// public API has (printf-style formatting calls).
func AddExplodedVariadicFunctions(a *dom.Arena, root dom.Index, maxArgs int) {
	var targets []dom.Index
	dom.Walk(a, root, func(idx dom.Index) bool {
		fn, ok := a.Get(idx).(*dom.FunctionDeclaration)
		if ok && isVariadic(a, fn) && !fn.IsExplodedVariadicHelper {
			targets = append(targets, idx)
		}
		return true
	})

	for _, idx := range targets {
		anchor := idx
		fn := a.Get(idx).(*dom.FunctionDeclaration)
		for n := 0; n < maxArgs; n++ {
			helperIdx := buildExplodedVariant(a, fn, n)
			a.InsertAfter(anchor, helperIdx)
			anchor = helperIdx
		}
	}
}

func isVariadic(a *dom.Arena, fn *dom.FunctionDeclaration) bool {
	children := fn.Base().Children
	if len(children) == 0 {
		return false
	}
	last, ok := a.Get(children[len(children)-1]).(*dom.FunctionParameter)
	return ok && last.IsVarArgs
}

func buildExplodedVariant(a *dom.Arena, fn *dom.FunctionDeclaration, extraArgs int) dom.Index {
	cloneIdx := dom.DeepClone(a, fn.Self)
	clone := a.Get(cloneIdx).(*dom.FunctionDeclaration)
	clone.Name = fn.Name + "V" + strconv.Itoa(extraArgs)
	clone.OriginalName = fn.Name
	clone.IsExplodedVariadicHelper = true
	clone.IsVariadic = false

	children := clone.Base().Children
	// Drop the trailing "..." parameter; keep everything before it.
	a.Remove(children[len(children)-1])

	for i := 0; i < extraArgs; i++ {
		argIdx := a.Alloc(&dom.FunctionParameter{
			Name: argName(i),
			Type: &dom.Type{BaseName: "char", Pointer: 1, Const: true},
		})
		a.AppendChild(cloneIdx, argIdx)
	}
	return cloneIdx
}

func argName(i int) string {
	return "arg" + strconv.Itoa(i)
}

// AddUnformattedFunctions synthesizes, for every function whose name
// ends in "V" and takes a printf-style format string, a sibling
// "NameUnformatted" that takes a plain "const char*"/"const char*"
// text-range pair instead of a format string and its va_list, mirroring
// ImGui's own FooUnformatted functions (e.g. TextUnformatted).
func AddUnformattedFunctions(a *dom.Arena, root dom.Index, names map[string]bool) {
	var targets []dom.Index
	dom.Walk(a, root, func(idx dom.Index) bool {
		fn, ok := a.Get(idx).(*dom.FunctionDeclaration)
		if ok && names[fn.Name] {
			targets = append(targets, idx)
		}
		return true
	})

	for _, idx := range targets {
		fn := a.Get(idx).(*dom.FunctionDeclaration)
		helper := &dom.FunctionDeclaration{
			Name:                fn.Name + "Unformatted",
			OriginalName:        fn.Name,
			ReturnType:          fn.ReturnType.Clone(),
			IsUnformattedHelper: true,
		}
		helperIdx := a.Alloc(helper)
		textBegin := a.Alloc(&dom.FunctionParameter{Name: "text", Type: &dom.Type{BaseName: "char", Pointer: 1, Const: true}})
		textEnd := a.Alloc(&dom.FunctionParameter{Name: "text_end", Type: &dom.Type{BaseName: "char", Pointer: 1, Const: true}, DefaultTokens: []string{"NULL"}})
		a.AppendChild(helperIdx, textBegin)
		a.AppendChild(helperIdx, textEnd)
		a.InsertAfter(idx, helperIdx)
	}
}
