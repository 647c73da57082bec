package modifiers

import (
	"strings"

	"github.com/dearbindings/dearbindings-go/internal/dom"
)

// DisambiguateOptions configures DisambiguateFunctions' suffix
// derivation, mirroring mod_disambiguate_functions' keyword arguments in
// dear_bindings.py.
type DisambiguateOptions struct {
	// NameSuffixRemaps maps a parameter type's canonical string (as
	// produced by dom.Type.String, e.g. "const char*") to the
	// user-friendly suffix disambiguation should use instead of the
	// punctuation-stripped type name, e.g. {"const char*": "Str",
	// "ImGuiID": "ID"}.
	NameSuffixRemaps map[string]string
	// FunctionsToIgnore suppresses disambiguation for names that look
	// like overload clashes but are actually resolved some other way
	// (commonly, mutually exclusive preprocessor conditionals).
	FunctionsToIgnore map[string]bool
	// FunctionsToRenameEverything forces every member of the named
	// overload set to receive a suffix, including the first occurrence
	// in document order (which otherwise keeps the bare name).
	FunctionsToRenameEverything map[string]bool
}

// DisambiguateFunctions appends a signature-derived suffix to every
// function name that collides with another function of the same name
// (C has no overloading), so two overloads taking different parameter
// types don't collide once flattened to free functions. The first
// occurrence in document order keeps the bare name unless the group is
// listed in opts.FunctionsToRenameEverything; later ones are renamed
// by the same signature rule as RenameFunctionBySignature, with
// opts.NameSuffixRemaps applied.
func DisambiguateFunctions(a *dom.Arena, root dom.Index, opts DisambiguateOptions) {
	byName := map[string][]dom.Index{}
	var order []string
	dom.Walk(a, root, func(idx dom.Index) bool {
		fn, ok := a.Get(idx).(*dom.FunctionDeclaration)
		if !ok {
			return true
		}
		if _, seen := byName[fn.Name]; !seen {
			order = append(order, fn.Name)
		}
		byName[fn.Name] = append(byName[fn.Name], idx)
		return true
	})

	for _, name := range order {
		if opts.FunctionsToIgnore[name] {
			continue
		}
		group := byName[name]
		if len(group) < 2 {
			continue
		}
		start := 1
		if opts.FunctionsToRenameEverything[name] {
			start = 0
		}
		for i := start; i < len(group); i++ {
			fn := a.Get(group[i]).(*dom.FunctionDeclaration)
			fn.Name = renameBySignature(a, fn, opts.NameSuffixRemaps)
		}
	}
}

// RenameFunctionBySignature builds "Name_ParamType1ParamType2..." from
// a function's parameters (skipping "self", since every overload of a
// member function shares it), using each parameter's punctuation-
// stripped type name as its suffix. Exported for callers outside the
// full disambiguation pass that don't need a suffix remap table.
func RenameFunctionBySignature(a *dom.Arena, fn *dom.FunctionDeclaration) string {
	return renameBySignature(a, fn, nil)
}

func renameBySignature(a *dom.Arena, fn *dom.FunctionDeclaration, remaps map[string]string) string {
	var b strings.Builder
	b.WriteString(fn.Name)
	sep := "_"
	for _, paramIdx := range fn.Base().Children {
		param, ok := a.Get(paramIdx).(*dom.FunctionParameter)
		if !ok || param.Name == fn.SelfParamName && fn.SelfParamName != "" {
			continue
		}
		b.WriteString(sep)
		sep = ""
		if suffix, ok := remaps[param.Type.String()]; ok {
			b.WriteString(suffix)
		} else {
			b.WriteString(canonicalArgName(param.Type, nil))
		}
	}
	return b.String()
}

// RenameFunctions applies an explicit name-to-name rename table, used
// for the small set of functions dear_bindings.py renames by hand
// (e.g. disambiguating a constructor-like free function from a
// same-named type).
func RenameFunctions(a *dom.Arena, root dom.Index, renames map[string]string) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		fn, ok := a.Get(idx).(*dom.FunctionDeclaration)
		if !ok {
			return true
		}
		if newName, ok := renames[fn.Name]; ok {
			fn.Name = newName
		}
		return true
	})
}
