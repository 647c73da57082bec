package modifiers

import (
	"github.com/bmatcuk/doublestar/v4"

	"github.com/dearbindings/dearbindings-go/internal/dom"
)

// DefaultArgOptions configures GenerateDefaultArgumentFunctions,
// mirroring mod_generate_default_argument_functions' keyword arguments
// in dear_bindings.py: a convenience wrapper isn't worth the header
// bloat for every function that merely has a trailing default, so the
// original lets the caller suppress generation by exact name, by a
// doublestar glob matched against the name (its
// function_prefixes_to_ignore, generalized here to full glob syntax),
// or by recognizing the defaulted parameter itself as "trivial" (a
// type/name so generic - ImGuiCond, "flags" - that the reduced-arity
// form wouldn't read as more user-friendly than the full one).
type DefaultArgOptions struct {
	FunctionsToIgnore    map[string]bool
	FunctionPrefixGlobs  []string
	TrivialArgumentTypes map[string]bool
	TrivialArgumentNames map[string]bool
}

// GenerateDefaultArgumentFunctions synthesizes a companion for every
// function that has one or more trailing parameters with default
// values, since C has no default-argument syntax. The original
// declaration keeps its trailing defaulted parameters stripped and
// stays the canonical "Name"; a sibling "NameEx" is inserted
// immediately after it carrying the full parameter list, so callers
// that need non-default values for the trailing arguments have
// somewhere to go. Functions matched by opts are left untouched,
// unless their defaulted parameter is itself trivial (opts' trivial
// type/name sets override a glob/exact suppression, matching the
// original's "trivial_argument_types"/"trivial_argument_names" carve-out).
// A function whose very first parameter is defaulted produces no
// companion at all: the reduced-arity form would take zero parameters,
// so splitting would emit two declarations for what is really one
// function (see addDefaultArgHelper).
func GenerateDefaultArgumentFunctions(a *dom.Arena, root dom.Index, opts DefaultArgOptions) {
	var targets []dom.Index
	dom.Walk(a, root, func(idx dom.Index) bool {
		fn, ok := a.Get(idx).(*dom.FunctionDeclaration)
		if !ok || fn.IsDefaultArgHelper {
			return true
		}
		first := firstDefaultedParam(a, fn)
		if first < 0 {
			return true
		}
		if isIgnoredForDefaultArgs(a, fn, first, opts) {
			return true
		}
		targets = append(targets, idx)
		return true
	})

	for _, idx := range targets {
		addDefaultArgHelper(a, idx)
	}
}

func isIgnoredForDefaultArgs(a *dom.Arena, fn *dom.FunctionDeclaration, firstDefaulted int, opts DefaultArgOptions) bool {
	if isTrivialDefaultedParam(a, fn, firstDefaulted, opts) {
		return false
	}
	if opts.FunctionsToIgnore[fn.Name] {
		return true
	}
	for _, glob := range opts.FunctionPrefixGlobs {
		if ok, _ := doublestar.Match(glob, fn.Name); ok {
			return true
		}
	}
	return false
}

func isTrivialDefaultedParam(a *dom.Arena, fn *dom.FunctionDeclaration, firstDefaulted int, opts DefaultArgOptions) bool {
	children := fn.Base().Children
	if firstDefaulted < 0 || firstDefaulted >= len(children) {
		return false
	}
	param, ok := a.Get(children[firstDefaulted]).(*dom.FunctionParameter)
	if !ok {
		return false
	}
	return opts.TrivialArgumentTypes[param.Type.BaseName] || opts.TrivialArgumentNames[param.Name]
}

func firstDefaultedParam(a *dom.Arena, fn *dom.FunctionDeclaration) int {
	children := fn.Base().Children
	for i, c := range children {
		if p, ok := a.Get(c).(*dom.FunctionParameter); ok && len(p.DefaultTokens) > 0 {
			return i
		}
	}
	return -1
}

// addDefaultArgHelper clones fn with its full parameter list, inserts
// the clone right after fn named "NameEx" (dear_bindings' suffix for
// the full-signature variant once defaults are split out), and strips
// fn's own parameters from firstDefaultedParam onward. The original
// stays put as the canonical reduced-arity form callers usually want.
//
// When firstDefaultedParam is 0 - every parameter is defaulted, so the
// reduced-arity form would take no parameters at all - the split is
// suppressed entirely (spec.md §8 scenario 1): a zero-parameter
// wrapper and a same-named "Ex" sibling carrying the real signature
// would be two declarations for what a C caller experiences as one
// function, so fn is left untouched and keeps its full parameter list.
func addDefaultArgHelper(a *dom.Arena, idx dom.Index) {
	fn := a.Get(idx).(*dom.FunctionDeclaration)
	first := firstDefaultedParam(a, fn)
	if first == 0 {
		return
	}

	cloneIdx := dom.DeepClone(a, idx)
	clone := a.Get(cloneIdx).(*dom.FunctionDeclaration)
	clone.Name = fn.Name + "Ex"
	clone.IsDefaultArgHelper = true
	clone.OriginalName = fn.Name

	for _, c := range fn.Base().Children[first:] {
		a.Remove(c)
	}

	a.InsertAfter(idx, cloneIdx)
}
