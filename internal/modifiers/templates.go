package modifiers

import (
	"fmt"
	"strings"

	"github.com/dearbindings/dearbindings-go/internal/dom"
)

// FlattenTemplates synthesizes a concrete struct for every distinct
// instantiation of a single-type-parameter TemplateDeclaration used
// anywhere in the tree (e.g. "ImVector<int>" -> struct "ImVector_int"),
// and rewrites every Type that referenced the template-id to name the
// concrete struct instead. customTypeFudges remaps awkward argument
// spellings (e.g. "const T**" <-> "T* const*") to the canonical form
// used as the instantiated struct's name suffix. Returns true if it
// changed the tree, so the driver's flatten loop can stop once a pass
// is a no-op (this pass is safe to re-invoke - the caller's contract,
// satisfying spec.md §8's idempotence requirement).
func FlattenTemplates(a *dom.Arena, root dom.Index, customTypeFudges map[string]string) bool {
	changed := false
	for {
		tmplIdx := dom.FindFirst(a, root, func(n dom.Node) bool {
			_, ok := n.(*dom.TemplateDeclaration)
			return ok
		})
		if tmplIdx == dom.NoIndex {
			return changed
		}
		tmpl := a.Get(tmplIdx).(*dom.TemplateDeclaration)
		bodyIdx := dom.NoIndex
		if children := a.Get(tmplIdx).Base().Children; len(children) > 0 {
			bodyIdx = children[0]
		}
		body, ok := a.Get(bodyIdx).(*dom.ClassStructUnion)
		if !ok || len(tmpl.Params) != 1 {
			// Only the single-type-parameter struct-template shape is
			// supported; anything else is dropped from the tree without
			// being instantiated (multi-parameter templates don't appear
			// in the target headers).
			a.Remove(tmplIdx)
			continue
		}
		paramName := lastWord(tmpl.Params[0])
		templateName := body.Name

		instantiations := collectInstantiations(a, root, templateName, tmplIdx)
		for _, argType := range instantiations {
			suffix := canonicalArgName(argType, customTypeFudges)
			concreteName := templateName + "_" + suffix
			if isKnownStructName(a, root, concreteName) {
				rewriteUsages(a, root, templateName, argType, concreteName)
				continue
			}
			concreteIdx := dom.DeepClone(a, bodyIdx)
			concrete := a.Get(concreteIdx).(*dom.ClassStructUnion)
			concrete.Name = concreteName
			concrete.OriginalName = templateName
			substituteTypeParamInSubtree(a, concreteIdx, paramName, argType)
			a.InsertAfter(tmplIdx, concreteIdx)
			rewriteUsages(a, root, templateName, argType, concreteName)
			changed = true
		}
		a.Remove(tmplIdx)
		changed = true
	}
}

func lastWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[len(fields)-1]
}

// collectInstantiations finds every distinct template-argument Type
// used as "templateName<Arg>" anywhere under root, skipping the
// template declaration's own subtree.
func collectInstantiations(a *dom.Arena, root dom.Index, templateName string, skip dom.Index) []*dom.Type {
	seen := map[string]bool{}
	var out []*dom.Type
	dom.Walk(a, root, func(idx dom.Index) bool {
		if idx == skip {
			return false
		}
		for _, t := range typesOf(a.Get(idx)) {
			walkType(t, func(inner *dom.Type) {
				if inner.BaseName != templateName || len(inner.TemplateArgs) != 1 {
					return
				}
				key := inner.TemplateArgs[0].String()
				if !seen[key] {
					seen[key] = true
					out = append(out, inner.TemplateArgs[0])
				}
			})
		}
		return true
	})
	return out
}

func walkType(t *dom.Type, fn func(*dom.Type)) {
	if t == nil {
		return
	}
	fn(t)
	for _, a := range t.TemplateArgs {
		walkType(a, fn)
	}
	if t.FuncPtr != nil {
		walkType(t.FuncPtr.ReturnType, fn)
		for _, p := range t.FuncPtr.ParamTypes {
			walkType(p, fn)
		}
	}
}

// typesOf returns every *Type directly owned by n, so template-usage
// scans don't need a type switch at every call site.
func typesOf(n dom.Node) []*dom.Type {
	switch t := n.(type) {
	case *dom.FieldDeclaration:
		return []*dom.Type{t.Type}
	case *dom.FunctionDeclaration:
		return []*dom.Type{t.ReturnType}
	case *dom.FunctionParameter:
		return []*dom.Type{t.Type}
	case *dom.Typedef:
		return []*dom.Type{t.Aliased}
	}
	return nil
}

// rewriteUsages replaces every Type matching templateName<argType>
// with a bare reference to concreteName (clearing TemplateArgs).
func rewriteUsages(a *dom.Arena, root dom.Index, templateName string, argType *dom.Type, concreteName string) {
	argKey := argType.String()
	dom.Walk(a, root, func(idx dom.Index) bool {
		for _, t := range typesOf(a.Get(idx)) {
			walkType(t, func(inner *dom.Type) {
				if inner.BaseName == templateName && len(inner.TemplateArgs) == 1 && inner.TemplateArgs[0].String() == argKey {
					inner.BaseName = concreteName
					inner.TemplateArgs = nil
				}
			})
		}
		return true
	})
}

// substituteTypeParamInSubtree rewrites every occurrence of paramName
// as a bare type (the template's formal parameter, e.g. "T") within
// idx's subtree to replacement, approximating substitution by layering
// replacement's pointer/const/template-arg shape onto the use site.
func substituteTypeParamInSubtree(a *dom.Arena, idx dom.Index, paramName string, replacement *dom.Type) {
	dom.Walk(a, idx, func(c dom.Index) bool {
		for _, t := range typesOf(a.Get(c)) {
			walkType(t, func(inner *dom.Type) {
				if inner.BaseName != paramName {
					return
				}
				basePointer, baseConst := inner.Pointer, inner.Const
				*inner = *replacement.Clone()
				inner.Pointer += basePointer
				inner.Const = inner.Const || baseConst
			})
		}
		return true
	})
}

// canonicalArgName turns a template argument type into the suffix used
// for its instantiated struct's name, applying any configured fudge
// (e.g. "const T**" normalized to "T* const*") before falling back to a
// direct, punctuation-stripped rendering of the type.
func canonicalArgName(t *dom.Type, fudges map[string]string) string {
	raw := t.String()
	if fudged, ok := fudges[raw]; ok {
		raw = fudged
	}
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '*':
			b.WriteString("Ptr")
		default:
			// spaces, "::", etc. are dropped rather than mapped to an
			// underscore, keeping names like "unsigned int" -> "unsignedint".
		}
	}
	if b.Len() == 0 {
		return fmt.Sprintf("t%d", len(raw))
	}
	return b.String()
}
