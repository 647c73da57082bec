// Package cppimpl renders the C++ bridge implementation file: a body
// for every C function synthesized by flattening or by the
// default-argument/variadic modifiers, calling through to the
// original C++ entry point.
package cppimpl

import (
	"fmt"
	"strings"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/errs"
)

// Options configures the implementation emitter.
type Options struct {
	OriginalHeaderInclude string // e.g. "imgui.h"
	ExportMacro           string
}

// Emit renders root (a HeaderFile) as a complete C++ bridge source file.
func Emit(a *dom.Arena, root dom.Index, opts Options) (string, error) {
	if _, ok := a.Get(root).(*dom.HeaderFile); !ok {
		return "", errs.New(errs.CodeEmit, "cppimpl: root is not a HeaderFile")
	}
	if opts.ExportMacro == "" {
		opts.ExportMacro = "CIMGUI_API"
	}

	e := &emitter{a: a, opts: opts}
	if opts.OriginalHeaderInclude != "" {
		e.writeLine(fmt.Sprintf("#include \"%s\"", opts.OriginalHeaderInclude))
	}
	e.writeLine(fmt.Sprintf("#include \"%s\"", headerCounterpart(opts)))
	e.writeLine("")

	emitByValueShims(e, root)

	dom.Walk(a, root, func(idx dom.Index) bool {
		fn, ok := a.Get(idx).(*dom.FunctionDeclaration)
		if !ok || fn.Internal {
			return true
		}
		if !needsBridgeBody(fn) {
			return true
		}
		e.emitFunctionBody(idx, fn)
		return true
	})

	return e.b.String(), nil
}

func headerCounterpart(opts Options) string {
	base := strings.TrimSuffix(opts.OriginalHeaderInclude, ".h")
	if base == "" {
		base = "cimgui"
	}
	return "c" + strings.TrimPrefix(base, "c") + ".h"
}

// needsBridgeBody reports whether fn is one the C++ emitter must
// synthesize a call-through body for: anything flattened from a member
// function, or any default-argument/variadic/unformatted helper.
// Plain free functions that were already C-compatible in the original
// header pass straight through via the original header's own
// declaration and need no bridge body; manual helpers (ManualHelper)
// get no synthesized body either.
func needsBridgeBody(fn *dom.FunctionDeclaration) bool {
	return fn.OwningClass != "" || fn.IsDefaultArgHelper || fn.IsExplodedVariadicHelper || fn.IsUnformattedHelper
}

type emitter struct {
	a    *dom.Arena
	opts Options
	b    strings.Builder
}

func (e *emitter) writeLine(s string) {
	e.b.WriteString(s)
	e.b.WriteByte('\n')
}

func (e *emitter) emitFunctionBody(idx dom.Index, fn *dom.FunctionDeclaration) {
	params := make([]string, 0)
	var callArgs []string
	var selfExpr string
	for _, c := range e.a.Get(idx).Base().Children {
		p, ok := e.a.Get(c).(*dom.FunctionParameter)
		if !ok {
			continue
		}
		if p.Name == fn.SelfParamName && fn.SelfParamName != "" {
			selfExpr = p.Name
			params = append(params, fmt.Sprintf("%s %s", p.Type.String(), p.Name))
			continue
		}
		params = append(params, fmt.Sprintf("%s %s", p.Type.String(), p.Name))
		callArgs = append(callArgs, argExpr(p))
	}

	e.writeLine(fmt.Sprintf("%s %s(%s)", fn.ReturnType.String(), fn.Name, strings.Join(params, ", ")))
	e.writeLine("{")

	call := fn.OriginalName
	if call == "" {
		call = fn.Name
	}
	target := call + "(" + strings.Join(callArgs, ", ") + ")"
	if fn.OwningClass != "" && selfExpr != "" {
		if fn.IsConstructor {
			target = fmt.Sprintf("new (%s) %s(%s)", selfExpr, fn.OwningClass, strings.Join(callArgs, ", "))
		} else if fn.IsDestructor {
			target = fmt.Sprintf("%s->~%s()", selfExpr, fn.OwningClass)
		} else {
			target = fmt.Sprintf("%s->%s(%s)", selfExpr, call, strings.Join(callArgs, ", "))
		}
	}

	if fn.ReturnType.IsBasicallyVoid() || fn.IsConstructor || fn.IsDestructor {
		e.writeLine(fmt.Sprintf("    %s;", target))
	} else {
		e.writeLine(fmt.Sprintf("    return %s;", target))
	}
	e.writeLine("}")
	e.writeLine("")
}

// argExpr renders the expression passed to the underlying C++ call for
// one parameter, dereferencing where a reference or by-value struct was
// converted to a pointer at the C boundary.
func argExpr(p *dom.FunctionParameter) string {
	if p.Type.RefConvertedToPointer || p.Type.ValueConvertedToPointer {
		return "*" + p.Name
	}
	return p.Name
}

// emitByValueShims writes FromC<Name>/ToC<Name> conversion helpers for
// every struct tagged ByValue (string-view structs excepted), whether
// or not --nopassingstructsbyvalue is set, since the C struct and the
// original C++ type share layout but not a common name.
func emitByValueShims(e *emitter, root dom.Index) {
	dom.Walk(e.a, root, func(idx dom.Index) bool {
		s, ok := e.a.Get(idx).(*dom.ClassStructUnion)
		if !ok || !s.ByValue || s.StringView {
			return true
		}
		orig := s.Name
		if s.OriginalName != "" {
			orig = s.OriginalName
		}
		e.writeLine(fmt.Sprintf("static inline %s FromC%s(%s v) { %s r; memcpy(&r, &v, sizeof(r)); return r; }", orig, s.Name, s.Name, orig))
		e.writeLine(fmt.Sprintf("static inline %s ToC%s(%s v) { %s r; memcpy(&r, &v, sizeof(r)); return r; }", s.Name, s.Name, orig, s.Name))
		return true
	})
	e.writeLine("")
}
