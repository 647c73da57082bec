// Package cheader renders the modified DOM of a main HeaderFile to a
// pure C header: includes, defines, forward declarations, typedefs,
// structs, enums, and CIMGUI_API-prefixed function prototypes, wrapped
// in an extern "C" guard when the tree was tagged for it.
package cheader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/errs"
)

// Options configures the header emitter.
type Options struct {
	ExportMacro string // default CIMGUI_API
}

// Emit renders root (a HeaderFile) as a complete C header.
func Emit(a *dom.Arena, root dom.Index, opts Options) (string, error) {
	hf, ok := a.Get(root).(*dom.HeaderFile)
	if !ok {
		return "", errs.New(errs.CodeEmit, "cheader: root is not a HeaderFile")
	}
	if opts.ExportMacro == "" {
		opts.ExportMacro = "CIMGUI_API"
	}

	e := &emitter{a: a, opts: opts}
	e.writeLine("#pragma once")
	e.writeLine("")

	if hf.WrapExternC {
		e.writeLine("#ifdef __cplusplus")
		e.writeLine(`extern "C" {`)
		e.writeLine("#endif")
		e.writeLine("")
	}

	for _, child := range a.Get(root).Base().Children {
		if err := e.emitTopLevel(child); err != nil {
			return "", err
		}
	}

	if hf.WrapExternC {
		e.writeLine("#ifdef __cplusplus")
		e.writeLine("}")
		e.writeLine("#endif")
	}

	return e.b.String(), nil
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

func (e *emitter) emitComments(idx dom.Index) {
	base := e.a.Get(idx).Base()
	for _, c := range base.LeadingComments {
		e.writeLine(c)
	}
}

func (e *emitter) emitTrailing(idx dom.Index, line string) {
	base := e.a.Get(idx).Base()
	if len(base.TrailingComments) == 0 {
		e.writeLine(line)
		return
	}
	e.writeLine(line + " " + strings.Join(base.TrailingComments, " "))
}

func (e *emitter) emitTopLevel(idx dom.Index) error {
	e.emitComments(idx)
	switch n := e.a.Get(idx).(type) {
	case *dom.BlankLines:
		for i := 0; i < n.Count; i++ {
			e.writeLine("")
		}
	case *dom.Include:
		e.emitInclude(n)
	case *dom.Pragma:
		e.writeLine("#pragma " + n.Text)
	case *dom.Define:
		e.emitDefine(n)
	case *dom.PreprocessorConditional:
		return e.emitConditional(idx, n)
	case *dom.Typedef:
		e.emitTypedef(n)
	case *dom.ClassStructUnion:
		e.emitStruct(idx, n)
	case *dom.EnumElement:
		e.emitEnum(idx, n)
	case *dom.FunctionDeclaration:
		e.emitFunctionPrototype(idx, n)
	case *dom.Comment:
		e.writeLine(n.Text)
	case *dom.Code:
		e.writeLine(n.Text)
	default:
		// Namespaces, templates, field declarations at file scope and
		// anything else that should have been flattened/removed by this
		// point in the pipeline is silently skipped rather than erroring,
		// since a best-effort --backend header is an explicit open
		// question rather than a hard contract.
	}
	return nil
}

func (e *emitter) emitInclude(n *dom.Include) {
	if n.IsSystem {
		e.writeLine(fmt.Sprintf("#include <%s>", n.Path))
	} else {
		e.writeLine(fmt.Sprintf("#include \"%s\"", n.Path))
	}
}

func (e *emitter) emitDefine(n *dom.Define) {
	if n.FunctionLike {
		e.writeLine(fmt.Sprintf("#define %s(%s) %s", n.Name, strings.Join(n.Params, ", "), n.Value))
		return
	}
	if n.Value == "" {
		e.writeLine("#define " + n.Name)
		return
	}
	e.writeLine(fmt.Sprintf("#define %s %s", n.Name, n.Value))
}

func (e *emitter) emitConditional(idx dom.Index, n *dom.PreprocessorConditional) error {
	directive := "#if"
	if n.Negated {
		directive = "#ifndef"
	}
	e.writeLine(fmt.Sprintf("%s %s", directive, n.Expr))
	for _, c := range e.a.Get(idx).Base().Children {
		if err := e.emitTopLevel(c); err != nil {
			return err
		}
	}
	if n.HasElse {
		e.writeLine("#else")
		for _, c := range n.ElseBody {
			if err := e.emitTopLevel(c); err != nil {
				return err
			}
		}
	}
	e.writeLine("#endif")
	return nil
}

func (e *emitter) emitTypedef(n *dom.Typedef) {
	e.writeLine(fmt.Sprintf("typedef %s;", declare(n.Aliased, n.Name)))
}

func (e *emitter) emitStruct(idx dom.Index, n *dom.ClassStructUnion) {
	kw := "struct"
	if n.StructKind == dom.StructKindUnion {
		kw = "union"
	}
	if n.ForwardDeclaration {
		e.writeLine(fmt.Sprintf("typedef %s %s %s;", kw, n.Name, n.Name))
		return
	}
	e.writeLine(fmt.Sprintf("typedef %s %s", kw, n.Name))
	e.writeLine("{")
	for _, c := range e.a.Get(idx).Base().Children {
		if field, ok := e.a.Get(c).(*dom.FieldDeclaration); ok {
			e.emitField(c, field)
		}
	}
	e.writeLine(fmt.Sprintf("} %s;", n.Name))
}

func (e *emitter) emitField(idx dom.Index, f *dom.FieldDeclaration) {
	e.emitComments(idx)
	names := make([]string, len(f.Names))
	for i, name := range f.Names {
		if f.BitfieldWidth != "" {
			names[i] = name + " : " + f.BitfieldWidth
		} else {
			names[i] = name
		}
	}
	e.emitTrailing(idx, fmt.Sprintf("    %s;", declare(f.Type, strings.Join(names, ", "))))
}

func (e *emitter) emitEnum(idx dom.Index, n *dom.EnumElement) {
	e.writeLine(fmt.Sprintf("typedef enum %s", n.Name))
	e.writeLine("{")
	for _, c := range e.a.Get(idx).Base().Children {
		entry, ok := e.a.Get(c).(*dom.EnumEntry)
		if !ok {
			continue
		}
		e.emitComments(c)
		value := strconv.FormatInt(entry.Value, 10)
		if n.IsFlags {
			value = fmt.Sprintf("0x%08X", uint64(entry.Value))
		}
		e.emitTrailing(c, fmt.Sprintf("    %s = %s,", entry.Name, value))
	}
	e.writeLine(fmt.Sprintf("} %s;", n.Name))
}

func (e *emitter) emitFunctionPrototype(idx dom.Index, fn *dom.FunctionDeclaration) {
	if fn.Internal {
		return
	}
	params := make([]string, 0, len(e.a.Get(idx).Base().Children))
	for _, c := range e.a.Get(idx).Base().Children {
		p, ok := e.a.Get(c).(*dom.FunctionParameter)
		if !ok {
			continue
		}
		if p.IsVarArgs {
			params = append(params, "...")
			continue
		}
		params = append(params, declare(p.Type, p.Name))
	}
	if len(params) == 0 {
		params = append(params, "void")
	}
	e.emitTrailing(idx, fmt.Sprintf("%s %s %s(%s);", e.opts.ExportMacro, fn.ReturnType.String(), fn.Name, strings.Join(params, ", ")))
}

// declare renders a C declarator: the type's qualifiers/pointer chain
// followed by the declared name, e.g. declare(&Type{BaseName:"char",
// Pointer:1}, "name") -> "char* name".
func declare(t *dom.Type, name string) string {
	if t.FuncPtr != nil {
		return declareFuncPtr(t, name)
	}
	s := t.String()
	if name == "" {
		return s
	}
	return s + " " + name
}

func declareFuncPtr(t *dom.Type, name string) string {
	params := make([]string, len(t.FuncPtr.ParamTypes))
	for i, p := range t.FuncPtr.ParamTypes {
		pname := ""
		if i < len(t.FuncPtr.ParamNames) {
			pname = t.FuncPtr.ParamNames[i]
		}
		params[i] = declare(p, pname)
	}
	if t.FuncPtr.Variadic {
		params = append(params, "...")
	}
	return fmt.Sprintf("%s (*%s)(%s)", t.FuncPtr.ReturnType.String(), name, strings.Join(params, ", "))
}
