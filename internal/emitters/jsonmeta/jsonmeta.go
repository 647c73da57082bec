// Package jsonmeta renders the full HeaderFileSet to the JSON metadata
// document downstream language bindings consume: arrays of defines,
// enums, typedefs, structs, and functions, each carrying both its
// current and original identifier plus its active conditional context.
package jsonmeta

import (
	"encoding/json"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/errs"
)

// Document is the top-level JSON shape.
type Document struct {
	Defines   []Define   `json:"defines"`
	Enums     []Enum     `json:"enums"`
	Typedefs  []Typedef  `json:"typedefs"`
	Structs   []Struct   `json:"structs"`
	Functions []Function `json:"functions"`
}

type Define struct {
	Name         string   `json:"name"`
	Value        string   `json:"value,omitempty"`
	FunctionLike bool     `json:"is_function_like"`
	Conditionals []string `json:"conditionals"`
}

type Enum struct {
	Name         string      `json:"name"`
	OriginalName string      `json:"original_name"`
	IsFlags      bool        `json:"is_flags_enum"`
	Elements     []EnumEntry `json:"elements"`
	Conditionals []string    `json:"conditionals"`
}

type EnumEntry struct {
	Name       string `json:"name"`
	Value      int64  `json:"value"`
	IsInternal bool   `json:"is_internal"`
	IsCount    bool   `json:"is_count"`
}

type Typedef struct {
	Name         string   `json:"name"`
	Type         TypeInfo `json:"type"`
	Conditionals []string `json:"conditionals"`
}

type Struct struct {
	Name         string      `json:"name"`
	OriginalName string      `json:"original_name"`
	ByValue      bool        `json:"by_value"`
	Fields       []FieldInfo `json:"fields"`
	Conditionals []string    `json:"conditionals"`
}

type FieldInfo struct {
	Name string   `json:"name"`
	Type TypeInfo `json:"type"`
}

type Function struct {
	Name         string      `json:"name"`
	OriginalName string      `json:"original_name"`
	ReturnType   TypeInfo    `json:"return_type"`
	Arguments    []ArgInfo   `json:"arguments"`
	IsInternal   bool        `json:"is_internal"`
	IsManual     bool        `json:"is_manual_helper"`
	IsDefaultArg bool        `json:"is_default_argument_helper"`
	Comments     CommentInfo `json:"comments"`
	Conditionals []string    `json:"conditionals"`
	Location     Location    `json:"location"`
}

type ArgInfo struct {
	Name                string   `json:"name"`
	Type                TypeInfo `json:"type"`
	DefaultValue        string   `json:"default_value,omitempty"`
	ReferenceConverted  bool     `json:"is_reference_converted_to_pointer"`
}

type TypeInfo struct {
	BaseName  string `json:"base_name"`
	Const     bool   `json:"is_const"`
	Pointer   int    `json:"pointer_depth"`
	Reference bool   `json:"is_reference"`
}

type CommentInfo struct {
	Preceding []string `json:"preceding"`
	Trailing  []string `json:"trailing"`
}

type Location struct {
	File string `json:"file"`
}

// Emit walks root (a HeaderFileSet) and returns the rendered JSON
// document as indented text.
func Emit(a *dom.Arena, root dom.Index) (string, error) {
	if _, ok := a.Get(root).(*dom.HeaderFileSet); !ok {
		return "", errs.New(errs.CodeEmit, "jsonmeta: root is not a HeaderFileSet")
	}

	doc := Document{}
	for _, fileIdx := range a.Get(root).Base().Children {
		hf, ok := a.Get(fileIdx).(*dom.HeaderFile)
		if !ok {
			continue
		}
		collect(a, fileIdx, hf.OriginalFileName, &doc)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errs.Wrap(errs.CodeEmit, err, "marshaling metadata document")
	}
	return string(out), nil
}

func collect(a *dom.Arena, root dom.Index, file string, doc *Document) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		switch n := a.Get(idx).(type) {
		case *dom.Define:
			if n.ExcludeFromJSON {
				return true
			}
			doc.Defines = append(doc.Defines, Define{
				Name: n.Name, Value: n.Value, FunctionLike: n.FunctionLike,
				Conditionals: dom.ConditionalContext(a, idx),
			})
		case *dom.EnumElement:
			doc.Enums = append(doc.Enums, collectEnum(a, idx, n))
		case *dom.Typedef:
			doc.Typedefs = append(doc.Typedefs, Typedef{
				Name: n.Name, Type: typeInfo(n.Aliased), Conditionals: dom.ConditionalContext(a, idx),
			})
		case *dom.ClassStructUnion:
			if n.ForwardDeclaration {
				return true
			}
			doc.Structs = append(doc.Structs, collectStruct(a, idx, n))
		case *dom.FunctionDeclaration:
			doc.Functions = append(doc.Functions, collectFunction(a, idx, n, file))
		}
		return true
	})
}

func collectEnum(a *dom.Arena, idx dom.Index, n *dom.EnumElement) Enum {
	enum := Enum{
		Name: n.Name, OriginalName: dom.OriginalName(a.Get(idx)), IsFlags: n.IsFlags,
		Conditionals: dom.ConditionalContext(a, idx),
	}
	for _, c := range a.Get(idx).Base().Children {
		entry, ok := a.Get(c).(*dom.EnumEntry)
		if !ok {
			continue
		}
		enum.Elements = append(enum.Elements, EnumEntry{
			Name: entry.Name, Value: entry.Value, IsInternal: entry.Internal, IsCount: entry.IsCount,
		})
	}
	return enum
}

func collectStruct(a *dom.Arena, idx dom.Index, n *dom.ClassStructUnion) Struct {
	s := Struct{
		Name: n.Name, OriginalName: dom.OriginalName(a.Get(idx)), ByValue: n.ByValue,
		Conditionals: dom.ConditionalContext(a, idx),
	}
	for _, c := range a.Get(idx).Base().Children {
		field, ok := a.Get(c).(*dom.FieldDeclaration)
		if !ok || field.Internal {
			continue
		}
		for _, name := range field.Names {
			s.Fields = append(s.Fields, FieldInfo{Name: name, Type: typeInfo(field.Type)})
		}
	}
	return s
}

func collectFunction(a *dom.Arena, idx dom.Index, n *dom.FunctionDeclaration, file string) Function {
	fn := Function{
		Name: n.Name, OriginalName: dom.OriginalName(a.Get(idx)), ReturnType: typeInfo(n.ReturnType),
		IsInternal: n.Internal, IsManual: n.ManualHelper, IsDefaultArg: n.IsDefaultArgHelper,
		Comments:     CommentInfo{Preceding: a.Get(idx).Base().LeadingComments, Trailing: a.Get(idx).Base().TrailingComments},
		Conditionals: dom.ConditionalContext(a, idx),
		Location:     Location{File: file},
	}
	for _, c := range a.Get(idx).Base().Children {
		p, ok := a.Get(c).(*dom.FunctionParameter)
		if !ok {
			continue
		}
		fn.Arguments = append(fn.Arguments, ArgInfo{
			Name: p.Name, Type: typeInfo(p.Type), DefaultValue: joinTokens(p.DefaultTokens),
			ReferenceConverted: p.Type != nil && p.Type.RefConvertedToPointer,
		})
	}
	return fn
}

func typeInfo(t *dom.Type) TypeInfo {
	if t == nil {
		return TypeInfo{BaseName: "void"}
	}
	return TypeInfo{BaseName: t.BaseName, Const: t.Const, Pointer: t.Pointer, Reference: t.Reference}
}

func joinTokens(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	s := tokens[0]
	for _, t := range tokens[1:] {
		s += " " + t
	}
	return s
}
