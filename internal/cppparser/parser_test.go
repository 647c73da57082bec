package cppparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dearbindings/dearbindings-go/internal/dom"
)

func TestParseIncludesAndPragma(t *testing.T) {
	src := "#pragma once\n#include <stdio.h>\n#include \"imgui.h\"\n"
	a, root, err := Parse("test.h", src)
	require.NoError(t, err)

	children := a.Get(root).Base().Children
	require.Len(t, children, 3)
	assert.IsType(t, &dom.Pragma{}, a.Get(children[0]))
	inc := a.Get(children[1]).(*dom.Include)
	assert.Equal(t, "stdio.h", inc.Path)
	assert.True(t, inc.IsSystem)
	inc2 := a.Get(children[2]).(*dom.Include)
	assert.Equal(t, "imgui.h", inc2.Path)
	assert.False(t, inc2.IsSystem)
}

func TestParseDefine(t *testing.T) {
	a, root, err := Parse("test.h", "#define FOO 1\n#define BAR(x, y) ((x)+(y))\n")
	require.NoError(t, err)
	children := a.Get(root).Base().Children
	require.Len(t, children, 2)
	foo := a.Get(children[0]).(*dom.Define)
	assert.Equal(t, "FOO", foo.Name)
	assert.Equal(t, "1", foo.Value)
	assert.False(t, foo.FunctionLike)

	bar := a.Get(children[1]).(*dom.Define)
	assert.Equal(t, "BAR", bar.Name)
	assert.True(t, bar.FunctionLike)
	assert.Equal(t, []string{"x", "y"}, bar.Params)
}

func TestParseNamespace(t *testing.T) {
	a, root, err := Parse("test.h", "namespace ImGui {\nvoid Foo();\n}\n")
	require.NoError(t, err)
	children := a.Get(root).Base().Children
	require.Len(t, children, 1)
	ns := a.Get(children[0]).(*dom.Namespace)
	assert.Equal(t, "ImGui", ns.Name)
	require.Len(t, ns.Children, 1)
	fn := a.Get(ns.Children[0]).(*dom.FunctionDeclaration)
	assert.Equal(t, "Foo", fn.Name)
}

func TestParseSimpleStructWithMember(t *testing.T) {
	a, root, err := Parse("test.h", "struct S { void Bar(); };\n")
	require.NoError(t, err)
	children := a.Get(root).Base().Children
	require.Len(t, children, 1)
	st := a.Get(children[0]).(*dom.ClassStructUnion)
	assert.Equal(t, "S", st.Name)
	require.Len(t, st.Children, 1)
	fn := a.Get(st.Children[0]).(*dom.FunctionDeclaration)
	assert.Equal(t, "Bar", fn.Name)
	assert.True(t, fn.IsMember)
	assert.Equal(t, "S", fn.OwningClass)
}

func TestParseStructFieldsAndBases(t *testing.T) {
	a, root, err := Parse("test.h", "struct Derived : public Base {\n int x;\n float y, z;\n};\n")
	require.NoError(t, err)
	st := a.Get(a.Get(root).Base().Children[0]).(*dom.ClassStructUnion)
	assert.Equal(t, []string{"Base"}, st.Bases)
	require.Len(t, st.Children, 2)
	f1 := a.Get(st.Children[0]).(*dom.FieldDeclaration)
	assert.Equal(t, []string{"x"}, f1.Names)
	assert.Equal(t, "int", f1.Type.BaseName)
	f2 := a.Get(st.Children[1]).(*dom.FieldDeclaration)
	assert.Equal(t, []string{"y", "z"}, f2.Names)
}

func TestParseEnumWithExplicitValue(t *testing.T) {
	a, root, err := Parse("test.h", "enum E { A, B = 5, C };\n")
	require.NoError(t, err)
	el := a.Get(a.Get(root).Base().Children[0]).(*dom.EnumElement)
	require.Len(t, el.Children, 3)
	entryA := a.Get(el.Children[0]).(*dom.EnumEntry)
	assert.False(t, entryA.HasExplicitValue)
	entryB := a.Get(el.Children[1]).(*dom.EnumEntry)
	assert.True(t, entryB.HasExplicitValue)
	assert.Equal(t, "5", entryB.ValueExpr)
}

func TestParseEnumSpecialNames(t *testing.T) {
	a, root, err := Parse("test.h", "enum ImGuiCol_ { ImGuiCol_Text_, ImGuiCol_COUNT };\n")
	require.NoError(t, err)
	el := a.Get(a.Get(root).Base().Children[0]).(*dom.EnumElement)
	internal := a.Get(el.Children[0]).(*dom.EnumEntry)
	assert.True(t, internal.Internal)
	count := a.Get(el.Children[1]).(*dom.EnumEntry)
	assert.True(t, count.IsCount)
}

func TestParseTypedefFunctionPointer(t *testing.T) {
	a, root, err := Parse("test.h", "typedef void (*Callback)(int a, void* b);\n")
	require.NoError(t, err)
	td := a.Get(a.Get(root).Base().Children[0]).(*dom.Typedef)
	assert.Equal(t, "Callback", td.Name)
	require.NotNil(t, td.Aliased.FuncPtr)
	assert.Len(t, td.Aliased.FuncPtr.ParamTypes, 2)
}

func TestParseFunctionWithDefaultArg(t *testing.T) {
	a, root, err := Parse("test.h", "void Foo(int x = 5);\n")
	require.NoError(t, err)
	fn := a.Get(a.Get(root).Base().Children[0]).(*dom.FunctionDeclaration)
	require.Len(t, fn.Children, 1)
	param := a.Get(fn.Children[0]).(*dom.FunctionParameter)
	assert.Equal(t, []string{"5"}, param.DefaultTokens)
}

func TestParseOverloadedFunctions(t *testing.T) {
	a, root, err := Parse("test.h", "void Baz(const char* s);\nvoid Baz(int x);\n")
	require.NoError(t, err)
	children := a.Get(root).Base().Children
	require.Len(t, children, 2)
	f1 := a.Get(children[0]).(*dom.FunctionDeclaration)
	f2 := a.Get(children[1]).(*dom.FunctionDeclaration)
	assert.Equal(t, "Baz", f1.Name)
	assert.Equal(t, "Baz", f2.Name)
}

func TestParseTemplateStruct(t *testing.T) {
	a, root, err := Parse("test.h", "template<class T> struct V { T* data; int size; };\n")
	require.NoError(t, err)
	tmpl := a.Get(a.Get(root).Base().Children[0]).(*dom.TemplateDeclaration)
	require.Len(t, tmpl.Children, 1)
	st := a.Get(tmpl.Children[0]).(*dom.ClassStructUnion)
	assert.Equal(t, "V", st.Name)
	require.Len(t, st.Children, 2)
}

func TestParsePreprocessorConditional(t *testing.T) {
	src := "#if IMGUI_HAS_IMSTR\nstruct ImStr { const char* Begin; };\n#endif\n"
	a, root, err := Parse("test.h", src)
	require.NoError(t, err)
	cond := a.Get(a.Get(root).Base().Children[0]).(*dom.PreprocessorConditional)
	assert.Equal(t, "IMGUI_HAS_IMSTR", cond.Expr)
	assert.False(t, cond.Negated)
	require.Len(t, cond.Children, 1)
}

func TestParsePreprocessorConditionalWithElse(t *testing.T) {
	src := "#ifndef IMGUI_DISABLE\nvoid A();\n#else\nvoid B();\n#endif\n"
	a, root, err := Parse("test.h", src)
	require.NoError(t, err)
	cond := a.Get(a.Get(root).Base().Children[0]).(*dom.PreprocessorConditional)
	assert.True(t, cond.Negated)
	assert.True(t, cond.HasElse)
	require.Len(t, cond.Children, 1)
	require.Len(t, cond.ElseBody, 1)
}

func TestParseConstructorAndDestructor(t *testing.T) {
	src := "struct S {\n S();\n ~S();\n};\n"
	a, root, err := Parse("test.h", src)
	require.NoError(t, err)
	st := a.Get(a.Get(root).Base().Children[0]).(*dom.ClassStructUnion)
	require.Len(t, st.Children, 2)
	ctor := a.Get(st.Children[0]).(*dom.FunctionDeclaration)
	assert.True(t, ctor.IsConstructor)
	dtor := a.Get(st.Children[1]).(*dom.FunctionDeclaration)
	assert.True(t, dtor.IsDestructor)
}

func TestParseFunctionBodyIsSkipped(t *testing.T) {
	src := "void Foo() { int x = 1; if (x) { x = 2; } }\nvoid Bar();\n"
	a, root, err := Parse("test.h", src)
	require.NoError(t, err)
	children := a.Get(root).Base().Children
	require.Len(t, children, 2)
	foo := a.Get(children[0]).(*dom.FunctionDeclaration)
	assert.True(t, foo.HadBody)
}

func TestParseUnknownConstructFallsBackToCode(t *testing.T) {
	src := "static_assert(sizeof(int) == 4, \"bad\");\nvoid Foo();\n"
	a, root, err := Parse("test.h", src)
	require.NoError(t, err)
	children := a.Get(root).Base().Children
	require.Len(t, children, 2)
	assert.IsType(t, &dom.Code{}, a.Get(children[0]))
	assert.IsType(t, &dom.FunctionDeclaration{}, a.Get(children[1]))
}

func TestParseLeadingCommentAttachment(t *testing.T) {
	src := "// Does a thing\nvoid Foo();\n"
	a, root, err := Parse("test.h", src)
	require.NoError(t, err)
	fn := a.Get(a.Get(root).Base().Children[0]).(*dom.FunctionDeclaration)
	require.Len(t, fn.LeadingComments, 1)
	assert.Equal(t, "// Does a thing", fn.LeadingComments[0])
}

func TestParseTrailingCommentAttachment(t *testing.T) {
	src := "void Foo(); // trailing\nvoid Bar();\n"
	a, root, err := Parse("test.h", src)
	require.NoError(t, err)
	fn := a.Get(a.Get(root).Base().Children[0]).(*dom.FunctionDeclaration)
	require.Len(t, fn.TrailingComments, 1)
	assert.Equal(t, "// trailing", fn.TrailingComments[0])
}
