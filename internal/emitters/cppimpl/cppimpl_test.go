package cppimpl

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitFlattenedMemberFunctionCallsThrough(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	fn := a.Alloc(&dom.FunctionDeclaration{
		Name: "ImVector_size", OriginalName: "size", OwningClass: "ImVector",
		ReturnType: &dom.Type{BaseName: "int"}, SelfParamName: "self", IsMember: true,
	})
	self := a.Alloc(&dom.FunctionParameter{Name: "self", Type: &dom.Type{BaseName: "ImVector", Pointer: 1}})
	a.AppendChild(fn, self)
	a.AppendChild(root, fn)

	out, err := Emit(a, root, Options{OriginalHeaderInclude: "imgui.h"})
	require.NoError(t, err)

	assert.Contains(t, out, "int ImVector_size(ImVector* self)")
	assert.Contains(t, out, "return self->size();")
}

func TestEmitSkipsPlainFreeFunction(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "ImGui_GetVersion", ReturnType: &dom.Type{BaseName: "char", Pointer: 1, Const: true}})
	a.AppendChild(root, fn)

	out, err := Emit(a, root, Options{})
	require.NoError(t, err)
	assert.NotContains(t, out, "ImGui_GetVersion(")
}
