package cheader

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitStructAndFunctionPrototype(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{OriginalFileName: "imgui.h", WrapExternC: true})

	st := a.Alloc(&dom.ClassStructUnion{Name: "ImVec2", StructKind: dom.StructKindStruct})
	field := a.Alloc(&dom.FieldDeclaration{Type: &dom.Type{BaseName: "float"}, Names: []string{"x", "y"}})
	a.AppendChild(st, field)
	a.AppendChild(root, st)

	fn := a.Alloc(&dom.FunctionDeclaration{Name: "ImVec2_Length", ReturnType: &dom.Type{BaseName: "float"}})
	self := a.Alloc(&dom.FunctionParameter{Name: "self", Type: &dom.Type{BaseName: "ImVec2", Pointer: 1}})
	a.AppendChild(fn, self)
	a.AppendChild(root, fn)

	out, err := Emit(a, root, Options{})
	require.NoError(t, err)

	assert.Contains(t, out, `extern "C"`)
	assert.Contains(t, out, "typedef struct ImVec2")
	assert.Contains(t, out, "float x, y;")
	assert.Contains(t, out, "CIMGUI_API float ImVec2_Length(ImVec2* self);")
}

func TestEmitEnumFlagsInHex(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	enum := a.Alloc(&dom.EnumElement{Name: "ImGuiWindowFlags_", IsFlags: true})
	entry := a.Alloc(&dom.EnumEntry{Name: "ImGuiWindowFlags_NoTitleBar", Value: 1, Resolved: true})
	a.AppendChild(enum, entry)
	a.AppendChild(root, enum)

	out, err := Emit(a, root, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "ImGuiWindowFlags_NoTitleBar = 0x00000001,")
}

func TestEmitSkipsInternalFunction(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "ImGui_Internal_", ReturnType: &dom.Type{BaseName: "void"}, Internal: true})
	a.AppendChild(root, fn)

	out, err := Emit(a, root, Options{})
	require.NoError(t, err)
	assert.NotContains(t, out, "ImGui_Internal_")
}
