package modifiers

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
)

func TestDisambiguateFunctionsRenamesCollidingOverloads(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	f1 := a.Alloc(&dom.FunctionDeclaration{Name: "PushStyleVar", ReturnType: &dom.Type{BaseName: "void"}})
	p1 := a.Alloc(&dom.FunctionParameter{Name: "v", Type: &dom.Type{BaseName: "float"}})
	a.AppendChild(f1, p1)
	f2 := a.Alloc(&dom.FunctionDeclaration{Name: "PushStyleVar", ReturnType: &dom.Type{BaseName: "void"}})
	p2 := a.Alloc(&dom.FunctionParameter{Name: "v", Type: &dom.Type{BaseName: "ImVec2"}})
	a.AppendChild(f2, p2)
	a.AppendChild(root, f1)
	a.AppendChild(root, f2)

	DisambiguateFunctions(a, root, DisambiguateOptions{})

	assert.Equal(t, "PushStyleVar", a.Get(f1).(*dom.FunctionDeclaration).Name)
	assert.Equal(t, "PushStyleVar_ImVec2", a.Get(f2).(*dom.FunctionDeclaration).Name)
}

func TestDisambiguateFunctionsUsesSuffixRemapsAndIgnoreSet(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	f1 := a.Alloc(&dom.FunctionDeclaration{Name: "Baz", ReturnType: &dom.Type{BaseName: "void"}})
	p1 := a.Alloc(&dom.FunctionParameter{Name: "s", Type: &dom.Type{BaseName: "char", Pointer: 1, Const: true}})
	a.AppendChild(f1, p1)
	f2 := a.Alloc(&dom.FunctionDeclaration{Name: "Baz", ReturnType: &dom.Type{BaseName: "void"}})
	p2 := a.Alloc(&dom.FunctionParameter{Name: "v", Type: &dom.Type{BaseName: "int"}})
	a.AppendChild(f2, p2)
	a.AppendChild(root, f1)
	a.AppendChild(root, f2)

	ignored := a.Alloc(&dom.FunctionDeclaration{Name: "cImFileOpen"})
	ignored2 := a.Alloc(&dom.FunctionDeclaration{Name: "cImFileOpen"})
	a.AppendChild(root, ignored)
	a.AppendChild(root, ignored2)

	DisambiguateFunctions(a, root, DisambiguateOptions{
		NameSuffixRemaps:  map[string]string{"const char*": "Str", "int": "Int"},
		FunctionsToIgnore: map[string]bool{"cImFileOpen": true},
	})

	assert.Equal(t, "Baz_Str", a.Get(f1).(*dom.FunctionDeclaration).Name)
	assert.Equal(t, "Baz_Int", a.Get(f2).(*dom.FunctionDeclaration).Name)
	assert.Equal(t, "cImFileOpen", a.Get(ignored).(*dom.FunctionDeclaration).Name)
	assert.Equal(t, "cImFileOpen", a.Get(ignored2).(*dom.FunctionDeclaration).Name)
}

func TestRenameFunctionsAppliesExplicitTable(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})
	fn := a.Alloc(&dom.FunctionDeclaration{Name: "ImVector_ImVector"})
	a.AppendChild(root, fn)

	RenameFunctions(a, root, map[string]string{"ImVector_ImVector": "ImVector_construct"})

	assert.Equal(t, "ImVector_construct", a.Get(fn).(*dom.FunctionDeclaration).Name)
}
