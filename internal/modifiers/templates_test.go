package modifiers

import (
	"testing"

	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenTemplatesInstantiatesConcreteStruct(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})

	tmpl := a.Alloc(&dom.TemplateDeclaration{Params: []string{"typename T"}})
	vec := a.Alloc(&dom.ClassStructUnion{Name: "ImVector", StructKind: dom.StructKindStruct})
	a.AppendChild(tmpl, vec)
	field := a.Alloc(&dom.FieldDeclaration{Type: &dom.Type{BaseName: "T", Pointer: 1}, Names: []string{"Data"}})
	a.AppendChild(vec, field)
	a.AppendChild(root, tmpl)

	usage := a.Alloc(&dom.FieldDeclaration{
		Type:  &dom.Type{BaseName: "ImVector", TemplateArgs: []*dom.Type{{BaseName: "int"}}},
		Names: []string{"Items"},
	})
	a.AppendChild(root, usage)

	changed := FlattenTemplates(a, root, nil)
	require.True(t, changed)

	concreteIdx := dom.FindFirst(a, root, func(n dom.Node) bool {
		s, ok := n.(*dom.ClassStructUnion)
		return ok && s.Name == "ImVector_int"
	})
	require.NotEqual(t, dom.NoIndex, concreteIdx)
	concrete := a.Get(concreteIdx).(*dom.ClassStructUnion)
	assert.Equal(t, "ImVector", concrete.OriginalName)

	require.Len(t, a.Get(concreteIdx).Base().Children, 1)

	usageType := a.Get(usage).(*dom.FieldDeclaration).Type
	assert.Equal(t, "ImVector_int", usageType.BaseName)
	assert.Empty(t, usageType.TemplateArgs)

	tmplGone := dom.FindFirst(a, root, func(n dom.Node) bool {
		_, ok := n.(*dom.TemplateDeclaration)
		return ok
	})
	assert.Equal(t, dom.NoIndex, tmplGone)
}

func TestFlattenTemplatesReusesExistingInstantiation(t *testing.T) {
	a := dom.NewArena()
	root := a.Alloc(&dom.HeaderFile{})

	tmpl := a.Alloc(&dom.TemplateDeclaration{Params: []string{"typename T"}})
	vec := a.Alloc(&dom.ClassStructUnion{Name: "ImVector", StructKind: dom.StructKindStruct})
	a.AppendChild(tmpl, vec)
	a.AppendChild(root, tmpl)

	a.AppendChild(root, a.Alloc(&dom.ClassStructUnion{Name: "ImVector_int", StructKind: dom.StructKindStruct}))

	usage := a.Alloc(&dom.FieldDeclaration{
		Type:  &dom.Type{BaseName: "ImVector", TemplateArgs: []*dom.Type{{BaseName: "int"}}},
		Names: []string{"Items"},
	})
	a.AppendChild(root, usage)

	FlattenTemplates(a, root, nil)

	matches := dom.FindAll(a, root, func(n dom.Node) bool {
		s, ok := n.(*dom.ClassStructUnion)
		return ok && s.Name == "ImVector_int"
	})
	assert.Len(t, matches, 1)
}
