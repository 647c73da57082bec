package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// ManualHelperSpec describes one hand-authored C-side helper function
// to splice into the tree (e.g. ImVector_Construct/ImVector_Destruct,
// which the generated ImVector_* bindings need but no C++ member
// function maps onto directly).
type ManualHelperSpec struct {
	Name       string
	ReturnType *dom.Type
	Params     []ManualHelperParam
	// Comment, if non-empty, becomes the synthesized function's single
	// leading comment line - the usage note the original attaches to
	// these hand-written prototypes (e.g. explaining what
	// ImVector_Construct is for, since no parsed C++ declaration
	// carries one).
	Comment string
}

type ManualHelperParam struct {
	Name string
	Type *dom.Type
}

// AddManualHelperFunctions appends one FunctionDeclaration per spec to
// root, tagged ManualHelper (recorded as is_manual in the JSON
// metadata). The C++ bridge emitter synthesizes no body for these.
func AddManualHelperFunctions(a *dom.Arena, root dom.Index, specs []ManualHelperSpec) {
	for _, spec := range specs {
		fn := &dom.FunctionDeclaration{
			Name:         spec.Name,
			ReturnType:   spec.ReturnType,
			ManualHelper: true,
		}
		if spec.Comment != "" {
			fn.LeadingComments = []string{spec.Comment}
		}
		fnIdx := a.Alloc(fn)
		for _, p := range spec.Params {
			paramIdx := a.Alloc(&dom.FunctionParameter{Name: p.Name, Type: p.Type})
			a.AppendChild(fnIdx, paramIdx)
		}
		a.AppendChild(root, fnIdx)
	}
}
