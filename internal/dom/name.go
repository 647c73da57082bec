package dom

// Name returns the identifier a node declares, or "" for node kinds that
// don't declare one (comments, blank-line runs, raw code, conditionals).
func Name(n Node) string {
	switch t := n.(type) {
	case *HeaderFile:
		return t.OriginalFileName
	case *Include:
		return t.Path
	case *Define:
		return t.Name
	case *Namespace:
		return t.Name
	case *ClassStructUnion:
		return t.Name
	case *EnumElement:
		return t.Name
	case *EnumEntry:
		return t.Name
	case *FieldDeclaration:
		if len(t.Names) > 0 {
			return t.Names[0]
		}
		return ""
	case *FunctionDeclaration:
		return t.Name
	case *FunctionParameter:
		return t.Name
	case *Typedef:
		return t.Name
	default:
		return ""
	}
}

// OriginalName returns the pre-modifier identifier for nodes that track
// one explicitly (functions renamed by flattening/disambiguation,
// classes renamed by nested-class flattening), falling back to the
// node's unmodified clone, and finally to its current Name.
func OriginalName(n Node) string {
	switch t := n.(type) {
	case *FunctionDeclaration:
		if t.OriginalName != "" {
			return t.OriginalName
		}
	case *ClassStructUnion:
		if t.OriginalName != "" {
			return t.OriginalName
		}
	}
	if clone := n.Base().Clone; clone != nil {
		return Name(clone)
	}
	return Name(n)
}

// SetName assigns a node's declared identifier, used by rename-style
// modifiers. It is a no-op for kinds with no single name.
func SetName(n Node, name string) {
	switch t := n.(type) {
	case *Namespace:
		t.Name = name
	case *ClassStructUnion:
		t.Name = name
	case *EnumElement:
		t.Name = name
	case *EnumEntry:
		t.Name = name
	case *FieldDeclaration:
		if len(t.Names) > 0 {
			t.Names[0] = name
		}
	case *FunctionDeclaration:
		t.Name = name
	case *FunctionParameter:
		t.Name = name
	case *Typedef:
		t.Name = name
	case *Define:
		t.Name = name
	}
}
