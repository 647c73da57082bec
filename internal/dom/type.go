package dom

// Type is the canonical representation of a C/C++ type: a base name, a
// qualifier list, a pointer/reference chain, array dimensions, recursive
// template arguments, and an optional function-pointer signature.
type Type struct {
	BaseName string
	Const    bool
	Volatile bool

	// Pointer is the pointer depth (e.g. "char**" has Pointer == 2).
	Pointer int
	// PointerLevelConst[i] is true when the i-th pointer level (reading
	// left to right, outermost first) is itself const, e.g. "T* const*"
	// has PointerLevelConst == []bool{true, false}.
	PointerLevelConst []bool

	// Reference marks a type that was originally "T&" in the source.
	Reference bool
	// RefConvertedToPointer is set by mod_convert_references_to_pointers
	// when a reference was rewritten to a pointer, so later stages (the
	// C++ bridge emitter) know to dereference at the call site.
	RefConvertedToPointer bool
	// ValueConvertedToPointer is set by
	// mod_convert_by_value_struct_args_to_pointers for the symmetric
	// by-value -> const-pointer conversion.
	ValueConvertedToPointer bool

	// ArrayDims holds one entry per array dimension, as the original
	// expression text (or "" for an unsized dimension, as in "T[]").
	ArrayDims []string

	// TemplateArgs holds the recursive type arguments of a template-id
	// base name (e.g. "ImVector<int>" has one TemplateArgs entry).
	TemplateArgs []*Type

	// FuncPtr is non-nil when this Type denotes a function pointer
	// (e.g. "void (*)(int, int)").
	FuncPtr *FuncPtrSignature
}

// FuncPtrSignature describes a function-pointer type's signature.
type FuncPtrSignature struct {
	ReturnType *Type
	ParamTypes []*Type
	ParamNames []string
	Variadic   bool
}

// Clone deep-copies a Type (needed so template instantiation can stamp
// out independent copies of a template's field types).
func (t *Type) Clone() *Type {
	if t == nil {
		return nil
	}
	nt := *t
	nt.PointerLevelConst = append([]bool(nil), t.PointerLevelConst...)
	nt.ArrayDims = append([]string(nil), t.ArrayDims...)
	if t.TemplateArgs != nil {
		nt.TemplateArgs = make([]*Type, len(t.TemplateArgs))
		for i, a := range t.TemplateArgs {
			nt.TemplateArgs[i] = a.Clone()
		}
	}
	if t.FuncPtr != nil {
		fp := *t.FuncPtr
		fp.ReturnType = t.FuncPtr.ReturnType.Clone()
		fp.ParamTypes = make([]*Type, len(t.FuncPtr.ParamTypes))
		for i, p := range t.FuncPtr.ParamTypes {
			fp.ParamTypes[i] = p.Clone()
		}
		fp.ParamNames = append([]string(nil), t.FuncPtr.ParamNames...)
		nt.FuncPtr = &fp
	}
	return &nt
}

// String renders the type in (approximately) C/C++ declarator order,
// used for diagnostics, disambiguation-suffix lookups and test
// assertions - not a substitute for the emitters' own declarator logic,
// which must interleave the type with a declared name.
func (t *Type) String() string {
	if t == nil {
		return "<nil type>"
	}
	s := ""
	if t.Const {
		s += "const "
	}
	if t.Volatile {
		s += "volatile "
	}
	s += t.BaseName
	if len(t.TemplateArgs) > 0 {
		s += "<"
		for i, a := range t.TemplateArgs {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		s += ">"
	}
	for i := 0; i < t.Pointer; i++ {
		s += "*"
		if i < len(t.PointerLevelConst) && t.PointerLevelConst[i] {
			s += " const"
		}
	}
	if t.Reference {
		s += "&"
	}
	for _, dim := range t.ArrayDims {
		s += "[" + dim + "]"
	}
	return s
}

// IsBasicallyVoid reports whether the type is void with no pointer
// indirection (i.e. a true void return/absence of a value).
func (t *Type) IsBasicallyVoid() bool {
	return t != nil && t.BaseName == "void" && t.Pointer == 0 && t.FuncPtr == nil
}
