package dom

// HeaderFileSet is the root node grouping a main header plus zero or
// more configuration headers into a single DOM for a driver invocation.
type HeaderFileSet struct{ Base }

func (n *HeaderFileSet) Kind() Kind { return KindHeaderFileSet }
func (n *HeaderFileSet) Clone() Node {
	return &HeaderFileSet{Base: n.cloneBase()}
}

// HeaderFile is the root of one parsed header (the main header, or one
// merged-in configuration header).
type HeaderFile struct {
	Base
	OriginalFileName string
	// WrapExternC marks that the emitted C header should wrap its
	// declarations in an "#ifdef __cplusplus / extern "C" {" guard, set
	// by mod_wrap_with_extern_c.
	WrapExternC bool
}

func (n *HeaderFile) Kind() Kind { return KindHeaderFile }
func (n *HeaderFile) Clone() Node {
	return &HeaderFile{Base: n.cloneBase(), OriginalFileName: n.OriginalFileName, WrapExternC: n.WrapExternC}
}

// Include is a "#include" directive.
type Include struct {
	Base
	Path     string // without the surrounding quotes/angle brackets
	IsSystem bool   // true for <path>, false for "path"
}

func (n *Include) Kind() Kind { return KindInclude }
func (n *Include) Clone() Node {
	return &Include{Base: n.cloneBase(), Path: n.Path, IsSystem: n.IsSystem}
}

// PreprocessorConditional is a "#if"/"#ifdef"/"#ifndef" block, including
// any "#else"/"#elif" branch, with its child declarations attached
// directly (not flattened at parse time).
type PreprocessorConditional struct {
	Base
	Expr     string // the condition's text, e.g. "defined(IMGUI_HAS_IMSTR)"
	Negated  bool   // true for #ifndef
	HasElse  bool
	ElseBody []Index // children belonging to the #else branch
}

func (n *PreprocessorConditional) Kind() Kind { return KindPreprocessorConditional }
func (n *PreprocessorConditional) Clone() Node {
	return &PreprocessorConditional{
		Base:     n.cloneBase(),
		Expr:     n.Expr,
		Negated:  n.Negated,
		HasElse:  n.HasElse,
		ElseBody: append([]Index(nil), n.ElseBody...),
	}
}

// Define is a "#define", object-like or function-like.
type Define struct {
	Base
	Name            string
	Value           string
	FunctionLike    bool
	Params          []string
	ExcludeFromJSON bool // set by mod_exclude_defines_from_metadata
}

func (n *Define) Kind() Kind { return KindDefine }
func (n *Define) Clone() Node {
	return &Define{
		Base: n.cloneBase(), Name: n.Name, Value: n.Value,
		FunctionLike: n.FunctionLike, Params: append([]string(nil), n.Params...),
		ExcludeFromJSON: n.ExcludeFromJSON,
	}
}

// Pragma is a "#pragma" directive.
type Pragma struct {
	Base
	Text string
}

func (n *Pragma) Kind() Kind { return KindPragma }
func (n *Pragma) Clone() Node {
	return &Pragma{Base: n.cloneBase(), Text: n.Text}
}

// Namespace is a C++ "namespace Name { ... }" block.
type Namespace struct {
	Base
	Name string
}

func (n *Namespace) Kind() Kind { return KindNamespace }
func (n *Namespace) Clone() Node {
	return &Namespace{Base: n.cloneBase(), Name: n.Name}
}

// ClassStructUnion is a class/struct/union declaration or definition.
type ClassStructUnion struct {
	Base
	Name              string
	StructKind        StructKind
	Anonymous         bool
	ByValue           bool // tagged by mod_mark_by_value_structs
	StringView        bool // tagged as a string-view-style by-value struct (ImStr-like)
	Bases             []string
	ForwardDeclaration bool
	OriginalName      string // set when flattening renamed it (Outer_Inner)
}

func (n *ClassStructUnion) Kind() Kind { return KindClassStructUnion }
func (n *ClassStructUnion) Clone() Node {
	return &ClassStructUnion{
		Base: n.cloneBase(), Name: n.Name, StructKind: n.StructKind,
		Anonymous: n.Anonymous, ByValue: n.ByValue, StringView: n.StringView,
		Bases: append([]string(nil), n.Bases...), ForwardDeclaration: n.ForwardDeclaration,
		OriginalName: n.OriginalName,
	}
}

// EnumElement is an "enum"/"enum class" declaration.
type EnumElement struct {
	Base
	Name       string
	IsFlags    bool // set by mod_mark_flags_enums
	Underlying string
}

func (n *EnumElement) Kind() Kind { return KindEnumElement }
func (n *EnumElement) Clone() Node {
	return &EnumElement{Base: n.cloneBase(), Name: n.Name, IsFlags: n.IsFlags, Underlying: n.Underlying}
}

// EnumEntry is a single enumerator within an EnumElement.
type EnumEntry struct {
	Base
	Name             string
	ValueExpr        string // explicit source expression, "" if implicit
	Value            int64  // resolved by mod_calculate_enum_values
	HasExplicitValue bool
	Resolved         bool // true once mod_calculate_enum_values has assigned Value
	Internal         bool // name ends in "_"
	IsCount          bool // name ends in "_COUNT"
}

func (n *EnumEntry) Kind() Kind { return KindEnumEntry }
func (n *EnumEntry) Clone() Node {
	return &EnumEntry{
		Base: n.cloneBase(), Name: n.Name, ValueExpr: n.ValueExpr, Value: n.Value,
		HasExplicitValue: n.HasExplicitValue, Resolved: n.Resolved, Internal: n.Internal, IsCount: n.IsCount,
	}
}

// FieldDeclaration is a struct/class/union data member (or a file-scope
// variable declaration recognized in the same grammar production).
type FieldDeclaration struct {
	Base
	Type          *Type
	Names         []string // more than one for "int x, y;"
	BitfieldWidth string   // "" if not a bitfield
	Static        bool
	Extern        bool
	Internal      bool
}

func (n *FieldDeclaration) Kind() Kind { return KindFieldDeclaration }
func (n *FieldDeclaration) Clone() Node {
	return &FieldDeclaration{
		Base: n.cloneBase(), Type: n.Type.Clone(), Names: append([]string(nil), n.Names...),
		BitfieldWidth: n.BitfieldWidth, Static: n.Static, Extern: n.Extern, Internal: n.Internal,
	}
}

// FunctionDeclaration is a free, member, friend, operator, constructor or
// destructor declaration. Its FunctionParameter children (Kind ==
// KindFunctionParameter) carry the parameter list.
type FunctionDeclaration struct {
	Base
	ReturnType   *Type
	Name         string
	OriginalName string // the pre-flattening/pre-rename name, e.g. "Foo" before "ImGui_Foo"
	IsMember     bool
	IsConstructor bool
	IsDestructor bool
	IsOperator   bool
	IsConstexpr  bool
	IsStatic     bool
	IsVariadic   bool // has a trailing "..."
	OwningClass  string
	Access       Accessibility
	Internal     bool // tagged by mod_mark_internal_members
	HadBody      bool // had an inline/defined body before mod_remove_function_bodies
	IsDefault    bool // "= default"
	IsDeleted    bool // "= delete"
	ManualHelper bool // synthesized by mod_add_manual_helper_functions
	IsDefaultArgHelper bool // the reduced-arity companion generated by mod_generate_default_argument_functions
	IsExplodedVariadicHelper bool
	IsUnformattedHelper      bool
	SelfParamName            string // "self", set once flattened from a member function
}

func (n *FunctionDeclaration) Kind() Kind { return KindFunctionDeclaration }
func (n *FunctionDeclaration) Clone() Node {
	c := *n
	c.Base = n.cloneBase()
	c.ReturnType = n.ReturnType.Clone()
	return &c
}

// FunctionParameter is one parameter of a FunctionDeclaration.
type FunctionParameter struct {
	Base
	Type         *Type
	Name         string
	DefaultTokens []string // "" / nil if no default value
	IsVarArgs    bool      // the literal "..." parameter
}

func (n *FunctionParameter) Kind() Kind { return KindFunctionParameter }
func (n *FunctionParameter) Clone() Node {
	return &FunctionParameter{
		Base: n.cloneBase(), Type: n.Type.Clone(), Name: n.Name,
		DefaultTokens: append([]string(nil), n.DefaultTokens...), IsVarArgs: n.IsVarArgs,
	}
}

// Typedef is a "typedef" (or using-alias recognized the same way).
type Typedef struct {
	Base
	Name    string
	Aliased *Type
}

func (n *Typedef) Kind() Kind { return KindTypedef }
func (n *Typedef) Clone() Node {
	return &Typedef{Base: n.cloneBase(), Name: n.Name, Aliased: n.Aliased.Clone()}
}

// TemplateDeclaration is a "template<...> ..." declaration; its body is
// attached as a single child node (a ClassStructUnion or
// FunctionDeclaration).
type TemplateDeclaration struct {
	Base
	Params []string // e.g. ["class T"]
}

func (n *TemplateDeclaration) Kind() Kind { return KindTemplateDeclaration }
func (n *TemplateDeclaration) Clone() Node {
	return &TemplateDeclaration{Base: n.cloneBase(), Params: append([]string(nil), n.Params...)}
}

// Comment is a floating comment not yet attached to a declaration (once
// mod_attach_preceding_comments runs, comments live in the owning node's
// Base.LeadingComments/TrailingComments instead).
type Comment struct {
	Base
	Text       string
	Preceding  bool
	AttachedTo Index
}

func (n *Comment) Kind() Kind { return KindComment }
func (n *Comment) Clone() Node {
	return &Comment{Base: n.cloneBase(), Text: n.Text, Preceding: n.Preceding, AttachedTo: n.AttachedTo}
}

// BlankLines records a run of blank lines between declarations, so the
// emitter can reproduce (and the cosmetic passes can normalize) vertical
// spacing.
type BlankLines struct {
	Base
	Count int
}

func (n *BlankLines) Kind() Kind { return KindBlankLines }
func (n *BlankLines) Clone() Node {
	return &BlankLines{Base: n.cloneBase(), Count: n.Count}
}

// Code is a raw passthrough for constructs the parser doesn't model in
// detail: everything from the current position up to (and including)
// the next top-level semicolon, preserved verbatim.
type Code struct {
	Base
	Text string
}

func (n *Code) Kind() Kind { return KindCode }
func (n *Code) Clone() Node {
	return &Code{Base: n.cloneBase(), Text: n.Text}
}
