// Package config defines the driver's input options and the
// command-line surface that produces them.
package config

// Options holds everything the driver needs for one conversion run,
// built either directly (library use) or via BuildConfigFromFlags (CLI
// use).
type Options struct {
	// SrcPath is the primary C++ header to convert.
	SrcPath string
	// OutputBase is the output path without extension; the driver
	// writes <OutputBase>.h, <OutputBase>.cpp, <OutputBase>.json.
	OutputBase string
	// TemplateDir holds the static common-header-template and
	// <srcbase>-header-template snippet files.
	TemplateDir string

	// ConfigIncludes lists extra configuration headers (--config-include
	// paths or glob patterns) parsed and merged into the HeaderFileSet
	// alongside the main header; the driver adds the imconfig.h sibling
	// of SrcPath on its own.
	ConfigIncludes []string

	// NoPassingStructsByValue enables the by-value -> const-pointer
	// parameter conversion (--nopassingstructsbyvalue).
	NoPassingStructsByValue bool
	// NoGenerateDefaultArgFunctions suppresses default-argument wrapper
	// generation (--nogeneratedefaultargfunctions).
	NoGenerateDefaultArgFunctions bool
	// GenerateExplodedVarargsFunctions enables the variadic-to-fixed-arity
	// companion generation (--generateexplodedvarargsfunctions).
	GenerateExplodedVarargsFunctions bool
	// GenerateUnformattedFunctions enables the text-range companion
	// generation for printf-style functions
	// (--generateunformattedfunctions).
	GenerateUnformattedFunctions bool
	// Backend treats the input as a back-end header referencing the
	// already-generated C binding rather than the original C++ header
	// (--backend). Best-effort, per the source material's own caveat.
	Backend bool

	// ImguiIncludeDir is prefixed onto emitted #include paths
	// (--imgui-include-dir).
	ImguiIncludeDir string

	// Verbose prints a unified diff of the emitted header against the
	// original source alongside normal progress output.
	Verbose bool

	// ExportMacro overrides the default CIMGUI_API export macro name.
	ExportMacro string

	// ExplodedVariadicMaxArgs bounds how many fixed-arity companions
	// AddExplodedVariadicFunctions generates per variadic function.
	ExplodedVariadicMaxArgs int
}

// OutputHeaderName returns the base name component of OutputBase (no
// directory, no extension), used for %OUTPUT_HEADER_NAME% template
// expansion.
func (o Options) OutputHeaderName() string {
	return baseName(o.OutputBase)
}

// OutputHeaderNameNoInternal is OutputHeaderName with a trailing
// "_internal" suffix stripped, used for
// %OUTPUT_HEADER_NAME_NO_INTERNAL% template expansion.
func (o Options) OutputHeaderNameNoInternal() string {
	name := o.OutputHeaderName()
	const suffix = "_internal"
	if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
		return name[:len(name)-len(suffix)]
	}
	return name
}

func baseName(path string) string {
	i := len(path) - 1
	for i >= 0 && path[i] != '/' && path[i] != '\\' {
		i--
	}
	return path[i+1:]
}
