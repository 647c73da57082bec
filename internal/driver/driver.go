// Package driver wires internal/cppparser, internal/modifiers, and
// internal/emitters together into the one end-to-end conversion
// dear_bindings.py's convert_header() performs: parse the main header
// and its configuration includes into a shared DOM, run the fixed
// ordered pipeline of tree rewrites, then emit the C header, the C++
// bridge, and the JSON metadata. internal/driver is the only caller
// that knows the pipeline's fixed order - every modifier it calls is a
// narrow, order-agnostic function over an arena and a root index.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/dearbindings/dearbindings-go/internal/config"
	"github.com/dearbindings/dearbindings-go/internal/cppparser"
	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/emitters/cheader"
	"github.com/dearbindings/dearbindings-go/internal/emitters/cppimpl"
	"github.com/dearbindings/dearbindings-go/internal/emitters/jsonmeta"
	"github.com/dearbindings/dearbindings-go/internal/errs"
	"github.com/dearbindings/dearbindings-go/internal/iohelpers"
	"github.com/dearbindings/dearbindings-go/internal/modifiers"
)

// Result reports what Convert wrote, for callers (mainly cmd/dearbindings)
// that want to print a summary after a successful run.
type Result struct {
	HeaderPath   string
	ImplPath     string
	MetadataPath string
	Diff         string // non-empty only when opts.Verbose and the header changed
}

// Convert runs one full header-to-bindings conversion as described by
// opts, writing the three output files atomically in header/impl/metadata
// order (spec.md §5: on any failure none of them is considered valid).
// Every returned error is an *errs.CLIError so callers can choose an
// exit code from its Code.
func Convert(opts config.Options) (*Result, error) {
	fmt.Printf("Parsing %s\n", opts.SrcPath)

	srcData, err := os.ReadFile(opts.SrcPath)
	if err != nil {
		return nil, errs.Wrap(errs.CodeIO, err, "reading %s", opts.SrcPath)
	}

	arena := dom.NewArena()
	fileSet := arena.Alloc(&dom.HeaderFileSet{})

	configPaths, err := resolveConfigIncludes(opts)
	if err != nil {
		return nil, err
	}
	for _, path := range configPaths {
		fmt.Printf("Parsing %s\n", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.Wrap(errs.CodeIO, err, "reading config include %s", path)
		}
		idx, err := cppparser.ParseInto(arena, path, string(data))
		if err != nil {
			return nil, err
		}
		arena.AppendChild(fileSet, idx)
	}

	mainIdx, err := cppparser.ParseInto(arena, opts.SrcPath, string(srcData))
	if err != nil {
		return nil, err
	}
	arena.AppendChild(fileSet, mainIdx)

	isInternal := strings.HasSuffix(filepath.Base(opts.OutputBase), "_internal")

	if err := dom.ValidateHierarchy(arena, []dom.Index{fileSet}); err != nil {
		return nil, errs.Wrap(errs.CodeValidation, err, "validating parsed DOM")
	}

	fmt.Println("Storing unmodified DOM")
	dom.SaveUnmodifiedClones(arena, []dom.Index{fileSet})

	fmt.Println("Applying modifiers")
	if err := runModifiers(arena, fileSet, mainIdx, opts, isInternal); err != nil {
		return nil, err
	}

	if err := dom.ValidateHierarchy(arena, []dom.Index{fileSet}); err != nil {
		return nil, errs.Wrap(errs.CodeValidation, err, "validating modified DOM")
	}

	exportMacro := opts.ExportMacro
	if exportMacro == "" {
		exportMacro = defaultExportMacro
	}

	headerSrc, err := cheader.Emit(arena, mainIdx, cheader.Options{ExportMacro: exportMacro})
	if err != nil {
		return nil, errs.Wrap(errs.CodeEmit, err, "emitting C header")
	}

	implSrc, err := cppimpl.Emit(arena, mainIdx, cppimpl.Options{
		OriginalHeaderInclude: filepath.Base(opts.SrcPath),
		ExportMacro:           exportMacro,
	})
	if err != nil {
		return nil, errs.Wrap(errs.CodeEmit, err, "emitting C++ implementation")
	}

	metaSrc, err := jsonmeta.Emit(arena, fileSet)
	if err != nil {
		return nil, errs.Wrap(errs.CodeEmit, err, "emitting JSON metadata")
	}

	if opts.TemplateDir != "" {
		headerTemplate, err := insertHeaderTemplates(opts, srcBaseName(opts.SrcPath), ".h")
		if err != nil {
			return nil, err
		}
		implTemplate, err := insertHeaderTemplates(opts, srcBaseName(opts.SrcPath), ".cpp")
		if err != nil {
			return nil, err
		}
		headerSrc = headerTemplate + headerSrc
		implSrc = implTemplate + implSrc
	}

	result := &Result{
		HeaderPath:   opts.OutputBase + ".h",
		ImplPath:     opts.OutputBase + ".cpp",
		MetadataPath: opts.OutputBase + ".json",
	}

	if opts.Verbose {
		result.Diff = unifiedDiff(string(srcData), headerSrc, opts.SrcPath)
	}

	fmt.Printf("Writing output to %s[.h/.cpp/.json]\n", opts.OutputBase)

	if err := iohelpers.WriteFileAtomic(result.HeaderPath, []byte(headerSrc), 0o644, false); err != nil {
		return nil, errs.Wrap(errs.CodeIO, err, "writing %s", result.HeaderPath)
	}
	if err := iohelpers.WriteFileAtomic(result.ImplPath, []byte(implSrc), 0o644, false); err != nil {
		return nil, errs.Wrap(errs.CodeIO, err, "writing %s", result.ImplPath)
	}
	if err := iohelpers.WriteFileAtomic(result.MetadataPath, []byte(metaSrc), 0o644, false); err != nil {
		return nil, errs.Wrap(errs.CodeIO, err, "writing %s", result.MetadataPath)
	}

	return result, nil
}

// runModifiers applies the fixed pipeline of tree rewrites in the order
// dear_bindings.py's convert_header() applies them. Passes gated by a
// config flag are skipped outright rather than called with a no-op
// argument, matching the original's own "if flag:" structure.
func runModifiers(a *dom.Arena, fileSet, mainIdx dom.Index, opts config.Options, isInternal bool) error {
	if !opts.Backend {
		modifiers.AddStandardIncludes(a, mainIdx)
		modifiers.RemoveUnneededIncludes(a, mainIdx)
	} else {
		modifiers.RewriteIncludeForBackend(a, mainIdx)
		modifiers.AddBackendForwardDeclaration(a, mainIdx)
	}

	modifiers.AttachPrecedingComments(a, fileSet)
	modifiers.RemoveFunctionBodies(a, fileSet)
	modifiers.AssignAnonymousTypeNames(a, fileSet)

	modifiers.RemoveStructs(a, fileSet, defaultStructsToRemove)
	modifiers.RemoveAllFunctionsOfClass(a, fileSet, defaultClassesWithAllFunctionsRemoved)
	modifiers.RemoveFunctions(a, fileSet, defaultFunctionsToRemove)

	modifiers.AddPrefixToLooseFunctions(a, fileSet, "c")

	if !opts.Backend {
		modifiers.AddManualHelperFunctions(a, mainIdx, defaultManualHelpers())
	}
	modifiers.AddFunctionComment(a, fileSet, "ImFontGlyphRangesBuilder_BuildRanges",
		"(ImVector_Construct()/ImVector_Destruct() can be used to safely construct out_ranges)")

	modifiers.RemoveOperators(a, fileSet)
	modifiers.RemoveHeapConstructorDestructor(a, fileSet, defaultClassesWithAllFunctionsRemoved)
	modifiers.ConvertReferencesToPointers(a, fileSet)
	if opts.NoPassingStructsByValue {
		modifiers.ConvertByValueStructArgsToPointers(a, fileSet, defaultByValueStructs)
	}

	modifiers.FlattenConditionals(a, fileSet, "IM_VEC2_CLASS_EXTRA", false)
	modifiers.FlattenConditionals(a, fileSet, "IM_VEC4_CLASS_EXTRA", false)
	modifiers.FlattenNamespaces(a, fileSet, defaultNamespacePrefixes)
	modifiers.FlattenNestedClasses(a, fileSet)

	for pass := 0; pass < 2; pass++ {
		if !modifiers.FlattenTemplates(a, fileSet, defaultCustomTypeFudges) {
			break
		}
	}

	modifiers.MarkByValueStructs(a, fileSet, defaultByValueStructs)
	modifiers.MarkInternalMembers(a, fileSet)
	modifiers.FlattenClassFunctions(a, fileSet)
	modifiers.RemoveNestedTypedefs(a, fileSet)
	modifiers.RemoveStaticFields(a, fileSet)
	modifiers.RemoveExternFields(a, fileSet)
	modifiers.RemoveConstexpr(a, fileSet)
	modifiers.GenerateStringViewHelpers(a, fileSet, defaultStringViewStructs)
	modifiers.RemoveEnumForwardDeclarations(a, fileSet)
	if err := modifiers.CalculateEnumValues(a, fileSet); err != nil {
		return err
	}
	modifiers.MarkFlagsEnums(a, fileSet, []string{"Flags", "Flags_"})

	for _, rn := range defaultSignatureRenames {
		renameFunctionHavingParam(a, fileSet, rn.FunctionName, rn.ParamName, rn.NewName)
	}

	if !opts.NoGenerateDefaultArgFunctions {
		modifiers.GenerateDefaultArgumentFunctions(a, fileSet, modifiers.DefaultArgOptions{
			FunctionsToIgnore:    defaultDefaultArgIgnoreFunctions,
			FunctionPrefixGlobs:  defaultDefaultArgIgnoreGlobs,
			TrivialArgumentTypes: defaultDefaultArgTrivialTypes,
			TrivialArgumentNames: defaultDefaultArgTrivialNames,
		})
	}

	if isInternal {
		modifiers.RenameFunctions(a, mainIdx, defaultInternalExRenames)
	}

	modifiers.DisambiguateFunctions(a, fileSet, modifiers.DisambiguateOptions{
		NameSuffixRemaps:            defaultDisambiguationSuffixRemaps,
		FunctionsToIgnore:           defaultDisambiguationIgnore,
		FunctionsToRenameEverything: defaultDisambiguationRenameEverything,
	})

	modifiers.RenameFunctions(a, fileSet, defaultPostDisambiguationRenames)

	if opts.GenerateExplodedVarargsFunctions {
		maxArgs := opts.ExplodedVariadicMaxArgs
		if maxArgs == 0 {
			maxArgs = defaultExplodedVariadicMaxArgs
		}
		modifiers.AddExplodedVariadicFunctions(a, fileSet, maxArgs)
	}
	if opts.GenerateUnformattedFunctions {
		modifiers.AddUnformattedFunctions(a, fileSet, unformattedTargets(a, fileSet))
	}

	if isInternal {
		modifiers.MoveTypes(a, mainIdx, internalMoveChain())
	}

	modifiers.RemoveTypedefs(a, fileSet, defaultTypedefsToRemove)

	exportMacro := opts.ExportMacro
	if exportMacro == "" {
		exportMacro = defaultExportMacro
	}
	modifiers.AddExportMacro(a, fileSet, exportMacro)

	modifiers.ForwardDeclareStructs(a, mainIdx, nil)
	modifiers.WrapWithExternC(a, []dom.Index{mainIdx})

	modifiers.RemoveEmptyConditionals(a, fileSet)
	modifiers.MergeBlankLines(a, fileSet)
	modifiers.TrimBlankLines(a, fileSet)

	modifiers.ExcludeDefinesFromMetadata(a, fileSet, func(name string) bool {
		for _, glob := range defaultMetadataExcludeGlobs {
			if ok, _ := doublestar.Match(glob, name); ok {
				return true
			}
		}
		return false
	})

	return nil
}

// renameFunctionHavingParam renames the function named oldName to
// newName, but only if it has a parameter named paramName - the
// callback-taking deprecated overload is identified by that parameter's
// presence, since by the time this runs its sibling replacement already
// holds the bare name.
func renameFunctionHavingParam(a *dom.Arena, root dom.Index, oldName, paramName, newName string) {
	dom.Walk(a, root, func(idx dom.Index) bool {
		fn, ok := a.Get(idx).(*dom.FunctionDeclaration)
		if !ok || fn.Name != oldName {
			return true
		}
		for _, c := range fn.Base().Children {
			if p, ok := a.Get(c).(*dom.FunctionParameter); ok && p.Name == paramName {
				fn.Name = newName
				break
			}
		}
		return true
	})
}

// unformattedTargets collects every "V"-suffixed function name not in
// the ignore set, mirroring mod_add_unformatted_functions'
// functions_to_ignore keyword argument against this repo's
// allow-list-shaped AddUnformattedFunctions.
func unformattedTargets(a *dom.Arena, root dom.Index) map[string]bool {
	targets := map[string]bool{}
	dom.Walk(a, root, func(idx dom.Index) bool {
		fn, ok := a.Get(idx).(*dom.FunctionDeclaration)
		if ok && strings.HasSuffix(fn.Name, "V") && !defaultUnformattedIgnore[fn.Name] {
			targets[fn.Name] = true
		}
		return true
	})
	return targets
}

// resolveConfigIncludes expands opts.ConfigIncludes (literal paths or
// doublestar glob patterns) and, tolerant of it not existing, adds the
// implicit imconfig.h sibling of the main source file - matching
// ImGui's own convention of a user-supplied imconfig.h living next to
// imgui.h.
func resolveConfigIncludes(opts config.Options) ([]string, error) {
	var paths []string

	sibling := filepath.Join(filepath.Dir(opts.SrcPath), "imconfig.h")
	if _, err := os.Stat(sibling); err == nil {
		paths = append(paths, sibling)
	}

	for _, pattern := range opts.ConfigIncludes {
		if !strings.ContainsAny(pattern, "*?[{") {
			if _, err := os.Stat(pattern); err != nil {
				return nil, errs.Wrap(errs.CodeConfig, err, "config include %s", pattern)
			}
			paths = append(paths, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errs.Wrap(errs.CodeConfig, err, "resolving config include pattern %s", pattern)
		}
		paths = append(paths, matches...)
	}

	return paths, nil
}

func unifiedDiff(original, modified, filename string) string {
	if original == modified {
		return ""
	}
	d := difflib.UnifiedDiff{
		A:        difflib.SplitLines(original),
		B:        difflib.SplitLines(modified),
		FromFile: filename,
		ToFile:   filename + " (converted)",
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(d)
	if err != nil {
		return fmt.Sprintf("(diff error: %v)", err)
	}
	return text
}
