package driver

import (
	"github.com/dearbindings/dearbindings-go/internal/dom"
	"github.com/dearbindings/dearbindings-go/internal/modifiers"
)

// defaultStructsToRemove mirrors dear_bindings.py's mod_remove_structs
// call: classes that need custom fiddling to make usable from C, or
// that are templated helpers for C++ `new` that C has no use for.
var defaultStructsToRemove = map[string]bool{
	"ImGuiOnceUponAFrame": true,
	"ImNewDummy":          true,
	"ImNewWrapper":        true,
	"ImBitArray":          true,
	"ImBitVector":         true,
	"ImSpanAllocator":     true,
	"ImChunkStream":       true,
	"ImGuiTextIndex":      true,
}

// defaultClassesWithAllFunctionsRemoved mirrors the three
// mod_remove_all_functions_from_classes calls: container helper types
// whose member functions aren't useful (ImVector/ImSpan) or can't be
// handled yet (ImPool's nested template functions).
var defaultClassesWithAllFunctionsRemoved = map[string]bool{
	"ImVector": true,
	"ImSpan":   true,
	"ImPool":   true,
}

// defaultFunctionsToRemove mirrors the individual mod_remove_functions
// calls: a handful of functions that are either redundant convenience
// wrappers (Value() over Text()), emit spurious C warnings when ported
// as-is (ImQsort), were mis-parsed due to an `explicit` constructor
// (ImVec2ih::ImVec2ih), or are templated internals this parser doesn't
// support instantiating (the *T functions from imgui_internal.h).
var defaultFunctionsToRemove = map[[2]string]bool{
	{"", "Value"}:                  true,
	{"", "ImQsort"}:                true,
	{"ImVec2ih", "ImVec2ih"}:       true,
	{"", "ScaleRatioFromValueT"}:   true,
	{"", "ScaleValueFromRatioT"}:   true,
	{"", "DragBehaviorT"}:          true,
	{"", "SliderBehaviorT"}:        true,
	{"", "RoundScalarWithFormatT"}: true,
	{"", "CheckboxFlagsT"}:         true,
}

// defaultByValueStructs mirrors mod_mark_by_value_structs: small,
// layout-stable types that cross the C boundary as plain values rather
// than by pointer.
var defaultByValueStructs = map[string]bool{
	"ImVec2":               true,
	"ImVec4":                true,
	"ImColor":               true,
	"ImStr":                 true,
	"ImRect":                 true,
	"ImGuiListClipperRange": true,
}

// defaultStringViewStructs mirrors mod_generate_imstr_helpers: of the
// by-value structs above, only ImStr is a two-pointer string-view type.
// GenerateStringViewHelpers only tags it; no FromCharStr-style
// construction helper is generated.
var defaultStringViewStructs = map[string]bool{
	"ImStr": true,
}

// defaultNamespacePrefixes mirrors mod_flatten_namespaces's single
// entry: everything inside namespace ImGui gets an "ImGui_" prefix once
// the namespace itself is stripped.
var defaultNamespacePrefixes = map[string]string{
	"ImGui": "ImGui_",
}

// defaultCustomTypeFudges mirrors the custom_type_fudges passed to
// mod_flatten_templates: "const ImFont**" is really the same shape as
// "ImFont* const*" once pointer constness is read correctly, but the
// parser's straightforward declarator walk produces the former
// spelling, so the template-instantiation namer is told to normalize it.
var defaultCustomTypeFudges = map[string]string{
	"const ImFont**": "ImFont* const*",
}

// defaultDisambiguationSuffixRemaps mirrors the name_suffix_remaps
// passed to mod_disambiguate_functions: friendlier suffixes than the
// type's punctuation-stripped spelling for the handful of parameter
// types common enough in the API to read awkwardly otherwise.
var defaultDisambiguationSuffixRemaps = map[string]string{
	"const char*":  "Str",
	"char*":        "Str",
	"unsigned int": "Uint",
	"unsigned int*": "UintPtr",
	"ImGuiID":      "ID",
	"const void*":  "Ptr",
	"void*":        "Ptr",
}

// defaultDisambiguationIgnore mirrors the functions_to_ignore passed to
// mod_disambiguate_functions: these look like overload clashes but are
// actually resolved by mutually exclusive preprocessor conditionals
// (IMGUI_DISABLE_FILE_FUNCTIONS-style platform variants), so forcing a
// suffix on them would be wrong.
var defaultDisambiguationIgnore = map[string]bool{
	"cImFileOpen":  true,
	"cImFileClose": true,
	"cImFileGetSize": true,
	"cImFileRead":  true,
	"cImFileWrite": true,
}

// defaultDisambiguationRenameEverything mirrors
// functions_to_rename_everything: ImGui_CheckboxFlags reads better as
// IntPtr/UIntPtr variants than as a bare name plus one suffixed sibling.
var defaultDisambiguationRenameEverything = map[string]bool{
	"ImGui_CheckboxFlags": true,
}

// defaultPostDisambiguationRenames mirrors the final mod_rename_functions
// call: cases the generic disambiguation algorithm resolves correctly
// but confusingly, fixed up by hand after the fact.
var defaultPostDisambiguationRenames = map[string]string{
	"ImGui_GetColorU32":        "ImGui_GetColorU32ImVec4",
	"ImGui_GetColorU32ImGuiCol": "ImGui_GetColorU32",
	"ImGui_GetColorU32ImGuiColEx": "ImGui_GetColorU32Ex",
	"ImGui_IsRectVisible":       "ImGui_IsRectVisibleBySize",
	"ImGui_IsRectVisibleImVec2": "ImGui_IsRectVisible",
}

// defaultSignatureRenames mirrors the two mod_rename_function_by_signature
// calls: deprecated callback-taking overloads that ordinary
// disambiguation can't separate from their replacements, keyed by the
// function name and the parameter name that identifies the old form.
type signatureRename struct {
	FunctionName string
	ParamName    string
	NewName      string
}

var defaultSignatureRenames = []signatureRename{
	{"ImGui_Combo", "old_callback", "ImGui_ComboObsolete"},
	{"ImGui_ListBox", "old_callback", "ImGui_ListBoxObsolete"},
}

// defaultDefaultArgIgnoreFunctions mirrors functions_to_ignore for
// mod_generate_default_argument_functions: functions called rarely
// enough that the reduced-arity convenience wrapper isn't worth the
// header bloat it adds. The duplicate ImGui_SaveIniSettingsToMemory
// entry present in the original ignore list (spec.md §9's Open
// Question) is de-duplicated here since a Go set can't hold it twice
// anyway.
var defaultDefaultArgIgnoreFunctions = map[string]bool{
	"ImGui_CreateContext":             true,
	"ImGui_DestroyContext":            true,
	"ImGui_ShowDemoWindow":            true,
	"ImGui_ShowMetricsWindow":         true,
	"ImGui_ShowDebugLogWindow":        true,
	"ImGui_ShowStackToolWindow":       true,
	"ImGui_ShowAboutWindow":           true,
	"ImGui_ShowStyleEditor":           true,
	"ImGui_StyleColorsDark":           true,
	"ImGui_StyleColorsLight":          true,
	"ImGui_StyleColorsClassic":        true,
	"ImGui_Begin":                     true,
	"ImGui_BeginChild":                true,
	"ImGui_BeginChildID":              true,
	"ImGui_SetNextWindowSizeConstraints": true,
	"ImGui_SetScrollHereX":            true,
	"ImGui_SetScrollHereY":            true,
	"ImGui_SetScrollFromPosX":         true,
	"ImGui_SetScrollFromPosY":         true,
	"ImGui_PushTextWrapPos":           true,
	"ImGui_ProgressBar":               true,
	"ImGui_ColorPicker4":              true,
	"ImGui_TreePushPtr":               true,
	"ImGui_BeginListBox":              true,
	"ImGui_ListBox":                   true,
	"ImGui_MenuItemBoolPtr":           true,
	"ImGui_BeginPopupModal":           true,
	"ImGui_OpenPopupOnItemClick":      true,
	"ImGui_TableGetColumnName":        true,
	"ImGui_TableGetColumnFlags":       true,
	"ImGui_TableSetBgColor":           true,
	"ImGui_GetColumnWidth":            true,
	"ImGui_GetColumnOffset":           true,
	"ImGui_BeginTabItem":              true,
	"ImGui_LogToTTY":                  true,
	"ImGui_LogToFile":                 true,
	"ImGui_LogToClipboard":            true,
	"ImGui_BeginDisabled":             true,
	"ImGui_IsMousePosValid":           true,
	"ImGui_IsMouseDragging":           true,
	"ImGui_GetMouseDragDelta":         true,
	"ImGui_CaptureKeyboardFromApp":    true,
	"ImGui_CaptureMouseFromApp":       true,
	"ImGui_LoadIniSettingsFromDisk":   true,
	"ImGui_LoadIniSettingsFromMemory": true,
	"ImGui_SaveIniSettingsToMemory":   true,
	"ImGui_SetAllocatorFunctions":     true,
	"ImGuiIO_SetKeyEventNativeDataEx": true,
	"ImGuiTextFilter_Draw":            true,
	"ImGuiTextFilter_PassFilter":      true,
	"ImGuiTextBuffer_append":          true,
	"ImGuiInputTextCallbackData_InsertChars": true,
	"ImColor_SetHSV":                  true,
	"ImColor_HSV":                     true,
	"ImGuiListClipper_Begin":          true,
	"ImDrawList_AddCircleFilled":      true,
	"ImDrawList_AddBezierCubic":       true,
	"ImDrawList_AddBezierQuadratic":   true,
	"ImDrawList_PathStroke":           true,
	"ImDrawList_PathArcTo":            true,
	"ImDrawList_PathBezierCubicCurveTo":     true,
	"ImDrawList_PathBezierQuadraticCurveTo": true,
	"ImDrawList_PathRect":             true,
	"ImDrawList_AddBezierCurve":       true,
	"ImDrawList_PathBezierCurveTo":    true,
	"ImDrawList_PushClipRect":         true,
	"ImFontGlyphRangesBuilder_AddText": true,
	"ImFont_AddRemapChar":             true,
	"ImFont_RenderText":               true,
	"ImGui_ImageButtonImTextureID":    true,
	"ImGui_ListBoxHeaderInt":          true,
	"ImGui_ListBoxHeader":             true,
	"ImGui_OpenPopupContextItem":      true,
}

// defaultDefaultArgIgnoreGlobs mirrors function_prefixes_to_ignore.
var defaultDefaultArgIgnoreGlobs = []string{
	"ImGuiStorage_*",
	"ImFontAtlas_*",
}

// defaultDefaultArgTrivialTypes/Names mirror trivial_argument_types and
// trivial_argument_names: a defaulted parameter of one of these
// shapes is considered too generic to justify skipping wrapper
// generation, so it overrides an otherwise-matching ignore entry.
var defaultDefaultArgTrivialTypes = map[string]bool{
	"ImGuiCond": true,
}

var defaultDefaultArgTrivialNames = map[string]bool{
	"flags":       true,
	"popup_flags": true,
}

// defaultUnformattedIgnore mirrors mod_add_unformatted_functions'
// functions_to_ignore: functions where an unformatted variant wouldn't
// make sense (Text already has one machine-generated per-variadic-arity
// pattern; appendf's is produced separately).
var defaultUnformattedIgnore = map[string]bool{
	"ImGui_TextV":          true,
	"ImGuiTextBuffer_appendfV": true,
}

// defaultMetadataExcludeGlobs mirrors mod_exclude_defines_from_metadata.
var defaultMetadataExcludeGlobs = []string{
	"IMGUI_IMPL_API",
	"IM_COL32_WHITE",
	"IM_COL32_BLACK",
	"IM_COL32_BLACK_TRANS",
	"ImDrawCallback_ResetRenderState",
}

// defaultTypedefsToRemove mirrors the final mod_remove_typedefs call:
// a two-parameter template typedef this parser's single-parameter
// template flattener can't instantiate.
var defaultTypedefsToRemove = []string{
	"ImBitArrayForNamedKeys",
}

// defaultManualHelpers mirrors the mod_add_manual_helper_functions call:
// ImVector_Construct/Destruct have no C++ member function to flatten
// from, since ImVector's own functions were all removed above.
// No ImStr_FromCharStr helper is added here or anywhere else.
func defaultManualHelpers() []modifiers.ManualHelperSpec {
	return []modifiers.ManualHelperSpec{
		{
			Name:       "ImVector_Construct",
			ReturnType: &dom.Type{BaseName: "void"},
			Params: []modifiers.ManualHelperParam{
				{Name: "vector", Type: &dom.Type{BaseName: "void", Pointer: 1}},
			},
			Comment: "Construct a zero-size ImVector<> (of any type). This is primarily useful when calling ImFontGlyphRangesBuilder_BuildRanges()",
		},
		{
			Name:       "ImVector_Destruct",
			ReturnType: &dom.Type{BaseName: "void"},
			Params: []modifiers.ManualHelperParam{
				{Name: "vector", Type: &dom.Type{BaseName: "void", Pointer: 1}},
			},
			Comment: "Destruct an ImVector<> (of any type). Important: Frees the vector memory but does not call destructors on contained objects (if they have them)",
		},
	}
}

const defaultExplodedVariadicMaxArgs = 7

const defaultExportMacro = "CIMGUI_API"

// defaultInternalExRenames mirrors the imgui_internal.h-only rename
// table applied when the output base name ends in "_internal": a
// handful of functions already carry an "Ex" suffix in the source
// itself, which would collide with the suffix
// GenerateDefaultArgumentFunctions assigns to their own reduced-arity
// companions, so they are renamed out of the way first.
var defaultInternalExRenames = map[string]string{
	"ImGui_BeginMenuEx":  "ImGui_BeginMenuWithIcon",
	"ImGui_MenuItemEx":   "ImGui_MenuItemWithIcon",
	"ImGui_BeginTableEx": "ImGui_BeginTableWithID",
	"ImGui_ButtonEx":     "ImGui_ButtonWithFlags",
	"ImGui_ImageButtonEx": "ImGui_ImageButtonWithFlags",
	"ImGui_InputTextEx":  "ImGui_InputTextWithHintAndSize",
}

// defaultInternalMoveOrder mirrors the imgui_internal.h-only
// mod_move_types call: template-instantiated ImVector_*/ImPool_*
// container structs end up declared in whatever order
// FlattenTemplates happened to encounter their instantiations, which
// can place one before a member type it depends on. This list is the
// corrected declaration order; the driver chains each entry after the
// one before it.
var defaultInternalMoveOrder = []string{
	"ImVector_const_charPtr",
	"ImVector_ImGuiColorMod",
	"ImVector_ImGuiContextHook",
	"ImVector_ImGuiDockNodeSettings",
	"ImVector_ImGuiDockRequest",
	"ImVector_ImGuiGroupData",
	"ImVector_ImGuiID",
	"ImVector_ImGuiInputEvent",
	"ImVector_ImGuiItemFlags",
	"ImVector_ImGuiKeyRoutingData",
	"ImVector_ImGuiListClipperData",
	"ImVector_ImGuiListClipperRange",
	"ImVector_ImGuiNavTreeNodeData",
	"ImVector_ImGuiOldColumnData",
	"ImVector_ImGuiOldColumns",
	"ImVector_ImGuiPopupData",
	"ImVector_ImGuiPtrOrIndex",
	"ImVector_ImGuiSettingsHandler",
	"ImVector_ImGuiShrinkWidthItem",
	"ImVector_ImGuiStackLevelInfo",
	"ImVector_ImGuiStyleMod",
	"ImVector_ImGuiTabBar",
	"ImVector_ImGuiTabItem",
	"ImVector_ImGuiTable",
	"ImVector_ImGuiTableColumnSortSpecs",
	"ImVector_ImGuiTableInstanceData",
	"ImVector_ImGuiTableTempData",
	"ImVector_ImGuiViewportPPtr",
	"ImVector_ImGuiWindowPtr",
	"ImVector_ImGuiWindowStackData",
	"ImVector_unsigned_char",
	"ImPool_ImGuiTable",
	"ImPool_ImGuiTabBar",
}

// internalMoveChain turns defaultInternalMoveOrder into the
// name-to-predecessor map MoveTypes expects, chaining each entry after
// the one before it so their relative order survives regardless of
// where template flattening happened to place them.
func internalMoveChain() map[string]string {
	moves := make(map[string]string, len(defaultInternalMoveOrder)-1)
	for i := 1; i < len(defaultInternalMoveOrder); i++ {
		moves[defaultInternalMoveOrder[i]] = defaultInternalMoveOrder[i-1]
	}
	return moves
}
