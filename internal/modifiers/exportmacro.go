package modifiers

import "github.com/dearbindings/dearbindings-go/internal/dom"

// exportMacroDefault is the export macro name AddExportMacro uses when
// none is configured.
const exportMacroDefault = "CIMGUI_API"

// AddExportMacro renames any "IMGUI_API" macro definition carried over
// from the original header to the configured export macro name
// (default CIMGUI_API). The emitter prefixes every free function
// declaration with this name directly from config; this pass only has
// to keep the macro's own #define in sync for headers that define it
// themselves rather than pull it in from a project-wide config header.
func AddExportMacro(a *dom.Arena, root dom.Index, macroName string) {
	if macroName == "" {
		macroName = exportMacroDefault
	}
	dom.Walk(a, root, func(idx dom.Index) bool {
		if def, ok := a.Get(idx).(*dom.Define); ok && def.Name == "IMGUI_API" {
			def.Name = macroName
		}
		return true
	})
}
