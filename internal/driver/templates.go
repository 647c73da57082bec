package driver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dearbindings/dearbindings-go/internal/config"
	"github.com/dearbindings/dearbindings-go/internal/errs"
)

// expansionsFor builds the %TOKEN% -> replacement table used by
// insertHeaderTemplates, mirroring dear_bindings.py's insert_single_template
// expansions dictionary.
func expansionsFor(opts config.Options) map[string]string {
	return map[string]string{
		"%IMGUI_INCLUDE_DIR%":              opts.ImguiIncludeDir,
		"%OUTPUT_HEADER_NAME%":             opts.OutputHeaderName(),
		"%OUTPUT_HEADER_NAME_NO_INTERNAL%": opts.OutputHeaderNameNoInternal(),
	}
}

// insertHeaderTemplates returns the common template followed by the
// source-specific template for ext (".h" or ".cpp"), both read from
// opts.TemplateDir and token-expanded, or a CodeConfig error naming the
// missing file - the original exits with code 2 for this, never code 1,
// since a missing template is a setup problem rather than a conversion
// failure.
func insertHeaderTemplates(opts config.Options, srcFileBase, ext string) (string, error) {
	expansions := expansionsFor(opts)

	var b strings.Builder
	common, err := insertSingleTemplate(filepath.Join(opts.TemplateDir, "common-header-template"+ext), expansions)
	if err != nil {
		return "", err
	}
	b.WriteString(common)

	specific, err := insertSingleTemplate(filepath.Join(opts.TemplateDir, srcFileBase+"-header-template"+ext), expansions)
	if err != nil {
		return "", err
	}
	b.WriteString(specific)

	return b.String(), nil
}

func insertSingleTemplate(templateFile string, expansions map[string]string) (string, error) {
	data, err := os.ReadFile(templateFile)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errs.New(errs.CodeConfig, "template file %s could not be found (template file names are expected to match source file names)", templateFile).WithDetail("pass --templatedir pointing at the directory containing the common and per-header template snippets")
		}
		return "", errs.Wrap(errs.CodeIO, err, "reading template file %s", templateFile)
	}

	text := string(data)
	for before, after := range expansions {
		text = strings.ReplaceAll(text, before, after)
	}
	return text, nil
}

func srcBaseName(srcPath string) string {
	base := filepath.Base(srcPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
