package config

import (
	"flag"
	"fmt"

	"github.com/spf13/pflag"
)

// BuildConfigFromFlags parses args (not including argv[0]) against a
// fresh FlagSet and returns the resulting Options plus any positional
// arguments left over after flag parsing. A thin cobra/cmd layer with
// flag parsing disabled can pass its raw args straight through without
// needing to know the flag surface itself.
func BuildConfigFromFlags(args []string) (*Options, []string, error) {
	fs := pflag.NewFlagSet("dearbindings", pflag.ContinueOnError)
	fs.Usage = func() { PrintUsage(fs) }

	fs.BoolP("help", "h", false, "show this help message and exit")
	output := fs.StringP("output", "o", "", "output path without extension; writes <out>.h, <out>.cpp, <out>.json (required)")
	templateDir := fs.StringP("templatedir", "t", "", "directory holding common-header-template.{h,cpp} and <srcbase>-header-template.{h,cpp}")
	noByValue := fs.Bool("nopassingstructsbyvalue", false, "convert by-value struct parameters to const-pointer parameters")
	noDefaultArgs := fs.Bool("nogeneratedefaultargfunctions", false, "suppress default-argument wrapper generation")
	explodedVarargs := fs.Bool("generateexplodedvarargsfunctions", false, "generate fixed-arity companions for printf-style variadic functions")
	unformatted := fs.Bool("generateunformattedfunctions", false, "generate a *V text-range companion for printf-style functions")
	backend := fs.Bool("backend", false, "treat src as a back-end header referencing the already-generated C binding")
	imguiIncludeDir := fs.String("imgui-include-dir", "", "directory prefix inserted into emitted #include paths")
	configIncludes := fs.StringArray("config-include", nil, "extra configuration header to merge in (repeatable)")
	exportMacro := fs.String("export-macro", "", "override the default CIMGUI_API export macro name")
	verbose := fs.BoolP("verbose", "v", false, "print a unified diff of the emitted header against the source")
	maxVarargs := fs.Int("max-exploded-varargs", 0, "cap on generated fixed-arity companions per variadic function (0 uses the built-in default)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	if fs.Changed("help") {
		fs.Usage()
		return nil, nil, flag.ErrHelp
	}

	rest := fs.Args()
	if len(rest) < 1 {
		fs.Usage()
		return nil, nil, fmt.Errorf("missing required src header argument")
	}
	if *output == "" {
		fs.Usage()
		return nil, nil, fmt.Errorf("--output is required")
	}

	opts := &Options{
		SrcPath:                          rest[0],
		OutputBase:                       *output,
		TemplateDir:                      *templateDir,
		ConfigIncludes:                   *configIncludes,
		NoPassingStructsByValue:          *noByValue,
		NoGenerateDefaultArgFunctions:    *noDefaultArgs,
		GenerateExplodedVarargsFunctions: *explodedVarargs,
		GenerateUnformattedFunctions:     *unformatted,
		Backend:                          *backend,
		ImguiIncludeDir:                  *imguiIncludeDir,
		Verbose:                          *verbose,
		ExportMacro:                      *exportMacro,
		ExplodedVariadicMaxArgs:          *maxVarargs,
	}

	return opts, rest[1:], nil
}

// PrintUsage writes fs's flag defaults to its configured output (stderr
// by default via pflag), preceded by the one-line invocation summary.
func PrintUsage(fs *pflag.FlagSet) {
	fmt.Fprintln(fs.Output(), "usage: dearbindings [flags] <src.h>")
	fmt.Fprintln(fs.Output())
	fs.PrintDefaults()
}
