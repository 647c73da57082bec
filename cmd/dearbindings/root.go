// Package main is the entry point for the dearbindings CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dearbindings/dearbindings-go/internal/config"
	"github.com/dearbindings/dearbindings-go/internal/driver"
	"github.com/dearbindings/dearbindings-go/internal/errs"
)

// NewRootCmd builds the dearbindings command. Flag parsing itself is
// delegated whole to config.BuildConfigFromFlags - the pflag-based
// builder covering the full surface in internal/config/cli.go - rather
// than redeclared on the cobra.Command, so cobra contributes only
// argument routing; -h/--help is one of that builder's flags too.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dearbindings <src.h> -o <out>",
		Short:         "dearbindings converts a C++ header into a C header, a C++ bridge, and JSON metadata",
		SilenceUsage:  true,
		SilenceErrors: true,
		DisableFlagParsing: true,
		RunE:          runConvert,
	}
	return root
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, _, err := config.BuildConfigFromFlags(args)
	if err != nil {
		return err
	}

	result, err := driver.Convert(*opts)
	if err != nil {
		return err
	}

	if result.Diff != "" {
		fmt.Fprint(cmd.OutOrStdout(), result.Diff)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s, %s, %s\n", result.HeaderPath, result.ImplPath, result.MetadataPath)
	return nil
}

// exitCode maps a failure to the process exit code spec.md §6 documents:
// 0 success, 1 conversion failure, 2 parameter/template error. Only a
// *errs.CLIError tagged CodeConfig (CLI flag problems and the missing
// template file case) gets 2; every other failure - lexer, parser,
// modifier, emitter, or a plain unwritable-output I/O error - gets 1.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var cliErr *errs.CLIError
	if ok := asCLIError(err, &cliErr); ok && cliErr.Code == errs.CodeConfig {
		return 2
	}
	return 1
}

func asCLIError(err error, target **errs.CLIError) bool {
	for err != nil {
		if cliErr, ok := err.(*errs.CLIError); ok {
			*target = cliErr
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
