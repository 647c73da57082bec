package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfigFromFlagsParsesCoreFlags(t *testing.T) {
	opts, rest, err := BuildConfigFromFlags([]string{
		"imgui.h",
		"-o", "out/cimgui",
		"--nopassingstructsbyvalue",
		"--generateexplodedvarargsfunctions",
		"--config-include", "a.h",
		"--config-include", "b.h",
	})
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, "imgui.h", opts.SrcPath)
	assert.Equal(t, "out/cimgui", opts.OutputBase)
	assert.True(t, opts.NoPassingStructsByValue)
	assert.True(t, opts.GenerateExplodedVarargsFunctions)
	assert.Equal(t, []string{"a.h", "b.h"}, opts.ConfigIncludes)
}

func TestBuildConfigFromFlagsRequiresOutput(t *testing.T) {
	_, _, err := BuildConfigFromFlags([]string{"imgui.h"})
	require.Error(t, err)
}

func TestBuildConfigFromFlagsRequiresSrc(t *testing.T) {
	_, _, err := BuildConfigFromFlags([]string{"-o", "out/cimgui"})
	require.Error(t, err)
}

func TestOutputHeaderNameHelpers(t *testing.T) {
	opts := Options{OutputBase: "out/cimgui_internal"}
	assert.Equal(t, "cimgui_internal", opts.OutputHeaderName())
	assert.Equal(t, "cimgui", opts.OutputHeaderNameNoInternal())
}
