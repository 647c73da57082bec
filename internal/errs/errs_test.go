package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorMessageFormatting(t *testing.T) {
	e := New(CodeParse, "unexpected token %q", ";")
	assert.Equal(t, "parse_error: unexpected token \";\"", e.Error())
}

func TestCLIErrorWithLocationAndDetail(t *testing.T) {
	e := New(CodeParse, "unexpected token").At("imgui.h", 42).WithDetail("expected ';'")
	assert.Equal(t, "imgui.h:42: parse_error: unexpected token\n  expected ';'", e.Error())
}

func TestCLIErrorWithFileNoLine(t *testing.T) {
	e := New(CodeIO, "cannot read").At("imgui.h", 0)
	assert.Equal(t, "imgui.h: io_error: cannot read", e.Error())
}

func TestCLIErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	e := Wrap(CodeIO, cause, "write failed")
	assert.ErrorIs(t, e, cause)
}

func TestAtDoesNotMutateOriginal(t *testing.T) {
	base := New(CodeParse, "oops")
	located := base.At("a.h", 1)
	assert.Empty(t, base.File)
	assert.Equal(t, "a.h", located.File)
}
