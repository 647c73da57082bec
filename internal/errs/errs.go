// Package errs defines the structured error type surfaced by the CLI and
// the driver, modeled on the teacher's own errorfmt.go: every failure
// carries a short machine-checkable code plus a human message and an
// optional detail line, so main.go can render consistent diagnostics
// and tests can assert on Code rather than matching message text.
package errs

import "fmt"

// Code classifies a CLIError for callers that want to branch on failure
// kind instead of parsing the message.
type Code string

const (
	CodeParse        Code = "parse_error"
	CodeConfig       Code = "config_error"
	CodeModifier     Code = "modifier_error"
	CodeEmit         Code = "emit_error"
	CodeIO           Code = "io_error"
	CodeValidation   Code = "validation_error"
	CodeUnsupported  Code = "unsupported"
)

// CLIError is the error type every package in this module returns for a
// user-facing failure. Internal invariants that should never happen in
// practice are reported as plain errors (or panics, for arena
// corruption); CLIError is reserved for conditions a user can act on.
type CLIError struct {
	Code    Code
	Message string
	Detail  string

	// File/Line, when non-empty, pin the error to a source location in
	// the header being processed.
	File string
	Line int

	Cause error
}

func (e *CLIError) Error() string {
	s := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.File != "" {
		if e.Line > 0 {
			s = fmt.Sprintf("%s:%d: %s", e.File, e.Line, s)
		} else {
			s = fmt.Sprintf("%s: %s", e.File, s)
		}
	}
	if e.Detail != "" {
		s += "\n  " + e.Detail
	}
	return s
}

func (e *CLIError) Unwrap() error { return e.Cause }

// New builds a CLIError with no source location attached.
func New(code Code, message string, args ...any) *CLIError {
	return &CLIError{Code: code, Message: fmt.Sprintf(message, args...)}
}

// Wrap builds a CLIError that carries an underlying cause, for errors
// bubbling up from a lower layer (os, json, etc).
func Wrap(code Code, cause error, message string, args ...any) *CLIError {
	return &CLIError{Code: code, Message: fmt.Sprintf(message, args...), Cause: cause}
}

// At attaches a source location to an existing CLIError, returning a new
// value so callers can annotate an error as it propagates without
// mutating a shared instance.
func (e *CLIError) At(file string, line int) *CLIError {
	c := *e
	c.File = file
	c.Line = line
	return &c
}

// WithDetail attaches a secondary detail line, e.g. a suggestion or the
// offending token text.
func (e *CLIError) WithDetail(detail string) *CLIError {
	c := *e
	c.Detail = detail
	return &c
}
