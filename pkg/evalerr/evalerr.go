// Package evalerr defines the evaluator's single tagged error type,
// modeled on the teacher's types.WorkflowError: a message plus a small,
// closed tag set that callers can switch on instead of string-matching.
package evalerr

import "fmt"

// Kind is the closed taxonomy of evaluation failures from spec §7.
type Kind string

const (
	KindUndefinedMixin          Kind = "undefined_mixin"
	KindUnboundVariable         Kind = "unbound_variable"
	KindUnknownOperator         Kind = "unknown_comparison_operator"
	KindUnknownKeywordParameter Kind = "unknown_keyword_parameter"
	KindTooManyPositionalArgs   Kind = "too_many_positional_arguments"
	KindColorAlphaMismatch      Kind = "color_alpha_mismatch"
)

// Error is the evaluator's single error type. Every instance carries the
// "evaluation" stage tag from spec §6.2; Stage is kept as a field (rather
// than hardcoded in Error()) so a future collaborator stage could reuse
// the same shape without widening the public API.
type Error struct {
	Stage   string
	Path    string
	Line    int
	Message string
	Kind    Kind
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s:%d: %s error: %s", e.Path, e.Line, e.Stage, e.Message)
	}
	return fmt.Sprintf("line %d: %s error: %s", e.Line, e.Stage, e.Message)
}

// HasKind reports whether err is an *Error of the given kind, mirroring
// WorkflowError.HasTag.
func HasKind(err error, k Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == k
}

// New builds an evaluation error, unquoting path the way throw_eval_error
// does in the original source before the error is ever constructed, so
// every call site benefits without repeating the normalization.
func New(kind Kind, path string, line int, message string) *Error {
	return &Error{
		Stage:   "evaluation",
		Path:    unquotePath(path),
		Line:    line,
		Message: message,
		Kind:    kind,
	}
}

func unquotePath(path string) string {
	if len(path) >= 2 {
		first, last := path[0], path[len(path)-1]
		if (first == '"' || first == '\'') && first == last {
			return path[1 : len(path)-1]
		}
	}
	return path
}
