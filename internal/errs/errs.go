// Package errs defines the structured error type shared by every stage of
// the clipscript pipeline: lexer, parser, and evaluator all report failures
// as *Error values rather than panicking.
package errs

import (
	"fmt"
	"strings"

	"github.com/clipscript/clipscript/internal/token"
)

// Kind categorizes an Error.
type Kind int

const (
	Runtime Kind = iota
	Syntax
	Type
	Arity
	DivideByZero
	Exit
)

func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Type:
		return "Type"
	case Arity:
		return "Arity"
	case DivideByZero:
		return "DivideByZero"
	case Exit:
		return "Exit"
	default:
		return "Runtime"
	}
}

// Error is the single error type produced by every pipeline stage.
type Error struct {
	Kind    Kind
	Message string
	Span    *token.Span // nil when no span is available
}

// New creates an Error with the given span.
func New(kind Kind, message string, span token.Span) *Error {
	return &Error{Kind: kind, Message: message, Span: &span}
}

// Newf creates an Error with a formatted message.
func Newf(kind Kind, span token.Span, format string, args ...interface{}) *Error {
	return New(kind, fmt.Sprintf(format, args...), span)
}

// Unspanned creates an Error with no associated source span, for failures
// raised from outside the pipeline (e.g. effect handlers with no AST node
// in scope).
func Unspanned(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Unspannedf creates an Error with no span and a formatted message.
func Unspannedf(kind Kind, format string, args ...interface{}) *Error {
	return Unspanned(kind, fmt.Sprintf(format, args...))
}

func (e *Error) Error() string {
	return e.FriendlyErrorMessage()
}

// FriendlyErrorMessage renders the error in the exact form the CLI prints:
// "{Kind} Error [at line L, col C]: {message}", omitting the location
// clause when no span is attached.
func (e *Error) FriendlyErrorMessage() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(" Error ")
	if e.Span != nil {
		fmt.Fprintf(&b, "[at line %d, col %d]", e.Span.Start.Line, e.Span.Start.Column)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// IsExit reports whether this error is the graceful-termination sentinel
// raised by the exit() builtin.
func (e *Error) IsExit() bool {
	return e != nil && e.Kind == Exit
}
