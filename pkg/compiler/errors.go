package compiler

import "fmt"

// ErrorKind classifies a compilation failure by the phase that detected it.
type ErrorKind int

const (
	ErrLexical  ErrorKind = iota // unknown character, bad escape, unterminated string
	ErrSyntax                    // missing token, unparseable expression or statement
	ErrSemantic                  // redeclared or undeclared identifier
	ErrInternal                  // invariant violation inside the compiler
)

func (k ErrorKind) String() string {
	switch k {
	case ErrLexical:
		return "lexical error"
	case ErrSyntax:
		return "syntax error"
	case ErrSemantic:
		return "semantic error"
	case ErrInternal:
		return "internal error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the single error value that crosses phase boundaries. All phases
// fail on the first error; the driver prints it and exits non-zero.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func lexErrorf(format string, args ...any) error {
	return &Error{Kind: ErrLexical, Msg: fmt.Sprintf(format, args...)}
}

func syntaxErrorf(format string, args ...any) error {
	return &Error{Kind: ErrSyntax, Msg: fmt.Sprintf(format, args...)}
}

func semanticErrorf(format string, args ...any) error {
	return &Error{Kind: ErrSemantic, Msg: fmt.Sprintf(format, args...)}
}
