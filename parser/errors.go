/*
 * Error reporting with PostgreSQL-compatible messages and accurate source
 * positions. The primary message format follows scanner_yyerror: the
 * offending text is quoted after "at or near", and errors at end of input
 * say so instead.
 */

package parser

import (
	"fmt"

	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// ErrorKind categorizes parse failures.
type ErrorKind int

const (
	// LexError is an error in the character stream: unterminated string or
	// comment, malformed numeric literal, stray character.
	LexError ErrorKind = iota

	// SyntaxError is a well-formed token stream that the grammar rejects.
	SyntaxError

	// DepthLimitExceeded means expression or statement nesting went past
	// the configured maximum.
	DepthLimitExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case SyntaxError:
		return "syntax error"
	case DepthLimitExceeded:
		return "depth limit exceeded"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is the error type returned by all parsing entry points.
type ParseError struct {
	Kind     ErrorKind
	Message  string       // primary message, e.g. "syntax error"
	Near     string       // offending source text, empty at EOF
	AtEOF    bool         // error occurred at end of input
	Position ast.Position // 1-based line/column plus byte offset
}

// Error implements the error interface with PostgreSQL-compatible formatting.
func (e *ParseError) Error() string {
	switch {
	case e.AtEOF:
		return fmt.Sprintf("%s at end of input (line %d, column %d)",
			e.Message, e.Position.Line, e.Position.Column)
	case e.Near != "":
		return fmt.Sprintf("%s at or near %q (line %d, column %d)",
			e.Message, e.Near, e.Position.Line, e.Position.Column)
	default:
		return fmt.Sprintf("%s (line %d, column %d)",
			e.Message, e.Position.Line, e.Position.Column)
	}
}

// lexError builds a LexError at the given position.
func lexError(msg, near string, pos ast.Position) *ParseError {
	return &ParseError{Kind: LexError, Message: msg, Near: near, Position: pos}
}

// lexErrorAtEOF builds a LexError for input that ended inside a construct.
func lexErrorAtEOF(msg string, pos ast.Position) *ParseError {
	return &ParseError{Kind: LexError, Message: msg, AtEOF: true, Position: pos}
}

// syntaxError builds the standard "syntax error at or near" for a token.
func syntaxError(tok Token) *ParseError {
	if tok.Type == EOF {
		return &ParseError{Kind: SyntaxError, Message: "syntax error", AtEOF: true, Position: tok.Span.Start}
	}
	return &ParseError{Kind: SyntaxError, Message: "syntax error", Near: tok.Text, Position: tok.Span.Start}
}

// syntaxErrorf builds a SyntaxError with a specific message, still locating
// it at the given token.
func syntaxErrorf(tok Token, format string, args ...any) *ParseError {
	e := syntaxError(tok)
	e.Message = fmt.Sprintf(format, args...)
	return e
}

// depthError reports that nesting exceeded the configured limit.
func depthError(tok Token) *ParseError {
	return &ParseError{
		Kind:     DepthLimitExceeded,
		Message:  "statement too complex: nesting depth exceeds maximum",
		Near:     tok.Text,
		AtEOF:    tok.Type == EOF,
		Position: tok.Span.Start,
	}
}
