package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lexAll drains the lexer, excluding the EOF token.
func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	lex := NewLexer(input)
	var toks []Token
	for {
		tok, err := lex.NextToken()
		require.NoError(t, err)
		if tok.Type == EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestLexerBasicTokens(t *testing.T) {
	tests := []struct {
		name  string
		input string
		types []TokenType
	}{
		{
			name:  "keywords and identifiers",
			input: "SELECT id FROM users",
			types: []TokenType{SELECT, IDENT, FROM, IDENT},
		},
		{
			name:  "punctuation",
			input: "(a, b);",
			types: []TokenType{TokenType('('), IDENT, TokenType(','), IDENT, TokenType(')'), TokenType(';')},
		},
		{
			name:  "typecast and named params",
			input: "x::int4 := y",
			types: []TokenType{IDENT, TYPECAST, IDENT, COLON_EQUALS, IDENT},
		},
		{
			name:  "multi-char operators",
			input: "a <= b >= c <> d != e => f",
			types: []TokenType{IDENT, LESS_EQUALS, IDENT, GREATER_EQUALS, IDENT, NOT_EQUALS, IDENT, NOT_EQUALS, IDENT, EQUALS_GREATER, IDENT},
		},
		{
			name:  "numeric literals",
			input: "1 3.14 .5 2e10",
			types: []TokenType{ICONST, FCONST, FCONST, FCONST},
		},
		{
			name:  "string kinds",
			input: "'a' e'b' b'101' x'1f'",
			types: []TokenType{SCONST, SCONST, BCONST, XCONST},
		},
		{
			name:  "comments are skipped",
			input: "1 -- line\n /* block /* nested */ */ 2",
			types: []TokenType{ICONST, ICONST},
		},
		{
			name:  "positional parameter",
			input: "$1",
			types: []TokenType{PARAM},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.input)
			got := make([]TokenType, len(toks))
			for i, tok := range toks {
				got[i] = tok.Type
			}
			assert.Equal(t, tt.types, got)
		})
	}
}

func TestLexerIdentifierFolding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		typ   TokenType
		value string
	}{
		{"uppercase folds", "FooBar", IDENT, "foobar"},
		{"underscore kept", "_x1$", IDENT, "_x1$"},
		{"quoted keeps case", `"FooBar"`, IDENT, "FooBar"},
		{"quoted escaped quote", `"a""b"`, IDENT, `a"b`},
		{"keyword is not an IDENT", "select", SELECT, "select"},
		{"quoted keyword stays identifier", `"select"`, IDENT, "select"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.input)
			require.Len(t, toks, 1)
			assert.Equal(t, tt.typ, toks[0].Type)
			assert.Equal(t, tt.value, toks[0].Value.Str)
		})
	}
}

func TestLexerNumbers(t *testing.T) {
	t.Run("integer value", func(t *testing.T) {
		toks := lexAll(t, "12345")
		require.Len(t, toks, 1)
		assert.Equal(t, ICONST, toks[0].Type)
		assert.Equal(t, int64(12345), toks[0].Value.Ival)
	})

	t.Run("float keeps lexeme", func(t *testing.T) {
		toks := lexAll(t, "3.250")
		require.Len(t, toks, 1)
		assert.Equal(t, FCONST, toks[0].Type)
		assert.Equal(t, "3.250", toks[0].Value.Str)
	})

	t.Run("trailing junk is rejected", func(t *testing.T) {
		lex := NewLexer("123abc")
		_, err := lex.NextToken()
		require.Error(t, err)
		perr := requireParseError(t, err)
		assert.Equal(t, LexError, perr.Kind)
		assert.Contains(t, perr.Message, "trailing junk")
	})
}

func TestLexerStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
	}{
		{"plain", "'hello'", "hello"},
		{"doubled quote", "'it''s'", "it's"},
		{"backslash is literal", `'a\nb'`, `a\nb`},
		{"extended escape", `e'a\nb'`, "a\nb"},
		{"extended hex escape", `e'\x41'`, "A"},
		{"extended unicode escape", `e'A'`, "A"},
		{"adjacent literals concatenate", "'foo'\n'bar'", "foobar"},
		{"dollar quoted", "$$abc$$", "abc"},
		{"tagged dollar quoted", "$tag$a$b$tag$", "a$b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := lexAll(t, tt.input)
			require.Len(t, toks, 1)
			assert.Equal(t, SCONST, toks[0].Type)
			assert.Equal(t, tt.value, toks[0].Value.Str)
		})
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"unterminated string", "'abc", "unterminated quoted string"},
		{"unterminated identifier", `"abc`, "unterminated quoted identifier"},
		{"empty delimited identifier", `""`, "zero-length delimited identifier"},
		{"unterminated block comment", "/* abc", "unterminated /* comment"},
		{"unterminated dollar string", "$$abc", "unterminated dollar-quoted string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lex := NewLexer(tt.input)
			var err error
			for err == nil {
				var tok Token
				tok, err = lex.NextToken()
				if err == nil && tok.Type == EOF {
					break
				}
			}
			require.Error(t, err)
			perr := requireParseError(t, err)
			assert.Equal(t, LexError, perr.Kind)
			assert.Contains(t, perr.Message, tt.message)
		})
	}
}

func TestLexerSpans(t *testing.T) {
	toks := lexAll(t, "SELECT\n  id")
	require.Len(t, toks, 2)

	assert.Equal(t, 1, toks[0].Span.Start.Line)
	assert.Equal(t, 1, toks[0].Span.Start.Column)
	assert.Equal(t, 0, toks[0].Span.Start.Offset)

	assert.Equal(t, 2, toks[1].Span.Start.Line)
	assert.Equal(t, 3, toks[1].Span.Start.Column)
	assert.Equal(t, 9, toks[1].Span.Start.Offset)
}
