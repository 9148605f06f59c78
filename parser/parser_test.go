package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

func TestParseMultipleStatements(t *testing.T) {
	stmts, err := Parse("SELECT 1; INSERT INTO t VALUES (1); COMMIT")
	require.NoError(t, err)
	require.Len(t, stmts, 3)
	assert.Equal(t, "SELECT", stmts[0].StatementType())
	assert.Equal(t, "INSERT", stmts[1].StatementType())
	assert.Equal(t, "TRANSACTION", stmts[2].StatementType())
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", ";;", "-- just a comment\n", "/* nothing */"} {
		stmts, err := Parse(input)
		require.NoError(t, err, "input %q", input)
		assert.Empty(t, stmts)
	}
}

func TestParseTrailingSemicolons(t *testing.T) {
	stmts, err := Parse("SELECT 1;;\n;SELECT 2;")
	require.NoError(t, err)
	assert.Len(t, stmts, 2)
}

func TestParseTrailingGarbage(t *testing.T) {
	_, err := Parse("SELECT 1 SELECT 2")
	require.Error(t, err)
	perr := requireParseError(t, err)
	assert.Equal(t, SyntaxError, perr.Kind)
	assert.Equal(t, "SELECT", perr.Near)
}

func TestSyntaxErrorPositions(t *testing.T) {
	sql := "SELECT a\nFROM t GROUP WHERE"
	_, err := Parse(sql)
	require.Error(t, err)
	perr := requireParseError(t, err)
	assert.Equal(t, SyntaxError, perr.Kind)
	assert.Equal(t, "WHERE", perr.Near)
	assert.Equal(t, 2, perr.Position.Line)
	assert.Equal(t, 14, perr.Position.Column)
	assert.Equal(t, strings.Index(sql, "WHERE"), perr.Position.Offset)
	assert.Equal(t, `syntax error at or near "WHERE" (line 2, column 14)`, perr.Error())
}

func TestSyntaxErrorAtEOF(t *testing.T) {
	_, err := Parse("SELECT a FROM")
	require.Error(t, err)
	perr := requireParseError(t, err)
	assert.True(t, perr.AtEOF)
	assert.Empty(t, perr.Near)
	assert.Contains(t, perr.Error(), "at end of input")
}

func TestReservedKeywordAsIdentifier(t *testing.T) {
	_, err := Parse("SELECT 1 FROM select")
	require.Error(t, err)
	perr := requireParseError(t, err)
	assert.Contains(t, perr.Message, `reserved keyword "select"`)

	// Quoting lifts the restriction.
	stmts, err := Parse(`SELECT 1 FROM "select"`)
	require.NoError(t, err)
	sel := stmts[0].(*ast.SelectStmt)
	assert.Equal(t, "select", sel.FromClause[0].(*ast.RangeVar).Relname)
}

func TestUnreservedKeywordAsIdentifier(t *testing.T) {
	stmts, err := Parse("SELECT version FROM options")
	require.NoError(t, err)
	sel := stmts[0].(*ast.SelectStmt)
	assert.Equal(t, "options", sel.FromClause[0].(*ast.RangeVar).Relname)
}

func TestDepthLimit(t *testing.T) {
	t.Run("nested parens past the limit", func(t *testing.T) {
		p := NewParser(Options{MaxDepth: 10})
		_, err := p.Parse("SELECT " + strings.Repeat("(", 50) + "1" + strings.Repeat(")", 50))
		require.Error(t, err)
		perr := requireParseError(t, err)
		assert.Equal(t, DepthLimitExceeded, perr.Kind)
		assert.Contains(t, perr.Message, "nesting depth exceeds maximum")
	})

	t.Run("within the limit", func(t *testing.T) {
		p := NewParser(Options{MaxDepth: 100})
		_, err := p.Parse("SELECT ((((1))))")
		require.NoError(t, err)
	})

	t.Run("zero means the default", func(t *testing.T) {
		p := NewParser(Options{})
		_, err := p.Parse("SELECT (((1)))")
		require.NoError(t, err)
	})
}

func TestParseErrorUnwrapping(t *testing.T) {
	_, err := Parse("SELECT !!")
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}

func TestStatementSpans(t *testing.T) {
	sql := "SELECT 1;  UPDATE t SET a = 1"
	stmts, err := Parse(sql)
	require.NoError(t, err)
	require.Len(t, stmts, 2)

	first := stmts[0].Span()
	assert.Equal(t, 0, first.Start.Offset)
	assert.Equal(t, len("SELECT 1"), first.End.Offset)

	second := stmts[1].Span()
	assert.Equal(t, strings.Index(sql, "UPDATE"), second.Start.Offset)
	assert.Equal(t, len(sql), second.End.Offset)
}

func TestLexErrorSurfacesFromParse(t *testing.T) {
	_, err := Parse("SELECT 'abc")
	require.Error(t, err)
	perr := requireParseError(t, err)
	assert.Equal(t, LexError, perr.Kind)
	assert.True(t, perr.AtEOF)
}
