package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// parseSingle parses one statement.
func parseSingle(t *testing.T, sql string) ast.Stmt {
	t.Helper()
	stmts, err := Parse(sql)
	require.NoError(t, err, "parsing %q", sql)
	require.Len(t, stmts, 1)
	return stmts[0]
}

// firstTargetExpr parses "SELECT <expr>" and returns the target expression.
func firstTargetExpr(t *testing.T, expr string) ast.Node {
	t.Helper()
	stmt := parseSingle(t, "SELECT "+expr)
	sel, ok := stmt.(*ast.SelectStmt)
	require.True(t, ok)
	require.NotEmpty(t, sel.TargetList)
	return sel.TargetList[0].Val
}

func TestArithmeticPrecedence(t *testing.T) {
	t.Run("multiplication binds tighter than addition", func(t *testing.T) {
		expr := firstTargetExpr(t, "1 + 2 * 3")
		add, ok := expr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, "+", add.Name)
		mul, ok := add.Rexpr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, "*", mul.Name)
	})

	t.Run("left associativity", func(t *testing.T) {
		expr := firstTargetExpr(t, "1 - 2 - 3")
		outer, ok := expr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, "-", outer.Name)
		inner, ok := outer.Lexpr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, "-", inner.Name)
	})

	t.Run("exponentiation is right associative", func(t *testing.T) {
		expr := firstTargetExpr(t, "2 ^ 3 ^ 4")
		outer, ok := expr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, "^", outer.Name)
		_, leftIsConst := outer.Lexpr.(*ast.A_Const)
		assert.True(t, leftIsConst)
		inner, ok := outer.Rexpr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, "^", inner.Name)
	})

	t.Run("exponentiation binds tighter than unary minus", func(t *testing.T) {
		expr := firstTargetExpr(t, "-2 ^ 2")
		neg, ok := expr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, "-", neg.Name)
		assert.Nil(t, neg.Lexpr)
		pow, ok := neg.Rexpr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, "^", pow.Name)
	})

	t.Run("unary minus folds into a literal", func(t *testing.T) {
		expr := firstTargetExpr(t, "-42")
		c, ok := expr.(*ast.A_Const)
		require.True(t, ok)
		i, ok := c.Val.(*ast.Integer)
		require.True(t, ok)
		assert.Equal(t, int64(-42), i.IVal)
	})
}

func TestBooleanPrecedence(t *testing.T) {
	t.Run("AND binds tighter than OR", func(t *testing.T) {
		expr := firstTargetExpr(t, "a OR b AND c")
		or, ok := expr.(*ast.BoolExpr)
		require.True(t, ok)
		assert.Equal(t, ast.OR_EXPR, or.Boolop)
		require.Len(t, or.Args, 2)
		and, ok := or.Args[1].(*ast.BoolExpr)
		require.True(t, ok)
		assert.Equal(t, ast.AND_EXPR, and.Boolop)
	})

	t.Run("chains of the same operator flatten", func(t *testing.T) {
		expr := firstTargetExpr(t, "a AND b AND c AND d")
		and, ok := expr.(*ast.BoolExpr)
		require.True(t, ok)
		assert.Equal(t, ast.AND_EXPR, and.Boolop)
		assert.Len(t, and.Args, 4)
	})

	t.Run("NOT binds tighter than AND", func(t *testing.T) {
		expr := firstTargetExpr(t, "NOT a AND b")
		and, ok := expr.(*ast.BoolExpr)
		require.True(t, ok)
		assert.Equal(t, ast.AND_EXPR, and.Boolop)
		not, ok := and.Args[0].(*ast.BoolExpr)
		require.True(t, ok)
		assert.Equal(t, ast.NOT_EXPR, not.Boolop)
	})
}

func TestComparisonIsNonAssociative(t *testing.T) {
	_, err := Parse("SELECT a < b < c")
	require.Error(t, err)
	perr := requireParseError(t, err)
	assert.Equal(t, SyntaxError, perr.Kind)
	assert.Equal(t, "<", perr.Near)
}

func TestComparisonBindsLooserThanArithmetic(t *testing.T) {
	expr := firstTargetExpr(t, "a + 1 < b * 2")
	cmp, ok := expr.(*ast.A_Expr)
	require.True(t, ok)
	assert.Equal(t, "<", cmp.Name)
	left, ok := cmp.Lexpr.(*ast.A_Expr)
	require.True(t, ok)
	assert.Equal(t, "+", left.Name)
	right, ok := cmp.Rexpr.(*ast.A_Expr)
	require.True(t, ok)
	assert.Equal(t, "*", right.Name)
}

func TestIsTests(t *testing.T) {
	t.Run("IS NULL", func(t *testing.T) {
		expr := firstTargetExpr(t, "a IS NULL")
		nt, ok := expr.(*ast.NullTest)
		require.True(t, ok)
		assert.Equal(t, ast.IS_NULL, nt.Nulltesttype)
	})

	t.Run("IS NOT NULL", func(t *testing.T) {
		expr := firstTargetExpr(t, "a IS NOT NULL")
		nt, ok := expr.(*ast.NullTest)
		require.True(t, ok)
		assert.Equal(t, ast.IS_NOT_NULL, nt.Nulltesttype)
	})

	t.Run("ISNULL shorthand", func(t *testing.T) {
		expr := firstTargetExpr(t, "a ISNULL")
		nt, ok := expr.(*ast.NullTest)
		require.True(t, ok)
		assert.Equal(t, ast.IS_NULL, nt.Nulltesttype)
	})

	t.Run("IS TRUE", func(t *testing.T) {
		expr := firstTargetExpr(t, "a IS NOT TRUE")
		bt, ok := expr.(*ast.BooleanTest)
		require.True(t, ok)
		assert.Equal(t, ast.IS_NOT_TRUE, bt.Booltesttype)
	})

	t.Run("IS DISTINCT FROM", func(t *testing.T) {
		expr := firstTargetExpr(t, "a IS DISTINCT FROM b")
		ae, ok := expr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, ast.AEXPR_DISTINCT, ae.Kind)
	})
}

func TestBetweenAndIn(t *testing.T) {
	t.Run("BETWEEN", func(t *testing.T) {
		expr := firstTargetExpr(t, "x BETWEEN 1 AND 10")
		ae, ok := expr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, ast.AEXPR_BETWEEN, ae.Kind)
		require.Len(t, ae.Rexprs, 2)
	})

	t.Run("NOT BETWEEN SYMMETRIC", func(t *testing.T) {
		expr := firstTargetExpr(t, "x NOT BETWEEN SYMMETRIC 10 AND 1")
		ae, ok := expr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, ast.AEXPR_NOT_BETWEEN_SYM, ae.Kind)
	})

	t.Run("IN list", func(t *testing.T) {
		expr := firstTargetExpr(t, "x IN (1, 2, 3)")
		ae, ok := expr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, ast.AEXPR_IN, ae.Kind)
		assert.Equal(t, "=", ae.Name)
		assert.Len(t, ae.Rexprs, 3)
	})

	t.Run("NOT IN list", func(t *testing.T) {
		expr := firstTargetExpr(t, "x NOT IN (1, 2)")
		ae, ok := expr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, ast.AEXPR_IN, ae.Kind)
		assert.Equal(t, "<>", ae.Name)
	})

	t.Run("IN subquery", func(t *testing.T) {
		expr := firstTargetExpr(t, "x IN (SELECT y FROM t)")
		sub, ok := expr.(*ast.SubLink)
		require.True(t, ok)
		assert.Equal(t, ast.ANY_SUBLINK, sub.SubLinkType)
		assert.Equal(t, "", sub.OperName)
	})
}

func TestPatternMatching(t *testing.T) {
	tests := []struct {
		name string
		expr string
		kind ast.A_Expr_Kind
		op   string
	}{
		{"LIKE", "a LIKE 'x%'", ast.AEXPR_LIKE, "~~"},
		{"NOT LIKE", "a NOT LIKE 'x%'", ast.AEXPR_LIKE, "!~~"},
		{"ILIKE", "a ILIKE 'x%'", ast.AEXPR_ILIKE, "~~*"},
		{"NOT ILIKE", "a NOT ILIKE 'x%'", ast.AEXPR_ILIKE, "!~~*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr := firstTargetExpr(t, tt.expr)
			ae, ok := expr.(*ast.A_Expr)
			require.True(t, ok)
			assert.Equal(t, tt.kind, ae.Kind)
			assert.Equal(t, tt.op, ae.Name)
		})
	}

	t.Run("LIKE with ESCAPE wraps the pattern", func(t *testing.T) {
		expr := firstTargetExpr(t, "a LIKE 'x!%' ESCAPE '!'")
		ae, ok := expr.(*ast.A_Expr)
		require.True(t, ok)
		fc, ok := ae.Rexpr.(*ast.FuncCall)
		require.True(t, ok)
		assert.Equal(t, []string{"like_escape"}, fc.Funcname)
	})
}

func TestAnyAllComparisons(t *testing.T) {
	t.Run("ANY over array expression", func(t *testing.T) {
		expr := firstTargetExpr(t, "x = ANY (arr)")
		ae, ok := expr.(*ast.A_Expr)
		require.True(t, ok)
		assert.Equal(t, ast.AEXPR_OP_ANY, ae.Kind)
		assert.Equal(t, "=", ae.Name)
	})

	t.Run("ALL over subquery", func(t *testing.T) {
		expr := firstTargetExpr(t, "x > ALL (SELECT y FROM t)")
		sub, ok := expr.(*ast.SubLink)
		require.True(t, ok)
		assert.Equal(t, ast.ALL_SUBLINK, sub.SubLinkType)
		assert.Equal(t, ">", sub.OperName)
	})
}

func TestPostfixForms(t *testing.T) {
	t.Run("typecast", func(t *testing.T) {
		expr := firstTargetExpr(t, "x::int4")
		tc, ok := expr.(*ast.TypeCast)
		require.True(t, ok)
		assert.Equal(t, []string{"int4"}, tc.TypeName.Names)
	})

	t.Run("subscript", func(t *testing.T) {
		expr := firstTargetExpr(t, "arr[1]")
		ind, ok := expr.(*ast.A_Indirection)
		require.True(t, ok)
		require.Len(t, ind.Indirection, 1)
	})

	t.Run("slice", func(t *testing.T) {
		expr := firstTargetExpr(t, "arr[1:2]")
		ind, ok := expr.(*ast.A_Indirection)
		require.True(t, ok)
		idx, ok := ind.Indirection[0].(*ast.A_Indices)
		require.True(t, ok)
		assert.True(t, idx.IsSlice)
	})

	t.Run("string literal cast", func(t *testing.T) {
		expr := firstTargetExpr(t, "int4 '42'")
		tc, ok := expr.(*ast.TypeCast)
		require.True(t, ok)
		assert.Equal(t, []string{"int4"}, tc.TypeName.Names)
	})
}

func TestAtTimeZone(t *testing.T) {
	expr := firstTargetExpr(t, "ts AT TIME ZONE 'UTC'")
	fc, ok := expr.(*ast.FuncCall)
	require.True(t, ok)
	assert.Equal(t, []string{"timezone"}, fc.Funcname)
	require.Len(t, fc.Args, 2)
}

func TestCaseExpression(t *testing.T) {
	t.Run("searched case", func(t *testing.T) {
		expr := firstTargetExpr(t, "CASE WHEN a THEN 1 WHEN b THEN 2 ELSE 3 END")
		ce, ok := expr.(*ast.CaseExpr)
		require.True(t, ok)
		assert.Nil(t, ce.Arg)
		assert.Len(t, ce.Args, 2)
		assert.NotNil(t, ce.Defresult)
	})

	t.Run("simple case", func(t *testing.T) {
		expr := firstTargetExpr(t, "CASE x WHEN 1 THEN 'one' END")
		ce, ok := expr.(*ast.CaseExpr)
		require.True(t, ok)
		assert.NotNil(t, ce.Arg)
		assert.Nil(t, ce.Defresult)
	})
}

func TestFunctionCalls(t *testing.T) {
	t.Run("count star", func(t *testing.T) {
		expr := firstTargetExpr(t, "count(*)")
		fc, ok := expr.(*ast.FuncCall)
		require.True(t, ok)
		assert.True(t, fc.AggStar)
	})

	t.Run("distinct aggregate with order", func(t *testing.T) {
		expr := firstTargetExpr(t, "array_agg(DISTINCT x ORDER BY x DESC)")
		fc, ok := expr.(*ast.FuncCall)
		require.True(t, ok)
		assert.True(t, fc.AggDistinct)
		require.Len(t, fc.AggOrder, 1)
		assert.Equal(t, ast.SORTBY_DESC, fc.AggOrder[0].SortbyDir)
	})

	t.Run("filter clause", func(t *testing.T) {
		expr := firstTargetExpr(t, "count(*) FILTER (WHERE x > 0)")
		fc, ok := expr.(*ast.FuncCall)
		require.True(t, ok)
		assert.NotNil(t, fc.AggFilter)
	})

	t.Run("named arguments", func(t *testing.T) {
		expr := firstTargetExpr(t, "f(a => 1, b := 2)")
		fc, ok := expr.(*ast.FuncCall)
		require.True(t, ok)
		require.Len(t, fc.Args, 2)
		na, ok := fc.Args[0].(*ast.NamedArgExpr)
		require.True(t, ok)
		assert.Equal(t, "a", na.Name)
	})

	t.Run("window function", func(t *testing.T) {
		expr := firstTargetExpr(t, "row_number() OVER (PARTITION BY g ORDER BY x)")
		fc, ok := expr.(*ast.FuncCall)
		require.True(t, ok)
		require.NotNil(t, fc.Over)
		assert.Len(t, fc.Over.PartitionClause, 1)
		assert.Len(t, fc.Over.OrderClause, 1)
	})
}

func TestSpecialFunctions(t *testing.T) {
	t.Run("COALESCE", func(t *testing.T) {
		expr := firstTargetExpr(t, "COALESCE(a, b, 0)")
		ce, ok := expr.(*ast.CoalesceExpr)
		require.True(t, ok)
		assert.Len(t, ce.Args, 3)
	})

	t.Run("GREATEST", func(t *testing.T) {
		expr := firstTargetExpr(t, "GREATEST(a, b)")
		mm, ok := expr.(*ast.MinMaxExpr)
		require.True(t, ok)
		assert.Equal(t, ast.IS_GREATEST, mm.Op)
	})

	t.Run("EXTRACT becomes date_part", func(t *testing.T) {
		expr := firstTargetExpr(t, "EXTRACT(YEAR FROM d)")
		fc, ok := expr.(*ast.FuncCall)
		require.True(t, ok)
		assert.Equal(t, []string{"date_part"}, fc.Funcname)
	})

	t.Run("CURRENT_TIMESTAMP", func(t *testing.T) {
		expr := firstTargetExpr(t, "CURRENT_TIMESTAMP")
		svf, ok := expr.(*ast.SQLValueFunction)
		require.True(t, ok)
		assert.Equal(t, ast.SVFOP_CURRENT_TIMESTAMP, svf.Op)
	})

	t.Run("CAST", func(t *testing.T) {
		expr := firstTargetExpr(t, "CAST(x AS numeric(10, 2))")
		tc, ok := expr.(*ast.TypeCast)
		require.True(t, ok)
		assert.Equal(t, []string{"pg_catalog", "numeric"}, tc.TypeName.Names)
		assert.Len(t, tc.TypeName.Typmods, 2)
	})
}

func TestRowAndArray(t *testing.T) {
	t.Run("implicit row", func(t *testing.T) {
		expr := firstTargetExpr(t, "(1, 2)")
		row, ok := expr.(*ast.RowExpr)
		require.True(t, ok)
		assert.Len(t, row.Args, 2)
	})

	t.Run("ROW keyword", func(t *testing.T) {
		expr := firstTargetExpr(t, "ROW(1)")
		row, ok := expr.(*ast.RowExpr)
		require.True(t, ok)
		assert.Len(t, row.Args, 1)
	})

	t.Run("array literal", func(t *testing.T) {
		expr := firstTargetExpr(t, "ARRAY[1, 2, 3]")
		arr, ok := expr.(*ast.ArrayExpr)
		require.True(t, ok)
		assert.Len(t, arr.Elements, 3)
	})

	t.Run("array subquery", func(t *testing.T) {
		expr := firstTargetExpr(t, "ARRAY(SELECT x FROM t)")
		sub, ok := expr.(*ast.SubLink)
		require.True(t, ok)
		assert.Equal(t, ast.ARRAY_SUBLINK, sub.SubLinkType)
	})

	t.Run("scalar subquery", func(t *testing.T) {
		expr := firstTargetExpr(t, "(SELECT max(x) FROM t)")
		sub, ok := expr.(*ast.SubLink)
		require.True(t, ok)
		assert.Equal(t, ast.EXPR_SUBLINK, sub.SubLinkType)
	})

	t.Run("EXISTS", func(t *testing.T) {
		expr := firstTargetExpr(t, "EXISTS (SELECT 1 FROM t)")
		sub, ok := expr.(*ast.SubLink)
		require.True(t, ok)
		assert.Equal(t, ast.EXISTS_SUBLINK, sub.SubLinkType)
	})
}

func TestExpressionSpans(t *testing.T) {
	expr := firstTargetExpr(t, "1 + 2 * 3")
	span := expr.Span()
	assert.Equal(t, 7, span.Start.Offset, "span starts at the first operand")
	assert.Equal(t, 16, span.End.Offset, "span covers the full expression")
}
