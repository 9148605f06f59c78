package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// parseSelect parses one statement and asserts it is a SELECT.
func parseSelect(t *testing.T, sql string) *ast.SelectStmt {
	t.Helper()
	stmt := parseSingle(t, sql)
	sel, ok := stmt.(*ast.SelectStmt)
	require.True(t, ok, "expected *ast.SelectStmt, got %T", stmt)
	return sel
}

func TestSimpleSelect(t *testing.T) {
	sel := parseSelect(t, "SELECT id, name AS n FROM users WHERE id = 1")

	require.Len(t, sel.TargetList, 2)
	assert.Equal(t, "", sel.TargetList[0].Name)
	assert.Equal(t, "n", sel.TargetList[1].Name)
	require.Len(t, sel.FromClause, 1)
	rv, ok := sel.FromClause[0].(*ast.RangeVar)
	require.True(t, ok)
	assert.Equal(t, "users", rv.Relname)
	assert.NotNil(t, sel.WhereClause)
}

func TestSelectStar(t *testing.T) {
	sel := parseSelect(t, "SELECT * FROM t")
	require.Len(t, sel.TargetList, 1)
	cr, ok := sel.TargetList[0].Val.(*ast.ColumnRef)
	require.True(t, ok)
	require.Len(t, cr.Fields, 1)
	_, ok = cr.Fields[0].(*ast.A_Star)
	assert.True(t, ok)
}

func TestDistinct(t *testing.T) {
	t.Run("plain DISTINCT", func(t *testing.T) {
		sel := parseSelect(t, "SELECT DISTINCT a FROM t")
		require.NotNil(t, sel.DistinctClause)
		assert.Empty(t, sel.DistinctClause)
	})

	t.Run("DISTINCT ON", func(t *testing.T) {
		sel := parseSelect(t, "SELECT DISTINCT ON (a, b) a FROM t")
		assert.Len(t, sel.DistinctClause, 2)
	})

	t.Run("no DISTINCT", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a FROM t")
		assert.Nil(t, sel.DistinctClause)
	})
}

func TestQualifiedRelations(t *testing.T) {
	t.Run("schema qualified", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 FROM public.users")
		rv := sel.FromClause[0].(*ast.RangeVar)
		assert.Equal(t, "public", rv.Schemaname)
		assert.Equal(t, "users", rv.Relname)
	})

	t.Run("catalog qualified", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 FROM db.public.users")
		rv := sel.FromClause[0].(*ast.RangeVar)
		assert.Equal(t, "db", rv.Catalogname)
		assert.Equal(t, "public", rv.Schemaname)
	})

	t.Run("too many parts", func(t *testing.T) {
		_, err := Parse("SELECT 1 FROM a.b.c.d")
		require.Error(t, err)
		perr := requireParseError(t, err)
		assert.Contains(t, perr.Message, "improper qualified name")
	})

	t.Run("alias with columns", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 FROM users AS u (a, b)")
		rv := sel.FromClause[0].(*ast.RangeVar)
		require.NotNil(t, rv.Alias)
		assert.Equal(t, "u", rv.Alias.Aliasname)
		assert.Equal(t, []string{"a", "b"}, rv.Alias.Colnames)
	})
}

func TestJoins(t *testing.T) {
	t.Run("inner join with ON", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 FROM a JOIN b ON a.id = b.id")
		je, ok := sel.FromClause[0].(*ast.JoinExpr)
		require.True(t, ok)
		assert.Equal(t, ast.JOIN_INNER, je.Jointype)
		assert.NotNil(t, je.Quals)
	})

	t.Run("left join with USING", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 FROM a LEFT OUTER JOIN b USING (id)")
		je := sel.FromClause[0].(*ast.JoinExpr)
		assert.Equal(t, ast.JOIN_LEFT, je.Jointype)
		assert.Equal(t, []string{"id"}, je.UsingClause)
	})

	t.Run("natural join", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 FROM a NATURAL JOIN b")
		je := sel.FromClause[0].(*ast.JoinExpr)
		assert.True(t, je.IsNatural)
	})

	t.Run("cross join", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 FROM a CROSS JOIN b")
		je := sel.FromClause[0].(*ast.JoinExpr)
		assert.Equal(t, ast.JOIN_CROSS, je.Jointype)
	})

	t.Run("joins associate left", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 FROM a JOIN b ON true JOIN c ON true")
		outer := sel.FromClause[0].(*ast.JoinExpr)
		_, ok := outer.Larg.(*ast.JoinExpr)
		assert.True(t, ok)
	})

	t.Run("subquery in FROM", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 FROM (SELECT x FROM t) AS sub")
		rs, ok := sel.FromClause[0].(*ast.RangeSubselect)
		require.True(t, ok)
		require.NotNil(t, rs.Alias)
		assert.Equal(t, "sub", rs.Alias.Aliasname)
	})

	t.Run("lateral subquery", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 FROM t, LATERAL (SELECT t.x) AS l")
		require.Len(t, sel.FromClause, 2)
		rs := sel.FromClause[1].(*ast.RangeSubselect)
		assert.True(t, rs.Lateral)
	})

	t.Run("function in FROM with ordinality", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 FROM generate_series(1, 10) WITH ORDINALITY AS g")
		rf, ok := sel.FromClause[0].(*ast.RangeFunction)
		require.True(t, ok)
		assert.True(t, rf.Ordinality)
	})
}

func TestGroupingAndHaving(t *testing.T) {
	t.Run("group by with having", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a, count(*) FROM t GROUP BY a HAVING count(*) > 1")
		assert.Len(t, sel.GroupClause, 1)
		assert.NotNil(t, sel.HavingClause)
	})

	t.Run("group by distinct", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a FROM t GROUP BY DISTINCT a")
		assert.True(t, sel.GroupDistinct)
	})

	t.Run("rollup", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a, b FROM t GROUP BY ROLLUP (a, b)")
		gs, ok := sel.GroupClause[0].(*ast.GroupingSet)
		require.True(t, ok)
		assert.Equal(t, ast.GROUPING_SET_ROLLUP, gs.Kind)
		assert.Len(t, gs.Content, 2)
	})

	t.Run("grouping sets", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a, b FROM t GROUP BY GROUPING SETS ((a), (b), ())")
		gs, ok := sel.GroupClause[0].(*ast.GroupingSet)
		require.True(t, ok)
		assert.Equal(t, ast.GROUPING_SET_SETS, gs.Kind)
		assert.Len(t, gs.Content, 3)
	})
}

func TestWindowClause(t *testing.T) {
	sel := parseSelect(t, "SELECT sum(x) OVER w FROM t WINDOW w AS (PARTITION BY g ORDER BY x ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW)")
	require.Len(t, sel.WindowClause, 1)
	w := sel.WindowClause[0]
	assert.Equal(t, "w", w.Name)
	assert.Len(t, w.PartitionClause, 1)
	assert.Len(t, w.OrderClause, 1)
	assert.NotZero(t, w.FrameOptions)

	fc := sel.TargetList[0].Val.(*ast.FuncCall)
	require.NotNil(t, fc.Over)
	assert.Equal(t, "w", fc.Over.Refname)
}

func TestSortAndLimit(t *testing.T) {
	t.Run("order by directions", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a FROM t ORDER BY a ASC, b DESC NULLS FIRST")
		require.Len(t, sel.SortClause, 2)
		assert.Equal(t, ast.SORTBY_ASC, sel.SortClause[0].SortbyDir)
		assert.Equal(t, ast.SORTBY_DESC, sel.SortClause[1].SortbyDir)
		assert.Equal(t, ast.SORTBY_NULLS_FIRST, sel.SortClause[1].SortbyNulls)
	})

	t.Run("order by using", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a FROM t ORDER BY a USING >")
		assert.Equal(t, ast.SORTBY_USING, sel.SortClause[0].SortbyDir)
		assert.Equal(t, ">", sel.SortClause[0].UseOp)
	})

	t.Run("limit and offset", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a FROM t LIMIT 10 OFFSET 20")
		require.NotNil(t, sel.LimitCount)
		require.NotNil(t, sel.LimitOffset)
		assert.Equal(t, ast.LIMIT_OPTION_COUNT, sel.LimitOption)
	})

	t.Run("limit all", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a FROM t LIMIT ALL")
		assert.Nil(t, sel.LimitCount)
	})

	t.Run("fetch first with ties", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a FROM t ORDER BY a FETCH FIRST 3 ROWS WITH TIES")
		require.NotNil(t, sel.LimitCount)
		assert.Equal(t, ast.LIMIT_OPTION_WITH_TIES, sel.LimitOption)
	})

	t.Run("fetch next defaults to one row", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a FROM t FETCH NEXT ROW ONLY")
		c, ok := sel.LimitCount.(*ast.A_Const)
		require.True(t, ok)
		i, ok := c.Val.(*ast.Integer)
		require.True(t, ok)
		assert.Equal(t, int64(1), i.IVal)
	})

	t.Run("duplicate limit is rejected", func(t *testing.T) {
		_, err := Parse("SELECT a FROM t LIMIT 1 LIMIT 2")
		require.Error(t, err)
	})
}

func TestLockingClause(t *testing.T) {
	sel := parseSelect(t, "SELECT a FROM t FOR UPDATE OF t NOWAIT")
	require.Len(t, sel.LockingClause, 1)
	lc := sel.LockingClause[0]
	assert.Equal(t, ast.LCS_FORUPDATE, lc.Strength)
	assert.Equal(t, ast.LockWaitError, lc.WaitPolicy)
	require.Len(t, lc.LockedRels, 1)
	assert.Equal(t, "t", lc.LockedRels[0].Relname)

	sel = parseSelect(t, "SELECT a FROM t FOR KEY SHARE SKIP LOCKED")
	lc = sel.LockingClause[0]
	assert.Equal(t, ast.LCS_FORKEYSHARE, lc.Strength)
	assert.Equal(t, ast.LockWaitSkip, lc.WaitPolicy)
}

func TestSetOperations(t *testing.T) {
	t.Run("union", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a FROM t UNION SELECT b FROM u")
		assert.Equal(t, ast.SETOP_UNION, sel.Op)
		assert.False(t, sel.All)
		require.NotNil(t, sel.Larg)
		require.NotNil(t, sel.Rarg)
	})

	t.Run("union all", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 UNION ALL SELECT 2")
		assert.True(t, sel.All)
	})

	t.Run("intersect binds tighter than union", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 UNION SELECT 2 INTERSECT SELECT 3")
		assert.Equal(t, ast.SETOP_UNION, sel.Op)
		assert.Equal(t, ast.SETOP_INTERSECT, sel.Rarg.Op)
	})

	t.Run("union associates left", func(t *testing.T) {
		sel := parseSelect(t, "SELECT 1 UNION SELECT 2 EXCEPT SELECT 3")
		assert.Equal(t, ast.SETOP_EXCEPT, sel.Op)
		assert.Equal(t, ast.SETOP_UNION, sel.Larg.Op)
	})

	t.Run("order by attaches to the whole set operation", func(t *testing.T) {
		sel := parseSelect(t, "SELECT a FROM t UNION SELECT b FROM u ORDER BY 1")
		assert.Equal(t, ast.SETOP_UNION, sel.Op)
		assert.Len(t, sel.SortClause, 1)
		assert.Empty(t, sel.Larg.SortClause)
	})
}

func TestValuesClause(t *testing.T) {
	sel := parseSelect(t, "VALUES (1, 'a'), (2, 'b')")
	require.Len(t, sel.ValuesLists, 2)
	assert.Len(t, sel.ValuesLists[0], 2)
}

func TestTableCommand(t *testing.T) {
	sel := parseSelect(t, "TABLE users")
	require.Len(t, sel.TargetList, 1)
	require.Len(t, sel.FromClause, 1)
	rv := sel.FromClause[0].(*ast.RangeVar)
	assert.Equal(t, "users", rv.Relname)
}

func TestCommonTableExpressions(t *testing.T) {
	t.Run("plain CTE", func(t *testing.T) {
		sel := parseSelect(t, "WITH top AS (SELECT a FROM t) SELECT * FROM top")
		require.NotNil(t, sel.WithClause)
		assert.False(t, sel.WithClause.Recursive)
		require.Len(t, sel.WithClause.Ctes, 1)
		assert.Equal(t, "top", sel.WithClause.Ctes[0].Ctename)
	})

	t.Run("recursive CTE with column list", func(t *testing.T) {
		sel := parseSelect(t, "WITH RECURSIVE r (n) AS (SELECT 1 UNION SELECT n + 1 FROM r WHERE n < 10) SELECT * FROM r")
		require.NotNil(t, sel.WithClause)
		assert.True(t, sel.WithClause.Recursive)
		assert.Equal(t, []string{"n"}, sel.WithClause.Ctes[0].Aliascolnames)
	})

	t.Run("materialized hint", func(t *testing.T) {
		sel := parseSelect(t, "WITH m AS MATERIALIZED (SELECT 1) SELECT * FROM m")
		assert.Equal(t, ast.CTEMaterializeAlways, sel.WithClause.Ctes[0].Ctematerialized)
	})
}

func TestSelectDeparse(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "simple select",
			sql:  "select id, name as n from users where id = 1",
			want: "SELECT id, name AS n FROM users WHERE id = 1",
		},
		{
			name: "join",
			sql:  "SELECT 1 FROM a LEFT JOIN b ON a.id = b.id",
			want: "SELECT 1 FROM a LEFT JOIN b ON a.id = b.id",
		},
		{
			name: "union all with order",
			sql:  "SELECT 1 UNION ALL SELECT 2 ORDER BY 1",
			want: "SELECT 1 UNION ALL SELECT 2 ORDER BY 1",
		},
		{
			name: "values",
			sql:  "VALUES (1, 'a')",
			want: "VALUES (1, 'a')",
		},
		{
			name: "quoted identifier",
			sql:  `SELECT "Mixed Case" FROM t`,
			want: `SELECT "Mixed Case" FROM t`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseSingle(t, tt.sql)
			assert.Equal(t, tt.want, stmt.SqlString())
		})
	}
}

// TestDeparseFixpoint checks that deparsed SQL parses back to the same
// deparsed form.
func TestDeparseFixpoint(t *testing.T) {
	queries := []string{
		"SELECT DISTINCT ON (a) a, b FROM t ORDER BY a, b DESC",
		"SELECT a, count(*) FROM t GROUP BY a HAVING count(*) > 1",
		"SELECT * FROM a JOIN b USING (id) WHERE a.x BETWEEN 1 AND 10",
		"SELECT CASE WHEN x > 0 THEN 'pos' ELSE 'neg' END FROM t",
		"WITH top AS (SELECT a FROM t LIMIT 10) SELECT * FROM top",
		"SELECT x FROM t WHERE x IN (1, 2, 3) OR y IS NOT NULL",
		"SELECT sum(x) OVER (PARTITION BY g) FROM t",
		"SELECT 1 UNION SELECT 2 INTERSECT SELECT 3",
		"INSERT INTO t (a, b) VALUES (1, 2) RETURNING a",
		"UPDATE t SET a = 1 WHERE b = 2",
		"DELETE FROM t WHERE a < 0 RETURNING *",
	}

	for _, q := range queries {
		t.Run(q, func(t *testing.T) {
			first := parseSingle(t, q).SqlString()
			second := parseSingle(t, first).SqlString()
			assert.Equal(t, first, second)
		})
	}
}
