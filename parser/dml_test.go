package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

func TestInsert(t *testing.T) {
	t.Run("column list and VALUES", func(t *testing.T) {
		stmt := parseSingle(t, "INSERT INTO t (a, b) VALUES (1, 2), (3, DEFAULT)")
		ins, ok := stmt.(*ast.InsertStmt)
		require.True(t, ok)
		assert.Equal(t, "t", ins.Relation.Relname)
		require.Len(t, ins.Cols, 2)
		assert.Equal(t, "a", ins.Cols[0].Name)

		sel, ok := ins.SelectStmt.(*ast.SelectStmt)
		require.True(t, ok)
		require.Len(t, sel.ValuesLists, 2)
		_, ok = sel.ValuesLists[1][1].(*ast.SetToDefault)
		assert.True(t, ok)
	})

	t.Run("DEFAULT VALUES", func(t *testing.T) {
		ins := parseSingle(t, "INSERT INTO t DEFAULT VALUES").(*ast.InsertStmt)
		assert.Nil(t, ins.SelectStmt)
		assert.Empty(t, ins.Cols)
	})

	t.Run("from query", func(t *testing.T) {
		ins := parseSingle(t, "INSERT INTO t SELECT * FROM src").(*ast.InsertStmt)
		_, ok := ins.SelectStmt.(*ast.SelectStmt)
		assert.True(t, ok)
	})

	t.Run("OVERRIDING", func(t *testing.T) {
		ins := parseSingle(t, "INSERT INTO t OVERRIDING SYSTEM VALUE VALUES (1)").(*ast.InsertStmt)
		assert.Equal(t, ast.OVERRIDING_SYSTEM_VALUE, ins.Override)

		ins = parseSingle(t, "INSERT INTO t OVERRIDING USER VALUE VALUES (1)").(*ast.InsertStmt)
		assert.Equal(t, ast.OVERRIDING_USER_VALUE, ins.Override)
	})

	t.Run("RETURNING", func(t *testing.T) {
		ins := parseSingle(t, "INSERT INTO t VALUES (1) RETURNING id, *").(*ast.InsertStmt)
		require.Len(t, ins.ReturningList, 2)
	})
}

func TestInsertOnConflict(t *testing.T) {
	t.Run("DO NOTHING", func(t *testing.T) {
		ins := parseSingle(t, "INSERT INTO t VALUES (1) ON CONFLICT DO NOTHING").(*ast.InsertStmt)
		require.NotNil(t, ins.OnConflictClause)
		assert.Equal(t, ast.ONCONFLICT_NOTHING, ins.OnConflictClause.Action)
		assert.Nil(t, ins.OnConflictClause.Infer)
	})

	t.Run("DO UPDATE with index inference", func(t *testing.T) {
		ins := parseSingle(t,
			"INSERT INTO t (a) VALUES (1) ON CONFLICT (a) WHERE a > 0 DO UPDATE SET b = excluded.b WHERE t.c > 0").(*ast.InsertStmt)
		occ := ins.OnConflictClause
		require.NotNil(t, occ)
		assert.Equal(t, ast.ONCONFLICT_UPDATE, occ.Action)
		require.NotNil(t, occ.Infer)
		require.Len(t, occ.Infer.IndexElems, 1)
		assert.Equal(t, "a", occ.Infer.IndexElems[0].Name)
		assert.NotNil(t, occ.Infer.WhereClause)
		require.Len(t, occ.TargetList, 1)
		assert.Equal(t, "b", occ.TargetList[0].Name)
		assert.NotNil(t, occ.WhereClause)
	})

	t.Run("ON CONSTRAINT", func(t *testing.T) {
		ins := parseSingle(t,
			"INSERT INTO t VALUES (1) ON CONFLICT ON CONSTRAINT t_pkey DO NOTHING").(*ast.InsertStmt)
		require.NotNil(t, ins.OnConflictClause.Infer)
		assert.Equal(t, "t_pkey", ins.OnConflictClause.Infer.Conname)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("SET opens the set clause, not an alias", func(t *testing.T) {
		upd := parseSingle(t, "UPDATE t SET a = 1").(*ast.UpdateStmt)
		assert.Nil(t, upd.Relation.Alias)
		require.Len(t, upd.TargetList, 1)
		assert.Equal(t, "a", upd.TargetList[0].Name)

		del := parseSingle(t, "DELETE FROM t WHERE a = 1").(*ast.DeleteStmt)
		assert.Nil(t, del.Relation.Alias)
	})

	t.Run("alias named set requires AS", func(t *testing.T) {
		upd := parseSingle(t, "UPDATE t AS set SET a = 1").(*ast.UpdateStmt)
		require.NotNil(t, upd.Relation.Alias)
		assert.Equal(t, "set", upd.Relation.Alias.Aliasname)
	})

	t.Run("multiple assignments", func(t *testing.T) {
		upd := parseSingle(t, "UPDATE t SET a = 1, b = DEFAULT WHERE c = 3").(*ast.UpdateStmt)
		require.Len(t, upd.TargetList, 2)
		assert.Equal(t, "a", upd.TargetList[0].Name)
		_, ok := upd.TargetList[1].Val.(*ast.SetToDefault)
		assert.True(t, ok)
		assert.NotNil(t, upd.WhereClause)
	})

	t.Run("multi-assign from row", func(t *testing.T) {
		upd := parseSingle(t, "UPDATE t SET (a, b) = (1, 2)").(*ast.UpdateStmt)
		require.Len(t, upd.TargetList, 2)
		assert.Equal(t, "a", upd.TargetList[0].Name)
		assert.Equal(t, "b", upd.TargetList[1].Name)
		require.NotNil(t, upd.TargetList[0].Val)
	})

	t.Run("multi-assign from subquery shares the sublink", func(t *testing.T) {
		upd := parseSingle(t, "UPDATE t SET (a, b) = (SELECT x, y FROM s)").(*ast.UpdateStmt)
		require.Len(t, upd.TargetList, 2)
		sl, ok := upd.TargetList[0].Val.(*ast.SubLink)
		require.True(t, ok)
		assert.Equal(t, ast.EXPR_SUBLINK, sl.SubLinkType)
		assert.Same(t, upd.TargetList[0].Val, upd.TargetList[1].Val)
	})

	t.Run("multi-assign column count mismatch", func(t *testing.T) {
		_, err := Parse("UPDATE t SET (a, b) = (1, 2, 3)")
		require.Error(t, err)
		perr := requireParseError(t, err)
		assert.Contains(t, perr.Message, "number of columns does not match")
	})

	t.Run("indirection targets", func(t *testing.T) {
		upd := parseSingle(t, "UPDATE t SET arr[1] = 0").(*ast.UpdateStmt)
		require.Len(t, upd.TargetList, 1)
		assert.Equal(t, "arr", upd.TargetList[0].Name)
		require.Len(t, upd.TargetList[0].Indirection, 1)
	})

	t.Run("FROM and RETURNING", func(t *testing.T) {
		upd := parseSingle(t, "UPDATE t SET a = s.a FROM s WHERE s.id = t.id RETURNING t.a").(*ast.UpdateStmt)
		require.Len(t, upd.FromClause, 1)
		require.Len(t, upd.ReturningList, 1)
	})

	t.Run("ONLY relation with alias", func(t *testing.T) {
		upd := parseSingle(t, "UPDATE ONLY t AS x SET a = 1").(*ast.UpdateStmt)
		assert.False(t, upd.Relation.Inh)
		require.NotNil(t, upd.Relation.Alias)
		assert.Equal(t, "x", upd.Relation.Alias.Aliasname)
	})
}

func TestDelete(t *testing.T) {
	t.Run("with USING", func(t *testing.T) {
		del := parseSingle(t, "DELETE FROM t USING s WHERE s.id = t.id").(*ast.DeleteStmt)
		assert.Equal(t, "t", del.Relation.Relname)
		require.Len(t, del.UsingClause, 1)
		assert.NotNil(t, del.WhereClause)
	})

	t.Run("RETURNING star", func(t *testing.T) {
		del := parseSingle(t, "DELETE FROM t RETURNING *").(*ast.DeleteStmt)
		require.Len(t, del.ReturningList, 1)
	})
}

func TestWithPrefixedDML(t *testing.T) {
	t.Run("WITH before INSERT", func(t *testing.T) {
		stmt := parseSingle(t, "WITH src AS (SELECT 1 AS a) INSERT INTO t SELECT * FROM src")
		ins, ok := stmt.(*ast.InsertStmt)
		require.True(t, ok)
		require.NotNil(t, ins.WithClause)
		assert.Equal(t, "src", ins.WithClause.Ctes[0].Ctename)
	})

	t.Run("WITH before UPDATE", func(t *testing.T) {
		upd := parseSingle(t, "WITH v AS (SELECT 1) UPDATE t SET a = 1").(*ast.UpdateStmt)
		require.NotNil(t, upd.WithClause)
	})

	t.Run("WITH before DELETE", func(t *testing.T) {
		del := parseSingle(t, "WITH v AS (SELECT 1) DELETE FROM t").(*ast.DeleteStmt)
		require.NotNil(t, del.WithClause)
	})
}

func TestDMLDeparse(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "insert with conflict",
			sql:  "insert into t (a) values (1) on conflict (a) do update set a = 2",
			want: "INSERT INTO t (a) VALUES (1) ON CONFLICT (a) DO UPDATE SET a = 2",
		},
		{
			name: "conflict update from excluded",
			sql:  "insert into t (a, b) values (1, 2) on conflict (a) do update set b = excluded.b",
			want: "INSERT INTO t (a, b) VALUES (1, 2) ON CONFLICT (a) DO UPDATE SET b = excluded.b",
		},
		{
			name: "update with subscripted target",
			sql:  "update t set arr[1] = 0, rec.f = 'x'",
			want: "UPDATE t SET arr[1] = 0, rec.f = 'x'",
		},
		{
			name: "insert default values",
			sql:  "INSERT INTO t DEFAULT VALUES",
			want: "INSERT INTO t DEFAULT VALUES",
		},
		{
			name: "update",
			sql:  "update t set a = 1, b = default where c is null",
			want: "UPDATE t SET a = 1, b = DEFAULT WHERE c IS NULL",
		},
		{
			name: "delete using",
			sql:  "delete from t using s where s.id = t.id returning t.*",
			want: "DELETE FROM t USING s WHERE s.id = t.id RETURNING t.*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseSingle(t, tt.sql)
			assert.Equal(t, tt.want, stmt.SqlString())
		})
	}
}
