package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

func TestTransactionStmts(t *testing.T) {
	t.Run("kinds", func(t *testing.T) {
		tests := []struct {
			sql  string
			kind ast.TransactionStmtKind
		}{
			{"BEGIN", ast.TRANS_STMT_BEGIN},
			{"BEGIN WORK", ast.TRANS_STMT_BEGIN},
			{"START TRANSACTION", ast.TRANS_STMT_START},
			{"COMMIT", ast.TRANS_STMT_COMMIT},
			{"END", ast.TRANS_STMT_COMMIT},
			{"ROLLBACK", ast.TRANS_STMT_ROLLBACK},
			{"ABORT", ast.TRANS_STMT_ROLLBACK},
		}
		for _, tt := range tests {
			t.Run(tt.sql, func(t *testing.T) {
				tx := parseSingle(t, tt.sql).(*ast.TransactionStmt)
				assert.Equal(t, tt.kind, tx.Kind)
			})
		}
	})

	t.Run("savepoints", func(t *testing.T) {
		tx := parseSingle(t, "SAVEPOINT sp1").(*ast.TransactionStmt)
		assert.Equal(t, ast.TRANS_STMT_SAVEPOINT, tx.Kind)
		assert.Equal(t, "sp1", tx.SavepointName)

		tx = parseSingle(t, "ROLLBACK TO SAVEPOINT sp1").(*ast.TransactionStmt)
		assert.Equal(t, ast.TRANS_STMT_ROLLBACK_TO, tx.Kind)
		assert.Equal(t, "sp1", tx.SavepointName)

		tx = parseSingle(t, "RELEASE sp1").(*ast.TransactionStmt)
		assert.Equal(t, ast.TRANS_STMT_RELEASE, tx.Kind)
	})

	t.Run("transaction modes", func(t *testing.T) {
		tx := parseSingle(t, "BEGIN ISOLATION LEVEL REPEATABLE READ, READ ONLY").(*ast.TransactionStmt)
		require.Len(t, tx.Options, 2)
		assert.Equal(t, "transaction_isolation", tx.Options[0].Defname)
		iso := tx.Options[0].Arg.(*ast.String)
		assert.Equal(t, "repeatable read", iso.SVal)
		assert.Equal(t, "transaction_read_only", tx.Options[1].Defname)
	})

	t.Run("AND CHAIN", func(t *testing.T) {
		tx := parseSingle(t, "COMMIT AND CHAIN").(*ast.TransactionStmt)
		assert.True(t, tx.Chain)
		tx = parseSingle(t, "ROLLBACK AND NO CHAIN").(*ast.TransactionStmt)
		assert.False(t, tx.Chain)
	})
}

func TestSetResetShow(t *testing.T) {
	t.Run("SET generic", func(t *testing.T) {
		s := parseSingle(t, "SET search_path TO public, app").(*ast.VariableSetStmt)
		assert.Equal(t, ast.VAR_SET_VALUE, s.Kind)
		assert.Equal(t, "search_path", s.Name)
		assert.Len(t, s.Args, 2)
	})

	t.Run("SET LOCAL with equals", func(t *testing.T) {
		s := parseSingle(t, "SET LOCAL statement_timeout = '5s'").(*ast.VariableSetStmt)
		assert.True(t, s.IsLocal)
		assert.Equal(t, "statement_timeout", s.Name)
	})

	t.Run("SET TO DEFAULT", func(t *testing.T) {
		s := parseSingle(t, "SET search_path TO DEFAULT").(*ast.VariableSetStmt)
		assert.Equal(t, ast.VAR_SET_DEFAULT, s.Kind)
	})

	t.Run("SET TIME ZONE", func(t *testing.T) {
		s := parseSingle(t, "SET TIME ZONE 'UTC'").(*ast.VariableSetStmt)
		assert.Equal(t, "timezone", s.Name)

		s = parseSingle(t, "SET TIME ZONE LOCAL").(*ast.VariableSetStmt)
		assert.Equal(t, ast.VAR_SET_DEFAULT, s.Kind)
	})

	t.Run("SET NAMES", func(t *testing.T) {
		s := parseSingle(t, "SET NAMES 'UTF8'").(*ast.VariableSetStmt)
		assert.Equal(t, "client_encoding", s.Name)
	})

	t.Run("SET SESSION CHARACTERISTICS spelling rejected", func(t *testing.T) {
		s := parseSingle(t, "SET SESSION TRANSACTION ISOLATION LEVEL SERIALIZABLE").(*ast.VariableSetStmt)
		assert.Equal(t, "transaction_isolation", s.Name)
	})

	t.Run("RESET", func(t *testing.T) {
		s := parseSingle(t, "RESET search_path").(*ast.VariableSetStmt)
		assert.Equal(t, ast.VAR_RESET, s.Kind)
		assert.Equal(t, "search_path", s.Name)

		s = parseSingle(t, "RESET ALL").(*ast.VariableSetStmt)
		assert.Equal(t, ast.VAR_RESET_ALL, s.Kind)

		s = parseSingle(t, "RESET TIME ZONE").(*ast.VariableSetStmt)
		assert.Equal(t, "timezone", s.Name)
	})

	t.Run("SHOW", func(t *testing.T) {
		assert.Equal(t, "server_version", parseSingle(t, "SHOW server_version").(*ast.VariableShowStmt).Name)
		assert.Equal(t, "all", parseSingle(t, "SHOW ALL").(*ast.VariableShowStmt).Name)
		assert.Equal(t, "timezone", parseSingle(t, "SHOW TIME ZONE").(*ast.VariableShowStmt).Name)
		assert.Equal(t, "transaction_isolation",
			parseSingle(t, "SHOW TRANSACTION ISOLATION LEVEL").(*ast.VariableShowStmt).Name)
	})
}

func TestExplain(t *testing.T) {
	t.Run("legacy options", func(t *testing.T) {
		ex := parseSingle(t, "EXPLAIN ANALYZE VERBOSE SELECT 1").(*ast.ExplainStmt)
		require.Len(t, ex.Options, 2)
		assert.Equal(t, "analyze", ex.Options[0].Defname)
		assert.Equal(t, "verbose", ex.Options[1].Defname)
		_, ok := ex.Query.(*ast.SelectStmt)
		assert.True(t, ok)
	})

	t.Run("parenthesized options", func(t *testing.T) {
		ex := parseSingle(t, "EXPLAIN (ANALYZE, COSTS false, FORMAT json) UPDATE t SET a = 1").(*ast.ExplainStmt)
		require.Len(t, ex.Options, 3)
		assert.Equal(t, "costs", ex.Options[1].Defname)
		b, ok := ex.Options[1].Arg.(*ast.Boolean)
		require.True(t, ok)
		assert.False(t, b.BoolVal)
		assert.Equal(t, "format", ex.Options[2].Defname)
		_, ok = ex.Query.(*ast.UpdateStmt)
		assert.True(t, ok)
	})
}

func TestCopy(t *testing.T) {
	t.Run("table to file", func(t *testing.T) {
		c := parseSingle(t, "COPY t (a, b) TO '/tmp/out.csv' WITH (FORMAT csv, HEADER true)").(*ast.CopyStmt)
		assert.Equal(t, "t", c.Relation.Relname)
		assert.Equal(t, []string{"a", "b"}, c.Attlist)
		assert.False(t, c.IsFrom)
		assert.Equal(t, "/tmp/out.csv", c.Filename)
		require.Len(t, c.Options, 2)
		assert.Equal(t, "format", c.Options[0].Defname)
	})

	t.Run("from stdin", func(t *testing.T) {
		c := parseSingle(t, "COPY t FROM STDIN").(*ast.CopyStmt)
		assert.True(t, c.IsFrom)
		assert.Empty(t, c.Filename)
	})

	t.Run("query to program", func(t *testing.T) {
		c := parseSingle(t, "COPY (SELECT * FROM t) TO PROGRAM 'gzip > out.gz'").(*ast.CopyStmt)
		assert.Nil(t, c.Relation)
		assert.NotNil(t, c.Query)
		assert.True(t, c.IsProgram)
	})

	t.Run("legacy options", func(t *testing.T) {
		c := parseSingle(t, "COPY t FROM 'in.txt' WITH CSV HEADER DELIMITER ';'").(*ast.CopyStmt)
		require.Len(t, c.Options, 3)
		assert.Equal(t, "format", c.Options[0].Defname)
		assert.Equal(t, "header", c.Options[1].Defname)
		assert.Equal(t, "delimiter", c.Options[2].Defname)
	})

	t.Run("COPY FROM rejects a query source", func(t *testing.T) {
		_, err := Parse("COPY (SELECT 1) FROM STDIN")
		require.Error(t, err)
		perr := requireParseError(t, err)
		assert.Contains(t, perr.Message, "COPY FROM does not support a query source")
	})
}

func TestListenNotify(t *testing.T) {
	l := parseSingle(t, "LISTEN events").(*ast.ListenStmt)
	assert.Equal(t, "events", l.Conditionname)

	u := parseSingle(t, "UNLISTEN *").(*ast.UnlistenStmt)
	assert.Empty(t, u.Conditionname)
	assert.Equal(t, "UNLISTEN *", u.SqlString())

	u = parseSingle(t, "UNLISTEN events").(*ast.UnlistenStmt)
	assert.Equal(t, "events", u.Conditionname)

	n := parseSingle(t, "NOTIFY events, 'hello'").(*ast.NotifyStmt)
	assert.Equal(t, "events", n.Conditionname)
	assert.True(t, n.HasPayload)
	assert.Equal(t, "hello", n.Payload)

	n = parseSingle(t, "NOTIFY events").(*ast.NotifyStmt)
	assert.False(t, n.HasPayload)
}

func TestVacuumAnalyze(t *testing.T) {
	t.Run("legacy vacuum", func(t *testing.T) {
		v := parseSingle(t, "VACUUM FULL VERBOSE t").(*ast.VacuumStmt)
		assert.True(t, v.IsVacuumcmd)
		require.Len(t, v.Options, 2)
		assert.Equal(t, "full", v.Options[0].Defname)
		require.Len(t, v.Rels, 1)
		assert.Equal(t, "t", v.Rels[0].Relation.Relname)
	})

	t.Run("parenthesized options", func(t *testing.T) {
		v := parseSingle(t, "VACUUM (ANALYZE, SKIP_LOCKED true) t (a, b)").(*ast.VacuumStmt)
		require.Len(t, v.Options, 2)
		assert.Equal(t, "analyze", v.Options[0].Defname)
		assert.Equal(t, "skip_locked", v.Options[1].Defname)
		assert.Equal(t, []string{"a", "b"}, v.Rels[0].VaCols)
	})

	t.Run("analyze", func(t *testing.T) {
		v := parseSingle(t, "ANALYZE VERBOSE t").(*ast.VacuumStmt)
		assert.False(t, v.IsVacuumcmd)
		require.Len(t, v.Options, 1)
		assert.Equal(t, "verbose", v.Options[0].Defname)
	})

	t.Run("bare vacuum", func(t *testing.T) {
		v := parseSingle(t, "VACUUM").(*ast.VacuumStmt)
		assert.Empty(t, v.Rels)
	})
}

func TestGrantRevoke(t *testing.T) {
	t.Run("table privileges", func(t *testing.T) {
		g := parseSingle(t, "GRANT SELECT, INSERT (a, b) ON TABLE t TO alice, PUBLIC WITH GRANT OPTION").(*ast.GrantStmt)
		assert.True(t, g.IsGrant)
		assert.Equal(t, ast.OBJECT_TABLE, g.Objtype)
		require.Len(t, g.Privileges, 2)
		assert.Equal(t, "select", g.Privileges[0].PrivName)
		assert.Equal(t, []string{"a", "b"}, g.Privileges[1].Cols)
		require.Len(t, g.Grantees, 2)
		assert.Equal(t, ast.ROLESPEC_PUBLIC, g.Grantees[1].Roletype)
		assert.True(t, g.GrantOption)
	})

	t.Run("all privileges default object class", func(t *testing.T) {
		g := parseSingle(t, "GRANT ALL PRIVILEGES ON t TO bob").(*ast.GrantStmt)
		assert.Nil(t, g.Privileges)
		assert.Equal(t, ast.OBJECT_TABLE, g.Objtype)
	})

	t.Run("all tables in schema", func(t *testing.T) {
		g := parseSingle(t, "GRANT SELECT ON ALL TABLES IN SCHEMA public TO bob").(*ast.GrantStmt)
		assert.Equal(t, ast.ACL_TARGET_ALL_IN_SCHEMA, g.Targtype)
		assert.Equal(t, ast.OBJECT_TABLE, g.Objtype)
	})

	t.Run("schema and database targets", func(t *testing.T) {
		g := parseSingle(t, "GRANT USAGE ON SCHEMA public TO bob").(*ast.GrantStmt)
		assert.Equal(t, ast.OBJECT_SCHEMA, g.Objtype)
		assert.Equal(t, "usage", g.Privileges[0].PrivName)

		g = parseSingle(t, "GRANT CONNECT ON DATABASE app TO bob").(*ast.GrantStmt)
		assert.Equal(t, ast.OBJECT_DATABASE, g.Objtype)
	})

	t.Run("function target", func(t *testing.T) {
		g := parseSingle(t, "GRANT EXECUTE ON FUNCTION f(int4, text) TO bob").(*ast.GrantStmt)
		assert.Equal(t, ast.OBJECT_FUNCTION, g.Objtype)
		owa := g.Objects[0].(*ast.ObjectWithArgs)
		assert.Equal(t, []string{"f"}, owa.Objname)
		assert.Len(t, owa.Objargs, 2)
	})

	t.Run("revoke", func(t *testing.T) {
		g := parseSingle(t, "REVOKE GRANT OPTION FOR SELECT ON t FROM bob CASCADE").(*ast.GrantStmt)
		assert.False(t, g.IsGrant)
		assert.True(t, g.GrantOption)
		assert.Equal(t, ast.DropCascade, g.Behavior)
	})
}

func TestPreparedStatements(t *testing.T) {
	t.Run("PREPARE", func(t *testing.T) {
		p := parseSingle(t, "PREPARE q (int4, text) AS SELECT $1, $2").(*ast.PrepareStmt)
		assert.Equal(t, "q", p.Name)
		require.Len(t, p.Argtypes, 2)
		sel := p.Query.(*ast.SelectStmt)
		pr, ok := sel.TargetList[0].Val.(*ast.ParamRef)
		require.True(t, ok)
		assert.Equal(t, 1, pr.Number)
	})

	t.Run("EXECUTE", func(t *testing.T) {
		e := parseSingle(t, "EXECUTE q (1, 'x')").(*ast.ExecuteStmt)
		assert.Equal(t, "q", e.Name)
		assert.Len(t, e.Params, 2)
	})

	t.Run("DEALLOCATE", func(t *testing.T) {
		d := parseSingle(t, "DEALLOCATE q").(*ast.DeallocateStmt)
		assert.Equal(t, "q", d.Name)

		d = parseSingle(t, "DEALLOCATE PREPARE ALL").(*ast.DeallocateStmt)
		assert.Empty(t, d.Name)
	})
}

func TestUtilityDeparse(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "begin with modes",
			sql:  "begin isolation level serializable, read only",
			want: "BEGIN ISOLATION LEVEL SERIALIZABLE READ ONLY",
		},
		{
			name: "set",
			sql:  "set search_path to public",
			want: "SET search_path TO 'public'",
		},
		{
			name: "show",
			sql:  "show all",
			want: "SHOW ALL",
		},
		{
			name: "notify",
			sql:  "notify events, 'x'",
			want: "NOTIFY events, 'x'",
		},
		{
			name: "deallocate all",
			sql:  "deallocate all",
			want: "DEALLOCATE ALL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseSingle(t, tt.sql)
			assert.Equal(t, tt.want, stmt.SqlString())
		})
	}
}
