package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

func TestCreateTable(t *testing.T) {
	t.Run("columns and column constraints", func(t *testing.T) {
		stmt := parseSingle(t, `CREATE TABLE users (
			id bigint NOT NULL PRIMARY KEY,
			name text DEFAULT 'anon',
			age int4 CHECK (age >= 0),
			org_id bigint REFERENCES orgs (id) ON DELETE CASCADE
		)`)
		ct, ok := stmt.(*ast.CreateStmt)
		require.True(t, ok)
		assert.Equal(t, "users", ct.Relation.Relname)
		require.Len(t, ct.TableElts, 4)

		id := ct.TableElts[0].(*ast.ColumnDef)
		assert.Equal(t, "id", id.Colname)
		require.Len(t, id.Constraints, 2)
		assert.Equal(t, ast.CONSTR_NOTNULL, id.Constraints[0].Contype)
		assert.Equal(t, ast.CONSTR_PRIMARY, id.Constraints[1].Contype)

		name := ct.TableElts[1].(*ast.ColumnDef)
		require.Len(t, name.Constraints, 1)
		assert.Equal(t, ast.CONSTR_DEFAULT, name.Constraints[0].Contype)
		assert.NotNil(t, name.Constraints[0].RawExpr)

		age := ct.TableElts[2].(*ast.ColumnDef)
		assert.Equal(t, ast.CONSTR_CHECK, age.Constraints[0].Contype)

		fk := ct.TableElts[3].(*ast.ColumnDef).Constraints[0]
		assert.Equal(t, ast.CONSTR_FOREIGN, fk.Contype)
		assert.Equal(t, "orgs", fk.Pktable.Relname)
		assert.Equal(t, []string{"id"}, fk.PkAttrs)
		assert.Equal(t, byte(ast.FKCONSTR_ACTION_CASCADE), fk.FkDelAction)
		assert.Equal(t, byte(ast.FKCONSTR_ACTION_NOACTION), fk.FkUpdAction)
	})

	t.Run("table constraints", func(t *testing.T) {
		stmt := parseSingle(t, `CREATE TABLE t (
			a int4,
			b int4,
			CONSTRAINT t_pk PRIMARY KEY (a, b),
			UNIQUE (b),
			FOREIGN KEY (a) REFERENCES other (x) MATCH FULL ON UPDATE SET NULL
		)`)
		ct := stmt.(*ast.CreateStmt)
		require.Len(t, ct.TableElts, 5)

		pk := ct.TableElts[2].(*ast.Constraint)
		assert.Equal(t, ast.CONSTR_PRIMARY, pk.Contype)
		assert.Equal(t, "t_pk", pk.Conname)
		assert.Equal(t, []string{"a", "b"}, pk.Keys)

		uq := ct.TableElts[3].(*ast.Constraint)
		assert.Equal(t, ast.CONSTR_UNIQUE, uq.Contype)

		fk := ct.TableElts[4].(*ast.Constraint)
		assert.Equal(t, ast.CONSTR_FOREIGN, fk.Contype)
		assert.Equal(t, []string{"a"}, fk.Keys)
		assert.Equal(t, byte(ast.FKCONSTR_MATCH_FULL), fk.FkMatchtype)
		assert.Equal(t, byte(ast.FKCONSTR_ACTION_SETNULL), fk.FkUpdAction)
	})

	t.Run("identity and generated columns", func(t *testing.T) {
		ct := parseSingle(t, `CREATE TABLE t (
			id bigint GENERATED ALWAYS AS IDENTITY,
			doubled int4 GENERATED ALWAYS AS (id * 2) STORED
		)`).(*ast.CreateStmt)

		id := ct.TableElts[0].(*ast.ColumnDef).Constraints[0]
		assert.Equal(t, ast.CONSTR_IDENTITY, id.Contype)
		assert.Equal(t, byte('a'), id.GeneratedWhen)

		gen := ct.TableElts[1].(*ast.ColumnDef).Constraints[0]
		assert.Equal(t, ast.CONSTR_GENERATED, gen.Contype)
		assert.NotNil(t, gen.RawExpr)
	})

	t.Run("temp, unlogged and IF NOT EXISTS", func(t *testing.T) {
		ct := parseSingle(t, "CREATE TEMPORARY TABLE IF NOT EXISTS t (a int4)").(*ast.CreateStmt)
		assert.True(t, ct.Temporary)
		assert.True(t, ct.IfNotExists)

		ct = parseSingle(t, "CREATE UNLOGGED TABLE t (a int4)").(*ast.CreateStmt)
		assert.True(t, ct.Unlogged)
	})

	t.Run("inherits and storage options", func(t *testing.T) {
		ct := parseSingle(t, "CREATE TABLE t (a int4) INHERITS (base) WITH (fillfactor = 70)").(*ast.CreateStmt)
		require.Len(t, ct.InhRelations, 1)
		assert.Equal(t, "base", ct.InhRelations[0].Relname)
		require.Len(t, ct.Options, 1)
		assert.Equal(t, "fillfactor", ct.Options[0].Defname)
	})

	t.Run("collated column", func(t *testing.T) {
		ct := parseSingle(t, `CREATE TABLE t (name text COLLATE "de_DE")`).(*ast.CreateStmt)
		col := ct.TableElts[0].(*ast.ColumnDef)
		require.NotNil(t, col.CollClause)
		assert.Equal(t, []string{"de_DE"}, col.CollClause.Collname)
	})
}

func TestCreateTablePartitioning(t *testing.T) {
	t.Run("partitioned parent", func(t *testing.T) {
		ct := parseSingle(t, "CREATE TABLE m (logdate date) PARTITION BY RANGE (logdate)").(*ast.CreateStmt)
		require.NotNil(t, ct.PartSpec)
		assert.Equal(t, "range", ct.PartSpec.Strategy)
		require.Len(t, ct.PartSpec.PartParams, 1)
		assert.Equal(t, "logdate", ct.PartSpec.PartParams[0].Name)
	})

	t.Run("range partition child", func(t *testing.T) {
		ct := parseSingle(t, "CREATE TABLE m1 PARTITION OF m FOR VALUES FROM ('2024-01-01') TO ('2025-01-01')").(*ast.CreateStmt)
		require.Len(t, ct.InhRelations, 1)
		assert.Equal(t, "m", ct.InhRelations[0].Relname)
		require.NotNil(t, ct.PartBound)
		assert.Equal(t, "range", ct.PartBound.Strategy)
		assert.Len(t, ct.PartBound.LowerDatums, 1)
		assert.Len(t, ct.PartBound.UpperDatums, 1)
	})

	t.Run("list partition child", func(t *testing.T) {
		ct := parseSingle(t, "CREATE TABLE m_eu PARTITION OF m FOR VALUES IN ('de', 'fr')").(*ast.CreateStmt)
		assert.Equal(t, "list", ct.PartBound.Strategy)
		assert.Len(t, ct.PartBound.ListDatums, 2)
	})

	t.Run("hash partition child", func(t *testing.T) {
		ct := parseSingle(t, "CREATE TABLE m0 PARTITION OF m FOR VALUES WITH (MODULUS 4, REMAINDER 0)").(*ast.CreateStmt)
		assert.Equal(t, "hash", ct.PartBound.Strategy)
		assert.Equal(t, 4, ct.PartBound.Modulus)
		assert.Equal(t, 0, ct.PartBound.Remainder)
	})

	t.Run("default partition", func(t *testing.T) {
		ct := parseSingle(t, "CREATE TABLE m_def PARTITION OF m DEFAULT").(*ast.CreateStmt)
		assert.True(t, ct.PartBound.IsDefault)
	})

	t.Run("bad strategy", func(t *testing.T) {
		_, err := Parse("CREATE TABLE t (a int4) PARTITION BY fancy (a)")
		require.Error(t, err)
		perr := requireParseError(t, err)
		assert.Contains(t, perr.Message, "unrecognized partitioning strategy")
	})
}

func TestCreateTableAs(t *testing.T) {
	t.Run("table from query", func(t *testing.T) {
		stmt := parseSingle(t, "CREATE TABLE copy AS SELECT * FROM src WITH NO DATA")
		cta, ok := stmt.(*ast.CreateTableAsStmt)
		require.True(t, ok)
		assert.Equal(t, ast.OBJECT_TABLE, cta.ObjType)
		assert.Equal(t, "copy", cta.Into.Rel.Relname)
		assert.True(t, cta.WithNoData)
		_, ok = cta.Query.(*ast.SelectStmt)
		assert.True(t, ok)
	})

	t.Run("materialized view", func(t *testing.T) {
		cta := parseSingle(t, "CREATE MATERIALIZED VIEW mv AS SELECT 1").(*ast.CreateTableAsStmt)
		assert.Equal(t, ast.OBJECT_MATVIEW, cta.ObjType)
		assert.False(t, cta.WithNoData)
	})
}

func TestCreateIndex(t *testing.T) {
	t.Run("full form", func(t *testing.T) {
		stmt := parseSingle(t,
			"CREATE UNIQUE INDEX CONCURRENTLY idx ON t USING gin (a DESC NULLS LAST, lower(b)) INCLUDE (c) WHERE a > 0")
		idx, ok := stmt.(*ast.IndexStmt)
		require.True(t, ok)
		assert.True(t, idx.Unique)
		assert.True(t, idx.Concurrent)
		assert.Equal(t, "idx", idx.Idxname)
		assert.Equal(t, "gin", idx.AccessMethod)
		require.Len(t, idx.IndexParams, 2)
		assert.Equal(t, "a", idx.IndexParams[0].Name)
		assert.Equal(t, ast.SORTBY_DESC, idx.IndexParams[0].Ordering)
		assert.Equal(t, ast.SORTBY_NULLS_LAST, idx.IndexParams[0].NullsOrdering)
		assert.IsType(t, &ast.FuncCall{}, idx.IndexParams[1].Expr)
		require.Len(t, idx.IndexIncludingParams, 1)
		assert.NotNil(t, idx.WhereClause)
	})

	t.Run("unnamed with opclass", func(t *testing.T) {
		idx := parseSingle(t, "CREATE INDEX ON t (a text_pattern_ops)").(*ast.IndexStmt)
		assert.Empty(t, idx.Idxname)
		assert.Equal(t, []string{"text_pattern_ops"}, idx.IndexParams[0].OpClass)
	})
}

func TestCreateView(t *testing.T) {
	stmt := parseSingle(t, "CREATE OR REPLACE VIEW v (a, b) AS SELECT 1, 2")
	v, ok := stmt.(*ast.ViewStmt)
	require.True(t, ok)
	assert.True(t, v.Replace)
	assert.Equal(t, "v", v.View.Relname)
	assert.Equal(t, []string{"a", "b"}, v.Aliases)
	_, ok = v.Query.(*ast.SelectStmt)
	assert.True(t, ok)

	_, err := Parse("CREATE OR REPLACE TABLE t (a int4)")
	require.Error(t, err)
}

func TestCreateSequence(t *testing.T) {
	stmt := parseSingle(t,
		"CREATE SEQUENCE s START WITH 10 INCREMENT BY 2 MINVALUE 1 MAXVALUE 1000 CACHE 5 CYCLE")
	seq, ok := stmt.(*ast.CreateSeqStmt)
	require.True(t, ok)
	assert.Equal(t, "s", seq.Sequence.Relname)
	require.Len(t, seq.Options, 6)
	assert.Equal(t, "start", seq.Options[0].Defname)
	sv, ok := seq.Options[0].Arg.(*ast.Integer)
	require.True(t, ok)
	assert.Equal(t, int64(10), sv.IVal)
	assert.Equal(t, "cycle", seq.Options[5].Defname)

	seq = parseSingle(t, "CREATE SEQUENCE s NO CYCLE OWNED BY t.id").(*ast.CreateSeqStmt)
	require.Len(t, seq.Options, 2)
	assert.Equal(t, "owned_by", seq.Options[1].Defname)
}

func TestCreateSchemaAndRole(t *testing.T) {
	t.Run("schema with authorization", func(t *testing.T) {
		s := parseSingle(t, "CREATE SCHEMA sales AUTHORIZATION bob").(*ast.CreateSchemaStmt)
		assert.Equal(t, "sales", s.Schemaname)
		require.NotNil(t, s.Authrole)
		assert.Equal(t, "bob", s.Authrole.Rolename)
	})

	t.Run("authorization only", func(t *testing.T) {
		s := parseSingle(t, "CREATE SCHEMA AUTHORIZATION CURRENT_USER").(*ast.CreateSchemaStmt)
		assert.Empty(t, s.Schemaname)
		assert.Equal(t, ast.ROLESPEC_CURRENT_USER, s.Authrole.Roletype)
	})

	t.Run("role with options", func(t *testing.T) {
		r := parseSingle(t,
			"CREATE ROLE app WITH LOGIN PASSWORD 'secret' CONNECTION LIMIT 10 VALID UNTIL '2030-01-01'").(*ast.CreateRoleStmt)
		assert.Equal(t, "app", r.Role)
		require.Len(t, r.Options, 4)
		assert.Equal(t, "canlogin", r.Options[0].Defname)
		assert.Equal(t, "password", r.Options[1].Defname)
		assert.Equal(t, "connectionlimit", r.Options[2].Defname)
		assert.Equal(t, "validUntil", r.Options[3].Defname)
	})

	t.Run("user spelling", func(t *testing.T) {
		r := parseSingle(t, "CREATE USER u").(*ast.CreateRoleStmt)
		assert.Equal(t, ast.ROLESTMT_USER, r.StmtType)
	})
}

func TestAlterTable(t *testing.T) {
	t.Run("add and drop columns", func(t *testing.T) {
		stmt := parseSingle(t, "ALTER TABLE t ADD COLUMN a int4 NOT NULL, DROP COLUMN b CASCADE")
		at, ok := stmt.(*ast.AlterTableStmt)
		require.True(t, ok)
		require.Len(t, at.Cmds, 2)

		add := at.Cmds[0]
		assert.Equal(t, ast.AT_AddColumn, add.Subtype)
		col := add.Def.(*ast.ColumnDef)
		assert.Equal(t, "a", col.Colname)

		drop := at.Cmds[1]
		assert.Equal(t, ast.AT_DropColumn, drop.Subtype)
		assert.Equal(t, "b", drop.Name)
		assert.Equal(t, ast.DropCascade, drop.Behavior)
	})

	t.Run("alter column forms", func(t *testing.T) {
		at := parseSingle(t,
			"ALTER TABLE t ALTER COLUMN a TYPE text, ALTER b SET DEFAULT 0, ALTER b DROP DEFAULT, ALTER c SET NOT NULL, ALTER c DROP NOT NULL").(*ast.AlterTableStmt)
		require.Len(t, at.Cmds, 5)
		assert.Equal(t, ast.AT_AlterColumnType, at.Cmds[0].Subtype)
		assert.Equal(t, ast.AT_ColumnDefault, at.Cmds[1].Subtype)
		assert.NotNil(t, at.Cmds[1].Def)
		assert.Equal(t, ast.AT_ColumnDefault, at.Cmds[2].Subtype)
		assert.Nil(t, at.Cmds[2].Def)
		assert.Equal(t, ast.AT_SetNotNull, at.Cmds[3].Subtype)
		assert.Equal(t, ast.AT_DropNotNull, at.Cmds[4].Subtype)
	})

	t.Run("constraints", func(t *testing.T) {
		at := parseSingle(t,
			"ALTER TABLE t ADD CONSTRAINT ck CHECK (a > 0) NOT VALID, VALIDATE CONSTRAINT ck, DROP CONSTRAINT IF EXISTS old_ck").(*ast.AlterTableStmt)
		require.Len(t, at.Cmds, 3)
		assert.Equal(t, ast.AT_AddConstraint, at.Cmds[0].Subtype)
		con := at.Cmds[0].Def.(*ast.Constraint)
		assert.True(t, con.SkipValidation)
		assert.Equal(t, ast.AT_ValidateConstraint, at.Cmds[1].Subtype)
		assert.Equal(t, "ck", at.Cmds[1].Name)
		assert.Equal(t, ast.AT_DropConstraint, at.Cmds[2].Subtype)
		assert.True(t, at.Cmds[2].MissingOk)
	})

	t.Run("owner and triggers", func(t *testing.T) {
		at := parseSingle(t, "ALTER TABLE t OWNER TO alice, ENABLE TRIGGER trg").(*ast.AlterTableStmt)
		assert.Equal(t, ast.AT_ChangeOwner, at.Cmds[0].Subtype)
		rs := at.Cmds[0].Def.(*ast.RoleSpec)
		assert.Equal(t, "alice", rs.Rolename)
		assert.Equal(t, ast.AT_EnableTrig, at.Cmds[1].Subtype)
		assert.Equal(t, "trg", at.Cmds[1].Name)
	})

	t.Run("attach and detach partitions", func(t *testing.T) {
		at := parseSingle(t, "ALTER TABLE m ATTACH PARTITION m1 FOR VALUES IN (1)").(*ast.AlterTableStmt)
		assert.Equal(t, ast.AT_AttachPartition, at.Cmds[0].Subtype)

		at = parseSingle(t, "ALTER TABLE m DETACH PARTITION m1").(*ast.AlterTableStmt)
		assert.Equal(t, ast.AT_DetachPartition, at.Cmds[0].Subtype)
		child := at.Cmds[0].Def.(*ast.RangeVar)
		assert.Equal(t, "m1", child.Relname)
	})

	t.Run("IF EXISTS on the table", func(t *testing.T) {
		at := parseSingle(t, "ALTER TABLE IF EXISTS t ADD COLUMN a int4").(*ast.AlterTableStmt)
		assert.True(t, at.MissingOk)
	})
}

func TestRename(t *testing.T) {
	t.Run("rename table", func(t *testing.T) {
		rn := parseSingle(t, "ALTER TABLE old RENAME TO new").(*ast.RenameStmt)
		assert.Equal(t, ast.OBJECT_TABLE, rn.RenameType)
		assert.Equal(t, "old", rn.Relation.Relname)
		assert.Equal(t, "new", rn.Newname)
	})

	t.Run("rename column", func(t *testing.T) {
		rn := parseSingle(t, "ALTER TABLE t RENAME COLUMN a TO b").(*ast.RenameStmt)
		assert.Equal(t, ast.OBJECT_COLUMN, rn.RenameType)
		assert.Equal(t, ast.OBJECT_TABLE, rn.RelationType)
		assert.Equal(t, "a", rn.Subname)
		assert.Equal(t, "b", rn.Newname)
	})

	t.Run("rename index", func(t *testing.T) {
		rn := parseSingle(t, "ALTER INDEX i RENAME TO j").(*ast.RenameStmt)
		assert.Equal(t, ast.OBJECT_INDEX, rn.RenameType)
	})
}

func TestDrop(t *testing.T) {
	t.Run("tables", func(t *testing.T) {
		d := parseSingle(t, "DROP TABLE IF EXISTS a, b CASCADE").(*ast.DropStmt)
		assert.Equal(t, ast.OBJECT_TABLE, d.RemoveType)
		assert.True(t, d.MissingOk)
		assert.Equal(t, ast.DropCascade, d.Behavior)
		require.Len(t, d.Objects, 2)
	})

	t.Run("index concurrently", func(t *testing.T) {
		d := parseSingle(t, "DROP INDEX CONCURRENTLY i").(*ast.DropStmt)
		assert.Equal(t, ast.OBJECT_INDEX, d.RemoveType)
		assert.True(t, d.Concurrent)
	})

	t.Run("type objects use type names", func(t *testing.T) {
		d := parseSingle(t, "DROP TYPE mood").(*ast.DropStmt)
		assert.Equal(t, ast.OBJECT_TYPE, d.RemoveType)
		_, ok := d.Objects[0].(*ast.TypeName)
		assert.True(t, ok)
	})

	t.Run("other object classes", func(t *testing.T) {
		assert.Equal(t, ast.OBJECT_VIEW, parseSingle(t, "DROP VIEW v").(*ast.DropStmt).RemoveType)
		assert.Equal(t, ast.OBJECT_MATVIEW, parseSingle(t, "DROP MATERIALIZED VIEW mv").(*ast.DropStmt).RemoveType)
		assert.Equal(t, ast.OBJECT_SCHEMA, parseSingle(t, "DROP SCHEMA s").(*ast.DropStmt).RemoveType)
		assert.Equal(t, ast.OBJECT_ROLE, parseSingle(t, "DROP USER u").(*ast.DropStmt).RemoveType)
		assert.Equal(t, ast.OBJECT_EXTENSION, parseSingle(t, "DROP EXTENSION pgcrypto").(*ast.DropStmt).RemoveType)
	})
}

func TestTruncate(t *testing.T) {
	tr := parseSingle(t, "TRUNCATE TABLE a, ONLY b RESTART IDENTITY CASCADE").(*ast.TruncateStmt)
	require.Len(t, tr.Relations, 2)
	assert.False(t, tr.Relations[1].Inh)
	assert.True(t, tr.RestartSeqs)
	assert.Equal(t, ast.DropCascade, tr.Behavior)

	tr = parseSingle(t, "TRUNCATE t CONTINUE IDENTITY").(*ast.TruncateStmt)
	assert.False(t, tr.RestartSeqs)
}

func TestDDLDeparse(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		want string
	}{
		{
			name: "create table",
			sql:  "create table t (id bigint not null, name text default 'x')",
			want: "CREATE TABLE t (id bigint NOT NULL, name text DEFAULT 'x')",
		},
		{
			name: "create index",
			sql:  "create unique index idx on t (a desc)",
			want: "CREATE UNIQUE INDEX idx ON t (a DESC)",
		},
		{
			name: "drop table",
			sql:  "drop table if exists t cascade",
			want: "DROP TABLE IF EXISTS t CASCADE",
		},
		{
			name: "alter table add column",
			sql:  "alter table t add column a int4",
			want: "ALTER TABLE t ADD COLUMN a int4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := parseSingle(t, tt.sql)
			assert.Equal(t, tt.want, stmt.SqlString())
		})
	}
}
