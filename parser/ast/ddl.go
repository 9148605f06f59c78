/*
 * DDL statement nodes: CREATE/ALTER/DROP TABLE and friends, indexes, views,
 * sequences, schemas and roles. Shapes follow parsenodes.h.
 */

package ast

import (
	"fmt"
	"strings"
)

// ObjectType identifies the object class of DROP, GRANT and rename targets.
type ObjectType int

const (
	OBJECT_TABLE ObjectType = iota
	OBJECT_INDEX
	OBJECT_SEQUENCE
	OBJECT_VIEW
	OBJECT_MATVIEW
	OBJECT_SCHEMA
	OBJECT_DATABASE
	OBJECT_FUNCTION
	OBJECT_TYPE
	OBJECT_ROLE
	OBJECT_COLUMN
	OBJECT_EXTENSION
	OBJECT_TRIGGER
)

var objectTypeNames = map[ObjectType]string{
	OBJECT_TABLE:     "TABLE",
	OBJECT_INDEX:     "INDEX",
	OBJECT_SEQUENCE:  "SEQUENCE",
	OBJECT_VIEW:      "VIEW",
	OBJECT_MATVIEW:   "MATERIALIZED VIEW",
	OBJECT_SCHEMA:    "SCHEMA",
	OBJECT_DATABASE:  "DATABASE",
	OBJECT_FUNCTION:  "FUNCTION",
	OBJECT_TYPE:      "TYPE",
	OBJECT_ROLE:      "ROLE",
	OBJECT_COLUMN:    "COLUMN",
	OBJECT_EXTENSION: "EXTENSION",
	OBJECT_TRIGGER:   "TRIGGER",
}

// DropBehavior is the CASCADE/RESTRICT option.
type DropBehavior int

const (
	DropRestrict DropBehavior = iota
	DropCascade
)

func (b DropBehavior) suffix() string {
	if b == DropCascade {
		return " CASCADE"
	}
	return ""
}

// DefElem is a generic name/value option, used by WITH lists, sequence
// options, EXPLAIN options and role options.
type DefElem struct {
	BaseNode
	Defname string
	Arg     Node // nil for a bare flag
}

// NewDefElem creates an option element.
func NewDefElem(name string, arg Node, span Span) *DefElem {
	return &DefElem{BaseNode: BaseNode{Tag: T_DefElem, Loc: span}, Defname: name, Arg: arg}
}

func (n *DefElem) String() string { return fmt.Sprintf("DefElem(%s)@%s", n.Defname, n.Loc) }

func (n *DefElem) SqlString() string {
	if n.Arg == nil {
		return n.Defname
	}
	return n.Defname + " = " + n.Arg.SqlString()
}

// IndexElem is one element of an index definition or a conflict target:
// a column name or an expression, plus per-element options.
type IndexElem struct {
	BaseNode
	Name          string
	Expr          Node
	Collation     []string
	OpClass       []string
	Ordering      SortByDir
	NullsOrdering SortByNulls
}

func (n *IndexElem) String() string { return fmt.Sprintf("IndexElem(%s)@%s", n.Name, n.Loc) }

func (n *IndexElem) SqlString() string {
	var sb strings.Builder
	if n.Name != "" {
		sb.WriteString(QuoteIdentifier(n.Name))
	} else {
		sb.WriteString("(" + n.Expr.SqlString() + ")")
	}
	if len(n.Collation) > 0 {
		sb.WriteString(" COLLATE " + QuoteQualified(n.Collation...))
	}
	if len(n.OpClass) > 0 {
		sb.WriteString(" " + QuoteQualified(n.OpClass...))
	}
	switch n.Ordering {
	case SORTBY_ASC:
		sb.WriteString(" ASC")
	case SORTBY_DESC:
		sb.WriteString(" DESC")
	}
	switch n.NullsOrdering {
	case SORTBY_NULLS_FIRST:
		sb.WriteString(" NULLS FIRST")
	case SORTBY_NULLS_LAST:
		sb.WriteString(" NULLS LAST")
	}
	return sb.String()
}

// ConstrType enumerates column and table constraint kinds.
type ConstrType int

const (
	CONSTR_NULL ConstrType = iota
	CONSTR_NOTNULL
	CONSTR_DEFAULT
	CONSTR_IDENTITY
	CONSTR_GENERATED
	CONSTR_CHECK
	CONSTR_PRIMARY
	CONSTR_UNIQUE
	CONSTR_EXCLUSION
	CONSTR_FOREIGN
)

// Foreign key match and action codes, as stored in pg_constraint.
const (
	FKCONSTR_MATCH_FULL    = 'f'
	FKCONSTR_MATCH_PARTIAL = 'p'
	FKCONSTR_MATCH_SIMPLE  = 's'

	FKCONSTR_ACTION_NOACTION   = 'a'
	FKCONSTR_ACTION_RESTRICT   = 'r'
	FKCONSTR_ACTION_CASCADE    = 'c'
	FKCONSTR_ACTION_SETNULL    = 'n'
	FKCONSTR_ACTION_SETDEFAULT = 'd'
)

// Constraint is a column or table constraint.
type Constraint struct {
	BaseNode
	Contype        ConstrType
	Conname        string
	RawExpr        Node     // DEFAULT or CHECK expression
	GeneratedWhen  byte     // 'a' always, 'd' by default (identity/generated)
	Keys           []string // PRIMARY KEY / UNIQUE / FOREIGN KEY columns
	Pktable        *RangeVar
	PkAttrs        []string
	FkMatchtype    byte
	FkUpdAction    byte
	FkDelAction    byte
	Deferrable     bool
	Initdeferred   bool
	SkipValidation bool // NOT VALID
}

func (n *Constraint) String() string { return fmt.Sprintf("Constraint(%d)@%s", n.Contype, n.Loc) }

func fkAction(code byte) string {
	switch code {
	case FKCONSTR_ACTION_RESTRICT:
		return "RESTRICT"
	case FKCONSTR_ACTION_CASCADE:
		return "CASCADE"
	case FKCONSTR_ACTION_SETNULL:
		return "SET NULL"
	case FKCONSTR_ACTION_SETDEFAULT:
		return "SET DEFAULT"
	}
	return ""
}

func quoteNameList(names []string) string {
	parts := make([]string, len(names))
	for i, c := range names {
		parts[i] = QuoteIdentifier(c)
	}
	return strings.Join(parts, ", ")
}

func (n *Constraint) SqlString() string {
	var sb strings.Builder
	if n.Conname != "" {
		sb.WriteString("CONSTRAINT " + QuoteIdentifier(n.Conname) + " ")
	}
	switch n.Contype {
	case CONSTR_NULL:
		sb.WriteString("NULL")
	case CONSTR_NOTNULL:
		sb.WriteString("NOT NULL")
	case CONSTR_DEFAULT:
		sb.WriteString("DEFAULT " + n.RawExpr.SqlString())
	case CONSTR_IDENTITY:
		if n.GeneratedWhen == 'a' {
			sb.WriteString("GENERATED ALWAYS AS IDENTITY")
		} else {
			sb.WriteString("GENERATED BY DEFAULT AS IDENTITY")
		}
	case CONSTR_GENERATED:
		sb.WriteString("GENERATED ALWAYS AS (" + n.RawExpr.SqlString() + ") STORED")
	case CONSTR_CHECK:
		sb.WriteString("CHECK (" + n.RawExpr.SqlString() + ")")
	case CONSTR_PRIMARY:
		sb.WriteString("PRIMARY KEY")
		if len(n.Keys) > 0 {
			sb.WriteString(" (" + quoteNameList(n.Keys) + ")")
		}
	case CONSTR_UNIQUE:
		sb.WriteString("UNIQUE")
		if len(n.Keys) > 0 {
			sb.WriteString(" (" + quoteNameList(n.Keys) + ")")
		}
	case CONSTR_FOREIGN:
		if len(n.Keys) > 0 {
			sb.WriteString("FOREIGN KEY (" + quoteNameList(n.Keys) + ") ")
		}
		sb.WriteString("REFERENCES " + n.Pktable.SqlString())
		if len(n.PkAttrs) > 0 {
			sb.WriteString(" (" + quoteNameList(n.PkAttrs) + ")")
		}
		switch n.FkMatchtype {
		case FKCONSTR_MATCH_FULL:
			sb.WriteString(" MATCH FULL")
		case FKCONSTR_MATCH_PARTIAL:
			sb.WriteString(" MATCH PARTIAL")
		}
		if a := fkAction(n.FkUpdAction); a != "" {
			sb.WriteString(" ON UPDATE " + a)
		}
		if a := fkAction(n.FkDelAction); a != "" {
			sb.WriteString(" ON DELETE " + a)
		}
	}
	if n.Deferrable {
		sb.WriteString(" DEFERRABLE")
		if n.Initdeferred {
			sb.WriteString(" INITIALLY DEFERRED")
		}
	}
	if n.SkipValidation {
		sb.WriteString(" NOT VALID")
	}
	return sb.String()
}

// ColumnDef is a column definition in CREATE TABLE or ALTER TABLE ADD COLUMN.
type ColumnDef struct {
	BaseNode
	Colname     string
	TypeName    *TypeName
	Constraints []*Constraint
	CollClause  *CollateClause
}

// NewColumnDef creates a column definition.
func NewColumnDef(name string, typ *TypeName, span Span) *ColumnDef {
	return &ColumnDef{BaseNode: BaseNode{Tag: T_ColumnDef, Loc: span}, Colname: name, TypeName: typ}
}

func (n *ColumnDef) String() string { return fmt.Sprintf("ColumnDef(%s)@%s", n.Colname, n.Loc) }

func (n *ColumnDef) SqlString() string {
	var sb strings.Builder
	sb.WriteString(QuoteIdentifier(n.Colname))
	if n.TypeName != nil {
		sb.WriteString(" " + n.TypeName.SqlString())
	}
	if n.CollClause != nil {
		sb.WriteString(" COLLATE " + QuoteQualified(n.CollClause.Collname...))
	}
	for _, c := range n.Constraints {
		sb.WriteString(" " + c.SqlString())
	}
	return sb.String()
}

// PartitionElem is one column or expression of a PARTITION BY list.
type PartitionElem struct {
	BaseNode
	Name string
	Expr Node
}

func (n *PartitionElem) String() string { return fmt.Sprintf("PartitionElem(%s)@%s", n.Name, n.Loc) }

func (n *PartitionElem) SqlString() string {
	if n.Name != "" {
		return QuoteIdentifier(n.Name)
	}
	return "(" + n.Expr.SqlString() + ")"
}

// PartitionSpec is the PARTITION BY clause of CREATE TABLE.
type PartitionSpec struct {
	BaseNode
	Strategy   string // "range", "list" or "hash"
	PartParams []*PartitionElem
}

func (n *PartitionSpec) String() string {
	return fmt.Sprintf("PartitionSpec(%s)@%s", n.Strategy, n.Loc)
}

func (n *PartitionSpec) SqlString() string {
	return "PARTITION BY " + strings.ToUpper(n.Strategy) + " (" + sqlJoin(n.PartParams, ", ") + ")"
}

// PartitionBoundSpec is the FOR VALUES clause of a partition child.
type PartitionBoundSpec struct {
	BaseNode
	Strategy    string // matches the parent's strategy
	IsDefault   bool
	ListDatums  []Node
	LowerDatums []Node
	UpperDatums []Node
	Modulus     int
	Remainder   int
}

func (n *PartitionBoundSpec) String() string { return fmt.Sprintf("PartitionBoundSpec@%s", n.Loc) }

func (n *PartitionBoundSpec) SqlString() string {
	if n.IsDefault {
		return "DEFAULT"
	}
	switch n.Strategy {
	case "list":
		return "FOR VALUES IN (" + sqlJoin(n.ListDatums, ", ") + ")"
	case "range":
		return "FOR VALUES FROM (" + sqlJoin(n.LowerDatums, ", ") + ") TO (" + sqlJoin(n.UpperDatums, ", ") + ")"
	default:
		return fmt.Sprintf("FOR VALUES WITH (MODULUS %d, REMAINDER %d)", n.Modulus, n.Remainder)
	}
}

// CreateStmt is CREATE TABLE.
type CreateStmt struct {
	BaseNode
	Relation     *RangeVar
	TableElts    []Node // ColumnDef and Constraint nodes
	InhRelations []*RangeVar
	PartSpec     *PartitionSpec
	PartBound    *PartitionBoundSpec
	Options      []*DefElem
	Temporary    bool
	Unlogged     bool
	IfNotExists  bool
}

func (n *CreateStmt) String() string {
	return fmt.Sprintf("CreateStmt(%s)@%s", n.Relation.Relname, n.Loc)
}

func (n *CreateStmt) StatementType() string { return "CREATE TABLE" }

func (n *CreateStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString("CREATE ")
	if n.Temporary {
		sb.WriteString("TEMPORARY ")
	} else if n.Unlogged {
		sb.WriteString("UNLOGGED ")
	}
	sb.WriteString("TABLE ")
	if n.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(n.Relation.SqlString())
	if n.PartBound != nil && len(n.InhRelations) == 1 {
		sb.WriteString(" PARTITION OF " + n.InhRelations[0].SqlString())
		if len(n.TableElts) > 0 {
			sb.WriteString(" (" + sqlJoin(n.TableElts, ", ") + ")")
		}
		sb.WriteString(" " + n.PartBound.SqlString())
	} else {
		sb.WriteString(" (" + sqlJoin(n.TableElts, ", ") + ")")
		if len(n.InhRelations) > 0 {
			sb.WriteString(" INHERITS (" + sqlJoin(n.InhRelations, ", ") + ")")
		}
	}
	if n.PartSpec != nil {
		sb.WriteString(" " + n.PartSpec.SqlString())
	}
	if len(n.Options) > 0 {
		sb.WriteString(" WITH (" + sqlJoin(n.Options, ", ") + ")")
	}
	return sb.String()
}

// CreateTableAsStmt is CREATE TABLE AS or CREATE MATERIALIZED VIEW.
type CreateTableAsStmt struct {
	BaseNode
	Query       Node
	Into        *IntoClause
	ObjType     ObjectType // OBJECT_TABLE or OBJECT_MATVIEW
	Temporary   bool
	IfNotExists bool
	WithNoData  bool
}

func (n *CreateTableAsStmt) String() string { return fmt.Sprintf("CreateTableAsStmt@%s", n.Loc) }

func (n *CreateTableAsStmt) StatementType() string {
	if n.ObjType == OBJECT_MATVIEW {
		return "CREATE MATERIALIZED VIEW"
	}
	return "CREATE TABLE AS"
}

func (n *CreateTableAsStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString("CREATE ")
	if n.Temporary {
		sb.WriteString("TEMPORARY ")
	}
	if n.ObjType == OBJECT_MATVIEW {
		sb.WriteString("MATERIALIZED VIEW ")
	} else {
		sb.WriteString("TABLE ")
	}
	if n.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(n.Into.Rel.SqlString())
	sb.WriteString(" AS " + n.Query.SqlString())
	if n.WithNoData {
		sb.WriteString(" WITH NO DATA")
	}
	return sb.String()
}

// IndexStmt is CREATE INDEX.
type IndexStmt struct {
	BaseNode
	Idxname              string // empty when unnamed
	Relation             *RangeVar
	AccessMethod         string // empty means default (btree)
	IndexParams          []*IndexElem
	IndexIncludingParams []*IndexElem
	WhereClause          Node
	Unique               bool
	Concurrent           bool
	IfNotExists          bool
}

func (n *IndexStmt) String() string { return fmt.Sprintf("IndexStmt(%s)@%s", n.Idxname, n.Loc) }

func (n *IndexStmt) StatementType() string { return "CREATE INDEX" }

func (n *IndexStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString("CREATE ")
	if n.Unique {
		sb.WriteString("UNIQUE ")
	}
	sb.WriteString("INDEX ")
	if n.Concurrent {
		sb.WriteString("CONCURRENTLY ")
	}
	if n.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	if n.Idxname != "" {
		sb.WriteString(QuoteIdentifier(n.Idxname) + " ")
	}
	sb.WriteString("ON " + n.Relation.SqlString())
	if n.AccessMethod != "" {
		sb.WriteString(" USING " + n.AccessMethod)
	}
	sb.WriteString(" (" + sqlJoin(n.IndexParams, ", ") + ")")
	if len(n.IndexIncludingParams) > 0 {
		sb.WriteString(" INCLUDE (" + sqlJoin(n.IndexIncludingParams, ", ") + ")")
	}
	if n.WhereClause != nil {
		sb.WriteString(" WHERE " + n.WhereClause.SqlString())
	}
	return sb.String()
}

// ViewStmt is CREATE VIEW.
type ViewStmt struct {
	BaseNode
	View      *RangeVar
	Aliases   []string
	Query     Node
	Replace   bool
	Temporary bool
}

func (n *ViewStmt) String() string { return fmt.Sprintf("ViewStmt(%s)@%s", n.View.Relname, n.Loc) }

func (n *ViewStmt) StatementType() string { return "CREATE VIEW" }

func (n *ViewStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString("CREATE ")
	if n.Replace {
		sb.WriteString("OR REPLACE ")
	}
	if n.Temporary {
		sb.WriteString("TEMPORARY ")
	}
	sb.WriteString("VIEW " + n.View.SqlString())
	if len(n.Aliases) > 0 {
		sb.WriteString(" (" + quoteNameList(n.Aliases) + ")")
	}
	sb.WriteString(" AS " + n.Query.SqlString())
	return sb.String()
}

// CreateSeqStmt is CREATE SEQUENCE.
type CreateSeqStmt struct {
	BaseNode
	Sequence    *RangeVar
	Options     []*DefElem
	Temporary   bool
	IfNotExists bool
}

func (n *CreateSeqStmt) String() string {
	return fmt.Sprintf("CreateSeqStmt(%s)@%s", n.Sequence.Relname, n.Loc)
}

func (n *CreateSeqStmt) StatementType() string { return "CREATE SEQUENCE" }

// seqOptionText writes one sequence option the way it was written.
func seqOptionText(d *DefElem) string {
	switch d.Defname {
	case "cycle":
		if b, ok := d.Arg.(*Boolean); ok && !b.BoolVal {
			return "NO CYCLE"
		}
		return "CYCLE"
	case "start":
		return "START WITH " + d.Arg.SqlString()
	case "increment":
		return "INCREMENT BY " + d.Arg.SqlString()
	case "minvalue":
		if d.Arg == nil {
			return "NO MINVALUE"
		}
		return "MINVALUE " + d.Arg.SqlString()
	case "maxvalue":
		if d.Arg == nil {
			return "NO MAXVALUE"
		}
		return "MAXVALUE " + d.Arg.SqlString()
	case "cache":
		return "CACHE " + d.Arg.SqlString()
	case "owned_by":
		return "OWNED BY " + d.Arg.SqlString()
	}
	return strings.ToUpper(d.Defname)
}

func (n *CreateSeqStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString("CREATE ")
	if n.Temporary {
		sb.WriteString("TEMPORARY ")
	}
	sb.WriteString("SEQUENCE ")
	if n.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	sb.WriteString(n.Sequence.SqlString())
	for _, opt := range n.Options {
		sb.WriteString(" " + seqOptionText(opt))
	}
	return sb.String()
}

// CreateSchemaStmt is CREATE SCHEMA.
type CreateSchemaStmt struct {
	BaseNode
	Schemaname  string
	Authrole    *RoleSpec
	IfNotExists bool
}

func (n *CreateSchemaStmt) String() string {
	return fmt.Sprintf("CreateSchemaStmt(%s)@%s", n.Schemaname, n.Loc)
}

func (n *CreateSchemaStmt) StatementType() string { return "CREATE SCHEMA" }

func (n *CreateSchemaStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString("CREATE SCHEMA ")
	if n.IfNotExists {
		sb.WriteString("IF NOT EXISTS ")
	}
	if n.Schemaname != "" {
		sb.WriteString(QuoteIdentifier(n.Schemaname))
	}
	if n.Authrole != nil {
		if n.Schemaname != "" {
			sb.WriteString(" ")
		}
		sb.WriteString("AUTHORIZATION " + n.Authrole.SqlString())
	}
	return sb.String()
}

// RoleStmtType distinguishes CREATE ROLE, USER and GROUP.
type RoleStmtType int

const (
	ROLESTMT_ROLE RoleStmtType = iota
	ROLESTMT_USER
	ROLESTMT_GROUP
)

// CreateRoleStmt is CREATE ROLE/USER/GROUP.
type CreateRoleStmt struct {
	BaseNode
	StmtType RoleStmtType
	Role     string
	Options  []*DefElem
}

func (n *CreateRoleStmt) String() string { return fmt.Sprintf("CreateRoleStmt(%s)@%s", n.Role, n.Loc) }

func (n *CreateRoleStmt) StatementType() string { return "CREATE ROLE" }

// roleOptionText renders one role option in its keyword form.
func roleOptionText(d *DefElem) string {
	boolWord := func(yes, no string) string {
		if b, ok := d.Arg.(*Boolean); ok && !b.BoolVal {
			return no
		}
		return yes
	}
	switch d.Defname {
	case "superuser":
		return boolWord("SUPERUSER", "NOSUPERUSER")
	case "createdb":
		return boolWord("CREATEDB", "NOCREATEDB")
	case "createrole":
		return boolWord("CREATEROLE", "NOCREATEROLE")
	case "canlogin":
		return boolWord("LOGIN", "NOLOGIN")
	case "isreplication":
		return boolWord("REPLICATION", "NOREPLICATION")
	case "inherit":
		return boolWord("INHERIT", "NOINHERIT")
	case "password":
		if d.Arg == nil {
			return "PASSWORD NULL"
		}
		return "PASSWORD " + d.Arg.SqlString()
	case "connectionlimit":
		return "CONNECTION LIMIT " + d.Arg.SqlString()
	case "validUntil":
		return "VALID UNTIL " + d.Arg.SqlString()
	}
	return strings.ToUpper(d.Defname)
}

func (n *CreateRoleStmt) SqlString() string {
	var sb strings.Builder
	switch n.StmtType {
	case ROLESTMT_USER:
		sb.WriteString("CREATE USER ")
	case ROLESTMT_GROUP:
		sb.WriteString("CREATE GROUP ")
	default:
		sb.WriteString("CREATE ROLE ")
	}
	sb.WriteString(QuoteIdentifier(n.Role))
	for _, opt := range n.Options {
		sb.WriteString(" " + roleOptionText(opt))
	}
	return sb.String()
}

// AlterTableType enumerates ALTER TABLE subcommands.
type AlterTableType int

const (
	AT_AddColumn AlterTableType = iota
	AT_DropColumn
	AT_AlterColumnType
	AT_ColumnDefault
	AT_SetNotNull
	AT_DropNotNull
	AT_AddConstraint
	AT_DropConstraint
	AT_ValidateConstraint
	AT_SetRelOptions
	AT_ChangeOwner
	AT_EnableTrig
	AT_DisableTrig
	AT_AttachPartition
	AT_DetachPartition
)

// AlterTableCmd is one subcommand of ALTER TABLE.
type AlterTableCmd struct {
	BaseNode
	Subtype   AlterTableType
	Name      string // column or constraint name
	Def       Node   // new column def, constraint, type or expression
	Behavior  DropBehavior
	MissingOk bool // IF EXISTS on the subcommand
}

func (n *AlterTableCmd) String() string { return fmt.Sprintf("AlterTableCmd(%d)@%s", n.Subtype, n.Loc) }

func (n *AlterTableCmd) SqlString() string {
	ifExists := ""
	if n.MissingOk {
		ifExists = "IF EXISTS "
	}
	switch n.Subtype {
	case AT_AddColumn:
		return "ADD COLUMN " + n.Def.SqlString()
	case AT_DropColumn:
		return "DROP COLUMN " + ifExists + QuoteIdentifier(n.Name) + n.Behavior.suffix()
	case AT_AlterColumnType:
		return "ALTER COLUMN " + QuoteIdentifier(n.Name) + " TYPE " + n.Def.SqlString()
	case AT_ColumnDefault:
		if n.Def == nil {
			return "ALTER COLUMN " + QuoteIdentifier(n.Name) + " DROP DEFAULT"
		}
		return "ALTER COLUMN " + QuoteIdentifier(n.Name) + " SET DEFAULT " + n.Def.SqlString()
	case AT_SetNotNull:
		return "ALTER COLUMN " + QuoteIdentifier(n.Name) + " SET NOT NULL"
	case AT_DropNotNull:
		return "ALTER COLUMN " + QuoteIdentifier(n.Name) + " DROP NOT NULL"
	case AT_AddConstraint:
		return "ADD " + n.Def.SqlString()
	case AT_DropConstraint:
		return "DROP CONSTRAINT " + ifExists + QuoteIdentifier(n.Name) + n.Behavior.suffix()
	case AT_ValidateConstraint:
		return "VALIDATE CONSTRAINT " + QuoteIdentifier(n.Name)
	case AT_ChangeOwner:
		return "OWNER TO " + n.Def.SqlString()
	case AT_EnableTrig:
		return "ENABLE TRIGGER " + QuoteIdentifier(n.Name)
	case AT_DisableTrig:
		return "DISABLE TRIGGER " + QuoteIdentifier(n.Name)
	case AT_AttachPartition:
		return "ATTACH PARTITION " + n.Def.SqlString()
	case AT_DetachPartition:
		return "DETACH PARTITION " + n.Def.SqlString()
	}
	return ""
}

// AlterTableStmt is ALTER TABLE with its subcommand list.
type AlterTableStmt struct {
	BaseNode
	Relation  *RangeVar
	Cmds      []*AlterTableCmd
	ObjType   ObjectType // TABLE, INDEX or VIEW spelling
	MissingOk bool
}

func (n *AlterTableStmt) String() string {
	return fmt.Sprintf("AlterTableStmt(%s)@%s", n.Relation.Relname, n.Loc)
}

func (n *AlterTableStmt) StatementType() string { return "ALTER TABLE" }

func (n *AlterTableStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString("ALTER " + objectTypeNames[n.ObjType] + " ")
	if n.MissingOk {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(n.Relation.SqlString() + " " + sqlJoin(n.Cmds, ", "))
	return sb.String()
}

// RenameStmt is ALTER ... RENAME.
type RenameStmt struct {
	BaseNode
	RenameType   ObjectType // object class being renamed
	RelationType ObjectType // containing relation class, for column renames
	Relation     *RangeVar
	Subname      string // old column name
	Newname      string
	MissingOk    bool
}

func (n *RenameStmt) String() string { return fmt.Sprintf("RenameStmt(%s)@%s", n.Newname, n.Loc) }

func (n *RenameStmt) StatementType() string { return "RENAME" }

func (n *RenameStmt) SqlString() string {
	var sb strings.Builder
	if n.RenameType == OBJECT_COLUMN {
		sb.WriteString("ALTER " + objectTypeNames[n.RelationType] + " ")
		if n.MissingOk {
			sb.WriteString("IF EXISTS ")
		}
		sb.WriteString(n.Relation.SqlString())
		sb.WriteString(" RENAME COLUMN " + QuoteIdentifier(n.Subname) + " TO " + QuoteIdentifier(n.Newname))
		return sb.String()
	}
	sb.WriteString("ALTER " + objectTypeNames[n.RenameType] + " ")
	if n.MissingOk {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(n.Relation.SqlString() + " RENAME TO " + QuoteIdentifier(n.Newname))
	return sb.String()
}

// DropStmt is DROP for all object classes.
type DropStmt struct {
	BaseNode
	Objects    []Node // each a qualified name rendered by its node
	RemoveType ObjectType
	Behavior   DropBehavior
	MissingOk  bool
	Concurrent bool
}

func (n *DropStmt) String() string { return fmt.Sprintf("DropStmt(%d)@%s", n.RemoveType, n.Loc) }

func (n *DropStmt) StatementType() string { return "DROP" }

func (n *DropStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString("DROP " + objectTypeNames[n.RemoveType] + " ")
	if n.Concurrent {
		sb.WriteString("CONCURRENTLY ")
	}
	if n.MissingOk {
		sb.WriteString("IF EXISTS ")
	}
	sb.WriteString(sqlJoin(n.Objects, ", ") + n.Behavior.suffix())
	return sb.String()
}

// TruncateStmt is TRUNCATE.
type TruncateStmt struct {
	BaseNode
	Relations   []*RangeVar
	RestartSeqs bool
	Behavior    DropBehavior
}

func (n *TruncateStmt) String() string {
	return fmt.Sprintf("TruncateStmt(%d rels)@%s", len(n.Relations), n.Loc)
}

func (n *TruncateStmt) StatementType() string { return "TRUNCATE" }

func (n *TruncateStmt) SqlString() string {
	s := "TRUNCATE " + sqlJoin(n.Relations, ", ")
	if n.RestartSeqs {
		s += " RESTART IDENTITY"
	}
	return s + n.Behavior.suffix()
}
