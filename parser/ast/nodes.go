// Package ast defines the node model produced by the SQL parser: statements,
// expressions and the clause fragments they are assembled from. The variant
// set follows PostgreSQL's parse nodes (parsenodes.h / primnodes.h) with the
// untyped Node pointers of the original grammar replaced by a closed set of
// Go types discriminated by NodeTag.
package ast

import "fmt"

// Position is a single point in the source text. Line and Column are
// 1-based; Offset is the byte offset from the start of the input.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a source range covering a token or a whole subtree. For every
// composite node the span is the union of the spans of all tokens the
// producing grammar rule consumed, so a statement's span always runs from
// its first token through its last.
type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// IsZero reports whether the span has not been set.
func (s Span) IsZero() bool {
	return s.Start.Line == 0 && s.End.Line == 0
}

// Union returns the smallest span covering both s and o. It is commutative
// and associative; a zero span is the identity element.
func (s Span) Union(o Span) Span {
	if s.IsZero() {
		return o
	}
	if o.IsZero() {
		return s
	}
	out := s
	if o.Start.Offset < out.Start.Offset {
		out.Start = o.Start
	}
	if o.End.Offset > out.End.Offset {
		out.End = o.End
	}
	return out
}

// NodeTag identifies the concrete type of a node. Tag names follow the
// T_<Type> convention of PostgreSQL's nodes.h.
type NodeTag int

const (
	T_Invalid NodeTag = iota

	// value nodes
	T_Integer
	T_Float
	T_String
	T_BitString
	T_Boolean
	T_Null

	// expressions
	T_ColumnRef
	T_A_Star
	T_A_Const
	T_ParamRef
	T_A_Expr
	T_BoolExpr
	T_NullTest
	T_BooleanTest
	T_FuncCall
	T_NamedArgExpr
	T_SQLValueFunction
	T_CoalesceExpr
	T_MinMaxExpr
	T_CaseExpr
	T_CaseWhen
	T_SubLink
	T_ArrayExpr
	T_RowExpr
	T_TypeCast
	T_CollateClause
	T_A_Indirection
	T_A_Indices
	T_GroupingSet
	T_GroupingFunc
	T_SetToDefault

	// clause fragments
	T_ResTarget
	T_Alias
	T_RangeVar
	T_JoinExpr
	T_RangeSubselect
	T_RangeFunction
	T_SortBy
	T_WindowDef
	T_WithClause
	T_CommonTableExpr
	T_InferClause
	T_OnConflictClause
	T_LockingClause
	T_IntoClause
	T_TypeName
	T_ColumnDef
	T_Constraint
	T_DefElem
	T_IndexElem
	T_PartitionSpec
	T_PartitionElem
	T_PartitionBoundSpec
	T_AccessPriv
	T_RoleSpec
	T_ObjectWithArgs
	T_VacuumRelation

	// statements
	T_SelectStmt
	T_InsertStmt
	T_UpdateStmt
	T_DeleteStmt
	T_CreateStmt
	T_CreateTableAsStmt
	T_IndexStmt
	T_ViewStmt
	T_CreateSeqStmt
	T_CreateSchemaStmt
	T_CreateRoleStmt
	T_AlterTableStmt
	T_AlterTableCmd
	T_RenameStmt
	T_DropStmt
	T_TruncateStmt
	T_TransactionStmt
	T_VariableSetStmt
	T_VariableShowStmt
	T_ExplainStmt
	T_CopyStmt
	T_ListenStmt
	T_NotifyStmt
	T_UnlistenStmt
	T_VacuumStmt
	T_GrantStmt
	T_PrepareStmt
	T_ExecuteStmt
	T_DeallocateStmt
)

var nodeTagNames = map[NodeTag]string{
	T_Invalid: "T_Invalid", T_Integer: "T_Integer", T_Float: "T_Float",
	T_String: "T_String", T_BitString: "T_BitString", T_Boolean: "T_Boolean",
	T_Null: "T_Null", T_ColumnRef: "T_ColumnRef", T_A_Star: "T_A_Star",
	T_A_Const: "T_A_Const", T_ParamRef: "T_ParamRef", T_A_Expr: "T_A_Expr",
	T_BoolExpr: "T_BoolExpr", T_NullTest: "T_NullTest", T_BooleanTest: "T_BooleanTest",
	T_FuncCall: "T_FuncCall", T_NamedArgExpr: "T_NamedArgExpr",
	T_SQLValueFunction: "T_SQLValueFunction", T_CoalesceExpr: "T_CoalesceExpr",
	T_MinMaxExpr: "T_MinMaxExpr", T_CaseExpr: "T_CaseExpr", T_CaseWhen: "T_CaseWhen",
	T_SubLink: "T_SubLink", T_ArrayExpr: "T_ArrayExpr", T_RowExpr: "T_RowExpr",
	T_TypeCast: "T_TypeCast", T_CollateClause: "T_CollateClause",
	T_A_Indirection: "T_A_Indirection", T_A_Indices: "T_A_Indices",
	T_GroupingSet: "T_GroupingSet", T_GroupingFunc: "T_GroupingFunc",
	T_SetToDefault: "T_SetToDefault",
	T_ResTarget:    "T_ResTarget", T_Alias: "T_Alias", T_RangeVar: "T_RangeVar",
	T_JoinExpr: "T_JoinExpr", T_RangeSubselect: "T_RangeSubselect",
	T_RangeFunction: "T_RangeFunction", T_SortBy: "T_SortBy", T_WindowDef: "T_WindowDef",
	T_WithClause: "T_WithClause", T_CommonTableExpr: "T_CommonTableExpr",
	T_InferClause: "T_InferClause", T_OnConflictClause: "T_OnConflictClause",
	T_LockingClause: "T_LockingClause", T_IntoClause: "T_IntoClause",
	T_TypeName: "T_TypeName", T_ColumnDef: "T_ColumnDef", T_Constraint: "T_Constraint",
	T_DefElem: "T_DefElem", T_IndexElem: "T_IndexElem", T_PartitionSpec: "T_PartitionSpec",
	T_PartitionElem: "T_PartitionElem", T_PartitionBoundSpec: "T_PartitionBoundSpec",
	T_AccessPriv: "T_AccessPriv", T_RoleSpec: "T_RoleSpec",
	T_ObjectWithArgs: "T_ObjectWithArgs", T_VacuumRelation: "T_VacuumRelation",
	T_SelectStmt: "T_SelectStmt",
	T_InsertStmt: "T_InsertStmt", T_UpdateStmt: "T_UpdateStmt",
	T_DeleteStmt: "T_DeleteStmt", T_CreateStmt: "T_CreateStmt",
	T_CreateTableAsStmt: "T_CreateTableAsStmt", T_IndexStmt: "T_IndexStmt",
	T_ViewStmt: "T_ViewStmt", T_CreateSeqStmt: "T_CreateSeqStmt",
	T_CreateSchemaStmt: "T_CreateSchemaStmt", T_CreateRoleStmt: "T_CreateRoleStmt",
	T_AlterTableStmt: "T_AlterTableStmt", T_AlterTableCmd: "T_AlterTableCmd",
	T_RenameStmt: "T_RenameStmt", T_DropStmt: "T_DropStmt", T_TruncateStmt: "T_TruncateStmt",
	T_TransactionStmt: "T_TransactionStmt", T_VariableSetStmt: "T_VariableSetStmt",
	T_VariableShowStmt: "T_VariableShowStmt", T_ExplainStmt: "T_ExplainStmt",
	T_CopyStmt: "T_CopyStmt", T_ListenStmt: "T_ListenStmt", T_NotifyStmt: "T_NotifyStmt",
	T_UnlistenStmt: "T_UnlistenStmt", T_VacuumStmt: "T_VacuumStmt",
	T_GrantStmt: "T_GrantStmt", T_PrepareStmt: "T_PrepareStmt",
	T_ExecuteStmt: "T_ExecuteStmt", T_DeallocateStmt: "T_DeallocateStmt",
}

func (nt NodeTag) String() string {
	if name, ok := nodeTagNames[nt]; ok {
		return name
	}
	return fmt.Sprintf("NodeTag(%d)", int(nt))
}

// Node is the base interface implemented by every AST node.
type Node interface {
	// NodeTag returns the type tag for this node.
	NodeTag() NodeTag

	// Span returns the source range this node was parsed from.
	Span() Span

	// String returns a short debugging representation.
	String() string

	// SqlString renders the node back to canonical SQL text. It exists for
	// round-trip testing and tooling output; it is not a pretty-printer.
	SqlString() string
}

// Stmt is implemented by every top-level statement node.
type Stmt interface {
	Node
	StatementType() string
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	ExpressionType() string
}

// BaseNode carries the tag and span shared by all nodes. Node types embed it.
type BaseNode struct {
	Tag NodeTag
	Loc Span
}

func (n *BaseNode) NodeTag() NodeTag { return n.Tag }

func (n *BaseNode) Span() Span { return n.Loc }

// SetSpan records the source range for this node. Called once by the
// producing grammar rule; nodes are not relocated afterwards.
func (n *BaseNode) SetSpan(s Span) { n.Loc = s }

func (n *BaseNode) String() string {
	return fmt.Sprintf("node@%s", n.Loc)
}
