/*
 * Expression nodes. These are the raw-parse-tree expression forms
 * (parsenodes.h A_* nodes plus the primnodes.h forms the grammar emits
 * directly); no semantic analysis has been applied to them.
 */

package ast

import (
	"fmt"
	"strings"
)

// ColumnRef is a possibly-qualified column reference. Fields holds String
// nodes for each name part and may end in an A_Star for "rel.*".
type ColumnRef struct {
	BaseNode
	Fields []Node
}

// NewColumnRef creates a column reference from plain name parts.
func NewColumnRef(names ...string) *ColumnRef {
	fields := make([]Node, len(names))
	for i, n := range names {
		fields[i] = NewString(n)
	}
	return &ColumnRef{BaseNode: BaseNode{Tag: T_ColumnRef}, Fields: fields}
}

func (n *ColumnRef) String() string {
	return fmt.Sprintf("ColumnRef(%s)@%s", n.SqlString(), n.Loc)
}

func (n *ColumnRef) SqlString() string {
	parts := make([]string, len(n.Fields))
	for i, f := range n.Fields {
		switch f := f.(type) {
		case *String:
			parts[i] = QuoteIdentifier(f.SVal)
		case *A_Star:
			parts[i] = "*"
		}
	}
	return strings.Join(parts, ".")
}
func (n *ColumnRef) ExpressionType() string { return "ColumnRef" }

// A_Star represents an unqualified or trailing "*".
type A_Star struct {
	BaseNode
}

// NewA_Star creates a star node.
func NewA_Star() *A_Star { return &A_Star{BaseNode: BaseNode{Tag: T_A_Star}} }

func (n *A_Star) String() string         { return "A_Star" }
func (n *A_Star) SqlString() string      { return "*" }
func (n *A_Star) ExpressionType() string { return "A_Star" }

// A_Const is a literal constant; Val is one of the value nodes, or nil with
// IsNull set for the NULL literal.
type A_Const struct {
	BaseNode
	Val    Node
	IsNull bool
}

// NewA_Const wraps a value node as a constant expression.
func NewA_Const(val Node, span Span) *A_Const {
	return &A_Const{BaseNode: BaseNode{Tag: T_A_Const, Loc: span}, Val: val, IsNull: val == nil}
}

func (n *A_Const) String() string {
	return fmt.Sprintf("A_Const(%s)@%s", n.SqlString(), n.Loc)
}

func (n *A_Const) SqlString() string {
	if n.IsNull {
		return "NULL"
	}
	return n.Val.SqlString()
}
func (n *A_Const) ExpressionType() string { return "A_Const" }

// ParamRef is a positional parameter such as $1.
type ParamRef struct {
	BaseNode
	Number int
}

func (n *ParamRef) String() string         { return fmt.Sprintf("ParamRef($%d)", n.Number) }
func (n *ParamRef) SqlString() string      { return fmt.Sprintf("$%d", n.Number) }
func (n *ParamRef) ExpressionType() string { return "ParamRef" }

// A_Expr_Kind distinguishes the operator-like expression forms that share
// the A_Expr node.
type A_Expr_Kind int

const (
	AEXPR_OP              A_Expr_Kind = iota // generic binary/unary operator
	AEXPR_OP_ANY                             // expr op ANY (array/subquery-free form)
	AEXPR_OP_ALL                             // expr op ALL (...)
	AEXPR_DISTINCT                           // IS DISTINCT FROM
	AEXPR_NOT_DISTINCT                       // IS NOT DISTINCT FROM
	AEXPR_IN                                 // IN (expr list); Name is "=" or "<>"
	AEXPR_LIKE                               // [NOT] LIKE; Name is "~~" or "!~~"
	AEXPR_ILIKE                              // [NOT] ILIKE
	AEXPR_SIMILAR                            // [NOT] SIMILAR TO
	AEXPR_BETWEEN                            // BETWEEN lower AND upper
	AEXPR_NOT_BETWEEN                        // NOT BETWEEN
	AEXPR_BETWEEN_SYM                        // BETWEEN SYMMETRIC
	AEXPR_NOT_BETWEEN_SYM                    // NOT BETWEEN SYMMETRIC
)

// A_Expr is the generic operator application node. Binary operators use
// Lexpr/Rexpr; prefix operators leave Lexpr nil. BETWEEN and IN carry their
// right-hand list in Rexprs instead of Rexpr.
type A_Expr struct {
	BaseNode
	Kind   A_Expr_Kind
	Name   string // operator name, e.g. "+", "~~", "="
	Lexpr  Node
	Rexpr  Node
	Rexprs []Node // operand list for IN and BETWEEN forms
}

// NewA_Expr creates a generic operator expression.
func NewA_Expr(kind A_Expr_Kind, name string, lexpr, rexpr Node, span Span) *A_Expr {
	return &A_Expr{
		BaseNode: BaseNode{Tag: T_A_Expr, Loc: span},
		Kind:     kind,
		Name:     name,
		Lexpr:    lexpr,
		Rexpr:    rexpr,
	}
}

func (n *A_Expr) String() string {
	return fmt.Sprintf("A_Expr(%d %q)@%s", n.Kind, n.Name, n.Loc)
}

// exprParen renders a child expression, parenthesizing operator forms so the
// round trip preserves the tree shape regardless of precedence.
func exprParen(n Node) string {
	if n == nil {
		return ""
	}
	switch n.(type) {
	case *A_Expr, *BoolExpr, *NullTest, *BooleanTest, *CollateClause:
		return "(" + n.SqlString() + ")"
	}
	return n.SqlString()
}

func (n *A_Expr) SqlString() string {
	switch n.Kind {
	case AEXPR_OP:
		if n.Lexpr == nil {
			return n.Name + " " + exprParen(n.Rexpr)
		}
		return exprParen(n.Lexpr) + " " + n.Name + " " + exprParen(n.Rexpr)
	case AEXPR_OP_ANY:
		return exprParen(n.Lexpr) + " " + n.Name + " ANY (" + n.Rexpr.SqlString() + ")"
	case AEXPR_OP_ALL:
		return exprParen(n.Lexpr) + " " + n.Name + " ALL (" + n.Rexpr.SqlString() + ")"
	case AEXPR_DISTINCT:
		return exprParen(n.Lexpr) + " IS DISTINCT FROM " + exprParen(n.Rexpr)
	case AEXPR_NOT_DISTINCT:
		return exprParen(n.Lexpr) + " IS NOT DISTINCT FROM " + exprParen(n.Rexpr)
	case AEXPR_IN:
		op := " IN ("
		if n.Name == "<>" {
			op = " NOT IN ("
		}
		return exprParen(n.Lexpr) + op + sqlJoin(n.Rexprs, ", ") + ")"
	case AEXPR_LIKE, AEXPR_ILIKE, AEXPR_SIMILAR:
		word := map[A_Expr_Kind]string{AEXPR_LIKE: "LIKE", AEXPR_ILIKE: "ILIKE", AEXPR_SIMILAR: "SIMILAR TO"}[n.Kind]
		if strings.HasPrefix(n.Name, "!") {
			word = "NOT " + word
		}
		return exprParen(n.Lexpr) + " " + word + " " + exprParen(n.Rexpr)
	case AEXPR_BETWEEN, AEXPR_NOT_BETWEEN, AEXPR_BETWEEN_SYM, AEXPR_NOT_BETWEEN_SYM:
		word := map[A_Expr_Kind]string{
			AEXPR_BETWEEN:         "BETWEEN",
			AEXPR_NOT_BETWEEN:     "NOT BETWEEN",
			AEXPR_BETWEEN_SYM:     "BETWEEN SYMMETRIC",
			AEXPR_NOT_BETWEEN_SYM: "NOT BETWEEN SYMMETRIC",
		}[n.Kind]
		return exprParen(n.Lexpr) + " " + word + " " + exprParen(n.Rexprs[0]) + " AND " + exprParen(n.Rexprs[1])
	}
	return "?"
}
func (n *A_Expr) ExpressionType() string { return "A_Expr" }

// BoolExprType distinguishes AND/OR/NOT.
type BoolExprType int

const (
	AND_EXPR BoolExprType = iota
	OR_EXPR
	NOT_EXPR
)

// BoolExpr is an AND/OR/NOT combination of conditions.
type BoolExpr struct {
	BaseNode
	Boolop BoolExprType
	Args   []Node
}

// NewBoolExpr creates a boolean combination node.
func NewBoolExpr(op BoolExprType, args []Node, span Span) *BoolExpr {
	return &BoolExpr{BaseNode: BaseNode{Tag: T_BoolExpr, Loc: span}, Boolop: op, Args: args}
}

func (n *BoolExpr) String() string {
	names := map[BoolExprType]string{AND_EXPR: "AND", OR_EXPR: "OR", NOT_EXPR: "NOT"}
	return fmt.Sprintf("BoolExpr(%s: %d args)@%s", names[n.Boolop], len(n.Args), n.Loc)
}

func (n *BoolExpr) SqlString() string {
	switch n.Boolop {
	case NOT_EXPR:
		return "NOT " + exprParen(n.Args[0])
	case AND_EXPR:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = exprParen(a)
		}
		return strings.Join(parts, " AND ")
	default:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = exprParen(a)
		}
		return strings.Join(parts, " OR ")
	}
}
func (n *BoolExpr) ExpressionType() string { return "BoolExpr" }

// NullTestType distinguishes IS NULL from IS NOT NULL.
type NullTestType int

const (
	IS_NULL NullTestType = iota
	IS_NOT_NULL
)

// NullTest is IS [NOT] NULL (including the ISNULL/NOTNULL spellings).
type NullTest struct {
	BaseNode
	Arg          Node
	Nulltesttype NullTestType
}

func (n *NullTest) String() string { return fmt.Sprintf("NullTest(%d)@%s", n.Nulltesttype, n.Loc) }

func (n *NullTest) SqlString() string {
	if n.Nulltesttype == IS_NULL {
		return exprParen(n.Arg) + " IS NULL"
	}
	return exprParen(n.Arg) + " IS NOT NULL"
}
func (n *NullTest) ExpressionType() string { return "NullTest" }

// BoolTestType enumerates the IS [NOT] TRUE/FALSE/UNKNOWN forms.
type BoolTestType int

const (
	IS_TRUE BoolTestType = iota
	IS_NOT_TRUE
	IS_FALSE
	IS_NOT_FALSE
	IS_UNKNOWN
	IS_NOT_UNKNOWN
)

// BooleanTest is IS [NOT] TRUE/FALSE/UNKNOWN.
type BooleanTest struct {
	BaseNode
	Arg          Node
	Booltesttype BoolTestType
}

func (n *BooleanTest) String() string {
	return fmt.Sprintf("BooleanTest(%d)@%s", n.Booltesttype, n.Loc)
}

func (n *BooleanTest) SqlString() string {
	words := map[BoolTestType]string{
		IS_TRUE: "IS TRUE", IS_NOT_TRUE: "IS NOT TRUE",
		IS_FALSE: "IS FALSE", IS_NOT_FALSE: "IS NOT FALSE",
		IS_UNKNOWN: "IS UNKNOWN", IS_NOT_UNKNOWN: "IS NOT UNKNOWN",
	}
	return exprParen(n.Arg) + " " + words[n.Booltesttype]
}
func (n *BooleanTest) ExpressionType() string { return "BooleanTest" }

// FuncCall is a function or aggregate invocation.
type FuncCall struct {
	BaseNode
	Funcname     []string
	Args         []Node
	AggOrder     []*SortBy
	AggFilter    Node
	AggStar      bool // count(*)
	AggDistinct  bool
	FuncVariadic bool // last argument written with VARIADIC
	Over         *WindowDef
}

// NewFuncCall creates a function call with plain arguments.
func NewFuncCall(name []string, args []Node, span Span) *FuncCall {
	return &FuncCall{BaseNode: BaseNode{Tag: T_FuncCall, Loc: span}, Funcname: name, Args: args}
}

func (n *FuncCall) String() string {
	return fmt.Sprintf("FuncCall(%s)@%s", strings.Join(n.Funcname, "."), n.Loc)
}

func (n *FuncCall) SqlString() string {
	var sb strings.Builder
	sb.WriteString(QuoteQualified(n.Funcname...))
	sb.WriteString("(")
	if n.AggStar {
		sb.WriteString("*")
	} else {
		if n.AggDistinct {
			sb.WriteString("DISTINCT ")
		}
		for i, a := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			if n.FuncVariadic && i == len(n.Args)-1 {
				sb.WriteString("VARIADIC ")
			}
			sb.WriteString(a.SqlString())
		}
		if len(n.AggOrder) > 0 {
			sb.WriteString(" ORDER BY ")
			sb.WriteString(sqlJoin(n.AggOrder, ", "))
		}
	}
	sb.WriteString(")")
	if n.AggFilter != nil {
		sb.WriteString(" FILTER (WHERE ")
		sb.WriteString(n.AggFilter.SqlString())
		sb.WriteString(")")
	}
	if n.Over != nil {
		sb.WriteString(" OVER ")
		sb.WriteString(n.Over.SqlString())
	}
	return sb.String()
}
func (n *FuncCall) ExpressionType() string { return "FuncCall" }

// NamedArgExpr is a "name => value" function argument.
type NamedArgExpr struct {
	BaseNode
	Arg  Node
	Name string
}

func (n *NamedArgExpr) String() string { return fmt.Sprintf("NamedArgExpr(%s)@%s", n.Name, n.Loc) }

func (n *NamedArgExpr) SqlString() string {
	return QuoteIdentifier(n.Name) + " => " + n.Arg.SqlString()
}
func (n *NamedArgExpr) ExpressionType() string { return "NamedArgExpr" }

// SQLValueFunctionOp enumerates the parameterless SQL value functions.
type SQLValueFunctionOp int

const (
	SVFOP_CURRENT_DATE SQLValueFunctionOp = iota
	SVFOP_CURRENT_TIME
	SVFOP_CURRENT_TIMESTAMP
	SVFOP_LOCALTIME
	SVFOP_LOCALTIMESTAMP
	SVFOP_CURRENT_ROLE
	SVFOP_CURRENT_USER
	SVFOP_SESSION_USER
	SVFOP_CURRENT_CATALOG
	SVFOP_CURRENT_SCHEMA
	SVFOP_USER
)

var svfNames = map[SQLValueFunctionOp]string{
	SVFOP_CURRENT_DATE:      "CURRENT_DATE",
	SVFOP_CURRENT_TIME:      "CURRENT_TIME",
	SVFOP_CURRENT_TIMESTAMP: "CURRENT_TIMESTAMP",
	SVFOP_LOCALTIME:         "LOCALTIME",
	SVFOP_LOCALTIMESTAMP:    "LOCALTIMESTAMP",
	SVFOP_CURRENT_ROLE:      "CURRENT_ROLE",
	SVFOP_CURRENT_USER:      "CURRENT_USER",
	SVFOP_SESSION_USER:      "SESSION_USER",
	SVFOP_CURRENT_CATALOG:   "CURRENT_CATALOG",
	SVFOP_CURRENT_SCHEMA:    "CURRENT_SCHEMA",
	SVFOP_USER:              "USER",
}

// SQLValueFunction is one of the keyword-spelled value functions
// (CURRENT_DATE, SESSION_USER, ...).
type SQLValueFunction struct {
	BaseNode
	Op SQLValueFunctionOp
}

func (n *SQLValueFunction) String() string         { return "SQLValueFunction(" + svfNames[n.Op] + ")" }
func (n *SQLValueFunction) SqlString() string      { return svfNames[n.Op] }
func (n *SQLValueFunction) ExpressionType() string { return "SQLValueFunction" }

// CoalesceExpr is COALESCE(a, b, ...).
type CoalesceExpr struct {
	BaseNode
	Args []Node
}

func (n *CoalesceExpr) String() string {
	return fmt.Sprintf("CoalesceExpr(%d args)@%s", len(n.Args), n.Loc)
}

func (n *CoalesceExpr) SqlString() string {
	return "COALESCE(" + sqlJoin(n.Args, ", ") + ")"
}
func (n *CoalesceExpr) ExpressionType() string { return "CoalesceExpr" }

// MinMaxOp distinguishes GREATEST from LEAST.
type MinMaxOp int

const (
	IS_GREATEST MinMaxOp = iota
	IS_LEAST
)

// MinMaxExpr is GREATEST(...) or LEAST(...).
type MinMaxExpr struct {
	BaseNode
	Op   MinMaxOp
	Args []Node
}

func (n *MinMaxExpr) String() string { return fmt.Sprintf("MinMaxExpr(%d)@%s", n.Op, n.Loc) }

func (n *MinMaxExpr) SqlString() string {
	word := "GREATEST"
	if n.Op == IS_LEAST {
		word = "LEAST"
	}
	return word + "(" + sqlJoin(n.Args, ", ") + ")"
}
func (n *MinMaxExpr) ExpressionType() string { return "MinMaxExpr" }

// CaseWhen is one WHEN ... THEN ... arm of a CASE expression.
type CaseWhen struct {
	BaseNode
	Expr   Node
	Result Node
}

func (n *CaseWhen) String() string { return fmt.Sprintf("CaseWhen@%s", n.Loc) }

func (n *CaseWhen) SqlString() string {
	return "WHEN " + n.Expr.SqlString() + " THEN " + n.Result.SqlString()
}

// CaseExpr is a CASE expression; Arg is the optional tested operand.
type CaseExpr struct {
	BaseNode
	Arg       Node
	Args      []*CaseWhen
	Defresult Node
}

func (n *CaseExpr) String() string { return fmt.Sprintf("CaseExpr(%d arms)@%s", len(n.Args), n.Loc) }

func (n *CaseExpr) SqlString() string {
	var sb strings.Builder
	sb.WriteString("CASE")
	if n.Arg != nil {
		sb.WriteString(" ")
		sb.WriteString(n.Arg.SqlString())
	}
	for _, w := range n.Args {
		sb.WriteString(" ")
		sb.WriteString(w.SqlString())
	}
	if n.Defresult != nil {
		sb.WriteString(" ELSE ")
		sb.WriteString(n.Defresult.SqlString())
	}
	sb.WriteString(" END")
	return sb.String()
}
func (n *CaseExpr) ExpressionType() string { return "CaseExpr" }

// SubLinkType enumerates the subquery expression forms.
type SubLinkType int

const (
	EXISTS_SUBLINK SubLinkType = iota
	ALL_SUBLINK
	ANY_SUBLINK
	EXPR_SUBLINK
	ARRAY_SUBLINK
)

// SubLink is a subquery appearing in an expression.
type SubLink struct {
	BaseNode
	SubLinkType SubLinkType
	Testexpr    Node   // left operand for ANY/ALL
	OperName    string // operator for ANY/ALL ("" means IN's "=")
	Subselect   Node   // always a *SelectStmt
}

func (n *SubLink) String() string { return fmt.Sprintf("SubLink(%d)@%s", n.SubLinkType, n.Loc) }

func (n *SubLink) SqlString() string {
	switch n.SubLinkType {
	case EXISTS_SUBLINK:
		return "EXISTS (" + n.Subselect.SqlString() + ")"
	case ARRAY_SUBLINK:
		return "ARRAY(" + n.Subselect.SqlString() + ")"
	case ANY_SUBLINK:
		if n.OperName == "" {
			return exprParen(n.Testexpr) + " IN (" + n.Subselect.SqlString() + ")"
		}
		return exprParen(n.Testexpr) + " " + n.OperName + " ANY (" + n.Subselect.SqlString() + ")"
	case ALL_SUBLINK:
		return exprParen(n.Testexpr) + " " + n.OperName + " ALL (" + n.Subselect.SqlString() + ")"
	default:
		return "(" + n.Subselect.SqlString() + ")"
	}
}
func (n *SubLink) ExpressionType() string { return "SubLink" }

// ArrayExpr is an ARRAY[...] constructor.
type ArrayExpr struct {
	BaseNode
	Elements []Node
}

func (n *ArrayExpr) String() string { return fmt.Sprintf("ArrayExpr(%d)@%s", len(n.Elements), n.Loc) }

func (n *ArrayExpr) SqlString() string {
	return "ARRAY[" + sqlJoin(n.Elements, ", ") + "]"
}
func (n *ArrayExpr) ExpressionType() string { return "ArrayExpr" }

// RowExpr is a ROW(...) constructor, explicit or implicit.
type RowExpr struct {
	BaseNode
	Args      []Node
	RowFormat bool // true when the ROW keyword was written
}

func (n *RowExpr) String() string { return fmt.Sprintf("RowExpr(%d)@%s", len(n.Args), n.Loc) }

func (n *RowExpr) SqlString() string {
	if n.RowFormat {
		return "ROW(" + sqlJoin(n.Args, ", ") + ")"
	}
	return "(" + sqlJoin(n.Args, ", ") + ")"
}
func (n *RowExpr) ExpressionType() string { return "RowExpr" }

// TypeCast is expr::type or CAST(expr AS type).
type TypeCast struct {
	BaseNode
	Arg      Node
	TypeName *TypeName
}

// NewTypeCast creates a cast node.
func NewTypeCast(arg Node, typeName *TypeName, span Span) *TypeCast {
	return &TypeCast{BaseNode: BaseNode{Tag: T_TypeCast, Loc: span}, Arg: arg, TypeName: typeName}
}

func (n *TypeCast) String() string {
	return fmt.Sprintf("TypeCast(%s)@%s", n.TypeName.SqlString(), n.Loc)
}

func (n *TypeCast) SqlString() string {
	return "CAST(" + n.Arg.SqlString() + " AS " + n.TypeName.SqlString() + ")"
}
func (n *TypeCast) ExpressionType() string { return "TypeCast" }

// CollateClause is expr COLLATE collation.
type CollateClause struct {
	BaseNode
	Arg      Node
	Collname []string
}

func (n *CollateClause) String() string {
	return fmt.Sprintf("CollateClause(%s)@%s", strings.Join(n.Collname, "."), n.Loc)
}

func (n *CollateClause) SqlString() string {
	return exprParen(n.Arg) + " COLLATE " + QuoteQualified(n.Collname...)
}
func (n *CollateClause) ExpressionType() string { return "CollateClause" }

// A_Indices is one subscript: arr[idx] or arr[lo:hi].
type A_Indices struct {
	BaseNode
	IsSlice bool
	Lidx    Node
	Uidx    Node
}

func (n *A_Indices) String() string { return fmt.Sprintf("A_Indices(slice=%t)@%s", n.IsSlice, n.Loc) }

func (n *A_Indices) SqlString() string {
	if !n.IsSlice {
		return "[" + n.Uidx.SqlString() + "]"
	}
	var lo, hi string
	if n.Lidx != nil {
		lo = n.Lidx.SqlString()
	}
	if n.Uidx != nil {
		hi = n.Uidx.SqlString()
	}
	return "[" + lo + ":" + hi + "]"
}

// A_Indirection is a base expression with subscripts and/or field selections
// applied, e.g. (expr).field or arr[1][2].
type A_Indirection struct {
	BaseNode
	Arg         Node
	Indirection []Node // String, A_Star or A_Indices elements
}

func (n *A_Indirection) String() string {
	return fmt.Sprintf("A_Indirection(%d)@%s", len(n.Indirection), n.Loc)
}

func (n *A_Indirection) SqlString() string {
	var sb strings.Builder
	switch n.Arg.(type) {
	case *ColumnRef, *ParamRef, *A_Indirection, *FuncCall:
		sb.WriteString(n.Arg.SqlString())
	default:
		sb.WriteString("(" + n.Arg.SqlString() + ")")
	}
	for _, ind := range n.Indirection {
		switch ind := ind.(type) {
		case *String:
			sb.WriteString("." + QuoteIdentifier(ind.SVal))
		case *A_Star:
			sb.WriteString(".*")
		case *A_Indices:
			sb.WriteString(ind.SqlString())
		}
	}
	return sb.String()
}
func (n *A_Indirection) ExpressionType() string { return "A_Indirection" }

// GroupingSetKind enumerates GROUP BY grouping-set forms.
type GroupingSetKind int

const (
	GROUPING_SET_EMPTY GroupingSetKind = iota
	GROUPING_SET_SIMPLE
	GROUPING_SET_ROLLUP
	GROUPING_SET_CUBE
	GROUPING_SET_SETS
)

// GroupingSet is a ROLLUP/CUBE/GROUPING SETS element of GROUP BY.
type GroupingSet struct {
	BaseNode
	Kind    GroupingSetKind
	Content []Node
}

func (n *GroupingSet) String() string { return fmt.Sprintf("GroupingSet(%d)@%s", n.Kind, n.Loc) }

func (n *GroupingSet) SqlString() string {
	switch n.Kind {
	case GROUPING_SET_EMPTY:
		return "()"
	case GROUPING_SET_ROLLUP:
		return "ROLLUP (" + sqlJoin(n.Content, ", ") + ")"
	case GROUPING_SET_CUBE:
		return "CUBE (" + sqlJoin(n.Content, ", ") + ")"
	case GROUPING_SET_SETS:
		return "GROUPING SETS (" + sqlJoin(n.Content, ", ") + ")"
	default:
		return "(" + sqlJoin(n.Content, ", ") + ")"
	}
}
func (n *GroupingSet) ExpressionType() string { return "GroupingSet" }

// GroupingFunc is the GROUPING(...) pseudo-function in GROUP BY queries.
type GroupingFunc struct {
	BaseNode
	Args []Node
}

func (n *GroupingFunc) String() string { return fmt.Sprintf("GroupingFunc(%d)@%s", len(n.Args), n.Loc) }

func (n *GroupingFunc) SqlString() string {
	return "GROUPING(" + sqlJoin(n.Args, ", ") + ")"
}
func (n *GroupingFunc) ExpressionType() string { return "GroupingFunc" }

// SetToDefault is the DEFAULT placeholder in VALUES rows and UPDATE SET.
type SetToDefault struct {
	BaseNode
}

func (n *SetToDefault) String() string         { return fmt.Sprintf("SetToDefault@%s", n.Loc) }
func (n *SetToDefault) SqlString() string      { return "DEFAULT" }
func (n *SetToDefault) ExpressionType() string { return "SetToDefault" }
