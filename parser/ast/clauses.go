/*
 * Clause and fragment nodes shared between statements: target entries, range
 * items, sort/window specifications, WITH and ON CONFLICT clauses, and type
 * names. Follows the shapes of parsenodes.h.
 */

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// ResTarget is one entry of a SELECT target list, an INSERT column, or one
// SET assignment of UPDATE.
type ResTarget struct {
	BaseNode
	Name        string // column label (AS name), or assigned column
	Indirection []Node // subscripts/fields for UPDATE SET targets
	Val         Node   // expression; nil for bare INSERT column names
}

// NewResTarget creates a target entry for an expression.
func NewResTarget(name string, val Node, span Span) *ResTarget {
	return &ResTarget{BaseNode: BaseNode{Tag: T_ResTarget, Loc: span}, Name: name, Val: val}
}

func (n *ResTarget) String() string { return fmt.Sprintf("ResTarget(%s)@%s", n.Name, n.Loc) }

func (n *ResTarget) SqlString() string {
	if n.Val != nil {
		s := n.Val.SqlString()
		if n.Name != "" {
			s += " AS " + QuoteIdentifier(n.Name)
		}
		return s
	}
	return n.targetName()
}

// SetClauseString renders the entry as one SET assignment of UPDATE or
// ON CONFLICT DO UPDATE, "name[indirection] = expr". The target-list form
// of SqlString would render "expr AS name", which the grammar does not
// accept in a set clause.
func (n *ResTarget) SetClauseString() string {
	return n.targetName() + " = " + n.Val.SqlString()
}

// targetName renders the assigned column with any subscripts or fields.
func (n *ResTarget) targetName() string {
	var sb strings.Builder
	sb.WriteString(QuoteIdentifier(n.Name))
	for _, ind := range n.Indirection {
		switch ind := ind.(type) {
		case *String:
			sb.WriteString("." + QuoteIdentifier(ind.SVal))
		case *A_Indices:
			sb.WriteString(ind.SqlString())
		}
	}
	return sb.String()
}

// setClauseList joins SET assignments for UPDATE-style statements.
func setClauseList(targets []*ResTarget) string {
	parts := make([]string, len(targets))
	for i, t := range targets {
		parts[i] = t.SetClauseString()
	}
	return strings.Join(parts, ", ")
}

// Alias is a table alias with optional column aliases.
type Alias struct {
	BaseNode
	Aliasname string
	Colnames  []string
}

func (n *Alias) String() string { return fmt.Sprintf("Alias(%s)@%s", n.Aliasname, n.Loc) }

func (n *Alias) SqlString() string {
	s := "AS " + QuoteIdentifier(n.Aliasname)
	if len(n.Colnames) > 0 {
		cols := make([]string, len(n.Colnames))
		for i, c := range n.Colnames {
			cols[i] = QuoteIdentifier(c)
		}
		s += " (" + strings.Join(cols, ", ") + ")"
	}
	return s
}

// RangeVar is a possibly-qualified relation reference.
type RangeVar struct {
	BaseNode
	Catalogname string
	Schemaname  string
	Relname     string
	Inh         bool // expand by inheritance; false when ONLY was written
	Alias       *Alias
}

// NewRangeVar creates a relation reference from up to three name parts.
func NewRangeVar(catalog, schema, rel string, span Span) *RangeVar {
	return &RangeVar{
		BaseNode:    BaseNode{Tag: T_RangeVar, Loc: span},
		Catalogname: catalog,
		Schemaname:  schema,
		Relname:     rel,
		Inh:         true,
	}
}

func (n *RangeVar) String() string {
	return fmt.Sprintf("RangeVar(%s)@%s", QuoteQualified(n.Catalogname, n.Schemaname, n.Relname), n.Loc)
}

func (n *RangeVar) SqlString() string {
	s := QuoteQualified(n.Catalogname, n.Schemaname, n.Relname)
	if !n.Inh {
		s = "ONLY " + s
	}
	if n.Alias != nil {
		s += " " + n.Alias.SqlString()
	}
	return s
}

// JoinType enumerates join forms.
type JoinType int

const (
	JOIN_INNER JoinType = iota
	JOIN_LEFT
	JOIN_FULL
	JOIN_RIGHT
	JOIN_CROSS
)

// JoinExpr is a single join between two range items.
type JoinExpr struct {
	BaseNode
	Jointype    JoinType
	IsNatural   bool
	Larg        Node
	Rarg        Node
	UsingClause []string
	Quals       Node // ON condition
}

func (n *JoinExpr) String() string { return fmt.Sprintf("JoinExpr(%d)@%s", n.Jointype, n.Loc) }

func (n *JoinExpr) SqlString() string {
	var word string
	switch n.Jointype {
	case JOIN_LEFT:
		word = "LEFT JOIN"
	case JOIN_FULL:
		word = "FULL JOIN"
	case JOIN_RIGHT:
		word = "RIGHT JOIN"
	case JOIN_CROSS:
		word = "CROSS JOIN"
	default:
		word = "JOIN"
	}
	if n.IsNatural {
		word = "NATURAL " + word
	}
	s := n.Larg.SqlString() + " " + word + " " + n.Rarg.SqlString()
	if len(n.UsingClause) > 0 {
		cols := make([]string, len(n.UsingClause))
		for i, c := range n.UsingClause {
			cols[i] = QuoteIdentifier(c)
		}
		s += " USING (" + strings.Join(cols, ", ") + ")"
	}
	if n.Quals != nil {
		s += " ON " + n.Quals.SqlString()
	}
	return s
}

// RangeSubselect is a subquery in FROM.
type RangeSubselect struct {
	BaseNode
	Lateral  bool
	Subquery Node
	Alias    *Alias
}

func (n *RangeSubselect) String() string { return fmt.Sprintf("RangeSubselect@%s", n.Loc) }

func (n *RangeSubselect) SqlString() string {
	s := "(" + n.Subquery.SqlString() + ")"
	if n.Lateral {
		s = "LATERAL " + s
	}
	if n.Alias != nil {
		s += " " + n.Alias.SqlString()
	}
	return s
}

// RangeFunction is a function call in FROM, optionally WITH ORDINALITY.
type RangeFunction struct {
	BaseNode
	Lateral    bool
	Ordinality bool
	Function   Node
	Alias      *Alias
}

func (n *RangeFunction) String() string { return fmt.Sprintf("RangeFunction@%s", n.Loc) }

func (n *RangeFunction) SqlString() string {
	s := n.Function.SqlString()
	if n.Lateral {
		s = "LATERAL " + s
	}
	if n.Ordinality {
		s += " WITH ORDINALITY"
	}
	if n.Alias != nil {
		s += " " + n.Alias.SqlString()
	}
	return s
}

// SortByDir is the direction of an ORDER BY item.
type SortByDir int

const (
	SORTBY_DEFAULT SortByDir = iota
	SORTBY_ASC
	SORTBY_DESC
	SORTBY_USING
)

// SortByNulls is the NULLS FIRST/LAST option.
type SortByNulls int

const (
	SORTBY_NULLS_DEFAULT SortByNulls = iota
	SORTBY_NULLS_FIRST
	SORTBY_NULLS_LAST
)

// SortBy is one ORDER BY item.
type SortBy struct {
	BaseNode
	Node        Node
	SortbyDir   SortByDir
	SortbyNulls SortByNulls
	UseOp       string // operator name for USING
}

func (n *SortBy) String() string { return fmt.Sprintf("SortBy(%d)@%s", n.SortbyDir, n.Loc) }

func (n *SortBy) SqlString() string {
	s := n.Node.SqlString()
	switch n.SortbyDir {
	case SORTBY_ASC:
		s += " ASC"
	case SORTBY_DESC:
		s += " DESC"
	case SORTBY_USING:
		s += " USING " + n.UseOp
	}
	switch n.SortbyNulls {
	case SORTBY_NULLS_FIRST:
		s += " NULLS FIRST"
	case SORTBY_NULLS_LAST:
		s += " NULLS LAST"
	}
	return s
}

// Window frame option flags, combined in WindowDef.FrameOptions. Subset of
// parsenodes.h FRAMEOPTION_* bits sufficient to reproduce the source text.
const (
	FRAMEOPTION_NONDEFAULT        = 1 << 0
	FRAMEOPTION_RANGE             = 1 << 1
	FRAMEOPTION_ROWS              = 1 << 2
	FRAMEOPTION_GROUPS            = 1 << 3
	FRAMEOPTION_BETWEEN           = 1 << 4
	FRAMEOPTION_START_UNBOUNDED_P = 1 << 5
	FRAMEOPTION_END_UNBOUNDED_F   = 1 << 6
	FRAMEOPTION_START_CURRENT_ROW = 1 << 7
	FRAMEOPTION_END_CURRENT_ROW   = 1 << 8
	FRAMEOPTION_START_OFFSET_P    = 1 << 9
	FRAMEOPTION_START_OFFSET_F    = 1 << 10
	FRAMEOPTION_END_OFFSET_P      = 1 << 11
	FRAMEOPTION_END_OFFSET_F      = 1 << 12
)

// WindowDef is a window specification, named (WINDOW clause) or inline
// (OVER(...)), or a bare reference to a named window.
type WindowDef struct {
	BaseNode
	Name            string // window name in a WINDOW clause
	Refname         string // referenced window name
	PartitionClause []Node
	OrderClause     []*SortBy
	FrameOptions    int
	StartOffset     Node
	EndOffset       Node
}

func (n *WindowDef) String() string { return fmt.Sprintf("WindowDef(%s)@%s", n.Name, n.Loc) }

func frameBound(opts int, offset Node, start bool) string {
	switch {
	case start && opts&FRAMEOPTION_START_UNBOUNDED_P != 0:
		return "UNBOUNDED PRECEDING"
	case start && opts&FRAMEOPTION_START_CURRENT_ROW != 0:
		return "CURRENT ROW"
	case start && opts&FRAMEOPTION_START_OFFSET_P != 0:
		return offset.SqlString() + " PRECEDING"
	case start && opts&FRAMEOPTION_START_OFFSET_F != 0:
		return offset.SqlString() + " FOLLOWING"
	case !start && opts&FRAMEOPTION_END_UNBOUNDED_F != 0:
		return "UNBOUNDED FOLLOWING"
	case !start && opts&FRAMEOPTION_END_CURRENT_ROW != 0:
		return "CURRENT ROW"
	case !start && opts&FRAMEOPTION_END_OFFSET_P != 0:
		return offset.SqlString() + " PRECEDING"
	case !start && opts&FRAMEOPTION_END_OFFSET_F != 0:
		return offset.SqlString() + " FOLLOWING"
	}
	return ""
}

func (n *WindowDef) SqlString() string {
	if n.Refname != "" && n.PartitionClause == nil && n.OrderClause == nil && n.FrameOptions == 0 {
		return QuoteIdentifier(n.Refname)
	}
	var parts []string
	if n.Refname != "" {
		parts = append(parts, QuoteIdentifier(n.Refname))
	}
	if len(n.PartitionClause) > 0 {
		parts = append(parts, "PARTITION BY "+sqlJoin(n.PartitionClause, ", "))
	}
	if len(n.OrderClause) > 0 {
		parts = append(parts, "ORDER BY "+sqlJoin(n.OrderClause, ", "))
	}
	if n.FrameOptions&FRAMEOPTION_NONDEFAULT != 0 {
		var mode string
		switch {
		case n.FrameOptions&FRAMEOPTION_ROWS != 0:
			mode = "ROWS"
		case n.FrameOptions&FRAMEOPTION_GROUPS != 0:
			mode = "GROUPS"
		default:
			mode = "RANGE"
		}
		if n.FrameOptions&FRAMEOPTION_BETWEEN != 0 {
			parts = append(parts, mode+" BETWEEN "+frameBound(n.FrameOptions, n.StartOffset, true)+
				" AND "+frameBound(n.FrameOptions, n.EndOffset, false))
		} else {
			parts = append(parts, mode+" "+frameBound(n.FrameOptions, n.StartOffset, true))
		}
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// CTEMaterialize is the MATERIALIZED option of a common table expression.
type CTEMaterialize int

const (
	CTEMaterializeDefault CTEMaterialize = iota
	CTEMaterializeAlways
	CTEMaterializeNever
)

// CommonTableExpr is one WITH-list entry.
type CommonTableExpr struct {
	BaseNode
	Ctename         string
	Aliascolnames   []string
	Ctematerialized CTEMaterialize
	Ctequery        Node
}

func (n *CommonTableExpr) String() string {
	return fmt.Sprintf("CommonTableExpr(%s)@%s", n.Ctename, n.Loc)
}

func (n *CommonTableExpr) SqlString() string {
	var sb strings.Builder
	sb.WriteString(QuoteIdentifier(n.Ctename))
	if len(n.Aliascolnames) > 0 {
		cols := make([]string, len(n.Aliascolnames))
		for i, c := range n.Aliascolnames {
			cols[i] = QuoteIdentifier(c)
		}
		sb.WriteString(" (" + strings.Join(cols, ", ") + ")")
	}
	sb.WriteString(" AS ")
	switch n.Ctematerialized {
	case CTEMaterializeAlways:
		sb.WriteString("MATERIALIZED ")
	case CTEMaterializeNever:
		sb.WriteString("NOT MATERIALIZED ")
	}
	sb.WriteString("(" + n.Ctequery.SqlString() + ")")
	return sb.String()
}

// WithClause is the WITH [RECURSIVE] cte-list prefix of a query.
type WithClause struct {
	BaseNode
	Ctes      []*CommonTableExpr
	Recursive bool
}

func (n *WithClause) String() string {
	return fmt.Sprintf("WithClause(%d ctes)@%s", len(n.Ctes), n.Loc)
}

func (n *WithClause) SqlString() string {
	s := "WITH "
	if n.Recursive {
		s = "WITH RECURSIVE "
	}
	return s + sqlJoin(n.Ctes, ", ")
}

// InferClause is the conflict target of ON CONFLICT: either an index-element
// list with optional WHERE, or ON CONSTRAINT name.
type InferClause struct {
	BaseNode
	IndexElems  []*IndexElem
	WhereClause Node
	Conname     string
}

func (n *InferClause) String() string { return fmt.Sprintf("InferClause@%s", n.Loc) }

func (n *InferClause) SqlString() string {
	if n.Conname != "" {
		return "ON CONSTRAINT " + QuoteIdentifier(n.Conname)
	}
	s := "(" + sqlJoin(n.IndexElems, ", ") + ")"
	if n.WhereClause != nil {
		s += " WHERE " + n.WhereClause.SqlString()
	}
	return s
}

// OnConflictAction is the DO NOTHING / DO UPDATE choice.
type OnConflictAction int

const (
	ONCONFLICT_NOTHING OnConflictAction = iota
	ONCONFLICT_UPDATE
)

// OnConflictClause is INSERT's ON CONFLICT clause.
type OnConflictClause struct {
	BaseNode
	Action      OnConflictAction
	Infer       *InferClause
	TargetList  []*ResTarget
	WhereClause Node
}

func (n *OnConflictClause) String() string {
	return fmt.Sprintf("OnConflictClause(%d)@%s", n.Action, n.Loc)
}

func (n *OnConflictClause) SqlString() string {
	var sb strings.Builder
	sb.WriteString("ON CONFLICT")
	if n.Infer != nil {
		sb.WriteString(" " + n.Infer.SqlString())
	}
	if n.Action == ONCONFLICT_NOTHING {
		sb.WriteString(" DO NOTHING")
		return sb.String()
	}
	sb.WriteString(" DO UPDATE SET " + setClauseList(n.TargetList))
	if n.WhereClause != nil {
		sb.WriteString(" WHERE " + n.WhereClause.SqlString())
	}
	return sb.String()
}

// LockClauseStrength is the FOR UPDATE/SHARE strength.
type LockClauseStrength int

const (
	LCS_FORKEYSHARE LockClauseStrength = iota
	LCS_FORSHARE
	LCS_FORNOKEYUPDATE
	LCS_FORUPDATE
)

// LockWaitPolicy is the NOWAIT / SKIP LOCKED option.
type LockWaitPolicy int

const (
	LockWaitBlock LockWaitPolicy = iota
	LockWaitSkip
	LockWaitError
)

// LockingClause is a FOR UPDATE/SHARE ... clause of SELECT.
type LockingClause struct {
	BaseNode
	LockedRels []*RangeVar
	Strength   LockClauseStrength
	WaitPolicy LockWaitPolicy
}

func (n *LockingClause) String() string {
	return fmt.Sprintf("LockingClause(%d)@%s", n.Strength, n.Loc)
}

func (n *LockingClause) SqlString() string {
	var sb strings.Builder
	switch n.Strength {
	case LCS_FORKEYSHARE:
		sb.WriteString("FOR KEY SHARE")
	case LCS_FORSHARE:
		sb.WriteString("FOR SHARE")
	case LCS_FORNOKEYUPDATE:
		sb.WriteString("FOR NO KEY UPDATE")
	default:
		sb.WriteString("FOR UPDATE")
	}
	if len(n.LockedRels) > 0 {
		sb.WriteString(" OF " + sqlJoin(n.LockedRels, ", "))
	}
	switch n.WaitPolicy {
	case LockWaitSkip:
		sb.WriteString(" SKIP LOCKED")
	case LockWaitError:
		sb.WriteString(" NOWAIT")
	}
	return sb.String()
}

// IntoClause is SELECT ... INTO's target.
type IntoClause struct {
	BaseNode
	Rel *RangeVar
}

func (n *IntoClause) String() string    { return fmt.Sprintf("IntoClause@%s", n.Loc) }
func (n *IntoClause) SqlString() string { return "INTO " + n.Rel.SqlString() }

// TypeName is a type reference with optional modifiers and array bounds.
type TypeName struct {
	BaseNode
	Names       []string
	Typmods     []Node
	ArrayBounds []int // -1 per unspecified dimension
	Setof       bool
	PctType     bool
}

// NewTypeName creates a type name from name parts.
func NewTypeName(names []string, span Span) *TypeName {
	return &TypeName{BaseNode: BaseNode{Tag: T_TypeName, Loc: span}, Names: names}
}

func (n *TypeName) String() string {
	return fmt.Sprintf("TypeName(%s)@%s", strings.Join(n.Names, "."), n.Loc)
}

// builtinTypeSpellings maps internal type names back to their SQL spellings.
var builtinTypeSpellings = map[string]string{
	"int4":        "integer",
	"int8":        "bigint",
	"int2":        "smallint",
	"float4":      "real",
	"float8":      "double precision",
	"bool":        "boolean",
	"bpchar":      "character",
	"varbit":      "bit varying",
	"timetz":      "time with time zone",
	"timestamptz": "timestamp with time zone",
}

func (n *TypeName) SqlString() string {
	var sb strings.Builder
	if n.Setof {
		sb.WriteString("SETOF ")
	}
	if len(n.Names) == 2 && n.Names[0] == "pg_catalog" {
		if spelled, ok := builtinTypeSpellings[n.Names[1]]; ok {
			sb.WriteString(spelled)
		} else {
			sb.WriteString(n.Names[1])
		}
	} else {
		sb.WriteString(QuoteQualified(n.Names...))
	}
	if len(n.Typmods) > 0 {
		sb.WriteString("(" + sqlJoin(n.Typmods, ", ") + ")")
	}
	for _, b := range n.ArrayBounds {
		if b >= 0 {
			sb.WriteString("[" + strconv.Itoa(b) + "]")
		} else {
			sb.WriteString("[]")
		}
	}
	return sb.String()
}
