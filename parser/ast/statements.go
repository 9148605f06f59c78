/*
 * DML statement nodes: SELECT (leaf queries, VALUES lists and set-operation
 * trees), INSERT, UPDATE, DELETE and MERGE, following parsenodes.h.
 */

package ast

import (
	"fmt"
	"strings"
)

// SetOperation is the set-op kind of an upper-level SelectStmt.
type SetOperation int

const (
	SETOP_NONE SetOperation = iota
	SETOP_UNION
	SETOP_INTERSECT
	SETOP_EXCEPT
)

// LimitOption distinguishes LIMIT/OFFSET from FETCH FIRST ... WITH TIES.
type LimitOption int

const (
	LIMIT_OPTION_COUNT LimitOption = iota
	LIMIT_OPTION_WITH_TIES
)

// SelectStmt is a raw SELECT. A leaf query uses the target/from/where
// fields; a VALUES clause uses ValuesLists; a set operation uses Op with
// Larg/Rarg. Sort/limit/locking/with apply to either form.
type SelectStmt struct {
	BaseNode
	DistinctClause []Node // nil: no DISTINCT; empty: plain DISTINCT; else DISTINCT ON exprs
	IntoClause     *IntoClause
	TargetList     []*ResTarget
	FromClause     []Node
	WhereClause    Node
	GroupClause    []Node
	GroupDistinct  bool
	HavingClause   Node
	WindowClause   []*WindowDef
	ValuesLists    [][]Node

	SortClause    []*SortBy
	LimitOffset   Node
	LimitCount    Node
	LimitOption   LimitOption
	LockingClause []*LockingClause
	WithClause    *WithClause

	Op   SetOperation
	All  bool
	Larg *SelectStmt
	Rarg *SelectStmt
}

// NewSelectStmt creates an empty leaf SELECT.
func NewSelectStmt() *SelectStmt {
	return &SelectStmt{BaseNode: BaseNode{Tag: T_SelectStmt}}
}

func (n *SelectStmt) String() string { return fmt.Sprintf("SelectStmt@%s", n.Loc) }

func (n *SelectStmt) StatementType() string { return "SELECT" }

// setOpOperand wraps set-operation operands that carry their own ordering or
// limits in parentheses so the clause attachment survives the round trip.
func setOpOperand(s *SelectStmt) string {
	if len(s.SortClause) > 0 || s.LimitCount != nil || s.LimitOffset != nil ||
		s.WithClause != nil || len(s.LockingClause) > 0 {
		return "(" + s.SqlString() + ")"
	}
	return s.SqlString()
}

func (n *SelectStmt) SqlString() string {
	var sb strings.Builder
	if n.WithClause != nil {
		sb.WriteString(n.WithClause.SqlString())
		sb.WriteString(" ")
	}

	switch {
	case n.Op != SETOP_NONE:
		words := map[SetOperation]string{SETOP_UNION: "UNION", SETOP_INTERSECT: "INTERSECT", SETOP_EXCEPT: "EXCEPT"}
		all := ""
		if n.All {
			all = " ALL"
		}
		sb.WriteString(setOpOperand(n.Larg) + " " + words[n.Op] + all + " " + setOpOperand(n.Rarg))

	case n.ValuesLists != nil:
		sb.WriteString("VALUES ")
		rows := make([]string, len(n.ValuesLists))
		for i, row := range n.ValuesLists {
			rows[i] = "(" + sqlJoin(row, ", ") + ")"
		}
		sb.WriteString(strings.Join(rows, ", "))

	default:
		sb.WriteString("SELECT")
		if n.DistinctClause != nil {
			sb.WriteString(" DISTINCT")
			if len(n.DistinctClause) > 0 {
				sb.WriteString(" ON (" + sqlJoin(n.DistinctClause, ", ") + ")")
			}
		}
		if len(n.TargetList) > 0 {
			sb.WriteString(" " + sqlJoin(n.TargetList, ", "))
		}
		if n.IntoClause != nil {
			sb.WriteString(" " + n.IntoClause.SqlString())
		}
		if len(n.FromClause) > 0 {
			sb.WriteString(" FROM " + sqlJoin(n.FromClause, ", "))
		}
		if n.WhereClause != nil {
			sb.WriteString(" WHERE " + n.WhereClause.SqlString())
		}
		if len(n.GroupClause) > 0 {
			sb.WriteString(" GROUP BY ")
			if n.GroupDistinct {
				sb.WriteString("DISTINCT ")
			}
			sb.WriteString(sqlJoin(n.GroupClause, ", "))
		}
		if n.HavingClause != nil {
			sb.WriteString(" HAVING " + n.HavingClause.SqlString())
		}
		if len(n.WindowClause) > 0 {
			defs := make([]string, len(n.WindowClause))
			for i, w := range n.WindowClause {
				defs[i] = QuoteIdentifier(w.Name) + " AS " + w.SqlString()
			}
			sb.WriteString(" WINDOW " + strings.Join(defs, ", "))
		}
	}

	if len(n.SortClause) > 0 {
		sb.WriteString(" ORDER BY " + sqlJoin(n.SortClause, ", "))
	}
	if n.LimitCount != nil {
		if n.LimitOption == LIMIT_OPTION_WITH_TIES {
			sb.WriteString(" FETCH FIRST " + n.LimitCount.SqlString() + " ROWS WITH TIES")
		} else {
			sb.WriteString(" LIMIT " + n.LimitCount.SqlString())
		}
	}
	if n.LimitOffset != nil {
		sb.WriteString(" OFFSET " + n.LimitOffset.SqlString())
	}
	for _, lc := range n.LockingClause {
		sb.WriteString(" " + lc.SqlString())
	}
	return sb.String()
}

// OverridingKind is INSERT's OVERRIDING option.
type OverridingKind int

const (
	OVERRIDING_NOT_SET OverridingKind = iota
	OVERRIDING_USER_VALUE
	OVERRIDING_SYSTEM_VALUE
)

// InsertStmt is an INSERT statement.
type InsertStmt struct {
	BaseNode
	Relation         *RangeVar
	Cols             []*ResTarget
	SelectStmt       Node // source query or VALUES; nil for DEFAULT VALUES
	Override         OverridingKind
	OnConflictClause *OnConflictClause
	ReturningList    []*ResTarget
	WithClause       *WithClause
}

func (n *InsertStmt) String() string {
	return fmt.Sprintf("InsertStmt(%s)@%s", n.Relation.Relname, n.Loc)
}

func (n *InsertStmt) StatementType() string { return "INSERT" }

func (n *InsertStmt) SqlString() string {
	var sb strings.Builder
	if n.WithClause != nil {
		sb.WriteString(n.WithClause.SqlString() + " ")
	}
	sb.WriteString("INSERT INTO " + n.Relation.SqlString())
	if len(n.Cols) > 0 {
		sb.WriteString(" (" + sqlJoin(n.Cols, ", ") + ")")
	}
	switch n.Override {
	case OVERRIDING_USER_VALUE:
		sb.WriteString(" OVERRIDING USER VALUE")
	case OVERRIDING_SYSTEM_VALUE:
		sb.WriteString(" OVERRIDING SYSTEM VALUE")
	}
	if n.SelectStmt != nil {
		sb.WriteString(" " + n.SelectStmt.SqlString())
	} else {
		sb.WriteString(" DEFAULT VALUES")
	}
	if n.OnConflictClause != nil {
		sb.WriteString(" " + n.OnConflictClause.SqlString())
	}
	if len(n.ReturningList) > 0 {
		sb.WriteString(" RETURNING " + sqlJoin(n.ReturningList, ", "))
	}
	return sb.String()
}

// UpdateStmt is an UPDATE statement.
type UpdateStmt struct {
	BaseNode
	Relation      *RangeVar
	TargetList    []*ResTarget
	WhereClause   Node
	FromClause    []Node
	ReturningList []*ResTarget
	WithClause    *WithClause
}

func (n *UpdateStmt) String() string {
	return fmt.Sprintf("UpdateStmt(%s)@%s", n.Relation.Relname, n.Loc)
}

func (n *UpdateStmt) StatementType() string { return "UPDATE" }

func (n *UpdateStmt) SqlString() string {
	var sb strings.Builder
	if n.WithClause != nil {
		sb.WriteString(n.WithClause.SqlString() + " ")
	}
	sb.WriteString("UPDATE " + n.Relation.SqlString() + " SET " + setClauseList(n.TargetList))
	if len(n.FromClause) > 0 {
		sb.WriteString(" FROM " + sqlJoin(n.FromClause, ", "))
	}
	if n.WhereClause != nil {
		sb.WriteString(" WHERE " + n.WhereClause.SqlString())
	}
	if len(n.ReturningList) > 0 {
		sb.WriteString(" RETURNING " + sqlJoin(n.ReturningList, ", "))
	}
	return sb.String()
}

// DeleteStmt is a DELETE statement.
type DeleteStmt struct {
	BaseNode
	Relation      *RangeVar
	UsingClause   []Node
	WhereClause   Node
	ReturningList []*ResTarget
	WithClause    *WithClause
}

func (n *DeleteStmt) String() string {
	return fmt.Sprintf("DeleteStmt(%s)@%s", n.Relation.Relname, n.Loc)
}

func (n *DeleteStmt) StatementType() string { return "DELETE" }

func (n *DeleteStmt) SqlString() string {
	var sb strings.Builder
	if n.WithClause != nil {
		sb.WriteString(n.WithClause.SqlString() + " ")
	}
	sb.WriteString("DELETE FROM " + n.Relation.SqlString())
	if len(n.UsingClause) > 0 {
		sb.WriteString(" USING " + sqlJoin(n.UsingClause, ", "))
	}
	if n.WhereClause != nil {
		sb.WriteString(" WHERE " + n.WhereClause.SqlString())
	}
	if len(n.ReturningList) > 0 {
		sb.WriteString(" RETURNING " + sqlJoin(n.ReturningList, ", "))
	}
	return sb.String()
}
