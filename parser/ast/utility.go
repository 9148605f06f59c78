/*
 * Utility statement nodes: transaction control, SET/SHOW, EXPLAIN, COPY,
 * LISTEN/NOTIFY, VACUUM/ANALYZE, GRANT/REVOKE and prepared statements.
 */

package ast

import (
	"fmt"
	"strings"
)

// TransactionStmtKind enumerates transaction control commands.
type TransactionStmtKind int

const (
	TRANS_STMT_BEGIN TransactionStmtKind = iota
	TRANS_STMT_START                     // START TRANSACTION spelling
	TRANS_STMT_COMMIT
	TRANS_STMT_ROLLBACK
	TRANS_STMT_SAVEPOINT
	TRANS_STMT_RELEASE
	TRANS_STMT_ROLLBACK_TO
)

// TransactionStmt is a transaction control command.
type TransactionStmt struct {
	BaseNode
	Kind          TransactionStmtKind
	SavepointName string
	Options       []*DefElem // isolation level etc.
	Chain         bool       // AND CHAIN
}

func (n *TransactionStmt) String() string {
	return fmt.Sprintf("TransactionStmt(%d)@%s", n.Kind, n.Loc)
}

func (n *TransactionStmt) StatementType() string { return "TRANSACTION" }

// transactionModeText renders one BEGIN/START option.
func transactionModeText(d *DefElem) string {
	switch d.Defname {
	case "transaction_isolation":
		if s, ok := d.Arg.(*String); ok {
			return "ISOLATION LEVEL " + strings.ToUpper(s.SVal)
		}
	case "transaction_read_only":
		if b, ok := d.Arg.(*Boolean); ok {
			if b.BoolVal {
				return "READ ONLY"
			}
			return "READ WRITE"
		}
	case "transaction_deferrable":
		if b, ok := d.Arg.(*Boolean); ok {
			if b.BoolVal {
				return "DEFERRABLE"
			}
			return "NOT DEFERRABLE"
		}
	}
	return ""
}

func (n *TransactionStmt) SqlString() string {
	var sb strings.Builder
	switch n.Kind {
	case TRANS_STMT_BEGIN:
		sb.WriteString("BEGIN")
	case TRANS_STMT_START:
		sb.WriteString("START TRANSACTION")
	case TRANS_STMT_COMMIT:
		sb.WriteString("COMMIT")
	case TRANS_STMT_ROLLBACK:
		sb.WriteString("ROLLBACK")
	case TRANS_STMT_SAVEPOINT:
		return "SAVEPOINT " + QuoteIdentifier(n.SavepointName)
	case TRANS_STMT_RELEASE:
		return "RELEASE SAVEPOINT " + QuoteIdentifier(n.SavepointName)
	case TRANS_STMT_ROLLBACK_TO:
		return "ROLLBACK TO SAVEPOINT " + QuoteIdentifier(n.SavepointName)
	}
	for _, opt := range n.Options {
		if t := transactionModeText(opt); t != "" {
			sb.WriteString(" " + t)
		}
	}
	if n.Chain {
		sb.WriteString(" AND CHAIN")
	}
	return sb.String()
}

// VariableSetKind enumerates SET statement forms.
type VariableSetKind int

const (
	VAR_SET_VALUE VariableSetKind = iota
	VAR_SET_DEFAULT
	VAR_RESET
	VAR_RESET_ALL
)

// VariableSetStmt is SET and RESET.
type VariableSetStmt struct {
	BaseNode
	Kind    VariableSetKind
	Name    string
	Args    []Node
	IsLocal bool
}

func (n *VariableSetStmt) String() string {
	return fmt.Sprintf("VariableSetStmt(%s)@%s", n.Name, n.Loc)
}

func (n *VariableSetStmt) StatementType() string { return "SET" }

func (n *VariableSetStmt) SqlString() string {
	switch n.Kind {
	case VAR_RESET:
		return "RESET " + n.Name
	case VAR_RESET_ALL:
		return "RESET ALL"
	}
	scope := ""
	if n.IsLocal {
		scope = "LOCAL "
	}
	if n.Kind == VAR_SET_DEFAULT {
		return "SET " + scope + n.Name + " TO DEFAULT"
	}
	return "SET " + scope + n.Name + " TO " + sqlJoin(n.Args, ", ")
}

// VariableShowStmt is SHOW.
type VariableShowStmt struct {
	BaseNode
	Name string // "all" for SHOW ALL
}

func (n *VariableShowStmt) String() string {
	return fmt.Sprintf("VariableShowStmt(%s)@%s", n.Name, n.Loc)
}

func (n *VariableShowStmt) StatementType() string { return "SHOW" }

func (n *VariableShowStmt) SqlString() string {
	if n.Name == "all" {
		return "SHOW ALL"
	}
	return "SHOW " + n.Name
}

// ExplainStmt is EXPLAIN with its option list and wrapped statement.
type ExplainStmt struct {
	BaseNode
	Query   Node
	Options []*DefElem
}

func (n *ExplainStmt) String() string { return fmt.Sprintf("ExplainStmt@%s", n.Loc) }

func (n *ExplainStmt) StatementType() string { return "EXPLAIN" }

func (n *ExplainStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString("EXPLAIN")
	if len(n.Options) > 0 {
		opts := make([]string, len(n.Options))
		for i, o := range n.Options {
			opts[i] = strings.ToUpper(o.Defname)
			if o.Arg != nil {
				opts[i] += " " + o.Arg.SqlString()
			}
		}
		sb.WriteString(" (" + strings.Join(opts, ", ") + ")")
	}
	sb.WriteString(" " + n.Query.SqlString())
	return sb.String()
}

// CopyStmt is COPY table/query to or from a file or program.
type CopyStmt struct {
	BaseNode
	Relation  *RangeVar
	Query     Node
	Attlist   []string
	IsFrom    bool
	IsProgram bool
	Filename  string // empty means STDIN/STDOUT
	Options   []*DefElem
}

func (n *CopyStmt) String() string { return fmt.Sprintf("CopyStmt@%s", n.Loc) }

func (n *CopyStmt) StatementType() string { return "COPY" }

func (n *CopyStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString("COPY ")
	if n.Query != nil {
		sb.WriteString("(" + n.Query.SqlString() + ")")
	} else {
		sb.WriteString(n.Relation.SqlString())
		if len(n.Attlist) > 0 {
			sb.WriteString(" (" + quoteNameList(n.Attlist) + ")")
		}
	}
	if n.IsFrom {
		sb.WriteString(" FROM ")
	} else {
		sb.WriteString(" TO ")
	}
	switch {
	case n.IsProgram:
		sb.WriteString("PROGRAM " + QuoteStringLiteral(n.Filename))
	case n.Filename != "":
		sb.WriteString(QuoteStringLiteral(n.Filename))
	case n.IsFrom:
		sb.WriteString("STDIN")
	default:
		sb.WriteString("STDOUT")
	}
	if len(n.Options) > 0 {
		opts := make([]string, len(n.Options))
		for i, o := range n.Options {
			opts[i] = o.Defname
			if o.Arg != nil {
				opts[i] += " " + o.Arg.SqlString()
			}
		}
		sb.WriteString(" WITH (" + strings.Join(opts, ", ") + ")")
	}
	return sb.String()
}

// ListenStmt is LISTEN.
type ListenStmt struct {
	BaseNode
	Conditionname string
}

func (n *ListenStmt) String() string { return fmt.Sprintf("ListenStmt(%s)@%s", n.Conditionname, n.Loc) }

func (n *ListenStmt) StatementType() string { return "LISTEN" }

func (n *ListenStmt) SqlString() string { return "LISTEN " + QuoteIdentifier(n.Conditionname) }

// UnlistenStmt is UNLISTEN; an empty Conditionname means UNLISTEN *.
type UnlistenStmt struct {
	BaseNode
	Conditionname string
}

func (n *UnlistenStmt) String() string {
	return fmt.Sprintf("UnlistenStmt(%s)@%s", n.Conditionname, n.Loc)
}

func (n *UnlistenStmt) StatementType() string { return "UNLISTEN" }

func (n *UnlistenStmt) SqlString() string {
	if n.Conditionname == "" {
		return "UNLISTEN *"
	}
	return "UNLISTEN " + QuoteIdentifier(n.Conditionname)
}

// NotifyStmt is NOTIFY.
type NotifyStmt struct {
	BaseNode
	Conditionname string
	Payload       string
	HasPayload    bool
}

func (n *NotifyStmt) String() string { return fmt.Sprintf("NotifyStmt(%s)@%s", n.Conditionname, n.Loc) }

func (n *NotifyStmt) StatementType() string { return "NOTIFY" }

func (n *NotifyStmt) SqlString() string {
	s := "NOTIFY " + QuoteIdentifier(n.Conditionname)
	if n.HasPayload {
		s += ", " + QuoteStringLiteral(n.Payload)
	}
	return s
}

// VacuumRelation is one target of VACUUM or ANALYZE.
type VacuumRelation struct {
	BaseNode
	Relation *RangeVar
	VaCols   []string
}

func (n *VacuumRelation) String() string {
	return fmt.Sprintf("VacuumRelation(%s)@%s", n.Relation.Relname, n.Loc)
}

func (n *VacuumRelation) SqlString() string {
	s := n.Relation.SqlString()
	if len(n.VaCols) > 0 {
		s += " (" + quoteNameList(n.VaCols) + ")"
	}
	return s
}

// VacuumStmt is VACUUM or ANALYZE.
type VacuumStmt struct {
	BaseNode
	Options     []*DefElem
	Rels        []*VacuumRelation
	IsVacuumcmd bool // false for a bare ANALYZE
}

func (n *VacuumStmt) String() string { return fmt.Sprintf("VacuumStmt@%s", n.Loc) }

func (n *VacuumStmt) StatementType() string {
	if n.IsVacuumcmd {
		return "VACUUM"
	}
	return "ANALYZE"
}

func (n *VacuumStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString(n.StatementType())
	if len(n.Options) > 0 {
		opts := make([]string, len(n.Options))
		for i, o := range n.Options {
			opts[i] = strings.ToUpper(o.Defname)
			if o.Arg != nil {
				opts[i] += " " + o.Arg.SqlString()
			}
		}
		sb.WriteString(" (" + strings.Join(opts, ", ") + ")")
	}
	if len(n.Rels) > 0 {
		sb.WriteString(" " + sqlJoin(n.Rels, ", "))
	}
	return sb.String()
}

// RoleSpecType identifies special role designators.
type RoleSpecType int

const (
	ROLESPEC_CSTRING RoleSpecType = iota
	ROLESPEC_CURRENT_USER
	ROLESPEC_SESSION_USER
	ROLESPEC_PUBLIC
)

// RoleSpec names a role, possibly one of the special designators.
type RoleSpec struct {
	BaseNode
	Roletype RoleSpecType
	Rolename string
}

func (n *RoleSpec) String() string { return fmt.Sprintf("RoleSpec(%s)@%s", n.Rolename, n.Loc) }

func (n *RoleSpec) SqlString() string {
	switch n.Roletype {
	case ROLESPEC_CURRENT_USER:
		return "CURRENT_USER"
	case ROLESPEC_SESSION_USER:
		return "SESSION_USER"
	case ROLESPEC_PUBLIC:
		return "PUBLIC"
	}
	return QuoteIdentifier(n.Rolename)
}

// AccessPriv is one privilege name with optional column list.
type AccessPriv struct {
	BaseNode
	PrivName string // empty means ALL PRIVILEGES
	Cols     []string
}

func (n *AccessPriv) String() string { return fmt.Sprintf("AccessPriv(%s)@%s", n.PrivName, n.Loc) }

func (n *AccessPriv) SqlString() string {
	s := strings.ToUpper(n.PrivName)
	if s == "" {
		s = "ALL"
	}
	if len(n.Cols) > 0 {
		s += " (" + quoteNameList(n.Cols) + ")"
	}
	return s
}

// ObjectWithArgs names a function with its argument types, for GRANT and DROP.
type ObjectWithArgs struct {
	BaseNode
	Objname         []string
	Objargs         []*TypeName
	ArgsUnspecified bool
}

func (n *ObjectWithArgs) String() string {
	return fmt.Sprintf("ObjectWithArgs(%s)@%s", strings.Join(n.Objname, "."), n.Loc)
}

func (n *ObjectWithArgs) SqlString() string {
	s := QuoteQualified(n.Objname...)
	if !n.ArgsUnspecified {
		s += "(" + sqlJoin(n.Objargs, ", ") + ")"
	}
	return s
}

// GrantTargetType distinguishes plain object lists from ALL ... IN SCHEMA.
type GrantTargetType int

const (
	ACL_TARGET_OBJECT GrantTargetType = iota
	ACL_TARGET_ALL_IN_SCHEMA
)

// GrantStmt is GRANT and REVOKE.
type GrantStmt struct {
	BaseNode
	IsGrant     bool
	Targtype    GrantTargetType
	Objtype     ObjectType
	Objects     []Node
	Privileges  []*AccessPriv // nil means ALL PRIVILEGES
	Grantees    []*RoleSpec
	GrantOption bool
	Behavior    DropBehavior
}

func (n *GrantStmt) String() string { return fmt.Sprintf("GrantStmt(grant=%t)@%s", n.IsGrant, n.Loc) }

func (n *GrantStmt) StatementType() string {
	if n.IsGrant {
		return "GRANT"
	}
	return "REVOKE"
}

func (n *GrantStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString(n.StatementType() + " ")
	if !n.IsGrant && n.GrantOption {
		sb.WriteString("GRANT OPTION FOR ")
	}
	if n.Privileges == nil {
		sb.WriteString("ALL")
	} else {
		sb.WriteString(sqlJoin(n.Privileges, ", "))
	}
	sb.WriteString(" ON ")
	if n.Targtype == ACL_TARGET_ALL_IN_SCHEMA {
		sb.WriteString("ALL " + objectTypeNames[n.Objtype] + "S IN SCHEMA " + sqlJoin(n.Objects, ", "))
	} else {
		sb.WriteString(objectTypeNames[n.Objtype] + " " + sqlJoin(n.Objects, ", "))
	}
	if n.IsGrant {
		sb.WriteString(" TO " + sqlJoin(n.Grantees, ", "))
		if n.GrantOption {
			sb.WriteString(" WITH GRANT OPTION")
		}
	} else {
		sb.WriteString(" FROM " + sqlJoin(n.Grantees, ", "))
		sb.WriteString(n.Behavior.suffix())
	}
	return sb.String()
}

// PrepareStmt is PREPARE name [(types)] AS statement.
type PrepareStmt struct {
	BaseNode
	Name     string
	Argtypes []*TypeName
	Query    Node
}

func (n *PrepareStmt) String() string { return fmt.Sprintf("PrepareStmt(%s)@%s", n.Name, n.Loc) }

func (n *PrepareStmt) StatementType() string { return "PREPARE" }

func (n *PrepareStmt) SqlString() string {
	var sb strings.Builder
	sb.WriteString("PREPARE " + QuoteIdentifier(n.Name))
	if len(n.Argtypes) > 0 {
		sb.WriteString(" (" + sqlJoin(n.Argtypes, ", ") + ")")
	}
	sb.WriteString(" AS " + n.Query.SqlString())
	return sb.String()
}

// ExecuteStmt is EXECUTE name [(params)].
type ExecuteStmt struct {
	BaseNode
	Name   string
	Params []Node
}

func (n *ExecuteStmt) String() string { return fmt.Sprintf("ExecuteStmt(%s)@%s", n.Name, n.Loc) }

func (n *ExecuteStmt) StatementType() string { return "EXECUTE" }

func (n *ExecuteStmt) SqlString() string {
	s := "EXECUTE " + QuoteIdentifier(n.Name)
	if len(n.Params) > 0 {
		s += " (" + sqlJoin(n.Params, ", ") + ")"
	}
	return s
}

// DeallocateStmt is DEALLOCATE; empty Name means DEALLOCATE ALL.
type DeallocateStmt struct {
	BaseNode
	Name string
}

func (n *DeallocateStmt) String() string { return fmt.Sprintf("DeallocateStmt(%s)@%s", n.Name, n.Loc) }

func (n *DeallocateStmt) StatementType() string { return "DEALLOCATE" }

func (n *DeallocateStmt) SqlString() string {
	if n.Name == "" {
		return "DEALLOCATE ALL"
	}
	return "DEALLOCATE " + QuoteIdentifier(n.Name)
}
