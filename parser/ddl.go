/*
 * DDL grammar: CREATE TABLE/INDEX/VIEW/SEQUENCE/SCHEMA/ROLE, ALTER TABLE and
 * the rename forms, DROP and TRUNCATE.
 */

package parser

import (
	"strings"

	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// parseCreate dispatches the CREATE statement forms.
func (p *Parser) parseCreate() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // CREATE
		return nil, err
	}

	replace := false
	if p.cur.Type == OR {
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(REPLACE); err != nil {
			return nil, err
		}
		replace = true
	}

	temporary := false
	unlogged := false
	switch p.cur.Type {
	case TEMPORARY, TEMP:
		temporary = true
		if err := p.next(); err != nil {
			return nil, err
		}
	case UNLOGGED:
		unlogged = true
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	switch p.cur.Type {
	case TABLE:
		if replace {
			return nil, syntaxError(p.cur)
		}
		return p.parseCreateTable(start, temporary, unlogged)
	case VIEW:
		return p.parseCreateView(start, replace, temporary)
	case MATERIALIZED:
		if replace || temporary || unlogged {
			return nil, syntaxError(p.cur)
		}
		return p.parseCreateMatView(start)
	case UNIQUE, INDEX:
		if replace || temporary || unlogged {
			return nil, syntaxError(p.cur)
		}
		return p.parseCreateIndex(start)
	case SEQUENCE:
		if replace || unlogged {
			return nil, syntaxError(p.cur)
		}
		return p.parseCreateSequence(start, temporary)
	case SCHEMA:
		if replace || temporary || unlogged {
			return nil, syntaxError(p.cur)
		}
		return p.parseCreateSchema(start)
	case ROLE, USER, GROUP_P:
		if replace || temporary || unlogged {
			return nil, syntaxError(p.cur)
		}
		return p.parseCreateRole(start)
	}
	return nil, syntaxError(p.cur)
}

// parseIfNotExists consumes IF NOT EXISTS when present.
func (p *Parser) parseIfNotExists() (bool, error) {
	if p.cur.Type != IF_P {
		return false, nil
	}
	if err := p.next(); err != nil {
		return false, err
	}
	if _, err := p.expect(NOT); err != nil {
		return false, err
	}
	if _, err := p.expect(EXISTS); err != nil {
		return false, err
	}
	return true, nil
}

// parseIfExists consumes IF EXISTS when present.
func (p *Parser) parseIfExists() (bool, error) {
	if p.cur.Type != IF_P {
		return false, nil
	}
	if err := p.next(); err != nil {
		return false, err
	}
	if _, err := p.expect(EXISTS); err != nil {
		return false, err
	}
	return true, nil
}

// parseCreateTable parses CREATE TABLE from the TABLE keyword on. It also
// recognizes the CREATE TABLE AS form.
func (p *Parser) parseCreateTable(start ast.Span, temporary, unlogged bool) (ast.Stmt, error) {
	if err := p.next(); err != nil { // TABLE
		return nil, err
	}
	ifNotExists, err := p.parseIfNotExists()
	if err != nil {
		return nil, err
	}
	rel, err := p.qualifiedName()
	if err != nil {
		return nil, err
	}

	if p.cur.Type == AS {
		return p.parseCreateTableAsTail(start, rel, ast.OBJECT_TABLE, temporary, ifNotExists)
	}

	stmt := &ast.CreateStmt{
		Relation:    rel,
		Temporary:   temporary,
		Unlogged:    unlogged,
		IfNotExists: ifNotExists,
	}
	stmt.Tag = ast.T_CreateStmt

	if p.cur.Type == PARTITION {
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(OF); err != nil {
			return nil, err
		}
		parent, err := p.qualifiedName()
		if err != nil {
			return nil, err
		}
		stmt.InhRelations = []*ast.RangeVar{parent}
		if p.cur.Type == TokenType('(') {
			elts, err := p.parseTableElementList()
			if err != nil {
				return nil, err
			}
			stmt.TableElts = elts
		}
		bound, err := p.parsePartitionBound()
		if err != nil {
			return nil, err
		}
		stmt.PartBound = bound
	} else {
		elts, err := p.parseTableElementList()
		if err != nil {
			return nil, err
		}
		stmt.TableElts = elts

		if ok, err := p.accept(INHERITS); err != nil {
			return nil, err
		} else if ok {
			if _, err := p.expect(TokenType('(')); err != nil {
				return nil, err
			}
			parents, err := p.qualifiedNameList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenType(')')); err != nil {
				return nil, err
			}
			stmt.InhRelations = parents
		}
	}

	if p.cur.Type == PARTITION {
		spec, err := p.parsePartitionSpec()
		if err != nil {
			return nil, err
		}
		stmt.PartSpec = spec
	}

	if p.cur.Type == WITH {
		opts, err := p.parseRelOptions()
		if err != nil {
			return nil, err
		}
		stmt.Options = opts
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseCreateTableAsTail parses "AS query [WITH [NO] DATA]" for CREATE
// TABLE AS and CREATE MATERIALIZED VIEW.
func (p *Parser) parseCreateTableAsTail(start ast.Span, rel *ast.RangeVar, objType ast.ObjectType, temporary, ifNotExists bool) (ast.Stmt, error) {
	if err := p.next(); err != nil { // AS
		return nil, err
	}
	query, err := p.parseSelectStmt()
	if err != nil {
		return nil, err
	}
	stmt := &ast.CreateTableAsStmt{
		Query:       query,
		ObjType:     objType,
		Temporary:   temporary,
		IfNotExists: ifNotExists,
	}
	stmt.Tag = ast.T_CreateTableAsStmt
	into := &ast.IntoClause{Rel: rel}
	into.Tag = ast.T_IntoClause
	into.SetSpan(rel.Span())
	stmt.Into = into

	if p.cur.Type == WITH {
		if err := p.next(); err != nil {
			return nil, err
		}
		if ok, err := p.accept(NO); err != nil {
			return nil, err
		} else if ok {
			stmt.WithNoData = true
		}
		if _, err := p.expect(DATA_P); err != nil {
			return nil, err
		}
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseTableElementList parses "( column-or-constraint, ... )".
func (p *Parser) parseTableElementList() ([]ast.Node, error) {
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	var elts []ast.Node
	if p.cur.Type != TokenType(')') {
		for {
			elt, err := p.parseTableElement()
			if err != nil {
				return nil, err
			}
			elts = append(elts, elt)
			ok, err := p.accept(TokenType(','))
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
		}
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	return elts, nil
}

// parseTableElement parses one column definition or table constraint.
func (p *Parser) parseTableElement() (ast.Node, error) {
	switch p.cur.Type {
	case CONSTRAINT, PRIMARY, UNIQUE, FOREIGN, CHECK:
		return p.parseTableConstraint()
	}
	return p.parseColumnDef()
}

// parseColumnDef parses "name type [COLLATE ...] [constraints...]".
func (p *Parser) parseColumnDef() (*ast.ColumnDef, error) {
	start := p.cur.Span
	name, err := p.colId()
	if err != nil {
		return nil, err
	}
	typ, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	col := ast.NewColumnDef(name, typ, start)

	if ok, err := p.accept(COLLATE); err != nil {
		return nil, err
	} else if ok {
		cstart := p.last.Span
		collname, err := p.anyName()
		if err != nil {
			return nil, err
		}
		cc := &ast.CollateClause{Collname: collname}
		cc.Tag = ast.T_CollateClause
		cc.SetSpan(p.spanFrom(cstart))
		col.CollClause = cc
	}

	for {
		con, err := p.parseOptColConstraint()
		if err != nil {
			return nil, err
		}
		if con == nil {
			break
		}
		col.Constraints = append(col.Constraints, con)
	}
	col.SetSpan(p.spanFrom(start))
	return col, nil
}

// parseOptColConstraint parses one column constraint, nil when none follows.
func (p *Parser) parseOptColConstraint() (*ast.Constraint, error) {
	start := p.cur.Span
	conname := ""
	if p.cur.Type == CONSTRAINT {
		if err := p.next(); err != nil {
			return nil, err
		}
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		conname = name
	}

	con := &ast.Constraint{Conname: conname}
	con.Tag = ast.T_Constraint

	switch p.cur.Type {
	case NOT:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(NULL_P); err != nil {
			return nil, err
		}
		con.Contype = ast.CONSTR_NOTNULL

	case NULL_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		con.Contype = ast.CONSTR_NULL

	case DEFAULT:
		if err := p.next(); err != nil {
			return nil, err
		}
		expr, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		con.Contype = ast.CONSTR_DEFAULT
		con.RawExpr = expr

	case PRIMARY:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(KEY); err != nil {
			return nil, err
		}
		con.Contype = ast.CONSTR_PRIMARY

	case UNIQUE:
		if err := p.next(); err != nil {
			return nil, err
		}
		con.Contype = ast.CONSTR_UNIQUE

	case CHECK:
		if err := p.next(); err != nil {
			return nil, err
		}
		expr, err := p.parseParenExpr()
		if err != nil {
			return nil, err
		}
		con.Contype = ast.CONSTR_CHECK
		con.RawExpr = expr

	case REFERENCES:
		if err := p.next(); err != nil {
			return nil, err
		}
		con.Contype = ast.CONSTR_FOREIGN
		if err := p.parseReferencesTail(con); err != nil {
			return nil, err
		}

	case GENERATED:
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.cur.Type {
		case ALWAYS:
			con.GeneratedWhen = 'a'
			if err := p.next(); err != nil {
				return nil, err
			}
		case BY:
			if err := p.next(); err != nil {
				return nil, err
			}
			if _, err := p.expect(DEFAULT); err != nil {
				return nil, err
			}
			con.GeneratedWhen = 'd'
		default:
			return nil, syntaxError(p.cur)
		}
		if _, err := p.expect(AS); err != nil {
			return nil, err
		}
		if p.cur.Type == IDENTITY_P {
			if err := p.next(); err != nil {
				return nil, err
			}
			con.Contype = ast.CONSTR_IDENTITY
		} else {
			if con.GeneratedWhen != 'a' {
				return nil, syntaxError(p.cur)
			}
			expr, err := p.parseParenExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(STORED); err != nil {
				return nil, err
			}
			con.Contype = ast.CONSTR_GENERATED
			con.RawExpr = expr
		}

	case DEFERRABLE:
		if err := p.next(); err != nil {
			return nil, err
		}
		// Attach to the previous constraint is not modeled; a standalone
		// DEFERRABLE starts no constraint.
		return nil, syntaxError(p.cur)

	default:
		if conname != "" {
			return nil, syntaxError(p.cur)
		}
		return nil, nil
	}

	if err := p.parseConstraintAttrs(con); err != nil {
		return nil, err
	}
	con.SetSpan(p.spanFrom(start))
	return con, nil
}

// parseConstraintAttrs parses trailing DEFERRABLE / INITIALLY DEFERRED /
// NOT VALID attributes.
func (p *Parser) parseConstraintAttrs(con *ast.Constraint) error {
	for {
		switch p.cur.Type {
		case DEFERRABLE:
			con.Deferrable = true
			if err := p.next(); err != nil {
				return err
			}
		case INITIALLY:
			if err := p.next(); err != nil {
				return err
			}
			switch p.cur.Type {
			case DEFERRED:
				con.Deferrable = true
				con.Initdeferred = true
			case IMMEDIATE:
			default:
				return syntaxError(p.cur)
			}
			if err := p.next(); err != nil {
				return err
			}
		case NOT:
			la, err := p.peek()
			if err != nil {
				return err
			}
			if la.Type != VALID {
				return nil
			}
			if err := p.next(); err != nil {
				return err
			}
			if err := p.next(); err != nil {
				return err
			}
			con.SkipValidation = true
		default:
			return nil
		}
	}
}

// parseParenExpr parses "( a_expr )".
func (p *Parser) parseParenExpr() (ast.Node, error) {
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	expr, err := p.parseExprDefault()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseReferencesTail parses the REFERENCES target and fk options.
func (p *Parser) parseReferencesTail(con *ast.Constraint) error {
	pk, err := p.qualifiedName()
	if err != nil {
		return err
	}
	con.Pktable = pk
	con.FkMatchtype = ast.FKCONSTR_MATCH_SIMPLE
	con.FkUpdAction = ast.FKCONSTR_ACTION_NOACTION
	con.FkDelAction = ast.FKCONSTR_ACTION_NOACTION

	if p.cur.Type == TokenType('(') {
		if err := p.next(); err != nil {
			return err
		}
		attrs, err := p.nameList()
		if err != nil {
			return err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return err
		}
		con.PkAttrs = attrs
	}

	if ok, err := p.accept(MATCH); err != nil {
		return err
	} else if ok {
		switch p.cur.Type {
		case FULL:
			con.FkMatchtype = ast.FKCONSTR_MATCH_FULL
		case PARTIAL:
			con.FkMatchtype = ast.FKCONSTR_MATCH_PARTIAL
		case SIMPLE:
			con.FkMatchtype = ast.FKCONSTR_MATCH_SIMPLE
		default:
			return syntaxError(p.cur)
		}
		if err := p.next(); err != nil {
			return err
		}
	}

	for p.cur.Type == ON {
		if err := p.next(); err != nil {
			return err
		}
		var isUpdate bool
		switch p.cur.Type {
		case UPDATE:
			isUpdate = true
		case DELETE_P:
			isUpdate = false
		default:
			return syntaxError(p.cur)
		}
		if err := p.next(); err != nil {
			return err
		}
		action, err := p.parseFkAction()
		if err != nil {
			return err
		}
		if isUpdate {
			con.FkUpdAction = action
		} else {
			con.FkDelAction = action
		}
	}
	return nil
}

// parseFkAction parses one referential action.
func (p *Parser) parseFkAction() (byte, error) {
	switch p.cur.Type {
	case NO:
		if err := p.next(); err != nil {
			return 0, err
		}
		if _, err := p.expect(ACTION); err != nil {
			return 0, err
		}
		return ast.FKCONSTR_ACTION_NOACTION, nil
	case RESTRICT:
		return ast.FKCONSTR_ACTION_RESTRICT, p.next()
	case CASCADE:
		return ast.FKCONSTR_ACTION_CASCADE, p.next()
	case SET:
		if err := p.next(); err != nil {
			return 0, err
		}
		switch p.cur.Type {
		case NULL_P:
			return ast.FKCONSTR_ACTION_SETNULL, p.next()
		case DEFAULT:
			return ast.FKCONSTR_ACTION_SETDEFAULT, p.next()
		}
	}
	return 0, syntaxError(p.cur)
}

// parseTableConstraint parses a table-level constraint.
func (p *Parser) parseTableConstraint() (*ast.Constraint, error) {
	start := p.cur.Span
	conname := ""
	if p.cur.Type == CONSTRAINT {
		if err := p.next(); err != nil {
			return nil, err
		}
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		conname = name
	}

	con := &ast.Constraint{Conname: conname}
	con.Tag = ast.T_Constraint

	switch p.cur.Type {
	case PRIMARY:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(KEY); err != nil {
			return nil, err
		}
		keys, err := p.parseParenNameList()
		if err != nil {
			return nil, err
		}
		con.Contype = ast.CONSTR_PRIMARY
		con.Keys = keys

	case UNIQUE:
		if err := p.next(); err != nil {
			return nil, err
		}
		keys, err := p.parseParenNameList()
		if err != nil {
			return nil, err
		}
		con.Contype = ast.CONSTR_UNIQUE
		con.Keys = keys

	case CHECK:
		if err := p.next(); err != nil {
			return nil, err
		}
		expr, err := p.parseParenExpr()
		if err != nil {
			return nil, err
		}
		con.Contype = ast.CONSTR_CHECK
		con.RawExpr = expr

	case FOREIGN:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(KEY); err != nil {
			return nil, err
		}
		keys, err := p.parseParenNameList()
		if err != nil {
			return nil, err
		}
		con.Contype = ast.CONSTR_FOREIGN
		con.Keys = keys
		if _, err := p.expect(REFERENCES); err != nil {
			return nil, err
		}
		if err := p.parseReferencesTail(con); err != nil {
			return nil, err
		}

	default:
		return nil, syntaxError(p.cur)
	}

	if err := p.parseConstraintAttrs(con); err != nil {
		return nil, err
	}
	con.SetSpan(p.spanFrom(start))
	return con, nil
}

// parseParenNameList parses "( name, ... )".
func (p *Parser) parseParenNameList() ([]string, error) {
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	names, err := p.nameList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	return names, nil
}

// parsePartitionSpec parses PARTITION BY strategy (elems).
func (p *Parser) parsePartitionSpec() (*ast.PartitionSpec, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // PARTITION
		return nil, err
	}
	if _, err := p.expect(BY); err != nil {
		return nil, err
	}
	strategy, err := p.colId()
	if err != nil {
		return nil, err
	}
	strategy = strings.ToLower(strategy)
	switch strategy {
	case "range", "list", "hash":
	default:
		return nil, syntaxErrorf(p.last, "unrecognized partitioning strategy %q", strategy)
	}

	spec := &ast.PartitionSpec{Strategy: strategy}
	spec.Tag = ast.T_PartitionSpec

	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	for {
		estart := p.cur.Span
		elem := &ast.PartitionElem{}
		elem.Tag = ast.T_PartitionElem
		if p.cur.Type == TokenType('(') {
			expr, err := p.parseParenExpr()
			if err != nil {
				return nil, err
			}
			elem.Expr = expr
		} else {
			name, err := p.colId()
			if err != nil {
				return nil, err
			}
			elem.Name = name
		}
		elem.SetSpan(p.spanFrom(estart))
		spec.PartParams = append(spec.PartParams, elem)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	spec.SetSpan(p.spanFrom(start))
	return spec, nil
}

// parsePartitionBound parses FOR VALUES ... or DEFAULT for a partition child.
func (p *Parser) parsePartitionBound() (*ast.PartitionBoundSpec, error) {
	start := p.cur.Span
	bound := &ast.PartitionBoundSpec{}
	bound.Tag = ast.T_PartitionBoundSpec

	if p.cur.Type == DEFAULT {
		if err := p.next(); err != nil {
			return nil, err
		}
		bound.IsDefault = true
		bound.SetSpan(p.spanFrom(start))
		return bound, nil
	}

	if _, err := p.expect(FOR); err != nil {
		return nil, err
	}
	if _, err := p.expect(VALUES); err != nil {
		return nil, err
	}

	switch p.cur.Type {
	case IN_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType('(')); err != nil {
			return nil, err
		}
		datums, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		bound.Strategy = "list"
		bound.ListDatums = datums

	case FROM:
		if err := p.next(); err != nil {
			return nil, err
		}
		lower, err := p.parseBoundDatumList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TO); err != nil {
			return nil, err
		}
		upper, err := p.parseBoundDatumList()
		if err != nil {
			return nil, err
		}
		bound.Strategy = "range"
		bound.LowerDatums = lower
		bound.UpperDatums = upper

	case WITH:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType('(')); err != nil {
			return nil, err
		}
		mod, err := p.parseHashBoundPart("modulus")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(',')); err != nil {
			return nil, err
		}
		rem, err := p.parseHashBoundPart("remainder")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		bound.Strategy = "hash"
		bound.Modulus = mod
		bound.Remainder = rem

	default:
		return nil, syntaxError(p.cur)
	}

	bound.SetSpan(p.spanFrom(start))
	return bound, nil
}

// parseBoundDatumList parses one "( datum, ... )" of a range bound. MINVALUE
// and MAXVALUE appear as column references.
func (p *Parser) parseBoundDatumList() ([]ast.Node, error) {
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	datums, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	return datums, nil
}

// parseHashBoundPart parses "MODULUS n" or "REMAINDER n".
func (p *Parser) parseHashBoundPart(word string) (int, error) {
	name, err := p.colId()
	if err != nil {
		return 0, err
	}
	if strings.ToLower(name) != word {
		return 0, syntaxErrorf(p.last, "expected %s", strings.ToUpper(word))
	}
	tok, err := p.expect(ICONST)
	if err != nil {
		return 0, err
	}
	return int(tok.Value.Ival), nil
}

// parseRelOptions parses "WITH ( name [= value], ... )".
func (p *Parser) parseRelOptions() ([]*ast.DefElem, error) {
	if err := p.next(); err != nil { // WITH
		return nil, err
	}
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	var opts []*ast.DefElem
	for {
		start := p.cur.Span
		name, err := p.colLabel()
		if err != nil {
			return nil, err
		}
		for p.cur.Type == TokenType('.') {
			if err := p.next(); err != nil {
				return nil, err
			}
			part, err := p.colLabel()
			if err != nil {
				return nil, err
			}
			name += "." + part
		}
		var arg ast.Node
		if ok, err := p.accept(TokenType('=')); err != nil {
			return nil, err
		} else if ok {
			v, err := p.parseDefArg()
			if err != nil {
				return nil, err
			}
			arg = v
		}
		opts = append(opts, ast.NewDefElem(name, arg, p.spanFrom(start)))
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	return opts, nil
}

// parseDefArg parses an option value: a literal, keyword word or number.
func (p *Parser) parseDefArg() (ast.Node, error) {
	tok := p.cur
	switch tok.Type {
	case SCONST:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewString(tok.Value.Str), nil
	case ICONST:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewInteger(tok.Value.Ival), nil
	case FCONST:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewFloat(tok.Value.Str), nil
	case TRUE_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewBoolean(true), nil
	case FALSE_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewBoolean(false), nil
	case TokenType('-'):
		if err := p.next(); err != nil {
			return nil, err
		}
		num := p.cur
		switch num.Type {
		case ICONST:
			if err := p.next(); err != nil {
				return nil, err
			}
			return ast.NewInteger(-num.Value.Ival), nil
		case FCONST:
			if err := p.next(); err != nil {
				return nil, err
			}
			return ast.NewFloat("-" + num.Value.Str), nil
		}
		return nil, syntaxError(p.cur)
	}
	if p.isIdentLike() {
		word, err := p.colLabel()
		if err != nil {
			return nil, err
		}
		return ast.NewString(word), nil
	}
	return nil, syntaxError(p.cur)
}

// parseCreateIndex parses CREATE [UNIQUE] INDEX.
func (p *Parser) parseCreateIndex(start ast.Span) (ast.Stmt, error) {
	stmt := &ast.IndexStmt{}
	stmt.Tag = ast.T_IndexStmt

	if ok, err := p.accept(UNIQUE); err != nil {
		return nil, err
	} else if ok {
		stmt.Unique = true
	}
	if _, err := p.expect(INDEX); err != nil {
		return nil, err
	}
	if ok, err := p.accept(CONCURRENTLY); err != nil {
		return nil, err
	} else if ok {
		stmt.Concurrent = true
	}
	ifNotExists, err := p.parseIfNotExists()
	if err != nil {
		return nil, err
	}
	stmt.IfNotExists = ifNotExists

	if p.cur.Type != ON {
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		stmt.Idxname = name
	}
	if _, err := p.expect(ON); err != nil {
		return nil, err
	}
	rel, err := p.parseRelationExpr()
	if err != nil {
		return nil, err
	}
	stmt.Relation = rel

	if ok, err := p.accept(USING); err != nil {
		return nil, err
	} else if ok {
		am, err := p.colId()
		if err != nil {
			return nil, err
		}
		stmt.AccessMethod = am
	}

	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	for {
		elem, err := p.parseIndexElem()
		if err != nil {
			return nil, err
		}
		stmt.IndexParams = append(stmt.IndexParams, elem)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}

	if ok, err := p.accept(INCLUDE); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.expect(TokenType('(')); err != nil {
			return nil, err
		}
		for {
			elem, err := p.parseIndexElem()
			if err != nil {
				return nil, err
			}
			stmt.IndexIncludingParams = append(stmt.IndexIncludingParams, elem)
			ok, err := p.accept(TokenType(','))
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
	}

	if ok, err := p.accept(WHERE); err != nil {
		return nil, err
	} else if ok {
		where, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		stmt.WhereClause = where
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseIndexElem parses one index element: column name, function call, or
// parenthesized expression, with collation, opclass and ordering options.
func (p *Parser) parseIndexElem() (*ast.IndexElem, error) {
	start := p.cur.Span
	elem := &ast.IndexElem{}
	elem.Tag = ast.T_IndexElem

	if p.cur.Type == TokenType('(') {
		expr, err := p.parseParenExpr()
		if err != nil {
			return nil, err
		}
		elem.Expr = expr
	} else {
		names, err := p.anyName()
		if err != nil {
			return nil, err
		}
		if p.cur.Type == TokenType('(') {
			fc, err := p.parseFuncCall(names, start)
			if err != nil {
				return nil, err
			}
			elem.Expr = fc
		} else if len(names) == 1 {
			elem.Name = names[0]
		} else {
			return nil, syntaxError(p.cur)
		}
	}

	if ok, err := p.accept(COLLATE); err != nil {
		return nil, err
	} else if ok {
		coll, err := p.anyName()
		if err != nil {
			return nil, err
		}
		elem.Collation = coll
	}

	// An identifier here names an operator class.
	if p.bareAliasFollows() {
		opclass, err := p.anyName()
		if err != nil {
			return nil, err
		}
		elem.OpClass = opclass
	}

	switch p.cur.Type {
	case ASC:
		elem.Ordering = ast.SORTBY_ASC
		if err := p.next(); err != nil {
			return nil, err
		}
	case DESC:
		elem.Ordering = ast.SORTBY_DESC
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	if p.cur.Type == NULLS_LA {
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.cur.Type {
		case FIRST_P:
			elem.NullsOrdering = ast.SORTBY_NULLS_FIRST
		case LAST_P:
			elem.NullsOrdering = ast.SORTBY_NULLS_LAST
		default:
			return nil, syntaxError(p.cur)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	elem.SetSpan(p.spanFrom(start))
	return elem, nil
}

// parseCreateView parses CREATE [OR REPLACE] [TEMP] VIEW.
func (p *Parser) parseCreateView(start ast.Span, replace, temporary bool) (ast.Stmt, error) {
	if err := p.next(); err != nil { // VIEW
		return nil, err
	}
	rel, err := p.qualifiedName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ViewStmt{View: rel, Replace: replace, Temporary: temporary}
	stmt.Tag = ast.T_ViewStmt

	if p.cur.Type == TokenType('(') {
		aliases, err := p.parseParenNameList()
		if err != nil {
			return nil, err
		}
		stmt.Aliases = aliases
	}

	if _, err := p.expect(AS); err != nil {
		return nil, err
	}
	query, err := p.parseSelectStmt()
	if err != nil {
		return nil, err
	}
	stmt.Query = query
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseCreateMatView parses CREATE MATERIALIZED VIEW ... AS query.
func (p *Parser) parseCreateMatView(start ast.Span) (ast.Stmt, error) {
	if err := p.next(); err != nil { // MATERIALIZED
		return nil, err
	}
	if _, err := p.expect(VIEW); err != nil {
		return nil, err
	}
	ifNotExists, err := p.parseIfNotExists()
	if err != nil {
		return nil, err
	}
	rel, err := p.qualifiedName()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != AS {
		return nil, syntaxError(p.cur)
	}
	return p.parseCreateTableAsTail(start, rel, ast.OBJECT_MATVIEW, false, ifNotExists)
}

// parseCreateSequence parses CREATE [TEMP] SEQUENCE and its options.
func (p *Parser) parseCreateSequence(start ast.Span, temporary bool) (ast.Stmt, error) {
	if err := p.next(); err != nil { // SEQUENCE
		return nil, err
	}
	ifNotExists, err := p.parseIfNotExists()
	if err != nil {
		return nil, err
	}
	rel, err := p.qualifiedName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.CreateSeqStmt{Sequence: rel, Temporary: temporary, IfNotExists: ifNotExists}
	stmt.Tag = ast.T_CreateSeqStmt

	for {
		opt, err := p.parseOptSeqOption()
		if err != nil {
			return nil, err
		}
		if opt == nil {
			break
		}
		stmt.Options = append(stmt.Options, opt)
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseOptSeqOption parses one sequence option, nil when none follows.
func (p *Parser) parseOptSeqOption() (*ast.DefElem, error) {
	start := p.cur.Span
	switch p.cur.Type {
	case START:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.accept(WITH); err != nil {
			return nil, err
		}
		val, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		return ast.NewDefElem("start", val, p.spanFrom(start)), nil

	case INCREMENT:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.accept(BY); err != nil {
			return nil, err
		}
		val, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		return ast.NewDefElem("increment", val, p.spanFrom(start)), nil

	case MINVALUE:
		if err := p.next(); err != nil {
			return nil, err
		}
		val, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		return ast.NewDefElem("minvalue", val, p.spanFrom(start)), nil

	case MAXVALUE:
		if err := p.next(); err != nil {
			return nil, err
		}
		val, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		return ast.NewDefElem("maxvalue", val, p.spanFrom(start)), nil

	case CACHE:
		if err := p.next(); err != nil {
			return nil, err
		}
		val, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		return ast.NewDefElem("cache", val, p.spanFrom(start)), nil

	case CYCLE:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewDefElem("cycle", ast.NewBoolean(true), p.spanFrom(start)), nil

	case NO:
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.cur.Type {
		case CYCLE:
			if err := p.next(); err != nil {
				return nil, err
			}
			return ast.NewDefElem("cycle", ast.NewBoolean(false), p.spanFrom(start)), nil
		case MINVALUE:
			if err := p.next(); err != nil {
				return nil, err
			}
			return ast.NewDefElem("minvalue", nil, p.spanFrom(start)), nil
		case MAXVALUE:
			if err := p.next(); err != nil {
				return nil, err
			}
			return ast.NewDefElem("maxvalue", nil, p.spanFrom(start)), nil
		}
		return nil, syntaxError(p.cur)

	case OWNED:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(BY); err != nil {
			return nil, err
		}
		if p.cur.Type == NONE {
			if err := p.next(); err != nil {
				return nil, err
			}
			owner := ast.NewColumnRef("none")
			return ast.NewDefElem("owned_by", owner, p.spanFrom(start)), nil
		}
		parts, err := p.anyName()
		if err != nil {
			return nil, err
		}
		owner := ast.NewColumnRef(parts...)
		return ast.NewDefElem("owned_by", owner, p.spanFrom(start)), nil
	}
	return nil, nil
}

// parseSignedNumber parses an optionally negated numeric literal.
func (p *Parser) parseSignedNumber() (ast.Node, error) {
	neg := false
	if ok, err := p.accept(TokenType('-')); err != nil {
		return nil, err
	} else if ok {
		neg = true
	} else if _, err := p.accept(TokenType('+')); err != nil {
		return nil, err
	}
	tok := p.cur
	switch tok.Type {
	case ICONST:
		if err := p.next(); err != nil {
			return nil, err
		}
		v := tok.Value.Ival
		if neg {
			v = -v
		}
		return ast.NewInteger(v), nil
	case FCONST:
		if err := p.next(); err != nil {
			return nil, err
		}
		s := tok.Value.Str
		if neg {
			s = "-" + s
		}
		return ast.NewFloat(s), nil
	}
	return nil, syntaxError(p.cur)
}

// parseCreateSchema parses CREATE SCHEMA with optional AUTHORIZATION.
func (p *Parser) parseCreateSchema(start ast.Span) (ast.Stmt, error) {
	if err := p.next(); err != nil { // SCHEMA
		return nil, err
	}
	ifNotExists, err := p.parseIfNotExists()
	if err != nil {
		return nil, err
	}
	stmt := &ast.CreateSchemaStmt{IfNotExists: ifNotExists}
	stmt.Tag = ast.T_CreateSchemaStmt

	if p.cur.Type != AUTHORIZATION {
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		stmt.Schemaname = name
	}
	if ok, err := p.accept(AUTHORIZATION); err != nil {
		return nil, err
	} else if ok {
		role, err := p.parseRoleSpec()
		if err != nil {
			return nil, err
		}
		stmt.Authrole = role
	}
	if stmt.Schemaname == "" && stmt.Authrole == nil {
		return nil, syntaxError(p.cur)
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseRoleSpec parses a role name or one of the special designators.
func (p *Parser) parseRoleSpec() (*ast.RoleSpec, error) {
	start := p.cur.Span
	role := &ast.RoleSpec{}
	role.Tag = ast.T_RoleSpec

	switch p.cur.Type {
	case CURRENT_USER:
		role.Roletype = ast.ROLESPEC_CURRENT_USER
		if err := p.next(); err != nil {
			return nil, err
		}
	case SESSION_USER:
		role.Roletype = ast.ROLESPEC_SESSION_USER
		if err := p.next(); err != nil {
			return nil, err
		}
	default:
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		if name == "public" {
			role.Roletype = ast.ROLESPEC_PUBLIC
		} else {
			role.Roletype = ast.ROLESPEC_CSTRING
			role.Rolename = name
		}
	}
	role.SetSpan(p.spanFrom(start))
	return role, nil
}

// parseCreateRole parses CREATE ROLE/USER/GROUP and its options.
func (p *Parser) parseCreateRole(start ast.Span) (ast.Stmt, error) {
	stmt := &ast.CreateRoleStmt{}
	stmt.Tag = ast.T_CreateRoleStmt
	switch p.cur.Type {
	case USER:
		stmt.StmtType = ast.ROLESTMT_USER
	case GROUP_P:
		stmt.StmtType = ast.ROLESTMT_GROUP
	default:
		stmt.StmtType = ast.ROLESTMT_ROLE
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	name, err := p.colId()
	if err != nil {
		return nil, err
	}
	stmt.Role = name
	if _, err := p.accept(WITH); err != nil {
		return nil, err
	}

	for {
		opt, err := p.parseOptRoleOption()
		if err != nil {
			return nil, err
		}
		if opt == nil {
			break
		}
		stmt.Options = append(stmt.Options, opt)
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// roleFlagWords maps the bare role option words to their DefElem names.
var roleFlagWords = map[string]struct {
	name  string
	value bool
}{
	"superuser":     {"superuser", true},
	"nosuperuser":   {"superuser", false},
	"createdb":      {"createdb", true},
	"nocreatedb":    {"createdb", false},
	"createrole":    {"createrole", true},
	"nocreaterole":  {"createrole", false},
	"login":         {"canlogin", true},
	"nologin":       {"canlogin", false},
	"replication":   {"isreplication", true},
	"noreplication": {"isreplication", false},
	"inherit":       {"inherit", true},
	"noinherit":     {"inherit", false},
}

// parseOptRoleOption parses one role option, nil when none follows.
func (p *Parser) parseOptRoleOption() (*ast.DefElem, error) {
	start := p.cur.Span
	switch p.cur.Type {
	case PASSWORD:
		if err := p.next(); err != nil {
			return nil, err
		}
		if ok, err := p.accept(NULL_P); err != nil {
			return nil, err
		} else if ok {
			return ast.NewDefElem("password", nil, p.spanFrom(start)), nil
		}
		tok, err := p.expect(SCONST)
		if err != nil {
			return nil, err
		}
		return ast.NewDefElem("password", ast.NewString(tok.Value.Str), p.spanFrom(start)), nil

	case CONNECTION:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(LIMIT); err != nil {
			return nil, err
		}
		val, err := p.parseSignedNumber()
		if err != nil {
			return nil, err
		}
		return ast.NewDefElem("connectionlimit", val, p.spanFrom(start)), nil

	case VALID:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(UNTIL); err != nil {
			return nil, err
		}
		tok, err := p.expect(SCONST)
		if err != nil {
			return nil, err
		}
		return ast.NewDefElem("validUntil", ast.NewString(tok.Value.Str), p.spanFrom(start)), nil

	case INHERIT:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewDefElem("inherit", ast.NewBoolean(true), p.spanFrom(start)), nil

	case IDENT:
		flag, ok := roleFlagWords[p.cur.Value.Str]
		if !ok {
			return nil, syntaxError(p.cur)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewDefElem(flag.name, ast.NewBoolean(flag.value), p.spanFrom(start)), nil
	}
	return nil, nil
}

// parseAlter dispatches ALTER TABLE/INDEX/VIEW/SEQUENCE, including the
// RENAME forms.
func (p *Parser) parseAlter() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // ALTER
		return nil, err
	}

	var objType ast.ObjectType
	switch p.cur.Type {
	case TABLE:
		objType = ast.OBJECT_TABLE
	case INDEX:
		objType = ast.OBJECT_INDEX
	case VIEW:
		objType = ast.OBJECT_VIEW
	case SEQUENCE:
		objType = ast.OBJECT_SEQUENCE
	case MATERIALIZED:
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.cur.Type != VIEW {
			return nil, syntaxError(p.cur)
		}
		objType = ast.OBJECT_MATVIEW
	default:
		return nil, syntaxError(p.cur)
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	missingOk, err := p.parseIfExists()
	if err != nil {
		return nil, err
	}
	rel, err := p.qualifiedName()
	if err != nil {
		return nil, err
	}

	if p.cur.Type == RENAME {
		return p.parseRenameTail(start, objType, rel, missingOk)
	}
	if objType != ast.OBJECT_TABLE {
		return nil, syntaxError(p.cur)
	}

	stmt := &ast.AlterTableStmt{Relation: rel, ObjType: objType, MissingOk: missingOk}
	stmt.Tag = ast.T_AlterTableStmt
	for {
		cmd, err := p.parseAlterTableCmd()
		if err != nil {
			return nil, err
		}
		stmt.Cmds = append(stmt.Cmds, cmd)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseRenameTail parses RENAME [COLUMN old] TO new.
func (p *Parser) parseRenameTail(start ast.Span, objType ast.ObjectType, rel *ast.RangeVar, missingOk bool) (ast.Stmt, error) {
	if err := p.next(); err != nil { // RENAME
		return nil, err
	}
	stmt := &ast.RenameStmt{Relation: rel, MissingOk: missingOk}
	stmt.Tag = ast.T_RenameStmt

	if p.cur.Type == TO {
		if err := p.next(); err != nil {
			return nil, err
		}
		newname, err := p.colId()
		if err != nil {
			return nil, err
		}
		stmt.RenameType = objType
		stmt.Newname = newname
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil
	}

	if objType != ast.OBJECT_TABLE && objType != ast.OBJECT_VIEW && objType != ast.OBJECT_MATVIEW {
		return nil, syntaxError(p.cur)
	}
	if _, err := p.accept(COLUMN); err != nil {
		return nil, err
	}
	oldname, err := p.colId()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TO); err != nil {
		return nil, err
	}
	newname, err := p.colId()
	if err != nil {
		return nil, err
	}
	stmt.RenameType = ast.OBJECT_COLUMN
	stmt.RelationType = objType
	stmt.Subname = oldname
	stmt.Newname = newname
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseAlterTableCmd parses one ALTER TABLE subcommand.
func (p *Parser) parseAlterTableCmd() (*ast.AlterTableCmd, error) {
	start := p.cur.Span
	cmd := &ast.AlterTableCmd{}
	cmd.Tag = ast.T_AlterTableCmd

	switch p.cur.Type {
	case ADD_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.cur.Type {
		case CONSTRAINT, PRIMARY, UNIQUE, FOREIGN, CHECK:
			con, err := p.parseTableConstraint()
			if err != nil {
				return nil, err
			}
			cmd.Subtype = ast.AT_AddConstraint
			cmd.Def = con
		default:
			if _, err := p.accept(COLUMN); err != nil {
				return nil, err
			}
			col, err := p.parseColumnDef()
			if err != nil {
				return nil, err
			}
			cmd.Subtype = ast.AT_AddColumn
			cmd.Def = col
		}

	case DROP:
		if err := p.next(); err != nil {
			return nil, err
		}
		if ok, err := p.accept(CONSTRAINT); err != nil {
			return nil, err
		} else if ok {
			cmd.Subtype = ast.AT_DropConstraint
		} else {
			if _, err := p.accept(COLUMN); err != nil {
				return nil, err
			}
			cmd.Subtype = ast.AT_DropColumn
		}
		missingOk, err := p.parseIfExists()
		if err != nil {
			return nil, err
		}
		cmd.MissingOk = missingOk
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		cmd.Name = name
		behavior, err := p.parseOptDropBehavior()
		if err != nil {
			return nil, err
		}
		cmd.Behavior = behavior

	case ALTER:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.accept(COLUMN); err != nil {
			return nil, err
		}
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		cmd.Name = name
		if err := p.parseAlterColumnTail(cmd); err != nil {
			return nil, err
		}

	case VALIDATE:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(CONSTRAINT); err != nil {
			return nil, err
		}
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		cmd.Subtype = ast.AT_ValidateConstraint
		cmd.Name = name

	case OWNER:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TO); err != nil {
			return nil, err
		}
		role, err := p.parseRoleSpec()
		if err != nil {
			return nil, err
		}
		cmd.Subtype = ast.AT_ChangeOwner
		cmd.Def = role

	case ENABLE_P, DISABLE_P:
		enable := p.cur.Type == ENABLE_P
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TRIGGER); err != nil {
			return nil, err
		}
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		if enable {
			cmd.Subtype = ast.AT_EnableTrig
		} else {
			cmd.Subtype = ast.AT_DisableTrig
		}
		cmd.Name = name

	case ATTACH:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(PARTITION); err != nil {
			return nil, err
		}
		child, err := p.qualifiedName()
		if err != nil {
			return nil, err
		}
		bound, err := p.parsePartitionBound()
		if err != nil {
			return nil, err
		}
		cmd.Subtype = ast.AT_AttachPartition
		def := &attachPartitionDef{Child: child, Bound: bound}
		def.SetSpan(child.Span().Union(bound.Span()))
		cmd.Def = def

	case DETACH:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(PARTITION); err != nil {
			return nil, err
		}
		child, err := p.qualifiedName()
		if err != nil {
			return nil, err
		}
		cmd.Subtype = ast.AT_DetachPartition
		cmd.Def = child

	default:
		return nil, syntaxError(p.cur)
	}

	cmd.SetSpan(p.spanFrom(start))
	return cmd, nil
}

// attachPartitionDef pairs the child relation with its bound for rendering
// ATTACH PARTITION.
type attachPartitionDef struct {
	ast.BaseNode
	Child *ast.RangeVar
	Bound *ast.PartitionBoundSpec
}

func (n *attachPartitionDef) String() string { return "AttachPartition" }

func (n *attachPartitionDef) SqlString() string {
	return n.Child.SqlString() + " " + n.Bound.SqlString()
}

// parseAlterColumnTail parses the forms after ALTER COLUMN name.
func (p *Parser) parseAlterColumnTail(cmd *ast.AlterTableCmd) error {
	switch p.cur.Type {
	case TYPE_P:
		if err := p.next(); err != nil {
			return err
		}
		typ, err := p.parseTypeName()
		if err != nil {
			return err
		}
		cmd.Subtype = ast.AT_AlterColumnType
		cmd.Def = typ
		return nil

	case SET:
		if err := p.next(); err != nil {
			return err
		}
		switch p.cur.Type {
		case DEFAULT:
			if err := p.next(); err != nil {
				return err
			}
			expr, err := p.parseExprDefault()
			if err != nil {
				return err
			}
			cmd.Subtype = ast.AT_ColumnDefault
			cmd.Def = expr
			return nil
		case NOT:
			if err := p.next(); err != nil {
				return err
			}
			if _, err := p.expect(NULL_P); err != nil {
				return err
			}
			cmd.Subtype = ast.AT_SetNotNull
			return nil
		}
		return syntaxError(p.cur)

	case DROP:
		if err := p.next(); err != nil {
			return err
		}
		switch p.cur.Type {
		case DEFAULT:
			if err := p.next(); err != nil {
				return err
			}
			cmd.Subtype = ast.AT_ColumnDefault
			return nil
		case NOT:
			if err := p.next(); err != nil {
				return err
			}
			if _, err := p.expect(NULL_P); err != nil {
				return err
			}
			cmd.Subtype = ast.AT_DropNotNull
			return nil
		}
		return syntaxError(p.cur)
	}
	return syntaxError(p.cur)
}

// parseOptDropBehavior parses an optional CASCADE or RESTRICT.
func (p *Parser) parseOptDropBehavior() (ast.DropBehavior, error) {
	switch p.cur.Type {
	case CASCADE:
		return ast.DropCascade, p.next()
	case RESTRICT:
		return ast.DropRestrict, p.next()
	}
	return ast.DropRestrict, nil
}

// parseDropStmt parses DROP for the supported object classes.
func (p *Parser) parseDropStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // DROP
		return nil, err
	}
	stmt := &ast.DropStmt{}
	stmt.Tag = ast.T_DropStmt

	isType := false
	switch p.cur.Type {
	case TABLE:
		stmt.RemoveType = ast.OBJECT_TABLE
	case INDEX:
		stmt.RemoveType = ast.OBJECT_INDEX
	case SEQUENCE:
		stmt.RemoveType = ast.OBJECT_SEQUENCE
	case VIEW:
		stmt.RemoveType = ast.OBJECT_VIEW
	case MATERIALIZED:
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.cur.Type != VIEW {
			return nil, syntaxError(p.cur)
		}
		stmt.RemoveType = ast.OBJECT_MATVIEW
	case SCHEMA:
		stmt.RemoveType = ast.OBJECT_SCHEMA
	case DATABASE:
		stmt.RemoveType = ast.OBJECT_DATABASE
	case ROLE, USER, GROUP_P:
		stmt.RemoveType = ast.OBJECT_ROLE
	case EXTENSION:
		stmt.RemoveType = ast.OBJECT_EXTENSION
	case TYPE_P:
		stmt.RemoveType = ast.OBJECT_TYPE
		isType = true
	default:
		return nil, syntaxError(p.cur)
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	if stmt.RemoveType == ast.OBJECT_INDEX {
		if ok, err := p.accept(CONCURRENTLY); err != nil {
			return nil, err
		} else if ok {
			stmt.Concurrent = true
		}
	}

	missingOk, err := p.parseIfExists()
	if err != nil {
		return nil, err
	}
	stmt.MissingOk = missingOk

	for {
		if isType {
			typ, err := p.parseTypeName()
			if err != nil {
				return nil, err
			}
			stmt.Objects = append(stmt.Objects, typ)
		} else {
			rel, err := p.qualifiedName()
			if err != nil {
				return nil, err
			}
			stmt.Objects = append(stmt.Objects, rel)
		}
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}

	behavior, err := p.parseOptDropBehavior()
	if err != nil {
		return nil, err
	}
	stmt.Behavior = behavior
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseTruncateStmt parses TRUNCATE and its options.
func (p *Parser) parseTruncateStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // TRUNCATE
		return nil, err
	}
	if _, err := p.accept(TABLE); err != nil {
		return nil, err
	}
	stmt := &ast.TruncateStmt{}
	stmt.Tag = ast.T_TruncateStmt

	for {
		rel, err := p.parseRelationExpr()
		if err != nil {
			return nil, err
		}
		stmt.Relations = append(stmt.Relations, rel)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}

	switch p.cur.Type {
	case RESTART:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(IDENTITY_P); err != nil {
			return nil, err
		}
		stmt.RestartSeqs = true
	case CONTINUE_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(IDENTITY_P); err != nil {
			return nil, err
		}
	}

	behavior, err := p.parseOptDropBehavior()
	if err != nil {
		return nil, err
	}
	stmt.Behavior = behavior
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}
