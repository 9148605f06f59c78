/*
 * SELECT grammar: set-operation trees, WITH clauses, the simple-select body
 * with its target list and FROM/WHERE/GROUP BY/HAVING/WINDOW clauses, VALUES
 * lists, and the trailing ORDER BY/LIMIT/locking clauses.
 */

package parser

import (
	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// Set operation precedence: UNION and EXCEPT bind looser than INTERSECT.
const (
	setPrecUnion     = 1
	setPrecIntersect = 2
)

// parseWithPrefixedStmt parses a statement led by a WITH clause, which may
// turn out to be a SELECT, INSERT, UPDATE or DELETE.
func (p *Parser) parseWithPrefixedStmt() (ast.Stmt, error) {
	start := p.cur.Span
	with, err := p.parseWithClause()
	if err != nil {
		return nil, err
	}

	switch p.cur.Type {
	case INSERT:
		stmt, err := p.parseInsertStmt()
		if err != nil {
			return nil, err
		}
		is := stmt.(*ast.InsertStmt)
		is.WithClause = with
		is.SetSpan(p.spanFrom(start))
		return is, nil
	case UPDATE:
		stmt, err := p.parseUpdateStmt()
		if err != nil {
			return nil, err
		}
		us := stmt.(*ast.UpdateStmt)
		us.WithClause = with
		us.SetSpan(p.spanFrom(start))
		return us, nil
	case DELETE_P:
		stmt, err := p.parseDeleteStmt()
		if err != nil {
			return nil, err
		}
		ds := stmt.(*ast.DeleteStmt)
		ds.WithClause = with
		ds.SetSpan(p.spanFrom(start))
		return ds, nil
	}

	stmt, err := p.parseSelectStmt()
	if err != nil {
		return nil, err
	}
	if stmt.WithClause != nil {
		return nil, syntaxError(p.cur)
	}
	stmt.WithClause = with
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseSelectStmt parses a full select statement including an optional WITH
// prefix and trailing sort, limit and locking clauses.
func (p *Parser) parseSelectStmt() (*ast.SelectStmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	start := p.cur.Span

	var with *ast.WithClause
	if p.cur.Type == WITH || p.cur.Type == WITH_LA {
		w, err := p.parseWithClause()
		if err != nil {
			return nil, err
		}
		with = w
	}

	stmt, err := p.parseSelectOps(setPrecUnion)
	if err != nil {
		return nil, err
	}
	if with != nil {
		if stmt.WithClause != nil {
			return nil, syntaxError(p.cur)
		}
		stmt.WithClause = with
	}

	if err := p.parseSelectTrailers(stmt); err != nil {
		return nil, err
	}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseSelectTrailers attaches ORDER BY, LIMIT/OFFSET/FETCH and FOR locking
// clauses to stmt, in any order.
func (p *Parser) parseSelectTrailers(stmt *ast.SelectStmt) error {
	for {
		switch p.cur.Type {
		case ORDER:
			if stmt.SortClause != nil {
				return syntaxError(p.cur)
			}
			sorts, err := p.parseOrderByClause()
			if err != nil {
				return err
			}
			stmt.SortClause = sorts

		case LIMIT:
			if stmt.LimitCount != nil {
				return syntaxError(p.cur)
			}
			if err := p.next(); err != nil {
				return err
			}
			if ok, err := p.accept(ALL); err != nil {
				return err
			} else if ok {
				break
			}
			count, err := p.parseExprDefault()
			if err != nil {
				return err
			}
			stmt.LimitCount = count

		case OFFSET:
			if stmt.LimitOffset != nil {
				return syntaxError(p.cur)
			}
			if err := p.next(); err != nil {
				return err
			}
			off, err := p.parseExprDefault()
			if err != nil {
				return err
			}
			stmt.LimitOffset = off
			if err := p.acceptRowWord(); err != nil {
				return err
			}

		case FETCH:
			if stmt.LimitCount != nil {
				return syntaxError(p.cur)
			}
			if err := p.parseFetchClause(stmt); err != nil {
				return err
			}

		case FOR:
			lc, err := p.parseLockingClause()
			if err != nil {
				return err
			}
			stmt.LockingClause = append(stmt.LockingClause, lc)

		default:
			return nil
		}
	}
}

// acceptRowWord consumes an optional ROW or ROWS noise word.
func (p *Parser) acceptRowWord() error {
	if p.cur.Type == ROW || p.cur.Type == ROWS {
		return p.next()
	}
	return nil
}

// parseFetchClause parses FETCH FIRST/NEXT [count] ROW/ROWS ONLY|WITH TIES.
func (p *Parser) parseFetchClause(stmt *ast.SelectStmt) error {
	if err := p.next(); err != nil { // FETCH
		return err
	}
	if p.cur.Type != FIRST_P && p.cur.Type != NEXT {
		return syntaxError(p.cur)
	}
	if err := p.next(); err != nil {
		return err
	}

	if p.cur.Type == ROW || p.cur.Type == ROWS {
		one := ast.NewA_Const(ast.NewInteger(1), p.cur.Span)
		stmt.LimitCount = one
	} else {
		count, err := p.parseExprDefault()
		if err != nil {
			return err
		}
		stmt.LimitCount = count
	}
	if p.cur.Type != ROW && p.cur.Type != ROWS {
		return syntaxError(p.cur)
	}
	if err := p.next(); err != nil {
		return err
	}

	switch p.cur.Type {
	case ONLY:
		stmt.LimitOption = ast.LIMIT_OPTION_COUNT
		return p.next()
	case WITH_LA, WITH:
		if err := p.next(); err != nil {
			return err
		}
		if _, err := p.expect(TIES); err != nil {
			return err
		}
		stmt.LimitOption = ast.LIMIT_OPTION_WITH_TIES
		return nil
	}
	return syntaxError(p.cur)
}

// parseLockingClause parses one FOR UPDATE/SHARE/... clause.
func (p *Parser) parseLockingClause() (*ast.LockingClause, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // FOR
		return nil, err
	}
	lc := &ast.LockingClause{}
	lc.Tag = ast.T_LockingClause

	switch p.cur.Type {
	case UPDATE:
		lc.Strength = ast.LCS_FORUPDATE
		if err := p.next(); err != nil {
			return nil, err
		}
	case NO:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(KEY); err != nil {
			return nil, err
		}
		if _, err := p.expect(UPDATE); err != nil {
			return nil, err
		}
		lc.Strength = ast.LCS_FORNOKEYUPDATE
	case SHARE:
		lc.Strength = ast.LCS_FORSHARE
		if err := p.next(); err != nil {
			return nil, err
		}
	case KEY:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(SHARE); err != nil {
			return nil, err
		}
		lc.Strength = ast.LCS_FORKEYSHARE
	default:
		return nil, syntaxError(p.cur)
	}

	if ok, err := p.accept(OF); err != nil {
		return nil, err
	} else if ok {
		rels, err := p.qualifiedNameList()
		if err != nil {
			return nil, err
		}
		lc.LockedRels = rels
	}

	switch p.cur.Type {
	case NOWAIT:
		lc.WaitPolicy = ast.LockWaitError
		if err := p.next(); err != nil {
			return nil, err
		}
	case SKIP:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(LOCKED); err != nil {
			return nil, err
		}
		lc.WaitPolicy = ast.LockWaitSkip
	}

	lc.SetSpan(p.spanFrom(start))
	return lc, nil
}

// parseSelectOps parses a set-operation tree of at least minPrec.
func (p *Parser) parseSelectOps(minPrec int) (*ast.SelectStmt, error) {
	left, err := p.parseSelectLeaf()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.SetOperation
		var prec int
		switch p.cur.Type {
		case UNION:
			op, prec = ast.SETOP_UNION, setPrecUnion
		case EXCEPT:
			op, prec = ast.SETOP_EXCEPT, setPrecUnion
		case INTERSECT:
			op, prec = ast.SETOP_INTERSECT, setPrecIntersect
		default:
			return left, nil
		}
		if prec < minPrec {
			return left, nil
		}
		opStart := left.Span()
		if err := p.next(); err != nil {
			return nil, err
		}
		all := false
		if ok, err := p.accept(ALL); err != nil {
			return nil, err
		} else if ok {
			all = true
		} else if _, err := p.accept(DISTINCT); err != nil {
			return nil, err
		}
		right, err := p.parseSelectOps(prec + 1)
		if err != nil {
			return nil, err
		}
		node := ast.NewSelectStmt()
		node.Op = op
		node.All = all
		node.Larg = left
		node.Rarg = right
		node.SetSpan(p.spanFrom(opStart))
		left = node
	}
}

// parseSelectLeaf parses one operand of a set operation: a simple SELECT,
// a VALUES list, a TABLE command, or a parenthesized select.
func (p *Parser) parseSelectLeaf() (*ast.SelectStmt, error) {
	switch p.cur.Type {
	case TokenType('('):
		return p.parseParenSelect()
	case SELECT:
		return p.parseSimpleSelect()
	case VALUES:
		return p.parseValuesClause()
	case TABLE:
		return p.parseTableCommand()
	case WITH, WITH_LA:
		// A WITH inside parentheses reaches here.
		return p.parseSelectStmt()
	}
	return nil, syntaxError(p.cur)
}

// parseTableCommand parses "TABLE relation", shorthand for SELECT * FROM.
func (p *Parser) parseTableCommand() (*ast.SelectStmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil {
		return nil, err
	}
	rel, err := p.parseRelationExpr()
	if err != nil {
		return nil, err
	}
	stmt := ast.NewSelectStmt()
	star := ast.NewColumnRef()
	star.Fields = []ast.Node{ast.NewA_Star()}
	star.SetSpan(rel.Span())
	stmt.TargetList = []*ast.ResTarget{ast.NewResTarget("", star, rel.Span())}
	stmt.FromClause = []ast.Node{rel}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseValuesClause parses VALUES (row), (row), ...
func (p *Parser) parseValuesClause() (*ast.SelectStmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil {
		return nil, err
	}
	stmt := ast.NewSelectStmt()
	for {
		if _, err := p.expect(TokenType('(')); err != nil {
			return nil, err
		}
		row, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		stmt.ValuesLists = append(stmt.ValuesLists, row)
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

// parseSimpleSelect parses the SELECT keyword and its body clauses.
func (p *Parser) parseSimpleSelect() (*ast.SelectStmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // SELECT
		return nil, err
	}
	stmt := ast.NewSelectStmt()

	switch p.cur.Type {
	case ALL:
		if err := p.next(); err != nil {
			return nil, err
		}
	case DISTINCT:
		if err := p.next(); err != nil {
			return nil, err
		}
		if ok, err := p.accept(ON); err != nil {
			return nil, err
		} else if ok {
			if _, err := p.expect(TokenType('(')); err != nil {
				return nil, err
			}
			exprs, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenType(')')); err != nil {
				return nil, err
			}
			stmt.DistinctClause = exprs
		} else {
			stmt.DistinctClause = []ast.Node{}
		}
	}

	if p.targetListFollows() {
		targets, err := p.parseTargetList()
		if err != nil {
			return nil, err
		}
		stmt.TargetList = targets
	}

	if ok, err := p.accept(INTO); err != nil {
		return nil, err
	} else if ok {
		into, err := p.parseIntoClause()
		if err != nil {
			return nil, err
		}
		stmt.IntoClause = into
	}

	if ok, err := p.accept(FROM); err != nil {
		return nil, err
	} else if ok {
		from, err := p.parseFromList()
		if err != nil {
			return nil, err
		}
		stmt.FromClause = from
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

	if p.cur.Type == GROUP_P {
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(BY); err != nil {
			return nil, err
		}
		if ok, err := p.accept(DISTINCT); err != nil {
			return nil, err
		} else if ok {
			stmt.GroupDistinct = true
		} else if _, err := p.accept(ALL); err != nil {
			return nil, err
		}
		items, err := p.parseGroupByList()
		if err != nil {
			return nil, err
		}
		stmt.GroupClause = items
	}

	if ok, err := p.accept(HAVING); err != nil {
		return nil, err
	} else if ok {
		having, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		stmt.HavingClause = having
	}

	if p.cur.Type == WINDOW {
		wins, err := p.parseWindowClause()
		if err != nil {
			return nil, err
		}
		stmt.WindowClause = wins
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// targetListFollows reports whether cur can begin a target list. SELECT with
// no targets is legal, so clause keywords terminate the (empty) list.
func (p *Parser) targetListFollows() bool {
	switch p.cur.Type {
	case EOF, TokenType(';'), TokenType(')'), FROM, WHERE, GROUP_P, HAVING,
		WINDOW, ORDER, LIMIT, OFFSET, FETCH, FOR, UNION, INTERSECT, EXCEPT, INTO:
		return false
	}
	return true
}

// parseTargetList parses the comma-separated select target entries.
func (p *Parser) parseTargetList() ([]*ast.ResTarget, error) {
	var targets []*ast.ResTarget
	for {
		t, err := p.parseTargetEl()
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			return targets, nil
		}
	}
}

// parseTargetEl parses one target entry: '*', or an expression with an
// optional AS label or bare identifier alias.
func (p *Parser) parseTargetEl() (*ast.ResTarget, error) {
	start := p.cur.Span

	if p.cur.Type == TokenType('*') {
		if err := p.next(); err != nil {
			return nil, err
		}
		star := ast.NewColumnRef()
		star.Fields = []ast.Node{ast.NewA_Star()}
		star.SetSpan(start)
		return ast.NewResTarget("", star, p.spanFrom(start)), nil
	}

	val, err := p.parseExprDefault()
	if err != nil {
		return nil, err
	}
	name := ""
	if ok, err := p.accept(AS); err != nil {
		return nil, err
	} else if ok {
		label, err := p.colLabel()
		if err != nil {
			return nil, err
		}
		name = label
	} else if p.cur.Type == IDENT {
		// Bare alias: only a plain identifier avoids ambiguity.
		name = p.cur.Value.Str
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	return ast.NewResTarget(name, val, p.spanFrom(start)), nil
}

// parseIntoClause parses the target of SELECT INTO; INTO itself is consumed.
func (p *Parser) parseIntoClause() (*ast.IntoClause, error) {
	start := p.last.Span
	switch p.cur.Type {
	case TEMPORARY, TEMP:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.accept(TABLE); err != nil {
			return nil, err
		}
	case UNLOGGED:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.accept(TABLE); err != nil {
			return nil, err
		}
	case TABLE:
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	rel, err := p.qualifiedName()
	if err != nil {
		return nil, err
	}
	into := &ast.IntoClause{Rel: rel}
	into.Tag = ast.T_IntoClause
	into.SetSpan(p.spanFrom(start))
	return into, nil
}

// parseFromList parses the comma-separated FROM items.
func (p *Parser) parseFromList() ([]ast.Node, error) {
	var items []ast.Node
	for {
		item, err := p.parseTableRef()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			return items, nil
		}
	}
}

// parseTableRef parses one FROM item and any joins hanging off it.
func (p *Parser) parseTableRef() (ast.Node, error) {
	left, err := p.parseTableAtom()
	if err != nil {
		return nil, err
	}

	for {
		start := left.Span()
		natural := false
		if p.cur.Type == NATURAL {
			natural = true
			if err := p.next(); err != nil {
				return nil, err
			}
		}

		var jt ast.JoinType
		switch p.cur.Type {
		case CROSS:
			if natural {
				return nil, syntaxError(p.cur)
			}
			if err := p.next(); err != nil {
				return nil, err
			}
			if _, err := p.expect(JOIN); err != nil {
				return nil, err
			}
			right, err := p.parseTableAtom()
			if err != nil {
				return nil, err
			}
			je := &ast.JoinExpr{Jointype: ast.JOIN_CROSS, Larg: left, Rarg: right}
			je.Tag = ast.T_JoinExpr
			je.SetSpan(p.spanFrom(start))
			left = je
			continue

		case JOIN:
			jt = ast.JOIN_INNER
		case INNER_P:
			jt = ast.JOIN_INNER
			if err := p.next(); err != nil {
				return nil, err
			}
		case LEFT:
			jt = ast.JOIN_LEFT
			if err := p.skipOuterJoinWords(); err != nil {
				return nil, err
			}
		case RIGHT:
			jt = ast.JOIN_RIGHT
			if err := p.skipOuterJoinWords(); err != nil {
				return nil, err
			}
		case FULL:
			jt = ast.JOIN_FULL
			if err := p.skipOuterJoinWords(); err != nil {
				return nil, err
			}
		default:
			if natural {
				return nil, syntaxError(p.cur)
			}
			return left, nil
		}

		if _, err := p.expect(JOIN); err != nil {
			return nil, err
		}
		right, err := p.parseTableAtom()
		if err != nil {
			return nil, err
		}
		je := &ast.JoinExpr{Jointype: jt, IsNatural: natural, Larg: left, Rarg: right}
		je.Tag = ast.T_JoinExpr

		if !natural {
			switch p.cur.Type {
			case ON:
				if err := p.next(); err != nil {
					return nil, err
				}
				quals, err := p.parseExprDefault()
				if err != nil {
					return nil, err
				}
				je.Quals = quals
			case USING:
				if err := p.next(); err != nil {
					return nil, err
				}
				if _, err := p.expect(TokenType('(')); err != nil {
					return nil, err
				}
				cols, err := p.nameList()
				if err != nil {
					return nil, err
				}
				if _, err := p.expect(TokenType(')')); err != nil {
					return nil, err
				}
				je.UsingClause = cols
			default:
				return nil, syntaxError(p.cur)
			}
		}
		je.SetSpan(p.spanFrom(start))
		left = je
	}
}

// skipOuterJoinWords consumes the join keyword and an optional OUTER_P.
func (p *Parser) skipOuterJoinWords() error {
	if err := p.next(); err != nil {
		return err
	}
	_, err := p.accept(OUTER_P)
	return err
}

// parseTableAtom parses one unjoined FROM item: a relation, a subquery, a
// function call, or a parenthesized join.
func (p *Parser) parseTableAtom() (ast.Node, error) {
	start := p.cur.Span

	lateral := false
	if p.cur.Type == LATERAL_P {
		lateral = true
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	switch {
	case p.selectFollows():
		sub, err := p.parseParenSelect()
		if err != nil {
			return nil, err
		}
		rs := &ast.RangeSubselect{Lateral: lateral, Subquery: sub}
		rs.Tag = ast.T_RangeSubselect
		alias, err := p.parseOptAlias()
		if err != nil {
			return nil, err
		}
		rs.Alias = alias
		rs.SetSpan(p.spanFrom(start))
		return rs, nil

	case p.cur.Type == TokenType('('):
		if lateral {
			return nil, syntaxError(p.cur)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		inner, err := p.parseTableRef()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		return inner, nil

	case p.cur.Type == ONLY:
		if lateral {
			return nil, syntaxError(p.cur)
		}
		rel, err := p.parseRelationExpr()
		if err != nil {
			return nil, err
		}
		alias, err := p.parseOptAlias()
		if err != nil {
			return nil, err
		}
		rel.Alias = alias
		rel.SetSpan(p.spanFrom(start))
		return rel, nil
	}

	// A name: either a plain relation or a function call in FROM.
	name, err := p.anyName()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == TokenType('(') {
		fc, err := p.parseFuncCall(name, start)
		if err != nil {
			return nil, err
		}
		rf := &ast.RangeFunction{Lateral: lateral, Function: fc}
		rf.Tag = ast.T_RangeFunction
		if p.cur.Type == WITH_LA {
			if err := p.next(); err != nil {
				return nil, err
			}
			if _, err := p.expect(ORDINALITY); err != nil {
				return nil, err
			}
			rf.Ordinality = true
		}
		alias, err := p.parseOptAlias()
		if err != nil {
			return nil, err
		}
		rf.Alias = alias
		rf.SetSpan(p.spanFrom(start))
		return rf, nil
	}
	if lateral {
		return nil, syntaxError(p.cur)
	}

	rel, err := p.rangeVarFromName(name, p.spanFrom(start))
	if err != nil {
		return nil, err
	}
	if ok, err := p.accept(TokenType('*')); err != nil {
		return nil, err
	} else if ok {
		rel.Inh = true
	}
	alias, err := p.parseOptAlias()
	if err != nil {
		return nil, err
	}
	rel.Alias = alias
	rel.SetSpan(p.spanFrom(start))
	return rel, nil
}

// parseOptAlias parses [AS] name [(colnames)] when present.
func (p *Parser) parseOptAlias() (*ast.Alias, error) {
	start := p.cur.Span
	hasAs := false
	if ok, err := p.accept(AS); err != nil {
		return nil, err
	} else if ok {
		hasAs = true
	}
	if !hasAs && !p.bareAliasFollows() {
		return nil, nil
	}
	name, err := p.colId()
	if err != nil {
		return nil, err
	}
	alias := &ast.Alias{Aliasname: name}
	alias.Tag = ast.T_Alias
	if p.cur.Type == TokenType('(') {
		if err := p.next(); err != nil {
			return nil, err
		}
		cols, err := p.nameList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		alias.Colnames = cols
	}
	alias.SetSpan(p.spanFrom(start))
	return alias, nil
}

// bareAliasFollows reports whether cur can serve as an alias without AS.
func (p *Parser) bareAliasFollows() bool {
	if p.cur.Type == IDENT {
		return true
	}
	if kw := keywordFor(p.cur.Type); kw != nil {
		return kw.Category == UnreservedKeyword || kw.Category == ColNameKeyword
	}
	return false
}

// parseGroupByList parses GROUP BY items including the grouping-set forms.
func (p *Parser) parseGroupByList() ([]ast.Node, error) {
	var items []ast.Node
	for {
		item, err := p.parseGroupByItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			return items, nil
		}
	}
}

func (p *Parser) parseGroupByItem() (ast.Node, error) {
	start := p.cur.Span

	switch p.cur.Type {
	case ROLLUP:
		return p.parseGroupingSetList(ast.GROUPING_SET_ROLLUP, start)
	case CUBE:
		return p.parseGroupingSetList(ast.GROUPING_SET_CUBE, start)
	case GROUPING:
		la, err := p.peek()
		if err != nil {
			return nil, err
		}
		if la.Type == SETS {
			if err := p.next(); err != nil {
				return nil, err
			}
			if err := p.next(); err != nil { // SETS
				return nil, err
			}
			if _, err := p.expect(TokenType('(')); err != nil {
				return nil, err
			}
			content, err := p.parseGroupByList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenType(')')); err != nil {
				return nil, err
			}
			gs := &ast.GroupingSet{Kind: ast.GROUPING_SET_SETS, Content: content}
			gs.Tag = ast.T_GroupingSet
			gs.SetSpan(p.spanFrom(start))
			return gs, nil
		}
	case TokenType('('):
		la, err := p.peek()
		if err != nil {
			return nil, err
		}
		if la.Type == TokenType(')') {
			if err := p.next(); err != nil {
				return nil, err
			}
			if err := p.next(); err != nil {
				return nil, err
			}
			gs := &ast.GroupingSet{Kind: ast.GROUPING_SET_EMPTY}
			gs.Tag = ast.T_GroupingSet
			gs.SetSpan(p.spanFrom(start))
			return gs, nil
		}
	}
	return p.parseExprDefault()
}

// parseGroupingSetList parses ROLLUP(...) and CUBE(...).
func (p *Parser) parseGroupingSetList(kind ast.GroupingSetKind, start ast.Span) (ast.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	content, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	gs := &ast.GroupingSet{Kind: kind, Content: content}
	gs.Tag = ast.T_GroupingSet
	gs.SetSpan(p.spanFrom(start))
	return gs, nil
}

// parseWindowClause parses WINDOW name AS (spec), ...
func (p *Parser) parseWindowClause() ([]*ast.WindowDef, error) {
	if err := p.next(); err != nil { // WINDOW
		return nil, err
	}
	var wins []*ast.WindowDef
	for {
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(AS); err != nil {
			return nil, err
		}
		wd, err := p.parseWindowSpec(name)
		if err != nil {
			return nil, err
		}
		wins = append(wins, wd)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			return wins, nil
		}
	}
}

// parseWindowSpec parses "( [refname] [PARTITION BY ...] [ORDER BY ...]
// [frame] )". name is the window's own name in a WINDOW clause.
func (p *Parser) parseWindowSpec(name string) (*ast.WindowDef, error) {
	start := p.cur.Span
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	wd := &ast.WindowDef{Name: name}
	wd.Tag = ast.T_WindowDef

	if p.windowRefnameFollows() {
		ref, err := p.colId()
		if err != nil {
			return nil, err
		}
		wd.Refname = ref
	}

	if p.cur.Type == PARTITION {
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(BY); err != nil {
			return nil, err
		}
		exprs, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		wd.PartitionClause = exprs
	}

	if p.cur.Type == ORDER {
		sorts, err := p.parseOrderByClause()
		if err != nil {
			return nil, err
		}
		wd.OrderClause = sorts
	}

	if err := p.parseOptFrameClause(wd); err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	wd.SetSpan(p.spanFrom(start))
	return wd, nil
}

// windowRefnameFollows distinguishes an existing-window reference from the
// clause keywords that may open the specification.
func (p *Parser) windowRefnameFollows() bool {
	switch p.cur.Type {
	case PARTITION, ORDER, RANGE, ROWS, GROUPS, TokenType(')'):
		return false
	}
	return p.bareAliasFollows()
}

// parseOptFrameClause parses RANGE/ROWS/GROUPS frame extents.
func (p *Parser) parseOptFrameClause(wd *ast.WindowDef) error {
	var mode int
	switch p.cur.Type {
	case RANGE:
		mode = ast.FRAMEOPTION_RANGE
	case ROWS:
		mode = ast.FRAMEOPTION_ROWS
	case GROUPS:
		mode = ast.FRAMEOPTION_GROUPS
	default:
		return nil
	}
	if err := p.next(); err != nil {
		return err
	}
	wd.FrameOptions = ast.FRAMEOPTION_NONDEFAULT | mode

	if ok, err := p.accept(BETWEEN); err != nil {
		return err
	} else if ok {
		wd.FrameOptions |= ast.FRAMEOPTION_BETWEEN
		if err := p.parseFrameBound(wd, true); err != nil {
			return err
		}
		if _, err := p.expect(AND); err != nil {
			return err
		}
		return p.parseFrameBound(wd, false)
	}
	return p.parseFrameBound(wd, true)
}

// parseFrameBound parses one frame bound and sets the matching option bits.
func (p *Parser) parseFrameBound(wd *ast.WindowDef, isStart bool) error {
	switch p.cur.Type {
	case UNBOUNDED:
		if err := p.next(); err != nil {
			return err
		}
		switch p.cur.Type {
		case PRECEDING:
			if !isStart {
				return syntaxError(p.cur)
			}
			wd.FrameOptions |= ast.FRAMEOPTION_START_UNBOUNDED_P
		case FOLLOWING:
			if isStart {
				return syntaxError(p.cur)
			}
			wd.FrameOptions |= ast.FRAMEOPTION_END_UNBOUNDED_F
		default:
			return syntaxError(p.cur)
		}
		return p.next()

	case CURRENT_P:
		if err := p.next(); err != nil {
			return err
		}
		if _, err := p.expect(ROW); err != nil {
			return err
		}
		if isStart {
			wd.FrameOptions |= ast.FRAMEOPTION_START_CURRENT_ROW
		} else {
			wd.FrameOptions |= ast.FRAMEOPTION_END_CURRENT_ROW
		}
		return nil
	}

	offset, err := p.parseExprDefault()
	if err != nil {
		return err
	}
	var bit int
	switch p.cur.Type {
	case PRECEDING:
		if isStart {
			bit = ast.FRAMEOPTION_START_OFFSET_P
		} else {
			bit = ast.FRAMEOPTION_END_OFFSET_P
		}
	case FOLLOWING:
		if isStart {
			bit = ast.FRAMEOPTION_START_OFFSET_F
		} else {
			bit = ast.FRAMEOPTION_END_OFFSET_F
		}
	default:
		return syntaxError(p.cur)
	}
	if err := p.next(); err != nil {
		return err
	}
	wd.FrameOptions |= bit
	if isStart {
		wd.StartOffset = offset
	} else {
		wd.EndOffset = offset
	}
	return nil
}

// parseOrderByClause parses ORDER BY and its sort items.
func (p *Parser) parseOrderByClause() ([]*ast.SortBy, error) {
	if err := p.next(); err != nil { // ORDER
		return nil, err
	}
	if _, err := p.expect(BY); err != nil {
		return nil, err
	}
	var sorts []*ast.SortBy
	for {
		sb, err := p.parseSortBy()
		if err != nil {
			return nil, err
		}
		sorts = append(sorts, sb)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			return sorts, nil
		}
	}
}

// parseSortBy parses one ORDER BY item with direction and NULLS placement.
func (p *Parser) parseSortBy() (*ast.SortBy, error) {
	start := p.cur.Span
	expr, err := p.parseExprDefault()
	if err != nil {
		return nil, err
	}
	sb := &ast.SortBy{Node: expr}
	sb.Tag = ast.T_SortBy

	switch p.cur.Type {
	case ASC:
		sb.SortbyDir = ast.SORTBY_ASC
		if err := p.next(); err != nil {
			return nil, err
		}
	case DESC:
		sb.SortbyDir = ast.SORTBY_DESC
		if err := p.next(); err != nil {
			return nil, err
		}
	case USING:
		if err := p.next(); err != nil {
			return nil, err
		}
		sb.SortbyDir = ast.SORTBY_USING
		op, err := p.operatorName()
		if err != nil {
			return nil, err
		}
		sb.UseOp = op
	}

	if p.cur.Type == NULLS_LA {
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.cur.Type {
		case FIRST_P:
			sb.SortbyNulls = ast.SORTBY_NULLS_FIRST
		case LAST_P:
			sb.SortbyNulls = ast.SORTBY_NULLS_LAST
		default:
			return nil, syntaxError(p.cur)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	sb.SetSpan(p.spanFrom(start))
	return sb, nil
}

// operatorName consumes one operator token, including the fixed-token
// comparison spellings.
func (p *Parser) operatorName() (string, error) {
	var name string
	switch p.cur.Type {
	case Op:
		name = p.cur.Value.Str
	case TokenType('<'), TokenType('>'), TokenType('='), TokenType('+'),
		TokenType('-'), TokenType('*'), TokenType('/'), TokenType('%'), TokenType('^'):
		name = p.cur.Text
	case LESS_EQUALS:
		name = "<="
	case GREATER_EQUALS:
		name = ">="
	case NOT_EQUALS:
		name = "<>"
	default:
		return "", syntaxError(p.cur)
	}
	if err := p.next(); err != nil {
		return "", err
	}
	return name, nil
}

// parseWithClause parses WITH [RECURSIVE] cte-list.
func (p *Parser) parseWithClause() (*ast.WithClause, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // WITH
		return nil, err
	}
	wc := &ast.WithClause{}
	wc.Tag = ast.T_WithClause

	if ok, err := p.accept(RECURSIVE); err != nil {
		return nil, err
	} else if ok {
		wc.Recursive = true
	}

	for {
		cte, err := p.parseCommonTableExpr()
		if err != nil {
			return nil, err
		}
		wc.Ctes = append(wc.Ctes, cte)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	wc.SetSpan(p.spanFrom(start))
	return wc, nil
}

// parseCommonTableExpr parses one WITH-list entry.
func (p *Parser) parseCommonTableExpr() (*ast.CommonTableExpr, error) {
	start := p.cur.Span
	name, err := p.colId()
	if err != nil {
		return nil, err
	}
	cte := &ast.CommonTableExpr{Ctename: name}
	cte.Tag = ast.T_CommonTableExpr

	if p.cur.Type == TokenType('(') {
		if err := p.next(); err != nil {
			return nil, err
		}
		cols, err := p.nameList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		cte.Aliascolnames = cols
	}

	if _, err := p.expect(AS); err != nil {
		return nil, err
	}

	switch p.cur.Type {
	case MATERIALIZED:
		cte.Ctematerialized = ast.CTEMaterializeAlways
		if err := p.next(); err != nil {
			return nil, err
		}
	case NOT:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(MATERIALIZED); err != nil {
			return nil, err
		}
		cte.Ctematerialized = ast.CTEMaterializeNever
	}

	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	query, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	cte.Ctequery = query
	cte.SetSpan(p.spanFrom(start))
	return cte, nil
}

// parseRelationExpr parses [ONLY] qualified_name [*].
func (p *Parser) parseRelationExpr() (*ast.RangeVar, error) {
	start := p.cur.Span
	only := false
	if p.cur.Type == ONLY {
		only = true
		if err := p.next(); err != nil {
			return nil, err
		}
		if ok, err := p.accept(TokenType('(')); err != nil {
			return nil, err
		} else if ok {
			rel, err := p.qualifiedName()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenType(')')); err != nil {
				return nil, err
			}
			rel.Inh = false
			rel.SetSpan(p.spanFrom(start))
			return rel, nil
		}
	}
	rel, err := p.qualifiedName()
	if err != nil {
		return nil, err
	}
	if only {
		rel.Inh = false
	}
	if ok, err := p.accept(TokenType('*')); err != nil {
		return nil, err
	} else if ok {
		rel.Inh = true
	}
	rel.SetSpan(p.spanFrom(start))
	return rel, nil
}

// rangeVarFromName builds a RangeVar from already-parsed name parts.
func (p *Parser) rangeVarFromName(parts []string, span ast.Span) (*ast.RangeVar, error) {
	switch len(parts) {
	case 1:
		return ast.NewRangeVar("", "", parts[0], span), nil
	case 2:
		return ast.NewRangeVar("", parts[0], parts[1], span), nil
	case 3:
		return ast.NewRangeVar(parts[0], parts[1], parts[2], span), nil
	}
	return nil, syntaxErrorf(p.cur, "improper qualified name (too many dotted names)")
}
