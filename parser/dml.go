/*
 * INSERT, UPDATE and DELETE grammar, including ON CONFLICT and RETURNING.
 */

package parser

import (
	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// parseInsertStmt parses INSERT INTO; a WITH prefix is handled by the
// caller.
func (p *Parser) parseInsertStmt() (ast.Stmt, error) {
	start := p.cur.Span

	if _, err := p.expect(INSERT); err != nil {
		return nil, err
	}
	if _, err := p.expect(INTO); err != nil {
		return nil, err
	}
	rel, err := p.qualifiedName()
	if err != nil {
		return nil, err
	}
	stmt := &ast.InsertStmt{Relation: rel}
	stmt.Tag = ast.T_InsertStmt

	// Optional column list. A '(' here may instead open the source query, so
	// look ahead.
	if p.cur.Type == TokenType('(') && !p.selectFollows() {
		if err := p.next(); err != nil {
			return nil, err
		}
		cols, err := p.parseInsertColumnList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		stmt.Cols = cols
	}

	if p.cur.Type == OVERRIDING {
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.cur.Type {
		case USER:
			stmt.Override = ast.OVERRIDING_USER_VALUE
		case SYSTEM_P:
			stmt.Override = ast.OVERRIDING_SYSTEM_VALUE
		default:
			return nil, syntaxError(p.cur)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(VALUE_P); err != nil {
			return nil, err
		}
	}

	if p.cur.Type == DEFAULT {
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(VALUES); err != nil {
			return nil, err
		}
	} else {
		sel, err := p.parseSelectStmt()
		if err != nil {
			return nil, err
		}
		stmt.SelectStmt = sel
	}

	if p.cur.Type == ON {
		occ, err := p.parseOnConflictClause()
		if err != nil {
			return nil, err
		}
		stmt.OnConflictClause = occ
	}

	if ok, err := p.accept(RETURNING); err != nil {
		return nil, err
	} else if ok {
		ret, err := p.parseTargetList()
		if err != nil {
			return nil, err
		}
		stmt.ReturningList = ret
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseInsertColumnList parses insert column items with optional
// indirection.
func (p *Parser) parseInsertColumnList() ([]*ast.ResTarget, error) {
	var cols []*ast.ResTarget
	for {
		start := p.cur.Span
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		rt := ast.NewResTarget(name, nil, start)
		ind, err := p.parseOptIndirection()
		if err != nil {
			return nil, err
		}
		rt.Indirection = ind
		rt.SetSpan(p.spanFrom(start))
		cols = append(cols, rt)

		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			return cols, nil
		}
	}
}

// parseOptIndirection parses trailing .field and [subscript] elements for
// assignment targets.
func (p *Parser) parseOptIndirection() ([]ast.Node, error) {
	var ind []ast.Node
	for {
		switch p.cur.Type {
		case TokenType('.'):
			if err := p.next(); err != nil {
				return nil, err
			}
			name, err := p.colLabel()
			if err != nil {
				return nil, err
			}
			ind = append(ind, ast.NewString(name))
		case TokenType('['):
			idx, err := p.parseIndices()
			if err != nil {
				return nil, err
			}
			ind = append(ind, idx)
		default:
			return ind, nil
		}
	}
}

// parseOnConflictClause parses ON CONFLICT [target] DO NOTHING/UPDATE.
func (p *Parser) parseOnConflictClause() (*ast.OnConflictClause, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // ON
		return nil, err
	}
	if _, err := p.expect(CONFLICT); err != nil {
		return nil, err
	}
	occ := &ast.OnConflictClause{}
	occ.Tag = ast.T_OnConflictClause

	switch p.cur.Type {
	case TokenType('('):
		infer := &ast.InferClause{}
		infer.Tag = ast.T_InferClause
		istart := p.cur.Span
		if err := p.next(); err != nil {
			return nil, err
		}
		for {
			elem, err := p.parseIndexElem()
			if err != nil {
				return nil, err
			}
			infer.IndexElems = append(infer.IndexElems, elem)
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
		if ok, err := p.accept(WHERE); err != nil {
			return nil, err
		} else if ok {
			where, err := p.parseExprDefault()
			if err != nil {
				return nil, err
			}
			infer.WhereClause = where
		}
		infer.SetSpan(p.spanFrom(istart))
		occ.Infer = infer

	case ON:
		istart := p.cur.Span
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
		infer := &ast.InferClause{Conname: name}
		infer.Tag = ast.T_InferClause
		infer.SetSpan(p.spanFrom(istart))
		occ.Infer = infer
	}

	if _, err := p.expect(DO); err != nil {
		return nil, err
	}
	switch p.cur.Type {
	case NOTHING:
		occ.Action = ast.ONCONFLICT_NOTHING
		if err := p.next(); err != nil {
			return nil, err
		}
	case UPDATE:
		occ.Action = ast.ONCONFLICT_UPDATE
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(SET); err != nil {
			return nil, err
		}
		targets, err := p.parseSetClauseList()
		if err != nil {
			return nil, err
		}
		occ.TargetList = targets
		if ok, err := p.accept(WHERE); err != nil {
			return nil, err
		} else if ok {
			where, err := p.parseExprDefault()
			if err != nil {
				return nil, err
			}
			occ.WhereClause = where
		}
	default:
		return nil, syntaxError(p.cur)
	}

	occ.SetSpan(p.spanFrom(start))
	return occ, nil
}

// parseSetClauseList parses UPDATE's SET assignments, including the
// multi-column form (a, b) = (expr, expr) and (a, b) = (subquery).
func (p *Parser) parseSetClauseList() ([]*ast.ResTarget, error) {
	var targets []*ast.ResTarget
	for {
		if p.cur.Type == TokenType('(') {
			multi, err := p.parseMultiAssign()
			if err != nil {
				return nil, err
			}
			targets = append(targets, multi...)
		} else {
			t, err := p.parseSetClause()
			if err != nil {
				return nil, err
			}
			targets = append(targets, t)
		}
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			return targets, nil
		}
	}
}

// parseSetClause parses one "col = expr" assignment.
func (p *Parser) parseSetClause() (*ast.ResTarget, error) {
	start := p.cur.Span
	name, err := p.colId()
	if err != nil {
		return nil, err
	}
	rt := ast.NewResTarget(name, nil, start)
	ind, err := p.parseOptIndirection()
	if err != nil {
		return nil, err
	}
	rt.Indirection = ind
	if _, err := p.expect(TokenType('=')); err != nil {
		return nil, err
	}
	val, err := p.parseExprDefault()
	if err != nil {
		return nil, err
	}
	rt.Val = val
	rt.SetSpan(p.spanFrom(start))
	return rt, nil
}

// parseMultiAssign parses "(a, b) = (x, y)" by pairing each column with the
// matching source expression, or with a shared row-valued subquery.
func (p *Parser) parseMultiAssign() ([]*ast.ResTarget, error) {
	if err := p.next(); err != nil { // '('
		return nil, err
	}
	var cols []*ast.ResTarget
	for {
		start := p.cur.Span
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		rt := ast.NewResTarget(name, nil, start)
		ind, err := p.parseOptIndirection()
		if err != nil {
			return nil, err
		}
		rt.Indirection = ind
		rt.SetSpan(p.spanFrom(start))
		cols = append(cols, rt)
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
	if _, err := p.expect(TokenType('=')); err != nil {
		return nil, err
	}

	if p.selectFollows() {
		sub, err := p.parseParenSelect()
		if err != nil {
			return nil, err
		}
		sl := &ast.SubLink{SubLinkType: ast.EXPR_SUBLINK, Subselect: sub}
		sl.Tag = ast.T_SubLink
		sl.SetSpan(p.last.Span)
		for _, c := range cols {
			c.Val = sl
		}
		return cols, nil
	}

	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	vals, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	if len(vals) != len(cols) {
		return nil, syntaxErrorf(p.cur, "number of columns does not match number of values")
	}
	for i, c := range cols {
		c.Val = vals[i]
	}
	return cols, nil
}

// parseTargetAlias parses the optional alias on an UPDATE or DELETE target.
// Unlike a FROM item, a bare SET here always starts the set clause list and
// is never taken as an alias.
func (p *Parser) parseTargetAlias() (*ast.Alias, error) {
	if p.cur.Type == SET {
		return nil, nil
	}
	return p.parseOptAlias()
}

// parseUpdateStmt parses UPDATE ... SET ... [FROM ...] [WHERE ...]
// [RETURNING ...].
func (p *Parser) parseUpdateStmt() (ast.Stmt, error) {
	start := p.cur.Span

	if _, err := p.expect(UPDATE); err != nil {
		return nil, err
	}
	rel, err := p.parseRelationExpr()
	if err != nil {
		return nil, err
	}
	alias, err := p.parseTargetAlias()
	if err != nil {
		return nil, err
	}
	rel.Alias = alias

	stmt := &ast.UpdateStmt{Relation: rel}
	stmt.Tag = ast.T_UpdateStmt

	if _, err := p.expect(SET); err != nil {
		return nil, err
	}
	targets, err := p.parseSetClauseList()
	if err != nil {
		return nil, err
	}
	stmt.TargetList = targets

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

	if ok, err := p.accept(RETURNING); err != nil {
		return nil, err
	} else if ok {
		ret, err := p.parseTargetList()
		if err != nil {
			return nil, err
		}
		stmt.ReturningList = ret
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseDeleteStmt parses DELETE FROM ... [USING ...] [WHERE ...]
// [RETURNING ...].
func (p *Parser) parseDeleteStmt() (ast.Stmt, error) {
	start := p.cur.Span

	if _, err := p.expect(DELETE_P); err != nil {
		return nil, err
	}
	if _, err := p.expect(FROM); err != nil {
		return nil, err
	}
	rel, err := p.parseRelationExpr()
	if err != nil {
		return nil, err
	}
	alias, err := p.parseTargetAlias()
	if err != nil {
		return nil, err
	}
	rel.Alias = alias

	stmt := &ast.DeleteStmt{Relation: rel}
	stmt.Tag = ast.T_DeleteStmt

	if ok, err := p.accept(USING); err != nil {
		return nil, err
	} else if ok {
		using, err := p.parseFromList()
		if err != nil {
			return nil, err
		}
		stmt.UsingClause = using
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

	if ok, err := p.accept(RETURNING); err != nil {
		return nil, err
	} else if ok {
		ret, err := p.parseTargetList()
		if err != nil {
			return nil, err
		}
		stmt.ReturningList = ret
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}
