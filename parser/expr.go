/*
 * Expression grammar: precedence climbing over the a_expr operator ladder.
 * The precedence and associativity of every level reproduces the grammar's
 * declarations, including the special cases: ^ binds tighter than unary
 * minus so that -2^2 parses as -(2^2), comparison operators do not
 * associate, and BETWEEN/IN/LIKE live between the comparisons and the
 * generic operators.
 */

package parser

import (
	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// Operator precedence levels, low to high.
const (
	precOr      = 1
	precAnd     = 2
	precNot     = 3
	precIs      = 4 // IS, ISNULL, NOTNULL
	precCmp     = 5 // < > = <= >= <>
	precLike    = 6 // BETWEEN, IN, LIKE, ILIKE, SIMILAR
	precOp      = 7 // generic named operators
	precAdd     = 8
	precMul     = 9
	precExp     = 10 // ^, right-associative
	precAt      = 11 // AT TIME ZONE
	precCollate = 12
)

// parseExprDefault parses a full a_expr.
func (p *Parser) parseExprDefault() (ast.Node, error) {
	return p.parseExpr(precOr)
}

// parseExpr parses an expression consuming operators of at least minPrec.
func (p *Parser) parseExpr(minPrec int) (ast.Node, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		done, next, err := p.parseInfix(left, minPrec)
		if err != nil {
			return nil, err
		}
		if done {
			return left, nil
		}
		left = next
	}
}

// parseInfix tries to extend left with one infix or postfix construct of at
// least minPrec. It reports done when cur does not continue the expression.
func (p *Parser) parseInfix(left ast.Node, minPrec int) (bool, ast.Node, error) {
	start := left.Span()
	tok := p.cur

	switch tok.Type {
	case OR:
		if precOr < minPrec {
			return true, nil, nil
		}
		if err := p.next(); err != nil {
			return false, nil, err
		}
		rhs, err := p.parseExpr(precOr + 1)
		if err != nil {
			return false, nil, err
		}
		return false, makeBoolOp(ast.OR_EXPR, left, rhs, p.spanFrom(start)), nil

	case AND:
		if precAnd < minPrec {
			return true, nil, nil
		}
		if err := p.next(); err != nil {
			return false, nil, err
		}
		rhs, err := p.parseExpr(precAnd + 1)
		if err != nil {
			return false, nil, err
		}
		return false, makeBoolOp(ast.AND_EXPR, left, rhs, p.spanFrom(start)), nil

	case IS:
		if precIs < minPrec {
			return true, nil, nil
		}
		node, err := p.parseIsTail(left, start)
		return false, node, err

	case ISNULL, NOTNULL:
		if precIs < minPrec {
			return true, nil, nil
		}
		if err := p.next(); err != nil {
			return false, nil, err
		}
		ntype := ast.IS_NULL
		if tok.Type == NOTNULL {
			ntype = ast.IS_NOT_NULL
		}
		nt := &ast.NullTest{Arg: left, Nulltesttype: ntype}
		nt.Tag = ast.T_NullTest
		nt.SetSpan(p.spanFrom(start))
		return false, nt, nil

	case TokenType('<'), TokenType('>'), TokenType('='), LESS_EQUALS, GREATER_EQUALS, NOT_EQUALS:
		if precCmp < minPrec {
			return true, nil, nil
		}
		node, err := p.parseComparisonTail(left, tok, start)
		return false, node, err

	case NOT_LA, BETWEEN, IN_P, LIKE, ILIKE, SIMILAR:
		if precLike < minPrec {
			return true, nil, nil
		}
		node, err := p.parseLikeTail(left, start)
		return false, node, err

	case Op:
		if precOp < minPrec {
			return true, nil, nil
		}
		if err := p.next(); err != nil {
			return false, nil, err
		}
		if node, handled, err := p.parseAnyAllTail(left, tok.Value.Str, start); handled || err != nil {
			return false, node, err
		}
		rhs, err := p.parseExpr(precOp + 1)
		if err != nil {
			return false, nil, err
		}
		return false, ast.NewA_Expr(ast.AEXPR_OP, tok.Value.Str, left, rhs, p.spanFrom(start)), nil

	case TokenType('+'), TokenType('-'):
		if precAdd < minPrec {
			return true, nil, nil
		}
		if err := p.next(); err != nil {
			return false, nil, err
		}
		rhs, err := p.parseExpr(precAdd + 1)
		if err != nil {
			return false, nil, err
		}
		return false, ast.NewA_Expr(ast.AEXPR_OP, tok.Text, left, rhs, p.spanFrom(start)), nil

	case TokenType('*'), TokenType('/'), TokenType('%'):
		if precMul < minPrec {
			return true, nil, nil
		}
		if err := p.next(); err != nil {
			return false, nil, err
		}
		rhs, err := p.parseExpr(precMul + 1)
		if err != nil {
			return false, nil, err
		}
		return false, ast.NewA_Expr(ast.AEXPR_OP, tok.Text, left, rhs, p.spanFrom(start)), nil

	case TokenType('^'):
		if precExp < minPrec {
			return true, nil, nil
		}
		if err := p.next(); err != nil {
			return false, nil, err
		}
		// Right-associative: the right operand reclaims the same level.
		rhs, err := p.parseExpr(precExp)
		if err != nil {
			return false, nil, err
		}
		return false, ast.NewA_Expr(ast.AEXPR_OP, "^", left, rhs, p.spanFrom(start)), nil

	case AT:
		if precAt < minPrec {
			return true, nil, nil
		}
		if err := p.next(); err != nil {
			return false, nil, err
		}
		if _, err := p.expect(TIME); err != nil {
			return false, nil, err
		}
		if _, err := p.expect(ZONE); err != nil {
			return false, nil, err
		}
		zone, err := p.parseExpr(precAt + 1)
		if err != nil {
			return false, nil, err
		}
		fc := ast.NewFuncCall([]string{"timezone"}, []ast.Node{zone, left}, p.spanFrom(start))
		return false, fc, nil

	case COLLATE:
		if precCollate < minPrec {
			return true, nil, nil
		}
		if err := p.next(); err != nil {
			return false, nil, err
		}
		name, err := p.anyName()
		if err != nil {
			return false, nil, err
		}
		cc := &ast.CollateClause{Arg: left, Collname: name}
		cc.Tag = ast.T_CollateClause
		cc.SetSpan(p.spanFrom(start))
		return false, cc, nil
	}

	return true, nil, nil
}

// makeBoolOp builds an AND/OR node, flattening a same-operator left child
// the way makeAndExpr/makeOrExpr do.
func makeBoolOp(op ast.BoolExprType, left, right ast.Node, span ast.Span) ast.Node {
	if be, ok := left.(*ast.BoolExpr); ok && be.Boolop == op {
		be.Args = append(be.Args, right)
		be.SetSpan(span)
		return be
	}
	return ast.NewBoolExpr(op, []ast.Node{left, right}, span)
}

// parseIsTail handles everything after IS: [NOT] NULL, TRUE, FALSE, UNKNOWN
// and [NOT] DISTINCT FROM.
func (p *Parser) parseIsTail(left ast.Node, start ast.Span) (ast.Node, error) {
	if err := p.next(); err != nil { // IS
		return nil, err
	}
	negated := false
	if p.cur.Type == NOT {
		negated = true
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	switch p.cur.Type {
	case NULL_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		ntype := ast.IS_NULL
		if negated {
			ntype = ast.IS_NOT_NULL
		}
		nt := &ast.NullTest{Arg: left, Nulltesttype: ntype}
		nt.Tag = ast.T_NullTest
		nt.SetSpan(p.spanFrom(start))
		return nt, nil

	case TRUE_P, FALSE_P, UNKNOWN:
		var btype ast.BoolTestType
		switch {
		case p.cur.Type == TRUE_P && !negated:
			btype = ast.IS_TRUE
		case p.cur.Type == TRUE_P:
			btype = ast.IS_NOT_TRUE
		case p.cur.Type == FALSE_P && !negated:
			btype = ast.IS_FALSE
		case p.cur.Type == FALSE_P:
			btype = ast.IS_NOT_FALSE
		case !negated:
			btype = ast.IS_UNKNOWN
		default:
			btype = ast.IS_NOT_UNKNOWN
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		bt := &ast.BooleanTest{Arg: left, Booltesttype: btype}
		bt.Tag = ast.T_BooleanTest
		bt.SetSpan(p.spanFrom(start))
		return bt, nil

	case DISTINCT:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(FROM); err != nil {
			return nil, err
		}
		rhs, err := p.parseExpr(precIs + 1)
		if err != nil {
			return nil, err
		}
		kind := ast.AEXPR_DISTINCT
		if negated {
			kind = ast.AEXPR_NOT_DISTINCT
		}
		return ast.NewA_Expr(kind, "=", left, rhs, p.spanFrom(start)), nil
	}
	return nil, syntaxError(p.cur)
}

// parseComparisonTail handles < > = <= >= <>, including the ANY/ALL/SOME
// suffixes and the subquery forms. Comparisons do not associate: a second
// comparison at the same level is a syntax error.
func (p *Parser) parseComparisonTail(left ast.Node, op Token, start ast.Span) (ast.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	if node, handled, err := p.parseAnyAllTail(left, op.Text, start); handled || err != nil {
		return node, err
	}
	if p.selectFollows() {
		sub, err := p.parseParenSelect()
		if err != nil {
			return nil, err
		}
		sl := &ast.SubLink{SubLinkType: ast.EXPR_SUBLINK, Subselect: sub}
		sl.Tag = ast.T_SubLink
		sl.SetSpan(p.spanFrom(start))
		rhs := ast.Node(sl)
		res := ast.NewA_Expr(ast.AEXPR_OP, op.Text, left, rhs, p.spanFrom(start))
		return res, p.rejectChainedComparison()
	}
	rhs, err := p.parseExpr(precCmp + 1)
	if err != nil {
		return nil, err
	}
	res := ast.NewA_Expr(ast.AEXPR_OP, op.Text, left, rhs, p.spanFrom(start))
	return res, p.rejectChainedComparison()
}

// rejectChainedComparison enforces the non-associativity of the comparison
// level: "a < b < c" is rejected rather than grouped.
func (p *Parser) rejectChainedComparison() error {
	switch p.cur.Type {
	case TokenType('<'), TokenType('>'), TokenType('='), LESS_EQUALS, GREATER_EQUALS, NOT_EQUALS:
		return syntaxError(p.cur)
	}
	return nil
}

// parseAnyAllTail handles "op ANY (...)" and "op ALL (...)" after an
// operator has been consumed. handled is false when cur is not ANY/SOME/ALL.
func (p *Parser) parseAnyAllTail(left ast.Node, op string, start ast.Span) (ast.Node, bool, error) {
	var linkType ast.SubLinkType
	var kind ast.A_Expr_Kind
	switch p.cur.Type {
	case ANY, SOME:
		linkType, kind = ast.ANY_SUBLINK, ast.AEXPR_OP_ANY
	case ALL:
		linkType, kind = ast.ALL_SUBLINK, ast.AEXPR_OP_ALL
	default:
		return nil, false, nil
	}
	if err := p.next(); err != nil {
		return nil, true, err
	}
	if p.selectFollows() {
		sub, err := p.parseParenSelect()
		if err != nil {
			return nil, true, err
		}
		sl := &ast.SubLink{SubLinkType: linkType, Testexpr: left, OperName: op, Subselect: sub}
		sl.Tag = ast.T_SubLink
		sl.SetSpan(p.spanFrom(start))
		return sl, true, nil
	}
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, true, err
	}
	arg, err := p.parseExprDefault()
	if err != nil {
		return nil, true, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, true, err
	}
	return ast.NewA_Expr(kind, op, left, arg, p.spanFrom(start)), true, nil
}

// parseLikeTail handles [NOT] BETWEEN/IN/LIKE/ILIKE/SIMILAR TO.
func (p *Parser) parseLikeTail(left ast.Node, start ast.Span) (ast.Node, error) {
	negated := false
	if p.cur.Type == NOT_LA {
		negated = true
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	switch p.cur.Type {
	case BETWEEN:
		if err := p.next(); err != nil {
			return nil, err
		}
		symmetric := false
		switch p.cur.Type {
		case SYMMETRIC:
			symmetric = true
			if err := p.next(); err != nil {
				return nil, err
			}
		case ASYMMETRIC:
			if err := p.next(); err != nil {
				return nil, err
			}
		}
		lower, err := p.parseExpr(precLike + 1)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(AND); err != nil {
			return nil, err
		}
		upper, err := p.parseExpr(precLike + 1)
		if err != nil {
			return nil, err
		}
		kind := ast.AEXPR_BETWEEN
		switch {
		case negated && symmetric:
			kind = ast.AEXPR_NOT_BETWEEN_SYM
		case negated:
			kind = ast.AEXPR_NOT_BETWEEN
		case symmetric:
			kind = ast.AEXPR_BETWEEN_SYM
		}
		e := ast.NewA_Expr(kind, "", left, nil, p.spanFrom(start))
		e.Rexprs = []ast.Node{lower, upper}
		return e, nil

	case IN_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		opName := "="
		if negated {
			opName = "<>"
		}
		if p.selectFollows() {
			sub, err := p.parseParenSelect()
			if err != nil {
				return nil, err
			}
			operName := ""
			if negated {
				operName = "<>"
			}
			sl := &ast.SubLink{SubLinkType: ast.ANY_SUBLINK, Testexpr: left, OperName: operName, Subselect: sub}
			sl.Tag = ast.T_SubLink
			sl.SetSpan(p.spanFrom(start))
			if negated {
				// NOT IN (subquery) is NOT (= ANY (subquery)).
				sl.OperName = ""
				return ast.NewBoolExpr(ast.NOT_EXPR, []ast.Node{sl}, p.spanFrom(start)), nil
			}
			return sl, nil
		}
		if _, err := p.expect(TokenType('(')); err != nil {
			return nil, err
		}
		items, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		e := ast.NewA_Expr(ast.AEXPR_IN, opName, left, nil, p.spanFrom(start))
		e.Rexprs = items
		return e, nil

	case LIKE, ILIKE:
		kind := ast.AEXPR_LIKE
		opName := "~~"
		if p.cur.Type == ILIKE {
			kind = ast.AEXPR_ILIKE
			opName = "~~*"
		}
		if negated {
			opName = "!" + opName
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		pattern, err := p.parseExpr(precLike + 1)
		if err != nil {
			return nil, err
		}
		pattern, err = p.parseOptEscape(pattern, "like_escape")
		if err != nil {
			return nil, err
		}
		return ast.NewA_Expr(kind, opName, left, pattern, p.spanFrom(start)), nil

	case SIMILAR:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TO); err != nil {
			return nil, err
		}
		pattern, err := p.parseExpr(precLike + 1)
		if err != nil {
			return nil, err
		}
		pattern, err = p.parseOptEscape(pattern, "similar_to_escape")
		if err != nil {
			return nil, err
		}
		opName := "~"
		if negated {
			opName = "!~"
		}
		return ast.NewA_Expr(ast.AEXPR_SIMILAR, opName, left, pattern, p.spanFrom(start)), nil
	}
	return nil, syntaxError(p.cur)
}

// parseOptEscape wraps the pattern in the escape helper function when an
// ESCAPE clause follows.
func (p *Parser) parseOptEscape(pattern ast.Node, helper string) (ast.Node, error) {
	ok, err := p.accept(ESCAPE)
	if err != nil || !ok {
		return pattern, err
	}
	esc, err := p.parseExpr(precLike + 1)
	if err != nil {
		return nil, err
	}
	span := pattern.Span().Union(esc.Span())
	return ast.NewFuncCall([]string{helper}, []ast.Node{pattern, esc}, span), nil
}

// parsePrefix parses prefix operators and primary expressions.
func (p *Parser) parsePrefix() (ast.Node, error) {
	start := p.cur.Span
	switch p.cur.Type {
	case NOT:
		if err := p.next(); err != nil {
			return nil, err
		}
		arg, err := p.parseExpr(precNot)
		if err != nil {
			return nil, err
		}
		return ast.NewBoolExpr(ast.NOT_EXPR, []ast.Node{arg}, p.spanFrom(start)), nil

	case TokenType('-'):
		if err := p.next(); err != nil {
			return nil, err
		}
		// Unary minus binds tighter than * but looser than ^, so the
		// operand may absorb an exponentiation.
		arg, err := p.parseExpr(precExp)
		if err != nil {
			return nil, err
		}
		return doNegate(arg, p.spanFrom(start)), nil

	case TokenType('+'):
		if err := p.next(); err != nil {
			return nil, err
		}
		arg, err := p.parseExpr(precExp)
		if err != nil {
			return nil, err
		}
		return ast.NewA_Expr(ast.AEXPR_OP, "+", nil, arg, p.spanFrom(start)), nil

	case Op:
		op := p.cur.Value.Str
		if err := p.next(); err != nil {
			return nil, err
		}
		arg, err := p.parseExpr(precOp + 1)
		if err != nil {
			return nil, err
		}
		return ast.NewA_Expr(ast.AEXPR_OP, op, nil, arg, p.spanFrom(start)), nil
	}

	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parsePostfix(base)
}

// doNegate applies unary minus, folding it into numeric literals the way
// the grammar's doNegate does.
func doNegate(arg ast.Node, span ast.Span) ast.Node {
	if c, ok := arg.(*ast.A_Const); ok {
		switch v := c.Val.(type) {
		case *ast.Integer:
			v.IVal = -v.IVal
			c.SetSpan(span)
			return c
		case *ast.Float:
			if len(v.FVal) > 0 && v.FVal[0] == '-' {
				v.FVal = v.FVal[1:]
			} else {
				v.FVal = "-" + v.FVal
			}
			c.SetSpan(span)
			return c
		}
	}
	return ast.NewA_Expr(ast.AEXPR_OP, "-", nil, arg, span)
}

// parsePostfix applies the tightest-binding suffixes: ::type casts,
// subscripts and field selections.
func (p *Parser) parsePostfix(base ast.Node) (ast.Node, error) {
	for {
		start := base.Span()
		switch p.cur.Type {
		case TYPECAST:
			if err := p.next(); err != nil {
				return nil, err
			}
			tn, err := p.parseTypeName()
			if err != nil {
				return nil, err
			}
			base = ast.NewTypeCast(base, tn, p.spanFrom(start))

		case TokenType('['):
			indices, err := p.parseIndices()
			if err != nil {
				return nil, err
			}
			base = wrapIndirection(base, indices, p.spanFrom(start))

		case TokenType('.'):
			if err := p.next(); err != nil {
				return nil, err
			}
			var field ast.Node
			if p.cur.Type == TokenType('*') {
				if err := p.next(); err != nil {
					return nil, err
				}
				field = ast.NewA_Star()
			} else {
				name, err := p.colLabel()
				if err != nil {
					return nil, err
				}
				field = ast.NewString(name)
			}
			base = wrapIndirection(base, field, p.spanFrom(start))

		default:
			return base, nil
		}
	}
}

// wrapIndirection appends one indirection element, reusing an existing
// A_Indirection wrapper.
func wrapIndirection(base ast.Node, elem ast.Node, span ast.Span) ast.Node {
	if ind, ok := base.(*ast.A_Indirection); ok {
		ind.Indirection = append(ind.Indirection, elem)
		ind.SetSpan(span)
		return ind
	}
	ind := &ast.A_Indirection{Arg: base, Indirection: []ast.Node{elem}}
	ind.Tag = ast.T_A_Indirection
	ind.SetSpan(span)
	return ind
}

// parseIndices parses one [idx] or [lo:hi] subscript.
func (p *Parser) parseIndices() (*ast.A_Indices, error) {
	start := p.cur.Span
	if _, err := p.expect(TokenType('[')); err != nil {
		return nil, err
	}
	idx := &ast.A_Indices{}
	idx.Tag = ast.T_A_Indices

	if p.cur.Type == TokenType(':') {
		idx.IsSlice = true
	} else {
		e, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		if p.cur.Type == TokenType(':') {
			idx.IsSlice = true
			idx.Lidx = e
		} else {
			idx.Uidx = e
		}
	}
	if idx.IsSlice {
		if err := p.next(); err != nil { // ':'
			return nil, err
		}
		if p.cur.Type != TokenType(']') {
			e, err := p.parseExprDefault()
			if err != nil {
				return nil, err
			}
			idx.Uidx = e
		}
	}
	if _, err := p.expect(TokenType(']')); err != nil {
		return nil, err
	}
	idx.SetSpan(p.spanFrom(start))
	return idx, nil
}

// parseExprList parses a comma-separated expression list.
func (p *Parser) parseExprList() ([]ast.Node, error) {
	var items []ast.Node
	for {
		e, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		items = append(items, e)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			return items, nil
		}
	}
}

// anyName parses name[.name...] into its parts.
func (p *Parser) anyName() ([]string, error) {
	first, err := p.colId()
	if err != nil {
		return nil, err
	}
	parts := []string{first}
	for p.cur.Type == TokenType('.') {
		if err := p.next(); err != nil {
			return nil, err
		}
		part, err := p.colLabel()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// selectFollows reports whether cur begins a parenthesized SELECT.
func (p *Parser) selectFollows() bool {
	if p.cur.Type != TokenType('(') {
		return false
	}
	la, err := p.peek()
	if err != nil {
		return false
	}
	switch la.Type {
	case SELECT, VALUES, WITH, TABLE:
		return true
	}
	return false
}

// parseParenSelect parses "( select-stmt )".
func (p *Parser) parseParenSelect() (*ast.SelectStmt, error) {
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	sel, err := p.parseSelectStmt()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	return sel, nil
}

// parsePrimary parses a c_expr: constants, column references, function
// calls, parenthesized expressions, CASE, subqueries and the keyword-spelled
// special forms.
func (p *Parser) parsePrimary() (ast.Node, error) {
	start := p.cur.Span
	tok := p.cur

	switch tok.Type {
	case ICONST:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewA_Const(ast.NewInteger(tok.Value.Ival), tok.Span), nil

	case FCONST:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewA_Const(ast.NewFloat(tok.Value.Str), tok.Span), nil

	case SCONST:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewA_Const(ast.NewString(tok.Value.Str), tok.Span), nil

	case BCONST, XCONST:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewA_Const(ast.NewBitString(tok.Value.Str), tok.Span), nil

	case TRUE_P, FALSE_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewA_Const(ast.NewBoolean(tok.Type == TRUE_P), tok.Span), nil

	case NULL_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewA_Const(nil, tok.Span), nil

	case DEFAULT:
		if err := p.next(); err != nil {
			return nil, err
		}
		d := &ast.SetToDefault{}
		d.Tag = ast.T_SetToDefault
		d.SetSpan(tok.Span)
		return d, nil

	case PARAM:
		if err := p.next(); err != nil {
			return nil, err
		}
		pr := &ast.ParamRef{Number: int(tok.Value.Ival)}
		pr.Tag = ast.T_ParamRef
		pr.SetSpan(tok.Span)
		return pr, nil

	case TokenType('('):
		if p.selectFollows() {
			sub, err := p.parseParenSelect()
			if err != nil {
				return nil, err
			}
			sl := &ast.SubLink{SubLinkType: ast.EXPR_SUBLINK, Subselect: sub}
			sl.Tag = ast.T_SubLink
			sl.SetSpan(p.spanFrom(start))
			return sl, nil
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		e, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		if p.cur.Type == TokenType(',') {
			// Implicit row constructor: (a, b, ...).
			args := []ast.Node{e}
			for p.cur.Type == TokenType(',') {
				if err := p.next(); err != nil {
					return nil, err
				}
				item, err := p.parseExprDefault()
				if err != nil {
					return nil, err
				}
				args = append(args, item)
			}
			if _, err := p.expect(TokenType(')')); err != nil {
				return nil, err
			}
			row := &ast.RowExpr{Args: args}
			row.Tag = ast.T_RowExpr
			row.SetSpan(p.spanFrom(start))
			return row, nil
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		return e, nil

	case CASE:
		return p.parseCaseExpr()

	case CAST:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType('(')); err != nil {
			return nil, err
		}
		arg, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(AS); err != nil {
			return nil, err
		}
		tn, err := p.parseTypeName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		return ast.NewTypeCast(arg, tn, p.spanFrom(start)), nil

	case COALESCE:
		args, err := p.parseParenExprList()
		if err != nil {
			return nil, err
		}
		ce := &ast.CoalesceExpr{Args: args}
		ce.Tag = ast.T_CoalesceExpr
		ce.SetSpan(p.spanFrom(start))
		return ce, nil

	case GREATEST, LEAST:
		op := ast.IS_GREATEST
		if tok.Type == LEAST {
			op = ast.IS_LEAST
		}
		args, err := p.parseParenExprList()
		if err != nil {
			return nil, err
		}
		mm := &ast.MinMaxExpr{Op: op, Args: args}
		mm.Tag = ast.T_MinMaxExpr
		mm.SetSpan(p.spanFrom(start))
		return mm, nil

	case GROUPING:
		args, err := p.parseParenExprList()
		if err != nil {
			return nil, err
		}
		gf := &ast.GroupingFunc{Args: args}
		gf.Tag = ast.T_GroupingFunc
		gf.SetSpan(p.spanFrom(start))
		return gf, nil

	case EXISTS:
		if err := p.next(); err != nil {
			return nil, err
		}
		sub, err := p.parseParenSelect()
		if err != nil {
			return nil, err
		}
		sl := &ast.SubLink{SubLinkType: ast.EXISTS_SUBLINK, Subselect: sub}
		sl.Tag = ast.T_SubLink
		sl.SetSpan(p.spanFrom(start))
		return sl, nil

	case ARRAY:
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.selectFollows() {
			sub, err := p.parseParenSelect()
			if err != nil {
				return nil, err
			}
			sl := &ast.SubLink{SubLinkType: ast.ARRAY_SUBLINK, Subselect: sub}
			sl.Tag = ast.T_SubLink
			sl.SetSpan(p.spanFrom(start))
			return sl, nil
		}
		return p.parseArrayLiteral(start)

	case ROW:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType('(')); err != nil {
			return nil, err
		}
		var args []ast.Node
		if p.cur.Type != TokenType(')') {
			var err error
			args, err = p.parseExprList()
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		row := &ast.RowExpr{Args: args, RowFormat: true}
		row.Tag = ast.T_RowExpr
		row.SetSpan(p.spanFrom(start))
		return row, nil

	case EXTRACT:
		return p.parseExtract(start)

	case POSITION:
		return p.parsePosition(start)

	case SUBSTRING:
		return p.parseSubstring(start)

	case CURRENT_DATE:
		return p.makeSQLValueFunction(ast.SVFOP_CURRENT_DATE, start)
	case CURRENT_TIME:
		return p.makeSQLValueFunction(ast.SVFOP_CURRENT_TIME, start)
	case CURRENT_TIMESTAMP:
		return p.makeSQLValueFunction(ast.SVFOP_CURRENT_TIMESTAMP, start)
	case LOCALTIME:
		return p.makeSQLValueFunction(ast.SVFOP_LOCALTIME, start)
	case LOCALTIMESTAMP:
		return p.makeSQLValueFunction(ast.SVFOP_LOCALTIMESTAMP, start)
	case CURRENT_ROLE:
		return p.makeSQLValueFunction(ast.SVFOP_CURRENT_ROLE, start)
	case CURRENT_USER:
		return p.makeSQLValueFunction(ast.SVFOP_CURRENT_USER, start)
	case SESSION_USER:
		return p.makeSQLValueFunction(ast.SVFOP_SESSION_USER, start)
	case USER:
		return p.makeSQLValueFunction(ast.SVFOP_USER, start)
	case CURRENT_CATALOG:
		return p.makeSQLValueFunction(ast.SVFOP_CURRENT_CATALOG, start)
	case CURRENT_SCHEMA:
		return p.makeSQLValueFunction(ast.SVFOP_CURRENT_SCHEMA, start)

	case INTERVAL, TIMESTAMP, TIME, BOOLEAN_P, NUMERIC, DECIMAL_P, DEC,
		INT_P, INTEGER, SMALLINT, BIGINT, REAL, FLOAT_P, DOUBLE_P, BIT,
		CHARACTER, CHAR_P, VARCHAR, NCHAR, NATIONAL:
		return p.parseConstTypeCast(start)
	}

	if p.cur.Type == IDENT || keywordFor(p.cur.Type) != nil {
		return p.parseColumnRefOrFuncCall(start)
	}
	return nil, syntaxError(p.cur)
}

// makeSQLValueFunction consumes the keyword and builds the node.
func (p *Parser) makeSQLValueFunction(op ast.SQLValueFunctionOp, start ast.Span) (ast.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	svf := &ast.SQLValueFunction{Op: op}
	svf.Tag = ast.T_SQLValueFunction
	svf.SetSpan(p.spanFrom(start))
	return svf, nil
}

// parseParenExprList parses the keyword's "( expr, ... )" argument list,
// with the keyword itself still current.
func (p *Parser) parseParenExprList() ([]ast.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	args, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	return args, nil
}

// parseArrayLiteral parses ARRAY[...] including nested arrays.
func (p *Parser) parseArrayLiteral(start ast.Span) (ast.Node, error) {
	if _, err := p.expect(TokenType('[')); err != nil {
		return nil, err
	}
	var elems []ast.Node
	if p.cur.Type != TokenType(']') {
		for {
			var elem ast.Node
			var err error
			if p.cur.Type == TokenType('[') {
				inner := p.cur.Span
				elem, err = p.parseArrayLiteral(inner)
			} else {
				elem, err = p.parseExprDefault()
			}
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			ok, err := p.accept(TokenType(','))
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
		}
	}
	if _, err := p.expect(TokenType(']')); err != nil {
		return nil, err
	}
	arr := &ast.ArrayExpr{Elements: elems}
	arr.Tag = ast.T_ArrayExpr
	arr.SetSpan(p.spanFrom(start))
	return arr, nil
}

// parseCaseExpr parses CASE [arg] WHEN ... THEN ... [ELSE ...] END.
func (p *Parser) parseCaseExpr() (ast.Node, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // CASE
		return nil, err
	}
	ce := &ast.CaseExpr{}
	ce.Tag = ast.T_CaseExpr

	if p.cur.Type != WHEN {
		arg, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		ce.Arg = arg
	}
	for p.cur.Type == WHEN {
		wstart := p.cur.Span
		if err := p.next(); err != nil {
			return nil, err
		}
		cond, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(THEN); err != nil {
			return nil, err
		}
		result, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		w := &ast.CaseWhen{Expr: cond, Result: result}
		w.Tag = ast.T_CaseWhen
		w.SetSpan(p.spanFrom(wstart))
		ce.Args = append(ce.Args, w)
	}
	if len(ce.Args) == 0 {
		return nil, syntaxError(p.cur)
	}
	if ok, err := p.accept(ELSE); err != nil {
		return nil, err
	} else if ok {
		def, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		ce.Defresult = def
	}
	if _, err := p.expect(END_P); err != nil {
		return nil, err
	}
	ce.SetSpan(p.spanFrom(start))
	return ce, nil
}

// parseExtract parses EXTRACT(field FROM expr) into a date_part call.
func (p *Parser) parseExtract(start ast.Span) (ast.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	var field string
	if p.cur.Type == SCONST {
		field = p.cur.Value.Str
		if err := p.next(); err != nil {
			return nil, err
		}
	} else {
		name, err := p.colLabel()
		if err != nil {
			return nil, err
		}
		field = name
	}
	if _, err := p.expect(FROM); err != nil {
		return nil, err
	}
	arg, err := p.parseExprDefault()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	span := p.spanFrom(start)
	fieldConst := ast.NewA_Const(ast.NewString(field), span)
	return ast.NewFuncCall([]string{"date_part"}, []ast.Node{fieldConst, arg}, span), nil
}

// parsePosition parses POSITION(needle IN haystack) into position(hay, ndl).
func (p *Parser) parsePosition(start ast.Span) (ast.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	needle, err := p.parseExpr(precLike + 1)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(IN_P); err != nil {
		return nil, err
	}
	haystack, err := p.parseExpr(precLike + 1)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	span := p.spanFrom(start)
	return ast.NewFuncCall([]string{"position"}, []ast.Node{haystack, needle}, span), nil
}

// parseSubstring parses both the comma form and the FROM/FOR form.
func (p *Parser) parseSubstring(start ast.Span) (ast.Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType('(')); err != nil {
		return nil, err
	}
	args := []ast.Node{}
	first, err := p.parseExprDefault()
	if err != nil {
		return nil, err
	}
	args = append(args, first)
	switch p.cur.Type {
	case TokenType(','):
		rest, err := func() ([]ast.Node, error) {
			if err := p.next(); err != nil {
				return nil, err
			}
			return p.parseExprList()
		}()
		if err != nil {
			return nil, err
		}
		args = append(args, rest...)
	case FROM:
		if err := p.next(); err != nil {
			return nil, err
		}
		from, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		args = append(args, from)
		if ok, err := p.accept(FOR); err != nil {
			return nil, err
		} else if ok {
			count, err := p.parseExprDefault()
			if err != nil {
				return nil, err
			}
			args = append(args, count)
		}
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	return ast.NewFuncCall([]string{"substring"}, args, p.spanFrom(start)), nil
}

// parseConstTypeCast handles AexprConst forms where a type keyword prefixes
// a string literal, such as interval '1 day' or timestamp '2024-01-01'.
// When no string literal follows, the keyword falls back to a column
// reference if the bare spelling allows it.
func (p *Parser) parseConstTypeCast(start ast.Span) (ast.Node, error) {
	cp := p.checkpointableTypeKeyword()
	tn, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == SCONST {
		lit := p.cur
		if err := p.next(); err != nil {
			return nil, err
		}
		c := ast.NewA_Const(ast.NewString(lit.Value.Str), lit.Span)
		return ast.NewTypeCast(c, tn, p.spanFrom(start)), nil
	}
	// No literal: only a bare column-name spelling can stand alone.
	if cp != "" && len(tn.Typmods) == 0 && len(tn.ArrayBounds) == 0 {
		cr := ast.NewColumnRef(cp)
		cr.SetSpan(p.spanFrom(start))
		return cr, nil
	}
	return nil, syntaxError(p.cur)
}

// checkpointableTypeKeyword returns the bare spelling usable as a column
// reference for the current type keyword, "" when there is none.
func (p *Parser) checkpointableTypeKeyword() string {
	if kw := keywordFor(p.cur.Type); kw != nil && kw.Category == ColNameKeyword {
		return kw.Name
	}
	return ""
}

// parseColumnRefOrFuncCall parses qualified names and decides between a
// column reference, a function call, and the "typename 'literal'" constant.
func (p *Parser) parseColumnRefOrFuncCall(start ast.Span) (ast.Node, error) {
	first, err := p.colId()
	if err != nil {
		return nil, err
	}
	fields := []ast.Node{ast.NewString(first)}
	names := []string{first}
	sawStar := false

	for p.cur.Type == TokenType('.') && !sawStar {
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.cur.Type == TokenType('*') {
			if err := p.next(); err != nil {
				return nil, err
			}
			fields = append(fields, ast.NewA_Star())
			sawStar = true
			break
		}
		name, err := p.colLabel()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.NewString(name))
		names = append(names, name)
	}

	if !sawStar {
		if p.cur.Type == TokenType('(') {
			return p.parseFuncCall(names, start)
		}
		if p.cur.Type == SCONST {
			// AexprConst: func_name Sconst, e.g. date '2024-01-01'.
			lit := p.cur
			if err := p.next(); err != nil {
				return nil, err
			}
			tn := ast.NewTypeName(names, p.spanFrom(start))
			c := ast.NewA_Const(ast.NewString(lit.Value.Str), lit.Span)
			return ast.NewTypeCast(c, tn, p.spanFrom(start)), nil
		}
	}

	cr := &ast.ColumnRef{Fields: fields}
	cr.Tag = ast.T_ColumnRef
	cr.SetSpan(p.spanFrom(start))
	return cr, nil
}

// parseFuncCall parses the argument list and trailing clauses of a function
// call whose name has been consumed; cur is '('.
func (p *Parser) parseFuncCall(names []string, start ast.Span) (ast.Node, error) {
	if err := p.next(); err != nil { // '('
		return nil, err
	}
	fc := ast.NewFuncCall(names, nil, ast.Span{})

	switch {
	case p.cur.Type == TokenType(')'):
		if err := p.next(); err != nil {
			return nil, err
		}
	case p.cur.Type == TokenType('*'):
		if err := p.next(); err != nil {
			return nil, err
		}
		fc.AggStar = true
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
	default:
		if ok, err := p.accept(DISTINCT); err != nil {
			return nil, err
		} else if ok {
			fc.AggDistinct = true
		} else if _, err := p.accept(ALL); err != nil {
			return nil, err
		}
		for {
			arg, err := p.parseFuncArg(fc)
			if err != nil {
				return nil, err
			}
			fc.Args = append(fc.Args, arg)
			ok, err := p.accept(TokenType(','))
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
		}
		if p.cur.Type == ORDER {
			sorts, err := p.parseOrderByClause()
			if err != nil {
				return nil, err
			}
			fc.AggOrder = sorts
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
	}

	if ok, err := p.accept(FILTER); err != nil {
		return nil, err
	} else if ok {
		if _, err := p.expect(TokenType('(')); err != nil {
			return nil, err
		}
		if _, err := p.expect(WHERE); err != nil {
			return nil, err
		}
		filter, err := p.parseExprDefault()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		fc.AggFilter = filter
	}

	if ok, err := p.accept(OVER); err != nil {
		return nil, err
	} else if ok {
		if p.cur.Type == TokenType('(') {
			wd, err := p.parseWindowSpec("")
			if err != nil {
				return nil, err
			}
			fc.Over = wd
		} else {
			refname, err := p.colId()
			if err != nil {
				return nil, err
			}
			wd := &ast.WindowDef{Refname: refname}
			wd.Tag = ast.T_WindowDef
			wd.SetSpan(p.last.Span)
			fc.Over = wd
		}
	}

	fc.SetSpan(p.spanFrom(start))
	return fc, nil
}

// parseFuncArg parses one function argument: a plain expression, VARIADIC
// expr, or the named form "name => expr" (":=" is accepted as well).
func (p *Parser) parseFuncArg(fc *ast.FuncCall) (ast.Node, error) {
	if ok, err := p.accept(VARIADIC); err != nil {
		return nil, err
	} else if ok {
		fc.FuncVariadic = true
		return p.parseExprDefault()
	}

	if p.cur.Type == IDENT || keywordFor(p.cur.Type) != nil {
		la, err := p.peek()
		if err != nil {
			return nil, err
		}
		if la.Type == EQUALS_GREATER || la.Type == COLON_EQUALS {
			start := p.cur.Span
			name, err := p.nonReservedWord()
			if err != nil {
				return nil, err
			}
			if err := p.next(); err != nil { // => or :=
				return nil, err
			}
			val, err := p.parseExprDefault()
			if err != nil {
				return nil, err
			}
			na := &ast.NamedArgExpr{Arg: val, Name: name}
			na.Tag = ast.T_NamedArgExpr
			na.SetSpan(p.spanFrom(start))
			return na, nil
		}
	}
	return p.parseExprDefault()
}
