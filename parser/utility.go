/*
 * Utility statements: transaction control, SET/RESET/SHOW, EXPLAIN, COPY,
 * LISTEN/NOTIFY, VACUUM/ANALYZE, GRANT/REVOKE and prepared statements.
 */

package parser

import (
	"strings"

	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// parseTransactionStmt parses the transaction control commands.
func (p *Parser) parseTransactionStmt() (ast.Stmt, error) {
	start := p.cur.Span
	stmt := &ast.TransactionStmt{}
	stmt.Tag = ast.T_TransactionStmt

	switch p.cur.Type {
	case BEGIN_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		stmt.Kind = ast.TRANS_STMT_BEGIN
		if err := p.acceptWorkOrTransaction(); err != nil {
			return nil, err
		}
		opts, err := p.parseTransactionModes()
		if err != nil {
			return nil, err
		}
		stmt.Options = opts

	case START:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TRANSACTION); err != nil {
			return nil, err
		}
		stmt.Kind = ast.TRANS_STMT_START
		opts, err := p.parseTransactionModes()
		if err != nil {
			return nil, err
		}
		stmt.Options = opts

	case COMMIT, END_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		stmt.Kind = ast.TRANS_STMT_COMMIT
		if err := p.acceptWorkOrTransaction(); err != nil {
			return nil, err
		}
		chain, err := p.parseOptChain()
		if err != nil {
			return nil, err
		}
		stmt.Chain = chain

	case ROLLBACK, ABORT_P:
		isRollback := p.cur.Type == ROLLBACK
		if err := p.next(); err != nil {
			return nil, err
		}
		if err := p.acceptWorkOrTransaction(); err != nil {
			return nil, err
		}
		if isRollback && p.cur.Type == TO {
			if err := p.next(); err != nil {
				return nil, err
			}
			if _, err := p.accept(SAVEPOINT); err != nil {
				return nil, err
			}
			name, err := p.colId()
			if err != nil {
				return nil, err
			}
			stmt.Kind = ast.TRANS_STMT_ROLLBACK_TO
			stmt.SavepointName = name
			break
		}
		stmt.Kind = ast.TRANS_STMT_ROLLBACK
		chain, err := p.parseOptChain()
		if err != nil {
			return nil, err
		}
		stmt.Chain = chain

	case SAVEPOINT:
		if err := p.next(); err != nil {
			return nil, err
		}
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		stmt.Kind = ast.TRANS_STMT_SAVEPOINT
		stmt.SavepointName = name

	case RELEASE:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.accept(SAVEPOINT); err != nil {
			return nil, err
		}
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		stmt.Kind = ast.TRANS_STMT_RELEASE
		stmt.SavepointName = name

	default:
		return nil, syntaxError(p.cur)
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// acceptWorkOrTransaction consumes an optional WORK or TRANSACTION noise word.
func (p *Parser) acceptWorkOrTransaction() error {
	switch p.cur.Type {
	case WORK, TRANSACTION:
		return p.next()
	}
	return nil
}

// parseOptChain parses AND [NO] CHAIN, returning whether the transaction
// chains.
func (p *Parser) parseOptChain() (bool, error) {
	if p.cur.Type != AND {
		return false, nil
	}
	if err := p.next(); err != nil {
		return false, err
	}
	if ok, err := p.accept(NO); err != nil {
		return false, err
	} else if ok {
		if _, err := p.expect(CHAIN); err != nil {
			return false, err
		}
		return false, nil
	}
	if _, err := p.expect(CHAIN); err != nil {
		return false, err
	}
	return true, nil
}

// parseTransactionModes parses the mode list of BEGIN and START TRANSACTION.
func (p *Parser) parseTransactionModes() ([]*ast.DefElem, error) {
	var opts []*ast.DefElem
	for {
		start := p.cur.Span
		switch p.cur.Type {
		case ISOLATION:
			if err := p.next(); err != nil {
				return nil, err
			}
			if _, err := p.expect(LEVEL); err != nil {
				return nil, err
			}
			level, err := p.parseIsolationLevel()
			if err != nil {
				return nil, err
			}
			opts = append(opts, ast.NewDefElem("transaction_isolation", ast.NewString(level), p.spanFrom(start)))

		case READ:
			if err := p.next(); err != nil {
				return nil, err
			}
			switch p.cur.Type {
			case ONLY:
				opts = append(opts, ast.NewDefElem("transaction_read_only", ast.NewBoolean(true), p.spanFrom(start)))
			case WRITE:
				opts = append(opts, ast.NewDefElem("transaction_read_only", ast.NewBoolean(false), p.spanFrom(start)))
			default:
				return nil, syntaxError(p.cur)
			}
			if err := p.next(); err != nil {
				return nil, err
			}

		case DEFERRABLE:
			if err := p.next(); err != nil {
				return nil, err
			}
			opts = append(opts, ast.NewDefElem("transaction_deferrable", ast.NewBoolean(true), p.spanFrom(start)))

		case NOT:
			if err := p.next(); err != nil {
				return nil, err
			}
			if _, err := p.expect(DEFERRABLE); err != nil {
				return nil, err
			}
			opts = append(opts, ast.NewDefElem("transaction_deferrable", ast.NewBoolean(false), p.spanFrom(start)))

		default:
			return opts, nil
		}
		// Modes may be separated by commas.
		if _, err := p.accept(TokenType(',')); err != nil {
			return nil, err
		}
	}
}

// parseIsolationLevel parses the level words after ISOLATION LEVEL.
func (p *Parser) parseIsolationLevel() (string, error) {
	switch p.cur.Type {
	case READ:
		if err := p.next(); err != nil {
			return "", err
		}
		switch p.cur.Type {
		case COMMITTED:
			return "read committed", p.next()
		case UNCOMMITTED:
			return "read uncommitted", p.next()
		}
		return "", syntaxError(p.cur)
	case REPEATABLE:
		if err := p.next(); err != nil {
			return "", err
		}
		if _, err := p.expect(READ); err != nil {
			return "", err
		}
		return "repeatable read", nil
	case SERIALIZABLE:
		return "serializable", p.next()
	}
	return "", syntaxError(p.cur)
}

// parseSetStmt parses SET [SESSION|LOCAL] and its value forms.
func (p *Parser) parseSetStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // SET
		return nil, err
	}
	stmt := &ast.VariableSetStmt{Kind: ast.VAR_SET_VALUE}
	stmt.Tag = ast.T_VariableSetStmt

	switch p.cur.Type {
	case SESSION:
		if err := p.next(); err != nil {
			return nil, err
		}
	case LOCAL:
		stmt.IsLocal = true
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	switch p.cur.Type {
	case TRANSACTION:
		if err := p.next(); err != nil {
			return nil, err
		}
		opts, err := p.parseTransactionModes()
		if err != nil {
			return nil, err
		}
		if len(opts) == 0 {
			return nil, syntaxError(p.cur)
		}
		stmt.Name = opts[0].Defname
		stmt.Args = []ast.Node{opts[0].Arg}
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil

	case TIME:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(ZONE); err != nil {
			return nil, err
		}
		stmt.Name = "timezone"
		if p.cur.Type == DEFAULT || p.cur.Type == LOCAL {
			stmt.Kind = ast.VAR_SET_DEFAULT
			if err := p.next(); err != nil {
				return nil, err
			}
		} else {
			val, err := p.parseVarValue()
			if err != nil {
				return nil, err
			}
			stmt.Args = []ast.Node{val}
		}
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil

	case NAMES:
		if err := p.next(); err != nil {
			return nil, err
		}
		stmt.Name = "client_encoding"
		if p.cur.Type == SCONST {
			stmt.Args = []ast.Node{ast.NewString(p.cur.Value.Str)}
			if err := p.next(); err != nil {
				return nil, err
			}
		} else {
			stmt.Kind = ast.VAR_SET_DEFAULT
		}
		stmt.SetSpan(p.spanFrom(start))
		return stmt, nil
	}

	name, err := p.parseVarName()
	if err != nil {
		return nil, err
	}
	stmt.Name = name

	switch p.cur.Type {
	case TO:
		if err := p.next(); err != nil {
			return nil, err
		}
	case TokenType('='):
		if err := p.next(); err != nil {
			return nil, err
		}
	default:
		return nil, syntaxError(p.cur)
	}

	if p.cur.Type == DEFAULT {
		if err := p.next(); err != nil {
			return nil, err
		}
		stmt.Kind = ast.VAR_SET_DEFAULT
	} else {
		for {
			val, err := p.parseVarValue()
			if err != nil {
				return nil, err
			}
			stmt.Args = append(stmt.Args, val)
			ok, err := p.accept(TokenType(','))
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
		}
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseVarName parses a possibly dotted configuration parameter name.
func (p *Parser) parseVarName() (string, error) {
	name, err := p.colId()
	if err != nil {
		return "", err
	}
	for p.cur.Type == TokenType('.') {
		if err := p.next(); err != nil {
			return "", err
		}
		part, err := p.colId()
		if err != nil {
			return "", err
		}
		name += "." + part
	}
	return name, nil
}

// parseVarValue parses one SET value: a constant, boolean word or
// identifier.
func (p *Parser) parseVarValue() (ast.Node, error) {
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
	case ON:
		if err := p.next(); err != nil {
			return nil, err
		}
		return ast.NewString("on"), nil
	case TokenType('-'):
		return p.parseSignedNumber()
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

// parseResetStmt parses RESET name and RESET ALL.
func (p *Parser) parseResetStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // RESET
		return nil, err
	}
	stmt := &ast.VariableSetStmt{}
	stmt.Tag = ast.T_VariableSetStmt

	switch p.cur.Type {
	case ALL:
		if err := p.next(); err != nil {
			return nil, err
		}
		stmt.Kind = ast.VAR_RESET_ALL
	case TIME:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(ZONE); err != nil {
			return nil, err
		}
		stmt.Kind = ast.VAR_RESET
		stmt.Name = "timezone"
	default:
		name, err := p.parseVarName()
		if err != nil {
			return nil, err
		}
		stmt.Kind = ast.VAR_RESET
		stmt.Name = name
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseShowStmt parses SHOW name, SHOW ALL and the special spellings.
func (p *Parser) parseShowStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // SHOW
		return nil, err
	}
	stmt := &ast.VariableShowStmt{}
	stmt.Tag = ast.T_VariableShowStmt

	switch p.cur.Type {
	case ALL:
		if err := p.next(); err != nil {
			return nil, err
		}
		stmt.Name = "all"
	case TIME:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(ZONE); err != nil {
			return nil, err
		}
		stmt.Name = "timezone"
	case TRANSACTION:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(ISOLATION); err != nil {
			return nil, err
		}
		if _, err := p.expect(LEVEL); err != nil {
			return nil, err
		}
		stmt.Name = "transaction_isolation"
	case SESSION_USER:
		if err := p.next(); err != nil {
			return nil, err
		}
		stmt.Name = "session_authorization"
	default:
		name, err := p.parseVarName()
		if err != nil {
			return nil, err
		}
		stmt.Name = name
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseExplainStmt parses EXPLAIN with either the parenthesized option list
// or the legacy ANALYZE/VERBOSE prefixes.
func (p *Parser) parseExplainStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // EXPLAIN
		return nil, err
	}
	stmt := &ast.ExplainStmt{}
	stmt.Tag = ast.T_ExplainStmt

	if p.cur.Type == TokenType('(') {
		if err := p.next(); err != nil {
			return nil, err
		}
		for {
			ostart := p.cur.Span
			name, err := p.explainOptionName()
			if err != nil {
				return nil, err
			}
			var arg ast.Node
			if p.cur.Type != TokenType(',') && p.cur.Type != TokenType(')') {
				v, err := p.parseDefArg()
				if err != nil {
					return nil, err
				}
				arg = v
			}
			stmt.Options = append(stmt.Options, ast.NewDefElem(name, arg, p.spanFrom(ostart)))
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
	} else {
		for {
			ostart := p.cur.Span
			switch p.cur.Type {
			case ANALYZE, ANALYSE:
				if err := p.next(); err != nil {
					return nil, err
				}
				stmt.Options = append(stmt.Options, ast.NewDefElem("analyze", nil, p.spanFrom(ostart)))
				continue
			case VERBOSE:
				if err := p.next(); err != nil {
					return nil, err
				}
				stmt.Options = append(stmt.Options, ast.NewDefElem("verbose", nil, p.spanFrom(ostart)))
				continue
			}
			break
		}
	}

	query, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	stmt.Query = query
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// explainOptionName reads one option word inside EXPLAIN ( ... ).
func (p *Parser) explainOptionName() (string, error) {
	switch p.cur.Type {
	case ANALYZE, ANALYSE:
		return "analyze", p.next()
	case VERBOSE:
		return "verbose", p.next()
	}
	return p.colLabel()
}

// parseCopyStmt parses COPY table or query to or from a target.
func (p *Parser) parseCopyStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // COPY
		return nil, err
	}
	stmt := &ast.CopyStmt{}
	stmt.Tag = ast.T_CopyStmt

	if p.cur.Type == TokenType('(') {
		if err := p.next(); err != nil {
			return nil, err
		}
		query, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		stmt.Query = query
	} else {
		rel, err := p.qualifiedName()
		if err != nil {
			return nil, err
		}
		stmt.Relation = rel
		if p.cur.Type == TokenType('(') {
			attlist, err := p.parseParenNameList()
			if err != nil {
				return nil, err
			}
			stmt.Attlist = attlist
		}
	}

	switch p.cur.Type {
	case FROM:
		stmt.IsFrom = true
	case TO:
	default:
		return nil, syntaxError(p.cur)
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	if stmt.IsFrom && stmt.Query != nil {
		return nil, syntaxErrorf(p.cur, "COPY FROM does not support a query source")
	}

	switch p.cur.Type {
	case PROGRAM:
		if err := p.next(); err != nil {
			return nil, err
		}
		tok, err := p.expect(SCONST)
		if err != nil {
			return nil, err
		}
		stmt.IsProgram = true
		stmt.Filename = tok.Value.Str
	case STDIN:
		if !stmt.IsFrom {
			return nil, syntaxError(p.cur)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	case STDOUT:
		if stmt.IsFrom {
			return nil, syntaxError(p.cur)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	case SCONST:
		stmt.Filename = p.cur.Value.Str
		if err := p.next(); err != nil {
			return nil, err
		}
	default:
		return nil, syntaxError(p.cur)
	}

	opts, err := p.parseCopyOptions()
	if err != nil {
		return nil, err
	}
	stmt.Options = opts
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseCopyOptions parses [WITH] ( options ) or the legacy option words.
func (p *Parser) parseCopyOptions() ([]*ast.DefElem, error) {
	if _, err := p.accept(WITH); err != nil {
		return nil, err
	}

	if p.cur.Type == TokenType('(') {
		if err := p.next(); err != nil {
			return nil, err
		}
		var opts []*ast.DefElem
		for {
			start := p.cur.Span
			name, err := p.colLabel()
			if err != nil {
				return nil, err
			}
			var arg ast.Node
			if p.cur.Type != TokenType(',') && p.cur.Type != TokenType(')') {
				v, err := p.parseDefArg()
				if err != nil {
					return nil, err
				}
				arg = v
			}
			opts = append(opts, ast.NewDefElem(strings.ToLower(name), arg, p.spanFrom(start)))
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

	var opts []*ast.DefElem
	for {
		start := p.cur.Span
		switch p.cur.Type {
		case BINARY:
			if err := p.next(); err != nil {
				return nil, err
			}
			opts = append(opts, ast.NewDefElem("format", ast.NewString("binary"), p.spanFrom(start)))
		case CSV:
			if err := p.next(); err != nil {
				return nil, err
			}
			opts = append(opts, ast.NewDefElem("format", ast.NewString("csv"), p.spanFrom(start)))
		case FREEZE:
			if err := p.next(); err != nil {
				return nil, err
			}
			opts = append(opts, ast.NewDefElem("freeze", ast.NewBoolean(true), p.spanFrom(start)))
		case HEADER_P:
			if err := p.next(); err != nil {
				return nil, err
			}
			opts = append(opts, ast.NewDefElem("header", ast.NewBoolean(true), p.spanFrom(start)))
		case DELIMITER:
			if err := p.next(); err != nil {
				return nil, err
			}
			if _, err := p.accept(AS); err != nil {
				return nil, err
			}
			tok, err := p.expect(SCONST)
			if err != nil {
				return nil, err
			}
			opts = append(opts, ast.NewDefElem("delimiter", ast.NewString(tok.Value.Str), p.spanFrom(start)))
		case NULL_P:
			if err := p.next(); err != nil {
				return nil, err
			}
			if _, err := p.accept(AS); err != nil {
				return nil, err
			}
			tok, err := p.expect(SCONST)
			if err != nil {
				return nil, err
			}
			opts = append(opts, ast.NewDefElem("null", ast.NewString(tok.Value.Str), p.spanFrom(start)))
		case QUOTE:
			if err := p.next(); err != nil {
				return nil, err
			}
			if _, err := p.accept(AS); err != nil {
				return nil, err
			}
			tok, err := p.expect(SCONST)
			if err != nil {
				return nil, err
			}
			opts = append(opts, ast.NewDefElem("quote", ast.NewString(tok.Value.Str), p.spanFrom(start)))
		case ESCAPE:
			if err := p.next(); err != nil {
				return nil, err
			}
			if _, err := p.accept(AS); err != nil {
				return nil, err
			}
			tok, err := p.expect(SCONST)
			if err != nil {
				return nil, err
			}
			opts = append(opts, ast.NewDefElem("escape", ast.NewString(tok.Value.Str), p.spanFrom(start)))
		default:
			return opts, nil
		}
	}
}

// parseListenStmt parses LISTEN channel.
func (p *Parser) parseListenStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // LISTEN
		return nil, err
	}
	name, err := p.colId()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ListenStmt{Conditionname: name}
	stmt.Tag = ast.T_ListenStmt
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseUnlistenStmt parses UNLISTEN channel and UNLISTEN *.
func (p *Parser) parseUnlistenStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // UNLISTEN
		return nil, err
	}
	stmt := &ast.UnlistenStmt{}
	stmt.Tag = ast.T_UnlistenStmt
	// UNLISTEN * leaves Conditionname empty, the wildcard form.
	if p.cur.Type == TokenType('*') {
		if err := p.next(); err != nil {
			return nil, err
		}
	} else {
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		stmt.Conditionname = name
	}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseNotifyStmt parses NOTIFY channel with optional payload.
func (p *Parser) parseNotifyStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // NOTIFY
		return nil, err
	}
	name, err := p.colId()
	if err != nil {
		return nil, err
	}
	stmt := &ast.NotifyStmt{Conditionname: name}
	stmt.Tag = ast.T_NotifyStmt
	if ok, err := p.accept(TokenType(',')); err != nil {
		return nil, err
	} else if ok {
		tok, err := p.expect(SCONST)
		if err != nil {
			return nil, err
		}
		stmt.Payload = tok.Value.Str
		stmt.HasPayload = true
	}
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseVacuumStmt parses VACUUM and ANALYZE in both the parenthesized and
// the legacy option styles.
func (p *Parser) parseVacuumStmt() (ast.Stmt, error) {
	start := p.cur.Span
	isVacuum := p.cur.Type == VACUUM
	if err := p.next(); err != nil {
		return nil, err
	}
	stmt := &ast.VacuumStmt{IsVacuumcmd: isVacuum}
	stmt.Tag = ast.T_VacuumStmt

	if p.cur.Type == TokenType('(') {
		if err := p.next(); err != nil {
			return nil, err
		}
		for {
			ostart := p.cur.Span
			name, err := p.vacuumOptionName()
			if err != nil {
				return nil, err
			}
			var arg ast.Node
			if p.cur.Type != TokenType(',') && p.cur.Type != TokenType(')') {
				v, err := p.parseDefArg()
				if err != nil {
					return nil, err
				}
				arg = v
			}
			stmt.Options = append(stmt.Options, ast.NewDefElem(name, arg, p.spanFrom(ostart)))
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
	} else if isVacuum {
		for {
			ostart := p.cur.Span
			switch p.cur.Type {
			case FULL:
				if err := p.next(); err != nil {
					return nil, err
				}
				stmt.Options = append(stmt.Options, ast.NewDefElem("full", nil, p.spanFrom(ostart)))
				continue
			case FREEZE:
				if err := p.next(); err != nil {
					return nil, err
				}
				stmt.Options = append(stmt.Options, ast.NewDefElem("freeze", nil, p.spanFrom(ostart)))
				continue
			case VERBOSE:
				if err := p.next(); err != nil {
					return nil, err
				}
				stmt.Options = append(stmt.Options, ast.NewDefElem("verbose", nil, p.spanFrom(ostart)))
				continue
			case ANALYZE, ANALYSE:
				if err := p.next(); err != nil {
					return nil, err
				}
				stmt.Options = append(stmt.Options, ast.NewDefElem("analyze", nil, p.spanFrom(ostart)))
				continue
			}
			break
		}
	} else if p.cur.Type == VERBOSE {
		ostart := p.cur.Span
		if err := p.next(); err != nil {
			return nil, err
		}
		stmt.Options = append(stmt.Options, ast.NewDefElem("verbose", nil, p.spanFrom(ostart)))
	}

	for p.isIdentLike() {
		rel, err := p.parseVacuumRelation()
		if err != nil {
			return nil, err
		}
		stmt.Rels = append(stmt.Rels, rel)
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

// vacuumOptionName reads one option word inside VACUUM ( ... ).
func (p *Parser) vacuumOptionName() (string, error) {
	switch p.cur.Type {
	case FULL:
		return "full", p.next()
	case FREEZE:
		return "freeze", p.next()
	case VERBOSE:
		return "verbose", p.next()
	case ANALYZE, ANALYSE:
		return "analyze", p.next()
	}
	name, err := p.colLabel()
	if err != nil {
		return "", err
	}
	return strings.ToLower(name), nil
}

// parseVacuumRelation parses one VACUUM target with optional column list.
func (p *Parser) parseVacuumRelation() (*ast.VacuumRelation, error) {
	start := p.cur.Span
	rel, err := p.qualifiedName()
	if err != nil {
		return nil, err
	}
	vr := &ast.VacuumRelation{Relation: rel}
	vr.Tag = ast.T_VacuumRelation
	if p.cur.Type == TokenType('(') {
		cols, err := p.parseParenNameList()
		if err != nil {
			return nil, err
		}
		vr.VaCols = cols
	}
	vr.SetSpan(p.spanFrom(start))
	return vr, nil
}

// parseGrantStmt parses GRANT and REVOKE over the supported object classes.
func (p *Parser) parseGrantStmt() (ast.Stmt, error) {
	start := p.cur.Span
	isGrant := p.cur.Type == GRANT
	if err := p.next(); err != nil {
		return nil, err
	}
	stmt := &ast.GrantStmt{IsGrant: isGrant}
	stmt.Tag = ast.T_GrantStmt

	if !isGrant && p.cur.Type == GRANT {
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(OPTION); err != nil {
			return nil, err
		}
		if _, err := p.expect(FOR); err != nil {
			return nil, err
		}
		stmt.GrantOption = true
	}

	privs, err := p.parsePrivileges()
	if err != nil {
		return nil, err
	}
	stmt.Privileges = privs

	if _, err := p.expect(ON); err != nil {
		return nil, err
	}
	if err := p.parseGrantTarget(stmt); err != nil {
		return nil, err
	}

	if isGrant {
		if _, err := p.expect(TO); err != nil {
			return nil, err
		}
	} else {
		if _, err := p.expect(FROM); err != nil {
			return nil, err
		}
	}
	for {
		role, err := p.parseRoleSpec()
		if err != nil {
			return nil, err
		}
		stmt.Grantees = append(stmt.Grantees, role)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}

	if isGrant && p.cur.Type == WITH {
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(GRANT); err != nil {
			return nil, err
		}
		if _, err := p.expect(OPTION); err != nil {
			return nil, err
		}
		stmt.GrantOption = true
	}
	if !isGrant {
		behavior, err := p.parseOptDropBehavior()
		if err != nil {
			return nil, err
		}
		stmt.Behavior = behavior
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parsePrivileges parses the privilege list; nil means ALL PRIVILEGES.
func (p *Parser) parsePrivileges() ([]*ast.AccessPriv, error) {
	if p.cur.Type == ALL {
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.accept(PRIVILEGES); err != nil {
			return nil, err
		}
		return nil, nil
	}
	var privs []*ast.AccessPriv
	for {
		priv, err := p.parseAccessPriv()
		if err != nil {
			return nil, err
		}
		privs = append(privs, priv)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
	}
	return privs, nil
}

// parseAccessPriv parses one privilege name with its optional column list.
func (p *Parser) parseAccessPriv() (*ast.AccessPriv, error) {
	start := p.cur.Span
	priv := &ast.AccessPriv{}
	priv.Tag = ast.T_AccessPriv

	switch p.cur.Type {
	case SELECT:
		priv.PrivName = "select"
	case INSERT:
		priv.PrivName = "insert"
	case UPDATE:
		priv.PrivName = "update"
	case DELETE_P:
		priv.PrivName = "delete"
	case TRUNCATE:
		priv.PrivName = "truncate"
	case REFERENCES:
		priv.PrivName = "references"
	case TRIGGER:
		priv.PrivName = "trigger"
	case CREATE:
		priv.PrivName = "create"
	default:
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		priv.PrivName = strings.ToLower(name)
		if p.cur.Type == TokenType('(') {
			cols, err := p.parseParenNameList()
			if err != nil {
				return nil, err
			}
			priv.Cols = cols
		}
		priv.SetSpan(p.spanFrom(start))
		return priv, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.cur.Type == TokenType('(') {
		cols, err := p.parseParenNameList()
		if err != nil {
			return nil, err
		}
		priv.Cols = cols
	}
	priv.SetSpan(p.spanFrom(start))
	return priv, nil
}

// parseGrantTarget parses the object clause after ON.
func (p *Parser) parseGrantTarget(stmt *ast.GrantStmt) error {
	switch p.cur.Type {
	case ALL:
		if err := p.next(); err != nil {
			return err
		}
		switch p.cur.Type {
		case TABLES:
			stmt.Objtype = ast.OBJECT_TABLE
		case SEQUENCES:
			stmt.Objtype = ast.OBJECT_SEQUENCE
		case FUNCTIONS:
			stmt.Objtype = ast.OBJECT_FUNCTION
		default:
			return syntaxError(p.cur)
		}
		if err := p.next(); err != nil {
			return err
		}
		if _, err := p.expect(IN_P); err != nil {
			return err
		}
		if _, err := p.expect(SCHEMA); err != nil {
			return err
		}
		stmt.Targtype = ast.ACL_TARGET_ALL_IN_SCHEMA
		return p.parseGrantNameObjects(stmt)

	case TABLE:
		if err := p.next(); err != nil {
			return err
		}
		stmt.Objtype = ast.OBJECT_TABLE
		return p.parseGrantRelObjects(stmt)

	case SEQUENCE:
		if err := p.next(); err != nil {
			return err
		}
		stmt.Objtype = ast.OBJECT_SEQUENCE
		return p.parseGrantRelObjects(stmt)

	case SCHEMA:
		if err := p.next(); err != nil {
			return err
		}
		stmt.Objtype = ast.OBJECT_SCHEMA
		return p.parseGrantNameObjects(stmt)

	case DATABASE:
		if err := p.next(); err != nil {
			return err
		}
		stmt.Objtype = ast.OBJECT_DATABASE
		return p.parseGrantNameObjects(stmt)

	case FUNCTION:
		if err := p.next(); err != nil {
			return err
		}
		stmt.Objtype = ast.OBJECT_FUNCTION
		for {
			obj, err := p.parseFunctionWithArgs()
			if err != nil {
				return err
			}
			stmt.Objects = append(stmt.Objects, obj)
			ok, err := p.accept(TokenType(','))
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}
	}

	stmt.Objtype = ast.OBJECT_TABLE
	return p.parseGrantRelObjects(stmt)
}

// parseGrantRelObjects parses a qualified-name object list.
func (p *Parser) parseGrantRelObjects(stmt *ast.GrantStmt) error {
	rels, err := p.qualifiedNameList()
	if err != nil {
		return err
	}
	for _, rel := range rels {
		stmt.Objects = append(stmt.Objects, rel)
	}
	return nil
}

// parseGrantNameObjects parses a bare name list, kept as RangeVars so the
// names render as identifiers.
func (p *Parser) parseGrantNameObjects(stmt *ast.GrantStmt) error {
	for {
		start := p.cur.Span
		name, err := p.colId()
		if err != nil {
			return err
		}
		stmt.Objects = append(stmt.Objects, ast.NewRangeVar("", "", name, p.spanFrom(start)))
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// parseFunctionWithArgs parses "name [( argtypes )]".
func (p *Parser) parseFunctionWithArgs() (*ast.ObjectWithArgs, error) {
	start := p.cur.Span
	name, err := p.anyName()
	if err != nil {
		return nil, err
	}
	obj := &ast.ObjectWithArgs{Objname: name, ArgsUnspecified: true}
	obj.Tag = ast.T_ObjectWithArgs

	if p.cur.Type == TokenType('(') {
		if err := p.next(); err != nil {
			return nil, err
		}
		obj.ArgsUnspecified = false
		if p.cur.Type != TokenType(')') {
			for {
				typ, err := p.parseTypeName()
				if err != nil {
					return nil, err
				}
				obj.Objargs = append(obj.Objargs, typ)
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
	}

	obj.SetSpan(p.spanFrom(start))
	return obj, nil
}

// parsePrepareStmt parses PREPARE name [(types)] AS statement.
func (p *Parser) parsePrepareStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // PREPARE
		return nil, err
	}
	name, err := p.colId()
	if err != nil {
		return nil, err
	}
	stmt := &ast.PrepareStmt{Name: name}
	stmt.Tag = ast.T_PrepareStmt

	if p.cur.Type == TokenType('(') {
		if err := p.next(); err != nil {
			return nil, err
		}
		for {
			typ, err := p.parseTypeName()
			if err != nil {
				return nil, err
			}
			stmt.Argtypes = append(stmt.Argtypes, typ)
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

	if _, err := p.expect(AS); err != nil {
		return nil, err
	}
	query, err := p.parseStmt()
	if err != nil {
		return nil, err
	}
	stmt.Query = query
	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseExecuteStmt parses EXECUTE name [(params)].
func (p *Parser) parseExecuteStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // EXECUTE
		return nil, err
	}
	name, err := p.colId()
	if err != nil {
		return nil, err
	}
	stmt := &ast.ExecuteStmt{Name: name}
	stmt.Tag = ast.T_ExecuteStmt

	if p.cur.Type == TokenType('(') {
		if err := p.next(); err != nil {
			return nil, err
		}
		params, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenType(')')); err != nil {
			return nil, err
		}
		stmt.Params = params
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}

// parseDeallocateStmt parses DEALLOCATE [PREPARE] name and DEALLOCATE ALL.
func (p *Parser) parseDeallocateStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.next(); err != nil { // DEALLOCATE
		return nil, err
	}
	if _, err := p.accept(PREPARE); err != nil {
		return nil, err
	}
	stmt := &ast.DeallocateStmt{}
	stmt.Tag = ast.T_DeallocateStmt

	if ok, err := p.accept(ALL); err != nil {
		return nil, err
	} else if !ok {
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		stmt.Name = name
	}

	stmt.SetSpan(p.spanFrom(start))
	return stmt, nil
}
