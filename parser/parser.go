/*
 * Parser entry points and shared machinery: the token feed with its
 * lookahead substitutions, identifier classification by keyword category,
 * the nesting depth guard and span bookkeeping. Statement dispatch lives
 * here; the per-statement productions are in select.go, dml.go, ddl.go and
 * utility.go, the expression grammar in expr.go.
 */

package parser

import (
	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// DefaultMaxDepth is the nesting depth limit applied when Options does not
// set one. It bounds recursion on pathological inputs such as thousands of
// nested parentheses.
const DefaultMaxDepth = 1000

// Options configures a Parser.
type Options struct {
	// MaxDepth is the maximum expression and statement nesting depth.
	// Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parser parses SQL text into AST statements. A Parser is not safe for
// concurrent use; each Parse call resets its state.
type Parser struct {
	opts Options

	lex      *Lexer
	cur      Token
	queue    []Token // tokens fetched ahead of cur
	last     Token   // most recently consumed token
	depth    int
	maxDepth int
}

// NewParser creates a parser with the given options.
func NewParser(opts Options) *Parser {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Parser{opts: opts}
}

// Parse parses SQL text with default options. Multiple semicolon-separated
// statements produce one AST node each, in source order; input containing
// only whitespace and comments produces an empty slice.
func Parse(sql string) ([]ast.Stmt, error) {
	return NewParser(Options{}).Parse(sql)
}

// Parse parses SQL text into a list of statements.
func (p *Parser) Parse(sql string) ([]ast.Stmt, error) {
	p.lex = NewLexer(sql)
	p.queue = p.queue[:0]
	p.depth = 0
	p.maxDepth = p.opts.MaxDepth
	if err := p.next(); err != nil {
		return nil, err
	}

	var stmts []ast.Stmt
	for {
		for p.cur.Type == TokenType(';') {
			if err := p.next(); err != nil {
				return nil, err
			}
		}
		if p.cur.Type == EOF {
			return stmts, nil
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if p.cur.Type != TokenType(';') && p.cur.Type != EOF {
			return nil, syntaxError(p.cur)
		}
	}
}

// fetch returns the next raw token, taking queued lookahead first.
func (p *Parser) fetch() (Token, error) {
	if len(p.queue) > 0 {
		t := p.queue[0]
		p.queue = p.queue[1:]
		return t, nil
	}
	return p.lex.NextToken()
}

// next advances cur by one token, applying the lookahead substitutions the
// grammar needs to stay one-token predictive: NOT, NULLS and WITH become
// NOT_LA, NULLS_LA and WITH_LA when the following token demands it.
func (p *Parser) next() error {
	p.last = p.cur
	t, err := p.fetch()
	if err != nil {
		return err
	}

	switch t.Type {
	case NOT, NULLS_P, WITH:
		la, err := p.fetch()
		if err != nil {
			return err
		}
		p.queue = append([]Token{la}, p.queue...)
		switch t.Type {
		case NOT:
			switch la.Type {
			case BETWEEN, IN_P, LIKE, ILIKE, SIMILAR:
				t.Type = NOT_LA
			}
		case NULLS_P:
			switch la.Type {
			case FIRST_P, LAST_P:
				t.Type = NULLS_LA
			}
		case WITH:
			switch la.Type {
			case TIME, ORDINALITY:
				t.Type = WITH_LA
			}
		}
	}

	p.cur = t
	return nil
}

// peek returns the token after cur without consuming anything.
func (p *Parser) peek() (Token, error) {
	if len(p.queue) == 0 {
		t, err := p.lex.NextToken()
		if err != nil {
			return Token{}, err
		}
		p.queue = append(p.queue, t)
	}
	return p.queue[0], nil
}

// accept consumes cur if it has the given type.
func (p *Parser) accept(typ TokenType) (bool, error) {
	if p.cur.Type != typ {
		return false, nil
	}
	return true, p.next()
}

// expect consumes cur if it has the given type and fails otherwise.
func (p *Parser) expect(typ TokenType) (Token, error) {
	if p.cur.Type != typ {
		return Token{}, syntaxError(p.cur)
	}
	tok := p.cur
	return tok, p.next()
}

// enter pushes one nesting level, failing when the configured depth limit
// is exceeded.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.maxDepth {
		return depthError(p.cur)
	}
	return nil
}

func (p *Parser) leave() { p.depth-- }

// spanFrom builds the span from a production's first token through the most
// recently consumed one.
func (p *Parser) spanFrom(start ast.Span) ast.Span {
	return start.Union(p.last.Span)
}

// colId accepts an identifier in column/table-name position: IDENT, any
// unreserved keyword, or a column-name keyword.
func (p *Parser) colId() (string, error) {
	tok := p.cur
	if tok.Type == IDENT {
		return tok.Value.Str, p.next()
	}
	if kw := keywordFor(tok.Type); kw != nil {
		switch kw.Category {
		case UnreservedKeyword, ColNameKeyword:
			return kw.Name, p.next()
		}
		return "", reservedIdentError(tok, kw)
	}
	return "", syntaxError(tok)
}

// typeFuncName accepts an identifier in type/function-name position: IDENT,
// any unreserved keyword, or a type/function-name keyword.
func (p *Parser) typeFuncName() (string, error) {
	tok := p.cur
	if tok.Type == IDENT {
		return tok.Value.Str, p.next()
	}
	if kw := keywordFor(tok.Type); kw != nil {
		switch kw.Category {
		case UnreservedKeyword, TypeFuncNameKeyword:
			return kw.Name, p.next()
		}
		return "", reservedIdentError(tok, kw)
	}
	return "", syntaxError(tok)
}

// colLabel accepts an identifier in label position (after AS): IDENT or any
// keyword at all.
func (p *Parser) colLabel() (string, error) {
	tok := p.cur
	if tok.Type == IDENT {
		return tok.Value.Str, p.next()
	}
	if kw := keywordFor(tok.Type); kw != nil {
		return kw.Name, p.next()
	}
	return "", syntaxError(tok)
}

// nonReservedWord accepts IDENT or any keyword that is not fully reserved.
func (p *Parser) nonReservedWord() (string, error) {
	tok := p.cur
	if tok.Type == IDENT {
		return tok.Value.Str, p.next()
	}
	if kw := keywordFor(tok.Type); kw != nil {
		if kw.Category != ReservedKeyword {
			return kw.Name, p.next()
		}
		return "", reservedIdentError(tok, kw)
	}
	return "", syntaxError(tok)
}

// keywordFor maps a keyword token type back to its keyword entry, nil for
// non-keyword tokens.
func keywordFor(typ TokenType) *KeywordInfo {
	return keywordByToken[typ]
}

// reservedIdentError names the keyword that cannot stand as an identifier.
func reservedIdentError(tok Token, kw *KeywordInfo) *ParseError {
	return syntaxErrorf(tok, "reserved keyword %q cannot be used as an identifier", kw.Name)
}

// isIdentLike reports whether cur could begin a colId without consuming it.
func (p *Parser) isIdentLike() bool {
	if p.cur.Type == IDENT {
		return true
	}
	if kw := keywordFor(p.cur.Type); kw != nil {
		return kw.Category == UnreservedKeyword || kw.Category == ColNameKeyword
	}
	return false
}

// qualifiedName parses name[.name[.name]] into a RangeVar.
func (p *Parser) qualifiedName() (*ast.RangeVar, error) {
	start := p.cur.Span
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
	var rv *ast.RangeVar
	switch len(parts) {
	case 1:
		rv = ast.NewRangeVar("", "", parts[0], p.spanFrom(start))
	case 2:
		rv = ast.NewRangeVar("", parts[0], parts[1], p.spanFrom(start))
	case 3:
		rv = ast.NewRangeVar(parts[0], parts[1], parts[2], p.spanFrom(start))
	default:
		return nil, syntaxErrorf(p.cur, "improper qualified name (too many dotted names)")
	}
	return rv, nil
}

// qualifiedNameList parses a comma-separated list of qualified names.
func (p *Parser) qualifiedNameList() ([]*ast.RangeVar, error) {
	var rels []*ast.RangeVar
	for {
		rv, err := p.qualifiedName()
		if err != nil {
			return nil, err
		}
		rels = append(rels, rv)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			return rels, nil
		}
	}
}

// nameList parses a comma-separated list of colIds.
func (p *Parser) nameList() ([]string, error) {
	var names []string
	for {
		name, err := p.colId()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		ok, err := p.accept(TokenType(','))
		if err != nil {
			return nil, err
		}
		if !ok {
			return names, nil
		}
	}
}

// parseStmt dispatches one statement on its leading token.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.cur.Type {
	case WITH:
		return p.parseWithPrefixedStmt()
	case SELECT, VALUES, TABLE, TokenType('('):
		return p.parseSelectStmt()
	case INSERT:
		return p.parseInsertStmt()
	case UPDATE:
		return p.parseUpdateStmt()
	case DELETE_P:
		return p.parseDeleteStmt()
	case CREATE:
		return p.parseCreate()
	case ALTER:
		return p.parseAlter()
	case DROP:
		return p.parseDropStmt()
	case TRUNCATE:
		return p.parseTruncateStmt()
	case BEGIN_P, START, COMMIT, END_P, ROLLBACK, ABORT_P, SAVEPOINT, RELEASE:
		return p.parseTransactionStmt()
	case SET:
		return p.parseSetStmt()
	case RESET:
		return p.parseResetStmt()
	case SHOW:
		return p.parseShowStmt()
	case EXPLAIN:
		return p.parseExplainStmt()
	case COPY:
		return p.parseCopyStmt()
	case LISTEN:
		return p.parseListenStmt()
	case UNLISTEN:
		return p.parseUnlistenStmt()
	case NOTIFY:
		return p.parseNotifyStmt()
	case VACUUM, ANALYZE, ANALYSE:
		return p.parseVacuumStmt()
	case GRANT, REVOKE:
		return p.parseGrantStmt()
	case PREPARE:
		return p.parsePrepareStmt()
	case EXECUTE:
		return p.parseExecuteStmt()
	case DEALLOCATE:
		return p.parseDeallocateStmt()
	default:
		return nil, syntaxError(p.cur)
	}
}
