/*
 * Hand-written byte scanner following the rules of scan.l: comments, plain
 * and extended string literals, dollar quoting, bit and hex strings,
 * delimited identifiers, numeric literals, positional parameters and the
 * multi-character operator rules with their trailing +/- restriction.
 */

package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// Lexer turns a SQL string into tokens.
type Lexer struct {
	src    []byte
	pos    int
	line   int
	column int
}

// NewLexer creates a lexer over the given SQL text.
func NewLexer(input string) *Lexer {
	return &Lexer{src: []byte(input), line: 1, column: 1}
}

func (l *Lexer) atEOF() bool { return l.pos >= len(l.src) }

// current returns the byte at the scan position, 0 at end of input.
func (l *Lexer) current() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peekAt returns the byte n positions ahead, 0 past end of input.
func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

// advance consumes one byte, tracking line and column. Column counts runes,
// so only UTF-8 sequence starts move it.
func (l *Lexer) advance() {
	b := l.src[l.pos]
	l.pos++
	if b == '\n' {
		l.line++
		l.column = 1
	} else if utf8.RuneStart(b) {
		l.column++
	}
}

func (l *Lexer) advanceBy(n int) {
	for i := 0; i < n && l.pos < len(l.src); i++ {
		l.advance()
	}
}

// position captures the current source position.
func (l *Lexer) position() ast.Position {
	return ast.Position{Line: l.line, Column: l.column, Offset: l.pos}
}

// spanFrom builds the span from a saved start position to here.
func (l *Lexer) spanFrom(start ast.Position) ast.Span {
	return ast.Span{Start: start, End: l.position()}
}

// textFrom returns the source text from a saved start position to here.
func (l *Lexer) textFrom(start ast.Position) string {
	return string(l.src[start.Offset:l.pos])
}

// NextToken scans and returns the next token. At end of input it returns an
// EOF token; the EOF token is sticky and may be requested repeatedly.
func (l *Lexer) NextToken() (Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}
	start := l.position()
	if l.atEOF() {
		return NewToken(EOF, ast.Span{Start: start, End: start}, ""), nil
	}

	b := l.current()
	switch {
	case (b == 'b' || b == 'B') && l.peekAt(1) == '\'':
		return l.scanBitString(start, 'b')
	case (b == 'x' || b == 'X') && l.peekAt(1) == '\'':
		return l.scanBitString(start, 'x')
	case (b == 'e' || b == 'E') && l.peekAt(1) == '\'':
		return l.scanExtendedString(start)
	case isIdentStart(b):
		return l.scanIdentifier(start)
	case isDigit(b) || (b == '.' && isDigit(l.peekAt(1))):
		return l.scanNumber(start)
	case b == '\'':
		return l.scanString(start)
	case b == '"':
		return l.scanDelimitedIdentifier(start)
	case b == '$':
		return l.scanDollar(start)
	case b == '.':
		l.advance()
		if l.current() == '.' {
			l.advance()
			return NewToken(DOT_DOT, l.spanFrom(start), ".."), nil
		}
		return NewToken(TokenType('.'), l.spanFrom(start), "."), nil
	case b == ':':
		l.advance()
		switch l.current() {
		case ':':
			l.advance()
			return NewToken(TYPECAST, l.spanFrom(start), "::"), nil
		case '=':
			l.advance()
			return NewToken(COLON_EQUALS, l.spanFrom(start), ":="), nil
		}
		return NewToken(TokenType(':'), l.spanFrom(start), ":"), nil
	case isOpChar(b) || isSelfChar(b):
		return l.scanOperator(start)
	}

	l.advance()
	return Token{}, lexError("syntax error", l.textFrom(start), start)
}

// skipWhitespaceAndComments consumes whitespace, line comments and nested
// block comments.
func (l *Lexer) skipWhitespaceAndComments() error {
	for {
		switch {
		case l.atEOF():
			return nil
		case isSpace(l.current()):
			l.advance()
		case l.current() == '-' && l.peekAt(1) == '-':
			l.skipLineComment()
		case l.current() == '/' && l.peekAt(1) == '*':
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (l *Lexer) skipLineComment() {
	for !l.atEOF() && l.current() != '\n' {
		l.advance()
	}
}

// skipBlockComment consumes a slash-star comment, honoring nesting.
func (l *Lexer) skipBlockComment() error {
	start := l.position()
	l.advanceBy(2)
	depth := 1
	for depth > 0 {
		if l.atEOF() {
			return lexErrorAtEOF("unterminated /* comment", start)
		}
		switch {
		case l.current() == '/' && l.peekAt(1) == '*':
			depth++
			l.advanceBy(2)
		case l.current() == '*' && l.peekAt(1) == '/':
			depth--
			l.advanceBy(2)
		default:
			l.advance()
		}
	}
	return nil
}

// scanIdentifier scans an identifier or keyword. ASCII letters are folded to
// lower case; bytes with the high bit set pass through untouched.
func (l *Lexer) scanIdentifier(start ast.Position) (Token, error) {
	for !l.atEOF() && isIdentCont(l.current()) {
		l.advance()
	}
	text := l.textFrom(start)
	lower := downcaseIdentifier(text)
	if kw := LookupKeyword(lower); kw != nil {
		return NewKeywordToken(kw.Token, kw.Name, l.spanFrom(start), text), nil
	}
	return NewStringToken(IDENT, lower, l.spanFrom(start), text), nil
}

// downcaseIdentifier folds ASCII upper case only, matching
// downcase_identifier's treatment of multibyte characters.
func downcaseIdentifier(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String()
}

// scanDelimitedIdentifier scans a double-quoted identifier with "" escapes.
func (l *Lexer) scanDelimitedIdentifier(start ast.Position) (Token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		if l.atEOF() {
			return Token{}, lexErrorAtEOF("unterminated quoted identifier", start)
		}
		b := l.current()
		if b == '"' {
			if l.peekAt(1) == '"' {
				sb.WriteByte('"')
				l.advanceBy(2)
				continue
			}
			l.advance()
			break
		}
		sb.WriteByte(b)
		l.advance()
	}
	if sb.Len() == 0 {
		return Token{}, lexError("zero-length delimited identifier", l.textFrom(start), start)
	}
	return NewStringToken(IDENT, sb.String(), l.spanFrom(start), l.textFrom(start)), nil
}

// scanNumber scans integer, decimal and scientific literals. Integers that
// overflow int64 come back as FCONST carrying their text, matching
// process_integer_literal.
func (l *Lexer) scanNumber(start ast.Position) (Token, error) {
	sawDot := false
	sawExp := false

	for !l.atEOF() && isDigit(l.current()) {
		l.advance()
	}
	// {decimalfail}: "1.." is the integer 1 followed by DOT_DOT.
	if l.current() == '.' && l.peekAt(1) != '.' {
		sawDot = true
		l.advance()
		for !l.atEOF() && isDigit(l.current()) {
			l.advance()
		}
	}
	if c := l.current(); c == 'e' || c == 'E' {
		next := l.peekAt(1)
		if isDigit(next) || ((next == '+' || next == '-') && isDigit(l.peekAt(2))) {
			sawExp = true
			l.advanceBy(2)
			for !l.atEOF() && isDigit(l.current()) {
				l.advance()
			}
		}
	}
	if !l.atEOF() && isIdentStart(l.current()) {
		for !l.atEOF() && isIdentCont(l.current()) {
			l.advance()
		}
		return Token{}, lexError("trailing junk after numeric literal", l.textFrom(start), start)
	}

	text := l.textFrom(start)
	span := l.spanFrom(start)
	if sawDot || sawExp {
		return NewStringToken(FCONST, text, span, text), nil
	}
	val, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return NewStringToken(FCONST, text, span, text), nil
	}
	return NewIntToken(val, span, text), nil
}

// scanString scans a standard single-quoted literal with ” escapes and no
// backslash processing.
func (l *Lexer) scanString(start ast.Position) (Token, error) {
	l.advance() // opening quote
	var sb strings.Builder
	for {
		content, err := l.scanStringBody(start, &sb)
		if err != nil {
			return Token{}, err
		}
		if !l.continuesString() {
			return NewStringToken(SCONST, content, l.spanFrom(start), l.textFrom(start)), nil
		}
		l.advance() // opening quote of the continuation
	}
}

// scanStringBody consumes up to and including the closing quote, appending
// content to sb, and returns the accumulated content so far.
func (l *Lexer) scanStringBody(start ast.Position, sb *strings.Builder) (string, error) {
	for {
		if l.atEOF() {
			return "", lexErrorAtEOF("unterminated quoted string", start)
		}
		b := l.current()
		if b == '\'' {
			if l.peekAt(1) == '\'' {
				sb.WriteByte('\'')
				l.advanceBy(2)
				continue
			}
			l.advance()
			return sb.String(), nil
		}
		sb.WriteByte(b)
		l.advance()
	}
}

// continuesString implements {quotecontinue}: after a closing quote, a
// string literal continues if the next quote is separated only by whitespace
// containing at least one newline. Line comments count as whitespace here.
func (l *Lexer) continuesString() bool {
	savedPos, savedLine, savedCol := l.pos, l.line, l.column
	sawNewline := false
	for {
		switch {
		case l.atEOF():
			l.pos, l.line, l.column = savedPos, savedLine, savedCol
			return false
		case l.current() == '\n':
			sawNewline = true
			l.advance()
		case isSpace(l.current()):
			l.advance()
		case l.current() == '-' && l.peekAt(1) == '-':
			l.skipLineComment()
		case l.current() == '\'' && sawNewline:
			return true
		default:
			l.pos, l.line, l.column = savedPos, savedLine, savedCol
			return false
		}
	}
}

// scanExtendedString scans E'...' with backslash escape processing.
func (l *Lexer) scanExtendedString(start ast.Position) (Token, error) {
	l.advanceBy(2) // E and opening quote
	var sb strings.Builder
	for {
		if l.atEOF() {
			return Token{}, lexErrorAtEOF("unterminated quoted string", start)
		}
		b := l.current()
		switch {
		case b == '\'':
			if l.peekAt(1) == '\'' {
				sb.WriteByte('\'')
				l.advanceBy(2)
				continue
			}
			l.advance()
			if l.continuesString() {
				l.advance()
				continue
			}
			return NewStringToken(SCONST, sb.String(), l.spanFrom(start), l.textFrom(start)), nil
		case b == '\\':
			if err := l.scanEscape(start, &sb); err != nil {
				return Token{}, err
			}
		default:
			sb.WriteByte(b)
			l.advance()
		}
	}
}

// scanEscape processes one backslash escape inside an extended string.
func (l *Lexer) scanEscape(start ast.Position, sb *strings.Builder) error {
	l.advance() // backslash
	if l.atEOF() {
		return lexErrorAtEOF("unterminated quoted string", start)
	}
	b := l.current()
	switch b {
	case 'b':
		sb.WriteByte('\b')
		l.advance()
	case 'f':
		sb.WriteByte('\f')
		l.advance()
	case 'n':
		sb.WriteByte('\n')
		l.advance()
	case 'r':
		sb.WriteByte('\r')
		l.advance()
	case 't':
		sb.WriteByte('\t')
		l.advance()
	case 'v':
		sb.WriteByte('\v')
		l.advance()
	case 'x':
		l.advance()
		var n, digits int
		for digits < 2 && isHexDigit(l.current()) {
			n = n*16 + hexVal(l.current())
			l.advance()
			digits++
		}
		if digits == 0 {
			sb.WriteByte('x')
		} else {
			sb.WriteByte(byte(n))
		}
	case '0', '1', '2', '3', '4', '5', '6', '7':
		var n, digits int
		for digits < 3 && l.current() >= '0' && l.current() <= '7' {
			n = n*8 + int(l.current()-'0')
			l.advance()
			digits++
		}
		sb.WriteByte(byte(n))
	case 'u', 'U':
		return l.scanUnicodeEscape(start, sb)
	default:
		// Any other escaped character stands for itself.
		sb.WriteByte(b)
		l.advance()
	}
	return nil
}

// scanUnicodeEscape handles \uXXXX and \UXXXXXXXX, pairing UTF-16
// surrogates the way the backend does.
func (l *Lexer) scanUnicodeEscape(start ast.Position, sb *strings.Builder) error {
	r, err := l.scanUnicodeValue(start)
	if err != nil {
		return err
	}
	if r >= 0xD800 && r <= 0xDBFF {
		// High surrogate: must pair with a following low surrogate escape.
		if l.current() != '\\' || (l.peekAt(1) != 'u' && l.peekAt(1) != 'U') {
			return lexError("invalid Unicode surrogate pair", l.textFrom(start), start)
		}
		l.advance()
		r2, err := l.scanUnicodeValue(start)
		if err != nil {
			return err
		}
		if r2 < 0xDC00 || r2 > 0xDFFF {
			return lexError("invalid Unicode surrogate pair", l.textFrom(start), start)
		}
		r = 0x10000 + (r-0xD800)<<10 + (r2 - 0xDC00)
	} else if r >= 0xDC00 && r <= 0xDFFF {
		return lexError("invalid Unicode surrogate pair", l.textFrom(start), start)
	}
	sb.WriteRune(rune(r))
	return nil
}

// scanUnicodeValue reads the u/U and its fixed-width hex digits.
func (l *Lexer) scanUnicodeValue(start ast.Position) (int32, error) {
	width := 4
	if l.current() == 'U' {
		width = 8
	}
	l.advance()
	var n int32
	for i := 0; i < width; i++ {
		if !isHexDigit(l.current()) {
			return 0, lexError("invalid Unicode escape value", l.textFrom(start), start)
		}
		n = n*16 + int32(hexVal(l.current()))
		l.advance()
	}
	if n > 0x10FFFF {
		return 0, lexError("invalid Unicode escape value", l.textFrom(start), start)
	}
	return n, nil
}

func hexVal(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}

// scanBitString scans b'...' and x'...' literals. The value keeps the
// leading b or x so later stages can tell the two apart; digit validity is
// checked where the literal is consumed, as the backend does.
func (l *Lexer) scanBitString(start ast.Position, kind byte) (Token, error) {
	l.advanceBy(2) // b/x and opening quote
	var sb strings.Builder
	sb.WriteByte(kind)
	for {
		msg := "unterminated bit string literal"
		if kind == 'x' {
			msg = "unterminated hexadecimal string literal"
		}
		if l.atEOF() {
			return Token{}, lexErrorAtEOF(msg, start)
		}
		b := l.current()
		if b == '\'' {
			l.advance()
			if l.continuesString() {
				l.advance()
				continue
			}
			break
		}
		sb.WriteByte(b)
		l.advance()
	}
	typ := BCONST
	if kind == 'x' {
		typ = XCONST
	}
	return NewStringToken(typ, sb.String(), l.spanFrom(start), l.textFrom(start)), nil
}

// scanDollar scans positional parameters and dollar-quoted strings.
func (l *Lexer) scanDollar(start ast.Position) (Token, error) {
	if isDigit(l.peekAt(1)) {
		l.advance()
		numStart := l.pos
		for !l.atEOF() && isDigit(l.current()) {
			l.advance()
		}
		if !l.atEOF() && isIdentStart(l.current()) {
			for !l.atEOF() && isIdentCont(l.current()) {
				l.advance()
			}
			return Token{}, lexError("trailing junk after parameter", l.textFrom(start), start)
		}
		text := l.textFrom(start)
		num, err := strconv.ParseInt(string(l.src[numStart:l.pos]), 10, 64)
		if err != nil {
			return Token{}, lexError("parameter number too large", text, start)
		}
		return NewParamToken(num, l.spanFrom(start), text), nil
	}

	// Dollar quoting: $tag$ ... $tag$ where the tag may be empty. The tag
	// follows identifier rules minus the dollar sign.
	j := 1
	for {
		c := l.peekAt(j)
		if c == '$' {
			break
		}
		valid := isIdentStart(c) || (j > 1 && isDigit(c))
		if !valid {
			l.advance()
			return Token{}, lexError("syntax error", l.textFrom(start), start)
		}
		j++
	}
	delim := string(l.src[l.pos : l.pos+j+1]) // $tag$
	l.advanceBy(j + 1)

	var sb strings.Builder
	for {
		if l.pos+len(delim) > len(l.src) {
			return Token{}, lexErrorAtEOF("unterminated dollar-quoted string", start)
		}
		if l.current() == '$' && string(l.src[l.pos:l.pos+len(delim)]) == delim {
			l.advanceBy(len(delim))
			return NewStringToken(SCONST, sb.String(), l.spanFrom(start), l.textFrom(start)), nil
		}
		sb.WriteByte(l.current())
		l.advance()
	}
}

// scanOperator implements the {operator} rule: take the longest run of
// operator characters, cut it short at an embedded comment start, and strip
// trailing + or - unless the operator contains a character that cannot
// appear in a SQL-standard operator.
func (l *Lexer) scanOperator(start ast.Position) (Token, error) {
	n := 0
	for isOpChar(l.peekAt(n)) {
		if l.peekAt(n) == '-' && l.peekAt(n+1) == '-' {
			break
		}
		if l.peekAt(n) == '/' && l.peekAt(n+1) == '*' {
			break
		}
		n++
	}

	if n > 1 {
		last := l.peekAt(n - 1)
		if last == '+' || last == '-' {
			hasSpecial := false
			for i := 0; i < n; i++ {
				switch l.peekAt(i) {
				case '~', '!', '@', '#', '%', '^', '&', '|', '`', '?':
					hasSpecial = true
				}
			}
			if !hasSpecial {
				for n > 1 {
					last = l.peekAt(n - 1)
					if last != '+' && last != '-' {
						break
					}
					n--
				}
			}
		}
	}

	if n == 0 {
		// A self char that is not an operator char, such as , ( ) [ ] ;
		b := l.current()
		l.advance()
		return NewToken(TokenType(b), l.spanFrom(start), string(b)), nil
	}

	l.advanceBy(n)
	text := l.textFrom(start)
	span := l.spanFrom(start)
	switch text {
	case "<=":
		return NewToken(LESS_EQUALS, span, text), nil
	case ">=":
		return NewToken(GREATER_EQUALS, span, text), nil
	case "<>", "!=":
		return NewToken(NOT_EQUALS, span, text), nil
	case "=>":
		return NewToken(EQUALS_GREATER, span, text), nil
	}
	if n == 1 && isSelfChar(text[0]) {
		return NewToken(TokenType(text[0]), span, text), nil
	}
	return NewStringToken(Op, text, span, text), nil
}
