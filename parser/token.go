/*
 * Token vocabulary. Numbering follows the grammar's conventions: named
 * tokens start at 258, single-character tokens such as '(' and ',' use their
 * ASCII value directly, and 0 marks end of input.
 */

package parser

import (
	"fmt"

	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// TokenType identifies a lexical token. Values below 256 are the ASCII
// characters themselves.
type TokenType int

// EOF marks the end of the token stream.
const EOF TokenType = 0

const (
	IDENT TokenType = iota + 258
	FCONST
	SCONST
	BCONST
	XCONST
	Op
	ICONST
	PARAM
	TYPECAST
	DOT_DOT
	COLON_EQUALS
	EQUALS_GREATER
	LESS_EQUALS
	GREATER_EQUALS
	NOT_EQUALS

	// Keywords, in kwlist order.
	ABORT_P
	ABSOLUTE_P
	ACCESS
	ACTION
	ADD_P
	ADMIN
	AFTER
	AGGREGATE
	ALL
	ALSO
	ALTER
	ALWAYS
	ANALYSE
	ANALYZE
	AND
	ANY
	ARRAY
	AS
	ASC
	ASSERTION
	ASSIGNMENT
	ASYMMETRIC
	AT
	ATTACH
	ATTRIBUTE
	AUTHORIZATION
	BACKWARD
	BEFORE
	BEGIN_P
	BETWEEN
	BIGINT
	BINARY
	BIT
	BOOLEAN_P
	BOTH
	BY
	CACHE
	CALL
	CALLED
	CASCADE
	CASCADED
	CASE
	CAST
	CATALOG_P
	CHAIN
	CHAR_P
	CHARACTER
	CHARACTERISTICS
	CHECK
	CHECKPOINT
	CLASS
	CLOSE
	CLUSTER
	COALESCE
	COLLATE
	COLLATION
	COLUMN
	COLUMNS
	COMMENT
	COMMENTS
	COMMIT
	COMMITTED
	CONCURRENTLY
	CONFIGURATION
	CONFLICT
	CONNECTION
	CONSTRAINT
	CONSTRAINTS
	CONTENT_P
	CONTINUE_P
	CONVERSION_P
	COPY
	COST
	CREATE
	CROSS
	CSV
	CUBE
	CURRENT_P
	CURRENT_CATALOG
	CURRENT_DATE
	CURRENT_ROLE
	CURRENT_SCHEMA
	CURRENT_TIME
	CURRENT_TIMESTAMP
	CURRENT_USER
	CURSOR
	CYCLE
	DATA_P
	DATABASE
	DAY_P
	DEALLOCATE
	DEC
	DECIMAL_P
	DECLARE
	DEFAULT
	DEFAULTS
	DEFERRABLE
	DEFERRED
	DEFINER
	DELETE_P
	DELIMITER
	DELIMITERS
	DEPENDS
	DESC
	DETACH
	DICTIONARY
	DISABLE_P
	DISCARD
	DISTINCT
	DO
	DOCUMENT_P
	DOMAIN_P
	DOUBLE_P
	DROP
	EACH
	ELSE
	ENABLE_P
	ENCODING
	ENCRYPTED
	END_P
	ENUM_P
	ESCAPE
	EVENT
	EXCEPT
	EXCLUDE
	EXCLUDING
	EXCLUSIVE
	EXECUTE
	EXISTS
	EXPLAIN
	EXTENSION
	EXTERNAL
	EXTRACT
	FALSE_P
	FAMILY
	FETCH
	FILTER
	FIRST_P
	FLOAT_P
	FOLLOWING
	FOR
	FORCE
	FOREIGN
	FORWARD
	FREEZE
	FROM
	FULL
	FUNCTION
	FUNCTIONS
	GENERATED
	GLOBAL
	GRANT
	GRANTED
	GREATEST
	GROUP_P
	GROUPING
	GROUPS
	HANDLER
	HAVING
	HEADER_P
	HOLD
	HOUR_P
	IDENTITY_P
	IF_P
	ILIKE
	IMMEDIATE
	IMMUTABLE
	IMPLICIT_P
	IMPORT_P
	IN_P
	INCLUDE
	INCLUDING
	INCREMENT
	INDEX
	INDEXES
	INHERIT
	INHERITS
	INITIALLY
	INLINE_P
	INNER_P
	INOUT
	INPUT_P
	INSENSITIVE
	INSERT
	INSTEAD
	INT_P
	INTEGER
	INTERSECT
	INTERVAL
	INTO
	INVOKER
	IS
	ISNULL
	ISOLATION
	JOIN
	KEY
	LABEL
	LANGUAGE
	LARGE_P
	LAST_P
	LATERAL_P
	LEADING
	LEAKPROOF
	LEAST
	LEFT
	LEVEL
	LIKE
	LIMIT
	LISTEN
	LOAD
	LOCAL
	LOCALTIME
	LOCALTIMESTAMP
	LOCATION
	LOCK_P
	LOCKED
	LOGGED
	MAPPING
	MATCH
	MATERIALIZED
	MAXVALUE
	METHOD
	MINUTE_P
	MINVALUE
	MODE
	MONTH_P
	MOVE
	NAME_P
	NAMES
	NATIONAL
	NATURAL
	NCHAR
	NEW
	NEXT
	NO
	NONE
	NOT
	NOTHING
	NOTIFY
	NOTNULL
	NOWAIT
	NULL_P
	NULLIF
	NULLS_P
	NUMERIC
	OBJECT_P
	OF
	OFF
	OFFSET
	OIDS
	OLD
	ON
	ONLY
	OPERATOR
	OPTION
	OPTIONS
	OR
	ORDER
	ORDINALITY
	OTHERS
	OUT_P
	OUTER_P
	OVER
	OVERLAPS
	OVERLAY
	OVERRIDING
	OWNED
	OWNER
	PARALLEL
	PARSER
	PARTIAL
	PARTITION
	PASSING
	PASSWORD
	PLACING
	PLANS
	POLICY
	POSITION
	PRECEDING
	PRECISION
	PRESERVE
	PREPARE
	PREPARED
	PRIMARY
	PRIOR
	PRIVILEGES
	PROCEDURAL
	PROCEDURE
	PROCEDURES
	PROGRAM
	PUBLICATION
	QUOTE
	RANGE
	READ
	REAL
	REASSIGN
	RECHECK
	RECURSIVE
	REF
	REFERENCES
	REFERENCING
	REFRESH
	REINDEX
	RELATIVE_P
	RELEASE
	RENAME
	REPEATABLE
	REPLACE
	REPLICA
	RESET
	RESTART
	RESTRICT
	RETURNING
	RETURNS
	REVOKE
	RIGHT
	ROLE
	ROLLBACK
	ROLLUP
	ROUTINE
	ROUTINES
	ROW
	ROWS
	RULE
	SAVEPOINT
	SCHEMA
	SCHEMAS
	SCROLL
	SEARCH
	SECOND_P
	SECURITY
	SELECT
	SEQUENCE
	SEQUENCES
	SERIALIZABLE
	SERVER
	SESSION
	SESSION_USER
	SET
	SETS
	SETOF
	SHARE
	SHOW
	SIMILAR
	SIMPLE
	SKIP
	SMALLINT
	SNAPSHOT
	SOME
	SQL_P
	STABLE
	STANDALONE_P
	START
	STATEMENT
	STATISTICS
	STDIN
	STDOUT
	STORAGE
	STORED
	STRICT_P
	STRIP_P
	SUBSCRIPTION
	SUBSTRING
	SUPPORT
	SYMMETRIC
	SYSID
	SYSTEM_P
	TABLE
	TABLES
	TABLESAMPLE
	TABLESPACE
	TEMP
	TEMPLATE
	TEMPORARY
	TEXT_P
	THEN
	TIES
	TIME
	TIMESTAMP
	TO
	TRAILING
	TRANSACTION
	TRANSFORM
	TREAT
	TRIGGER
	TRIM
	TRUE_P
	TRUNCATE
	TRUSTED
	TYPE_P
	TYPES_P
	UNBOUNDED
	UNCOMMITTED
	UNENCRYPTED
	UNION
	UNIQUE
	UNKNOWN
	UNLISTEN
	UNLOGGED
	UNTIL
	UPDATE
	USER
	USING
	VACUUM
	VALID
	VALIDATE
	VALIDATOR
	VALUE_P
	VALUES
	VARCHAR
	VARIADIC
	VARYING
	VERBOSE
	VERSION_P
	VIEW
	VIEWS
	VOLATILE
	WHEN
	WHERE
	WHITESPACE_P
	WINDOW
	WITH
	WITHIN
	WITHOUT
	WORK
	WRAPPER
	WRITE
	XML_P
	XMLATTRIBUTES
	XMLCONCAT
	XMLELEMENT
	XMLEXISTS
	XMLFOREST
	XMLNAMESPACES
	XMLPARSE
	XMLPI
	XMLROOT
	XMLSERIALIZE
	XMLTABLE
	YEAR_P
	YES_P
	ZONE

	// Lookahead-replacement tokens. The lexer never produces these; the
	// token stream substitutes them when the following token requires it.
	NOT_LA
	NULLS_LA
	WITH_LA

	// Precedence-only symbols kept for completeness of the numbering.
	POSTFIXOP
	UMINUS
)

// specialTokenNames names the non-keyword named tokens.
var specialTokenNames = map[TokenType]string{
	IDENT:          "IDENT",
	FCONST:         "FCONST",
	SCONST:         "SCONST",
	BCONST:         "BCONST",
	XCONST:         "XCONST",
	Op:             "Op",
	ICONST:         "ICONST",
	PARAM:          "PARAM",
	TYPECAST:       "TYPECAST",
	DOT_DOT:        "DOT_DOT",
	COLON_EQUALS:   "COLON_EQUALS",
	EQUALS_GREATER: "EQUALS_GREATER",
	LESS_EQUALS:    "LESS_EQUALS",
	GREATER_EQUALS: "GREATER_EQUALS",
	NOT_EQUALS:     "NOT_EQUALS",
	NOT_LA:         "NOT_LA",
	NULLS_LA:       "NULLS_LA",
	WITH_LA:        "WITH_LA",
}

// String renders a token type for debug output and test failure messages.
func (t TokenType) String() string {
	switch {
	case t == EOF:
		return "EOF"
	case t > 0 && t < 256:
		return fmt.Sprintf("'%c'", rune(t))
	}
	if name, ok := specialTokenNames[t]; ok {
		return name
	}
	if name, ok := keywordTokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// TokenValue carries a token's semantic value. Exactly one field is
// meaningful for a given token type.
type TokenValue struct {
	Str  string // identifiers, string literals, operator text, keywords
	Ival int64  // ICONST and PARAM
}

// Token is one lexical token with its source text and span.
type Token struct {
	Type  TokenType
	Value TokenValue
	Text  string // the token as written, for error messages
	Span  ast.Span
}

// NewToken creates a token with no semantic value beyond its text.
func NewToken(typ TokenType, span ast.Span, text string) Token {
	return Token{Type: typ, Text: text, Span: span}
}

// NewStringToken creates a token carrying a string value, which may differ
// from the source text (quotes stripped, escapes processed, case folded).
func NewStringToken(typ TokenType, value string, span ast.Span, text string) Token {
	return Token{Type: typ, Value: TokenValue{Str: value}, Text: text, Span: span}
}

// NewKeywordToken creates a keyword token carrying the normalized keyword.
func NewKeywordToken(typ TokenType, normalized string, span ast.Span, text string) Token {
	return Token{Type: typ, Value: TokenValue{Str: normalized}, Text: text, Span: span}
}

// NewIntToken creates an ICONST token.
func NewIntToken(value int64, span ast.Span, text string) Token {
	return Token{Type: ICONST, Value: TokenValue{Ival: value}, Text: text, Span: span}
}

// NewParamToken creates a PARAM token for $n.
func NewParamToken(number int64, span ast.Span, text string) Token {
	return Token{Type: PARAM, Value: TokenValue{Ival: number}, Text: text, Span: span}
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%q)@%s", t.Type, t.Text, t.Span)
}
