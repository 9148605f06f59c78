/*
 * SQL keyword recognition and categorization, following kwlist.h. Keywords
 * fall into four categories that control where they may appear as
 * identifiers without quoting.
 */

package parser

import (
	"sort"
	"strings"
)

// KeywordCategory represents the different categories of SQL keywords.
type KeywordCategory int

const (
	// UnreservedKeyword can be used as column name, table name, function
	// name, etc.
	UnreservedKeyword KeywordCategory = iota

	// ColNameKeyword can be used as column or table name but not as
	// function or type name.
	ColNameKeyword

	// TypeFuncNameKeyword can be used as function or type name but not as
	// column or table name.
	TypeFuncNameKeyword

	// ReservedKeyword cannot be used as an identifier at all; it is still
	// accepted as a column label after AS.
	ReservedKeyword
)

// String returns the string representation of a KeywordCategory.
func (kc KeywordCategory) String() string {
	switch kc {
	case UnreservedKeyword:
		return "UNRESERVED_KEYWORD"
	case ColNameKeyword:
		return "COL_NAME_KEYWORD"
	case TypeFuncNameKeyword:
		return "TYPE_FUNC_NAME_KEYWORD"
	case ReservedKeyword:
		return "RESERVED_KEYWORD"
	default:
		return "UNKNOWN_KEYWORD_CATEGORY"
	}
}

// KeywordInfo describes a single keyword.
type KeywordInfo struct {
	Name     string // lowercase normalized spelling
	Token    TokenType
	Category KeywordCategory
}

// Keywords lists every SQL keyword in kwlist order.
var Keywords = []KeywordInfo{
	{"abort", ABORT_P, UnreservedKeyword},
	{"absolute", ABSOLUTE_P, UnreservedKeyword},
	{"access", ACCESS, UnreservedKeyword},
	{"action", ACTION, UnreservedKeyword},
	{"add", ADD_P, UnreservedKeyword},
	{"admin", ADMIN, UnreservedKeyword},
	{"after", AFTER, UnreservedKeyword},
	{"aggregate", AGGREGATE, UnreservedKeyword},
	{"all", ALL, ReservedKeyword},
	{"also", ALSO, UnreservedKeyword},
	{"alter", ALTER, UnreservedKeyword},
	{"always", ALWAYS, UnreservedKeyword},
	{"analyse", ANALYSE, ReservedKeyword},
	{"analyze", ANALYZE, ReservedKeyword},
	{"and", AND, ReservedKeyword},
	{"any", ANY, ReservedKeyword},
	{"array", ARRAY, ReservedKeyword},
	{"as", AS, ReservedKeyword},
	{"asc", ASC, ReservedKeyword},
	{"assertion", ASSERTION, UnreservedKeyword},
	{"assignment", ASSIGNMENT, UnreservedKeyword},
	{"asymmetric", ASYMMETRIC, ReservedKeyword},
	{"at", AT, UnreservedKeyword},
	{"attach", ATTACH, UnreservedKeyword},
	{"attribute", ATTRIBUTE, UnreservedKeyword},
	{"authorization", AUTHORIZATION, TypeFuncNameKeyword},
	{"backward", BACKWARD, UnreservedKeyword},
	{"before", BEFORE, UnreservedKeyword},
	{"begin", BEGIN_P, UnreservedKeyword},
	{"between", BETWEEN, ColNameKeyword},
	{"bigint", BIGINT, ColNameKeyword},
	{"binary", BINARY, TypeFuncNameKeyword},
	{"bit", BIT, ColNameKeyword},
	{"boolean", BOOLEAN_P, ColNameKeyword},
	{"both", BOTH, ReservedKeyword},
	{"by", BY, UnreservedKeyword},
	{"cache", CACHE, UnreservedKeyword},
	{"call", CALL, UnreservedKeyword},
	{"called", CALLED, UnreservedKeyword},
	{"cascade", CASCADE, UnreservedKeyword},
	{"cascaded", CASCADED, UnreservedKeyword},
	{"case", CASE, ReservedKeyword},
	{"cast", CAST, ReservedKeyword},
	{"catalog", CATALOG_P, UnreservedKeyword},
	{"chain", CHAIN, UnreservedKeyword},
	{"char", CHAR_P, ColNameKeyword},
	{"character", CHARACTER, ColNameKeyword},
	{"characteristics", CHARACTERISTICS, UnreservedKeyword},
	{"check", CHECK, ReservedKeyword},
	{"checkpoint", CHECKPOINT, UnreservedKeyword},
	{"class", CLASS, UnreservedKeyword},
	{"close", CLOSE, UnreservedKeyword},
	{"cluster", CLUSTER, UnreservedKeyword},
	{"coalesce", COALESCE, ColNameKeyword},
	{"collate", COLLATE, ReservedKeyword},
	{"collation", COLLATION, TypeFuncNameKeyword},
	{"column", COLUMN, ReservedKeyword},
	{"columns", COLUMNS, UnreservedKeyword},
	{"comment", COMMENT, UnreservedKeyword},
	{"comments", COMMENTS, UnreservedKeyword},
	{"commit", COMMIT, UnreservedKeyword},
	{"committed", COMMITTED, UnreservedKeyword},
	{"concurrently", CONCURRENTLY, TypeFuncNameKeyword},
	{"configuration", CONFIGURATION, UnreservedKeyword},
	{"conflict", CONFLICT, UnreservedKeyword},
	{"connection", CONNECTION, UnreservedKeyword},
	{"constraint", CONSTRAINT, ReservedKeyword},
	{"constraints", CONSTRAINTS, UnreservedKeyword},
	{"content", CONTENT_P, UnreservedKeyword},
	{"continue", CONTINUE_P, UnreservedKeyword},
	{"conversion", CONVERSION_P, UnreservedKeyword},
	{"copy", COPY, UnreservedKeyword},
	{"cost", COST, UnreservedKeyword},
	{"create", CREATE, ReservedKeyword},
	{"cross", CROSS, TypeFuncNameKeyword},
	{"csv", CSV, UnreservedKeyword},
	{"cube", CUBE, UnreservedKeyword},
	{"current", CURRENT_P, UnreservedKeyword},
	{"current_catalog", CURRENT_CATALOG, ReservedKeyword},
	{"current_date", CURRENT_DATE, ReservedKeyword},
	{"current_role", CURRENT_ROLE, ReservedKeyword},
	{"current_schema", CURRENT_SCHEMA, TypeFuncNameKeyword},
	{"current_time", CURRENT_TIME, ReservedKeyword},
	{"current_timestamp", CURRENT_TIMESTAMP, ReservedKeyword},
	{"current_user", CURRENT_USER, ReservedKeyword},
	{"cursor", CURSOR, UnreservedKeyword},
	{"cycle", CYCLE, UnreservedKeyword},
	{"data", DATA_P, UnreservedKeyword},
	{"database", DATABASE, UnreservedKeyword},
	{"day", DAY_P, UnreservedKeyword},
	{"deallocate", DEALLOCATE, UnreservedKeyword},
	{"dec", DEC, ColNameKeyword},
	{"decimal", DECIMAL_P, ColNameKeyword},
	{"declare", DECLARE, UnreservedKeyword},
	{"default", DEFAULT, ReservedKeyword},
	{"defaults", DEFAULTS, UnreservedKeyword},
	{"deferrable", DEFERRABLE, ReservedKeyword},
	{"deferred", DEFERRED, UnreservedKeyword},
	{"definer", DEFINER, UnreservedKeyword},
	{"delete", DELETE_P, UnreservedKeyword},
	{"delimiter", DELIMITER, UnreservedKeyword},
	{"delimiters", DELIMITERS, UnreservedKeyword},
	{"depends", DEPENDS, UnreservedKeyword},
	{"desc", DESC, ReservedKeyword},
	{"detach", DETACH, UnreservedKeyword},
	{"dictionary", DICTIONARY, UnreservedKeyword},
	{"disable", DISABLE_P, UnreservedKeyword},
	{"discard", DISCARD, UnreservedKeyword},
	{"distinct", DISTINCT, ReservedKeyword},
	{"do", DO, ReservedKeyword},
	{"document", DOCUMENT_P, UnreservedKeyword},
	{"domain", DOMAIN_P, UnreservedKeyword},
	{"double", DOUBLE_P, UnreservedKeyword},
	{"drop", DROP, UnreservedKeyword},
	{"each", EACH, UnreservedKeyword},
	{"else", ELSE, ReservedKeyword},
	{"enable", ENABLE_P, UnreservedKeyword},
	{"encoding", ENCODING, UnreservedKeyword},
	{"encrypted", ENCRYPTED, UnreservedKeyword},
	{"end", END_P, ReservedKeyword},
	{"enum", ENUM_P, UnreservedKeyword},
	{"escape", ESCAPE, UnreservedKeyword},
	{"event", EVENT, UnreservedKeyword},
	{"except", EXCEPT, ReservedKeyword},
	{"exclude", EXCLUDE, UnreservedKeyword},
	{"excluding", EXCLUDING, UnreservedKeyword},
	{"exclusive", EXCLUSIVE, UnreservedKeyword},
	{"execute", EXECUTE, UnreservedKeyword},
	{"exists", EXISTS, ColNameKeyword},
	{"explain", EXPLAIN, UnreservedKeyword},
	{"extension", EXTENSION, UnreservedKeyword},
	{"external", EXTERNAL, UnreservedKeyword},
	{"extract", EXTRACT, ColNameKeyword},
	{"false", FALSE_P, ReservedKeyword},
	{"family", FAMILY, UnreservedKeyword},
	{"fetch", FETCH, ReservedKeyword},
	{"filter", FILTER, UnreservedKeyword},
	{"first", FIRST_P, UnreservedKeyword},
	{"float", FLOAT_P, ColNameKeyword},
	{"following", FOLLOWING, UnreservedKeyword},
	{"for", FOR, ReservedKeyword},
	{"force", FORCE, UnreservedKeyword},
	{"foreign", FOREIGN, ReservedKeyword},
	{"forward", FORWARD, UnreservedKeyword},
	{"freeze", FREEZE, TypeFuncNameKeyword},
	{"from", FROM, ReservedKeyword},
	{"full", FULL, TypeFuncNameKeyword},
	{"function", FUNCTION, UnreservedKeyword},
	{"functions", FUNCTIONS, UnreservedKeyword},
	{"generated", GENERATED, UnreservedKeyword},
	{"global", GLOBAL, UnreservedKeyword},
	{"grant", GRANT, ReservedKeyword},
	{"granted", GRANTED, UnreservedKeyword},
	{"greatest", GREATEST, ColNameKeyword},
	{"group", GROUP_P, ReservedKeyword},
	{"grouping", GROUPING, ColNameKeyword},
	{"groups", GROUPS, UnreservedKeyword},
	{"handler", HANDLER, UnreservedKeyword},
	{"having", HAVING, ReservedKeyword},
	{"header", HEADER_P, UnreservedKeyword},
	{"hold", HOLD, UnreservedKeyword},
	{"hour", HOUR_P, UnreservedKeyword},
	{"identity", IDENTITY_P, UnreservedKeyword},
	{"if", IF_P, UnreservedKeyword},
	{"ilike", ILIKE, TypeFuncNameKeyword},
	{"immediate", IMMEDIATE, UnreservedKeyword},
	{"immutable", IMMUTABLE, UnreservedKeyword},
	{"implicit", IMPLICIT_P, UnreservedKeyword},
	{"import", IMPORT_P, UnreservedKeyword},
	{"in", IN_P, ReservedKeyword},
	{"include", INCLUDE, UnreservedKeyword},
	{"including", INCLUDING, UnreservedKeyword},
	{"increment", INCREMENT, UnreservedKeyword},
	{"index", INDEX, UnreservedKeyword},
	{"indexes", INDEXES, UnreservedKeyword},
	{"inherit", INHERIT, UnreservedKeyword},
	{"inherits", INHERITS, UnreservedKeyword},
	{"initially", INITIALLY, ReservedKeyword},
	{"inline", INLINE_P, UnreservedKeyword},
	{"inner", INNER_P, TypeFuncNameKeyword},
	{"inout", INOUT, ColNameKeyword},
	{"input", INPUT_P, UnreservedKeyword},
	{"insensitive", INSENSITIVE, UnreservedKeyword},
	{"insert", INSERT, UnreservedKeyword},
	{"instead", INSTEAD, UnreservedKeyword},
	{"int", INT_P, ColNameKeyword},
	{"integer", INTEGER, ColNameKeyword},
	{"intersect", INTERSECT, ReservedKeyword},
	{"interval", INTERVAL, ColNameKeyword},
	{"into", INTO, ReservedKeyword},
	{"invoker", INVOKER, UnreservedKeyword},
	{"is", IS, TypeFuncNameKeyword},
	{"isnull", ISNULL, TypeFuncNameKeyword},
	{"isolation", ISOLATION, UnreservedKeyword},
	{"join", JOIN, TypeFuncNameKeyword},
	{"key", KEY, UnreservedKeyword},
	{"label", LABEL, UnreservedKeyword},
	{"language", LANGUAGE, UnreservedKeyword},
	{"large", LARGE_P, UnreservedKeyword},
	{"last", LAST_P, UnreservedKeyword},
	{"lateral", LATERAL_P, ReservedKeyword},
	{"leading", LEADING, ReservedKeyword},
	{"leakproof", LEAKPROOF, UnreservedKeyword},
	{"least", LEAST, ColNameKeyword},
	{"left", LEFT, TypeFuncNameKeyword},
	{"level", LEVEL, UnreservedKeyword},
	{"like", LIKE, TypeFuncNameKeyword},
	{"limit", LIMIT, ReservedKeyword},
	{"listen", LISTEN, UnreservedKeyword},
	{"load", LOAD, UnreservedKeyword},
	{"local", LOCAL, UnreservedKeyword},
	{"localtime", LOCALTIME, ReservedKeyword},
	{"localtimestamp", LOCALTIMESTAMP, ReservedKeyword},
	{"location", LOCATION, UnreservedKeyword},
	{"lock", LOCK_P, UnreservedKeyword},
	{"locked", LOCKED, UnreservedKeyword},
	{"logged", LOGGED, UnreservedKeyword},
	{"mapping", MAPPING, UnreservedKeyword},
	{"match", MATCH, UnreservedKeyword},
	{"materialized", MATERIALIZED, UnreservedKeyword},
	{"maxvalue", MAXVALUE, UnreservedKeyword},
	{"method", METHOD, UnreservedKeyword},
	{"minute", MINUTE_P, UnreservedKeyword},
	{"minvalue", MINVALUE, UnreservedKeyword},
	{"mode", MODE, UnreservedKeyword},
	{"month", MONTH_P, UnreservedKeyword},
	{"move", MOVE, UnreservedKeyword},
	{"name", NAME_P, UnreservedKeyword},
	{"names", NAMES, UnreservedKeyword},
	{"national", NATIONAL, ColNameKeyword},
	{"natural", NATURAL, TypeFuncNameKeyword},
	{"nchar", NCHAR, ColNameKeyword},
	{"new", NEW, UnreservedKeyword},
	{"next", NEXT, UnreservedKeyword},
	{"no", NO, UnreservedKeyword},
	{"none", NONE, ColNameKeyword},
	{"not", NOT, ReservedKeyword},
	{"nothing", NOTHING, UnreservedKeyword},
	{"notify", NOTIFY, UnreservedKeyword},
	{"notnull", NOTNULL, TypeFuncNameKeyword},
	{"nowait", NOWAIT, UnreservedKeyword},
	{"null", NULL_P, ReservedKeyword},
	{"nullif", NULLIF, ColNameKeyword},
	{"nulls", NULLS_P, UnreservedKeyword},
	{"numeric", NUMERIC, ColNameKeyword},
	{"object", OBJECT_P, UnreservedKeyword},
	{"of", OF, UnreservedKeyword},
	{"off", OFF, UnreservedKeyword},
	{"offset", OFFSET, ReservedKeyword},
	{"oids", OIDS, UnreservedKeyword},
	{"old", OLD, UnreservedKeyword},
	{"on", ON, ReservedKeyword},
	{"only", ONLY, ReservedKeyword},
	{"operator", OPERATOR, UnreservedKeyword},
	{"option", OPTION, UnreservedKeyword},
	{"options", OPTIONS, UnreservedKeyword},
	{"or", OR, ReservedKeyword},
	{"order", ORDER, ReservedKeyword},
	{"ordinality", ORDINALITY, UnreservedKeyword},
	{"others", OTHERS, UnreservedKeyword},
	{"out", OUT_P, ColNameKeyword},
	{"outer", OUTER_P, TypeFuncNameKeyword},
	{"over", OVER, UnreservedKeyword},
	{"overlaps", OVERLAPS, TypeFuncNameKeyword},
	{"overlay", OVERLAY, ColNameKeyword},
	{"overriding", OVERRIDING, UnreservedKeyword},
	{"owned", OWNED, UnreservedKeyword},
	{"owner", OWNER, UnreservedKeyword},
	{"parallel", PARALLEL, UnreservedKeyword},
	{"parser", PARSER, UnreservedKeyword},
	{"partial", PARTIAL, UnreservedKeyword},
	{"partition", PARTITION, UnreservedKeyword},
	{"passing", PASSING, UnreservedKeyword},
	{"password", PASSWORD, UnreservedKeyword},
	{"placing", PLACING, ReservedKeyword},
	{"plans", PLANS, UnreservedKeyword},
	{"policy", POLICY, UnreservedKeyword},
	{"position", POSITION, ColNameKeyword},
	{"preceding", PRECEDING, UnreservedKeyword},
	{"precision", PRECISION, ColNameKeyword},
	{"preserve", PRESERVE, UnreservedKeyword},
	{"prepare", PREPARE, UnreservedKeyword},
	{"prepared", PREPARED, UnreservedKeyword},
	{"primary", PRIMARY, ReservedKeyword},
	{"prior", PRIOR, UnreservedKeyword},
	{"privileges", PRIVILEGES, UnreservedKeyword},
	{"procedural", PROCEDURAL, UnreservedKeyword},
	{"procedure", PROCEDURE, UnreservedKeyword},
	{"procedures", PROCEDURES, UnreservedKeyword},
	{"program", PROGRAM, UnreservedKeyword},
	{"publication", PUBLICATION, UnreservedKeyword},
	{"quote", QUOTE, UnreservedKeyword},
	{"range", RANGE, UnreservedKeyword},
	{"read", READ, UnreservedKeyword},
	{"real", REAL, ColNameKeyword},
	{"reassign", REASSIGN, UnreservedKeyword},
	{"recheck", RECHECK, UnreservedKeyword},
	{"recursive", RECURSIVE, UnreservedKeyword},
	{"ref", REF, UnreservedKeyword},
	{"references", REFERENCES, ReservedKeyword},
	{"referencing", REFERENCING, UnreservedKeyword},
	{"refresh", REFRESH, UnreservedKeyword},
	{"reindex", REINDEX, UnreservedKeyword},
	{"relative", RELATIVE_P, UnreservedKeyword},
	{"release", RELEASE, UnreservedKeyword},
	{"rename", RENAME, UnreservedKeyword},
	{"repeatable", REPEATABLE, UnreservedKeyword},
	{"replace", REPLACE, UnreservedKeyword},
	{"replica", REPLICA, UnreservedKeyword},
	{"reset", RESET, UnreservedKeyword},
	{"restart", RESTART, UnreservedKeyword},
	{"restrict", RESTRICT, UnreservedKeyword},
	{"returning", RETURNING, ReservedKeyword},
	{"returns", RETURNS, UnreservedKeyword},
	{"revoke", REVOKE, UnreservedKeyword},
	{"right", RIGHT, TypeFuncNameKeyword},
	{"role", ROLE, UnreservedKeyword},
	{"rollback", ROLLBACK, UnreservedKeyword},
	{"rollup", ROLLUP, UnreservedKeyword},
	{"routine", ROUTINE, UnreservedKeyword},
	{"routines", ROUTINES, UnreservedKeyword},
	{"row", ROW, ColNameKeyword},
	{"rows", ROWS, UnreservedKeyword},
	{"rule", RULE, UnreservedKeyword},
	{"savepoint", SAVEPOINT, UnreservedKeyword},
	{"schema", SCHEMA, UnreservedKeyword},
	{"schemas", SCHEMAS, UnreservedKeyword},
	{"scroll", SCROLL, UnreservedKeyword},
	{"search", SEARCH, UnreservedKeyword},
	{"second", SECOND_P, UnreservedKeyword},
	{"security", SECURITY, UnreservedKeyword},
	{"select", SELECT, ReservedKeyword},
	{"sequence", SEQUENCE, UnreservedKeyword},
	{"sequences", SEQUENCES, UnreservedKeyword},
	{"serializable", SERIALIZABLE, UnreservedKeyword},
	{"server", SERVER, UnreservedKeyword},
	{"session", SESSION, UnreservedKeyword},
	{"session_user", SESSION_USER, ReservedKeyword},
	{"set", SET, UnreservedKeyword},
	{"sets", SETS, UnreservedKeyword},
	{"setof", SETOF, ColNameKeyword},
	{"share", SHARE, UnreservedKeyword},
	{"show", SHOW, UnreservedKeyword},
	{"similar", SIMILAR, TypeFuncNameKeyword},
	{"simple", SIMPLE, UnreservedKeyword},
	{"skip", SKIP, UnreservedKeyword},
	{"smallint", SMALLINT, ColNameKeyword},
	{"snapshot", SNAPSHOT, UnreservedKeyword},
	{"some", SOME, ReservedKeyword},
	{"sql", SQL_P, UnreservedKeyword},
	{"stable", STABLE, UnreservedKeyword},
	{"standalone", STANDALONE_P, UnreservedKeyword},
	{"start", START, UnreservedKeyword},
	{"statement", STATEMENT, UnreservedKeyword},
	{"statistics", STATISTICS, UnreservedKeyword},
	{"stdin", STDIN, UnreservedKeyword},
	{"stdout", STDOUT, UnreservedKeyword},
	{"storage", STORAGE, UnreservedKeyword},
	{"stored", STORED, UnreservedKeyword},
	{"strict", STRICT_P, UnreservedKeyword},
	{"strip", STRIP_P, UnreservedKeyword},
	{"subscription", SUBSCRIPTION, UnreservedKeyword},
	{"substring", SUBSTRING, ColNameKeyword},
	{"support", SUPPORT, UnreservedKeyword},
	{"symmetric", SYMMETRIC, ReservedKeyword},
	{"sysid", SYSID, UnreservedKeyword},
	{"system", SYSTEM_P, UnreservedKeyword},
	{"table", TABLE, ReservedKeyword},
	{"tables", TABLES, UnreservedKeyword},
	{"tablesample", TABLESAMPLE, TypeFuncNameKeyword},
	{"tablespace", TABLESPACE, UnreservedKeyword},
	{"temp", TEMP, UnreservedKeyword},
	{"template", TEMPLATE, UnreservedKeyword},
	{"temporary", TEMPORARY, UnreservedKeyword},
	{"text", TEXT_P, UnreservedKeyword},
	{"then", THEN, ReservedKeyword},
	{"ties", TIES, UnreservedKeyword},
	{"time", TIME, ColNameKeyword},
	{"timestamp", TIMESTAMP, ColNameKeyword},
	{"to", TO, ReservedKeyword},
	{"trailing", TRAILING, ReservedKeyword},
	{"transaction", TRANSACTION, UnreservedKeyword},
	{"transform", TRANSFORM, UnreservedKeyword},
	{"treat", TREAT, ColNameKeyword},
	{"trigger", TRIGGER, UnreservedKeyword},
	{"trim", TRIM, ColNameKeyword},
	{"true", TRUE_P, ReservedKeyword},
	{"truncate", TRUNCATE, UnreservedKeyword},
	{"trusted", TRUSTED, UnreservedKeyword},
	{"type", TYPE_P, UnreservedKeyword},
	{"types", TYPES_P, UnreservedKeyword},
	{"unbounded", UNBOUNDED, UnreservedKeyword},
	{"uncommitted", UNCOMMITTED, UnreservedKeyword},
	{"unencrypted", UNENCRYPTED, UnreservedKeyword},
	{"union", UNION, ReservedKeyword},
	{"unique", UNIQUE, ReservedKeyword},
	{"unknown", UNKNOWN, UnreservedKeyword},
	{"unlisten", UNLISTEN, UnreservedKeyword},
	{"unlogged", UNLOGGED, UnreservedKeyword},
	{"until", UNTIL, UnreservedKeyword},
	{"update", UPDATE, UnreservedKeyword},
	{"user", USER, ReservedKeyword},
	{"using", USING, ReservedKeyword},
	{"vacuum", VACUUM, UnreservedKeyword},
	{"valid", VALID, UnreservedKeyword},
	{"validate", VALIDATE, UnreservedKeyword},
	{"validator", VALIDATOR, UnreservedKeyword},
	{"value", VALUE_P, UnreservedKeyword},
	{"values", VALUES, ColNameKeyword},
	{"varchar", VARCHAR, ColNameKeyword},
	{"variadic", VARIADIC, ReservedKeyword},
	{"varying", VARYING, UnreservedKeyword},
	{"verbose", VERBOSE, TypeFuncNameKeyword},
	{"version", VERSION_P, UnreservedKeyword},
	{"view", VIEW, UnreservedKeyword},
	{"views", VIEWS, UnreservedKeyword},
	{"volatile", VOLATILE, UnreservedKeyword},
	{"when", WHEN, ReservedKeyword},
	{"where", WHERE, ReservedKeyword},
	{"whitespace", WHITESPACE_P, UnreservedKeyword},
	{"window", WINDOW, ReservedKeyword},
	{"with", WITH, ReservedKeyword},
	{"within", WITHIN, UnreservedKeyword},
	{"without", WITHOUT, UnreservedKeyword},
	{"work", WORK, UnreservedKeyword},
	{"wrapper", WRAPPER, UnreservedKeyword},
	{"write", WRITE, UnreservedKeyword},
	{"xml", XML_P, UnreservedKeyword},
	{"xmlattributes", XMLATTRIBUTES, ColNameKeyword},
	{"xmlconcat", XMLCONCAT, ColNameKeyword},
	{"xmlelement", XMLELEMENT, ColNameKeyword},
	{"xmlexists", XMLEXISTS, ColNameKeyword},
	{"xmlforest", XMLFOREST, ColNameKeyword},
	{"xmlnamespaces", XMLNAMESPACES, ColNameKeyword},
	{"xmlparse", XMLPARSE, ColNameKeyword},
	{"xmlpi", XMLPI, ColNameKeyword},
	{"xmlroot", XMLROOT, ColNameKeyword},
	{"xmlserialize", XMLSERIALIZE, ColNameKeyword},
	{"xmltable", XMLTABLE, ColNameKeyword},
	{"year", YEAR_P, UnreservedKeyword},
	{"yes", YES_P, UnreservedKeyword},
	{"zone", ZONE, UnreservedKeyword},
}

// keywordLookupMap provides O(1) keyword lookup by lowercase name.
var keywordLookupMap map[string]*KeywordInfo

// keywordTokenNames maps keyword token types back to their uppercase
// spelling, for debug output.
var keywordTokenNames map[TokenType]string

// keywordByToken maps keyword token types to their entries.
var keywordByToken map[TokenType]*KeywordInfo

func init() {
	keywordLookupMap = make(map[string]*KeywordInfo, len(Keywords))
	keywordTokenNames = make(map[TokenType]string, len(Keywords))
	keywordByToken = make(map[TokenType]*KeywordInfo, len(Keywords))
	for i := range Keywords {
		keywordLookupMap[Keywords[i].Name] = &Keywords[i]
		keywordTokenNames[Keywords[i].Token] = strings.ToUpper(Keywords[i].Name)
		keywordByToken[Keywords[i].Token] = &Keywords[i]
	}
}

// LookupKeyword searches for a keyword by name (case-insensitive).
// Returns nil when the name is not a keyword.
func LookupKeyword(name string) *KeywordInfo {
	return keywordLookupMap[strings.ToLower(name)]
}

// IsKeyword returns true if the given name is a SQL keyword.
func IsKeyword(name string) bool {
	return LookupKeyword(name) != nil
}

// IsReservedKeyword returns true if the given name is a reserved keyword.
func IsReservedKeyword(name string) bool {
	if kw := LookupKeyword(name); kw != nil {
		return kw.Category == ReservedKeyword
	}
	return false
}

// GetKeywordNames returns a sorted slice of all keyword names.
func GetKeywordNames() []string {
	names := make([]string, len(Keywords))
	for i, kw := range Keywords {
		names[i] = kw.Name
	}
	sort.Strings(names)
	return names
}

// GetKeywordsByCategory returns all keywords in a specific category.
func GetKeywordsByCategory(category KeywordCategory) []KeywordInfo {
	var result []KeywordInfo
	for _, kw := range Keywords {
		if kw.Category == category {
			result = append(result, kw)
		}
	}
	return result
}
