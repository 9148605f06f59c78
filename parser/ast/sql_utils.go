/*
 * Deparse helpers: identifier quoting, literal escaping and list formatting
 * shared by the SqlString implementations. Quoting follows PostgreSQL's
 * rules: quote when the name is not a plain lowercase identifier or when it
 * collides with a keyword that is not usable in identifier position.
 */

package ast

import "strings"

func isPlainIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		switch {
		case c >= 'a' && c <= 'z', c == '_':
		case c >= '0' && c <= '9', c == '$':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// reservedDeparseKeywords lists the spellings that must be quoted when they
// appear as identifiers in generated SQL. This is the reserved portion of the
// keyword table; unreserved keywords are legal identifiers and stay bare.
var reservedDeparseKeywords = map[string]bool{
	"all": true, "analyse": true, "analyze": true, "and": true, "any": true,
	"array": true, "as": true, "asc": true, "asymmetric": true, "both": true,
	"case": true, "cast": true, "check": true, "collate": true, "column": true,
	"constraint": true, "create": true, "current_catalog": true,
	"current_date": true, "current_role": true, "current_time": true,
	"current_timestamp": true, "current_user": true, "default": true,
	"deferrable": true, "desc": true, "distinct": true, "do": true,
	"else": true, "end": true, "except": true, "false": true, "fetch": true,
	"for": true, "foreign": true, "from": true, "grant": true, "group": true,
	"having": true, "in": true, "initially": true, "intersect": true,
	"into": true, "lateral": true, "leading": true, "limit": true,
	"localtime": true, "localtimestamp": true, "not": true, "null": true,
	"offset": true, "on": true, "only": true, "or": true, "order": true,
	"placing": true, "primary": true, "references": true, "returning": true,
	"select": true, "session_user": true, "some": true, "symmetric": true,
	"table": true, "then": true, "to": true, "trailing": true, "true": true,
	"union": true, "unique": true, "user": true, "using": true,
	"variadic": true, "when": true, "where": true, "window": true, "with": true,
}

// QuoteIdentifier renders name as a SQL identifier, double-quoting it when
// required.
func QuoteIdentifier(name string) string {
	if isPlainIdentifier(name) && !reservedDeparseKeywords[name] {
		return name
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// QuoteQualified renders a dotted name, quoting each part independently.
func QuoteQualified(parts ...string) string {
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			quoted = append(quoted, QuoteIdentifier(p))
		}
	}
	return strings.Join(quoted, ".")
}

// QuoteStringLiteral renders value as a SQL string constant, doubling
// embedded single quotes.
func QuoteStringLiteral(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "''") + "'"
}

// sqlJoin renders each node's SqlString joined by sep.
func sqlJoin[T Node](nodes []T, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.SqlString()
	}
	return strings.Join(parts, sep)
}
