package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteIdentifier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain lowercase", "users", "users"},
		{"underscore and digits", "tab_2", "tab_2"},
		{"dollar after first char", "t$x", "t$x"},
		{"mixed case", "FooBar", `"FooBar"`},
		{"leading digit", "2fast", `"2fast"`},
		{"embedded space", "my table", `"my table"`},
		{"embedded quote doubled", `a"b`, `"a""b"`},
		{"reserved keyword", "select", `"select"`},
		{"unreserved keyword stays bare", "version", "version"},
		{"empty", "", `""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteIdentifier(tt.in))
		})
	}
}

func TestQuoteQualified(t *testing.T) {
	assert.Equal(t, "public.users", QuoteQualified("public", "users"))
	assert.Equal(t, `db."Schema".t`, QuoteQualified("db", "Schema", "t"))
	// Empty parts are dropped rather than rendered as "".
	assert.Equal(t, "users", QuoteQualified("", "", "users"))
}

func TestQuoteStringLiteral(t *testing.T) {
	assert.Equal(t, "'abc'", QuoteStringLiteral("abc"))
	assert.Equal(t, "'it''s'", QuoteStringLiteral("it's"))
	assert.Equal(t, "''", QuoteStringLiteral(""))
}

func TestSpanUnion(t *testing.T) {
	a := Span{Start: Position{Line: 1, Column: 1, Offset: 0}, End: Position{Line: 1, Column: 7, Offset: 6}}
	b := Span{Start: Position{Line: 1, Column: 9, Offset: 8}, End: Position{Line: 2, Column: 4, Offset: 15}}

	u := a.Union(b)
	assert.Equal(t, a.Start, u.Start)
	assert.Equal(t, b.End, u.End)

	// Commutative.
	assert.Equal(t, u, b.Union(a))

	// A zero span is the identity.
	var zero Span
	assert.Equal(t, a, a.Union(zero))
	assert.Equal(t, a, zero.Union(a))
	assert.True(t, zero.IsZero())
	assert.False(t, a.IsZero())
}

func TestSpanString(t *testing.T) {
	s := Span{Start: Position{Line: 1, Column: 1}, End: Position{Line: 1, Column: 7}}
	assert.Equal(t, "1:1-1:7", s.String())
}

func TestRangeVarSqlString(t *testing.T) {
	rv := NewRangeVar("", "public", "users", Span{})
	assert.Equal(t, "public.users", rv.SqlString())

	only := NewRangeVar("", "", "t", Span{})
	only.Inh = false
	assert.Equal(t, "ONLY t", only.SqlString())

	aliased := NewRangeVar("", "", "t", Span{})
	aliased.Alias = &Alias{Aliasname: "x", Colnames: []string{"a"}}
	assert.Equal(t, "t AS x (a)", aliased.SqlString())
}

func TestAConstSqlString(t *testing.T) {
	assert.Equal(t, "42", NewA_Const(NewInteger(42), Span{}).SqlString())
	assert.Equal(t, "'hi'", NewA_Const(NewString("hi"), Span{}).SqlString())
	assert.Equal(t, "1.5", NewA_Const(NewFloat("1.5"), Span{}).SqlString())
	assert.Equal(t, "TRUE", NewA_Const(NewBoolean(true), Span{}).SqlString())

	null := &A_Const{IsNull: true}
	assert.Equal(t, "NULL", null.SqlString())
}

func TestTypeNameSqlString(t *testing.T) {
	tests := []struct {
		name string
		tn   *TypeName
		want string
	}{
		{"builtin spelling", NewTypeName([]string{"pg_catalog", "int8"}, Span{}), "bigint"},
		{"builtin without alias", NewTypeName([]string{"pg_catalog", "text"}, Span{}), "text"},
		{"user type", NewTypeName([]string{"myschema", "mood"}, Span{}), "myschema.mood"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tn.SqlString())
		})
	}

	mods := NewTypeName([]string{"pg_catalog", "numeric"}, Span{})
	mods.Typmods = []Node{NewA_Const(NewInteger(10), Span{}), NewA_Const(NewInteger(2), Span{})}
	assert.Equal(t, "numeric(10, 2)", mods.SqlString())

	arr := NewTypeName([]string{"pg_catalog", "int4"}, Span{})
	arr.ArrayBounds = []int{-1, 3}
	assert.Equal(t, "integer[][3]", arr.SqlString())
}
