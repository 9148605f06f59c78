package parser

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		name     string
		token    TokenType
		category KeywordCategory
	}{
		{"select", SELECT, ReservedKeyword},
		{"between", BETWEEN, ColNameKeyword},
		{"like", LIKE, TypeFuncNameKeyword},
		{"abort", ABORT_P, UnreservedKeyword},
		{"zone", ZONE, UnreservedKeyword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kw := LookupKeyword(tt.name)
			require.NotNil(t, kw)
			assert.Equal(t, tt.name, kw.Name)
			assert.Equal(t, tt.token, kw.Token)
			assert.Equal(t, tt.category, kw.Category)
		})
	}

	t.Run("unknown word", func(t *testing.T) {
		assert.Nil(t, LookupKeyword("frobnicate"))
	})

	t.Run("lookup folds case", func(t *testing.T) {
		kw := LookupKeyword("SELECT")
		require.NotNil(t, kw)
		assert.Equal(t, SELECT, kw.Token)
		kw = LookupKeyword("SeLeCt")
		require.NotNil(t, kw)
		assert.Equal(t, SELECT, kw.Token)
	})
}

func TestKeywordPredicates(t *testing.T) {
	assert.True(t, IsKeyword("table"))
	assert.False(t, IsKeyword("tables_are_great"))
	assert.True(t, IsReservedKeyword("from"))
	assert.False(t, IsReservedKeyword("abort"))
	assert.False(t, IsReservedKeyword("no_such_word"))
}

func TestKeywordTableIsSorted(t *testing.T) {
	names := GetKeywordNames()
	require.NotEmpty(t, names)
	assert.True(t, sort.StringsAreSorted(names), "keyword list must stay in kwlist order")
}

func TestKeywordCategoriesArePartition(t *testing.T) {
	total := 0
	for _, cat := range []KeywordCategory{UnreservedKeyword, ColNameKeyword, TypeFuncNameKeyword, ReservedKeyword} {
		kws := GetKeywordsByCategory(cat)
		for _, kw := range kws {
			assert.Equal(t, cat, kw.Category)
		}
		total += len(kws)
	}
	assert.Equal(t, len(Keywords), total)
}

func TestKeywordTokensAreContiguous(t *testing.T) {
	// Keyword token numbering follows the table order with no gaps.
	for i := 1; i < len(Keywords); i++ {
		assert.Equal(t, Keywords[i-1].Token+1, Keywords[i].Token,
			"token gap between %s and %s", Keywords[i-1].Name, Keywords[i].Name)
	}
}
