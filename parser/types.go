package parser

import (
	"github.com/pgsql-tw/portable-pgsql/parser/ast"
)

// parseTypeName parses a Typename: the SQL standard spellings mapped to
// their pg_catalog names, generic qualified names, optional type modifiers,
// SETOF, %TYPE, and array bounds in both the [] and ARRAY [] forms.
func (p *Parser) parseTypeName() (*ast.TypeName, error) {
	start := p.cur.Span

	setof := false
	if p.cur.Type == SETOF {
		setof = true
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	tn, err := p.parseSimpleTypeName()
	if err != nil {
		return nil, err
	}
	tn.Setof = setof

	// Array bounds: ARRAY [n], or any number of [] / [n].
	if p.cur.Type == ARRAY {
		if err := p.next(); err != nil {
			return nil, err
		}
		bound := -1
		if ok, err := p.accept(TokenType('[')); err != nil {
			return nil, err
		} else if ok {
			if p.cur.Type == ICONST {
				bound = int(p.cur.Value.Ival)
				if err := p.next(); err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(TokenType(']')); err != nil {
				return nil, err
			}
		}
		tn.ArrayBounds = []int{bound}
	} else {
		for p.cur.Type == TokenType('[') {
			if err := p.next(); err != nil {
				return nil, err
			}
			bound := -1
			if p.cur.Type == ICONST {
				bound = int(p.cur.Value.Ival)
				if err := p.next(); err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(TokenType(']')); err != nil {
				return nil, err
			}
			tn.ArrayBounds = append(tn.ArrayBounds, bound)
		}
	}

	tn.SetSpan(p.spanFrom(start))
	return tn, nil
}

// parseSimpleTypeName parses the type name proper, without SETOF or array
// bounds.
func (p *Parser) parseSimpleTypeName() (*ast.TypeName, error) {
	start := p.cur.Span

	switch p.cur.Type {
	case INT_P, INTEGER:
		return p.catalogType(start, "int4")
	case SMALLINT:
		return p.catalogType(start, "int2")
	case BIGINT:
		return p.catalogType(start, "int8")
	case REAL:
		return p.catalogType(start, "float4")
	case BOOLEAN_P:
		return p.catalogType(start, "bool")

	case FLOAT_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		name := "float8"
		var typmods []ast.Node
		if ok, err := p.accept(TokenType('(')); err != nil {
			return nil, err
		} else if ok {
			prec := p.cur
			if _, err := p.expect(ICONST); err != nil {
				return nil, err
			}
			if _, err := p.expect(TokenType(')')); err != nil {
				return nil, err
			}
			switch {
			case prec.Value.Ival < 1 || prec.Value.Ival > 53:
				return nil, syntaxErrorf(prec, "precision for type float must be between 1 and 53")
			case prec.Value.Ival <= 24:
				name = "float4"
			}
		}
		tn := ast.NewTypeName([]string{"pg_catalog", name}, p.spanFrom(start))
		tn.Typmods = typmods
		return tn, nil

	case DOUBLE_P:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(PRECISION); err != nil {
			return nil, err
		}
		return ast.NewTypeName([]string{"pg_catalog", "float8"}, p.spanFrom(start)), nil

	case DECIMAL_P, DEC, NUMERIC:
		if err := p.next(); err != nil {
			return nil, err
		}
		tn := ast.NewTypeName([]string{"pg_catalog", "numeric"}, p.spanFrom(start))
		mods, err := p.parseOptTypmods()
		if err != nil {
			return nil, err
		}
		tn.Typmods = mods
		tn.SetSpan(p.spanFrom(start))
		return tn, nil

	case BIT:
		if err := p.next(); err != nil {
			return nil, err
		}
		name := "bit"
		if ok, err := p.accept(VARYING); err != nil {
			return nil, err
		} else if ok {
			name = "varbit"
		}
		tn := ast.NewTypeName([]string{"pg_catalog", name}, p.spanFrom(start))
		mods, err := p.parseOptTypmods()
		if err != nil {
			return nil, err
		}
		tn.Typmods = mods
		tn.SetSpan(p.spanFrom(start))
		return tn, nil

	case CHARACTER, CHAR_P, NCHAR, NATIONAL, VARCHAR:
		return p.parseCharacterType(start)

	case TIME, TIMESTAMP:
		return p.parseDateTimeType(start)

	case INTERVAL:
		if err := p.next(); err != nil {
			return nil, err
		}
		tn := ast.NewTypeName([]string{"pg_catalog", "interval"}, p.spanFrom(start))
		mods, err := p.parseOptTypmods()
		if err != nil {
			return nil, err
		}
		tn.Typmods = mods
		tn.SetSpan(p.spanFrom(start))
		return tn, nil
	}

	// Generic type name: possibly qualified, %TYPE, typmods.
	name, err := p.anyName()
	if err != nil {
		return nil, err
	}
	tn := ast.NewTypeName(name, p.spanFrom(start))

	if p.cur.Type == TokenType('%') {
		la, err := p.peek()
		if err != nil {
			return nil, err
		}
		if la.Type == TYPE_P {
			if err := p.next(); err != nil {
				return nil, err
			}
			if err := p.next(); err != nil {
				return nil, err
			}
			tn.PctType = true
			tn.SetSpan(p.spanFrom(start))
			return tn, nil
		}
	}

	mods, err := p.parseOptTypmods()
	if err != nil {
		return nil, err
	}
	tn.Typmods = mods
	tn.SetSpan(p.spanFrom(start))
	return tn, nil
}

// catalogType consumes the current keyword and builds a pg_catalog type.
func (p *Parser) catalogType(start ast.Span, name string) (*ast.TypeName, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	return ast.NewTypeName([]string{"pg_catalog", name}, p.spanFrom(start)), nil
}

// parseOptTypmods parses an optional parenthesized typmod list.
func (p *Parser) parseOptTypmods() ([]ast.Node, error) {
	if p.cur.Type != TokenType('(') {
		return nil, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	mods, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenType(')')); err != nil {
		return nil, err
	}
	return mods, nil
}

// parseCharacterType handles CHARACTER/CHAR/NCHAR/NATIONAL [CHARACTER]
// [VARYING] and VARCHAR, all mapping onto bpchar or varchar.
func (p *Parser) parseCharacterType(start ast.Span) (*ast.TypeName, error) {
	varying := false
	switch p.cur.Type {
	case VARCHAR:
		varying = true
		if err := p.next(); err != nil {
			return nil, err
		}
	case NATIONAL:
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.cur.Type != CHARACTER && p.cur.Type != CHAR_P {
			return nil, syntaxError(p.cur)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
	default:
		if err := p.next(); err != nil {
			return nil, err
		}
	}
	if !varying {
		ok, err := p.accept(VARYING)
		if err != nil {
			return nil, err
		}
		varying = ok
	}

	name := "bpchar"
	if varying {
		name = "varchar"
	}
	tn := ast.NewTypeName([]string{"pg_catalog", name}, p.spanFrom(start))
	mods, err := p.parseOptTypmods()
	if err != nil {
		return nil, err
	}
	tn.Typmods = mods
	tn.SetSpan(p.spanFrom(start))
	return tn, nil
}

// parseDateTimeType handles TIME/TIMESTAMP [(p)] [WITH|WITHOUT TIME ZONE].
// WITH here arrives as WITH_LA thanks to the lookahead filter.
func (p *Parser) parseDateTimeType(start ast.Span) (*ast.TypeName, error) {
	base := "time"
	if p.cur.Type == TIMESTAMP {
		base = "timestamp"
	}
	if err := p.next(); err != nil {
		return nil, err
	}

	var mods []ast.Node
	if p.cur.Type == TokenType('(') {
		var err error
		mods, err = p.parseOptTypmods()
		if err != nil {
			return nil, err
		}
	}

	withTz := false
	switch p.cur.Type {
	case WITH_LA:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TIME); err != nil {
			return nil, err
		}
		if _, err := p.expect(ZONE); err != nil {
			return nil, err
		}
		withTz = true
	case WITHOUT:
		if err := p.next(); err != nil {
			return nil, err
		}
		if _, err := p.expect(TIME); err != nil {
			return nil, err
		}
		if _, err := p.expect(ZONE); err != nil {
			return nil, err
		}
	}

	name := base
	if withTz {
		name += "tz"
	}
	tn := ast.NewTypeName([]string{"pg_catalog", name}, p.spanFrom(start))
	tn.Typmods = mods
	return tn, nil
}
