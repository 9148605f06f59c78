/*
 * Value nodes: the literal payloads carried by A_Const and by list-valued
 * grammar rules (name lists, definition arguments). Mirrors PostgreSQL's
 * value.h node set.
 */

package ast

import (
	"fmt"
	"strconv"
)

// Integer holds an integer literal value.
type Integer struct {
	BaseNode
	IVal int64
}

// NewInteger creates an Integer value node.
func NewInteger(v int64) *Integer {
	return &Integer{BaseNode: BaseNode{Tag: T_Integer}, IVal: v}
}

func (n *Integer) String() string         { return fmt.Sprintf("Integer(%d)", n.IVal) }
func (n *Integer) SqlString() string      { return strconv.FormatInt(n.IVal, 10) }
func (n *Integer) ExpressionType() string { return "Integer" }

// Float holds a floating point or out-of-range integer literal. The value is
// kept as the original lexeme text; the parser does not interpret it.
type Float struct {
	BaseNode
	FVal string
}

// NewFloat creates a Float value node.
func NewFloat(v string) *Float {
	return &Float{BaseNode: BaseNode{Tag: T_Float}, FVal: v}
}

func (n *Float) String() string         { return fmt.Sprintf("Float(%s)", n.FVal) }
func (n *Float) SqlString() string      { return n.FVal }
func (n *Float) ExpressionType() string { return "Float" }

// String holds a string literal value or a name.
type String struct {
	BaseNode
	SVal string
}

// NewString creates a String value node.
func NewString(v string) *String {
	return &String{BaseNode: BaseNode{Tag: T_String}, SVal: v}
}

func (n *String) String() string         { return fmt.Sprintf("String(%q)", n.SVal) }
func (n *String) SqlString() string      { return QuoteStringLiteral(n.SVal) }
func (n *String) ExpressionType() string { return "String" }

// BitString holds a bit (b...) or hex (x...) string literal; the leading
// 'b' or 'x' of the value records which form was written.
type BitString struct {
	BaseNode
	BSVal string
}

// NewBitString creates a BitString value node.
func NewBitString(v string) *BitString {
	return &BitString{BaseNode: BaseNode{Tag: T_BitString}, BSVal: v}
}

func (n *BitString) String() string { return fmt.Sprintf("BitString(%s)", n.BSVal) }

func (n *BitString) SqlString() string {
	if n.BSVal == "" {
		return "B''"
	}
	prefix := "B"
	if n.BSVal[0] == 'x' {
		prefix = "X"
	}
	return prefix + "'" + n.BSVal[1:] + "'"
}
func (n *BitString) ExpressionType() string { return "BitString" }

// Boolean holds TRUE or FALSE.
type Boolean struct {
	BaseNode
	BoolVal bool
}

// NewBoolean creates a Boolean value node.
func NewBoolean(v bool) *Boolean {
	return &Boolean{BaseNode: BaseNode{Tag: T_Boolean}, BoolVal: v}
}

func (n *Boolean) String() string { return fmt.Sprintf("Boolean(%t)", n.BoolVal) }

func (n *Boolean) SqlString() string {
	if n.BoolVal {
		return "TRUE"
	}
	return "FALSE"
}
func (n *Boolean) ExpressionType() string { return "Boolean" }

// Null is the NULL literal.
type Null struct {
	BaseNode
}

// NewNull creates a Null value node.
func NewNull() *Null {
	return &Null{BaseNode: BaseNode{Tag: T_Null}}
}

func (n *Null) String() string         { return "Null" }
func (n *Null) SqlString() string      { return "NULL" }
func (n *Null) ExpressionType() string { return "Null" }
