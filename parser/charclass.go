package parser

// Character classes from scan.l. The scanner works on bytes; anything with
// the high bit set counts as an identifier character, which keeps multibyte
// UTF-8 identifiers intact without decoding.

// isIdentStart checks if a byte can start an identifier: [A-Za-z\200-\377_].
func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b >= 0x80
}

// isIdentCont checks if a byte can continue an identifier:
// [A-Za-z\200-\377_0-9\$].
func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b == '$'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isSpace matches scan.l's {space}: space, tab, newline, carriage return,
// vertical tab and form feed.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// isSelfChar checks for characters that are tokens by themselves, using
// their ASCII value as the token type.
func isSelfChar(b byte) bool {
	switch b {
	case ',', '(', ')', '[', ']', '.', ';', ':', '+', '-', '*', '/', '%', '^', '<', '>', '=':
		return true
	default:
		return false
	}
}

// isOpChar checks for characters that can appear in a multi-character
// operator.
func isOpChar(b byte) bool {
	switch b {
	case '~', '!', '@', '#', '^', '&', '|', '`', '?', '+', '-', '*', '/', '%', '<', '>', '=':
		return true
	default:
		return false
	}
}
