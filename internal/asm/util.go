package asm

import "strconv"

// parseUint16 parses s as a decimal integer, truncating to 16 bits on
// overflow rather than failing: assembly source is not expected to carry
// out-of-range literals, but the lexer has no narrower error to report.
func parseUint16(s string) (uint16, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	var v uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, strconv.ErrSyntax
		}
		v = v*10 + uint16(c-'0') // wraps modulo 2^16
	}
	return v, nil
}
