package asm

import "fmt"

// LexError reports an unrecognized byte in assembly source.
type LexError struct {
	Line int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("asm: line %d: unexpected character %q", e.Line, e.Char)
}

// SyntaxError reports an unexpected token while parsing an instruction
// stream.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("asm: line %d: %s", e.Line, e.Msg)
}

// UndefinedLabelError reports a label operand with no binding in the symbol
// table at assembly time.
type UndefinedLabelError struct {
	Name string
}

func (e *UndefinedLabelError) Error() string {
	return fmt.Sprintf("asm: undefined label %q", e.Name)
}
