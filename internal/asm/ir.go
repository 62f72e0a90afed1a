package asm

// ir.go defines the intermediate representation produced by the parser and
// consumed by the assembler: a flat instruction list plus a symbol table
// mapping labels to instruction indices.

import "github.com/cmars/lilmac/internal/vm"

// OperandKind distinguishes a literal operand from a label reference that
// must be resolved at assembly time.
type OperandKind int

const (
	OperandNone OperandKind = iota
	OperandNumber
	OperandLabel
)

// Operand is the operand of an instruction: either an immediate number or
// an unresolved label name.
type Operand struct {
	Kind  OperandKind
	Value uint16
	Label string
}

// Statement is one instruction: a mnemonic and its (possibly absent)
// operand.
type Statement struct {
	Op      vm.Opcode
	Operand Operand
	Line    int
}

// Program is the parsed instruction list, in emission order. Each element
// becomes exactly 3 bytes in the assembled image.
type Program []Statement

// SymbolTable maps a label name to the instruction index it was bound to.
// The byte offset of that instruction is 3 times the index.
type SymbolTable map[string]uint16
