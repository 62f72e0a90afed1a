package asm

// assembler.go walks a parsed Program and emits the 3-byte-per-instruction
// binary image the vm package loads.

// Assembler resolves operands against a symbol table and serializes
// instructions.
type Assembler struct {
	symbols SymbolTable
}

// NewAssembler creates an assembler that resolves label operands against
// symbols.
func NewAssembler(symbols SymbolTable) *Assembler {
	return &Assembler{symbols: symbols}
}

// Assemble serializes prog to its binary image. Every statement contributes
// exactly 3 bytes: opcode then a 16-bit big-endian operand.
func (a *Assembler) Assemble(prog Program) ([]byte, error) {
	out := make([]byte, 0, len(prog)*3)

	for _, stmt := range prog {
		operand, err := a.resolve(stmt.Operand)
		if err != nil {
			return nil, err
		}

		out = append(out, byte(stmt.Op), byte(operand>>8), byte(operand))
	}

	return out, nil
}

func (a *Assembler) resolve(op Operand) (uint16, error) {
	switch op.Kind {
	case OperandNone, OperandNumber:
		return op.Value, nil

	case OperandLabel:
		idx, ok := a.symbols[op.Label]
		if !ok {
			return 0, &UndefinedLabelError{Name: op.Label}
		}

		return idx * 3, nil

	default:
		return 0, nil
	}
}

// Assemble is a convenience wrapper that lexes, parses and assembles src in
// one call.
func Assemble(src string) ([]byte, error) {
	prog, symbols, err := NewParser(src).Parse()
	if err != nil {
		return nil, err
	}

	return NewAssembler(symbols).Assemble(prog)
}
