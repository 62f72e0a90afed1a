package asm_test

import (
	"testing"

	"github.com/cmars/lilmac/internal/asm"
	"github.com/cmars/lilmac/internal/vm"
)

func TestParser_LabelBindsToNextInstruction(t *testing.T) {
	prog, symbols, err := asm.NewParser("lda ONE\nONE dat 1\n").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(prog) != 2 {
		t.Fatalf("len(prog) = %d, want 2", len(prog))
	}

	idx, ok := symbols["ONE"]
	if !ok || idx != 1 {
		t.Fatalf("symbols[ONE] = %d, %v; want 1, true", idx, ok)
	}
}

func TestParser_MissingOperandDefaultsToZero(t *testing.T) {
	prog, _, err := asm.NewParser("dat\n").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if prog[0].Operand.Kind != asm.OperandNumber || prog[0].Operand.Value != 0 {
		t.Errorf("operand = %+v, want Number(0)", prog[0].Operand)
	}
}

func TestParser_MissingOperandAtEOF(t *testing.T) {
	prog, _, err := asm.NewParser("hlt\ndat").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if prog[1].Op != vm.DAT || prog[1].Operand.Value != 0 {
		t.Errorf("prog[1] = %+v, want DAT 0", prog[1])
	}
}

func TestParser_BlankLinesPermitted(t *testing.T) {
	prog, _, err := asm.NewParser("\n\nhlt\n\n").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(prog) != 1 {
		t.Fatalf("len(prog) = %d, want 1", len(prog))
	}
}

func TestParser_LabelOnOwnLine(t *testing.T) {
	prog, symbols, err := asm.NewParser("bra SKIP\nSKIP\nhlt\n").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if idx := symbols["SKIP"]; idx != 1 {
		t.Fatalf("symbols[SKIP] = %d, want 1", idx)
	}

	if len(prog) != 2 {
		t.Fatalf("len(prog) = %d, want 2", len(prog))
	}
}

func TestParser_UnexpectedTokenAfterOperand(t *testing.T) {
	_, _, err := asm.NewParser("lda 5 6\n").Parse()
	if err == nil {
		t.Fatalf("expected syntax error")
	}
}

func TestParser_EmptyProgram(t *testing.T) {
	prog, symbols, err := asm.NewParser("").Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if len(prog) != 0 || len(symbols) != 0 {
		t.Fatalf("expected empty program and symbol table")
	}
}
