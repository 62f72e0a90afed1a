package asm_test

import (
	"bytes"
	"testing"

	"github.com/cmars/lilmac/internal/asm"
)

func TestAssemble_OneLabelLoad(t *testing.T) {
	code, err := asm.Assemble("lda ONE\nONE dat 1\n")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	want := []byte{3, 0, 3, 12, 0, 1}
	if !bytes.Equal(code, want) {
		t.Errorf("code = %v, want %v", code, want)
	}
}

func TestAssemble_EmptyProgram(t *testing.T) {
	code, err := asm.Assemble("")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if len(code) != 0 {
		t.Errorf("len(code) = %d, want 0", len(code))
	}
}

func TestAssemble_LengthIsMultipleOfThree(t *testing.T) {
	code, err := asm.Assemble("lda ONE\nadd ONE\nsta ONE\nONE dat 1\nhlt\n")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if len(code)%3 != 0 {
		t.Errorf("len(code) = %d, not a multiple of 3", len(code))
	}
}

func TestAssemble_UndefinedLabelIsFatal(t *testing.T) {
	_, err := asm.Assemble("bra NOWHERE\n")
	if err == nil {
		t.Fatalf("expected undefined label error")
	}
}

func TestAssemble_DigitBearingLabelsAssemble(t *testing.T) {
	// The code generator names constants, synthetic labels, parameter
	// cells, and temporaries with a leading underscore and a trailing
	// digit (_1, _l0, _p0, _t0); the assembler must round-trip them.
	code, err := asm.Assemble("lda _1\n_1 dat 1\n_l0 dat 0\n_p0 dat 0\n_t0 dat 0\n")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	want := []byte{
		3, 0, 3, // lda _1
		12, 0, 1, // _1 dat 1
		12, 0, 0, // _l0 dat 0
		12, 0, 0, // _p0 dat 0
		12, 0, 0, // _t0 dat 0
	}
	if !bytes.Equal(code, want) {
		t.Errorf("code = %v, want %v", code, want)
	}
}

func TestAssemble_CallAndRetMnemonics(t *testing.T) {
	code, err := asm.Assemble("call FN\nhlt\nFN lda ONE\nret\nONE dat 9\n")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}

	if len(code) != 5*3 {
		t.Fatalf("len(code) = %d, want %d", len(code), 5*3)
	}

	// call's operand resolves to FN's instruction index (2) * 3 = 6.
	if code[1] != 0 || code[2] != 6 {
		t.Errorf("call operand = %d, want 6", int(code[1])<<8|int(code[2]))
	}
}
