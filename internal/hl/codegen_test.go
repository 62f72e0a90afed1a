package hl_test

import (
	"strings"
	"testing"

	"github.com/cmars/lilmac/internal/hl"
)

func TestCompile_ProgramFraming(t *testing.T) {
	asm, err := hl.Compile("halt;")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	want := "call _main\nhlt\nhlt\n"
	if !strings.HasPrefix(asm, want) {
		t.Fatalf("asm = %q, want prefix %q", asm, want)
	}
}

func TestCompile_ConstantPoolDeduplicates(t *testing.T) {
	asm, err := hl.Compile("let x = 5; let y = 5;")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if n := strings.Count(asm, "_5 dat 5"); n != 1 {
		t.Errorf("found %d copies of the constant cell for 5, want 1", n)
	}
}

func TestCompile_AdditionEmitsAddMnemonic(t *testing.T) {
	asm, err := hl.Compile("let x = 1 + 2;")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	want := "call _main\nhlt\nx dat 0\nlda _1\nadd _2\nsta x\n"
	if !strings.HasPrefix(asm, want) {
		t.Fatalf("asm = %q, want prefix %q", asm, want)
	}
}

func TestCompile_FunctionCall(t *testing.T) {
	asm, err := hl.Compile("fn add(a,b) { return a + b; } fn _main() { let r = add(3,4); halt; }")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	for _, want := range []string{"add\n", "call add\n", "lda _ret\n", "ret\n"} {
		if !strings.Contains(asm, want) {
			t.Errorf("asm missing %q:\n%s", want, asm)
		}
	}
}

func TestCompile_CompoundInfixRHSSpillsToTemp(t *testing.T) {
	asm, err := hl.Compile("let x = 1 + (2 + 3);")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if !strings.Contains(asm, "_t0 dat 0") {
		t.Errorf("expected a spilled temporary for the compound rhs:\n%s", asm)
	}
}

func TestCompile_WhileLoopBranches(t *testing.T) {
	asm, err := hl.Compile("while i < 10 { i = i + 1; }")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if !strings.Contains(asm, "blt _l1") {
		t.Errorf("expected a blt branch into the loop body:\n%s", asm)
	}
}

func TestCompile_UnknownLibraryIsFatal(t *testing.T) {
	_, err := hl.Compile("use nonexistent;")
	if err == nil {
		t.Fatalf("expected code-gen error for unknown library")
	}
}

func TestCompile_UseStdInlinesLibrary(t *testing.T) {
	asm, err := hl.Compile("use std;")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if !strings.Contains(asm, "\nmul\n") {
		t.Errorf("expected std library's mul routine to be inlined:\n%s", asm)
	}
}
