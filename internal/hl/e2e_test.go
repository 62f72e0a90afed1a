package hl_test

// e2e_test.go drives the whole pipeline end to end: compile source to
// assembly text, assemble that text to a binary image, and run the image
// on the machine, then inspect the resulting memory cells. This is what
// catches a mismatch between what CodeGen emits and what the assembler
// lexer accepts — a round trip through assembly text, not just an
// assertion on the text itself.

import (
	"testing"

	"github.com/cmars/lilmac/internal/asm"
	"github.com/cmars/lilmac/internal/hl"
	"github.com/cmars/lilmac/internal/vm"
)

// cell reads the 16-bit payload of the named label's DAT cell after a run,
// using the assembler's own symbol table to find its address.
func cell(t *testing.T, m *vm.Machine, symbols asm.SymbolTable, name string) uint16 {
	t.Helper()

	idx, ok := symbols[name]
	if !ok {
		t.Fatalf("no symbol %q in assembled program", name)
	}

	val, err := m.Mem.M16(idx * 3)
	if err != nil {
		t.Fatalf("read cell %q: %v", name, err)
	}

	return val
}

// compileAssembleRun runs src through the compiler, assembler, and
// machine, returning the machine and the assembler's symbol table so the
// caller can inspect named cells.
func compileAssembleRun(t *testing.T, src string) (*vm.Machine, asm.SymbolTable) {
	t.Helper()

	asmText, err := hl.Compile(src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	prog, symbols, err := asm.NewParser(asmText).Parse()
	if err != nil {
		t.Fatalf("parse assembly:\n%s\nerr: %v", asmText, err)
	}

	code, err := asm.NewAssembler(symbols).Assemble(prog)
	if err != nil {
		t.Fatalf("assemble:\n%s\nerr: %v", asmText, err)
	}

	m := vm.New()

	if _, err := vm.NewLoader(m).Load(code); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := m.Run(); err != nil {
		t.Fatalf("run:\n%s\nerr: %v", asmText, err)
	}

	return m, symbols
}

func TestEndToEnd_CountingLoop(t *testing.T) {
	m, symbols := compileAssembleRun(t, `
fn _main() {
	let i = 0;
	while i < 10 {
		i = i + 1;
	}
	halt;
}
`)

	if got := cell(t, m, symbols, "i"); got != 10 {
		t.Errorf("i = %d, want 10", got)
	}
}

func TestEndToEnd_FunctionCall(t *testing.T) {
	m, symbols := compileAssembleRun(t, `
fn add(a, b) {
	return a + b;
}

fn _main() {
	let r = add(3, 4);
	halt;
}
`)

	if got := cell(t, m, symbols, "_ret"); got != 7 {
		t.Errorf("_ret = %d, want 7", got)
	}

	if got := cell(t, m, symbols, "r"); got != 7 {
		t.Errorf("r = %d, want 7", got)
	}
}

func TestEndToEnd_StdLibraryMultiply(t *testing.T) {
	m, symbols := compileAssembleRun(t, `
use std;

fn _main() {
	let r = mul(3, 4);
	halt;
}
`)

	if got := cell(t, m, symbols, "_ret"); got != 12 {
		t.Errorf("_ret = %d, want 12", got)
	}
}
