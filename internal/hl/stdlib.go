package hl

import _ "embed"

// stdSource holds the raw assembly text inlined wherever `use std;`
// appears in a compiled program. The ISA has no multiply instruction, so
// the library's one routine implements it by repeated addition, exercised
// through the same _p0/_p1/_ret calling convention CodeGen generates for
// every other function.
//
//go:embed std.asm
var stdSource string

// libraries maps a `use` directive's name to the raw assembly text
// inlined at the directive's site. There is no namespacing: a library's
// labels share the same flat symbol table as the rest of the program.
var libraries = map[string]string{
	"std": stdSource,
}
