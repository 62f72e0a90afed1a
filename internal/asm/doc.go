/*
Package asm lexes, parses, and assembles the machine's textual assembly
language into the 3-byte-per-instruction binary format the vm package
loads.

Grammar, line-oriented:

	program     := line*
	line        := (label)? (mnemonic operand?)? newline
	label       := identifier          ; bound to the NEXT instruction's index
	mnemonic    := "hlt" | "add" | "sub" | "lda" | "sta" | "bra" | "brz"
	             | "bgt" | "blt" | "inp" | "out" | "otc" | "dat"
	             | "call" | "ret"      ; case-insensitive
	operand     := number | identifier
	identifier  := [A-Za-z_][A-Za-z0-9_]* ; a label may not begin with a digit
	number      := [0-9]+

A label token occupying an instruction position binds immediately to the
current instruction index and does not itself consume a slot; the mnemonic
that follows (on the same or a later line) occupies the slot the label
refers to. An operand-taking mnemonic followed directly by a newline or EOF
defaults its operand to Number(0).

Resolution happens in Assemble: a Number operand serializes as-is; a Label
operand resolves to 3 times its instruction index in the symbol table,
fatal if absent.
*/
package asm
