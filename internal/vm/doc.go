/*
Package vm implements the machine: a flat 16-bit computer with a single
accumulator, in the tradition of the Little Man Computer.

Every instruction is exactly 3 bytes: an opcode byte followed by a 16-bit
big-endian operand. An "instruction address" N, as used by the assembler's
symbol table, maps to the byte offset 3*N. See Opcode for the full
instruction set and Machine for execution semantics.

	m := vm.New()
	_, err := vm.NewLoader(m).Load(program)
	err = m.Run()

# Bugs

There is no protection between code and data. A program that STAs into its
own executable region will observe the change on its next fetch.
*/
package vm
