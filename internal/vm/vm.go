package vm

// vm.go defines the virtual machine and its fetch-decode-execute loop.

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cmars/lilmac/internal/log"
	"github.com/cmars/lilmac/internal/ttyio"
)

// Machine is a computer simulated in software: a flat memory, a single
// accumulator, two condition flags, and an explicit call stack. There is no
// general-purpose register file and no privilege separation; this is a
// machine sized for a classroom, not an operating system.
type Machine struct {
	PC     uint16 // Program counter; byte offset of the next instruction.
	Acc    uint16 // The accumulator. The only arithmetic register.
	N      bool   // Negative flag: set by SUB when the operand exceeds acc.
	C      bool   // Carry flag: set by ADD on unsigned overflow.
	Halted bool

	Stack []uint16 // Return addresses pushed by CALL, popped by RET.
	Mem   Memory

	in  *ttyio.Reader
	out io.Writer

	log *log.Logger
}

// OptionFn configures a Machine during New.
type OptionFn func(*Machine)

// WithLogger overrides the machine's logger.
func WithLogger(logger *log.Logger) OptionFn {
	return func(m *Machine) { m.log = logger }
}

// WithIO overrides the machine's input and output streams. The default is
// standard input and standard output.
func WithIO(in io.Reader, out io.Writer) OptionFn {
	return func(m *Machine) {
		m.in = ttyio.NewReader(in, out)
		m.out = out
	}
}

// New creates and initializes a machine.
func New(opts ...OptionFn) *Machine {
	m := &Machine{
		log: log.DefaultLogger(),
		out: os.Stdout,
	}
	m.in = ttyio.NewReader(os.Stdin, os.Stdout)

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Run executes instructions until HLT sets the halted flag or a fatal
// runtime error occurs. There is no other way to stop the loop: the machine
// has no cancellation or timeout mechanism of its own.
func (m *Machine) Run() error {
	for !m.Halted {
		if err := m.step(); err != nil {
			return err
		}
	}

	return nil
}

// step fetches, decodes and executes a single instruction.
func (m *Machine) step() error {
	rec, err := m.Mem.Fetch3(m.PC)
	if err != nil {
		return err
	}

	m.PC += 3

	op := Opcode(rec[0] & 0x0f)
	operand := binary.BigEndian.Uint16(rec[1:3])

	m.log.Debug("fetch", "pc", fmt.Sprintf("%#04x", m.PC-3), "op", op, "operand", operand)

	return m.execute(op, operand)
}

func (m *Machine) execute(op Opcode, operand uint16) error {
	switch op {
	case HLT:
		m.Halted = true

	case ADD:
		val, err := m.Mem.M16(operand)
		if err != nil {
			return err
		}

		sum := uint32(m.Acc) + uint32(val)
		m.C = sum > 0xffff
		m.N = false
		m.Acc = uint16(sum)

	case SUB:
		val, err := m.Mem.M16(operand)
		if err != nil {
			return err
		}

		m.N = val > m.Acc
		m.C = false
		m.Acc -= val

	case LDA:
		val, err := m.Mem.M16(operand)
		if err != nil {
			return err
		}

		m.Acc = val

	case STA:
		return m.Mem.StoreM16(operand, m.Acc)

	case BRA:
		m.PC = operand

	case BRZ:
		if m.Acc == 0 {
			m.PC = operand
		}

	case BGT:
		if m.Acc != 0 && !m.N {
			m.PC = operand
		}

	case BLT:
		if m.N {
			m.PC = operand
		}

	case INP:
		return m.input()

	case OUT:
		_, err := fmt.Fprintf(m.out, "%d\n", m.Acc)
		return err

	case OTC:
		_, err := fmt.Fprintf(m.out, "%c\n", rune(m.Acc))
		return err

	case DAT:
		// No-op: the operand is data, already consumed by the fetch.

	case CALL:
		m.Stack = append(m.Stack, m.PC)
		m.PC = operand

	case RET:
		if len(m.Stack) == 0 {
			return ErrStackUnderflow
		}

		m.PC = m.Stack[len(m.Stack)-1]
		m.Stack = m.Stack[:len(m.Stack)-1]

	default:
		return fmt.Errorf("%w: %#x", ErrOpcode, op)
	}

	return nil
}

// input implements INP: a single line is read from the input stream. If the
// trimmed line cannot be parsed as an unsigned 16-bit decimal number and is
// exactly one character long, that character's codepoint becomes the
// accumulator. Otherwise the line is parsed as a number; a malformed,
// multi-character, non-numeric line is a fatal error. Note a single-digit
// numeric line, e.g. "5", is a number, not the codepoint of the digit.
func (m *Machine) input() error {
	line, err := m.in.ReadLine()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInput, err)
	}

	if val, perr := parseUint16(line); perr == nil {
		m.Acc = val
		return nil
	} else if len([]rune(line)) == 1 {
		m.Acc = uint16([]rune(line)[0])
		return nil
	} else {
		return fmt.Errorf("%w: %q: %w", ErrInput, line, perr)
	}
}
