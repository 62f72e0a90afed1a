package vm

// memory.go implements the machine's flat, byte-addressable memory and the
// M16/STA symmetry the ISA relies on to store 16-bit cells.

import (
	"encoding/binary"
	"fmt"
)

// AddrSpace is the size of the machine's logical address space in bytes.
const AddrSpace = 0x10000

// Memory is the machine's flat, byte-addressable memory.
type Memory [AddrSpace]byte

// M16 reads the 16-bit big-endian value stored in the two bytes immediately
// following byte offset addr, i.e. bytes [addr+1, addr+2]. This is how a DAT
// cell's payload, or an instruction's own operand bytes, are read as data.
func (m *Memory) M16(addr uint16) (uint16, error) {
	lo, hi, err := m.span(addr)
	if err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint16(m[lo:hi]), nil
}

// StoreM16 writes val as a 16-bit big-endian value into bytes [addr+1,
// addr+2], symmetric with M16.
func (m *Memory) StoreM16(addr uint16, val uint16) error {
	lo, hi, err := m.span(addr)
	if err != nil {
		return err
	}

	binary.BigEndian.PutUint16(m[lo:hi], val)

	return nil
}

// Fetch3 reads the 3-byte instruction record at addr.
func (m *Memory) Fetch3(addr uint16) ([3]byte, error) {
	var rec [3]byte

	end := int(addr) + 3
	if end > len(m) {
		return rec, fmt.Errorf("%w: address %#04x out of range", ErrAddress, addr)
	}

	copy(rec[:], m[addr:end])

	return rec, nil
}

// span returns the byte range [addr+1, addr+3) used by M16 and StoreM16,
// bounds-checked against the memory array.
func (m *Memory) span(addr uint16) (lo, hi int, err error) {
	lo = int(addr) + 1
	hi = lo + 2

	if hi > len(m) {
		return 0, 0, fmt.Errorf("%w: address %#04x out of range", ErrAddress, addr)
	}

	return lo, hi, nil
}
