package vm

// loader.go copies an assembled byte image into the machine's memory at
// address 0, where execution begins.

import (
	"fmt"

	"github.com/cmars/lilmac/internal/log"
)

// Loader copies assembled object bytes into a machine's memory.
type Loader struct {
	vm  *Machine
	log *log.Logger
}

// NewLoader creates a loader for the given machine.
func NewLoader(vm *Machine) *Loader {
	return &Loader{vm: vm, log: log.DefaultLogger()}
}

// Load copies code into memory starting at address 0 and resets the program
// counter to the start of the image. The binary format has no header: code
// is an opaque concatenation of 3-byte instruction records.
func (l *Loader) Load(code []byte) (int, error) {
	if len(code)%3 != 0 {
		return 0, fmt.Errorf("vm: object code length %d is not a multiple of 3", len(code))
	}

	if len(code) > len(l.vm.Mem) {
		return 0, fmt.Errorf("%w: object code too large for memory", ErrAddress)
	}

	n := copy(l.vm.Mem[:], code)
	l.vm.PC = 0

	l.log.Debug("loaded program", "bytes", n)

	return n, nil
}
