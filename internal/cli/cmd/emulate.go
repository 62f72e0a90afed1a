package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cmars/lilmac/internal/cli"
	"github.com/cmars/lilmac/internal/log"
	"github.com/cmars/lilmac/internal/vm"
)

// Emulate loads a binary image and runs it to halt.
type Emulate struct{}

var _ cli.Command = Emulate{}

func (Emulate) Description() string {
	return "emulate a binary image"
}

func (Emulate) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("emulate", flag.ExitOnError)
}

func (Emulate) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, "emulate <input.bin>")
	return err
}

func (Emulate) Run(_ context.Context, args []string, out io.Writer, logger *log.Logger) int {
	if len(args) != 1 {
		logger.Error("emulate requires an input path")
		return 1
	}

	code, err := os.ReadFile(args[0])
	if err != nil {
		logger.Error("read input", "err", err)
		return 1
	}

	return runImage(code, out, logger)
}

// runImage loads code into a fresh machine and runs it to halt, reporting
// a fatal message and exit code 1 on any runtime error.
func runImage(code []byte, out io.Writer, logger *log.Logger) int {
	m := vm.New(vm.WithLogger(logger), vm.WithIO(os.Stdin, out))

	if _, err := vm.NewLoader(m).Load(code); err != nil {
		logger.Error("load", "err", err)
		return 1
	}

	if err := m.Run(); err != nil {
		logger.Error("run", "err", err)
		return 1
	}

	return 0
}
