package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cmars/lilmac/internal/asm"
	"github.com/cmars/lilmac/internal/cli"
	"github.com/cmars/lilmac/internal/log"
)

// Assemble lexes, parses, and assembles an assembly source file, writing
// the resulting binary image to an output path.
type Assemble struct{}

var _ cli.Command = Assemble{}

func (Assemble) Description() string {
	return "assemble a .asm file into a binary image"
}

func (Assemble) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("assemble", flag.ExitOnError)
}

func (Assemble) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, "assemble <input.asm> <output.bin>")
	return err
}

func (Assemble) Run(_ context.Context, args []string, _ io.Writer, logger *log.Logger) int {
	if len(args) != 2 {
		logger.Error("assemble requires an input and output path")
		return 1
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		logger.Error("read input", "err", err)
		return 1
	}

	code, err := asm.Assemble(string(src))
	if err != nil {
		logger.Error("assemble", "err", err)
		return 1
	}

	if err := os.WriteFile(args[1], code, 0o644); err != nil {
		logger.Error("write output", "err", err)
		return 1
	}

	logger.Debug("assembled", "bytes", len(code))

	return 0
}
