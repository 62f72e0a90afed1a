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

// Run assembles a source file in memory and emulates it to halt, without
// writing an intermediate binary.
type Run struct{}

var _ cli.Command = Run{}

func (Run) Description() string {
	return "assemble and run a .asm file"
}

func (Run) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("run", flag.ExitOnError)
}

func (Run) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, "run <input.asm>")
	return err
}

func (Run) Run(_ context.Context, args []string, out io.Writer, logger *log.Logger) int {
	if len(args) != 1 {
		logger.Error("run requires an input path")
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

	return runImage(code, out, logger)
}
