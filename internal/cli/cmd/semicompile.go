package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cmars/lilmac/internal/asm"
	"github.com/cmars/lilmac/internal/cli"
	"github.com/cmars/lilmac/internal/hl"
	"github.com/cmars/lilmac/internal/log"
)

// Semicompile compiles, assembles, and emulates a source file in one
// invocation, with no intermediate files.
type Semicompile struct{}

var _ cli.Command = Semicompile{}

func (Semicompile) Description() string {
	return "compile, assemble, and run a .hl file"
}

func (Semicompile) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("semicompile", flag.ExitOnError)
}

func (Semicompile) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, "semicompile <input.hl>")
	return err
}

func (Semicompile) Run(_ context.Context, args []string, out io.Writer, logger *log.Logger) int {
	if len(args) != 1 {
		logger.Error("semicompile requires an input path")
		return 1
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		logger.Error("read input", "err", err)
		return 1
	}

	asmText, err := hl.Compile(string(src))
	if err != nil {
		logger.Error("compile", "err", err)
		return 1
	}

	code, err := asm.Assemble(asmText)
	if err != nil {
		logger.Error("assemble", "err", err)
		return 1
	}

	return runImage(code, out, logger)
}
