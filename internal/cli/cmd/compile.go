package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cmars/lilmac/internal/cli"
	"github.com/cmars/lilmac/internal/hl"
	"github.com/cmars/lilmac/internal/log"
)

// Compile lowers a source file to assembly text, writing it to an output
// path.
type Compile struct{}

var _ cli.Command = Compile{}

func (Compile) Description() string {
	return "compile a .hl file into assembly text"
}

func (Compile) FlagSet() *cli.FlagSet {
	return flag.NewFlagSet("compile", flag.ExitOnError)
}

func (Compile) Usage(out io.Writer) error {
	_, err := fmt.Fprintln(out, "compile <input.hl> <output.asm>")
	return err
}

func (Compile) Run(_ context.Context, args []string, _ io.Writer, logger *log.Logger) int {
	if len(args) != 2 {
		logger.Error("compile requires an input and output path")
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

	if err := os.WriteFile(args[1], []byte(asmText), 0o644); err != nil {
		logger.Error("write output", "err", err)
		return 1
	}

	return 0
}
