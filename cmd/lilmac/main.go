// Command lilmac compiles, assembles, and emulates programs for a tiny
// 16-bit computer in the Little Man Computer tradition.
package main

import (
	"context"
	"os"

	"github.com/cmars/lilmac/internal/cli"
	"github.com/cmars/lilmac/internal/cli/cmd"
)

func main() {
	commands := []cli.Command{
		cmd.Compile{},
		cmd.Assemble{},
		cmd.Run{},
		cmd.Emulate{},
		cmd.Semicompile{},
	}

	commander := cli.New(context.Background()).
		WithLogger(os.Stderr).
		WithCommands(commands).
		WithHelp(cmd.Help(commands))

	os.Exit(commander.Execute(os.Args[1:]))
}
