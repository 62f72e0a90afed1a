// Package ttyio adapts a line-oriented input stream for the machine's INP
// instruction. It is a distillation of a teletype console: where a fuller
// terminal emulation would switch the file descriptor into raw, cbreak mode
// to read individual keystrokes, INP's contract is simpler — it blocks for
// one whole line — so only the terminal-detection half of that idea survives
// here, used to decide whether an interactive "? " prompt is worth printing.
package ttyio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Reader reads lines for the INP instruction, printing a short prompt first
// when the input stream is an interactive terminal.
type Reader struct {
	br       *bufio.Reader
	out      io.Writer
	prompt   string
	terminal bool
}

// NewReader wraps in for line-oriented reads. If in is *os.File and refers to
// a terminal, prompt is written to out before every read.
func NewReader(in io.Reader, out io.Writer) *Reader {
	r := &Reader{
		br:     bufio.NewReader(in),
		out:    out,
		prompt: "? ",
	}

	if f, ok := in.(*os.File); ok {
		r.terminal = term.IsTerminal(int(f.Fd()))
	}

	return r
}

// ReadLine blocks for one line of input, trimming the trailing newline (and
// a preceding carriage return, for input piped from non-Unix sources).
func (r *Reader) ReadLine() (string, error) {
	if r.terminal && r.out != nil {
		_, _ = io.WriteString(r.out, r.prompt)
	}

	line, err := r.br.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}
