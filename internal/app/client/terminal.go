package client

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// TerminalReader читает PIN с терминала без эха. Если stdin не терминал
// (пайп, скрипт), PIN читается построчно.
type TerminalReader struct {
	in    *os.File
	out   io.Writer
	lines *bufio.Reader
}

func NewTerminalReader(in *os.File, out io.Writer) *TerminalReader {
	return &TerminalReader{
		in:    in,
		out:   out,
		lines: bufio.NewReader(in),
	}
}

func (r *TerminalReader) ReadPin(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	fd := int(r.in.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(r.out)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}

	line, err := r.lines.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
