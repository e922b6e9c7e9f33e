// Package terminal gathers render parameters interactively. Parse failures
// are recovered locally by re-prompting; only IO failures surface to the
// caller.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter reads from in and writes prompts to out. Pass os.Stdin and
// os.Stdout for the usual console loop.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	return Prompter{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

func NewConsolePrompter() Prompter {
	return NewPrompter(os.Stdin, os.Stdout)
}

// GetUint keeps prompting until the user enters a non-negative integer.
func (p Prompter) GetUint(prompt string) (uint, error) {
	for {
		input, err := p.getLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseUint(input, 10, 64)
		if err != nil {
			fmt.Fprintf(p.writer, "\nInvalid input: %s\n\n", err)
			continue
		}
		return uint(value), nil
	}
}

// GetFloat keeps prompting until the user enters a number.
func (p Prompter) GetFloat(prompt string) (float64, error) {
	for {
		input, err := p.getLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(input, 64)
		if err != nil {
			fmt.Fprintf(p.writer, "\nInvalid input: %s\n\n", err)
			continue
		}
		return value, nil
	}
}

// GetComplex keeps prompting until the user enters a complex value, either
// Go syntax like "-0.75+0.1i" or a plain real number.
func (p Prompter) GetComplex(prompt string) (complex128, error) {
	for {
		input, err := p.getLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseComplex(input, 128)
		if err != nil {
			// A bare real like "-0.75" parses as a complex already; reaching
			// here means the input was not a number at all.
			fmt.Fprintf(p.writer, "\nInvalid input: %s\n\n", err)
			continue
		}
		return value, nil
	}
}

func (p Prompter) getLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.writer, prompt); err != nil {
		return "", err
	}
	input, err := p.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
