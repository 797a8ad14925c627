// Package prompt reads numbers typed at an interactive terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrNoInput is returned when input ends before a value was read.
var ErrNoInput = errors.New("prompt: input closed")

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer

	BlankIsZero bool   // empty answer reads as 0
	ErrorMsg    string // printed after an unparsable answer
}

// New returns a Prompter where a blank answer means zero.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:          bufio.NewScanner(in),
		out:         out,
		BlankIsZero: true,
		ErrorMsg:    "Invalid Entry!",
	}
}

// Float asks query until the answer parses as a finite number.
func (p *Prompter) Float(query string) (float64, error) {
	for {
		if _, err := fmt.Fprint(p.out, query); err != nil {
			return 0, err
		}
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, err
			}
			return 0, ErrNoInput
		}
		answer := strings.TrimSpace(p.in.Text())
		if answer == "" && p.BlankIsZero {
			return 0, nil
		}
		v, err := strconv.ParseFloat(answer, 64)
		if err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v, nil
		}
		if _, err := fmt.Fprintln(p.out, p.ErrorMsg); err != nil {
			return 0, err
		}
	}
}

// Println writes a line of guidance to the prompt's output.
func (p *Prompter) Println(a ...any) error {
	_, err := fmt.Fprintln(p.out, a...)
	return err
}
