// Command lufact reads a square matrix interactively, factors it as
// P·A = L·U with scaled partial pivoting, and prints L, U, the 1-indexed
// permutation vector and the swap count.
//
// Session:
//
//	n = 3
//	(1,1) = 2
//	(1,2) = 1
//	...
//	Matrix L
//	...
//	Matrix U
//	...
//	Swap vector 1 2 3
//	swaps: 0
//
// A failed factorization (singular to within tolerance, malformed input)
// prints the error to stderr, exits nonzero and produces no factor output.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/davidhariprashad/lufact/lu"
)

const (
	// tolerance mirrors the historical driver's decompose(1e-6).
	tolerance = 1e-6

	// maxDim keeps the interactive prompt from accepting absurd grids.
	maxDim = 1_000_000

	// colWidth is the display column width for factor entries.
	colWidth = 14
)

// errBadInput marks malformed numeric input; it belongs to this I/O layer,
// never to the lu core.
var errBadInput = errors.New("lufact: bad input")

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "lufact:", err)
		os.Exit(1)
	}
}

// run drives one prompt/read/factor/print session.
func run(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)

	n, err := readDim(sc, out)
	if err != nil {
		return err
	}

	s, err := lu.New(n, lu.WithTolerance(tolerance))
	if err != nil {
		return err
	}
	if err = readMatrix(sc, out, s); err != nil {
		return err
	}

	f, err := s.Decompose()
	if err != nil {
		// No factor output for a failed run.
		return err
	}

	return display(out, f)
}

// nextWord yields the next whitespace-delimited token or errBadInput on EOF.
func nextWord(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}

		return "", fmt.Errorf("unexpected end of input: %w", errBadInput)
	}

	return sc.Text(), nil
}

// readDim prompts for the dimension until a usable value arrives.
// A non-numeric token is malformed input and aborts; an out-of-range number
// just re-prompts.
func readDim(sc *bufio.Scanner, out io.Writer) (int, error) {
	for {
		fmt.Fprint(out, "n = ")
		word, err := nextWord(sc)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(word)
		if err != nil {
			return 0, fmt.Errorf("dimension %q: %w", word, errBadInput)
		}
		if n >= 1 && n <= maxDim {
			return n, nil
		}
	}
}

// readMatrix prompts for and reads the n² entries in row-major order.
// Prompts are 1-indexed to match the display convention.
func readMatrix(sc *bufio.Scanner, out io.Writer, s *lu.Store) error {
	n := s.Dim()
	for i := 0; i < n; i++ {
		row, err := s.Row(i)
		if err != nil {
			return err
		}
		for j := 0; j < n; j++ {
			fmt.Fprintf(out, "(%d,%d) = ", i+1, j+1)
			word, err := nextWord(sc)
			if err != nil {
				return err
			}
			v, err := strconv.ParseFloat(word, 64)
			if err != nil {
				return fmt.Errorf("entry (%d,%d) %q: %w", i+1, j+1, word, errBadInput)
			}
			row[j] = v
		}
		fmt.Fprintln(out)
	}

	return nil
}

// display renders L (implicit unit diagonal made explicit, zeros above),
// U (zeros below), the 1-indexed permutation and the swap count.
func display(out io.Writer, f *lu.Factorization) error {
	compact, err := f.Compact()
	if err != nil {
		return err
	}
	n := f.Dim()

	var v float64
	fmt.Fprintln(out, "Matrix L")
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case j < i:
				if v, err = compact.At(i, j); err != nil {
					return err
				}
			case j == i:
				v = 1
			default:
				v = 0
			}
			fmt.Fprintf(out, "%*g", colWidth, v)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Matrix U")
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v = 0
			if j >= i {
				if v, err = compact.At(i, j); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "%*g", colWidth, v)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprint(out, "Swap vector ")
	for _, p := range f.Perm() {
		fmt.Fprintf(out, "%d ", p+1)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "swaps: %d\n", f.Swaps())

	return nil
}
