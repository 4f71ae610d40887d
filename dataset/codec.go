package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/divconq/closestpair"
)

// MaxLineBytes bounds a single input line (a 16 MiB upload is one long integer at worst).
const MaxLineBytes = 16 << 20

// lineReader yields non-blank, trimmed lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	return &lineReader{sc: sc}
}

// next returns the next non-blank line. ok is false at EOF; err reports a
// read failure (including an over-long line).
func (lr *lineReader) next() (text string, ok bool, err error) {
	for lr.sc.Scan() {
		lr.line++
		text = strings.TrimSpace(lr.sc.Text()) // also drops the '\r' of CRLF
		if text != "" {
			return text, true, nil
		}
	}
	if err = lr.sc.Err(); err != nil {
		return "", false, formatErr(lr.line+1, err, "read failed")
	}

	return "", false, nil
}

// ReadPoints parses the points format: a count n on the first non-blank
// line, then exactly n lines of two finite numbers. Anything after the n-th
// point is an error.
func ReadPoints(r io.Reader) ([]closestpair.Point, error) {
	lr := newLineReader(r)

	head, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, formatErr(0, nil, "missing point count")
	}
	n, err := strconv.Atoi(head)
	if err != nil {
		return nil, formatErr(lr.line, err, "point count %q is not an integer", head)
	}
	if n < 0 {
		return nil, formatErr(lr.line, nil, "negative point count %d", n)
	}

	pts := make([]closestpair.Point, 0, min(n, 1<<16))
	for len(pts) < n {
		text, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, formatErr(0, nil, "expected %d points, found %d", n, len(pts))
		}
		p, err := parsePoint(text, lr.line)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}

	extra, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, formatErr(lr.line, nil, "unexpected content after %d points: %q", n, clip(extra))
	}

	return pts, nil
}

func parsePoint(text string, line int) (closestpair.Point, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return closestpair.Point{}, formatErr(line, nil, "want 2 coordinates, got %d", len(fields))
	}
	var xy [2]float64
	for k, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return closestpair.Point{}, formatErr(line, err, "coordinate %q is not a number", clip(f))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return closestpair.Point{}, formatErr(line, nil, "coordinate %q is not finite", f)
		}
		xy[k] = v
	}

	return closestpair.Point{X: xy[0], Y: xy[1]}, nil
}

// WritePoints writes pts in the points format with six decimals.
func WritePoints(w io.Writer, pts []closestpair.Point) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(pts)); err != nil {
		return err
	}
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%.6f %.6f\n", p.X, p.Y); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadIntegers parses the integers format: exactly two non-blank lines, each
// one decimal integer with an optional sign.
func ReadIntegers(r io.Reader) (x, y *big.Int, err error) {
	lr := newLineReader(r)

	var ops [2]*big.Int
	for k := range ops {
		text, ok, err := lr.next()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			return nil, nil, formatErr(0, nil, "expected 2 integers, found %d", k)
		}
		v, ok := new(big.Int).SetString(text, 10)
		if !ok {
			return nil, nil, formatErr(lr.line, nil, "%q is not a decimal integer", clip(text))
		}
		ops[k] = v
	}

	extra, ok, err := lr.next()
	if err != nil {
		return nil, nil, err
	}
	if ok {
		return nil, nil, formatErr(lr.line, nil, "unexpected content after 2 integers: %q", clip(extra))
	}

	return ops[0], ops[1], nil
}

// WriteIntegers writes x and y on one line each.
func WriteIntegers(w io.Writer, x, y *big.Int) error {
	if x == nil || y == nil {
		return fmt.Errorf("%w: nil integer", ErrBadSize)
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", x, y)

	return err
}

// clip shortens long tokens for error messages.
func clip(s string) string {
	const keep = 40
	if len(s) <= keep {
		return s
	}

	return s[:keep] + "..."
}
