// SPDX-License-Identifier: MIT
// Package: divconq/dataset
//
// errors.go — sentinel and typed errors for generation and parsing.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); never on message text.
//   • Parse failures are *InputFormatError values that unwrap to
//     ErrInputFormat and, when a strconv/big parse failed, to that cause too.
//   • Generators return ErrBadSize for runtime sizes; option constructors
//     panic instead.

package dataset

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a negative point count or an empty digit range.
var ErrBadSize = errors.New("dataset: invalid size")

// ErrInputFormat indicates a dataset file that does not follow its format.
var ErrInputFormat = errors.New("dataset: malformed input")

// InputFormatError describes where and why a dataset failed to parse.
// Line is 1-based; 0 means the problem is not tied to one line
// (e.g. the input ended early).
type InputFormatError struct {
	Line int
	Msg  string
	Err  error // underlying parse error, may be nil
}

func (e *InputFormatError) Error() string {
	var where string
	if e.Line > 0 {
		where = fmt.Sprintf("line %d: ", e.Line)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s%s: %v", ErrInputFormat, where, e.Msg, e.Err)
	}

	return fmt.Sprintf("%s: %s%s", ErrInputFormat, where, e.Msg)
}

// Is makes errors.Is(err, ErrInputFormat) hold for every *InputFormatError.
func (e *InputFormatError) Is(target error) bool {
	return target == ErrInputFormat
}

func (e *InputFormatError) Unwrap() error {
	return e.Err
}

func formatErr(line int, err error, format string, args ...any) error {
	return &InputFormatError{Line: line, Msg: fmt.Sprintf(format, args...), Err: err}
}
