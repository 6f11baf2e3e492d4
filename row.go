// Copyright 2023 The Places Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package places implements arithmetic on non-negative decimal integers of
// unbounded magnitude. A number is a row of decimal places: index 0 is the
// ones digit, index 1 the tens, and so on. All operations work digit by
// digit with explicit carry and borrow propagation; nothing is widened into
// a native integer except at the conversion boundary.
package places

// Word is a single base-10 digit, 0 through 9.
type Word uint8

const base = 10

// Row is a non-negative decimal integer stored as its decimal places in
// reverse order as written: [0] is the 1s digit, [1] 10s, [2] 100s, etc.
//
// A Row is never empty and carries no leading (most-significant) zeros;
// zero itself is the single digit 0. Rows are immutable once constructed:
// every operation borrows its inputs and returns a fresh Row.
type Row struct {
	row []Word
}

// NewFromDigits makes a Row from a prebuilt places row, ordered from the
// ones place up. Leading zeros are trimmed. The digits are copied.
//
// Returns ErrEmptyInput for an empty row, or a *DigitError naming the first
// index holding a value greater than 9.
func NewFromDigits(digits []Word) (Row, error) {
	if len(digits) == 0 {
		return Row{}, ErrEmptyInput
	}
	for i, d := range digits {
		if d >= base {
			return Row{}, &DigitError{Index: i, Digit: d}
		}
	}
	row := make([]Word, len(digits))
	copy(row, digits)
	return Row{row: truncateLeading(row, 0)}, nil
}

// NewFromUint64 makes a Row with value x.
func NewFromUint64(x uint64) Row {
	var arr [20]Word
	i := 0
	for {
		arr[i] = Word(x % base)
		x /= base
		i++
		if x == 0 {
			break
		}
	}
	row := make([]Word, i)
	copy(row, arr[:i])
	return Row{row: row}
}

// Parse makes a Row from its decimal text form. Leading zeros are omitted.
//
// Returns ErrEmptyInput for an empty string, or a *ParseError naming the
// position of the first byte that is not an ASCII digit.
func Parse(s string) (Row, error) {
	orig := len(s)
	if orig == 0 {
		return Row{}, ErrEmptyInput
	}

	start := 0
	for start < orig && s[start] == '0' {
		start++
	}
	if start == orig {
		return Zero(), nil
	}

	s = s[start:]
	row := make([]Word, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		c := s[i]
		if c < '0' || c > '9' {
			return Row{}, &ParseError{Pos: start + i, Byte: c}
		}
		row[len(s)-1-i] = Word(c - '0')
	}
	return Row{row: row}, nil
}

// Zero returns the Row for 0.
func Zero() Row {
	return Row{row: []Word{0}}
}

// One returns the Row for 1.
func One() Row {
	return Row{row: []Word{1}}
}

// IsZero reports whether r is 0.
func (r Row) IsZero() bool {
	return len(r.row) == 1 && r.row[0] == 0
}

// Len returns the number of decimal places in r.
func (r Row) Len() int {
	return len(r.row)
}

// Digits returns a copy of r's places, ones first.
func (r Row) Digits() []Word {
	d := make([]Word, len(r.row))
	copy(d, r.row)
	return d
}

// Equal reports whether a and b hold the same value.
func (a Row) Equal(b Row) bool {
	if len(a.row) != len(b.row) {
		return false
	}
	for i, d := range a.row {
		if d != b.row[i] {
			return false
		}
	}
	return true
}

// String renders r in its decimal text form.
func (r Row) String() string {
	b := make([]byte, len(r.row))
	for i, d := range r.row {
		b[len(b)-1-i] = byte(d + '0')
	}
	return string(b)
}

// truncateLeading drops trailing (most-significant) lead digits from row,
// always keeping at least one place.
func truncateLeading(row []Word, lead Word) []Word {
	trun := 0
	for i := len(row) - 1; i >= 0 && row[i] == lead; i-- {
		trun++
	}
	if trun == len(row) {
		trun--
	}
	return row[:len(row)-trun]
}

// clone copies raw places into a fresh, exactly sized buffer.
func clone(row []Word) []Word {
	out := make([]Word, len(row))
	copy(out, row)
	return out
}
