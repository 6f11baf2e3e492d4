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

package places

import "github.com/pkg/errors"

// ErrLesserMinuend is collected by ErrRow.Sub when minuend < subtrahend.
var ErrLesserMinuend = errors.New("minuend lesser than subtrahend")

// ErrDivisionByZero is collected by ErrRow.DivRem on a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// ErrRow performs operations on rows and collects errors during operations.
// If an error is already set, the operation is skipped and a zero Row is
// returned. Designed to be used for many operations in a row, with a single
// error check at the end. Absent results (a lesser minuend, a zero divisor)
// surface here as errors so chains can rely on every result being a Row.
type ErrRow struct {
	Err error
}

// Parse returns Parse(s).
func (e *ErrRow) Parse(s string) Row {
	if e.Err != nil {
		return Zero()
	}
	var r Row
	r, e.Err = Parse(s)
	if e.Err != nil {
		e.Err = errors.Wrapf(e.Err, "parse %q", s)
		return Zero()
	}
	return r
}

// Add returns Add(a, b).
func (e *ErrRow) Add(a, b Row) Row {
	if e.Err != nil {
		return Zero()
	}
	return Add(a, b)
}

// Sub returns Sub(minuend, subtrahend), collecting ErrLesserMinuend when no
// difference exists.
func (e *ErrRow) Sub(minuend, subtrahend Row) Row {
	if e.Err != nil {
		return Zero()
	}
	d, ok := Sub(minuend, subtrahend)
	if !ok {
		e.Err = errors.Wrapf(ErrLesserMinuend, "%s - %s", minuend, subtrahend)
		return Zero()
	}
	return d
}

// Mul returns Mul(a, b).
func (e *ErrRow) Mul(a, b Row) Row {
	if e.Err != nil {
		return Zero()
	}
	return Mul(a, b)
}

// Pow returns Pow(base, exp).
func (e *ErrRow) Pow(base Row, exp uint16) Row {
	if e.Err != nil {
		return Zero()
	}
	return Pow(base, exp)
}

// DivRem returns DivRem(dividend, divisor), collecting ErrDivisionByZero on
// a zero divisor.
func (e *ErrRow) DivRem(dividend, divisor Row) (Row, Row) {
	if e.Err != nil {
		return Zero(), Zero()
	}
	q, r, ok := DivRem(dividend, divisor)
	if !ok {
		e.Err = errors.Wrapf(ErrDivisionByZero, "%s / %s", dividend, divisor)
		return Zero(), Zero()
	}
	return q, r
}

// Compare returns Equal if Err is set, otherwise Compare(a, b).
func (e *ErrRow) Compare(a, b Row) Rel {
	if e.Err != nil {
		return Equal
	}
	return Compare(a, b)
}
