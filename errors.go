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

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned by constructors given no digits or no text.
var ErrEmptyInput = errors.New("empty input")

// DigitError reports a place value greater than 9 in a prebuilt digits row.
type DigitError struct {
	Index int
	Digit Word
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("digit out of range at index %d: %d", e.Index, e.Digit)
}

// ParseError reports a non-digit byte in decimal text.
type ParseError struct {
	Pos  int
	Byte byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid character at position %d: %q", e.Pos, e.Byte)
}
