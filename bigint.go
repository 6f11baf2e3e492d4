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
	"math"
	"math/big"
	"strings"
)

// NewFromBig makes a Row with value abs(x).
func NewFromBig(x *big.Int) Row {
	s := x.String()
	s = strings.TrimPrefix(s, "-")
	r, _ := Parse(s)
	return r
}

// Big returns r as a big.Int.
func (r Row) Big() *big.Int {
	b, _ := new(big.Int).SetString(r.String(), 10)
	return b
}

var maxUint64Row = NewFromUint64(math.MaxUint64)

// Uint64 returns r as a uint64. The second return is false when r does not
// fit.
func (r Row) Uint64() (uint64, bool) {
	if Compare(r, maxUint64Row) == Greater {
		return 0, false
	}
	var x uint64
	var m uint64 = 1
	for _, d := range r.row {
		x += uint64(d) * m
		m *= base
	}
	return x, true
}
