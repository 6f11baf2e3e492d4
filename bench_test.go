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
	"math/rand"
	"testing"
)

// randRow makes a random row of exactly numDigits places.
func randRow(rnd *rand.Rand, numDigits int) Row {
	b := make([]byte, numDigits)
	b[0] = '1' + byte(rnd.Intn(9))
	for i := 1; i < numDigits; i++ {
		b[i] = '0' + byte(rnd.Intn(10))
	}
	return MustParse(string(b))
}

// runRowBench benchmarks fn over pairs of random operands with the given
// place counts.
func runRowBench(b *testing.B, numDigits []int, fn func(a, c Row)) {
	for _, d := range numDigits {
		b.Run(fmt.Sprintf("digits=%d", d), func(b *testing.B) {
			rnd := rand.New(rand.NewSource(int64(d)))
			rows := make([]Row, 64)
			for i := range rows {
				rows[i] = randRow(rnd, d)
			}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				fn(rows[i%len(rows)], rows[(i+1)%len(rows)])
			}
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	runRowBench(b, []int{10, 100, 1000}, func(a, c Row) {
		Add(a, c)
	})
}

func BenchmarkSub(b *testing.B) {
	runRowBench(b, []int{10, 100, 1000}, func(a, c Row) {
		Sub(a, c)
	})
}

func BenchmarkMul(b *testing.B) {
	runRowBench(b, []int{10, 100}, func(a, c Row) {
		Mul(a, c)
	})
}

func BenchmarkPow(b *testing.B) {
	for _, exp := range []uint16{10, 100} {
		b.Run(fmt.Sprintf("exp=%d", exp), func(b *testing.B) {
			base := NewFromUint64(998)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Pow(base, exp)
			}
		})
	}
}

func BenchmarkDivRem(b *testing.B) {
	// Operands of near-equal size keep the ratio, and with it the
	// repeated-subtraction round count, small.
	rnd := rand.New(rand.NewSource(1))
	dividends := make([]Row, 64)
	divisors := make([]Row, 64)
	for i := range dividends {
		dividends[i] = randRow(rnd, 101)
		divisors[i] = randRow(rnd, 100)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		DivRem(dividends[i%len(dividends)], divisors[i%len(divisors)])
	}
}
