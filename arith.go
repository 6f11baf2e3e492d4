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

// ones splits a raw place total into its ones digit and its takeover. The
// returned value is the ones digit of total+*takeover; *takeover is updated
// to the tens and above. Addition totals stay below 20, single-digit
// products below 90, so the takeover is at most 1 respectively 8.
func ones(total int, takeover *int) int {
	total += *takeover
	*takeover = total / base
	return total - *takeover*base
}

// addition adds addend into *sum starting at place offset. When augend is
// non-nil it is the second addend and the strict two-addend discipline
// applies: *sum starts empty, addend is the longer-or-equal operand and
// offset is 0. When augend is nil, *sum's own current places are the second
// addend (accumulate-in-place).
//
// *sum grows by at most one place past max(len(addend)+offset, existing).
// Callers pre-size *sum; with sufficient capacity reserved no reallocation
// occurs.
func addition(addend []Word, augend []Word, sum *[]Word, offset int) {
	addendLen := len(addend)

	selfAdd := augend == nil
	augendLen := len(augend)
	if selfAdd {
		augendLen = len(*sum)
	}

	takeover := 0
	i1 := 0
	i2 := offset
	for {
		avail := i1 < addendLen
		if !avail && takeover == 0 {
			break
		}

		n1 := 0
		if avail {
			n1 = int(addend[i1])
		}
		n2 := 0
		if i2 < augendLen {
			if selfAdd {
				n2 = int((*sum)[i2])
			} else {
				n2 = int(augend[i2])
			}
		}

		d := Word(ones(n1+n2, &takeover))
		if i2 < len(*sum) {
			(*sum)[i2] = d
		} else {
			*sum = append(*sum, d)
		}

		i1++
		i2++
	}
}

// product multiplies every place of mcand by the single digit mpler,
// appending to *out. A final takeover adds one extra place.
//
// A zero mpler still runs the full pass; the all-zero result collapses in
// the caller's accumulation, so only the pass itself is wasted.
func product(mpler Word, mcand []Word, out *[]Word) {
	takeover := 0
	for _, d := range mcand {
		*out = append(*out, Word(ones(int(mpler)*int(d), &takeover)))
	}
	if takeover != 0 {
		*out = append(*out, Word(takeover))
	}
}

// reserve returns an empty buffer with capacity for at least n places,
// reusing b's storage when it is already big enough.
func reserve(b []Word, n int) []Word {
	if cap(b) < n {
		return make([]Word, 0, n)
	}
	return b[:0]
}

// mulmul is the accumulation engine shared by multiplication and power:
// it multiplies mcand by mpler, times times over, feeding each result back
// in as the next multiplicand. Each round walks the multiplier's places,
// takes the single-digit product and folds it into an intermediate sum at
// that place's offset; the intermediate sum and the multiplicand then swap
// buffers for the next round, so the two allocations are reused throughout.
func mulmul(mpler, mcand []Word, times uint16) Row {
	mplerLen := len(mpler)
	work := clone(mcand)

	var iProduct []Word
	var iSum []Word

	cntr := uint16(0)
	for {
		workLen := len(work)

		// +1 for the contingent takeover place; a product has at most
		// as many places as its operands combined.
		iProduct = reserve(iProduct, workLen+1)
		iSum = reserve(iSum, workLen+mplerLen)

		for offset := 0; offset < mplerLen; offset++ {
			product(mpler[offset], work, &iProduct)
			addition(iProduct, nil, &iSum, offset)
			iProduct = iProduct[:0]
		}

		cntr++
		if cntr == times {
			work = iSum
			break
		}

		work = work[:0]
		work, iSum = iSum, work
	}

	return Row{row: clone(truncateLeading(work, 0))}
}

// Add returns the sum of a and b.
func Add(a, b Row) Row {
	addend, augend := a.row, b.row
	if len(augend) > len(addend) {
		addend, augend = augend, addend
	}

	sum := make([]Word, 0, len(addend)+1)
	addition(addend, augend, &sum, 0)
	return Row{row: sum}
}

// Mul returns the product of a and b.
func Mul(a, b Row) Row {
	return mulmul(a.row, b.row, 1)
}

// Pow returns base raised to exp. Place counts grow linearly with exp
// (len(result) ≤ exp × len(base)), so large exponents of large bases are
// CPU and memory intensive.
func Pow(base Row, exp uint16) Row {
	if exp == 0 {
		return One()
	}
	if exp == 1 {
		return Row{row: clone(base.row)}
	}
	return mulmul(base.row, base.row, exp-1)
}
