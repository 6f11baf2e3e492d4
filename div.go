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

// subtraction computes minuend − subtrahend by column borrow propagation.
// In single-difference mode (remainder false) the caller guarantees
// minuend ≥ subtrahend and the pass runs once. In remainder mode the
// subtrahend is taken out again and again, each round reading the previous
// difference, while ratio counts the rounds; the loop ends when the working
// value drops below the subtrahend.
//
// A borrow left standing after a full pass means the working value was
// already smaller than the subtrahend: that round went one turn too far.
// The overrun is undone in place by re-adding the subtrahend with carry
// propagation and cutting the artifact 9s the borrow chain wrote above the
// subtrahend's places.
//
// Returns the difference (or remainder) and the round count (the ratio).
func subtraction(minuend, subtrahend []Word, remainder bool) ([]Word, []Word) {
	minuendLen := len(minuend)
	subtrahendLen := len(subtrahend)

	diffrem := make([]Word, minuendLen)
	// cur is the value being subtracted from: the minuend on the first
	// round, the previous difference afterwards.
	cur := minuend
	populated := false

	ratio := []Word{0}
	one := []Word{1}

	for {
		takeover := 0
		inx := 0

		for inx < minuendLen {
			var sNum int
			if inx < subtrahendLen {
				sNum = int(subtrahend[inx])
			} else if takeover == 0 && populated {
				// The rest of the working value is untouched
				// this round.
				break
			}

			mNum := int(cur[inx])
			totalS := sNum + takeover
			if mNum < totalS {
				mNum += base
				takeover = 1
			} else {
				takeover = 0
			}

			diffrem[inx] = Word(mNum - totalS)
			inx++
		}

		if takeover == 1 {
			// Overrun correction: the round that exhausted the
			// working value is rolled back.
			takeover = 0
			for inx = 0; inx < subtrahendLen; inx++ {
				corr := int(diffrem[inx]) + int(subtrahend[inx])
				diffrem[inx] = Word(ones(corr, &takeover))
			}
			// The borrow chain's artifact 9s sit at the places at
			// and above subtrahendLen: the working value was below
			// the subtrahend, so its own digits there were zero.
			// The restored remainder's top place may legitimately
			// be 9, so the cut stops at the artifact region.
			diffrem = diffrem[:subtrahendLen]
			break
		}

		addition(one, nil, &ratio, 0)

		if !remainder {
			break
		}
		if !populated {
			cur = diffrem
			populated = true
		}
	}

	return clone(truncateLeading(diffrem, 0)), ratio
}

// Sub returns minuend − subtrahend. The second return is false when
// minuend < subtrahend, in which case no non-negative difference exists.
func Sub(minuend, subtrahend Row) (Row, bool) {
	switch Compare(minuend, subtrahend) {
	case Lesser:
		return Row{}, false
	case Equal:
		return Zero(), true
	}
	diff, _ := subtraction(minuend.row, subtrahend.row, false)
	return Row{row: diff}, true
}

// DivRem returns the quotient and remainder of dividend ÷ divisor, with
// dividend = divisor × quotient + remainder and remainder < divisor.
// The third return is false when divisor is zero.
func DivRem(dividend, divisor Row) (Row, Row, bool) {
	if divisor.IsZero() {
		return Row{}, Row{}, false
	}

	switch Compare(dividend, divisor) {
	case Lesser:
		return Zero(), Row{row: clone(dividend.row)}, true
	case Equal:
		return One(), Zero(), true
	}

	rem, ratio := subtraction(dividend.row, divisor.row, true)
	return Row{row: ratio}, Row{row: rem}, true
}
