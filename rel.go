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

// Rel is the relation of one Row to another.
type Rel int8

const (
	Lesser Rel = iota - 1
	Equal
	Greater
)

func (r Rel) String() string {
	switch r {
	case Lesser:
		return "Lesser"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Unknown"
}

// Compare returns the relation of a to b.
//
// Since rows carry no leading zeros, a longer row is always the greater
// number; equal lengths are decided digit by digit from the highest place
// down.
func Compare(a, b Row) Rel {
	if len(a.row) > len(b.row) {
		return Greater
	}
	if len(a.row) < len(b.row) {
		return Lesser
	}
	for i := len(a.row) - 1; i >= 0; i-- {
		if a.row[i] > b.row[i] {
			return Greater
		}
		if a.row[i] < b.row[i] {
			return Lesser
		}
	}
	return Equal
}
