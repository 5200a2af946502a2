// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package iter provides iterators over indices, coordinates and permutations.
package iter

// Coords iterates over all the coordinates of an array with the given axis lengths,
// in row-major order (the last axis varies the fastest).
// The yielded slice is reused between iterations.
func Coords(axes []int) func(yield func([]int) bool) {
	return func(yield func([]int) bool) {
		for _, axis := range axes {
			if axis <= 0 {
				return
			}
		}
		coords := make([]int, len(axes))
		for {
			if !yield(coords) {
				return
			}
			d := len(coords) - 1
			for ; d >= 0; d-- {
				coords[d]++
				if coords[d] < axes[d] {
					break
				}
				coords[d] = 0
			}
			if d < 0 {
				return
			}
		}
	}
}

// Tuples iterates over all the tuples of n entries taking their values in [0, base).
// The first entry of the tuple varies the fastest, so the i-th tuple is the
// little-endian representation of i in the given base.
// The yielded slice is reused between iterations.
func Tuples(n, base int) func(yield func(int, []int) bool) {
	return func(yield func(int, []int) bool) {
		if n < 0 || base <= 0 {
			return
		}
		tuple := make([]int, n)
		for i := 0; ; i++ {
			if !yield(i, tuple) {
				return
			}
			d := 0
			for ; d < n; d++ {
				tuple[d]++
				if tuple[d] < base {
					break
				}
				tuple[d] = 0
			}
			if d == n {
				return
			}
		}
	}
}

// Permutations iterates over all the permutations of [0, n) in lexicographic order.
// The yielded slice is reused between iterations.
func Permutations(n int) func(yield func([]int) bool) {
	return func(yield func([]int) bool) {
		if n < 0 {
			return
		}
		perm := make([]int, n)
		for i := range perm {
			perm[i] = i
		}
		for {
			if !yield(perm) {
				return
			}
			if !nextPermutation(perm) {
				return
			}
		}
	}
}

func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}

// Sign returns the product of the signs of t[j]-t[i] for all i < j.
// It is the Levi-Civita symbol for a permutation and 0 when an entry repeats.
func Sign(t []int) int {
	sign := 1
	for i := range t {
		for j := i + 1; j < len(t); j++ {
			switch d := t[j] - t[i]; {
			case d < 0:
				sign = -sign
			case d == 0:
				return 0
			}
		}
	}
	return sign
}
