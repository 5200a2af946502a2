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

package layout_test

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/gx-org/linalg/base/errs"
	"github.com/gx-org/linalg/base/iter"
	"github.com/gx-org/linalg/layout"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

func newLayout(t *testing.T, axes ...int) *layout.Layout {
	t.Helper()
	l, err := layout.New(axes)
	if err != nil {
		t.Fatalf("cannot create layout %v: %+v", axes, err)
	}
	return l
}

func physicals(l *layout.Layout) []int {
	offsets := make([]int, l.Size())
	for i := range offsets {
		offsets[i] = l.Physical(i)
	}
	return offsets
}

func TestPhysical(t *testing.T) {
	tests := []struct {
		axes  []int
		order []int
		want  []int
	}{
		{
			axes: []int{4},
			want: []int{0, 1, 2, 3},
		},
		{
			axes: []int{2, 3},
			want: []int{0, 1, 2, 3, 4, 5},
		},
		{
			axes:  []int{2, 2},
			order: []int{1, 0},
			want:  []int{0, 2, 1, 3},
		},
		{
			axes:  []int{2, 3},
			order: []int{1, 0},
			want:  []int{0, 2, 4, 1, 3, 5},
		},
		{
			axes:  []int{2, 3},
			order: []int{0, 1},
			want:  []int{0, 1, 2, 3, 4, 5},
		},
	}
	for ti, test := range tests {
		l := newLayout(t, test.axes...)
		if test.order != nil {
			if err := l.SetOrder(test.order); err != nil {
				t.Fatalf("test %d: %+v", ti, err)
			}
		}
		got := physicals(l)
		if !cmp.Equal(got, test.want) {
			t.Errorf("test %d: %s: got %v but want %v", ti, l, got, test.want)
		}
	}
}

func TestPhysicalIsABijection(t *testing.T) {
	l := newLayout(t, 2, 3, 4)
	for order := range iter.Permutations(3) {
		if err := l.SetOrder(order); err != nil {
			t.Fatal(err)
		}
		got := physicals(l)
		slices.Sort(got)
		for i, offset := range got {
			if i != offset {
				t.Errorf("order %v: offsets %v are not a permutation of [0, %d)", order, got, l.Size())
				break
			}
		}
	}
}

func TestPhysicalRank3(t *testing.T) {
	l := newLayout(t, 2, 3, 4)
	if err := l.SetOrder([]int{2, 0, 1}); err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct{ flat, want int }{
		{flat: 0, want: 0},
		{flat: 1, want: 6},
		{flat: 4, want: 1},
		{flat: 23, want: 23},
	} {
		if got := l.Physical(test.flat); got != test.want {
			t.Errorf("Physical(%d) = %d but want %d", test.flat, got, test.want)
		}
	}
}

func TestOffsetMatchesPhysical(t *testing.T) {
	l := newLayout(t, 3, 2, 2)
	for order := range iter.Permutations(3) {
		if err := l.SetOrder(order); err != nil {
			t.Fatal(err)
		}
		flat := 0
		for coords := range iter.Coords(l.Axes()) {
			got, err := l.Offset(coords...)
			if err != nil {
				t.Fatal(err)
			}
			if want := l.Physical(flat); got != want {
				t.Errorf("order %v: Offset(%v) = %d but Physical(%d) = %d", order, coords, got, flat, want)
			}
			if !cmp.Equal(l.Coords(flat), coords) {
				t.Errorf("Coords(%d) = %v but want %v", flat, l.Coords(flat), coords)
			}
			flat++
		}
	}
}

func TestTransposeSwapsCoordinates(t *testing.T) {
	l := newLayout(t, 3, 3)
	before := make(map[[2]int]int)
	for coords := range iter.Coords(l.Axes()) {
		offset, err := l.Offset(coords...)
		if err != nil {
			t.Fatal(err)
		}
		before[[2]int{coords[0], coords[1]}] = offset
	}
	if err := l.SetOrder([]int{1, 0}); err != nil {
		t.Fatal(err)
	}
	for coords := range iter.Coords(l.Axes()) {
		got, err := l.Offset(coords...)
		if err != nil {
			t.Fatal(err)
		}
		if want := before[[2]int{coords[1], coords[0]}]; got != want {
			t.Errorf("Offset(%v) = %d but want %d", coords, got, want)
		}
	}
}

func TestOffsetOutOfRange(t *testing.T) {
	l := newLayout(t, 2, 3)
	for _, coords := range [][]int{
		{0},
		{0, 0, 0},
		{2, 0},
		{0, 3},
		{-1, 0},
	} {
		_, err := l.Offset(coords...)
		if !errors.Is(err, errs.ErrIndexOutOfRange) {
			t.Errorf("Offset(%v): got error %v but want %v", coords, err, errs.ErrIndexOutOfRange)
		}
	}
	for _, flat := range []int{-1, 6, 100} {
		_, err := l.CheckedPhysical(flat)
		if !errors.Is(err, errs.ErrIndexOutOfRange) {
			t.Errorf("CheckedPhysical(%d): got error %v but want %v", flat, err, errs.ErrIndexOutOfRange)
		}
	}
	if got, err := l.CheckedPhysical(5); err != nil || got != 5 {
		t.Errorf("CheckedPhysical(5) = %d, %v but want 5, nil", got, err)
	}
}

func TestSetOrderInvalid(t *testing.T) {
	tests := []struct {
		order   []int
		numErrs int
	}{
		{order: []int{0}, numErrs: 1},
		{order: []int{0, 0, 1}, numErrs: 1},
		{order: []int{0, 0, 0}, numErrs: 2},
		{order: []int{3, 1, -1}, numErrs: 2},
		{order: []int{0, 1, 2, 3}, numErrs: 2},
	}
	for _, test := range tests {
		l := newLayout(t, 2, 3, 4)
		err := l.SetOrder(test.order)
		if !errors.Is(err, errs.ErrInvalidPermutation) {
			t.Errorf("SetOrder(%v): got error %v but want %v", test.order, err, errs.ErrInvalidPermutation)
			continue
		}
		if got := len(multierr.Errors(err)); got != test.numErrs {
			t.Errorf("SetOrder(%v): got %d errors (%v) but want %d", test.order, got, err, test.numErrs)
		}
		if !l.IsIdentity() {
			t.Errorf("SetOrder(%v) modified the order to %v", test.order, l.Order())
		}
	}
}

func TestNewInvalid(t *testing.T) {
	for _, axes := range [][]int{
		nil,
		{2, -1},
		{-1, -2},
		{1 << 32, 1 << 32},
		{math.MaxInt, 2},
		{3, math.MaxInt/2 + 1, -1},
	} {
		if _, err := layout.New(axes); !errors.Is(err, errs.ErrShapeMismatch) {
			t.Errorf("New(%v): got error %v but want %v", axes, err, errs.ErrShapeMismatch)
		}
	}
}

func TestNewLargest(t *testing.T) {
	for _, test := range []struct {
		axes []int
		size int
	}{
		{axes: []int{math.MaxInt}, size: math.MaxInt},
		{axes: []int{1 << 31, 1 << 31}, size: 1 << 62},
		{axes: []int{1 << 32, 1 << 32, 0}, size: 0},
	} {
		l := newLayout(t, test.axes...)
		if l.Size() != test.size {
			t.Errorf("%v: got size %d but want %d", test.axes, l.Size(), test.size)
		}
		if l.Rank() != len(test.axes) {
			t.Errorf("%v: got rank %d but want %d", test.axes, l.Rank(), len(test.axes))
		}
	}
}

func TestEmptyAxis(t *testing.T) {
	l := newLayout(t, 3, 0)
	if l.Size() != 0 {
		t.Errorf("got size %d but want 0", l.Size())
	}
	if _, err := l.CheckedPhysical(0); !errors.Is(err, errs.ErrIndexOutOfRange) {
		t.Errorf("got error %v but want %v", err, errs.ErrIndexOutOfRange)
	}
}

func TestClone(t *testing.T) {
	l := newLayout(t, 2, 2)
	c := l.Clone()
	if err := c.SetOrder([]int{1, 0}); err != nil {
		t.Fatal(err)
	}
	if !l.IsIdentity() {
		t.Errorf("transposing a clone modified the original layout: %s", l)
	}
	if c.IsIdentity() {
		t.Errorf("clone has not been transposed: %s", c)
	}
}
