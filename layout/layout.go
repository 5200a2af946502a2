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

// Package layout maps logical indices of an array to offsets in its storage.
//
// A layout has axis lengths, fixed at construction, and an order: a permutation
// of the axes. The axis lengths define the logical row-major decomposition of a
// flat index into coordinates. The order defines how these coordinates are
// encoded into a physical offset. Replacing the order transposes an array
// without moving its data.
package layout

import (
	"fmt"
	"math"
	"slices"

	"github.com/gx-org/linalg/base/errs"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Layout of an array in memory.
type Layout struct {
	axes  []int
	order []int
}

// New returns a layout with the given axis lengths and the identity order.
// The number of elements, the product of the axis lengths, must fit in an int.
func New(axes []int) (*Layout, error) {
	if len(axes) == 0 {
		return nil, errors.Wrapf(errs.ErrShapeMismatch, "arrays of rank 0 are not supported")
	}
	// An empty axis makes the product 0 whatever the other lengths.
	skip := slices.Contains(axes, 0)
	size := 1
	var err error
	for i, axis := range axes {
		switch {
		case axis < 0:
			err = multierr.Append(err, errors.Wrapf(errs.ErrShapeMismatch, "invalid length %d for axis %d", axis, i))
		case skip:
		case size > math.MaxInt/axis:
			err = multierr.Append(err, errors.Wrapf(errs.ErrShapeMismatch, "shape %v has more than %d elements", axes, math.MaxInt))
			skip = true
		default:
			size *= axis
		}
	}
	if err != nil {
		return nil, err
	}
	order := make([]int, len(axes))
	for i := range order {
		order[i] = i
	}
	return &Layout{axes: slices.Clone(axes), order: order}, nil
}

// Rank returns the number of axes.
func (l *Layout) Rank() int {
	return len(l.axes)
}

// Size returns the number of elements.
func (l *Layout) Size() int {
	size := 1
	for _, axis := range l.axes {
		size *= axis
	}
	return size
}

// Axes returns a copy of the axis lengths.
func (l *Layout) Axes() []int {
	return slices.Clone(l.axes)
}

// Order returns a copy of the current order.
func (l *Layout) Order() []int {
	return slices.Clone(l.order)
}

// IsIdentity returns true if the order is the identity.
func (l *Layout) IsIdentity() bool {
	for i, o := range l.order {
		if i != o {
			return false
		}
	}
	return true
}

// Clone returns a copy of the layout.
func (l *Layout) Clone() *Layout {
	return &Layout{axes: slices.Clone(l.axes), order: slices.Clone(l.order)}
}

// ValidateOrder checks that order is a bijection over [0, rank).
// All the defects are reported.
func ValidateOrder(rank int, order []int) error {
	var err error
	if len(order) != rank {
		err = multierr.Append(err, errors.Wrapf(errs.ErrInvalidPermutation, "got %d axes but want %d", len(order), rank))
	}
	seen := make([]bool, rank)
	for i, o := range order {
		if o < 0 || o >= rank {
			err = multierr.Append(err, errors.Wrapf(errs.ErrInvalidPermutation, "axis %d at position %d out of [0, %d)", o, i, rank))
			continue
		}
		if seen[o] {
			err = multierr.Append(err, errors.Wrapf(errs.ErrInvalidPermutation, "axis %d at position %d repeated", o, i))
			continue
		}
		seen[o] = true
	}
	return err
}

// SetOrder replaces the order of the layout.
// The order is left unchanged if the new order is invalid.
func (l *Layout) SetOrder(order []int) error {
	if err := ValidateOrder(l.Rank(), order); err != nil {
		return err
	}
	l.order = slices.Clone(order)
	return nil
}

// Coords decomposes a flat index into logical coordinates
// using the row-major order of the axes.
func (l *Layout) Coords(flat int) []int {
	coords := make([]int, len(l.axes))
	l.decode(flat, coords)
	return coords
}

func (l *Layout) decode(flat int, coords []int) {
	for d := len(l.axes) - 1; d >= 0; d-- {
		coords[d] = flat % l.axes[d]
		flat /= l.axes[d]
	}
}

func (l *Layout) encode(coords []int) int {
	offset := 0
	for _, o := range l.order {
		offset = offset*l.axes[o] + coords[o]
	}
	return offset
}

// maxStackRank is the largest rank for which Physical does not allocate.
const maxStackRank = 8

// Physical returns the offset in storage of a flat logical index.
// The index is not checked: it must be in [0, Size()).
func (l *Layout) Physical(flat int) int {
	var buf [maxStackRank]int
	var coords []int
	if len(l.axes) <= maxStackRank {
		coords = buf[:len(l.axes)]
	} else {
		coords = make([]int, len(l.axes))
	}
	l.decode(flat, coords)
	return l.encode(coords)
}

// CheckedPhysical returns the offset in storage of a flat logical index
// or an error if the index is out of range.
func (l *Layout) CheckedPhysical(flat int) (int, error) {
	if size := l.Size(); flat < 0 || flat >= size {
		return 0, errors.Wrapf(errs.ErrIndexOutOfRange, "flat index %d out of [0, %d)", flat, size)
	}
	return l.Physical(flat), nil
}

// Offset returns the offset in storage of an element given its coordinates.
func (l *Layout) Offset(coords ...int) (int, error) {
	if len(coords) != l.Rank() {
		return 0, errors.Wrapf(errs.ErrIndexOutOfRange, "got %d indices for an array of rank %d", len(coords), l.Rank())
	}
	for d, c := range coords {
		if c < 0 || c >= l.axes[d] {
			return 0, errors.Wrapf(errs.ErrIndexOutOfRange, "index %d out of [0, %d) for axis %d", c, l.axes[d], d)
		}
	}
	return l.encode(coords), nil
}

// String representation of the layout.
func (l *Layout) String() string {
	return fmt.Sprintf("axes%v order%v", l.axes, l.order)
}
