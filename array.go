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

package linalg

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/gx-org/backend/shape"
	"github.com/gx-org/linalg/base/errs"
	"github.com/gx-org/linalg/fmt/fmtarray"
	"github.com/gx-org/linalg/layout"
	"github.com/pkg/errors"
)

// Array is a dense N-dimensional array owning its data.
//
// The data is stored once, in row-major order, when the array is created.
// Transposing an array only changes how logical indices are mapped to the storage.
type Array[T Value] struct {
	data   []T
	layout *layout.Layout
}

var _ Expr[float32] = (*Array[float32])(nil)

func newArray[T Value](data []T, axes []int) (*Array[T], error) {
	lay, err := layout.New(axes)
	if err != nil {
		return nil, err
	}
	if data == nil {
		data = make([]T, lay.Size())
	}
	if len(data) != lay.Size() {
		return nil, errors.Wrapf(errs.ErrShapeMismatch, "shape %v requires %d elements, but got %d", axes, lay.Size(), len(data))
	}
	return &Array[T]{data: data, layout: lay}, nil
}

// Zeros returns an array of the given shape with all elements set to the zero value.
func Zeros[T Value](axes ...int) (*Array[T], error) {
	return newArray[T](nil, axes)
}

// FromSlice returns an array from values in row-major order.
// The values are copied. If no axes are given, the array has a single axis of length len(values).
func FromSlice[T Value](values []T, axes ...int) (*Array[T], error) {
	if len(axes) == 0 {
		axes = []int{len(values)}
	}
	data := make([]T, len(values))
	copy(data, values)
	return newArray(data, axes)
}

// Shape returns the shape declared when the array was created.
// It is not affected by Transpose.
func (a *Array[T]) Shape() *shape.Shape {
	return newShape[T](a.layout.Axes())
}

// Size returns the number of elements.
func (a *Array[T]) Size() int {
	return len(a.data)
}

// Eval returns the element at a flat logical index.
// The index is not checked.
func (a *Array[T]) Eval(i int) T {
	return a.data[a.layout.Physical(i)]
}

// AtFlat returns the element at a flat logical index.
func (a *Array[T]) AtFlat(i int) (T, error) {
	offset, err := a.layout.CheckedPhysical(i)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[offset], nil
}

// SetFlat sets the element at a flat logical index.
func (a *Array[T]) SetFlat(v T, i int) error {
	offset, err := a.layout.CheckedPhysical(i)
	if err != nil {
		return err
	}
	a.data[offset] = v
	return nil
}

// At returns the element at the given indices, one per axis.
func (a *Array[T]) At(indices ...int) (T, error) {
	offset, err := a.layout.Offset(indices...)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[offset], nil
}

// Set sets the element at the given indices, one per axis.
func (a *Array[T]) Set(v T, indices ...int) error {
	offset, err := a.layout.Offset(indices...)
	if err != nil {
		return err
	}
	a.data[offset] = v
	return nil
}

// Transpose replaces the order of the axes.
// The order must be a permutation of [0, rank). The data is not moved.
func (a *Array[T]) Transpose(order ...int) error {
	if err := a.layout.SetOrder(order); err != nil {
		return errors.WithMessagef(err, "cannot transpose array of shape %v", a.layout.Axes())
	}
	return nil
}

// Order returns the current order of the axes.
func (a *Array[T]) Order() []int {
	return a.layout.Order()
}

// Flat returns a copy of the data in storage order.
func (a *Array[T]) Flat() []T {
	return slices.Clone(a.data)
}

// Values returns a copy of the data in logical order.
func (a *Array[T]) Values() []T {
	values := make([]T, len(a.data))
	for i := range values {
		values[i] = a.Eval(i)
	}
	return values
}

// Clone returns a copy of the array, including its data and its order.
func (a *Array[T]) Clone() *Array[T] {
	return &Array[T]{
		data:   slices.Clone(a.data),
		layout: a.layout.Clone(),
	}
}

// String returns the elements of the array in logical order.
func (a *Array[T]) String() string {
	var s strings.Builder
	s.WriteString("Array(")
	for i := range a.data {
		if i > 0 {
			s.WriteString(",")
		}
		fmt.Fprint(&s, a.Eval(i))
	}
	s.WriteString(")")
	return s.String()
}

// Format implements fmt.Formatter.
// %v and %s print String, %+v prints the elements as nested Go composite literals.
// Other verbs, with their flags, width and precision, are applied to each element.
func (a *Array[T]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, fmtarray.Sprint(a.layout.Axes(), a.Eval))
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, a.String())
	default:
		format := fmt.FormatString(s, verb)
		io.WriteString(s, "Array(")
		for i := range a.data {
			if i > 0 {
				io.WriteString(s, ",")
			}
			fmt.Fprintf(s, format, a.Eval(i))
		}
		io.WriteString(s, ")")
	}
}
