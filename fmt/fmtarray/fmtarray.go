// Copyright 2024 Google LLC
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

// Package fmtarray formats arrays into string.
package fmtarray

import (
	"fmt"
	"strings"

	"github.com/gx-org/backend/dtype"
)

const tab = "\t"

type builder[T dtype.GoDataType] struct {
	w       strings.Builder
	axes    []int
	strides []int
	at      func(int) T
}

func newBuilder[T dtype.GoDataType](axes []int, at func(int) T) *builder[T] {
	return &builder[T]{
		axes:    axes,
		strides: axesStrides(axes),
		at:      at,
	}
}

func axesStrides(axes []int) []int {
	strides := make([]int, len(axes))
	stride := 1
	for i := len(axes) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= axes[i]
	}
	return strides
}

func toValue[T dtype.GoDataType](x T) string {
	var fmtstr string
	switch any(x).(type) {
	case float32:
		fmtstr = "%.6f"
	case float64:
		fmtstr = "%.10f"
	default:
		return fmt.Sprint(x)
	}
	result := fmt.Sprintf(fmtstr, x)
	if strings.ContainsRune(result, '.') {
		// Remove any number of trailing zeroes after the decimal point, and remove
		// the point itself if there are no digits after it.
		result = strings.TrimRight(result, "0")
		result = strings.TrimSuffix(result, ".")
	}
	return result
}

func (b *builder[T]) isEmpty() bool {
	for _, axis := range b.axes {
		if axis == 0 {
			return true
		}
	}
	return false
}

func (b *builder[T]) printVector(offset int) {
	vec := make([]string, b.axes[len(b.axes)-1])
	for i := range vec {
		vec[i] = toValue(b.at(offset + i))
	}
	b.w.WriteString("{")
	b.w.WriteString(strings.Join(vec, ", "))
	b.w.WriteString("}")
}

func (b *builder[T]) printRec(indent string, axis, offset int) {
	if axis == len(b.axes)-1 {
		b.printVector(offset)
		return
	}
	b.w.WriteString("{\n")
	for i := 0; i < b.axes[axis]; i++ {
		b.w.WriteString(indent + tab)
		b.printRec(indent+tab, axis+1, offset+i*b.strides[axis])
		b.w.WriteString(",\n")
	}
	b.w.WriteString(indent + "}")
}

func (b *builder[T]) printType() {
	for _, size := range b.axes {
		fmt.Fprintf(&b.w, "[%d]", size)
	}
	b.w.WriteString(dtype.Generic[T]().String())
}

func (b *builder[T]) printData() {
	switch {
	case len(b.axes) == 0:
		b.w.WriteString("(" + toValue(b.at(0)) + ")")
	case b.isEmpty():
		b.w.WriteString("{}")
	default:
		b.printRec("", 0, 0)
	}
}

// SDataPrint returns a string representation of the content of an array without the type.
// The element at a flat row-major index i is given by at(i).
func SDataPrint[T dtype.GoDataType](axes []int, at func(int) T) string {
	b := newBuilder(axes, at)
	b.printData()
	return b.w.String()
}

// Sprint returns a string representation of an array.
// The element at a flat row-major index i is given by at(i).
func Sprint[T dtype.GoDataType](axes []int, at func(int) T) string {
	b := newBuilder(axes, at)
	b.printType()
	b.printData()
	return b.w.String()
}

// SprintSlice returns a string representation of an array stored as a flat row-major slice.
func SprintSlice[T dtype.GoDataType](data []T, axes []int) string {
	return Sprint(axes, func(i int) T { return data[i] })
}
