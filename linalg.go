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

// Package linalg provides lazily evaluated N-dimensional arrays.
//
// An Array owns its data. Expressions built from arrays with Plus, LessThan,
// All, Any, Where or Convert do not store any value: they compute an element
// every time it is requested. Evaluate materialises an expression into a new
// Array.
//
//	a := linalg.Must(linalg.FromSlice([]float32{1, 5, 3}))
//	b := linalg.Must(linalg.FromSlice([]float32{2, 2, 2}))
//	lowest := linalg.Must(linalg.Where(linalg.Must(linalg.LessThan(a, b)), a, b))
//	fmt.Println(lowest)
//	// Where(Less(Array(1,5,3), Array(2,2,2)),Array(1,5,3),Array(2,2,2))
//	fmt.Println(linalg.Must(linalg.Evaluate(lowest)))
//	// Array(1,2,2)
//
// Arrays are transposed by replacing the order of their axes.
// No data is moved: only the mapping from logical indices to storage changes.
package linalg

import (
	"fmt"
	"io"
	"reflect"
	"slices"

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
	"github.com/gx-org/linalg/base/errs"
	"github.com/pkg/errors"
)

type (
	// Numeric is the set of element types supporting arithmetic and ordering.
	Numeric interface {
		dtype.Float | dtype.IntegerType
	}

	// Value is the set of element types an array can store.
	Value interface {
		bool | Numeric
	}

	// Expr is a node of an expression graph with elements of type T.
	Expr[T Value] interface {
		// Shape returns the logical shape of the expression.
		Shape() *shape.Shape

		// Size returns the number of elements of the expression.
		// Every index in [0, Size()) is a valid argument for Eval.
		Size() int

		// Eval computes the element at a flat logical index.
		Eval(i int) T

		// String returns a structural representation of the expression.
		String() string
	}
)

// Must returns a node if err is nil and panics otherwise.
// It simplifies the construction of literal expressions.
func Must[E any](e E, err error) E {
	if err != nil {
		panic(err)
	}
	return e
}

// Fprint writes the structural representation of an expression to a writer.
func Fprint(w io.Writer, x fmt.Stringer) error {
	_, err := io.WriteString(w, x.String())
	return err
}

func newShape[T Value](axes []int) *shape.Shape {
	return &shape.Shape{
		DType:       dtype.Generic[T](),
		AxisLengths: slices.Clone(axes),
	}
}

func isNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}

func checkSources(node string, srcs ...any) error {
	for i, src := range srcs {
		if isNil(src) {
			return errors.Wrapf(errs.ErrDanglingReference, "%s: source %d is nil", node, i)
		}
	}
	return nil
}

type sized interface {
	Size() int
	Shape() *shape.Shape
}

func checkSizes(node string, first sized, others ...sized) error {
	for _, other := range others {
		if other.Size() != first.Size() {
			return errors.Wrapf(errs.ErrShapeMismatch, "%s: size %d of %s does not match size %d of %s", node, other.Size(), other.Shape().String(), first.Size(), first.Shape().String())
		}
	}
	return nil
}
