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
	"github.com/gx-org/backend/shape"
)

type reduceOp int

const (
	reduceAll reduceOp = iota
	reduceAny
)

func (op reduceOp) String() string {
	if op == reduceAll {
		return "All"
	}
	return "Any"
}

// ReduceExpr reduces all the elements of an expression to a single boolean.
// An element is true if it is not equal to the zero value of its type.
type ReduceExpr[T Value] struct {
	op reduceOp
	x  Expr[T]
}

var _ Expr[bool] = (*ReduceExpr[int32])(nil)

func newReduce[T Value](op reduceOp, x Expr[T]) (*ReduceExpr[T], error) {
	if err := checkSources(op.String(), x); err != nil {
		return nil, err
	}
	return &ReduceExpr[T]{op: op, x: x}, nil
}

// All returns a node true if all the elements of x are true.
func All[T Value](x Expr[T]) (*ReduceExpr[T], error) {
	return newReduce(reduceAll, x)
}

// Any returns a node true if any element of x is true.
func Any[T Value](x Expr[T]) (*ReduceExpr[T], error) {
	return newReduce(reduceAny, x)
}

// Shape is always [1].
func (r *ReduceExpr[T]) Shape() *shape.Shape {
	return newShape[bool]([]int{1})
}

// Size is always 1.
func (r *ReduceExpr[T]) Size() int {
	return 1
}

// Eval scans the whole source expression. The index is ignored.
func (r *ReduceExpr[T]) Eval(int) bool {
	var zero T
	want := r.op == reduceAny
	for i := 0; i < r.x.Size(); i++ {
		if (r.x.Eval(i) != zero) == want {
			return want
		}
	}
	return !want
}

func (r *ReduceExpr[T]) String() string {
	return r.op.String() + "(" + r.x.String() + ")"
}
