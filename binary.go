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

// PlusExpr adds two expressions elementwise.
type PlusExpr[T Numeric] struct {
	a, b Expr[T]
}

var _ Expr[float32] = (*PlusExpr[float32])(nil)

// Plus returns a node adding a and b elementwise.
// Both expressions must have the same number of elements.
func Plus[T Numeric](a, b Expr[T]) (*PlusExpr[T], error) {
	if err := checkSources("Plus", a, b); err != nil {
		return nil, err
	}
	if err := checkSizes("Plus", a, b); err != nil {
		return nil, err
	}
	return &PlusExpr[T]{a: a, b: b}, nil
}

// Shape of the first operand.
func (x *PlusExpr[T]) Shape() *shape.Shape {
	return x.a.Shape()
}

// Size of the first operand.
func (x *PlusExpr[T]) Size() int {
	return x.a.Size()
}

// Eval returns a[i] + b[i].
func (x *PlusExpr[T]) Eval(i int) T {
	return x.a.Eval(i) + x.b.Eval(i)
}

func (x *PlusExpr[T]) String() string {
	return "Plus(" + x.a.String() + ", " + x.b.String() + ")"
}

// LessExpr compares two expressions elementwise.
type LessExpr[T Numeric] struct {
	a, b Expr[T]
}

var _ Expr[bool] = (*LessExpr[float32])(nil)

// LessThan returns a boolean node true where a is strictly less than b.
// Both expressions must have the same number of elements.
func LessThan[T Numeric](a, b Expr[T]) (*LessExpr[T], error) {
	if err := checkSources("LessThan", a, b); err != nil {
		return nil, err
	}
	if err := checkSizes("LessThan", a, b); err != nil {
		return nil, err
	}
	return &LessExpr[T]{a: a, b: b}, nil
}

// Shape of the first operand with a boolean data type.
func (x *LessExpr[T]) Shape() *shape.Shape {
	return newShape[bool](x.a.Shape().AxisLengths)
}

// Size of the first operand.
func (x *LessExpr[T]) Size() int {
	return x.a.Size()
}

// Eval returns a[i] < b[i].
func (x *LessExpr[T]) Eval(i int) bool {
	return x.a.Eval(i) < x.b.Eval(i)
}

func (x *LessExpr[T]) String() string {
	return "Less(" + x.a.String() + ", " + x.b.String() + ")"
}
