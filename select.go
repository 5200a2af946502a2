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

	"github.com/gx-org/backend/dtype"
	"github.com/gx-org/backend/shape"
)

// WhereExpr selects elements from two expressions given a condition.
type WhereExpr[T Value] struct {
	cond Expr[bool]
	a, b Expr[T]
}

var _ Expr[float32] = (*WhereExpr[float32])(nil)

// Where returns a node selecting a[i] where cond[i] is true and b[i] otherwise.
// cond, a, and b must have the same number of elements.
func Where[T Value](cond Expr[bool], a, b Expr[T]) (*WhereExpr[T], error) {
	if err := checkSources("Where", cond, a, b); err != nil {
		return nil, err
	}
	if err := checkSizes("Where", cond, a, b); err != nil {
		return nil, err
	}
	return &WhereExpr[T]{cond: cond, a: a, b: b}, nil
}

// Shape of the first value operand.
func (x *WhereExpr[T]) Shape() *shape.Shape {
	return x.a.Shape()
}

// Size of the condition.
func (x *WhereExpr[T]) Size() int {
	return x.cond.Size()
}

// Eval evaluates the condition and then only the selected operand.
func (x *WhereExpr[T]) Eval(i int) T {
	if x.cond.Eval(i) {
		return x.a.Eval(i)
	}
	return x.b.Eval(i)
}

func (x *WhereExpr[T]) String() string {
	return "Where(" + x.cond.String() + "," + x.a.String() + "," + x.b.String() + ")"
}

// ConvertExpr converts the elements of an expression to another numeric type.
type ConvertExpr[U, T Numeric] struct {
	x Expr[T]
}

var _ Expr[float64] = (*ConvertExpr[float64, int32])(nil)

// Convert returns a node converting the elements of x to U.
// Combine it with Plus or Where to mix expressions of different types.
func Convert[U, T Numeric](x Expr[T]) (*ConvertExpr[U, T], error) {
	if err := checkSources("Convert", x); err != nil {
		return nil, err
	}
	return &ConvertExpr[U, T]{x: x}, nil
}

// Shape of the source with the target data type.
func (c *ConvertExpr[U, T]) Shape() *shape.Shape {
	return newShape[U](c.x.Shape().AxisLengths)
}

// Size of the source.
func (c *ConvertExpr[U, T]) Size() int {
	return c.x.Size()
}

// Eval returns U(x[i]).
func (c *ConvertExpr[U, T]) Eval(i int) U {
	return U(c.x.Eval(i))
}

func (c *ConvertExpr[U, T]) String() string {
	return fmt.Sprintf("Convert[%s](%s)", dtype.Generic[U]().String(), c.x.String())
}
