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

	"github.com/gx-org/linalg/base/errs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Evaluate materialises an expression into a new array.
//
// The array has the shape of the expression and its element at the flat
// index i is x.Eval(i), for all i in [0, x.Size()).
func Evaluate[T Value](x Expr[T], options ...Option) (*Array[T], error) {
	if isNil(x) {
		return nil, errors.Wrap(errs.ErrDanglingReference, "cannot evaluate a nil expression")
	}
	cfg, err := processOptions("Evaluate", false, options)
	if err != nil {
		return nil, err
	}
	sh := x.Shape()
	out, err := Zeros[T](sh.AxisLengths...)
	if err != nil {
		return nil, errors.WithMessagef(err, "cannot evaluate %T", x)
	}
	if out.Size() != x.Size() {
		return nil, errors.Wrapf(errs.ErrShapeMismatch, "%T has %d elements but its shape %s has %d", x, x.Size(), sh.String(), out.Size())
	}
	// A new array has the identity order: logical and storage indices are the same.
	for i := range out.data {
		out.data[i] = x.Eval(i)
	}
	cfg.logger.Debug("evaluate",
		zap.String("node", fmt.Sprintf("%T", x)),
		zap.Stringer("shape", sh),
		zap.Int("size", out.Size()))
	return out, nil
}

// FromExpr returns a new array from an expression.
// It is the same as Evaluate.
func FromExpr[T Value](x Expr[T], options ...Option) (*Array[T], error) {
	return Evaluate(x, options...)
}
