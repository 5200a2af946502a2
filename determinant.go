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
	"github.com/gx-org/linalg/base/errs"
	"github.com/gx-org/linalg/base/iter"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Determinant computes the determinant of a square matrix.
//
// Each term of the sum is the product of one element per row, the column of
// the element in row i being t[i], weighted by the product of the signs of
// t[j]-t[i] for all i < j. By default (TupleEnumeration), all the rows^rows
// tuples t are enumerated, the first entry of t varying the fastest. The weight
// of a tuple with a repeated entry is 0 but its product is still computed, so
// that an infinite element yields NaN. PermutationEnumeration restricts t to
// the permutations of the columns.
//
// The determinant is computed from the storage, so it does not depend on
// the order of the axes.
func Determinant[T Numeric](a *Array[T], options ...Option) (T, error) {
	var det T
	if a == nil {
		return det, errors.Wrap(errs.ErrDanglingReference, "cannot compute the determinant of a nil array")
	}
	cfg, err := processOptions("Determinant", true, options)
	if err != nil {
		return det, err
	}
	axes := a.layout.Axes()
	if len(axes) != 2 {
		return det, errors.Wrapf(errs.ErrUnsupportedRank, "determinant requires an array of rank 2 but got shape %v", axes)
	}
	rows, cols := axes[0], axes[1]
	if rows != cols {
		return det, errors.Wrapf(errs.ErrShapeMismatch, "determinant requires a square matrix but got shape %v", axes)
	}
	if rows == 0 {
		return 1, nil
	}
	term := func(t []int) T {
		prod := a.data[t[0]]
		for i := 1; i < rows; i++ {
			prod *= a.data[i*cols+t[i]]
		}
		return T(iter.Sign(t)) * prod
	}
	terms := 0
	switch cfg.mode {
	case PermutationEnumeration:
		for perm := range iter.Permutations(rows) {
			det += term(perm)
			terms++
		}
	default:
		for _, tuple := range iter.Tuples(rows, rows) {
			det += term(tuple)
			terms++
		}
	}
	cfg.logger.Debug("determinant",
		zap.Stringer("mode", cfg.mode),
		zap.Int("rows", rows),
		zap.Int("terms", terms))
	return det, nil
}
