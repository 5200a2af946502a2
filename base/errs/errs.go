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

// Package errs defines the kinds of errors reported by linalg packages.
//
// Errors returned by the library wrap one of the sentinels below and
// can be matched with errors.Is.
package errs

import "github.com/pkg/errors"

var (
	// ErrShapeMismatch reports sources of an elementwise node with
	// incompatible sizes, or an invalid shape.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidPermutation reports an order which is not a bijection over [0, rank).
	ErrInvalidPermutation = errors.New("invalid permutation")

	// ErrIndexOutOfRange reports a flat or multi-index outside of the array extents.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrUnsupportedRank reports an operation called on an array of the wrong rank.
	ErrUnsupportedRank = errors.New("unsupported rank")

	// ErrDanglingReference reports an expression built on, or evaluated from, a nil source.
	ErrDanglingReference = errors.New("dangling reference")
)

// Kind returns the sentinel wrapped by err, or nil if err is not a linalg error.
func Kind(err error) error {
	for _, kind := range []error{
		ErrShapeMismatch,
		ErrInvalidPermutation,
		ErrIndexOutOfRange,
		ErrUnsupportedRank,
		ErrDanglingReference,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
