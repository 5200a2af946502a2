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
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type (
	// Option configures Evaluate and Determinant.
	// A function returns an error when given an option it does not support.
	Option interface {
		linalgOption()
	}

	// LoggerOption sets the logger receiving debug records.
	LoggerOption struct {
		Logger *zap.Logger
	}

	// DeterminantMode selects the terms enumerated by Determinant.
	DeterminantMode int
)

const (
	// TupleEnumeration enumerates all the rows^rows tuples of column indices.
	// Tuples with a repeated index are weighted by 0 but still multiplied.
	TupleEnumeration DeterminantMode = iota

	// PermutationEnumeration only enumerates the rows! permutations of column indices.
	PermutationEnumeration
)

func (LoggerOption) linalgOption() {}

func (DeterminantMode) linalgOption() {}

// WithLogger returns an option logging debug records to l.
func WithLogger(l *zap.Logger) Option {
	return LoggerOption{Logger: l}
}

func (m DeterminantMode) String() string {
	switch m {
	case TupleEnumeration:
		return "tuples"
	case PermutationEnumeration:
		return "permutations"
	default:
		return "unknown"
	}
}

type config struct {
	logger *zap.Logger
	mode   DeterminantMode
}

// processOptions returns the configuration of the function fn.
// Determinant modes are only accepted if withMode is true.
func processOptions(fn string, withMode bool, options []Option) (*config, error) {
	cfg := &config{
		logger: zap.NewNop(),
		mode:   TupleEnumeration,
	}
	for _, option := range options {
		switch optionT := option.(type) {
		case nil:
		case LoggerOption:
			if optionT.Logger != nil {
				cfg.logger = optionT.Logger
			}
		case DeterminantMode:
			if !withMode {
				return nil, errors.Errorf("%s: determinant mode %s not supported", fn, optionT)
			}
			if optionT != TupleEnumeration && optionT != PermutationEnumeration {
				return nil, errors.Errorf("%s: determinant mode %d not supported", fn, int(optionT))
			}
			cfg.mode = optionT
		default:
			return nil, errors.Errorf("%s: option of type %T not supported", fn, optionT)
		}
	}
	return cfg, nil
}
