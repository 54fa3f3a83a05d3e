// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is; messages carry
// the constructor name and offending value as context.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrTooManyVertices indicates a size parameter above MaxVertices.
var ErrTooManyVertices = errors.New("builder: parameter too large")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrConstructFailed indicates a nil constructor or a graph mutation failure.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrInvalidWeightRange indicates a weight range with max below min.
var ErrInvalidWeightRange = errors.New("builder: invalid weight range")

// ErrUnknownKind indicates a generator name Recipe does not know.
var ErrUnknownKind = errors.New("builder: unknown generator kind")
