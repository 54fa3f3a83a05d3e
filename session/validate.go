package session

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/katalvlaran/mstlab/core"
)

var (
	// ErrInvalidNodeID wraps core.ErrEmptyVertexID for blank user input.
	ErrInvalidNodeID = fmt.Errorf("session: node id is blank: %w", core.ErrEmptyVertexID)

	// ErrInvalidWeight indicates weight input that is not a finite number.
	// It wraps core.ErrBadWeight.
	ErrInvalidWeight = fmt.Errorf("session: weight is not a number: %w", core.ErrBadWeight)

	// ErrWeightOutOfRange indicates a finite weight outside the configured range.
	ErrWeightOutOfRange = errors.New("session: weight out of range")
)

// ParseNodeID trims surrounding whitespace; a blank result is ErrInvalidNodeID.
func ParseNodeID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrInvalidNodeID
	}

	return id, nil
}

// ParseWeight converts numeric text ("3", " 2.5 ", "1e2") to a finite float64.
func ParseWeight(text string) (float64, error) {
	return CoerceWeight(strings.TrimSpace(text))
}

// CoerceWeight converts a decoded scalar (string, int, float, json.Number, ...)
// to a finite float64. Booleans and nil are rejected.
func CoerceWeight(v any) (float64, error) {
	switch v.(type) {
	case nil, bool:
		return 0, fmt.Errorf("%w: %v", ErrInvalidWeight, v)
	case string:
		if v == "" {
			return 0, fmt.Errorf("%w: empty", ErrInvalidWeight)
		}
	}
	w, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWeight, v)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWeight, v)
	}

	return w, nil
}

// Limits bounds accepted edge weights. Max == 0 disables the ceiling.
type Limits struct {
	Min float64
	Max float64
}

// DefaultLimits mirrors the interactive form: integers 1 through 100.
func DefaultLimits() Limits { return Limits{Min: 1, Max: 100} }

// Check returns ErrWeightOutOfRange when w falls outside l.
func (l Limits) Check(w float64) error {
	if w < l.Min || (l.Max != 0 && w > l.Max) {
		if l.Max != 0 {
			return fmt.Errorf("%w: %g not in [%g, %g]", ErrWeightOutOfRange, w, l.Min, l.Max)
		}
		return fmt.Errorf("%w: %g below %g", ErrWeightOutOfRange, w, l.Min)
	}

	return nil
}

// intRange returns the integer weights l admits, for generated graphs.
// Without a ceiling it spans 100 values from the floor.
func (l Limits) intRange() (lo, hi int) {
	lo = int(math.Ceil(l.Min))
	if l.Max == 0 {
		return lo, lo + 99
	}

	return lo, int(math.Floor(l.Max))
}
