// Package types provides type definitions for structured data used throughout the resume analyzer.
package types

import (
	"fmt"
	"strconv"
	"strings"
)

// SalaryRange is an ordered pair of non-negative salary bounds with
// Min <= Max. Construct via NewSalaryRange or ParseSalaryRange.
type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NewSalaryRange builds a range from up to two bounds. Reversed bounds are
// swapped rather than rejected. A single bound collapses to a degenerate
// range where Min = Max. Returns nil when neither bound is given.
func NewSalaryRange(minVal, maxVal *float64) *SalaryRange {
	switch {
	case minVal == nil && maxVal == nil:
		return nil
	case minVal == nil:
		return &SalaryRange{Min: *maxVal, Max: *maxVal}
	case maxVal == nil:
		return &SalaryRange{Min: *minVal, Max: *minVal}
	}
	lo, hi := *minVal, *maxVal
	if lo > hi {
		lo, hi = hi, lo
	}
	return &SalaryRange{Min: lo, Max: hi}
}

// ParseSalaryRange builds a range from two loosely formatted bound strings
// (currency symbols and separators are tolerated). Empty or unparseable
// strings count as absent bounds.
func ParseSalaryRange(minStr, maxStr string) *SalaryRange {
	return NewSalaryRange(ParseAmount(minStr), ParseAmount(maxStr))
}

// ParseAmount extracts a numeric amount from a loosely formatted string by
// stripping everything but digits and a decimal point. Returns nil when no
// amount can be recovered.
func ParseAmount(s string) *float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return nil
	}
	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || val < 0 {
		return nil
	}
	return &val
}

// Span returns the width of the range.
func (r *SalaryRange) Span() float64 {
	return r.Max - r.Min
}

func (r *SalaryRange) String() string {
	return fmt.Sprintf("%.0f-%.0f", r.Min, r.Max)
}
