package util

import (
	"math"
	"strconv"
)

// Numeric constrains the numeric helper functions
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Min returns the smaller of x and y
func Min[T Numeric](x, y T) T {
	if x < y {
		return x
	}
	return y
}

// ParsePositiveUint32 parses s as a base-10 integer strictly greater than zero
func ParsePositiveUint32(s string) (uint32, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}

	return uint32(v), true
}

// ParsePositiveFloat parses s as a finite float strictly greater than zero
func ParsePositiveFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}

	return v, true
}

// ParseNonNegativeFloat parses s as a finite float greater than or equal to zero
func ParseNonNegativeFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}

	return v, true
}
