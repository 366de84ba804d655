package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseUnsigned converts a string made only of decimal digits into an unsigned value.
// Signs, spaces and anything exceeding 32 bits are rejected.
func ParseUnsigned(s string) (uint, error) {
	if s == "" {
		return 0, fmt.Errorf("empty unsigned value")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("bad unsigned value %q: unexpected %q", s, c)
		}
	}
	u, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad unsigned value %q: out of range", s)
	}
	return uint(u), nil
}

// ParseFloat converts a plain decimal number into a float.
// Only an optional leading minus sign, digits and at most one decimal
// point are accepted, so exponents, "Inf" and "NaN" are rejected.
func ParseFloat(s string) (float64, error) {
	str := strings.TrimLeft(s, " \t\r")
	body := strings.TrimPrefix(str, "-")

	var digits int
	var decimal bool
	for _, c := range body {
		switch {
		case c == '.':
			if decimal {
				return 0, fmt.Errorf("bad float value %q: multiple decimal points", s)
			}
			decimal = true
		case c == '-':
			return 0, fmt.Errorf("bad float value %q: misplaced sign", s)
		case c >= '0' && c <= '9':
			digits++
		default:
			return 0, fmt.Errorf("bad float value %q: unexpected %q", s, c)
		}
	}
	if digits == 0 {
		return 0, fmt.Errorf("bad float value %q: no digits", s)
	}

	f, err := strconv.ParseFloat(str, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, fmt.Errorf("bad float value %q: out of range", s)
	}
	return f, nil
}
