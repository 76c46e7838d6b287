// Package core provides the record and aggregation domain types.
//
// This file contains parsing of textual measure values into exact
// cent amounts and rendering of cent amounts back to decimal text.
package core

import (
	"strconv"
	"strings"
	"unicode"
)

// ParseValueToCents converts a decimal string to cents with half-up
// rounding on the third decimal place.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators and an
// optional leading sign. Empty strings, non-numeric text and malformed
// decimals return ErrInvalidValue; callers treat that as "row excluded",
// never as zero.
//
// Examples:
//
//	ParseValueToCents("100")    -> 10000, nil
//	ParseValueToCents("12,34")  -> 1234, nil
//	ParseValueToCents("1.005")  -> 101, nil (rounds up)
//	ParseValueToCents("-2.50")  -> -250, nil
//	ParseValueToCents("abc")    -> 0, ErrInvalidValue
func ParseValueToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidValue
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if s == "" || s == "." {
		return 0, ErrInvalidValue
	}
	// Split into integer and fractional part
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidValue
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidValue
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidValue
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidValue
	}
	// Prevent overflow when multiplying by 100
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidValue
	}
	// Take first two fractional digits; then half-up rounding on third
	var fracCents int64 = 0
	if len(fracPart) > 0 {
		d1 := int64(fracPart[0] - '0')
		fracCents = d1 * 10
		if len(fracPart) > 1 {
			d2 := int64(fracPart[1] - '0')
			fracCents += d2
			if len(fracPart) > 2 {
				if fracPart[2] >= '5' {
					fracCents++
				}
			}
		}
	}
	cents := iv*100 + fracCents
	if negative {
		cents = -cents
	}
	return cents, nil
}

// String renders the amount as a minimal decimal: no trailing zeros,
// no decimal point for whole amounts ("600", "12.5", "0.01").
func (m Money) String() string {
	c := m.Cents
	negative := c < 0
	if negative {
		c = -c
	}
	units := c / 100
	frac := c % 100
	var s string
	switch {
	case frac == 0:
		s = strconv.FormatInt(units, 10)
	case frac%10 == 0:
		s = strconv.FormatInt(units, 10) + "." + strconv.FormatInt(frac/10, 10)
	default:
		s = strconv.FormatInt(units, 10) + "."
		if frac < 10 {
			s += "0"
		}
		s += strconv.FormatInt(frac, 10)
	}
	if negative {
		s = "-" + s
	}
	return s
}

// MarshalJSON renders the amount as a bare JSON number so the output
// document reads naturally ({"A": 600}, not {"A": "600"}).
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}
