package rules

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind distinguishes the two value shapes a declaration can produce
type Kind int

const (
	// KindString is any value that is not a bare run of digits ("10px", "0.6", "red")
	KindString Kind = iota
	// KindNumber is a value made only of ASCII digits ("10", "700")
	KindNumber
)

// Value is a parsed declaration value: either a string or a number
type Value struct {
	kind Kind
	text string  // Trimmed source text, kept for both kinds
	num  float64 // Only meaningful when kind == KindNumber
}

// String returns a string value
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Number returns a numeric value
func Number(f float64) Value {
	return Value{kind: KindNumber, text: strconv.FormatFloat(f, 'f', -1, 64), num: f}
}

// Kind reports whether the value is a string or a number
func (v Value) Kind() Kind {
	return v.kind
}

// IsNumber reports whether the value was coerced to a number
func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

// Text returns the value as written (trimmed)
func (v Value) Text() string {
	return v.text
}

// Float returns the numeric value and whether the value is numeric
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// String renders the value for output. Numbers are printed in canonical form,
// so "007" renders as "7". A digit run too long for float64 keeps its digits.
func (v Value) String() string {
	if v.kind != KindNumber {
		return v.text
	}
	if math.IsInf(v.num, 0) {
		return trimZeros(v.text)
	}
	return strconv.FormatFloat(v.num, 'f', -1, 64)
}

// MarshalJSON encodes numbers as JSON numbers and everything else as JSON strings.
// Overflowing digit runs are still valid JSON number literals.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindNumber {
		return []byte(v.String()), nil
	}
	return json.Marshal(v.text)
}

// Equal compares numbers by value and strings by text, so "007" equals Number(7)
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindString {
		return v.text == other.text
	}
	return v.String() == other.String()
}

func trimZeros(digits string) string {
	for len(digits) > 1 && digits[0] == '0' {
		digits = digits[1:]
	}
	return digits
}

// Coerce converts trimmed value text into a Value.
// Only a non-empty run of ASCII digits becomes a number: no sign, no decimal
// point, no unit. "0.6" therefore stays a string.
func Coerce(s string) Value {
	if !isDigits(s) {
		return String(s)
	}
	// ParseFloat never fails on a digit run; very long runs saturate to +Inf
	f, _ := strconv.ParseFloat(s, 64)
	return Value{kind: KindNumber, text: s, num: f}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
