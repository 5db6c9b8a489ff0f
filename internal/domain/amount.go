package domain

import (
	"math"
	"strconv"
	"strings"
)

// Amount is a charge value that remembers whether it is still an exact
// integer or has become a floating-point result. Integer amounts render
// without a decimal point ("402"), float amounts always carry at least one
// fractional digit ("14.0", "417.5").
type Amount struct {
	whole   int64
	value   float64
	isFloat bool
}

// IntAmount returns an exact integer amount.
func IntAmount(n int64) Amount {
	return Amount{whole: n, value: float64(n)}
}

// FloatAmount returns a floating-point amount, even when f is whole.
func FloatAmount(f float64) Amount {
	return Amount{value: f, isFloat: true}
}

// Add returns a + b. The sum stays an integer only if both operands are integers.
func (a Amount) Add(b Amount) Amount {
	if a.isFloat || b.isFloat {
		return FloatAmount(a.value + b.value)
	}
	return IntAmount(a.whole + b.whole)
}

// IsInteger reports whether the amount is an exact integer.
func (a Amount) IsInteger() bool {
	return !a.isFloat
}

// Float64 returns the numeric value of the amount.
func (a Amount) Float64() float64 {
	return a.value
}

// String renders the amount in its natural numeric form.
func (a Amount) String() string {
	if !a.isFloat {
		return strconv.FormatInt(a.whole, 10)
	}
	return formatFloat(a.value)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		return withFraction(strconv.FormatFloat(f, 'f', -1, 64))
	}

	// Very large and very small magnitudes switch to exponent form: 1.0e+16
	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return withFraction(mantissa) + "e" + exponent
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
