package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Zero is decimal zero
var Zero = decimal.Zero

// Currency of every price reported by the service
const Currency = "PLN"

// Lenient parses the leading numeric prefix of s. Trailing garbage is
// ignored; def is returned when s has no numeric prefix.
func Lenient(s string, def decimal.Decimal) decimal.Decimal {
	prefix := NumericPrefix(s, true)
	if prefix == "" {
		return def
	}
	d, err := decimal.NewFromString(prefix)
	if err != nil {
		return def
	}
	return d
}

// NumericPrefix returns the longest leading run of s that forms a number,
// after skipping white space. With fraction set a decimal point and an
// exponent are accepted too. It returns "" when no digit is found.
func NumericPrefix(s string, fraction bool) string {
	s = strings.TrimLeft(s, " \t\n\r\v\f")

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if fraction && i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}

	if digits == 0 {
		return ""
	}

	if fraction && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		start := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > start {
			i = j
		}
	}

	return s[:i]
}

// FormatPLN renders an amount with two decimal places and the currency
func FormatPLN(d decimal.Decimal) string {
	return d.StringFixed(2) + " " + Currency
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
