package number

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeKRS returns the zero-padded 10-digit form of a KRS number.
// Leading white space and a '+' sign are skipped and parsing stops at the
// first non-digit. Input without a leading digit, a negative value or one
// wider than 10 digits has no canonical form.
func NormalizeKRS(krs string) (string, bool) {
	s := strings.TrimLeft(krs, " \t\n\r\v\f")
	s = strings.TrimPrefix(s, "+")

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return "", false
	}

	v, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil {
		return "", false
	}

	num := fmt.Sprintf("%010d", v)
	if len(num) != 10 {
		return "", false
	}
	return num, true
}

// IsValidKRS reports whether krs has a 10-digit canonical form. KRS
// numbers carry no checksum.
func IsValidKRS(krs string) bool {
	_, ok := NormalizeKRS(krs)
	return ok
}
