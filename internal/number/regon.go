package number

var (
	regon9Weights  = []int{8, 9, 2, 3, 4, 5, 6, 7}
	regon14Weights = []int{2, 4, 8, 5, 0, 9, 7, 3, 6, 1, 2, 4, 8}
)

// NormalizeREGON returns the 9 or 14 digit form of a REGON number
func NormalizeREGON(regon string) (string, bool) {
	if len(regon) < 9 || len(regon) > 14 {
		return "", false
	}

	num := keepDigits(regon)
	if len(num) != 9 && len(num) != 14 {
		return "", false
	}
	return num, true
}

// IsValidREGON checks a 9-digit REGON, or a 14-digit REGON together with
// the 9-digit number it extends
func IsValidREGON(regon string) bool {
	num, ok := NormalizeREGON(regon)
	if !ok {
		return false
	}

	if !regonCheck(num, regon9Weights, 8) {
		return false
	}
	if len(num) == 14 {
		return regonCheck(num, regon14Weights, 13)
	}
	return true
}

// regonCheck compares digit at pos with the weighted sum mod 11 (10 maps to 0)
func regonCheck(num string, weights []int, pos int) bool {
	sum := weightedSum(num, weights) % 11
	if sum == 10 {
		sum = 0
	}
	return sum == int(num[pos]-'0')
}
