package number

var nipWeights = []int{6, 5, 7, 2, 3, 4, 5, 6, 7}

// NormalizeNIP returns the 10-digit form of a NIP number.
// Input may contain separators ("123-456-32-18") but must be 10 to 13
// characters long.
func NormalizeNIP(nip string) (string, bool) {
	if len(nip) < 10 || len(nip) > 13 {
		return "", false
	}

	num := keepDigits(nip)
	if len(num) != 10 {
		return "", false
	}
	return num, true
}

// IsValidNIP checks the NIP mod-11 checksum. A weighted sum with
// remainder 10 can never match a digit and is always invalid.
func IsValidNIP(nip string) bool {
	num, ok := NormalizeNIP(nip)
	if !ok {
		return false
	}

	sum := weightedSum(num, nipWeights) % 11
	return sum == int(num[9]-'0')
}
