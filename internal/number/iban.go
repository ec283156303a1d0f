package number

import (
	"regexp"
	"sort"
)

// ibanFormats maps an IBAN country code to the structure of its account
// numbers. The table is a fixed snapshot of the formats accepted by the
// service.
var ibanFormats = map[string]*regexp.Regexp{
	"AD": regexp.MustCompile(`^AD\d{10}[A-Z0-9]{12}$`),
	"AE": regexp.MustCompile(`^AE\d{21}$`),
	"AL": regexp.MustCompile(`^AL\d{10}[A-Z0-9]{16}$`),
	"AT": regexp.MustCompile(`^AT\d{18}$`),
	"AZ": regexp.MustCompile(`^AZ\d{2}[A-Z]{4}[A-Z0-9]{20}$`),
	"BA": regexp.MustCompile(`^BA\d{18}$`),
	"BE": regexp.MustCompile(`^BE\d{14}$`),
	"BG": regexp.MustCompile(`^BG\d{2}[A-Z]{4}\d{6}[A-Z0-9]{8}$`),
	"BH": regexp.MustCompile(`^BH\d{2}[A-Z]{4}[A-Z0-9]{14}$`),
	"BR": regexp.MustCompile(`^BR\d{25}[A-Z][A-Z0-9]$`),
	"BY": regexp.MustCompile(`^BY\d{2}[A-Z0-9]{4}\d{4}[A-Z0-9]{16}$`),
	"CH": regexp.MustCompile(`^CH\d{7}[A-Z0-9]{12}$`),
	"CR": regexp.MustCompile(`^CR\d{20}$`),
	"CY": regexp.MustCompile(`^CY\d{10}[A-Z0-9]{16}$`),
	"CZ": regexp.MustCompile(`^CZ\d{22}$`),
	"DE": regexp.MustCompile(`^DE\d{20}$`),
	"DK": regexp.MustCompile(`^DK\d{16}$`),
	"DO": regexp.MustCompile(`^DO\d{2}[A-Z0-9]{4}\d{20}$`),
	"EE": regexp.MustCompile(`^EE\d{18}$`),
	"ES": regexp.MustCompile(`^ES\d{22}$`),
	"FI": regexp.MustCompile(`^FI\d{16}$`),
	"FO": regexp.MustCompile(`^FO\d{16}$`),
	"FR": regexp.MustCompile(`^FR\d{12}[A-Z0-9]{11}\d{2}$`),
	"GB": regexp.MustCompile(`^GB\d{2}[A-Z]{4}\d{14}$`),
	"GE": regexp.MustCompile(`^GE\d{2}[A-Z]{2}\d{16}$`),
	"GI": regexp.MustCompile(`^GI\d{2}[A-Z]{4}[A-Z0-9]{15}$`),
	"GL": regexp.MustCompile(`^GL\d{16}$`),
	"GR": regexp.MustCompile(`^GR\d{9}[A-Z0-9]{16}$`),
	"GT": regexp.MustCompile(`^GT\d{2}[A-Z0-9]{24}$`),
	"HR": regexp.MustCompile(`^HR\d{19}$`),
	"HU": regexp.MustCompile(`^HU\d{26}$`),
	"IE": regexp.MustCompile(`^IE\d{2}[A-Z]{4}\d{14}$`),
	"IL": regexp.MustCompile(`^IL\d{21}$`),
	"IQ": regexp.MustCompile(`^IQ\d{2}[A-Z]{4}\d{15}$`),
	"IS": regexp.MustCompile(`^IS\d{24}$`),
	"IT": regexp.MustCompile(`^IT\d{2}[A-Z]\d{10}[A-Z0-9]{12}$`),
	"JO": regexp.MustCompile(`^JO\d{2}[A-Z]{4}\d{4}[A-Z0-9]{18}$`),
	"KW": regexp.MustCompile(`^KW\d{2}[A-Z]{4}[A-Z0-9]{22}$`),
	"KZ": regexp.MustCompile(`^KZ\d{5}[A-Z0-9]{13}$`),
	"LB": regexp.MustCompile(`^LB\d{6}[A-Z0-9]{20}$`),
	"LC": regexp.MustCompile(`^LC\d{2}[A-Z]{4}[A-Z0-9]{24}$`),
	"LI": regexp.MustCompile(`^LI\d{7}[A-Z0-9]{12}$`),
	"LT": regexp.MustCompile(`^LT\d{18}$`),
	"LU": regexp.MustCompile(`^LU\d{5}[A-Z0-9]{13}$`),
	"LV": regexp.MustCompile(`^LV\d{2}[A-Z]{4}[A-Z0-9]{13}$`),
	"MC": regexp.MustCompile(`^MC\d{12}[A-Z0-9]{11}\d{2}$`),
	"MD": regexp.MustCompile(`^MD\d{2}[A-Z0-9]{20}$`),
	"ME": regexp.MustCompile(`^ME\d{20}$`),
	"MK": regexp.MustCompile(`^MK\d{5}[A-Z0-9]{10}\d{2}$`),
	"MR": regexp.MustCompile(`^MR\d{25}$`),
	"MT": regexp.MustCompile(`^MT\d{2}[A-Z]{4}\d{5}[A-Z0-9]{18}$`),
	"MU": regexp.MustCompile(`^MU\d{2}[A-Z]{4}\d{19}[A-Z]{3}$`),
	"NL": regexp.MustCompile(`^NL\d{2}[A-Z]{4}\d{10}$`),
	"NO": regexp.MustCompile(`^NO\d{13}$`),
	"PK": regexp.MustCompile(`^PK\d{2}[A-Z]{4}[A-Z0-9]{16}$`),
	"PL": regexp.MustCompile(`^PL\d{26}$`),
	"PS": regexp.MustCompile(`^PS\d{2}[A-Z]{4}[A-Z0-9]{21}$`),
	"PT": regexp.MustCompile(`^PT\d{23}$`),
	"QA": regexp.MustCompile(`^QA\d{2}[A-Z]{4}[A-Z0-9]{21}$`),
	"RO": regexp.MustCompile(`^RO\d{2}[A-Z]{4}[A-Z0-9]{16}$`),
	"RS": regexp.MustCompile(`^RS\d{20}$`),
	"SA": regexp.MustCompile(`^SA\d{4}[A-Z0-9]{18}$`),
	"SC": regexp.MustCompile(`^SC\d{2}[A-Z]{4}\d{20}[A-Z]{3}$`),
	"SE": regexp.MustCompile(`^SE\d{22}$`),
	"SI": regexp.MustCompile(`^SI\d{17}$`),
	"SK": regexp.MustCompile(`^SK\d{22}$`),
	"SM": regexp.MustCompile(`^SM\d{2}[A-Z]\d{10}[A-Z0-9]{12}$`),
	"ST": regexp.MustCompile(`^ST\d{23}$`),
	"SV": regexp.MustCompile(`^SV\d{2}[A-Z]{4}\d{20}$`),
	"TL": regexp.MustCompile(`^TL\d{21}$`),
	"TN": regexp.MustCompile(`^TN\d{22}$`),
	"TR": regexp.MustCompile(`^TR\d{8}[A-Z0-9]{16}$`),
	"UA": regexp.MustCompile(`^UA\d{8}[A-Z0-9]{19}$`),
	"VG": regexp.MustCompile(`^VG\d{2}[A-Z]{4}\d{16}$`),
	"XK": regexp.MustCompile(`^XK\d{18}$`),
}

// NormalizeIBAN returns the upper-case alphanumeric form of an IBAN
func NormalizeIBAN(iban string) (string, bool) {
	num := keepAlnum(iban, "")
	if len(num) < 15 || len(num) > 32 {
		return "", false
	}
	return num, true
}

// IsValidIBAN checks the country format and the ISO 7064 mod-97 checksum.
// The validator checks exactly what it is given: a Polish account number
// without the "PL" prefix is not valid here.
func IsValidIBAN(iban string) bool {
	num, ok := NormalizeIBAN(iban)
	if !ok {
		return false
	}

	format, ok := ibanFormats[num[:2]]
	if !ok || !format.MatchString(num) {
		return false
	}

	return ibanChecksum(num) == 1
}

// ibanChecksum moves the first four characters to the end, expands
// letters to 10..35 and folds the decimal string modulo 97
func ibanChecksum(num string) int {
	rotated := num[4:] + num[:4]

	digits := make([]byte, 0, len(rotated)*2)
	for i := 0; i < len(rotated); i++ {
		c := rotated[i]
		if c >= 'A' && c <= 'Z' {
			v := int(c-'A') + 10
			digits = append(digits, byte('0'+v/10), byte('0'+v%10))
		} else {
			digits = append(digits, c)
		}
	}

	chk := int(digits[0] - '0')
	for _, d := range digits[1:] {
		chk = (chk*10 + int(d-'0')) % 97
	}
	return chk
}

// IBANCountries returns the supported IBAN country codes
func IBANCountries() []string {
	return sortedKeys(ibanFormats)
}

func sortedKeys(m map[string]*regexp.Regexp) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
