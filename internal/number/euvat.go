package number

import "regexp"

// euvatFormats maps an EU member state prefix to the structure of its
// VAT ID. The table is a fixed snapshot of the formats accepted by the
// service.
var euvatFormats = map[string]*regexp.Regexp{
	"AT": regexp.MustCompile(`^ATU\d{8}$`),
	"BE": regexp.MustCompile(`^BE[01]\d{9}$`),
	"BG": regexp.MustCompile(`^BG\d{9,10}$`),
	"CY": regexp.MustCompile(`^CY\d{8}[A-Z]$`),
	"CZ": regexp.MustCompile(`^CZ\d{8,10}$`),
	"DE": regexp.MustCompile(`^DE\d{9}$`),
	"DK": regexp.MustCompile(`^DK\d{8}$`),
	"EE": regexp.MustCompile(`^EE\d{9}$`),
	"EL": regexp.MustCompile(`^EL\d{9}$`),
	"ES": regexp.MustCompile(`^ES[A-Z0-9]\d{7}[A-Z0-9]$`),
	"FI": regexp.MustCompile(`^FI\d{8}$`),
	"FR": regexp.MustCompile(`^FR[A-Z0-9]{2}\d{9}$`),
	"HR": regexp.MustCompile(`^HR\d{11}$`),
	"HU": regexp.MustCompile(`^HU\d{8}$`),
	"IE": regexp.MustCompile(`^IE[A-Z0-9+*]{8,9}$`),
	"IT": regexp.MustCompile(`^IT\d{11}$`),
	"LT": regexp.MustCompile(`^LT\d{9,12}$`),
	"LU": regexp.MustCompile(`^LU\d{8}$`),
	"LV": regexp.MustCompile(`^LV\d{11}$`),
	"MT": regexp.MustCompile(`^MT\d{8}$`),
	"NL": regexp.MustCompile(`^NL[A-Z0-9+*]{12}$`),
	"PL": regexp.MustCompile(`^PL\d{10}$`),
	"PT": regexp.MustCompile(`^PT\d{9}$`),
	"RO": regexp.MustCompile(`^RO\d{2,10}$`),
	"SE": regexp.MustCompile(`^SE\d{12}$`),
	"SI": regexp.MustCompile(`^SI\d{8}$`),
	"SK": regexp.MustCompile(`^SK\d{10}$`),
	"XI": regexp.MustCompile(`^XI[A-Z0-9]{5,12}$`),
}

// NormalizeEUVAT returns the upper-case form of an EU VAT ID with every
// character other than letters, digits, '+' and '*' removed
func NormalizeEUVAT(euvat string) (string, bool) {
	num := keepAlnum(euvat, "+*")
	if len(num) < 4 || len(num) > 14 {
		return "", false
	}
	return num, true
}

// IsValidEUVAT checks the ID against its country format. Polish IDs must
// also carry a valid NIP after the prefix.
func IsValidEUVAT(euvat string) bool {
	num, ok := NormalizeEUVAT(euvat)
	if !ok {
		return false
	}

	format, ok := euvatFormats[num[:2]]
	if !ok || !format.MatchString(num) {
		return false
	}

	if num[:2] == "PL" {
		return IsValidNIP(num[2:])
	}
	return true
}

// EUVATCountries returns the supported EU VAT prefixes
func EUVATCountries() []string {
	return sortedKeys(euvatFormats)
}
