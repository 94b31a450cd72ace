package recommend

import (
	"strconv"
	"strings"
	"unicode"
)

// CurrencySymbol prefixes every price the engine formats.
const CurrencySymbol = "€"

// ParsePrice returns the numeric value of a currency string by dropping every
// non-digit character ("€1.500" -> 1500). Malformed input yields 0.
func ParsePrice(price string) int64 {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, price)
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// FormatPrice renders an integer amount with the currency prefix.
func FormatPrice(amount int64) string {
	return CurrencySymbol + strconv.FormatInt(amount, 10)
}

// HasPrice reports whether a price string carries any numeric content.
func HasPrice(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}
