package property

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// pricePattern picks the first run of digits and commas, e.g. "20,000" in "ETB 20,000".
var pricePattern = regexp.MustCompile(`[\d,]+`)

// CurrencyCode returns the ISO 4217 code for a city's currency.
// Unknown cities have no currency.
func CurrencyCode(c City) string {
	switch c {
	case AddisAbaba:
		return "ETB"
	case Nairobi:
		return "KES"
	case Lagos:
		return "NGN"
	default:
		return ""
	}
}

// currencyPrefix returns the display prefix for amounts in a city.
func currencyPrefix(city string) string {
	switch City(city) {
	case AddisAbaba:
		return "ETB "
	case Nairobi:
		return "KES "
	case Lagos:
		return "₦ "
	default:
		return ""
	}
}

// FormatCurrency formats a raw amount for display in the given city, e.g.
// FormatCurrency("20000", "Addis Ababa") returns "ETB 20,000". Amounts that are
// not numbers are returned unchanged; unknown cities get no prefix.
func FormatCurrency(amount, city string) string {
	trimmed := strings.TrimSpace(amount)

	v := 0.0
	if trimmed != "" {
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return amount
		}
		v = f
	}

	return currencyPrefix(city) + printer.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatPrice formats a whole amount in a city's currency.
func FormatPrice(amount int64, c City) string {
	return currencyPrefix(string(c)) + printer.Sprintf("%v", number.Decimal(amount))
}

// ParsePrice extracts a whole amount from user input such as "20000",
// "20,000" or "ETB 20,000".
func ParsePrice(s string) (int64, error) {
	m := pricePattern.FindString(s)
	digits := strings.ReplaceAll(m, ",", "")
	if digits == "" {
		return 0, fmt.Errorf("no amount in price %q", s)
	}

	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing price %q: %w", s, err)
	}
	return v, nil
}
