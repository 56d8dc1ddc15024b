package convert

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var thousand = decimal.NewFromInt(1000)

// Ore returns n öre (1/100 SEK) as a decimal SEK amount.
func Ore(n int64) decimal.Decimal {
	return decimal.New(n, -2)
}

// PerMWhToPerKWh converts an SEK/MWh quote to SEK/kWh.
func PerMWhToPerKWh(d decimal.Decimal) decimal.Decimal {
	return d.Div(thousand)
}

// ParseDecimalComma parses a Swedish-localized decimal string such as
// "1 234,56" (space or non-breaking-space thousand separator, comma
// decimal separator).
func ParseDecimalComma(str string) (decimal.Decimal, error) {
	s := strings.NewReplacer(" ", "", " ", "").Replace(strings.TrimSpace(str))
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid decimal %q: %w", str, err)
	}
	return d, nil
}
