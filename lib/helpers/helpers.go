package helpers

import (
	"fmt"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"strings"
)

// FormatCurrencyUS renders a USD amount with comma thousand separators
// and exactly two fractional digits.
func FormatCurrencyUS(amount float64) string {
	thousandSeparator := ","

	p := message.NewPrinter(language.English)
	withCommaThousandSep := p.Sprintf("%.2f", amount)
	formatted := strings.ReplaceAll(withCommaThousandSep, ",", thousandSeparator)

	return "$" + formatted
}

// FormatLargeNumber abbreviates aggregate USD amounts: billions as "$X.XXB",
// millions as "$X.XXM", everything below falls through to FormatCurrencyUS.
func FormatLargeNumber(amount float64) string {
	if amount >= 1e9 {
		return fmt.Sprintf("$%.2fB", amount/1e9)
	}
	if amount >= 1e6 {
		return fmt.Sprintf("$%.2fM", amount/1e6)
	}
	return FormatCurrencyUS(amount)
}

// FormatPercent renders a signed percentage with two decimals, e.g. "+2.34%".
func FormatPercent(change float64) string {
	return fmt.Sprintf("%+.2f%%", change)
}
