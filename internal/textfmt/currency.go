package textfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Currency is an ISO 4217 code supported by the formatter.
type Currency string

const (
	BRL Currency = "BRL"
	USD Currency = "USD"
)

// ptBRAmount is the humanize layout for pt-BR amounts: dot for thousands,
// comma before two decimals.
const ptBRAmount = "#.###,##"

// nbsp separates symbol and amount, as browsers do for pt-BR.
const nbsp = "\u00a0"

// ParseCurrencyCode accepts "brl", "USD" and so on. Empty means BRL.
func ParseCurrencyCode(s string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(s))) {
	case "", BRL:
		return BRL, nil
	case USD:
		return USD, nil
	default:
		return "", fmt.Errorf("unsupported currency %q (use BRL or USD)", s)
	}
}

// Symbol returns the pt-BR display symbol for c.
func (c Currency) Symbol() string {
	if c == USD {
		return "US$"
	}
	return "R$"
}

// FormatCurrency renders v with pt-BR conventions, e.g. "R$ 1.234,56".
// Unknown currencies render as BRL; NaN and infinities render as zero.
func FormatCurrency(v float64, c Currency) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	amount := humanize.FormatFloat(ptBRAmount, v)
	if amount == "0,00" {
		sign = ""
	}
	return sign + c.Symbol() + nbsp + amount
}

// FormatPercentage renders v with a fixed number of decimals and a trailing
// "%". Negative decimals are treated as zero.
func FormatPercentage(v float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64) + "%"
}

// FormatQuantity renders a material quantity in pt-BR notation with at most
// two decimals and no trailing zeros, e.g. "1.250" or "2,5".
func FormatQuantity(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0"
	}
	s := humanize.FormatFloat(ptBRAmount, v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ",")
	if s == "" || s == "-" || s == "-0" {
		return "0"
	}
	return s
}

// ParseCurrency reads back a pt-BR amount such as "R$ 1.234,56" or
// "-US$ 10,00". Dots are thousands separators and the first comma is the
// decimal mark. A minus sign only counts before the first digit; the amount
// ends at a second comma or a later dash ("1,2,3" reads 1.2, "10-5" reads
// 10). Anything unparsable yields 0.
func ParseCurrency(s string) float64 {
	var (
		b         strings.Builder
		seenDigit bool
		seenComma bool
		negative  bool
	)
scan:
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			seenDigit = true
		case r == '-':
			if seenDigit || seenComma {
				break scan
			}
			negative = true
		case r == ',':
			if seenComma {
				break scan
			}
			seenComma = true
			b.WriteByte('.')
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if negative {
		v = -v
	}
	return v
}
