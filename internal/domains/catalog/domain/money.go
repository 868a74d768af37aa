package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is printed after prices unless a product is built WithCurrency.
const DefaultCurrency = "rub"

// lineTotal returns price*quantity without accumulating binary rounding errors.
func lineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// validPrice reports whether v can be used as a price: positive and finite.
func validPrice(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// FormatAmount renders a number in its shortest form, always keeping a
// fractional part: 1000 -> "1000.0", 0.5 -> "0.5". NaN and infinities are
// printed as "NaN", "+Inf" and "-Inf".
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return formatDecimal(decimal.NewFromFloat(v))
}

func formatDecimal(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
