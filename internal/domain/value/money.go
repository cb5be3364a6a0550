package value

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CurrencySymbol = "₦"
	centsPlaces    = 2
)

// RoundWhole округляет сумму до целой денежной единицы, половина вверх.
// Единственное место округления цены за позицию; значение должно быть конечным.
func RoundWhole(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(0).InexactFloat64()
}

// RoundCents округляет сумму до двух знаков после запятой.
func RoundCents(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(centsPlaces).InexactFloat64()
}

// RoundDecimal округляет точное значение до копеек на границе вывода.
func RoundDecimal(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(centsPlaces)
}

func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FormatMoney форматирует сумму для отображения: "₦58,750.00".
func FormatMoney(amount float64) string {
	if !IsFinite(amount) {
		return CurrencySymbol + "—"
	}

	s := decimal.NewFromFloat(amount).StringFixed(centsPlaces)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder

	b.Grow(len(s) + len(intPart)/3 + 4)

	if neg {
		b.WriteString("-")
	}

	b.WriteString(CurrencySymbol)

	rem := len(intPart) % 3
	if rem == 0 {
		rem = 3
	}

	b.WriteString(intPart[:rem])

	for i := rem; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}

	b.WriteByte('.')
	b.WriteString(fracPart)

	return b.String()
}
