package ordergroup

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatNumber округляет до двух знаков и разделяет тысячи запятой: 1500000.5 -> "1,500,000.5".
func FormatNumber(value decimal.Decimal) string {
	raw := value.Round(2).String()

	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign, raw = "-", raw[1:]
	}

	integer, fraction, hasFraction := strings.Cut(raw, ".")

	var b strings.Builder
	b.Grow(len(raw) + len(raw)/3 + 1)
	b.WriteString(sign)
	for i, r := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFraction {
		b.WriteByte('.')
		b.WriteString(fraction)
	}
	return b.String()
}
