package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency formats v as dollars with thousands separators: $1,234.56.
func Currency(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	s := d.StringFixed(2)
	return sign + "$" + group(s[:len(s)-3]) + s[len(s)-3:]
}

func group(digits string) string {
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Percent formats v with one decimal: 65.3%.
func Percent(v float64) string { return fmt.Sprintf("%.1f%%", v) }

// Count formats a plain integer.
func Count(n int64) string { return strconv.FormatInt(n, 10) }

// Average formats a mean with one decimal.
func Average(v float64) string { return fmt.Sprintf("%.1f", v) }
