/*
format.go - Display rendering

PURPOSE:
  Pure presentation. Renders decimal amounts as fixed two-decimal currency
  strings with thousands separators, percentages, and the "N/A" placeholder
  for an undefined true rate. No business rules live here.

  Grouping is done over the decimal's own string output rather than through
  a float-based formatter, so what is displayed is exactly what was computed.
*/
package engine

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NotApplicable is the placeholder for values with no defined result.
const NotApplicable = "N/A"

// FormatMoney renders "$1,234.56". Negative amounts render as "-$1,234.56";
// they never occur in engine output but the formatter is total anyway.
func FormatMoney(m Money) string {
	s := m.Value.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	out := "$" + groupDigits(s[:dot]) + s[dot:]
	if neg {
		return "-" + out
	}
	return out
}

// FormatRate renders an hourly rate: "$85.00/hr", or "N/A" when undefined.
func FormatRate(tr TrueRate) string {
	if !tr.Defined {
		return NotApplicable
	}
	return FormatMoney(tr.Value) + "/hr"
}

// FormatPercent renders a percentage value with one decimal (35 -> "35.0%").
// Pass the percentage itself, not a 0-1 ratio.
func FormatPercent(d decimal.Decimal) string {
	return d.Round(1).StringFixed(1) + "%"
}

// FormatQuantity renders hours/weeks/miles without trailing decimal noise.
func FormatQuantity(d decimal.Decimal) string {
	return d.String()
}

// groupDigits inserts thousands separators into a plain digit run.
func groupDigits(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(n + (n-1)/3)
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
