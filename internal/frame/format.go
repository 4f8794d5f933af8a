package frame

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer applies en-US digit grouping. message.Printer is safe for concurrent use.
var printer = message.NewPrinter(language.AmericanEnglish)

// ParseNumber reads an upstream counter. Missing or non-numeric input yields
// ok == false.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FormatInt renders a counter as a grouped integer ("1234567" -> "1,234,567").
// Fractions are truncated toward zero; invalid input renders as "0".
func FormatInt(s string) string {
	f, ok := ParseNumber(s)
	if !ok || math.Abs(f) >= math.MaxInt64 {
		return "0"
	}
	return printer.Sprintf("%d", int64(f))
}

// FormatDecimal renders f with two decimals and grouping. NaN and infinities
// render as "0.00".
func FormatDecimal(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	// Avoid "-0.00".
	if math.Abs(f) < 0.005 {
		f = 0
	}
	return printer.Sprintf("%.2f", f)
}

// Ratio divides two counters. A zero, missing or non-numeric operand that
// would make the result undefined renders as "0.00".
func Ratio(num, den string) string {
	n, okN := ParseNumber(num)
	d, okD := ParseNumber(den)
	if !okN || !okD || d == 0 {
		return FormatDecimal(0)
	}
	return FormatDecimal(n / d)
}

// Difference renders left - right with two decimals; missing operands count as zero.
func Difference(left, right string) string {
	l, _ := ParseNumber(left)
	r, _ := ParseNumber(right)
	return FormatDecimal(l - r)
}

// UTCStamp formats the footer timestamp, e.g. "01-02-2024, 13:04:05 UTC".
func UTCStamp(now time.Time) string {
	return now.UTC().Format("02-01-2006, 15:04:05") + " UTC"
}
