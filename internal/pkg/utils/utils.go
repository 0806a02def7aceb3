package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// ParseISODuration converts an ISO-8601 duration such as "PT6H15M" to minutes.
// Day components ("P1DT2H") are folded in as 24h each. Malformed input yields 0.
func ParseISODuration(duration string) int64 {
	var days, hours, minutes int64

	s := strings.TrimPrefix(duration, "P")
	if i := strings.Index(s, "D"); i >= 0 {
		days, _ = strconv.ParseInt(s[:i], 10, 64)
		s = s[i+1:]
	}

	s = strings.TrimPrefix(s, "T")
	if i := strings.Index(s, "H"); i >= 0 {
		hours, _ = strconv.ParseInt(s[:i], 10, 64)
		s = s[i+1:]
	}

	if i := strings.Index(s, "M"); i >= 0 {
		minutes, _ = strconv.ParseInt(s[:i], 10, 64)
	}

	return days*24*60 + hours*60 + minutes
}

// ParseAmount parses a decimal price string such as "450.00" into a float.
// Upstream always sends prices as strings; a malformed amount parses to 0.
func ParseAmount(amount string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return 0
	}

	return value
}

// FormatAmount renders a float price back into the two-decimal string form
// the upstream API uses. Example: 500.5 -> "500.50"
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatUSD formats an amount with a dollar sign and thousands separators.
// Example: 1234.5 -> "$1,234.50"
func FormatUSD(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	cents := int64((amount-float64(whole))*100 + 0.5)
	if cents == 100 {
		whole++
		cents = 0
	}

	str := strconv.FormatInt(whole, 10)

	var result []byte
	count := 0
	for i := len(str) - 1; i >= 0; i-- {
		result = append([]byte{str[i]}, result...)
		count++
		if count%3 == 0 && i != 0 {
			result = append([]byte{','}, result...)
		}
	}

	formatted := fmt.Sprintf("$%s.%02d", string(result), cents)
	if negative {
		return "-" + formatted
	}

	return formatted
}
