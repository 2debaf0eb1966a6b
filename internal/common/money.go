package common

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMoney renders a minor-unit amount as a dollar string, e.g. 13696
// becomes "$136.96" and -500 becomes "-$5.00".
func FormatMoney(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// ParseMoney converts a user-entered dollar amount ("34", "34.5", "$34.50")
// into minor units. Fractions beyond cents are rejected.
func ParseMoney(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	trimmed = strings.TrimPrefix(trimmed, "$")
	if trimmed == "" {
		return 0, fmt.Errorf("parse money: empty input")
	}
	negative := false
	if strings.HasPrefix(trimmed, "-") {
		negative = true
		trimmed = trimmed[1:]
	}
	whole, frac, _ := strings.Cut(trimmed, ".")
	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse money %q: %w", value, err)
	}
	cents := int64(0)
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("parse money %q: more than two decimal places", value)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse money %q: %w", value, err)
		}
	}
	total := dollars*100 + cents
	if negative {
		total = -total
	}
	return total, nil
}

// MoneyOrDefault parses a dollar amount falling back to the default when
// the input is blank or malformed.
func MoneyOrDefault(value string, def int64) int64 {
	if strings.TrimSpace(value) == "" {
		return def
	}
	parsed, err := ParseMoney(value)
	if err != nil {
		return def
	}
	return parsed
}
