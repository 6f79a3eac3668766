// Package money parses display-formatted amounts the way the dashboard
// aggregates them: leniently, with non-numeric input counting as zero.
package money

import (
	"strconv"
	"strings"
)

// ParseLenient converts strings like "$1,204.50" to 1204.5. Values that do
// not parse (including the "Unknown" sentinel) yield 0.
func ParseLenient(value string) float64 {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0
	}
	parsed, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return parsed
}
