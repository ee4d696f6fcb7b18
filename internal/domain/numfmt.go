package domain

import (
	"strconv"
	"strings"
)

// ParseEuropean converts a decimal in European notation, where '.' is
// the thousands separator and ',' the decimal separator: "9.680,00"
// parses to 9680.00.
func ParseEuropean(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
