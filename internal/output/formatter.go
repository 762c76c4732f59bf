// Package output renders calculation results for the terminal: a fixed
// width console table, pretty JSON, or CSV rows.
package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Format selects an output rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// ParseFormat normalizes a format flag value.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown output format: %s (expected table, json or csv)", s)
	}
}

// money renders a decimal as $1,234.56.
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	dot := strings.IndexByte(s, '.')
	intPart, fracPart := s[:dot], s[dot:]
	var sb strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(c)
	}

	if neg {
		return "-$" + sb.String() + fracPart
	}
	return "$" + sb.String() + fracPart
}

// percent renders a decimal rate (0.22) as "22.00%".
func percent(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
