package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatPrice renders a numeric price as a thousands-grouped dollar string,
// e.g. 28000 -> "$28,000". Non-numeric values pass through unchanged, so a
// backend "N/A" (or an already-formatted string) survives a second pass.
func FormatPrice(price any) any {
	switch p := price.(type) {
	case int:
		return "$" + groupThousands(int64(p))
	case int64:
		return "$" + groupThousands(p)
	case float64:
		if p == math.Trunc(p) {
			return "$" + groupThousands(int64(p))
		}
		s := strconv.FormatFloat(p, 'f', -1, 64)
		intPart, fracPart, _ := strings.Cut(s, ".")
		n, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return price
		}
		return "$" + groupThousands(n) + "." + fracPart
	}
	return price
}

// ImagePath synthesizes the mock asset token for a vehicle: make is
// lower-cased, model is lower-cased with spaces and hyphens stripped.
// The same record always yields the same token.
func ImagePath(mk, mdl string) string {
	safeModel := strings.ToLower(mdl)
	safeModel = strings.ReplaceAll(safeModel, " ", "")
	safeModel = strings.ReplaceAll(safeModel, "-", "")
	return fmt.Sprintf("assets/%s_%s.jpg", strings.ToLower(mk), safeModel)
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}
