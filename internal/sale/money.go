package sale

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidAmount is returned when a submitted amount cannot be parsed
// as a fixed-point number with at most two decimal places.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount converts submitted text like "200", "200.5" or "200.00"
// into integer cents. Amounts are fixed-point with two decimal places;
// more precision than cents is rejected rather than rounded.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if whole == "" {
		whole = "0"
	}
	if hasFrac && (frac == "" || len(frac) > 2) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	// Only bare digits past this point. ParseInt alone would accept a
	// second sign, turning "--5" or "1.-5" into a valid amount.
	if !isDigits(whole) || (hasFrac && !isDigits(frac)) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	var f int64
	if hasFrac {
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
		}
		if len(frac) == 1 {
			f *= 10
		}
	}

	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return cents, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// FormatAmount renders integer cents as a two-decimal string ("200.00").
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
