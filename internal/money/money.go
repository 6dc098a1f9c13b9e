// Package money provides integer-cent monetary values for the storefront.
// All cart arithmetic happens in whole cents so repeated addition never
// accumulates binary floating-point error.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a monetary amount in whole cents (e.g. 1299 is $12.99).
type Cents int64

// Parse converts a decimal price string such as "12.99", "8", or "0.5" into
// Cents. At most two fractional digits are accepted and negative amounts are
// rejected, since the storefront never prices anything below zero.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("negative amount %q", s)
	}

	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" {
		whole = "0"
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	// "12.5" means 12 dollars 50 cents, not 12.05.
	for len(frac) < 2 {
		frac += "0"
	}

	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}
	f, err := strconv.ParseInt(frac, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", s)
	}

	return Cents(w*100 + f), nil
}

// Mul returns the amount multiplied by a line-item quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}

// String formats the amount the way the storefront renders prices: "$12.99".
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s$%d.%02d", sign, v/100, v%100)
}
