package csvparse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pennypilot/pennypilot/internal/model"
)

// parseAmount converts a raw amount cell into a signed value. It strips
// currency symbols, thousands separators and whitespace, treats "(123.45)"
// as -123.45, and honors trailing CR/DR markers: CR forces credit, DR
// forces debit and negates. forced is empty when the cell carries no
// explicit polarity marker.
func parseAmount(raw string) (value float64, forced model.Direction, err error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, "", fmt.Errorf("empty amount")
	}

	upper := strings.ToUpper(s)
	switch {
	case strings.HasSuffix(upper, "CR"):
		forced = model.DirectionCredit
		s = strings.TrimSpace(s[:len(s)-2])
	case strings.HasSuffix(upper, "DR"):
		forced = model.DirectionDebit
		s = strings.TrimSpace(s[:len(s)-2])
	}

	// Some exports put the currency symbol outside the parens ("£(12.50)").
	paren := strings.TrimLeftFunc(s, func(r rune) bool {
		return r != '(' && r != '+' && r != '-' && r != '.' && !unicode.IsDigit(r)
	})
	negative := false
	if strings.HasPrefix(paren, "(") && strings.HasSuffix(paren, ")") {
		negative = true
		s = paren[1 : len(paren)-1]
	}

	s = stripCurrency(s)
	if s == "" || s == "-" {
		return 0, "", fmt.Errorf("no numeric content in %q", raw)
	}

	value, parseErr := strconv.ParseFloat(s, 64)
	if parseErr != nil {
		return 0, "", fmt.Errorf("unrecognized amount %q", raw)
	}

	if negative {
		value = -value
	}
	if forced == model.DirectionDebit && value > 0 {
		value = -value
	}
	return value, forced, nil
}

// stripCurrency removes currency symbols, thousands separators, and interior
// whitespace, keeping digits, the decimal point and a leading sign.
func stripCurrency(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' || r == '+':
			if b.Len() == 0 {
				b.WriteRune(r)
			}
		default:
			// currency symbols, commas, spaces
		}
	}
	return b.String()
}
