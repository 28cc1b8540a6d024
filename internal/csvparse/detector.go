// Package csvparse turns raw bank CSV exports into normalized parsed rows.
// It resolves columns via known bank profiles or generic header detection,
// then parses rows. No I/O; pure transforms over in-memory text.
package csvparse

import (
	"strings"
)

// DetectedColumns holds the inferred zero-based index for each field of
// interest. Nil means the column could not be identified.
type DetectedColumns struct {
	Date        *int
	Amount      *int
	Description *int
	Category    *int
	Type        *int
	Merchant    *int
}

// HasMinimumColumns reports whether a parse is viable: date, amount, and
// description must all be resolved.
func (d DetectedColumns) HasMinimumColumns() bool {
	return d.Date != nil && d.Amount != nil && d.Description != nil
}

// Keyword lists per field, in priority order. Date runs first so that
// "value date" is never mistaken for an amount column.
var (
	dateKeywords = []string{
		"date", "transaction date", "posting date", "posted date",
		"value date", "booking date", "completed date",
	}
	amountKeywords = []string{
		"amount", "value", "debit", "credit", "paid out", "paid in",
		"money out", "money in", "sum", "transaction amount",
	}
	descriptionKeywords = []string{
		"description", "narrative", "details", "memo", "reference",
		"payee", "merchant", "name", "transaction",
	}
	categoryKeywords = []string{"category", "subcategory", "tag"}
	typeKeywords     = []string{"type", "transaction type", "dr/cr", "cr/dr"}
	merchantKeywords = []string{"merchant", "payee", "counter party", "counterparty", "vendor"}
)

// Columns that must never be claimed as an amount by fallback logic.
var amountExcluded = []string{"balance", "reference", "id", "number", "sort code", "account"}

// DetectColumns infers which columns hold each field from a raw header line.
// The result is deterministic for a given header: passes run in a fixed
// order (date > amount > description > category > type > merchant) and ties
// break left to right.
func DetectColumns(header []string) DetectedColumns {
	cells := normalizeHeaderCells(header)
	taken := make(map[int]bool, len(cells))

	var d DetectedColumns
	d.Date = matchColumn(cells, taken, dateKeywords)
	d.Amount = matchColumn(cells, taken, amountKeywords)
	d.Description = matchColumn(cells, taken, descriptionKeywords)
	d.Category = matchColumn(cells, taken, categoryKeywords)
	d.Type = matchColumn(cells, taken, typeKeywords)
	d.Merchant = matchColumn(cells, taken, merchantKeywords)

	applySmartFallback(&d, cells, taken)
	return d
}

// matchColumn finds the first unassigned column matching any keyword.
// Exact matches beat word-boundary matches beat substring matches; within a
// tier, keyword order beats column order beats nothing.
func matchColumn(cells []string, taken map[int]bool, keywords []string) *int {
	for _, kw := range keywords {
		for i, cell := range cells {
			if taken[i] || cell == "" {
				continue
			}
			if cell == kw {
				taken[i] = true
				idx := i
				return &idx
			}
		}
	}
	for _, kw := range keywords {
		for i, cell := range cells {
			if taken[i] || cell == "" {
				continue
			}
			if containsWord(cell, kw) {
				taken[i] = true
				idx := i
				return &idx
			}
		}
	}
	for _, kw := range keywords {
		for i, cell := range cells {
			if taken[i] || cell == "" {
				continue
			}
			if strings.Contains(cell, kw) {
				taken[i] = true
				idx := i
				return &idx
			}
		}
	}
	return nil
}

// applySmartFallback fills any still-missing required column using secondary
// cues, then positional assumptions.
func applySmartFallback(d *DetectedColumns, cells []string, taken map[int]bool) {
	if d.Date == nil {
		d.Date = scanForCues(cells, taken, []string{"date", "time", "posted", "day"}, nil)
	}
	if d.Amount == nil {
		cues := []string{"amount", "value", "total", "sum", "price", "money", "gbp", "usd", "eur", "£", "$"}
		d.Amount = scanForCues(cells, taken, cues, amountExcluded)
	}
	if d.Description == nil {
		cues := []string{"desc", "detail", "memo", "narrat", "particular", "text", "info", "note"}
		d.Description = scanForCues(cells, taken, cues, nil)
	}

	// Positional last resort: first remaining column for date, first
	// non-excluded remaining column for amount and description.
	if d.Date == nil {
		d.Date = firstUnassigned(cells, taken, nil)
	}
	if d.Amount == nil {
		d.Amount = firstUnassigned(cells, taken, amountExcluded)
	}
	if d.Description == nil {
		d.Description = firstUnassigned(cells, taken, nil)
	}
}

func scanForCues(cells []string, taken map[int]bool, cues, excluded []string) *int {
	for i, cell := range cells {
		if taken[i] || cell == "" {
			continue
		}
		if containsAny(cell, excluded) {
			continue
		}
		if containsAny(cell, cues) {
			taken[i] = true
			idx := i
			return &idx
		}
	}
	return nil
}

func firstUnassigned(cells []string, taken map[int]bool, excluded []string) *int {
	for i, cell := range cells {
		if taken[i] {
			continue
		}
		if containsAny(cell, excluded) {
			continue
		}
		taken[i] = true
		idx := i
		return &idx
	}
	return nil
}

func containsAny(cell string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(cell, n) {
			return true
		}
	}
	return false
}

// containsWord reports whether kw appears in cell on word boundaries.
func containsWord(cell, kw string) bool {
	idx := strings.Index(cell, kw)
	for idx >= 0 {
		before := idx == 0 || !isWordChar(cell[idx-1])
		afterIdx := idx + len(kw)
		after := afterIdx == len(cell) || !isWordChar(cell[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(cell[idx+1:], kw)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isWordChar(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func normalizeHeaderCells(header []string) []string {
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = strings.ToLower(strings.Trim(strings.TrimSpace(h), `"`))
	}
	return cells
}
