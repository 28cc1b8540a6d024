package bankformat

import (
	"strings"
)

// Columns holds the zero-based column indexes a profile resolved against a
// concrete header line. Nil means the column is absent.
type Columns struct {
	Date        *int
	Description *int
	Amount      *int
	Debit       *int
	Credit      *int
	Category    *int
	Type        *int
}

// Complete reports whether the resolved columns are enough to parse rows:
// date, description, and either a single amount column or both split
// debit/credit columns.
func (c Columns) Complete(style AmountStyle) bool {
	if c.Date == nil || c.Description == nil {
		return false
	}
	if style == AmountSplit {
		return c.Debit != nil && c.Credit != nil
	}
	return c.Amount != nil
}

// DetectFormat inspects the header region of raw CSV text and returns the
// built-in profile that best matches it, or nil when no bank layout matches.
// Among profiles whose required columns all resolve, the one resolving the
// most columns wins; a generic alias like "amount" matching inside "Debit
// Amount" must not let a single-column layout beat a split one. Ties go to
// list order.
func DetectFormat(csvText string) *Profile {
	lines := headerCandidates(csvText)
	profiles := Profiles()

	var best *Profile
	bestScore := 0
	for i := range profiles {
		p := &profiles[i]
		for _, line := range lines {
			header := SplitHeader(line)
			cols := p.ResolveColumns(header)
			if !cols.Complete(p.AmountStyle) {
				continue
			}
			if score := cols.resolvedCount(); score > bestScore {
				best = p
				bestScore = score
			}
		}
	}
	return best
}

func (c Columns) resolvedCount() int {
	n := 0
	for _, idx := range []*int{c.Date, c.Description, c.Amount, c.Debit, c.Credit, c.Category, c.Type} {
		if idx != nil {
			n++
		}
	}
	return n
}

// ResolveColumns matches the profile's aliases against a header line and
// returns the resolved indexes. Matching is case-insensitive; an alias
// matches a cell when either contains the other. Earlier columns win ties.
func (p *Profile) ResolveColumns(header []string) Columns {
	var cols Columns
	taken := make(map[int]bool, len(header))

	assign := func(dst **int, aliases []string) {
		if *dst != nil {
			return
		}
		for _, alias := range aliases {
			for i, cell := range header {
				if taken[i] {
					continue
				}
				if aliasMatches(cell, alias) {
					idx := i
					*dst = &idx
					taken[i] = true
					return
				}
			}
		}
	}

	// Date first: "value date" must not be claimed as an amount column.
	assign(&cols.Date, p.DateAliases)
	if p.AmountStyle == AmountSplit {
		assign(&cols.Debit, p.DebitAliases)
		assign(&cols.Credit, p.CreditAliases)
	} else {
		assign(&cols.Amount, p.AmountAliases)
	}
	assign(&cols.Description, p.DescriptionAliases)
	assign(&cols.Category, p.CategoryAliases)
	assign(&cols.Type, p.TypeAliases)

	return cols
}

func aliasMatches(cell, alias string) bool {
	cell = strings.ToLower(strings.TrimSpace(cell))
	alias = strings.ToLower(strings.TrimSpace(alias))
	if cell == "" || alias == "" {
		return false
	}
	if cell == alias {
		return true
	}
	if strings.Contains(cell, alias) {
		return true
	}
	// The reverse direction needs a real cell name: single letters would
	// match almost every alias.
	return len(cell) >= 3 && strings.Contains(alias, cell)
}

// SplitHeader splits a raw header line into trimmed lowercase-insensitive
// cells. Quoted cells have their quotes stripped.
func SplitHeader(line string) []string {
	parts := strings.Split(line, ",")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.Trim(strings.TrimSpace(p), `"`)
	}
	return cells
}

// headerCandidates returns the first few non-empty lines of the file, the
// region where a header can plausibly sit (some banks prepend metadata).
func headerCandidates(csvText string) []string {
	const maxCandidates = 5

	var lines []string
	for _, line := range strings.Split(csvText, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxCandidates {
			break
		}
	}
	return lines
}
