package csvparse

import (
	"fmt"
	"strings"

	"github.com/pennypilot/pennypilot/internal/bankformat"
	"github.com/pennypilot/pennypilot/internal/model"
)

// Layout tells the row parser where each field lives and how amounts and
// dates are represented. It is built either from a resolved bank profile or
// from generic column detection.
type Layout struct {
	Columns     DetectedColumns
	Debit       *int
	Credit      *int
	DateStyle   bankformat.DateStyle
	AmountStyle bankformat.AmountStyle
}

// Viable reports whether the layout can produce rows at all.
func (l Layout) Viable() bool {
	if l.AmountStyle == bankformat.AmountSplit {
		return l.Columns.Date != nil && l.Columns.Description != nil &&
			l.Debit != nil && l.Credit != nil
	}
	return l.Columns.HasMinimumColumns()
}

// LayoutFromProfile resolves a bank profile against a concrete header line.
// The second return value is false when the profile's required columns do
// not all resolve.
func LayoutFromProfile(p *bankformat.Profile, header []string) (Layout, bool) {
	cols := p.ResolveColumns(header)

	layout := Layout{
		Columns: DetectedColumns{
			Date:        cols.Date,
			Amount:      cols.Amount,
			Description: cols.Description,
			Category:    cols.Category,
			Type:        cols.Type,
		},
		Debit:       cols.Debit,
		Credit:      cols.Credit,
		DateStyle:   p.DateStyle,
		AmountStyle: p.AmountStyle,
	}
	return layout, cols.Complete(p.AmountStyle)
}

// LayoutFromDetection builds a layout from generic header detection. Amounts
// are assumed single-signed and dates auto-detected.
func LayoutFromDetection(header []string) Layout {
	return Layout{
		Columns:     DetectColumns(header),
		DateStyle:   bankformat.DateAuto,
		AmountStyle: bankformat.AmountSingleSigned,
	}
}

// Terms in a description that flag an unsigned positive amount as income.
var incomeIndicators = []string{
	"salary", "deposit", "income", "refund", "credit", "transfer in",
}

// ParseRow converts one raw CSV record into a ParsedRow. Errors carry the
// row number and are row-local: the caller skips the row and continues.
func ParseRow(cells []string, layout Layout, rowNum int) (model.ParsedRow, error) {
	dateRaw := cellAt(cells, layout.Columns.Date)
	if strings.TrimSpace(dateRaw) == "" {
		return model.ParsedRow{}, fmt.Errorf("row %d: missing date", rowNum)
	}
	description := strings.TrimSpace(cellAt(cells, layout.Columns.Description))
	if description == "" {
		return model.ParsedRow{}, fmt.Errorf("row %d: missing description", rowNum)
	}

	date, err := parseDate(dateRaw, layout.DateStyle)
	if err != nil {
		return model.ParsedRow{}, fmt.Errorf("row %d: invalid date %q", rowNum, dateRaw)
	}

	signed, forced, err := parseRowAmount(cells, layout, rowNum)
	if err != nil {
		return model.ParsedRow{}, err
	}
	if signed == 0 {
		return model.ParsedRow{}, fmt.Errorf("row %d: zero amount", rowNum)
	}

	direction := inferDirection(signed, forced, cellAt(cells, layout.Columns.Type), description)

	magnitude := signed
	if magnitude < 0 {
		magnitude = -magnitude
	}

	row := model.ParsedRow{
		Date:         date,
		Amount:       magnitude,
		Direction:    direction,
		Description:  description,
		Category:     strings.TrimSpace(cellAt(cells, layout.Columns.Category)),
		MerchantName: strings.TrimSpace(cellAt(cells, layout.Columns.Merchant)),
		Raw:          cells,
	}
	if row.MerchantName == "" {
		row.MerchantName = description
	}
	return row, nil
}

// parseRowAmount extracts the signed amount according to the layout's
// amount style. For split formats a populated debit cell yields a negative
// value and a populated credit cell a positive one.
func parseRowAmount(cells []string, layout Layout, rowNum int) (float64, model.Direction, error) {
	if layout.AmountStyle == bankformat.AmountSplit {
		debitRaw := strings.TrimSpace(cellAt(cells, layout.Debit))
		creditRaw := strings.TrimSpace(cellAt(cells, layout.Credit))

		if debitRaw != "" {
			v, _, err := parseAmount(debitRaw)
			if err != nil {
				return 0, "", fmt.Errorf("row %d: invalid debit amount %q", rowNum, debitRaw)
			}
			if v != 0 {
				if v > 0 {
					v = -v
				}
				return v, model.DirectionDebit, nil
			}
		}
		if creditRaw != "" {
			v, _, err := parseAmount(creditRaw)
			if err != nil {
				return 0, "", fmt.Errorf("row %d: invalid credit amount %q", rowNum, creditRaw)
			}
			if v != 0 {
				if v < 0 {
					v = -v
				}
				return v, model.DirectionCredit, nil
			}
		}
		return 0, "", fmt.Errorf("row %d: zero amount", rowNum)
	}

	raw := cellAt(cells, layout.Columns.Amount)
	if strings.TrimSpace(raw) == "" {
		return 0, "", fmt.Errorf("row %d: missing amount", rowNum)
	}
	v, forced, err := parseAmount(raw)
	if err != nil {
		return 0, "", fmt.Errorf("row %d: invalid amount %q", rowNum, raw)
	}
	return v, forced, nil
}

// inferDirection decides debit vs credit. Explicit markers win: a CR/DR
// suffix, then a type column, then the sign. An unsigned positive amount is
// a debit unless the description sounds like income.
func inferDirection(signed float64, forced model.Direction, typeCell, description string) model.Direction {
	if forced != "" {
		return forced
	}

	typeCell = strings.ToLower(strings.TrimSpace(typeCell))
	if typeCell != "" {
		switch {
		case strings.Contains(typeCell, "credit"), strings.Contains(typeCell, "deposit"),
			typeCell == "cr", strings.Contains(typeCell, "payment received"):
			return model.DirectionCredit
		case strings.Contains(typeCell, "debit"), strings.Contains(typeCell, "withdrawal"),
			typeCell == "dr", strings.Contains(typeCell, "purchase"):
			return model.DirectionDebit
		}
	}

	if signed < 0 {
		return model.DirectionDebit
	}

	lower := strings.ToLower(description)
	for _, term := range incomeIndicators {
		if strings.Contains(lower, term) {
			return model.DirectionCredit
		}
	}
	return model.DirectionDebit
}

func cellAt(cells []string, idx *int) string {
	if idx == nil || *idx < 0 || *idx >= len(cells) {
		return ""
	}
	return cells[*idx]
}
