// Package bankformat catalogues known bank CSV export layouts and matches
// raw files against them.
package bankformat

// AmountStyle describes how a bank represents transaction amounts.
type AmountStyle string

const (
	// AmountSingleSigned is one column with signed values.
	AmountSingleSigned AmountStyle = "single-signed"
	// AmountSingleWithType is one unsigned column plus a type column.
	AmountSingleWithType AmountStyle = "single-unsigned-with-type-column"
	// AmountSplit is separate debit and credit columns.
	AmountSplit AmountStyle = "split-debit-credit"
)

// DateStyle is a hint about the bank's date representation.
type DateStyle string

const (
	// DateAuto lets the row parser try every known format.
	DateAuto DateStyle = "auto"
	// DateDayFirst is DD/MM/YYYY, the UK convention.
	DateDayFirst DateStyle = "day-first"
	// DateISO is YYYY-MM-DD.
	DateISO DateStyle = "iso"
	// DateDayMonthName is DD MMM YYYY.
	DateDayMonthName DateStyle = "day-month-name"
)

// Profile describes one known bank CSV export layout. Profiles are static
// and never mutated at runtime.
type Profile struct {
	ID                 string
	Name               string
	DateAliases        []string
	DescriptionAliases []string
	AmountAliases      []string
	DebitAliases       []string
	CreditAliases      []string
	CategoryAliases    []string
	TypeAliases        []string
	DateStyle          DateStyle
	AmountStyle        AmountStyle
	SkipRows           int
}

// GenericProfileID identifies the last-resort profile used when no bank
// layout matches.
const GenericProfileID = "generic"

// Profiles returns the ordered list of built-in bank layouts. Detection
// walks this list front to back, so more distinctive layouts come first.
func Profiles() []Profile {
	return []Profile{
		{
			ID:                 "monzo",
			Name:               "Monzo",
			DateAliases:        []string{"date"},
			DescriptionAliases: []string{"name", "description"},
			AmountAliases:      []string{"amount"},
			CategoryAliases:    []string{"category"},
			TypeAliases:        []string{"type"},
			DateStyle:          DateISO,
			AmountStyle:        AmountSingleSigned,
		},
		{
			ID:                 "revolut",
			Name:               "Revolut",
			DateAliases:        []string{"completed date", "started date"},
			DescriptionAliases: []string{"description"},
			AmountAliases:      []string{"amount"},
			TypeAliases:        []string{"type"},
			DateStyle:          DateISO,
			AmountStyle:        AmountSingleSigned,
		},
		{
			ID:                 "starling",
			Name:               "Starling Bank",
			DateAliases:        []string{"date"},
			DescriptionAliases: []string{"counter party", "reference"},
			AmountAliases:      []string{"amount (gbp)", "amount"},
			TypeAliases:        []string{"type"},
			DateStyle:          DateDayFirst,
			AmountStyle:        AmountSingleSigned,
		},
		{
			ID:                 "lloyds",
			Name:               "Lloyds Bank",
			DateAliases:        []string{"transaction date"},
			DescriptionAliases: []string{"transaction description"},
			DebitAliases:       []string{"debit amount"},
			CreditAliases:      []string{"credit amount"},
			TypeAliases:        []string{"transaction type"},
			DateStyle:          DateDayFirst,
			AmountStyle:        AmountSplit,
		},
		{
			ID:                 "halifax",
			Name:               "Halifax",
			DateAliases:        []string{"transaction date", "date"},
			DescriptionAliases: []string{"transaction description", "description"},
			DebitAliases:       []string{"debit amount", "debit"},
			CreditAliases:      []string{"credit amount", "credit"},
			DateStyle:          DateDayFirst,
			AmountStyle:        AmountSplit,
		},
		{
			ID:                 "nationwide",
			Name:               "Nationwide",
			DateAliases:        []string{"date"},
			DescriptionAliases: []string{"description"},
			DebitAliases:       []string{"paid out"},
			CreditAliases:      []string{"paid in"},
			TypeAliases:        []string{"transaction type"},
			DateStyle:          DateDayMonthName,
			AmountStyle:        AmountSplit,
		},
		{
			ID:                 "natwest",
			Name:               "NatWest",
			DateAliases:        []string{"date"},
			DescriptionAliases: []string{"description"},
			AmountAliases:      []string{"value", "amount"},
			TypeAliases:        []string{"type"},
			DateStyle:          DateDayMonthName,
			AmountStyle:        AmountSingleSigned,
		},
		{
			ID:                 "santander",
			Name:               "Santander",
			DateAliases:        []string{"date"},
			DescriptionAliases: []string{"description"},
			AmountAliases:      []string{"amount"},
			DateStyle:          DateDayFirst,
			AmountStyle:        AmountSingleSigned,
			SkipRows:           3,
		},
		{
			ID:                 "hsbc",
			Name:               "HSBC",
			DateAliases:        []string{"date"},
			DescriptionAliases: []string{"description"},
			AmountAliases:      []string{"amount"},
			DateStyle:          DateDayFirst,
			AmountStyle:        AmountSingleSigned,
		},
		{
			ID:                 "barclays",
			Name:               "Barclays",
			DateAliases:        []string{"date"},
			DescriptionAliases: []string{"memo", "description"},
			AmountAliases:      []string{"amount"},
			CategoryAliases:    []string{"subcategory"},
			DateStyle:          DateDayFirst,
			AmountStyle:        AmountSingleSigned,
		},
		// Catch-all for split debit/credit exports that don't match a
		// specific bank. Stays last: any bank layout above wins first.
		{
			ID:                 "generic-split",
			Name:               "Generic (split debit/credit)",
			DateAliases:        []string{"date", "posting date", "transaction date"},
			DescriptionAliases: []string{"description", "narrative", "details", "memo", "reference"},
			DebitAliases:       []string{"debit", "paid out", "money out", "withdrawal"},
			CreditAliases:      []string{"credit", "paid in", "money in", "deposit"},
			TypeAliases:        []string{"type"},
			DateStyle:          DateAuto,
			AmountStyle:        AmountSplit,
		},
	}
}

// ProfileByID returns the built-in profile with the given ID, or nil. The
// generic profile is addressable by its ID too.
func ProfileByID(id string) *Profile {
	if id == GenericProfileID {
		return GenericProfile()
	}
	profiles := Profiles()
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i]
		}
	}
	return nil
}

// GenericProfile returns the maximally permissive fallback layout. It
// carries no aliases; callers fall through to generic column detection.
func GenericProfile() *Profile {
	return &Profile{
		ID:                 GenericProfileID,
		Name:               "Generic Bank Export",
		DateAliases:        []string{"date", "transaction date", "posting date", "value date"},
		DescriptionAliases: []string{"description", "narrative", "details", "memo", "reference", "transaction"},
		AmountAliases:      []string{"amount", "value", "sum"},
		DebitAliases:       []string{"debit", "paid out", "money out", "withdrawal"},
		CreditAliases:      []string{"credit", "paid in", "money in", "deposit"},
		CategoryAliases:    []string{"category"},
		TypeAliases:        []string{"type"},
		DateStyle:          DateAuto,
		AmountStyle:        AmountSingleSigned,
	}
}
