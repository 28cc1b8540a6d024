package model

// Well-known category IDs referenced by the categorization engine.
const (
	CategoryOther     = "other"
	CategoryTransfers = "transfers"
	CategoryIncome    = "income"
	CategorySavings   = "savings"
	CategoryGroceries = "groceries"
	CategoryDining    = "dining"
	CategoryShopping  = "shopping"
	CategoryUtilities = "utilities"
	CategoryTransport = "transport"
)

// Category represents one entry in the static spending-category catalogue.
type Category struct {
	ID             string
	Name           string
	Keywords       []string
	BudgetRelevant bool
}

// DefaultCategories returns the built-in category catalogue. The order is
// stable; the engine iterates it deterministically. Keyword lists are kept
// short on purpose: match scores are normalized by keyword count, so a long
// list dilutes every hit.
func DefaultCategories() []Category {
	return []Category{
		{
			ID:             CategoryGroceries,
			Name:           "Groceries",
			Keywords:       []string{"grocery", "groceries", "supermarket", "food store", "market", "butcher", "bakery", "greengrocer"},
			BudgetRelevant: true,
		},
		{
			ID:             CategoryDining,
			Name:           "Dining & Takeaway",
			Keywords:       []string{"restaurant", "cafe", "coffee", "takeaway", "dining", "pizza", "kebab", "pub", "bar", "bistro"},
			BudgetRelevant: true,
		},
		{
			ID:             CategoryTransport,
			Name:           "Transport",
			Keywords:       []string{"taxi", "uber", "rail", "train", "bus", "petrol", "fuel", "parking", "tfl"},
			BudgetRelevant: true,
		},
		{
			ID:             CategoryUtilities,
			Name:           "Bills & Utilities",
			Keywords:       []string{"electricity", "electric", "gas", "water", "energy", "broadband", "council tax", "insurance", "mobile", "phone"},
			BudgetRelevant: true,
		},
		{
			ID:             "entertainment",
			Name:           "Entertainment",
			Keywords:       []string{"netflix", "spotify", "cinema", "theatre", "concert", "gym", "gaming", "subscription", "streaming"},
			BudgetRelevant: true,
		},
		{
			ID:             CategoryShopping,
			Name:           "Shopping",
			Keywords:       []string{"amazon", "shop", "store", "retail", "clothing", "pharmacy", "online", "order"},
			BudgetRelevant: true,
		},
		{
			ID:             "health",
			Name:           "Health",
			Keywords:       []string{"doctor", "dentist", "dental", "optician", "hospital", "clinic", "prescription", "physio"},
			BudgetRelevant: true,
		},
		{
			ID:             CategoryIncome,
			Name:           "Income",
			Keywords:       []string{"salary", "payroll", "wages", "wage", "income", "dividend", "refund", "pension"},
			BudgetRelevant: false,
		},
		{
			ID:             CategorySavings,
			Name:           "Savings",
			Keywords:       []string{"savings", "saver", "isa", "investment", "vanguard", "premium bonds"},
			BudgetRelevant: false,
		},
		{
			ID:             CategoryTransfers,
			Name:           "Transfers",
			Keywords:       []string{"transfer"},
			BudgetRelevant: false,
		},
		{
			ID:             CategoryOther,
			Name:           "Other",
			Keywords:       nil,
			BudgetRelevant: true,
		},
	}
}

// CategoryByID returns the catalogue entry with the given ID, or nil.
func CategoryByID(categories []Category, id string) *Category {
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i]
		}
	}
	return nil
}
