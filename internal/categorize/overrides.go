package categorize

import (
	"strings"

	"github.com/pennypilot/pennypilot/internal/model"
)

// scored is a category assignment with its confidence.
type scored struct {
	category   string
	confidence float64
}

// override is one business-logic rule evaluated after the keyword scorer.
// It either replaces the scored result or leaves it alone.
type override struct {
	name  string
	apply func(txn *model.Transaction, text string, current scored) (scored, bool)
}

var groceryChains = []string{
	"tesco", "sainsbury", "asda", "morrisons", "aldi", "lidl",
	"waitrose", "iceland", "co-op", "coop", "ocado", "m&s food",
}

var marketplaceMerchants = []string{"amazon", "amzn", "ebay", "etsy"}

var fastFoodMerchants = []string{
	"mcdonald", "burger king", "kfc", "subway", "greggs", "domino",
	"pizza hut", "nando", "deliveroo", "just eat", "uber eats",
	"starbucks", "costa", "pret",
}

var salaryTerms = []string{"salary", "wage", "payroll", "pay "}

// salaryCreditThreshold is the minimum credit amount considered a paycheck.
const salaryCreditThreshold = 500

// smallAmountCutoff collapses tiny low-confidence transactions to "other".
const smallAmountCutoff = 5

// businessOverrides are evaluated in order after the keyword scorer; the
// first matching override wins. Kept separate from the scorer so both stay
// independently testable.
var businessOverrides = []override{
	{
		name: "grocery chains",
		apply: func(_ *model.Transaction, text string, current scored) (scored, bool) {
			for _, chain := range groceryChains {
				if strings.Contains(text, chain) {
					return scored{model.CategoryGroceries, 0.9}, true
				}
			}
			return current, false
		},
	},
	{
		name: "marketplace small purchases",
		apply: func(txn *model.Transaction, text string, current scored) (scored, bool) {
			if txn.Amount >= 50 {
				return current, false
			}
			for _, m := range marketplaceMerchants {
				if strings.Contains(text, m) {
					return scored{model.CategoryShopping, 0.85}, true
				}
			}
			return current, false
		},
	},
	{
		name: "fast food and delivery",
		apply: func(_ *model.Transaction, text string, current scored) (scored, bool) {
			for _, m := range fastFoodMerchants {
				if strings.Contains(text, m) {
					return scored{model.CategoryDining, 0.9}, true
				}
			}
			return current, false
		},
	},
	{
		name: "salary credits",
		apply: func(txn *model.Transaction, text string, current scored) (scored, bool) {
			if txn.Direction != model.DirectionCredit || txn.Amount <= salaryCreditThreshold {
				return current, false
			}
			for _, term := range salaryTerms {
				if strings.Contains(text, term) {
					return scored{model.CategoryIncome, 0.95}, true
				}
			}
			return current, false
		},
	},
	{
		name: "tiny uncertain amounts",
		apply: func(txn *model.Transaction, _ string, current scored) (scored, bool) {
			if txn.Amount < smallAmountCutoff && current.confidence < 0.7 {
				return scored{model.CategoryOther, 0.6}, true
			}
			return current, false
		},
	},
}

// applyOverrides runs the ordered override list over the scorer's result.
func applyOverrides(txn *model.Transaction, text string, current scored) scored {
	for _, o := range businessOverrides {
		if result, matched := o.apply(txn, text, current); matched {
			return result
		}
	}
	return current
}
