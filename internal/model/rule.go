package model

import "time"

// CategoryRule is a learned mapping from a normalized merchant pattern to a
// category. Rules are created the first time a user manually categorizes a
// transaction from an unseen merchant and reinforced on every subsequent
// correction for the same merchant.
type CategoryRule struct {
	CreatedAt        time.Time
	UpdatedAt        time.Time
	MerchantPattern  string // Normalized merchant name, the join key
	Category         string
	Confidence       float64
	TransactionCount int
}

// UserRuleConfidence is the confidence assigned to a rule once a user has
// confirmed the category by hand.
const UserRuleConfidence = 0.95
