package categorize

import (
	"math"
	"regexp"
	"strings"
)

// transferConfidence is assigned to detected internal transfers.
const transferConfidence = 0.95

var transferKeywords = []string{
	"transfer to",
	"transfer from",
	"trf to",
	"trf from",
	"internal transfer",
	"own account",
	"between accounts",
	"to savings",
	"from savings",
	"standing order to",
	"faster payment to own",
}

// Matches "12345678 to 87654321" style account-to-account references.
var accountToAccountPattern = regexp.MustCompile(`\d{4,}\s*(?:to|->|-)\s*\d{4,}`)

// Only letters, digits, spaces and hyphens: the shape of a bank-generated
// transfer reference rather than a merchant name.
var plainReferencePattern = regexp.MustCompile(`^[a-z0-9\s\-]+$`)

var knownBankNames = []string{
	"monzo", "starling", "barclays", "hsbc", "lloyds", "natwest",
	"santander", "nationwide", "revolut", "halifax", "first direct",
}

var transferVerbs = []string{"transfer", "sent to", "moved to", "payment to"}

// isInternalTransfer reports whether the combined lowercased
// description+merchant text looks like a movement between the user's own
// accounts. The round-amount branch is a permissive heuristic and can be
// switched off via Config.RoundAmountTransferHeuristic.
func (e *Engine) isInternalTransfer(text string, amount float64) bool {
	for _, kw := range transferKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}

	if accountToAccountPattern.MatchString(text) {
		return true
	}

	for _, bank := range knownBankNames {
		if !strings.Contains(text, bank) {
			continue
		}
		for _, verb := range transferVerbs {
			if strings.Contains(text, verb) {
				return true
			}
		}
	}

	// Round amounts with a plain reference are often transfers. Known
	// false-positive source; see Config.
	if e.cfg.RoundAmountTransferHeuristic &&
		amount >= 10 &&
		math.Mod(amount, 5) == 0 &&
		plainReferencePattern.MatchString(text) {
		return true
	}

	return false
}
