package categorize

import (
	"strings"

	"github.com/pennypilot/pennypilot/internal/model"
)

// Keyword match contributions and thresholds.
const (
	wordBoundaryWeight  = 0.8
	substringWeight     = 0.6
	similarityWeight    = 0.4
	similarityThreshold = 0.7

	baselineCategory   = model.CategoryOther
	baselineConfidence = 0.3
	maxConfidence      = 0.95
)

// amountRange adjusts a category's score when the amount falls inside
// (boost) or outside (penalty) a typical spending band.
type amountRange struct {
	boostMin, boostMax     float64
	penaltyMin, penaltyMax float64 // Zero values disable the penalty band
}

const (
	amountBoost   = 0.15
	amountPenalty = 0.15
)

// Typical spending bands per category.
var amountRanges = map[string]amountRange{
	model.CategoryGroceries: {boostMin: 10, boostMax: 200, penaltyMin: 5, penaltyMax: 500},
	model.CategoryDining:    {boostMin: 5, boostMax: 100},
	model.CategoryUtilities: {boostMin: 20, boostMax: 300},
}

// scoreCategories runs the keyword scorer over every candidate category and
// returns the winner. The running best starts at other@0.3; a category must
// beat it outright. The final score is capped at 0.95.
func (e *Engine) scoreCategories(text string, amount float64) (string, float64) {
	best := baselineCategory
	bestScore := baselineConfidence

	for _, cat := range e.categories {
		if cat.ID == model.CategoryOther || cat.ID == model.CategoryTransfers {
			continue
		}
		if len(cat.Keywords) == 0 {
			continue
		}

		score := keywordScore(cat.Keywords, text)
		score = adjustForAmount(cat.ID, score, amount)

		if score > bestScore {
			best = cat.ID
			bestScore = score
		}
	}

	if bestScore > maxConfidence {
		bestScore = maxConfidence
	}
	return best, bestScore
}

// keywordScore sums per-keyword contributions and normalizes by the
// category's total keyword count. A keyword present on a word boundary
// contributes 0.8, substring-only 0.6; any keyword similar enough to a text
// token contributes similarity*0.4 on top.
func keywordScore(keywords []string, text string) float64 {
	tokens := strings.Fields(text)

	total := 0.0
	for _, kw := range keywords {
		switch {
		case containsWord(text, kw):
			total += wordBoundaryWeight
		case strings.Contains(text, kw):
			total += substringWeight
		}

		if sim := bestTokenSimilarity(kw, tokens); sim > similarityThreshold {
			total += sim * similarityWeight
		}
	}
	return total / float64(len(keywords))
}

// bestTokenSimilarity returns the highest similarity between the keyword and
// any whitespace token of the text.
func bestTokenSimilarity(keyword string, tokens []string) float64 {
	best := 0.0
	for _, tok := range tokens {
		if sim := similarityRatio(keyword, tok); sim > best {
			best = sim
		}
	}
	return best
}

func adjustForAmount(categoryID string, score, amount float64) float64 {
	r, ok := amountRanges[categoryID]
	if !ok || score <= 0 {
		return score
	}

	if amount >= r.boostMin && amount <= r.boostMax {
		return score + amountBoost
	}
	if r.penaltyMax > 0 && (amount < r.penaltyMin || amount > r.penaltyMax) {
		score -= amountPenalty
		if score < 0 {
			score = 0
		}
	}
	return score
}

// containsWord reports whether kw appears in text on word boundaries.
func containsWord(text, kw string) bool {
	idx := strings.Index(text, kw)
	for idx >= 0 {
		before := idx == 0 || !isWordChar(text[idx-1])
		afterIdx := idx + len(kw)
		after := afterIdx == len(text) || !isWordChar(text[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(text[idx+1:], kw)
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
