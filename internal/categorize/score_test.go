package categorize

import (
	"testing"

	"github.com/pennypilot/pennypilot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestKeywordScore(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
		text     string
		want     float64
	}{
		{
			// Word-boundary hit plus an identical-token similarity bonus.
			name:     "word boundary match",
			keywords: []string{"gas"},
			text:     "british gas",
			want:     1.2,
		},
		{
			// "electric" inside "electricity" is substring-only, but the
			// token is similar enough for the fuzzy bonus.
			name:     "substring match with similarity",
			keywords: []string{"electric"},
			text:     "electricity",
			want:     0.6 + (1.0-3.0/11.0)*0.4,
		},
		{
			name:     "fuzzy only",
			keywords: []string{"sainsburys"},
			text:     "sainsbury s",
			want:     0.9 * 0.4,
		},
		{
			name:     "no match",
			keywords: []string{"restaurant"},
			text:     "hardware store",
			want:     0.0,
		},
		{
			// Per-keyword contributions are normalized by list length.
			name:     "normalized by keyword count",
			keywords: []string{"coffee", "cafe"},
			text:     "costa coffee",
			want:     1.2 / 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, keywordScore(tt.keywords, tt.text), 0.005)
		})
	}
}

func TestAdjustForAmount(t *testing.T) {
	tests := []struct {
		name     string
		category string
		score    float64
		amount   float64
		want     float64
	}{
		{"groceries in band boosted", model.CategoryGroceries, 0.5, 50, 0.65},
		{"groceries above penalty band", model.CategoryGroceries, 0.5, 1000, 0.35},
		{"groceries below penalty band", model.CategoryGroceries, 0.5, 3, 0.35},
		{"dining has no penalty band", model.CategoryDining, 0.5, 1000, 0.5},
		{"dining in band boosted", model.CategoryDining, 0.5, 30, 0.65},
		{"unknown category untouched", model.CategoryShopping, 0.5, 50, 0.5},
		{"zero score untouched", model.CategoryGroceries, 0, 1000, 0},
		{"penalty floors at zero", model.CategoryGroceries, 0.1, 1000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, adjustForAmount(tt.category, tt.score, tt.amount), 0.001)
		})
	}
}

func TestScoreCategories(t *testing.T) {
	e := New(nil, nil, "test-user")

	t.Run("multiple keyword hits beat the baseline", func(t *testing.T) {
		category, confidence := e.scoreCategories("restaurant pizza pub", 30)
		assert.Equal(t, model.CategoryDining, category)
		assert.Greater(t, confidence, baselineConfidence)
		assert.LessOrEqual(t, confidence, maxConfidence)
	})

	t.Run("unrecognized text falls to baseline", func(t *testing.T) {
		category, confidence := e.scoreCategories("zzqqy xkvv", 12)
		assert.Equal(t, model.CategoryOther, category)
		assert.InDelta(t, baselineConfidence, confidence, 0.001)
	})

	t.Run("amount boost decides a borderline score", func(t *testing.T) {
		category, _ := e.scoreCategories("supermarket grocery", 50)
		assert.Equal(t, model.CategoryGroceries, category)

		// The same text with an implausible grocery amount drops below
		// the baseline.
		category, confidence := e.scoreCategories("supermarket grocery", 2500)
		assert.Equal(t, model.CategoryOther, category)
		assert.InDelta(t, baselineConfidence, confidence, 0.001)
	})

	t.Run("transfers never scored", func(t *testing.T) {
		category, _ := e.scoreCategories("transfer", 100)
		assert.NotEqual(t, model.CategoryTransfers, category)
	})
}
