package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()
	require.NotEmpty(t, categories)

	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.False(t, seen[c.ID], "duplicate category id %s", c.ID)
		seen[c.ID] = true
	}

	// The well-known ids the engine depends on must all exist.
	for _, id := range []string{
		CategoryOther, CategoryTransfers, CategoryIncome, CategorySavings,
		CategoryGroceries, CategoryDining, CategoryShopping,
		CategoryUtilities, CategoryTransport,
	} {
		assert.True(t, seen[id], "missing well-known category %s", id)
	}

	// Money that isn't spending never counts toward budgets.
	for _, id := range []string{CategoryIncome, CategorySavings, CategoryTransfers} {
		cat := CategoryByID(categories, id)
		require.NotNil(t, cat)
		assert.False(t, cat.BudgetRelevant, "%s must not be budget relevant", id)
	}
}

func TestCategoryByID(t *testing.T) {
	categories := DefaultCategories()

	cat := CategoryByID(categories, CategoryGroceries)
	require.NotNil(t, cat)
	assert.Equal(t, "Groceries", cat.Name)

	assert.Nil(t, CategoryByID(categories, "gadgets"))
	assert.Nil(t, CategoryByID(nil, CategoryGroceries))
}
