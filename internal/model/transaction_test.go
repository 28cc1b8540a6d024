package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sampleTransaction() Transaction {
	return Transaction{
		ID:          "t1",
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "TESCO STORES 3456",
		Amount:      23.45,
		Direction:   DirectionDebit,
	}
}

func TestGenerateHash(t *testing.T) {
	a := sampleTransaction()
	b := sampleTransaction()
	b.ID = "t2" // Identity fields don't feed the hash

	assert.Equal(t, a.GenerateHash(), b.GenerateHash())

	t.Run("date changes hash", func(t *testing.T) {
		c := sampleTransaction()
		c.Date = c.Date.AddDate(0, 0, 1)
		assert.NotEqual(t, a.GenerateHash(), c.GenerateHash())
	})

	t.Run("amount changes hash", func(t *testing.T) {
		c := sampleTransaction()
		c.Amount = 23.46
		assert.NotEqual(t, a.GenerateHash(), c.GenerateHash())
	})

	t.Run("direction changes hash", func(t *testing.T) {
		c := sampleTransaction()
		c.Direction = DirectionCredit
		assert.NotEqual(t, a.GenerateHash(), c.GenerateHash())
	})

	t.Run("description changes hash", func(t *testing.T) {
		c := sampleTransaction()
		c.Description = "TESCO STORES 9999"
		assert.NotEqual(t, a.GenerateHash(), c.GenerateHash())
	})
}

func TestEffectiveCategory(t *testing.T) {
	txn := sampleTransaction()
	txn.Category = CategoryGroceries
	assert.Equal(t, CategoryGroceries, txn.EffectiveCategory())

	txn.UserCategory = CategoryDining
	assert.Equal(t, CategoryDining, txn.EffectiveCategory())
}

func TestParsedRowToTransaction(t *testing.T) {
	row := ParsedRow{
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Amount:      4.50,
		Direction:   DirectionDebit,
		Description: "STARBUCKS #4521",
	}

	txn := row.ToTransaction("t1")
	assert.Equal(t, "t1", txn.ID)
	assert.Equal(t, "STARBUCKS #4521", txn.MerchantName)
	assert.Equal(t, txn.GenerateHash(), txn.Hash)
	assert.Empty(t, txn.UserCategory)
	assert.Zero(t, txn.Confidence)

	row.MerchantName = "Starbucks"
	txn = row.ToTransaction("t2")
	assert.Equal(t, "Starbucks", txn.MerchantName)
}
