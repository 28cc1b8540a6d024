package storage

import (
	"context"
	"testing"
	"time"

	"github.com/pennypilot/pennypilot/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidateContext(t *testing.T) {
	assert.NoError(t, validateContext(context.Background()))
	assert.ErrorIs(t, validateContext(nil), ErrNilContext) //nolint:staticcheck // nil context is the case under test
}

func TestValidateString(t *testing.T) {
	assert.NoError(t, validateString("value", "param"))
	assert.ErrorIs(t, validateString("", "param"), ErrEmptyString)
	assert.ErrorIs(t, validateString("   ", "param"), ErrEmptyString)

	err := validateString("", "dbPath")
	assert.Contains(t, err.Error(), "dbPath")
}

func TestValidateTransaction(t *testing.T) {
	valid := func() model.Transaction {
		txn := model.Transaction{
			ID:          "t1",
			Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Description: "TESCO STORES 3456",
			Amount:      23.45,
			Direction:   model.DirectionDebit,
		}
		txn.Hash = txn.GenerateHash()
		return txn
	}

	txn := valid()
	assert.NoError(t, validateTransaction(&txn))

	tests := []struct {
		name    string
		mutate  func(*model.Transaction)
		wantMsg string
	}{
		{"missing id", func(x *model.Transaction) { x.ID = "" }, "missing ID"},
		{"missing hash", func(x *model.Transaction) { x.Hash = "" }, "missing hash"},
		{"zero date", func(x *model.Transaction) { x.Date = time.Time{} }, "missing date"},
		{"missing description", func(x *model.Transaction) { x.Description = "" }, "missing description"},
		{"negative amount", func(x *model.Transaction) { x.Amount = -1 }, "negative amount"},
		{"bad direction", func(x *model.Transaction) { x.Direction = "up" }, "invalid direction"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := valid()
			tt.mutate(&txn)
			err := validateTransaction(&txn)
			assert.ErrorIs(t, err, ErrInvalidTransaction)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateTransactions(t *testing.T) {
	assert.ErrorIs(t, validateTransactions(nil), ErrNilParameter)
	assert.ErrorIs(t, validateTransactions([]model.Transaction{}), ErrEmptySlice)

	err := validateTransactions([]model.Transaction{{}})
	assert.ErrorIs(t, err, ErrInvalidTransaction)
	assert.Contains(t, err.Error(), "index 0")
}
