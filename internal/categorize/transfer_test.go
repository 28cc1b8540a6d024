package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInternalTransfer_Keywords(t *testing.T) {
	e := New(nil, nil, "test-user")

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"transfer to", "transfer to savings account", true},
		{"transfer from", "transfer from current account", true},
		{"trf abbreviation", "trf to 44556677", true},
		{"internal transfer", "internal transfer march", true},
		{"own account", "payment own account", true},
		{"account to account numbers", "12345678 to 87654321", true},
		{"account arrow", "12345678 -> 87654321", true},
		{"ordinary purchase", "tesco stores 3456", false},
		{"short account numbers ignored", "123 to 456", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.isInternalTransfer(tt.text, 23.45))
		})
	}
}

func TestIsInternalTransfer_BankNameWithVerb(t *testing.T) {
	e := New(nil, nil, "test-user")

	assert.True(t, e.isInternalTransfer("monzo transfer march", 123.45))
	assert.True(t, e.isInternalTransfer("sent to starling account", 123.45))
	// A bank name alone is not enough.
	assert.False(t, e.isInternalTransfer("monzo premium fee", 123.45))
	// A verb alone is not enough either.
	assert.False(t, e.isInternalTransfer("payment to window cleaner", 123.45))
}

func TestIsInternalTransfer_RoundAmountHeuristic(t *testing.T) {
	e := New(nil, nil, "test-user")

	// Round amount, plain bank-style reference.
	assert.True(t, e.isInternalTransfer("j smith reference", 250.00))
	assert.True(t, e.isInternalTransfer("savings pot", 50.00))

	// Non-round amounts never trip the heuristic.
	assert.False(t, e.isInternalTransfer("j smith reference", 247.50))
	assert.False(t, e.isInternalTransfer("j smith reference", 52.00))

	// Below the floor.
	assert.False(t, e.isInternalTransfer("j smith reference", 5.00))

	// Merchant-looking text with punctuation is not a plain reference.
	assert.False(t, e.isInternalTransfer("starbucks #4521", 50.00))
}

func TestIsInternalTransfer_HeuristicDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RoundAmountTransferHeuristic = false
	e := NewWithConfig(nil, nil, "test-user", cfg)

	assert.False(t, e.isInternalTransfer("j smith reference", 250.00))
	// Explicit transfer signals still fire.
	assert.True(t, e.isInternalTransfer("transfer to savings", 250.00))
	assert.True(t, e.isInternalTransfer("12345678 to 87654321", 247.50))
}
