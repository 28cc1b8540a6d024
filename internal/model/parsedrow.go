package model

import "time"

// ParsedRow is one successfully parsed CSV line, prior to being promoted to
// a Transaction. Raw keeps the original cell values for diagnostics.
type ParsedRow struct {
	Date         time.Time
	Amount       float64 // Non-negative magnitude
	Direction    Direction
	Description  string
	Category     string // Optional, from a source category column
	MerchantName string // Defaults to Description
	Raw          []string
}

// ToTransaction promotes a parsed row to a canonical transaction with the
// given identifier. Categorization fields are left for the engine to fill.
func (r *ParsedRow) ToTransaction(id string) Transaction {
	txn := Transaction{
		ID:           id,
		Date:         r.Date,
		Amount:       r.Amount,
		Direction:    r.Direction,
		Description:  r.Description,
		MerchantName: r.MerchantName,
		Category:     r.Category,
	}
	if txn.MerchantName == "" {
		txn.MerchantName = r.Description
	}
	txn.Hash = txn.GenerateHash()
	return txn
}
