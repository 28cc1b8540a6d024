// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Direction indicates whether money left or entered the account.
type Direction string

const (
	// DirectionDebit represents money out.
	DirectionDebit Direction = "debit"
	// DirectionCredit represents money in.
	DirectionCredit Direction = "credit"
)

// Transaction represents a single normalized financial transaction.
// Amount is always the non-negative magnitude; Direction carries the sign.
type Transaction struct {
	Date               time.Time
	ID                 string
	Hash               string
	Description        string // Raw transaction description
	MerchantName       string // Cleaned merchant name, defaults to Description
	Amount             float64
	Direction          Direction
	Category           string
	OriginalCategory   string // First automated guess, immutable once set
	UserCategory       string // Set only by explicit user action; always wins
	Confidence         float64
	IsIgnored          bool
	IsInternalTransfer bool
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Direction,
		t.Description)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// EffectiveCategory returns the user's category when set, otherwise the
// automated one.
func (t *Transaction) EffectiveCategory() string {
	if t.UserCategory != "" {
		return t.UserCategory
	}
	return t.Category
}
