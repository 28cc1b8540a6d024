package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pennypilot/pennypilot/internal/model"
)

// LoadRules returns all learned category rules for the user.
func (s *SQLiteStorage) LoadRules(ctx context.Context, userID string) ([]model.CategoryRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT merchant_pattern, category, confidence, transaction_count,
		       created_at, updated_at
		FROM category_rules
		WHERE user_id = ?
		ORDER BY merchant_pattern`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query category rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.CategoryRule
	for rows.Next() {
		var r model.CategoryRule
		if err := rows.Scan(
			&r.MerchantPattern, &r.Category, &r.Confidence,
			&r.TransactionCount, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category rule: %w", err)
		}
		rules = append(rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category rules: %w", err)
	}

	slog.Debug("loaded category rules", "user", userID, "count", len(rules))
	return rules, nil
}

// SaveRules replaces the user's whole rule set. The engine mutates rules in
// memory during a session and writes them back through here.
func (s *SQLiteStorage) SaveRules(ctx context.Context, userID string, rules []model.CategoryRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM category_rules WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("failed to clear category rules: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO category_rules (
			user_id, merchant_pattern, category, confidence,
			transaction_count, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare rule insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range rules {
		if _, err := stmt.ExecContext(ctx,
			userID, r.MerchantPattern, r.Category, r.Confidence,
			r.TransactionCount, r.CreatedAt, r.UpdatedAt); err != nil {
			return fmt.Errorf("failed to insert rule %q: %w", r.MerchantPattern, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit category rules: %w", err)
	}

	slog.Debug("saved category rules", "user", userID, "count", len(rules))
	return nil
}

// DeleteRule removes one rule by its normalized merchant pattern.
func (s *SQLiteStorage) DeleteRule(ctx context.Context, userID, merchantPattern string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(merchantPattern, "merchantPattern"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM category_rules WHERE user_id = ? AND merchant_pattern = ?`,
		userID, merchantPattern)
	if err != nil {
		return fmt.Errorf("failed to delete rule %q: %w", merchantPattern, err)
	}
	return nil
}
