package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pennypilot/pennypilot/internal/common"
	"github.com/pennypilot/pennypilot/internal/model"
	"github.com/pennypilot/pennypilot/internal/service"
)

// SaveTransactions inserts transactions, skipping any whose hash is already
// stored. Returns the number actually inserted.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateTransactions(transactions); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			id, hash, date, description, merchant_name, amount, direction,
			category, original_category, user_category, confidence,
			is_ignored, is_internal_transfer
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	saved := 0
	for _, txn := range transactions {
		res, err := stmt.ExecContext(ctx,
			txn.ID, txn.Hash, txn.Date, txn.Description, txn.MerchantName,
			txn.Amount, string(txn.Direction), txn.Category,
			txn.OriginalCategory, txn.UserCategory, txn.Confidence,
			txn.IsIgnored, txn.IsInternalTransfer)
		if err != nil {
			return 0, fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			saved++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transactions: %w", err)
	}

	slog.Debug("saved transactions", "total", len(transactions), "inserted", saved)
	return saved, nil
}

const transactionColumns = `
	id, hash, date, description, merchant_name, amount, direction,
	COALESCE(category, ''), COALESCE(original_category, ''),
	COALESCE(user_category, ''), confidence, is_ignored, is_internal_transfer`

// GetTransactionByID retrieves one transaction.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id = ?`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// GetTransactionsByIDs retrieves the given transactions, preserving the
// input order. Unknown ids are silently dropped.
func (s *SQLiteStorage) GetTransactionsByIDs(ctx context.Context, ids []string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	// SQLite caps bound variables at 999 per statement, so large id lists
	// are queried in chunks.
	byID := make(map[string]model.Transaction, len(ids))
	for start := 0; start < len(ids); start += idChunkSize {
		end := min(start+idChunkSize, len(ids))
		if err := s.queryTransactionsInto(ctx, ids[start:end], byID); err != nil {
			return nil, err
		}
	}

	ordered := make([]model.Transaction, 0, len(byID))
	for _, id := range ids {
		if txn, ok := byID[id]; ok {
			ordered = append(ordered, txn)
		}
	}
	return ordered, nil
}

// idChunkSize keeps IN-list queries under SQLite's 999-variable limit.
const idChunkSize = 500

func (s *SQLiteStorage) queryTransactionsInto(ctx context.Context, ids []string, byID map[string]model.Transaction) error {
	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id IN (`+placeholders+`)`,
		args...)
	if err != nil {
		return fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return fmt.Errorf("failed to scan transaction: %w", err)
		}
		byID[txn.ID] = *txn
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating transactions: %w", err)
	}
	return nil
}

// GetTransactions retrieves transactions matching the filter, newest first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	var args []any

	if filter.StartDate != nil {
		query += ` AND date >= ?`
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		query += ` AND date <= ?`
		args = append(args, *filter.EndDate)
	}
	if filter.Category != "" {
		query += ` AND (user_category = ? OR (user_category = '' AND category = ?))`
		args = append(args, filter.Category, filter.Category)
	}

	query += ` ORDER BY date DESC, id`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	}

	return s.queryTransactions(ctx, query, args...)
}

// GetUncategorizedTransactions returns transactions with no category yet.
func (s *SQLiteStorage) GetUncategorizedTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	return s.queryTransactions(ctx,
		`SELECT `+transactionColumns+`
		 FROM transactions
		 WHERE COALESCE(category, '') = ''
		 ORDER BY date, id`)
}

// UpdateTransaction persists categorization changes to one transaction.
func (s *SQLiteStorage) UpdateTransaction(ctx context.Context, txn *model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if txn == nil {
		return fmt.Errorf("%w: txn", ErrNilParameter)
	}
	if err := validateString(txn.ID, "txn.ID"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET category = ?, original_category = ?, user_category = ?,
		    confidence = ?, is_ignored = ?, is_internal_transfer = ?
		WHERE id = ?`,
		txn.Category, txn.OriginalCategory, txn.UserCategory,
		txn.Confidence, txn.IsIgnored, txn.IsInternalTransfer, txn.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
	}

	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return fmt.Errorf("transaction %s: %w", txn.ID, common.ErrNotFound)
	}
	return nil
}

func (s *SQLiteStorage) queryTransactions(ctx context.Context, query string, args ...any) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var txns []model.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, *txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}
	return txns, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	var txn model.Transaction
	var direction string

	err := row.Scan(
		&txn.ID, &txn.Hash, &txn.Date, &txn.Description, &txn.MerchantName,
		&txn.Amount, &direction, &txn.Category, &txn.OriginalCategory,
		&txn.UserCategory, &txn.Confidence, &txn.IsIgnored,
		&txn.IsInternalTransfer)
	if err != nil {
		return nil, err
	}

	txn.Direction = model.Direction(direction)
	return &txn, nil
}
