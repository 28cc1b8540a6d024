package categorize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pennypilot/pennypilot/internal/common"
	"github.com/pennypilot/pennypilot/internal/model"
	"github.com/pennypilot/pennypilot/internal/service"
)

// Config holds configuration options for the categorization engine.
type Config struct {
	// RoundAmountTransferHeuristic flags round amounts with plain
	// references as transfers. Permissive; a known false-positive source.
	RoundAmountTransferHeuristic bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		RoundAmountTransferHeuristic: true,
	}
}

// Engine categorizes transactions and maintains the learned rule set for a
// single user session. Rules are loaded once, mutated in memory, and saved
// back as a whole set; callers serialize concurrent sessions for one user.
type Engine struct {
	storage    service.Storage
	rules      service.RuleStore
	userID     string
	categories []model.Category
	cfg        Config

	loaded      []model.CategoryRule
	rulesLoaded bool
}

// New creates a categorization engine with the default configuration.
func New(storage service.Storage, rules service.RuleStore, userID string) *Engine {
	return NewWithConfig(storage, rules, userID, DefaultConfig())
}

// NewWithConfig creates a categorization engine with custom configuration.
func NewWithConfig(storage service.Storage, rules service.RuleStore, userID string, cfg Config) *Engine {
	return &Engine{
		storage:    storage,
		rules:      rules,
		userID:     userID,
		categories: model.DefaultCategories(),
		cfg:        cfg,
	}
}

// Categories returns the engine's category catalogue.
func (e *Engine) Categories() []model.Category {
	return e.categories
}

// Rules returns the session's current rule set, loading it on first use.
func (e *Engine) Rules(ctx context.Context) []model.CategoryRule {
	e.ensureRules(ctx)
	return e.loaded
}

// ensureRules loads the user's rules once per session. A failed load is
// tolerated: the engine proceeds with an empty set.
func (e *Engine) ensureRules(ctx context.Context) {
	if e.rulesLoaded {
		return
	}
	e.rulesLoaded = true

	rules, err := e.rules.LoadRules(ctx, e.userID)
	if err != nil {
		slog.Warn("failed to load category rules, proceeding without",
			"user", e.userID, "error", err)
		return
	}
	e.loaded = rules
}

// Categorize assigns a category, confidence, and transfer flag to the
// transaction. Decision order, first match terminal: user category, ignored,
// internal transfer, learned rule, keyword scoring plus business overrides.
// Never fails: the worst case is "other" at low confidence.
func (e *Engine) Categorize(ctx context.Context, txn model.Transaction) model.Transaction {
	if txn.UserCategory != "" {
		txn.Category = txn.UserCategory
		return txn
	}
	if txn.IsIgnored {
		return txn
	}

	text := strings.ToLower(strings.TrimSpace(txn.Description + " " + txn.MerchantName))

	if e.isInternalTransfer(text, txn.Amount) {
		txn.Category = model.CategoryTransfers
		txn.Confidence = transferConfidence
		txn.IsInternalTransfer = true
		e.recordOriginalCategory(&txn)
		return txn
	}

	if rule := e.matchRule(ctx, txn.MerchantName); rule != nil {
		txn.Category = rule.Category
		txn.Confidence = rule.Confidence
		e.recordOriginalCategory(&txn)
		return txn
	}

	category, confidence := e.scoreCategories(text, txn.Amount)
	result := applyOverrides(&txn, text, scored{category, confidence})

	txn.Category = result.category
	txn.Confidence = result.confidence
	e.recordOriginalCategory(&txn)
	return txn
}

// CategorizeAll categorizes a batch in order.
func (e *Engine) CategorizeAll(ctx context.Context, txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, txn := range txns {
		out[i] = e.Categorize(ctx, txn)
	}
	return out
}

func (e *Engine) recordOriginalCategory(txn *model.Transaction) {
	if txn.OriginalCategory == "" {
		txn.OriginalCategory = txn.Category
	}
}

// matchRule finds a learned rule for the merchant using bidirectional
// substring containment on normalized names.
func (e *Engine) matchRule(ctx context.Context, merchantName string) *model.CategoryRule {
	e.ensureRules(ctx)

	normalized := NormalizeMerchant(merchantName)
	if normalized == "" {
		return nil
	}

	for i := range e.loaded {
		if patternsOverlap(e.loaded[i].MerchantPattern, normalized) {
			return &e.loaded[i]
		}
	}
	return nil
}

// UpdateTransactionCategory records a manual category assignment: the
// transaction's user category is set (and always wins from now on) and a
// rule for its normalized merchant is created or reinforced.
func (e *Engine) UpdateTransactionCategory(ctx context.Context, id, category string) error {
	if model.CategoryByID(e.categories, category) == nil {
		return fmt.Errorf("%w: %s", common.ErrUnknownCategory, category)
	}

	txn, err := e.storage.GetTransactionByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load transaction %s: %w", id, err)
	}

	txn.UserCategory = category
	txn.Category = category
	if err := e.storage.UpdateTransaction(ctx, txn); err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", id, err)
	}

	if err := e.learnRule(ctx, txn.MerchantName, category); err != nil {
		return err
	}

	slog.Info("transaction recategorized",
		"id", id, "category", category, "merchant", txn.MerchantName)
	return nil
}

// ApplyCategoryToSimilar applies one category to the subset of the given
// transactions that share the first transaction's normalized merchant and
// have an amount within ±30% of it. One rule is learned, from the first
// transaction. Returns how many transactions were updated.
func (e *Engine) ApplyCategoryToSimilar(ctx context.Context, ids []string, category string) (int, error) {
	if model.CategoryByID(e.categories, category) == nil {
		return 0, fmt.Errorf("%w: %s", common.ErrUnknownCategory, category)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	txns, err := e.storage.GetTransactionsByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(txns) == 0 {
		return 0, nil
	}

	base := txns[0]
	baseNorm := NormalizeMerchant(base.MerchantName)

	updated := 0
	for i := range txns {
		if NormalizeMerchant(txns[i].MerchantName) != baseNorm {
			continue
		}
		if !amountWithinTolerance(txns[i].Amount, base.Amount) {
			continue
		}

		txns[i].UserCategory = category
		txns[i].Category = category
		if err := e.storage.UpdateTransaction(ctx, &txns[i]); err != nil {
			return updated, fmt.Errorf("failed to update transaction %s: %w", txns[i].ID, err)
		}
		updated++
	}

	if updated > 0 {
		if err := e.learnRule(ctx, base.MerchantName, category); err != nil {
			return updated, err
		}
	}
	return updated, nil
}

// amountTolerance is the relative band for "similar" amounts.
const amountTolerance = 0.30

func amountWithinTolerance(amount, base float64) bool {
	if base == 0 {
		return amount == 0
	}
	low := base * (1 - amountTolerance)
	high := base * (1 + amountTolerance)
	return amount >= low && amount <= high
}

// learnRule upserts a rule for the merchant's normalized name and persists
// the whole rule set.
func (e *Engine) learnRule(ctx context.Context, merchantName, category string) error {
	e.ensureRules(ctx)

	pattern := NormalizeMerchant(merchantName)
	if pattern == "" {
		return nil
	}

	now := time.Now()
	found := false
	for i := range e.loaded {
		if e.loaded[i].MerchantPattern != pattern {
			continue
		}
		e.loaded[i].Category = category
		e.loaded[i].Confidence = model.UserRuleConfidence
		e.loaded[i].TransactionCount++
		e.loaded[i].UpdatedAt = now
		found = true
		break
	}
	if !found {
		e.loaded = append(e.loaded, model.CategoryRule{
			MerchantPattern:  pattern,
			Category:         category,
			Confidence:       model.UserRuleConfidence,
			TransactionCount: 1,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	if err := e.rules.SaveRules(ctx, e.userID, e.loaded); err != nil {
		return fmt.Errorf("failed to save category rules: %w", err)
	}
	return nil
}

// DeleteRule removes a learned rule by its normalized merchant pattern.
// Rule deletion is always an explicit user action.
func (e *Engine) DeleteRule(ctx context.Context, merchantPattern string) error {
	e.ensureRules(ctx)

	kept := e.loaded[:0]
	for _, r := range e.loaded {
		if r.MerchantPattern != merchantPattern {
			kept = append(kept, r)
		}
	}
	e.loaded = kept

	if err := e.rules.DeleteRule(ctx, e.userID, merchantPattern); err != nil {
		return fmt.Errorf("failed to delete rule %q: %w", merchantPattern, err)
	}
	return nil
}
