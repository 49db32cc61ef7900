package storage

import (
	"context"
	"fmt"
	"strings"

	"budgetplanner/internal/core"
	"budgetplanner/internal/log"
)

// TransactionFilter restricts Transactions to the conjunction of the supplied
// conditions. Zero-valued fields are unconstrained. Date bounds are inclusive
// on both ends.
type TransactionFilter struct {
	StartDate core.Date
	EndDate   core.Date
	Type      core.TransactionType
	Category  string
}

// AddTransaction inserts one transaction and returns its assigned id. The
// caller guarantees a non-negative amount, a valid date and a valid type;
// nothing is re-validated here. Category existence is not enforced.
func (s *Store) AddTransaction(ctx context.Context, tx core.Transaction) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (amount_cents, category, description, date, type)
		 VALUES (?, ?, ?, ?, ?)`,
		tx.Amount.Cents, tx.Category, tx.Description, tx.Date.String(), string(tx.Type))
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("transaction id: %w", err)
	}

	logger(ctx).InfoContext(ctx, "Transaction saved",
		log.FieldTransactionID, id,
		log.FieldAmountCents, tx.Amount.Cents,
		log.FieldCategory, tx.Category,
		"type", string(tx.Type),
		"date", tx.Date.String())

	return id, nil
}

// Transactions returns all transactions matching the filter, ordered by date
// descending with newest insertion first among equal dates. An empty result
// is a nil-length slice, not an error.
func (s *Store) Transactions(ctx context.Context, filter TransactionFilter) ([]core.Transaction, error) {
	var (
		conds []string
		args  []any
	)
	if !filter.StartDate.IsZero() {
		conds = append(conds, "date >= ?")
		args = append(args, filter.StartDate.String())
	}
	if !filter.EndDate.IsZero() {
		conds = append(conds, "date <= ?")
		args = append(args, filter.EndDate.String())
	}
	if filter.Type != "" {
		conds = append(conds, "type = ?")
		args = append(args, string(filter.Type))
	}
	if filter.Category != "" {
		conds = append(conds, "category = ?")
		args = append(args, filter.Category)
	}

	query := `SELECT id, amount_cents, category, description, date, type FROM transactions`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, id DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var (
			tx      core.Transaction
			dateStr string
			typStr  string
		)
		if err := rows.Scan(&tx.ID, &tx.Amount.Cents, &tx.Category, &tx.Description, &dateStr, &typStr); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		date, err := core.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("transaction %d has malformed date %q: %w", tx.ID, dateStr, err)
		}
		tx.Date = date
		tx.Type = core.TransactionType(typStr)
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}

// DeleteTransaction removes the transaction with the given id. It reports
// whether a row was actually deleted; deleting an absent id is not an error.
func (s *Store) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete transaction %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete transaction %d: rows affected: %w", id, err)
	}
	if n == 0 {
		logger(ctx).DebugContext(ctx, "Delete of missing transaction", log.FieldTransactionID, id)
		return false, nil
	}
	logger(ctx).InfoContext(ctx, "Transaction deleted", log.FieldTransactionID, id)
	return true, nil
}

// SpendingByCategory sums expense transactions per category within the
// inclusive date range, largest total first.
func (s *Store) SpendingByCategory(ctx context.Context, start, end core.Date) ([]core.CategorySpend, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, SUM(amount_cents) AS total
		 FROM transactions
		 WHERE type = 'expense' AND date >= ? AND date <= ?
		 GROUP BY category
		 ORDER BY total DESC`,
		start.String(), end.String())
	if err != nil {
		return nil, fmt.Errorf("query spending by category: %w", err)
	}
	defer rows.Close()

	var spending []core.CategorySpend
	for rows.Next() {
		var cs core.CategorySpend
		if err := rows.Scan(&cs.Category, &cs.Total.Cents); err != nil {
			return nil, fmt.Errorf("scan spending row: %w", err)
		}
		spending = append(spending, cs)
	}
	return spending, rows.Err()
}
