package storage

import (
	"context"
	"fmt"
	"strings"

	"budgetplanner/internal/core"
	"budgetplanner/internal/log"
)

// Categories returns categories ordered by name, optionally restricted to a
// type. Pass the empty string for all types.
func (s *Store) Categories(ctx context.Context, typ core.TransactionType) ([]core.Category, error) {
	query := `SELECT name, type, icon FROM categories`
	var args []any
	if typ != "" {
		query += ` WHERE type = ?`
		args = append(args, string(typ))
	}
	query += ` ORDER BY name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var cats []core.Category
	for rows.Next() {
		var (
			c      core.Category
			typStr string
		)
		if err := rows.Scan(&c.Name, &typStr, &c.Icon); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Type = core.TransactionType(typStr)
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// AddCategory inserts a new category. A name collision returns
// core.ErrDuplicateCategory; everything else is a storage fault.
func (s *Store) AddCategory(ctx context.Context, c core.Category) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO categories (name, type, icon) VALUES (?, ?, ?)`,
		c.Name, string(c.Type), c.Icon)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("category %q: %w", c.Name, core.ErrDuplicateCategory)
		}
		return fmt.Errorf("insert category %q: %w", c.Name, err)
	}

	logger(ctx).InfoContext(ctx, "Category added", log.FieldCategory, c.Name, "type", string(c.Type))
	return nil
}
