package export

import (
	"fmt"
	"io"

	"budgetplanner/internal/core"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Transactions"

// WriteXLSX writes all transactions as a single-sheet spreadsheet with the
// same columns as the CSV export. Amounts are numeric cells.
func WriteXLSX(w io.Writer, txs []core.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	// excelize always starts with a default sheet
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	for i, col := range Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("write header %q: %w", col, err)
		}
	}

	for idx, tx := range txs {
		row := idx + 2
		values := []any{
			tx.ID,
			float64(tx.Amount.Cents) / 100.0,
			tx.Category,
			tx.Description,
			tx.Date.String(),
			string(tx.Type),
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return fmt.Errorf("cell for row %d: %w", row, err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", row, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
