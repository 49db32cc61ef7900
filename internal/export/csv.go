// Package export renders full transaction dumps as downloadable artifacts.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"budgetplanner/internal/core"
)

// Columns is the export header shared by the CSV and XLSX writers.
var Columns = []string{"id", "amount", "category", "description", "date", "type"}

// WriteCSV writes all transactions as comma-delimited text with a header row.
// Amounts are plain decimal strings.
func WriteCSV(w io.Writer, txs []core.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, tx := range txs {
		record := []string{
			strconv.FormatInt(tx.ID, 10),
			tx.Amount.Decimal(),
			tx.Category,
			tx.Description,
			tx.Date.String(),
			string(tx.Type),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row for transaction %d: %w", tx.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
