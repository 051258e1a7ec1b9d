package steps

import (
	"fmt"
	"math"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"
)

// tolerance for comparing the two-decimal figures written in feature files
const tolerance = 0.01

// getCellValue gets a cell value from a table row by column name
// It uses the first row (table.Rows[0]) as the header to find the column index
func getCellValue(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	for i, headerCell := range table.Rows[0].Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}

	return ""
}

func expectApprox(what string, expected, actual float64) error {
	if math.Abs(expected-actual) > tolerance {
		return fmt.Errorf("expected %s %.4f, got %.4f", what, expected, actual)
	}
	return nil
}
