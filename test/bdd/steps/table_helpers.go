package steps

import (
	"fmt"
	"strconv"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"
)

// getCellValue gets a cell value from a table row by column name.
// The first row (table.Rows[0]) is the header.
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

// getCellInt reads an integer column; an empty cell is zero
func getCellInt(table *godog.Table, row *messages.PickleTableRow, columnName string) (int, error) {
	raw := getCellValue(table, row, columnName)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", columnName, err)
	}
	return v, nil
}
