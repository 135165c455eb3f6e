package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/example/airops/internal/ports/primary"
)

// WriteTable renders a header line of column names followed by one line per
// row, cells tab-separated. It returns the number of rows written.
func WriteTable(out io.Writer, table *primary.Table) int {
	return writeTable(out, table, false)
}

// WriteRows is WriteTable with the header suppressed when there are no rows.
func WriteRows(out io.Writer, table *primary.Table) int {
	return writeTable(out, table, true)
}

func writeTable(out io.Writer, table *primary.Table, suppressEmpty bool) int {
	if table == nil || (suppressEmpty && len(table.Rows) == 0) {
		return 0
	}

	fmt.Fprintln(out, strings.Join(table.Columns, "\t"))
	for _, row := range table.Rows {
		fmt.Fprintln(out, strings.Join(row, "\t"))
	}
	return len(table.Rows)
}
