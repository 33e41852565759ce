package table

import (
	"fmt"
	"io"
	"strings"
)

// Ftable writes the given cells (presumed to be in row-major order and with
// rows of equal length, the first being the header) to the given io.Writer
// in a layout suitable for terminals or plaintext files.
func Ftable(w io.Writer, cells [][]string) {
	if len(cells) == 0 {
		return
	}

	widths := make([]int, len(cells[0]))
	for _, row := range cells {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	delim, format := "+", "|"
	for _, width := range widths {
		delim += strings.Repeat("-", width+2) + "+"
		format += fmt.Sprintf(" %%-%ds |", width)
	}
	delim += "\n"
	format += "\n"

	fmt.Fprint(w, delim)
	for i, row := range cells {
		args := make([]interface{}, len(row))
		for j := range row {
			args[j] = row[j]
		}
		fmt.Fprintf(w, format, args...)
		if i == 0 {
			fmt.Fprint(w, delim)
		}
	}
	fmt.Fprint(w, delim)
}

// FromMaps lays out rows under the given column headers. Missing values are
// left blank.
func FromMaps(columns []string, rows []map[string]string) [][]string {
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, append([]string{}, columns...))
	for _, row := range rows {
		r := make([]string, len(columns))
		for i, column := range columns {
			r[i] = row[column]
		}
		cells = append(cells, r)
	}
	return cells
}
