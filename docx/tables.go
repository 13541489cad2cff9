package docx

import (
	"iter"
	"strconv"
)

// Table is a parsed body table laid out on its column grid.
type Table struct {
	rows []*Row
}

// Row is a table row with one cell per grid column.
type Row struct {
	cells []string
}

// Rows returns the rows of the table from top to bottom.
func (t *Table) Rows() iter.Seq[*Row] {
	return func(yield func(*Row) bool) {
		for _, row := range t.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// Cells returns the cell texts of the row from left to right.
// A horizontally merged cell appears once per grid column it spans, and a
// vertically merged cell repeats the text of the cell that starts the merge.
func (r *Row) Cells() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, c := range r.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// rawCell is a <w:tc> as it appears in the XML, before grid expansion.
type rawCell struct {
	text         string
	span         int
	continuation bool
}

// maxGridColumns bounds span expansion when the table declares no grid
// or an implausibly wide one. Word itself stops at 63 columns.
const maxGridColumns = 1024

// tableParser accumulates rows and resolves spans against the grid.
type tableParser struct {
	rows    []*Row
	columns int // from <w:tblGrid>; 0 when absent
}

// addRow expands raw cells onto grid columns. Continuation cells of a
// vertical merge take the text found in the same grid column one row up.
// A span never reaches past the last grid column, but every raw cell
// keeps at least one column.
func (tp *tableParser) addRow(raw []rawCell) {
	var prev []string
	if n := len(tp.rows); n > 0 {
		prev = tp.rows[n-1].cells
	}

	limit := tp.columns
	if limit <= 0 || limit > maxGridColumns {
		limit = maxGridColumns
	}

	cells := make([]string, 0, len(raw))
	for _, c := range raw {
		text := c.text
		if c.continuation {
			col := len(cells)
			if col < len(prev) {
				text = prev[col]
			}
		}
		span := max(min(c.span, limit-len(cells)), 1)
		for i := 0; i < span; i++ {
			cells = append(cells, text)
		}
	}

	tp.rows = append(tp.rows, &Row{cells: cells})
}

func (tp *tableParser) table() *Table {
	return &Table{rows: tp.rows}
}

// parseSpan parses a gridSpan value, defaulting to a single column.
func parseSpan(val string) int {
	if val == "" {
		return 1
	}
	if span, err := strconv.Atoi(val); err == nil && span > 0 {
		return span
	}
	return 1
}
