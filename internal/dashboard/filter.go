package dashboard

import "strings"

// All is the filter value meaning "no filtering".
const All = "All"

// Filter keeps rows whose value in the named column matches exactly.
// An unknown column or the All value leaves the table unchanged.
func Filter(t Table, column, value string) Table {
	if value == "" || value == All {
		return t
	}
	idx := columnIndex(t, column)
	if idx < 0 {
		return t
	}

	out := Table{Title: t.Title, Columns: t.Columns}
	for _, row := range t.Rows {
		if idx < len(row) && row[idx] == value {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// Search keeps rows where any cell contains the term, case-insensitively.
func Search(t Table, term string) Table {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return t
	}

	out := Table{Title: t.Title, Columns: t.Columns}
	for _, row := range t.Rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), term) {
				out.Rows = append(out.Rows, row)
				break
			}
		}
	}
	return out
}

// ColumnValues returns the distinct values of a column in row order,
// for building filter choices.
func ColumnValues(t Table, column string) []string {
	idx := columnIndex(t, column)
	if idx < 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var values []string
	for _, row := range t.Rows {
		if idx >= len(row) {
			continue
		}
		if _, ok := seen[row[idx]]; ok {
			continue
		}
		seen[row[idx]] = struct{}{}
		values = append(values, row[idx])
	}
	return values
}

func columnIndex(t Table, column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}
