package models

// Row is a single statement transaction keyed by column name. Column order is
// carried by the enclosing Statement since the export's columns vary by file
// variant.
type Row map[string]string

// Statement is the rectangular transaction table extracted from a BAC export.
type Statement struct {
	// Columns holds the header names in the order they appear in the export.
	Columns []string
	// Rows holds one entry per transaction line.
	Rows []Row
	// Count is the number of data lines observed inside the transaction block.
	Count int
}

// Clone returns a deep copy of the statement. Rewriting passes operate on a
// copy so callers keep an unmodified view of the parsed input.
func (s *Statement) Clone() *Statement {
	if s == nil {
		return nil
	}
	out := &Statement{
		Columns: append([]string(nil), s.Columns...),
		Rows:    make([]Row, len(s.Rows)),
		Count:   s.Count,
	}
	for i, row := range s.Rows {
		copied := make(Row, len(row))
		for k, v := range row {
			copied[k] = v
		}
		out.Rows[i] = copied
	}
	return out
}

// Column returns the first column name from candidates that exists in the
// statement header, or "" when none match.
func (s *Statement) Column(candidates []string) string {
	present := make(map[string]bool, len(s.Columns))
	for _, col := range s.Columns {
		present[col] = true
	}
	for _, candidate := range candidates {
		if present[candidate] {
			return candidate
		}
	}
	return ""
}
