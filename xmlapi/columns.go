package xmlapi

import "github.com/engagekit/go-engage/xmlmap"

// NormalizeColumns rewrites a COLUMNS.COLUMN listing inside result into a
// flat mapping of column name to value, in place, and returns result.
//
// Decoded listings arrive in two shapes: a single COLUMN decodes to one
// mapping, several decode to a sequence. Both collapse to
//
//	COLUMNS: {name: value, ...}
//
// Entries without a NAME are skipped. A result with no COLUMNS, or whose
// COLUMNS is already flat, is returned unchanged, so the operation is
// idempotent.
func NormalizeColumns(result *xmlmap.Value) *xmlmap.Value {
	entries := result.Get("COLUMNS").Get("COLUMN")
	if entries == nil {
		return result
	}

	flat := xmlmap.NewMap()
	for _, col := range entries.Values() {
		name := col.Get("NAME").Text()
		if name == "" {
			continue
		}
		flat.Set(name, xmlmap.String(col.Get("VALUE").Text()))
	}
	result.Set("COLUMNS", flat)
	return result
}
