package model

import (
	"strings"
	"unicode"
)

// Row is one spreadsheet row as returned by the values API. Trailing empty
// cells are usually omitted upstream, so a Row may be shorter than the range
// it was read from.
type Row []string

// Cell returns the value at column index i and whether the cell exists.
// A present cell may still hold the empty string.
func (r Row) Cell(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

// CellPtr returns a pointer to the value at column index i, or nil when the
// cell is absent.
func (r Row) CellPtr(i int) *string {
	v, ok := r.Cell(i)
	if !ok {
		return nil
	}
	return &v
}

// NonBlank returns the cells in [from, to) that exist and are not empty or
// whitespace-only (per IsSpace), in column order.
func (r Row) NonBlank(from, to int) []string {
	out := make([]string, 0, max(to-from, 0))
	for i := from; i < to; i++ {
		v, ok := r.Cell(i)
		if !ok || strings.TrimFunc(v, IsSpace) == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

// IsSpace reports whether r is whitespace in the sense of the ECMAScript
// WhiteSpace and LineTerminator productions, the set String.prototype.trim
// and parseInt skip. Unlike unicode.IsSpace it includes U+FEFF and excludes
// U+0085.
func IsSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\ufeff':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
