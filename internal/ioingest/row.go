package ioingest

import (
	"strings"
)

// csvRow is one CSV record addressed by header name. The first column is
// always the player's display name regardless of its header.
type csvRow struct {
	index  map[string]int
	fields []string
}

func newHeaderIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	return index
}

func (r csvRow) get(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return r.fields[i]
}

func (r csvRow) playerName() string {
	if len(r.fields) == 0 {
		return ""
	}
	return strings.TrimSpace(r.fields[0])
}

// teamCell returns the row's team label. Scrapers emit either the Greek
// or the English header.
func (r csvRow) teamCell() string {
	if v := r.get("Ομάδα"); v != "" {
		return v
	}
	return r.get("Team")
}
