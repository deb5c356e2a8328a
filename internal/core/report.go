package core

import (
	"sort"
	"sync"
)

// Report is the append-only collection of analyzed emails. Rows are kept in
// insertion order; ranked views are derived on demand. Safe for concurrent
// use so live intake sessions can append while a reader renders.
type Report struct {
	mu   sync.RWMutex
	rows []ReportRow
}

// NewReport creates an empty report
func NewReport() *Report {
	return &Report{}
}

// Append adds a completed row to the report
func (r *Report) Append(row ReportRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, row)
}

// Len returns the number of rows appended so far
func (r *Report) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}

// Rows returns the rows in insertion order
func (r *Report) Rows() []ReportRow {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ReportRow, len(r.rows))
	copy(out, r.rows)
	return out
}

// SortedRows returns the rows ranked by descending priority. The sort is
// stable, so rows with equal priority keep their insertion order.
func (r *Report) SortedRows() []ReportRow {
	out := r.Rows()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority > out[j].Priority
	})
	return out
}

// CategoryCounts returns the number of rows per category label
func (r *Report) CategoryCounts() map[string]int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	counts := make(map[string]int)
	for _, row := range r.rows {
		counts[row.Category]++
	}
	return counts
}
