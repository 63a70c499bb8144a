package pagination

import (
	"sort"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/rshade/pickr/internal/ingest"
)

// Sort fields that do not look inside records.
const (
	FieldLabel = "label"
	FieldIndex = "index"
)

// Sorter defines the interface for sorting records.
type Sorter interface {
	// Sort sorts a slice of records by the specified field and order.
	Sort(records []ingest.Record, field, order string) []ingest.Record
}

// RecordSorter implements Sorter for ingest.Record. Any field other than
// "label" and "index" is a gjson path into structured records.
type RecordSorter struct{}

// NewRecordSorter creates a new RecordSorter.
func NewRecordSorter() *RecordSorter {
	return &RecordSorter{}
}

// sortKey is what one record is compared by.
type sortKey struct {
	number   float64
	text     string
	isNumber bool
	missing  bool
}

// Sort sorts records by the specified field and order.
// Returns a new sorted slice; does not modify the original. Records without
// a value at the path sort last in either order, keeping their input order.
func (s *RecordSorter) Sort(records []ingest.Record, field, order string) []ingest.Record {
	if field == "" {
		return records
	}

	keys := make([]sortKey, len(records))
	for i, r := range records {
		keys[i] = keyOf(r, field)
	}

	perm := make([]int, len(records))
	for i := range perm {
		perm[i] = i
	}
	desc := order == SortOrderDesc
	sort.SliceStable(perm, func(a, b int) bool {
		ka, kb := keys[perm[a]], keys[perm[b]]
		if ka.missing || kb.missing {
			return !ka.missing && kb.missing
		}
		if desc {
			ka, kb = kb, ka
		}
		return ka.less(kb)
	})

	sorted := make([]ingest.Record, len(records))
	for i, p := range perm {
		sorted[i] = records[p]
	}
	return sorted
}

func keyOf(r ingest.Record, field string) sortKey {
	switch field {
	case FieldIndex:
		return sortKey{number: float64(r.Index), isNumber: true}
	case FieldLabel:
		return sortKey{text: strings.ToLower(r.Label)}
	}

	if !r.Structured {
		return sortKey{missing: true}
	}
	v := gjson.Get(r.Raw, field)
	switch v.Type {
	case gjson.Null:
		return sortKey{missing: true}
	case gjson.Number:
		return sortKey{number: v.Num, isNumber: true}
	default:
		return sortKey{text: strings.ToLower(v.String())}
	}
}

// less orders numbers before text, numbers numerically and text
// case-insensitively.
func (k sortKey) less(other sortKey) bool {
	if k.isNumber != other.isNumber {
		return k.isNumber
	}
	if k.isNumber {
		return k.number < other.number
	}
	return k.text < other.text
}
