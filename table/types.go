package table

import (
	"strings"

	"github.com/arnegreen/mealylearn/symbol"
)

// rowKeySeparator delimits outputs inside a RowVector's canonical Key.
const rowKeySeparator = "\x1f"

// RowVector is the vector of outputs entry(s, e) for e ranging over the
// table's current E, in E's order. Two rows are row-equivalent exactly
// when their Key values match.
type RowVector []symbol.Output

// Key returns a canonical string encoding of the row, suitable as a map
// key when grouping access strings by row-equivalence (closedness
// checking, hypothesis construction).
func (r RowVector) Key() string {
	parts := make([]string, len(r))
	for i, o := range r {
		parts[i] = string(o)
	}
	return strings.Join(parts, rowKeySeparator)
}

// Equal reports whether r and other hold the same outputs in the same
// order.
func (r RowVector) Equal(other RowVector) bool {
	return r.Key() == other.Key()
}

// Snapshot is a read-only, deterministically ordered view of a Table's
// contents, useful for logging and for the "strictly more distinct row
// values" progress check of spec §8 scenario 6.
type Snapshot struct {
	S          []symbol.Word
	E          []symbol.Word
	QueriedKey []string // sorted keys of T, for deterministic diagnostics
}
