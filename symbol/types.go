package symbol

// Symbol is one opaque input token drawn from the learner's alphabet Σ.
// Symbols are compared by value (==) and ordered lexicographically by
// their underlying string (Less). The learner itself does not sort an
// alphabet: it iterates Σ in the order of the slice it is handed.
type Symbol string

// Less reports whether s sorts before other under the lexicographic
// total order on the underlying strings.
func (s Symbol) Less(other Symbol) bool {
	return s < other
}

// Output is one opaque reply token drawn from Γ. OFF and INIT are the two
// reserved values described in spec §3: OFF marks a dead session (the
// sink absorbing all activity after the SUL disconnects), INIT is the
// table-entry convention for the (ε, ε) cell and is never produced by an
// oracle.
type Output string

const (
	// OFF is the distinguished dead-session output. Once an oracle or a
	// simulated Mealy machine emits OFF, every subsequent position in the
	// same response is also OFF.
	OFF Output = "OFF"

	// INIT is the convention entry for Entry(ε, ε); it is never the
	// result of invoking an oracle, since the oracle is never called
	// with the empty word.
	INIT Output = "INIT"
)

// OutputSeq is an ordered sequence of Output tokens, one per Symbol of the
// Word it answers. Its length always equals the length of that Word.
type OutputSeq []Output

// Equal reports whether seq and other hold the same outputs in the same
// order. Two OutputSeq values of different length are never equal.
func (seq OutputSeq) Equal(other OutputSeq) bool {
	if len(seq) != len(other) {
		return false
	}
	for i := range seq {
		if seq[i] != other[i] {
			return false
		}
	}
	return true
}

// Last returns the final output of the sequence. Entry(s, e) is defined
// as the last element of T(s·e), so callers use Last to turn a full
// membership-query response into a single table cell.
func (seq OutputSeq) Last() Output {
	return seq[len(seq)-1]
}
