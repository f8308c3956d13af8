package closer

import (
	"github.com/arnegreen/mealylearn/symbol"
	"github.com/arnegreen/mealylearn/table"
)

// Report summarizes how many repairs Close performed, for the Learner
// Driver's progress logging and for tests asserting the progress
// argument of spec §8 scenario 6 (a counterexample must grow E by at
// least one entry).
type Report struct {
	ClosednessRepairs  int
	ConsistencyRepairs int
}

// Close repeatedly finds and repairs the first Closedness or Consistency
// violation in tbl, checking Closedness before Consistency on every pass
// (so a Consistency repair, which grows E and can unmask a new
// Closedness violation, is always followed by a fresh Closedness check),
// until a full pass finds neither. alphabet is iterated in the order
// given, so the witness search — and therefore every repair Close makes
// — is fully deterministic for a fixed table state.
func Close(tbl *table.Table, alphabet []symbol.Symbol) Report {
	var rep Report
	for {
		if witness, ok := findClosednessWitness(tbl, alphabet); ok {
			tbl.AddAccess(witness)
			rep.ClosednessRepairs++
			continue
		}
		if s1, s2, a, ok := findConsistencyWitness(tbl, alphabet); ok {
			repairConsistency(tbl, s1, s2, a)
			rep.ConsistencyRepairs++
			continue
		}
		break
	}
	return rep
}

// findClosednessWitness returns the first s·a (s in S, a in alphabet, in
// that iteration order) whose row is not already represented by some
// access string in S, or ok=false if none exists.
func findClosednessWitness(tbl *table.Table, alphabet []symbol.Symbol) (witness symbol.Word, ok bool) {
	ss := tbl.AccessStrings()

	known := make(map[string]struct{}, len(ss))
	for _, s := range ss {
		known[tbl.Row(s).Key()] = struct{}{}
	}

	for _, s := range ss {
		for _, a := range alphabet {
			sa := s.Append(a)
			if _, present := known[tbl.Row(sa).Key()]; !present {
				return sa, true
			}
		}
	}
	return symbol.Word{}, false
}

// findConsistencyWitness returns the first pair {s1, s2} ⊆ S with equal
// rows and a symbol a ∈ alphabet such that row(s1·a) ≠ row(s2·a), or
// ok=false if no such triple exists.
func findConsistencyWitness(tbl *table.Table, alphabet []symbol.Symbol) (s1, s2 symbol.Word, a symbol.Symbol, ok bool) {
	ss := tbl.AccessStrings()

	for i := 0; i < len(ss); i++ {
		for j := i + 1; j < len(ss); j++ {
			if !tbl.Row(ss[i]).Equal(tbl.Row(ss[j])) {
				continue
			}
			for _, sym := range alphabet {
				if !tbl.Row(ss[i].Append(sym)).Equal(tbl.Row(ss[j].Append(sym))) {
					return ss[i], ss[j], sym, true
				}
			}
		}
	}
	return symbol.Word{}, symbol.Word{}, "", false
}

// repairConsistency finds the smallest suffix index at which row(s1·a)
// and row(s2·a) disagree and adds a·E[i] to E — the single new
// distinguishing suffix that separates s1 from s2 one step later.
func repairConsistency(tbl *table.Table, s1, s2 symbol.Word, a symbol.Symbol) {
	r1 := tbl.Row(s1.Append(a))
	r2 := tbl.Row(s2.Append(a))
	suffixes := tbl.Suffixes()

	for i := range r1 {
		if r1[i] != r2[i] {
			tbl.AddSuffix(symbol.New(a).Concat(suffixes[i]))
			return
		}
	}
}
