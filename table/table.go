package table

import (
	"sync"

	"github.com/arnegreen/mealylearn/oracle"
	"github.com/arnegreen/mealylearn/symbol"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Table is the observation table of spec §3/§4.2: the access-string set
// S, the distinguishing-suffix set E, and the memoized oracle-response
// map T. Both S and E start as {ε} (spec §4.2 — E begins blind on
// purpose, to force at least one equivalence round before it grows).
type Table struct {
	mu sync.Mutex

	oracle oracle.Oracle

	s      []symbol.Word
	sIndex map[string]struct{}

	e      []symbol.Word
	eIndex map[string]struct{}

	t map[string]symbol.OutputSeq
}

// New returns a Table wired to oracle, seeded with S = {ε} and E = {ε}.
func New(o oracle.Oracle) *Table {
	tbl := &Table{
		oracle: o,
		sIndex: make(map[string]struct{}),
		eIndex: make(map[string]struct{}),
		t:      make(map[string]symbol.OutputSeq),
	}
	tbl.addAccessLocked(symbol.Empty)
	tbl.addSuffixLocked(symbol.Empty)
	return tbl
}

// AddAccess appends s to S if not already present. It reports whether s
// was newly added.
func (tbl *Table) AddAccess(s symbol.Word) bool {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	return tbl.addAccessLocked(s)
}

func (tbl *Table) addAccessLocked(s symbol.Word) bool {
	if _, ok := tbl.sIndex[s.Key()]; ok {
		return false
	}
	tbl.sIndex[s.Key()] = struct{}{}
	tbl.s = append(tbl.s, s)
	return true
}

// AddSuffix appends e to E if not already present. It reports whether e
// was newly added.
func (tbl *Table) AddSuffix(e symbol.Word) bool {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	return tbl.addSuffixLocked(e)
}

func (tbl *Table) addSuffixLocked(e symbol.Word) bool {
	if _, ok := tbl.eIndex[e.Key()]; ok {
		return false
	}
	tbl.eIndex[e.Key()] = struct{}{}
	tbl.e = append(tbl.e, e)
	return true
}

// AccessStrings returns a snapshot copy of S.
func (tbl *Table) AccessStrings() []symbol.Word {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	out := make([]symbol.Word, len(tbl.s))
	copy(out, tbl.s)
	return out
}

// Suffixes returns a snapshot copy of E.
func (tbl *Table) Suffixes() []symbol.Word {
	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	out := make([]symbol.Word, len(tbl.e))
	copy(out, tbl.e)
	return out
}

// Entry returns entry(s, e): INIT by convention when s·e = ε (the oracle
// is never invoked with the empty word), otherwise the last element of
// T(s·e), populating T with exactly one membership query if this is the
// first time s·e has been asked.
func (tbl *Table) Entry(s, e symbol.Word) symbol.Output {
	full := s.Concat(e)
	if full.IsEmpty() {
		return symbol.INIT
	}
	return tbl.responseFor(full).Last()
}

// responseFor returns T(word), issuing one membership query and caching
// the result if word has not been asked before in this session.
func (tbl *Table) responseFor(word symbol.Word) symbol.OutputSeq {
	tbl.mu.Lock()
	if resp, ok := tbl.t[word.Key()]; ok {
		tbl.mu.Unlock()
		return resp
	}
	tbl.mu.Unlock()

	// The oracle call itself happens outside the lock: it is the
	// learner's only suspension point (spec §5) and must not block
	// other readers of an already-memoized Table.
	resp := tbl.oracle.Ask(word)

	tbl.mu.Lock()
	defer tbl.mu.Unlock()
	if cached, ok := tbl.t[word.Key()]; ok {
		// Another call memoized the same word while we were blocked on
		// the oracle; keep the first answer to preserve determinism.
		return cached
	}
	tbl.t[word.Key()] = resp
	return resp
}

// Row returns row(s): the vector of entry(s, e) for e ranging over the
// table's current E, in E's order. Row is computed lazily from T on every
// call rather than cached, since E only grows and each entry is O(1)
// amortized (spec Design Notes — "row recomputation is O(|E|)").
func (tbl *Table) Row(s symbol.Word) RowVector {
	suffixes := tbl.Suffixes()
	row := make(RowVector, len(suffixes))
	for i, e := range suffixes {
		row[i] = tbl.Entry(s, e)
	}
	return row
}

// Snapshot returns a deterministically ordered view of the table for
// diagnostics and progress checks.
func (tbl *Table) Snapshot() Snapshot {
	tbl.mu.Lock()
	s := make([]symbol.Word, len(tbl.s))
	copy(s, tbl.s)
	e := make([]symbol.Word, len(tbl.e))
	copy(e, tbl.e)
	keys := maps.Keys(tbl.t)
	tbl.mu.Unlock()

	slices.Sort(keys)
	return Snapshot{S: s, E: e, QueriedKey: keys}
}
