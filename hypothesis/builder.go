package hypothesis

import (
	"github.com/arnegreen/mealylearn/mealy"
	"github.com/arnegreen/mealylearn/symbol"
	"github.com/arnegreen/mealylearn/table"
)

/*
Build

Description:
  Build assigns each distinct row in tbl a dense state id, in the order
  that row is first seen while scanning S (insertion order, so the
  result is deterministic for a fixed table state). It then walks S once
  more, and for every access string s that is the first representative of
  its row, adds one transition per alphabet symbol a: δ(state(row(s)), a)
  = (state(row(s·a)), entry(s, a)). The initial state is state(row(ε)).

  Because a closed table guarantees row(s·a) always equals the row of
  some access string already in S, every next_state_id lookup below is
  expected to hit — Build never fabricates a state. If tbl was not
  actually closed (a bug in closer or table, not a reachable user error),
  that lookup misses; Build panics rather than silently returning state 0
  and corrupting the learned machine (spec §7.3 — a missing row or
  transition in a supposedly closed table is a fatal invariant
  violation, not a recoverable condition).
*/

// Build folds tbl into a Mealy machine, one state per distinct row.
func Build(tbl *table.Table, alphabet []symbol.Symbol) *mealy.Machine {
	ss := tbl.AccessStrings()

	rowID := make(map[string]int, len(ss))
	order := make([]symbol.Word, 0, len(ss))
	for _, s := range ss {
		key := tbl.Row(s).Key()
		if _, ok := rowID[key]; !ok {
			rowID[key] = len(order)
			order = append(order, s)
		}
	}

	initial, ok := rowID[tbl.Row(symbol.Empty).Key()]
	if !ok {
		panic("hypothesis: row(ε) has no assigned state — table invariant violated")
	}
	m := mealy.New(initial)

	for _, s := range order {
		state, ok := rowID[tbl.Row(s).Key()]
		if !ok {
			panic("hypothesis: row(" + s.String() + ") has no assigned state — table invariant violated")
		}
		for _, a := range alphabet {
			sa := s.Append(a)
			nextState, ok := rowID[tbl.Row(sa).Key()]
			if !ok {
				panic("hypothesis: row(" + sa.String() + ") not represented in S — table is not closed")
			}
			out := tbl.Entry(s, symbol.New(a))
			m.AddTransition(state, a, nextState, out)
		}
	}

	return m
}
