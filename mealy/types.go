package mealy

import (
	"sort"

	"github.com/arnegreen/mealylearn/symbol"
)

// transition is the (target state, output) pair produced by one step of
// δ. It is unexported: callers read transitions through Machine's methods
// (Transition, Simulate) rather than this struct directly.
type transition struct {
	next int
	out  symbol.Output
}

// Machine is a deterministic Mealy machine: states are dense integers
// 0..N, δ is total over Σ for every reachable state, and every output is
// exactly the oracle output observed on the access word that reaches the
// source state followed by the transition symbol.
//
// Machine is not safe for concurrent mutation; AddTransition is expected
// to be called only while a single builder (hypothesis.Build or
// minimizer.Minimize) owns the Machine. Once built, Simulate and the
// read-only accessors are safe for concurrent use by multiple readers,
// since they never mutate state.
type Machine struct {
	initial     int
	transitions map[int]map[symbol.Symbol]transition
}

// New returns an empty Machine with the given initial state id. Callers
// populate it with AddTransition before use.
func New(initial int) *Machine {
	return &Machine{
		initial:     initial,
		transitions: make(map[int]map[symbol.Symbol]transition),
	}
}

// Initial returns the machine's initial state id.
func (m *Machine) Initial() int {
	return m.initial
}

// States returns the set of state ids that have at least one outgoing
// transition registered, in ascending order. A freshly minimized or
// hypothesized machine has every reachable state in this set because
// the builders register a full row of transitions per state.
func (m *Machine) States() []int {
	out := make([]int, 0, len(m.transitions))
	for s := range m.transitions {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

// HasTransition reports whether δ(state, a) is defined.
func (m *Machine) HasTransition(state int, a symbol.Symbol) bool {
	row, ok := m.transitions[state]
	if !ok {
		return false
	}
	_, ok = row[a]
	return ok
}

// Transition returns δ(state, a). The second return value is false if no
// transition is registered (the caller's state is acting as an OFF sink
// for that symbol).
func (m *Machine) Transition(state int, a symbol.Symbol) (next int, out symbol.Output, ok bool) {
	row, ok := m.transitions[state]
	if !ok {
		return 0, symbol.OFF, false
	}
	t, ok := row[a]
	if !ok {
		return 0, symbol.OFF, false
	}
	return t.next, t.out, true
}

