package mealy

import "github.com/arnegreen/mealylearn/symbol"

/*
AddTransition / Simulate

Description:
  AddTransition registers δ(state, a) = (next, out), overwriting any prior
  entry for (state, a). The builders (hypothesis.Build, minimizer.Minimize)
  each populate a fresh Machine, registering every (state, a) once.

  Simulate walks word from the initial state one symbol at a time. At
  each step it emits the defined output and advances; the first time it
  hits a state with no transition for the current symbol it emits OFF and
  conceptually enters a sink — every subsequent symbol, regardless of
  value, also emits OFF. This mirrors a membership oracle's behavior once
  the underlying session has died (spec §4.1), so Simulate and a live
  oracle response can be compared directly for equality.
*/

// AddTransition registers δ(state, a) = (next, out).
func (m *Machine) AddTransition(state int, a symbol.Symbol, next int, out symbol.Output) {
	row, ok := m.transitions[state]
	if !ok {
		row = make(map[symbol.Symbol]transition)
		m.transitions[state] = row
	}
	row[a] = transition{next: next, out: out}
}

// Simulate returns the output sequence produced by walking word from the
// initial state. The result always has length word.Len().
func (m *Machine) Simulate(word symbol.Word) symbol.OutputSeq {
	n := word.Len()
	out := make(symbol.OutputSeq, n)
	state := m.initial
	dead := false
	for i := 0; i < n; i++ {
		if dead {
			out[i] = symbol.OFF
			continue
		}
		next, o, ok := m.Transition(state, word.At(i))
		if !ok {
			out[i] = symbol.OFF
			dead = true
			continue
		}
		out[i] = o
		state = next
	}
	return out
}
