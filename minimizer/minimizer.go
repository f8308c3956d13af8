package minimizer

import (
	"strconv"
	"strings"

	"github.com/arnegreen/mealylearn/mealy"
	"github.com/arnegreen/mealylearn/symbol"
)

/*
Minimize

Description:
  Minimize partitions m's states by Myhill–Nerode equivalence and returns
  a fresh machine with one state per block.

  The initial partition groups states by output signature: the tuple of
  outputs produced by each alphabet symbol, in alphabet order. Two states
  in the same initial block are indistinguishable by a single step.

  Each refinement pass re-signs every state by the block index (from the
  partition as of the start of the pass) that each symbol's successor
  state falls into, and splits any block whose members disagree on that
  signature. The pass repeats until no block splits — the coarsest
  partition consistent with m's transition structure, which is exactly
  Myhill–Nerode equivalence for a machine that was already language-
  complete (every transition defined, spec §4.1).

  Block ids in the result are assigned in first-occurrence order over
  the partition as produced (not sorted), so Minimize is deterministic
  for a fixed m and alphabet but the numbering has no significance beyond
  that determinism.
*/

// Minimize returns the minimal machine equivalent to m over alphabet.
func Minimize(m *mealy.Machine, alphabet []symbol.Symbol) *mealy.Machine {
	states := m.States()

	partition := initialPartition(m, alphabet, states)
	for {
		refined, changed := refine(m, alphabet, partition)
		partition = refined
		if !changed {
			break
		}
	}

	blockOf := make(map[int]int, len(states))
	for idx, block := range partition {
		for _, s := range block {
			blockOf[s] = idx
		}
	}

	initialBlock := blockOf[m.Initial()]
	min := mealy.New(initialBlock)
	for idx, block := range partition {
		representative := block[0]
		for _, a := range alphabet {
			next, out, ok := m.Transition(representative, a)
			if !ok {
				continue
			}
			min.AddTransition(idx, a, blockOf[next], out)
		}
	}
	return min
}

func initialPartition(m *mealy.Machine, alphabet []symbol.Symbol, states []int) [][]int {
	groups := make(map[string][]int)
	order := make([]string, 0)
	for _, s := range states {
		sig := outputSignature(m, alphabet, s)
		if _, ok := groups[sig]; !ok {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], s)
	}
	out := make([][]int, 0, len(order))
	for _, sig := range order {
		out = append(out, groups[sig])
	}
	return out
}

func outputSignature(m *mealy.Machine, alphabet []symbol.Symbol, state int) string {
	parts := make([]string, len(alphabet))
	for i, a := range alphabet {
		_, out, _ := m.Transition(state, a)
		parts[i] = string(out)
	}
	return strings.Join(parts, "\x1f")
}

// refine performs one partition-refinement pass and reports whether any
// block split.
func refine(m *mealy.Machine, alphabet []symbol.Symbol, partition [][]int) ([][]int, bool) {
	blockOf := make(map[int]int, len(partition)*2)
	for idx, block := range partition {
		for _, s := range block {
			blockOf[s] = idx
		}
	}

	var next [][]int
	changed := false
	for _, block := range partition {
		subgroups := make(map[string][]int)
		order := make([]string, 0)
		for _, s := range block {
			sig := blockSignature(m, alphabet, blockOf, s)
			if _, ok := subgroups[sig]; !ok {
				order = append(order, sig)
			}
			subgroups[sig] = append(subgroups[sig], s)
		}
		if len(subgroups) > 1 {
			changed = true
		}
		for _, sig := range order {
			next = append(next, subgroups[sig])
		}
	}
	return next, changed
}

func blockSignature(m *mealy.Machine, alphabet []symbol.Symbol, blockOf map[int]int, state int) string {
	parts := make([]string, len(alphabet))
	for i, a := range alphabet {
		next, _, ok := m.Transition(state, a)
		if !ok {
			parts[i] = "-"
			continue
		}
		parts[i] = strconv.Itoa(blockOf[next])
	}
	return strings.Join(parts, "\x1f")
}
