package equivalence_test

import (
	"testing"

	"github.com/arnegreen/mealylearn/equivalence"
	"github.com/arnegreen/mealylearn/mealy"
	"github.com/arnegreen/mealylearn/oracle"
	"github.com/arnegreen/mealylearn/symbol"
	"github.com/stretchr/testify/require"
)

var alphabet = []symbol.Symbol{"USER", "PASS", "QUIT"}

func deadSUL() oracle.Oracle {
	return oracle.Func(func(w symbol.Word) symbol.OutputSeq {
		out := make(symbol.OutputSeq, w.Len())
		for i := range out {
			out[i] = symbol.OFF
		}
		return out
	})
}

func deadMachine() *mealy.Machine {
	m := mealy.New(0)
	for _, a := range alphabet {
		m.AddTransition(0, a, 0, symbol.OFF)
	}
	return m
}

func TestNew_RejectsEmptyAlphabet(t *testing.T) {
	_, err := equivalence.New(nil, deadSUL())
	require.ErrorIs(t, err, equivalence.ErrEmptyAlphabet)
}

func TestFindCounterexample_IdenticalMachineFindsNothing(t *testing.T) {
	eq, err := equivalence.New(alphabet, deadSUL(), equivalence.WithSeed(42))
	require.NoError(t, err)

	_, ok := eq.FindCounterexample(deadMachine())
	require.False(t, ok)
}

func TestFindCounterexample_DivergentMachineIsCaught(t *testing.T) {
	// A hypothesis that claims USER always succeeds, against a SUL that
	// is always dead, must diverge on any word containing USER.
	wrong := mealy.New(0)
	for _, a := range alphabet {
		wrong.AddTransition(0, a, 0, "331")
	}

	eq, err := equivalence.New(alphabet, deadSUL(), equivalence.WithSeed(7), equivalence.WithSamples(500))
	require.NoError(t, err)

	ce, ok := eq.FindCounterexample(wrong)
	require.True(t, ok)
	require.Greater(t, ce.Len(), 0)
}

func TestFindCounterexample_SameSeedSamplesIdenticalSequence(t *testing.T) {
	wrong := mealy.New(0)
	for _, a := range alphabet {
		wrong.AddTransition(0, a, 0, "331")
	}

	eq1, _ := equivalence.New(alphabet, deadSUL(), equivalence.WithSeed(99))
	eq2, _ := equivalence.New(alphabet, deadSUL(), equivalence.WithSeed(99))

	ce1, ok1 := eq1.FindCounterexample(wrong)
	ce2, ok2 := eq2.FindCounterexample(wrong)
	require.Equal(t, ok1, ok2)
	require.Equal(t, ce1.Key(), ce2.Key())
}

func TestDefaultFastAndDefaultSlow(t *testing.T) {
	fast, err := equivalence.DefaultFast(alphabet, deadSUL())
	require.NoError(t, err)
	_, ok := fast.FindCounterexample(deadMachine())
	require.False(t, ok)

	slow, err := equivalence.DefaultSlow(alphabet, deadSUL())
	require.NoError(t, err)
	_, ok = slow.FindCounterexample(deadMachine())
	require.False(t, ok)
}

func TestWithSamples_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { equivalence.WithSamples(0) })
}

func TestWithMaxLength_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { equivalence.WithMaxLength(-1) })
}
