package oracle

import "github.com/arnegreen/mealylearn/symbol"

// Oracle is the membership-oracle contract of spec §6: Ask accepts a
// finite word and returns an equal-length sequence of outputs, the
// implementation's reply to each symbol within one freshly opened
// session. Once the session dies, every remaining position must be OFF.
//
// Ask must never be called with the empty word (spec §9's convention:
// Entry(ε, ε) = INIT is resolved without touching the oracle); adapters
// in this package panic if it is.
//
// An Oracle need not be pure, but the learner's correctness is
// contingent on effective determinism modulo the OFF sink: two calls
// with the same word should elicit the same response, barring a session
// that dies partway for reasons unrelated to the word itself.
type Oracle interface {
	Ask(word symbol.Word) symbol.OutputSeq
}

// Func adapts a plain function to the Oracle interface, for in-process
// mocks: simulated SULs built directly as Go closures over a small state
// machine, with no socket or goroutine involved. This is the adapter
// unit and example tests use to reproduce the scenarios of spec §8.
type Func func(word symbol.Word) symbol.OutputSeq

// Ask implements Oracle by invoking f, after asserting word is non-empty.
func (f Func) Ask(word symbol.Word) symbol.OutputSeq {
	if word.IsEmpty() {
		panic("oracle: Ask called with the empty word")
	}
	return f(word)
}
