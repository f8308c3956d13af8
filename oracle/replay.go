package oracle

import "github.com/arnegreen/mealylearn/symbol"

// Replay serves pre-recorded word -> outputs traces deterministically.
// It satisfies the same Oracle contract a live Socket would, letting
// learner tests exercise the full Driver fixed point without a network
// dependency (Design Notes: "recorded-trace replay" is one of the three
// interchangeable adapters a unit test may substitute for a socket).
//
// A Replay is read-only once built: Record panics if called after the
// first Ask, so a test cannot accidentally mutate the trace mid-run and
// silently break the Monotone Memoization property the table relies on.
type Replay struct {
	trace  map[string]symbol.OutputSeq
	frozen bool
}

// NewReplay returns an empty Replay ready to be populated with Record.
func NewReplay() *Replay {
	return &Replay{trace: make(map[string]symbol.OutputSeq)}
}

// Record registers the response the replay should give for word. It
// panics if word or response have mismatched lengths (a malformed
// fixture), or if called after Ask has already been invoked once.
func (r *Replay) Record(word symbol.Word, response symbol.OutputSeq) *Replay {
	if r.frozen {
		panic("oracle: Replay.Record called after Ask; traces are frozen once serving begins")
	}
	if word.Len() != len(response) {
		panic("oracle: Replay.Record response length must equal word length")
	}
	r.trace[word.Key()] = response
	return r
}

// Ask returns the recorded response for word, or a response entirely of
// OFF if word was never recorded — the same behavior a dead SUL session
// would produce for an unexpected command sequence.
func (r *Replay) Ask(word symbol.Word) symbol.OutputSeq {
	if word.IsEmpty() {
		panic("oracle: Ask called with the empty word")
	}
	r.frozen = true
	if resp, ok := r.trace[word.Key()]; ok {
		return resp
	}
	out := make(symbol.OutputSeq, word.Len())
	for i := range out {
		out[i] = symbol.OFF
	}
	return out
}
