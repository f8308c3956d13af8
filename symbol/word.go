package symbol

import "strings"

// keySeparator delimits symbols inside a Word's canonical Key. It must
// not occur inside any realistic Symbol value; Symbol values for the
// FTP-like teacher SUL are short command names ("USER", "PASS PLAIN",
// ...), so a control character is used rather than a printable one.
const keySeparator = "\x1f"

// Word is an immutable, ordered sequence of symbols — the primitive unit
// the learner sends to the membership oracle and stores in the
// observation table's access (S) and suffix (E) sets.
//
// Word is a value type: Concat and Suffixes never mutate the receiver or
// alias its backing array, so the same Word can be held by S, by E, and
// by a Counterexample simultaneously without defensive copies.
type Word struct {
	syms []Symbol
	key  string
}

// Empty is the empty word ε.
var Empty = Word{}

// New builds a Word from a slice of symbols, copying the slice so the
// caller's backing array cannot alias the Word afterwards.
func New(syms ...Symbol) Word {
	if len(syms) == 0 {
		return Empty
	}
	cp := make([]Symbol, len(syms))
	copy(cp, syms)
	return Word{syms: cp, key: buildKey(cp)}
}

func buildKey(syms []Symbol) string {
	if len(syms) == 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range syms {
		if i > 0 {
			b.WriteString(keySeparator)
		}
		b.WriteString(string(s))
	}
	return b.String()
}

// Len returns the number of symbols in the word.
func (w Word) Len() int {
	return len(w.syms)
}

// IsEmpty reports whether w is ε.
func (w Word) IsEmpty() bool {
	return len(w.syms) == 0
}

// At returns the symbol at position i (0-indexed).
func (w Word) At(i int) Symbol {
	return w.syms[i]
}

// Symbols returns the word's symbols as a freshly copied slice; mutating
// the result never affects w.
func (w Word) Symbols() []Symbol {
	cp := make([]Symbol, len(w.syms))
	copy(cp, w.syms)
	return cp
}

// Append returns a new Word equal to w·a, the one-symbol extension used
// throughout Closedness/Consistency checking.
func (w Word) Append(a Symbol) Word {
	cp := make([]Symbol, len(w.syms)+1)
	copy(cp, w.syms)
	cp[len(w.syms)] = a
	return Word{syms: cp, key: buildKey(cp)}
}

// Concat returns w·other, the primitive word-concatenation operation.
func (w Word) Concat(other Word) Word {
	if other.IsEmpty() {
		return w
	}
	if w.IsEmpty() {
		return other
	}
	cp := make([]Symbol, len(w.syms)+len(other.syms))
	copy(cp, w.syms)
	copy(cp[len(w.syms):], other.syms)
	return Word{syms: cp, key: buildKey(cp)}
}

// Suffixes returns every non-empty suffix w[i:] of w, in order of
// increasing length (w itself last). This is exactly the set the
// counterexample-handling step of the Learner Driver adds to E.
func (w Word) Suffixes() []Word {
	if w.IsEmpty() {
		return nil
	}
	out := make([]Word, 0, len(w.syms))
	for i := len(w.syms) - 1; i >= 0; i-- {
		out = append(out, New(w.syms[i:]...))
	}
	return out
}

// Equal reports whether w and other hold the same symbols in the same
// order.
func (w Word) Equal(other Word) bool {
	return w.key == other.key && len(w.syms) == len(other.syms)
}

// Key returns a canonical string encoding of w suitable for use as a map
// key. Two words produce the same Key if and only if they are Equal.
func (w Word) Key() string {
	return w.key
}

// String implements fmt.Stringer for readable test failures and logs.
func (w Word) String() string {
	if w.IsEmpty() {
		return "ε"
	}
	parts := make([]string, len(w.syms))
	for i, s := range w.syms {
		parts[i] = string(s)
	}
	return strings.Join(parts, " ")
}
